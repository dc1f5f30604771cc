// /internal/launcher/identity.go
package launcher

import (
	"crypto/md5"
	"strings"

	"github.com/google/uuid"
)

// OfflineUUID derives the UUID an offline-mode server assigns to name: a
// version 3 UUID over the MD5 of "OfflinePlayer:<name>" with no namespace.
func OfflineUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	id, _ := uuid.FromBytes(sum[:])
	return id
}

// compactUUID is the dash-less form the game expects on its command line.
func compactUUID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
