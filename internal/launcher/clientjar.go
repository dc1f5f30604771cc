// /internal/launcher/clientjar.go
package launcher

import (
	"fmt"
	"path/filepath"

	"forge-launcher/internal/log"
	"forge-launcher/internal/util"
	"forge-launcher/internal/versions"
)

// EnsureClientJar makes sure the client jar on the classpath exists. An
// inheriting version without its own jar gets a copy of the nearest
// ancestor's client jar under its own id. A jar that is missing everywhere
// is left to the game to report.
func EnsureClientJar(desc *versions.Descriptor, versionsDir string) error {
	dst := ClientJarPath(desc, versionsDir)
	if util.FileExists(dst) {
		return nil
	}
	for _, id := range desc.Ancestors {
		src := filepath.Join(versionsDir, id, id+".jar")
		if !util.FileExists(src) {
			continue
		}
		log.Log.Info("Copying client jar of %s to %s", id, dst)
		if err := util.CopyFile(src, dst); err != nil {
			return fmt.Errorf("copy client jar: %w", err)
		}
		return nil
	}
	log.Log.Warn("Client jar %s is missing.", dst)
	return nil
}
