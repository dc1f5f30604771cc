// /internal/launcher/natives.go
package launcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"forge-launcher/internal/log"
	"forge-launcher/internal/util"
	"forge-launcher/internal/versions"

	"github.com/codeclysm/extract/v4"
)

// ExtractNatives unpacks the native classifier jars of legacy descriptors
// into dir. Descriptors that ship natives as ordinary libraries have nothing
// to extract. Jars missing from libraries/ are skipped with a warning.
func ExtractNatives(ctx context.Context, desc *versions.Descriptor, env versions.Environment, librariesDir, dir string) (int, error) {
	extracted := 0
	for _, lib := range desc.Libraries {
		classifier, ok := lib.Natives[env.OS]
		if !ok || !env.Allowed(lib.Rules) {
			continue
		}
		classifier = strings.ReplaceAll(classifier, "${arch}", archBits(env.Arch))

		rel, err := lib.NativePath(classifier)
		if err != nil {
			return extracted, err
		}
		jar := filepath.Join(librariesDir, rel)
		if !util.FileExists(jar) {
			log.Log.Warn("Native library %s is missing, skipping.", jar)
			continue
		}

		if err := util.EnsureDir(dir); err != nil {
			return extracted, err
		}
		var exclude []string
		if lib.Extract != nil {
			exclude = lib.Extract.Exclude
		}
		if err := extractJar(ctx, jar, dir, exclude); err != nil {
			return extracted, fmt.Errorf("extract natives from %s: %w", jar, err)
		}
		extracted++
	}
	return extracted, nil
}

func extractJar(ctx context.Context, jar, dir string, exclude []string) error {
	f, err := os.Open(jar)
	if err != nil {
		return err
	}
	defer f.Close()

	return extract.Zip(ctx, f, dir, func(name string) string {
		for _, prefix := range exclude {
			if strings.HasPrefix(name, prefix) {
				return ""
			}
		}
		return name
	})
}

func archBits(arch string) string {
	if arch == "x86" {
		return "32"
	}
	return "64"
}
