// /internal/app/clean.go
package app

import (
	"fmt"

	"forge-launcher/internal/config"
	"forge-launcher/internal/log"
	"forge-launcher/internal/util"
)

// Clean removes what the launcher itself downloads into the game directory:
// a leftover Forge installer and the mod jar. Installed versions, libraries
// and saves are never touched. It returns the removed paths.
func Clean(cfg *config.Config) ([]string, error) {
	log.Log.Info("--- Running Clean Mode ---")
	targets := []string{cfg.InstallerPath()}
	modPath, err := cfg.ModPath()
	if err != nil {
		return nil, err
	}
	targets = append(targets, modPath)

	var removed []string
	for _, path := range targets {
		ok, err := util.RemoveIfExists(path)
		if err != nil {
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
		if ok {
			log.Log.Info("Removed %s", path)
			removed = append(removed, path)
		}
	}
	log.Log.Warn("Note: installed versions and %s are not removed.", config.ProfilesFileName)
	log.Log.Info("--- Clean-up complete ---")
	return removed, nil
}
