// /internal/mods/mods.go
package mods

import (
	"context"
	"fmt"
	"path/filepath"

	"forge-launcher/internal/config"
	"forge-launcher/internal/log"
	"forge-launcher/internal/util"
)

// Fetcher downloads url to dest.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// Placer puts the configured mod jar into mods/.
type Placer struct {
	cfg     *config.Config
	fetcher Fetcher
}

func New(cfg *config.Config, fetcher Fetcher) *Placer {
	return &Placer{cfg: cfg, fetcher: fetcher}
}

// EnsureMod fetches the mod unless a file with its name is already in mods/.
// It reports whether a download happened. Metadata problems are only logged.
func (p *Placer) EnsureMod(ctx context.Context) (bool, error) {
	dest, err := p.cfg.ModPath()
	if err != nil {
		return false, err
	}
	if err := util.EnsureDir(p.cfg.ModsDir()); err != nil {
		return false, fmt.Errorf("create mods directory: %w", err)
	}

	if util.FileExists(dest) {
		log.Log.Info("Mod %s is already installed.", filepath.Base(dest))
		return false, nil
	}

	log.Log.Info("Installing mod %s...", filepath.Base(dest))
	if err := p.fetcher.Fetch(ctx, p.cfg.ModURL, dest); err != nil {
		return false, fmt.Errorf("fetch mod: %w", err)
	}
	p.check(dest)
	log.Log.Info("Mod installed successfully.")
	return true, nil
}

func (p *Placer) check(path string) {
	meta, err := Inspect(path)
	if err != nil {
		log.Log.Warn("Could not read metadata of %s: %v", filepath.Base(path), err)
		return
	}
	log.Log.Info("Mod %s %s (%s)", meta.DisplayName, meta.Version, meta.ModID)

	gameVersion := p.cfg.GameVersion()
	ok, err := meta.SupportsGame(gameVersion)
	switch {
	case err != nil:
		log.Log.Warn("Could not check %s against Minecraft %s: %v", meta.ModID, gameVersion, err)
	case !ok:
		log.Log.Warn("%s declares Minecraft %s, but %s is configured.", meta.ModID, meta.GameRange, gameVersion)
	}
}
