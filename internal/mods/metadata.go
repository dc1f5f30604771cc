// /internal/mods/metadata.go
package mods

import (
	"archive/zip"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

const modsTomlPath = "META-INF/mods.toml"

var ErrNoModsToml = errors.New("jar has no " + modsTomlPath)

// forgeToml is the subset of META-INF/mods.toml read here.
type forgeToml struct {
	ModLoader     string `toml:"modLoader"`
	LoaderVersion string `toml:"loaderVersion"`
	License       string `toml:"license"`
	Mods          []struct {
		ModID       string `toml:"modId"`
		Version     string `toml:"version"`
		DisplayName string `toml:"displayName"`
	} `toml:"mods"`
	Dependencies map[string][]struct {
		ModID        string `toml:"modId"`
		Mandatory    bool   `toml:"mandatory"`
		VersionRange string `toml:"versionRange"`
		Side         string `toml:"side"`
	} `toml:"dependencies"`
}

// Metadata describes the first mod declared in a jar.
type Metadata struct {
	ModID         string
	Version       string
	DisplayName   string
	LoaderVersion string
	// GameRange is the raw Forge range of the minecraft dependency, empty
	// when none is declared.
	GameRange string
}

// Inspect reads the Forge metadata of the jar at path.
func Inspect(path string) (*Metadata, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != modsTomlPath {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer r.Close()

		var ft forgeToml
		if _, err := toml.NewDecoder(r).Decode(&ft); err != nil {
			return nil, fmt.Errorf("parse %s: %w", modsTomlPath, err)
		}
		return ft.metadata()
	}
	return nil, ErrNoModsToml
}

func (ft *forgeToml) metadata() (*Metadata, error) {
	if len(ft.Mods) == 0 {
		return nil, fmt.Errorf("%s declares no mods", modsTomlPath)
	}
	mod := ft.Mods[0]
	meta := &Metadata{
		ModID:         mod.ModID,
		Version:       mod.Version,
		DisplayName:   mod.DisplayName,
		LoaderVersion: ft.LoaderVersion,
	}
	for _, dep := range ft.Dependencies[mod.ModID] {
		if dep.ModID == "minecraft" {
			meta.GameRange = dep.VersionRange
		}
	}
	return meta, nil
}

// SupportsGame checks gameVersion against the declared minecraft range. A mod
// without a range supports every version.
func (m *Metadata) SupportsGame(gameVersion string) (bool, error) {
	if m.GameRange == "" {
		return true, nil
	}
	c, err := ForgeVersionRange(m.GameRange)
	if err != nil {
		return false, err
	}
	v, err := semver.NewVersion(gameVersion)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
