// /internal/profiles/profiles.go

// Package profiles manages launcher_profiles.json, the registry the Forge
// installer refuses to run without.
package profiles

import (
	"encoding/json"
	"fmt"
	"os"

	"forge-launcher/internal/log"
	"forge-launcher/internal/util"

	"github.com/google/uuid"
)

// Registry mirrors the vanilla launcher's profile file. Field order is the
// on-disk order.
type Registry struct {
	Profiles               map[string]any `json:"profiles"`
	SelectedProfile        string         `json:"selectedProfile"`
	ClientToken            string         `json:"clientToken"`
	AuthenticationDatabase map[string]any `json:"authenticationDatabase"`
}

// Default is the minimal registry: no profiles and the all-zero client token.
func Default() Registry {
	return Registry{
		Profiles:               map[string]any{},
		SelectedProfile:        "",
		ClientToken:            uuid.Nil.String(),
		AuthenticationDatabase: map[string]any{},
	}
}

// Ensure creates the default registry at path if nothing is there. An
// existing file is left as is. It reports whether a file was written.
func Ensure(path string) (bool, error) {
	if util.PathExists(path) {
		return false, nil
	}
	log.Log.Info("%s not found, creating a minimal one...", path)
	if err := util.WriteJSONFile(path, Default(), "    "); err != nil {
		return false, fmt.Errorf("create profile registry %s: %w", path, err)
	}
	return true, nil
}

// Read decodes the registry at path.
func Read(path string) (Registry, error) {
	var reg Registry
	data, err := os.ReadFile(path)
	if err != nil {
		return reg, err
	}
	if err := json.Unmarshal(data, &reg); err != nil {
		return reg, fmt.Errorf("parse %s: %w", path, err)
	}
	return reg, nil
}
