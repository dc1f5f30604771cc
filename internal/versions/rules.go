// /internal/versions/rules.go
package versions

import (
	"regexp"
	"runtime"
)

type Rule struct {
	Action   string          `json:"action"`
	OS       *OSRule         `json:"os,omitempty"`
	Features map[string]bool `json:"features,omitempty"`
}

type OSRule struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	Arch    string `json:"arch,omitempty"`
}

// Environment is what rules are evaluated against.
type Environment struct {
	OS       string // windows, osx, linux
	Arch     string // x86, x86_64, arm64
	Version  string // host OS release, matched by os.version patterns
	Features map[string]bool
}

// CurrentEnvironment describes the running host with the given features on.
func CurrentEnvironment(features map[string]bool) Environment {
	return Environment{
		OS:       OSName(runtime.GOOS),
		Arch:     ArchName(runtime.GOARCH),
		Version:  osVersion(),
		Features: features,
	}
}

// OSName maps GOOS onto the names used in descriptors.
func OSName(goos string) string {
	switch goos {
	case "darwin":
		return "osx"
	default:
		return goos
	}
}

func ArchName(goarch string) string {
	switch goarch {
	case "386":
		return "x86"
	case "amd64":
		return "x86_64"
	default:
		return goarch
	}
}

// Allowed applies rules in order; the last matching rule wins. No rules
// means allowed, rules with no match mean disallowed.
func (e Environment) Allowed(rules []Rule) bool {
	if len(rules) == 0 {
		return true
	}
	allowed := false
	for _, r := range rules {
		if e.matches(r) {
			allowed = r.Action == "allow"
		}
	}
	return allowed
}

func (e Environment) matches(r Rule) bool {
	if r.OS != nil {
		if r.OS.Name != "" && r.OS.Name != e.OS {
			return false
		}
		if r.OS.Arch != "" && r.OS.Arch != e.Arch {
			return false
		}
		if r.OS.Version != "" {
			re, err := regexp.Compile(r.OS.Version)
			if err != nil || !re.MatchString(e.Version) {
				return false
			}
		}
	}
	for name, want := range r.Features {
		if e.Features[name] != want {
			return false
		}
	}
	return true
}
