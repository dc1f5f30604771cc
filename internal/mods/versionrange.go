// /internal/mods/versionrange.go
package mods

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var ErrInvalidVersionRange = errors.New("invalid forge version range")

// One maven interval: an opening bracket, optional bounds and a closing bracket.
var intervalPattern = regexp.MustCompile(`^([(\[])([0-9][0-9.]*)?,([0-9][0-9.]*)?([)\]])`)

// "[1.20.1]" pins a single version.
var pinnedPattern = regexp.MustCompile(`^\[([0-9][0-9.]*)\]`)

// ForgeVersionRange converts a maven style range such as "[1.20,1.21)" or
// "(,1.0],[1.2,)" into semver constraints. A bare version means exactly
// that version.
func ForgeVersionRange(s string) (*semver.Constraints, error) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil, ErrInvalidVersionRange
	}
	if s[0] != '[' && s[0] != '(' {
		v, err := semver.NewVersion(s)
		if err != nil {
			return nil, err
		}
		return semver.NewConstraint("=" + v.String())
	}

	var groups []string
	for s != "" {
		var group string
		var err error
		m := pinnedPattern.FindStringSubmatch(s)
		if m != nil {
			group, err = interval(true, m[1], m[1], true)
		} else if m = intervalPattern.FindStringSubmatch(s); m != nil {
			group, err = interval(m[1] == "[", m[2], m[3], m[4] == "]")
		} else {
			return nil, ErrInvalidVersionRange
		}
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)

		s = s[len(m[0]):]
		if s != "" {
			if s[0] != ',' {
				return nil, ErrInvalidVersionRange
			}
			s = s[1:]
		}
	}
	return semver.NewConstraint(strings.Join(groups, " || "))
}

func interval(lowIncl bool, low, high string, highIncl bool) (string, error) {
	var parts []string
	if low != "" {
		v, err := semver.NewVersion(low)
		if err != nil {
			return "", err
		}
		op := ">"
		if lowIncl {
			op = ">="
		}
		parts = append(parts, op+v.String())
	}
	if high != "" {
		v, err := semver.NewVersion(high)
		if err != nil {
			return "", err
		}
		op := "<"
		if highIncl {
			op = "<="
		}
		parts = append(parts, op+v.String())
	}
	if len(parts) == 0 {
		return "*", nil
	}
	return strings.Join(parts, ", "), nil
}
