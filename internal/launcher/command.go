// /internal/launcher/command.go
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"forge-launcher/internal/versions"
)

const (
	LauncherName    = "forge-launcher"
	LauncherVersion = "1.0"

	featureCustomResolution = "has_custom_resolution"
)

// ResolveError means the installed metadata could not be turned into a
// runnable command.
type ResolveError struct {
	Version string
	Err     error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve launch command for %s: %v", e.Version, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Options is everything needed to build the game's command line.
type Options struct {
	Username   string
	UUID       string // dash-less; derived from Username when empty
	Token      string
	UserType   string
	Version    string
	GameDir    string
	AssetsDir  string
	JavaPath   string
	Width      int
	Height     int
	NativesDir string // defaults to versions/<id>/natives
}

// Command is a resolved launch: the program, its arguments and what they
// were built from.
type Command struct {
	Path       string
	Args       []string
	Descriptor *versions.Descriptor
	NativesDir string
}

// Argv is the full command line, program first.
func (c *Command) Argv() []string {
	return append([]string{c.Path}, c.Args...)
}

// Resolve loads the installed descriptor for opts.Version and expands it into
// a command line using env for rule evaluation.
func Resolve(opts Options, env versions.Environment) (*Command, error) {
	if strings.TrimSpace(opts.Username) == "" {
		return nil, &ResolveError{Version: opts.Version, Err: fmt.Errorf("username is empty")}
	}
	versionsDir := filepath.Join(opts.GameDir, "versions")
	desc, err := versions.Load(versionsDir, opts.Version)
	if err != nil {
		return nil, &ResolveError{Version: opts.Version, Err: err}
	}
	if desc.MainClass == "" {
		return nil, &ResolveError{Version: opts.Version, Err: fmt.Errorf("descriptor has no mainClass")}
	}
	opts = withDefaults(opts, versionsDir)

	librariesDir := filepath.Join(opts.GameDir, "libraries")
	classpath, err := buildClasspath(desc, env, librariesDir, versionsDir)
	if err != nil {
		return nil, &ResolveError{Version: opts.Version, Err: err}
	}

	values := map[string]string{
		"auth_player_name":    opts.Username,
		"version_name":        opts.Version,
		"game_directory":      opts.GameDir,
		"assets_root":         opts.AssetsDir,
		"game_assets":         opts.AssetsDir,
		"assets_index_name":   desc.AssetIndexName(),
		"auth_uuid":           opts.UUID,
		"auth_access_token":   opts.Token,
		"auth_session":        opts.Token,
		"auth_xuid":           "0",
		"clientid":            "0",
		"user_type":           opts.UserType,
		"user_properties":     "{}",
		"version_type":        versionType(desc),
		"natives_directory":   opts.NativesDir,
		"launcher_name":       LauncherName,
		"launcher_version":    LauncherVersion,
		"classpath":           strings.Join(classpath, string(os.PathListSeparator)),
		"classpath_separator": string(os.PathListSeparator),
		"library_directory":   librariesDir,
		"resolution_width":    strconv.Itoa(opts.Width),
		"resolution_height":   strconv.Itoa(opts.Height),
	}
	pairs := make([]string, 0, 2*len(values))
	for k, v := range values {
		pairs = append(pairs, "${"+k+"}", v)
	}
	expand := strings.NewReplacer(pairs...).Replace

	var args []string
	if desc.Arguments != nil && len(desc.Arguments.JVM) > 0 {
		args = append(args, expandArguments(desc.Arguments.JVM, env, expand)...)
	} else {
		args = append(args,
			expand("-Djava.library.path=${natives_directory}"),
			"-cp", values["classpath"],
		)
	}
	args = append(args, desc.MainClass)

	if desc.Arguments != nil && len(desc.Arguments.Game) > 0 {
		game := expandArguments(desc.Arguments.Game, env, expand)
		args = append(args, game...)
		if !containsFlag(game, "--width") {
			args = append(args, "--width", values["resolution_width"], "--height", values["resolution_height"])
		}
	} else {
		for _, a := range strings.Fields(desc.MinecraftArguments) {
			args = append(args, expand(a))
		}
		args = append(args, "--width", values["resolution_width"], "--height", values["resolution_height"])
	}

	return &Command{Path: opts.JavaPath, Args: args, Descriptor: desc, NativesDir: opts.NativesDir}, nil
}

// LaunchEnvironment is the host environment with custom resolution on, the
// only optional feature this launcher provides.
func LaunchEnvironment() versions.Environment {
	return versions.CurrentEnvironment(map[string]bool{featureCustomResolution: true})
}

func withDefaults(opts Options, versionsDir string) Options {
	if opts.UUID == "" {
		opts.UUID = compactUUID(OfflineUUID(opts.Username))
	}
	if opts.Token == "" {
		opts.Token = "0"
	}
	if opts.UserType == "" {
		opts.UserType = "legacy"
	}
	if opts.AssetsDir == "" {
		opts.AssetsDir = filepath.Join(opts.GameDir, "assets")
	}
	if opts.JavaPath == "" {
		opts.JavaPath = "java"
	}
	if opts.NativesDir == "" {
		opts.NativesDir = filepath.Join(versionsDir, opts.Version, "natives")
	}
	return opts
}

func expandArguments(list []versions.Argument, env versions.Environment, expand func(string) string) []string {
	var out []string
	for _, a := range list {
		if !env.Allowed(a.Rules) {
			continue
		}
		for _, v := range a.Values {
			out = append(out, expand(v))
		}
	}
	return out
}

// buildClasspath lists allowed library jars followed by the client jar.
// Native-only libraries are extracted instead and never go on the classpath.
func buildClasspath(desc *versions.Descriptor, env versions.Environment, librariesDir, versionsDir string) ([]string, error) {
	var cp []string
	for _, lib := range desc.Libraries {
		if !env.Allowed(lib.Rules) {
			continue
		}
		if len(lib.Natives) > 0 && (lib.Downloads == nil || lib.Downloads.Artifact == nil) {
			continue
		}
		rel, err := lib.ArtifactPath()
		if err != nil {
			return nil, err
		}
		cp = append(cp, filepath.Join(librariesDir, rel))
	}
	return append(cp, ClientJarPath(desc, versionsDir)), nil
}

// ClientJarPath is versions/<jar>/<jar>.jar for the descriptor's JarID.
func ClientJarPath(desc *versions.Descriptor, versionsDir string) string {
	id := desc.JarID()
	return filepath.Join(versionsDir, id, id+".jar")
}

func versionType(desc *versions.Descriptor) string {
	if desc.Type != "" {
		return desc.Type
	}
	return LauncherName
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
