// /internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"forge-launcher/internal/log"
	"forge-launcher/internal/util"

	"gopkg.in/yaml.v3"
)

const (
	DefaultVersionID    = "1.20.1-forge-47.4.0"
	DefaultInstallerURL = "https://github.com/Jenaru0/MyMinecraftLauncher/releases/download/minecraft/forge-1.20.1-47.4.0-installer.jar"
	DefaultModURL       = "https://github.com/Jenaru0/MyMinecraftLauncher/releases/download/minecraft/jei-1.20.1-forge-15.20.0.106.jar"

	DefaultWidth  = 854
	DefaultHeight = 480

	// File names inside the game directory.
	InstallerFileName  = "forge_installer.jar"
	ProfilesFileName   = "launcher_profiles.json"
	StaleExtraFileName = "TLauncherAdditional.json"
)

// ModFailurePolicy decides whether a failed mod placement stops the launch.
type ModFailurePolicy string

const (
	ModFailureAbort    ModFailurePolicy = "abort"
	ModFailureContinue ModFailurePolicy = "continue"
)

// Config holds all application settings. Zero values are never used
// directly; Default fills every field.
type Config struct {
	GameDir          string           `yaml:"game_dir"`
	VersionID        string           `yaml:"version_id"`
	InstallerURL     string           `yaml:"installer_url"`
	ModURL           string           `yaml:"mod_url"`
	JavaPath         string           `yaml:"java_path"`
	Width            int              `yaml:"width"`
	Height           int              `yaml:"height"`
	LogLevel         string           `yaml:"log_level"`
	ModFailure       ModFailurePolicy `yaml:"mod_failure"`
	WatchCrashes     bool             `yaml:"watch_crashes"`
	RememberUsername bool             `yaml:"remember_username"`
}

// Default returns the built-in configuration rooted at the platform's
// standard Minecraft directory.
func Default() (*Config, error) {
	gameDir, err := DefaultGameDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		GameDir:          gameDir,
		VersionID:        DefaultVersionID,
		InstallerURL:     DefaultInstallerURL,
		ModURL:           DefaultModURL,
		JavaPath:         "java",
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		LogLevel:         "quiet",
		ModFailure:       ModFailureAbort,
		RememberUsername: true,
	}, nil
}

// DefaultGameDir returns the directory the vanilla launcher uses.
func DefaultGameDir() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, ".minecraft"), nil
		}
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user home directory: %w", err)
	}
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming", ".minecraft"), nil
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "minecraft"), nil
	default:
		return filepath.Join(homeDir, ".minecraft"), nil
	}
}

// DefaultConfigPath is where Load looks when no path is given.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "forge-launcher", "config.yml"), nil
}

// Load builds the configuration from defaults overlaid with the YAML file at
// path. An empty path falls back to DefaultConfigPath, which may be absent.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path, err = DefaultConfigPath()
		if err != nil || !util.FileExists(path) {
			return cfg, nil
		}
	}

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	log.Log.Debug("Loaded configuration from %s", path)
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate rejects configurations the workflow cannot run with.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.GameDir) == "" {
		problems = append(problems, "game_dir is empty")
	}
	if strings.TrimSpace(c.VersionID) == "" {
		problems = append(problems, "version_id is empty")
	}
	if strings.TrimSpace(c.InstallerURL) == "" {
		problems = append(problems, "installer_url is empty")
	}
	if _, err := util.BaseNameFromURL(c.ModURL); err != nil {
		problems = append(problems, fmt.Sprintf("mod_url: %v", err))
	}
	if strings.TrimSpace(c.JavaPath) == "" {
		problems = append(problems, "java_path is empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		problems = append(problems, fmt.Sprintf("resolution %dx%d is not positive", c.Width, c.Height))
	}
	switch c.ModFailure {
	case ModFailureAbort, ModFailureContinue:
	default:
		problems = append(problems, fmt.Sprintf("mod_failure %q is not one of abort, continue", c.ModFailure))
	}
	if !log.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("log_level %q is not one of debug, info, warn, error, quiet", c.LogLevel))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) VersionsDir() string  { return filepath.Join(c.GameDir, "versions") }
func (c *Config) ModsDir() string      { return filepath.Join(c.GameDir, "mods") }
func (c *Config) LibrariesDir() string { return filepath.Join(c.GameDir, "libraries") }
func (c *Config) AssetsDir() string    { return filepath.Join(c.GameDir, "assets") }
func (c *Config) CrashReportsDir() string {
	return filepath.Join(c.GameDir, "crash-reports")
}
func (c *Config) ProfilesPath() string  { return filepath.Join(c.GameDir, ProfilesFileName) }
func (c *Config) InstallerPath() string { return filepath.Join(c.GameDir, InstallerFileName) }

// VersionDir is versions/<id>.
func (c *Config) VersionDir() string { return filepath.Join(c.VersionsDir(), c.VersionID) }

// VersionDescriptorPath is the install marker versions/<id>/<id>.json.
func (c *Config) VersionDescriptorPath() string {
	return filepath.Join(c.VersionDir(), c.VersionID+".json")
}

// StaleExtraPath is the third-party launcher metadata that confuses the
// Forge installer when left next to the descriptor.
func (c *Config) StaleExtraPath() string {
	return filepath.Join(c.VersionDir(), StaleExtraFileName)
}

// ModPath is mods/<basename of the mod URL>.
func (c *Config) ModPath() (string, error) {
	name, err := util.BaseNameFromURL(c.ModURL)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.ModsDir(), name), nil
}

// GameVersion is the vanilla version the profile is built on, e.g. "1.20.1"
// for "1.20.1-forge-47.4.0".
func (c *Config) GameVersion() string {
	if i := strings.Index(c.VersionID, "-"); i > 0 {
		return c.VersionID[:i]
	}
	return c.VersionID
}
