package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Sources maps a source id to the remote path of its log file.
	// Relative paths resolve against RemoteRoot.
	Sources map[string]string `mapstructure:"sources"`

	// RemoteRoot is the prefix for relative source paths.
	RemoteRoot string `mapstructure:"remote_root"`

	// StagingDir is where fetched log files are staged locally.
	StagingDir string `mapstructure:"staging_dir"`

	// Default values for the query command
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for the query command
type DefaultsConfig struct {
	Entries     int    `mapstructure:"entries"`
	MinSeverity string `mapstructure:"min_severity"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:     "text",
		Quiet:      false,
		Verbose:    false,
		Sources:    map[string]string{},
		StagingDir: filepath.Join(os.TempDir(), "logq"),
		Defaults: DefaultsConfig{
			Entries:     100,
			MinSeverity: "WARNING",
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.logq.yaml or ./.logq.yml
// 2. ~/.logq.yaml or ~/.logq.yml
// 3. $XDG_CONFIG_HOME/logq/config.yaml (or ~/.config/logq/config.yaml)
// 4. /etc/logq/config.yaml
func Load() (*Config, error) {
	configFile := findConfigFile()
	if configFile == "" {
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	cfg, err := LoadFromFile(configFile)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".logq.yaml", ".logq.yml", "logq.yaml", "logq.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	var searchPaths []string

	// 1. Current directory
	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}

	// 2. Home directory
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}

	// 3. Config directory (e.g., ~/.config/logq/)
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "logq"))
	}

	// 4. System config
	searchPaths = append(searchPaths, "/etc/logq")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGQ_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGQ_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("LOGQ_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("LOGQ_REMOTE_ROOT"); v != "" {
		cfg.RemoteRoot = v
	}
	if v := os.Getenv("LOGQ_STAGING_DIR"); v != "" {
		cfg.StagingDir = v
	}
	if v := os.Getenv("LOGQ_ENTRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.Entries = n
		}
	}
	if v := os.Getenv("LOGQ_MIN_SEVERITY"); v != "" {
		cfg.Defaults.MinSeverity = v
	}
}
