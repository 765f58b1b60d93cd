package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (e.g., CARDSORT_DEBUG)
const EnvPrefix = "CARDSORT"

// Config holds the runtime settings shared by every cardsort binary
type Config struct {
	// BoardPath is the JSON board file; empty means an in-memory board
	BoardPath       string
	ExportDir       string
	ExportFormat    string
	LogFile         string
	// Editor overrides $EDITOR for editing the card list
	Editor          string
	Debug           bool
	SeedDemo        bool
	InvariantChecks bool
}

// Load reads configuration from cfgFile when given, otherwise from
// config.yaml in the cardsort config directory if present. Environment
// variables override file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("board", "")
	v.SetDefault("export_dir", ".")
	v.SetDefault("export_format", "json")
	v.SetDefault("log_file", filepath.Join(dataDir(), "cardsort.log"))
	v.SetDefault("editor", "")
	v.SetDefault("debug", false)
	v.SetDefault("seed_demo", true)
	v.SetDefault("invariant_checks", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		BoardPath:       ExpandHome(v.GetString("board")),
		ExportDir:       ExpandHome(v.GetString("export_dir")),
		ExportFormat:    v.GetString("export_format"),
		LogFile:         ExpandHome(v.GetString("log_file")),
		Editor:          v.GetString("editor"),
		Debug:           v.GetBool("debug"),
		SeedDemo:        v.GetBool("seed_demo"),
		InvariantChecks: v.GetBool("invariant_checks"),
	}, nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cardsort")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cardsort")
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "cardsort")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "cardsort")
}
