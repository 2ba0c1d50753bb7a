package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/matsen/lore/internal/loreerr"
)

// GlobalConfig represents configuration stored in ~/.config/lore/config.yml.
type GlobalConfig struct {
	DBPath      string `yaml:"db_path,omitempty"`
	StrictDates bool   `yaml:"strict_dates,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "lore"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/lore/config.yml.
// Returns "" when neither variable is set.
func GlobalConfigPath(e Env) string {
	configHome := e.ConfigHome
	if configHome == "" {
		if e.Home == "" {
			return ""
		}
		configHome = filepath.Join(e.Home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig(e Env) (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath(e)
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, loreerr.Wrap(loreerr.CodeConfig, "reading global config", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, loreerr.Wrap(loreerr.CodeConfig, fmt.Sprintf("parsing global config %s", path), err)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}
