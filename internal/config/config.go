// Package config resolves where the lore database lives and how strictly
// dates are validated.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/matsen/lore/internal/loreerr"
)

// DBFile is the hidden file name of the database under the base directory.
const DBFile = ".lore"

// Env holds the environment variables lore reads.
type Env struct {
	Home        string `env:"HOME"`
	PWD         string `env:"PWD"`
	ConfigHome  string `env:"XDG_CONFIG_HOME"`
	DBPath      string `env:"LORE_DB"`
	Local       bool   `env:"LORE_LOCAL"`
	// StrictDates is nil when LORE_STRICT_DATES is unset, so the config
	// file decides.
	StrictDates *bool  `env:"LORE_STRICT_DATES"`
}

// Options are the command-line overrides.
type Options struct {
	DBPath string // --db
	Local  bool   // --local: resolve against $PWD instead of $HOME
}

// Config is the resolved configuration for one invocation.
type Config struct {
	DBPath      string
	StrictDates bool
}

// ParseEnv loads .env from the working directory, if present, then parses
// the process environment into an Env.
func ParseEnv() (Env, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, loreerr.Wrap(loreerr.CodeConfig, "parsing environment", err)
	}
	return e, nil
}

// Load resolves the configuration from the environment, the global config
// file and the command-line overrides.
func Load(opts Options) (*Config, error) {
	e, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	return Resolve(e, opts)
}

// Resolve builds a Config from an already-parsed environment.
func Resolve(e Env, opts Options) (*Config, error) {
	global, err := LoadGlobalConfig(e)
	if err != nil {
		return nil, err
	}

	path, err := ResolveDBPath(e, global, opts)
	if err != nil {
		return nil, err
	}

	strict := global.StrictDates
	if e.StrictDates != nil {
		strict = *e.StrictDates
	}

	return &Config{
		DBPath:      path,
		StrictDates: strict,
	}, nil
}

// ResolveDBPath picks the database path. Precedence: --db, LORE_DB, db_path
// from the global config, then DBFile under $HOME (or $PWD when local).
func ResolveDBPath(e Env, global *GlobalConfig, opts Options) (string, error) {
	if opts.DBPath != "" {
		return ExpandPath(opts.DBPath, e.Home), nil
	}
	if e.DBPath != "" {
		return ExpandPath(e.DBPath, e.Home), nil
	}
	if global != nil && global.DBPath != "" {
		return ExpandPath(global.DBPath, e.Home), nil
	}

	name, base := "HOME", e.Home
	if opts.Local || e.Local {
		name, base = "PWD", e.PWD
	}
	if base == "" {
		return "", loreerr.New(loreerr.CodeConfig, fmt.Sprintf(
			"no $%s environment variable is set up; it is needed to find the location of the %s database", name, DBFile))
	}

	return filepath.Join(base, DBFile), nil
}

// ExpandPath expands a leading "~" or "~/" to home. Other paths, including
// "~user/...", are returned unchanged, as is everything when home is unknown.
func ExpandPath(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
