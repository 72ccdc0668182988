// Package config loads shopmania settings from defaults, an optional config
// file and SHOPMANIA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hammamikhairi/shopmania/internal/domain"
	"github.com/hammamikhairi/shopmania/internal/recipe"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "shopmania"
	// ConfigFileName is the config file name without extension. Any format
	// viper understands (toml, yaml, json) is accepted.
	ConfigFileName = "shopmania"
	// EnvPrefix prefixes environment overrides, e.g. SHOPMANIA_LOG_LEVEL.
	EnvPrefix = "SHOPMANIA"
)

// Config is the full application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is "off", "normal" or "verbose".
	Level string `mapstructure:"level"`
	// File receives log output; "stderr" logs to the console.
	File string `mapstructure:"file"`
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	// Plain reads stdin line by line instead of running the full-screen UI.
	Plain bool `mapstructure:"plain"`
	// Banner prints the start-up banner.
	Banner bool `mapstructure:"banner"`
}

// CatalogConfig controls the recipe catalog.
type CatalogConfig struct {
	// Builtin seeds the catalog with the built-in cook book.
	Builtin bool `mapstructure:"builtin"`
	// Recipes are appended after the built-ins.
	Recipes []RecipeEntry `mapstructure:"recipes"`
}

// RecipeEntry is a recipe as written in a config file: a name and its
// comma-joined ingredient lines.
type RecipeEntry struct {
	Name        string `mapstructure:"name"`
	Ingredients string `mapstructure:"ingredients"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "normal",
			File:  filepath.Join(".shopmania-logs", "shopmania.log"),
		},
		UI: UIConfig{
			Plain:  false,
			Banner: true,
		},
		Catalog: CatalogConfig{
			Builtin: true,
		},
	}
}

// Load reads the configuration. If path is empty the working directory and
// the user config directory are searched for a shopmania.* file; finding
// none is not an error. An explicit path must exist.
func Load(path string) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("ui.plain", defaults.UI.Plain)
	v.SetDefault("ui.banner", defaults.UI.Banner)
	v.SetDefault("catalog.builtin", defaults.Catalog.Builtin)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(".")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	resolved := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("reading config: %w", err)
		}
	} else {
		resolved = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, resolved, nil
}

// Dir returns $XDG_CONFIG_HOME/shopmania, defaulting to ~/.config/shopmania.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// CatalogRecipes decodes the configured recipes. A malformed entry fails the
// whole catalog so a typo is not silently dropped.
func (c *Config) CatalogRecipes() ([]domain.Recipe, error) {
	out := make([]domain.Recipe, 0, len(c.Catalog.Recipes))
	for i, entry := range c.Catalog.Recipes {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog recipe %d: %w", i+1, domain.ErrEmptyRecipeName)
		}
		r, err := recipe.FromRaw(name, entry.Ingredients)
		if err != nil {
			return nil, fmt.Errorf("catalog recipe %d: %w", i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}
