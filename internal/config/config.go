package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/fruitlist/internal/service"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Catalog  CatalogConfig
	Search   SearchConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// CatalogConfig points at an optional Fruityvice-style JSON catalog that is
// imported on startup.
type CatalogConfig struct {
	Path string
}

// SearchConfig tunes name filtering.
type SearchConfig struct {
	MaxTypoDistance int `mapstructure:"max_typo_distance"`
	FuzzyMinLength  int `mapstructure:"fuzzy_min_length"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialSort string `mapstructure:"initial_sort"`
}

// LogConfig holds the log destination. The terminal is owned by the UI, so
// logs go to a file; an empty path discards them.
type LogConfig struct {
	Path string
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "fruitlist")
}

// Load reads configuration from file and env. Env var overrides use prefix FRUITLIST_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "fruitlist")
	v.SetDefault("database.path", filepath.Join(dataDir, "fruitlist.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("catalog.path", "")
	v.SetDefault("search.max_typo_distance", 1)
	v.SetDefault("search.fuzzy_min_length", 4)
	v.SetDefault("ui.initial_sort", "no_sorting")
	v.SetDefault("log.path", filepath.Join(dataDir, "fruitlist.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FRUITLIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FRUITLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the app cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("config: database.path is empty")
	}
	if c.Search.MaxTypoDistance < 0 {
		return fmt.Errorf("config: search.max_typo_distance must be >= 0, got %d", c.Search.MaxTypoDistance)
	}
	if c.Search.FuzzyMinLength < 0 {
		return fmt.Errorf("config: search.fuzzy_min_length must be >= 0, got %d", c.Search.FuzzyMinLength)
	}
	if _, err := service.ParseNutritionSortType(c.UI.InitialSort); err != nil {
		return fmt.Errorf("config: ui.initial_sort: %w", err)
	}
	return nil
}

// Matcher builds the name matcher described by the search settings.
func (c Config) Matcher() service.NameMatcher {
	return service.NameMatcher{
		MaxTypoDistance: c.Search.MaxTypoDistance,
		FuzzyMinLength:  c.Search.FuzzyMinLength,
	}
}

// InitialSort returns the parsed ui.initial_sort. Call after Validate.
func (c Config) InitialSort() service.NutritionSortType {
	t, _ := service.ParseNutritionSortType(c.UI.InitialSort)
	return t
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("FRUITLIST_CONFIG")
	if path == "" {
		path = filepath.Join(configDir(), "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("search.max_typo_distance", cfg.Search.MaxTypoDistance)
	v.Set("search.fuzzy_min_length", cfg.Search.FuzzyMinLength)
	v.Set("ui.initial_sort", cfg.UI.InitialSort)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
