package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/heyojules/flippr/internal/kvstore"
	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/nightmode"
	"github.com/spf13/viper"
)

const (
	defaultStoreKey          = model.DefaultStoreKey
	defaultStoreDriver       = model.DefaultStoreDriver
	defaultSwipeThreshold    = model.DefaultSwipeThreshold
	defaultFrameInterval     = model.DefaultFrameInterval
	defaultNightStartHour    = model.DefaultNightStartHour
	defaultNightEndHour      = model.DefaultNightEndHour
	defaultNightPollInterval = model.DefaultNightPollInterval
)

// appConfig is internal runtime configuration.
type appConfig struct {
	Items             []string      `mapstructure:"items" yaml:"items"`
	AssetsDir         string        `mapstructure:"assets-dir" yaml:"assets-dir"`
	StoreDriver       string        `mapstructure:"store-driver" yaml:"store-driver"`
	StorePath         string        `mapstructure:"store-path" yaml:"store-path"`
	StoreKey          string        `mapstructure:"store-key" yaml:"store-key"`
	SwipeThreshold    float64       `mapstructure:"swipe-threshold" yaml:"swipe-threshold"`
	FrameInterval     time.Duration `mapstructure:"frame-interval" yaml:"frame-interval"`
	NightStartHour    int           `mapstructure:"night-start-hour" yaml:"night-start-hour"`
	NightEndHour      int           `mapstructure:"night-end-hour" yaml:"night-end-hour"`
	NightPollInterval time.Duration `mapstructure:"night-poll-interval" yaml:"night-poll-interval"`
	SoundEnabled      bool          `mapstructure:"sound-enabled" yaml:"sound-enabled"`
	SoundPlayer       string        `mapstructure:"sound-player" yaml:"sound-player"`
	LogFile           string        `mapstructure:"log-file" yaml:"log-file"`
	ConfigPath        string        `mapstructure:"-" yaml:"-"` // not from config file
}

func (c appConfig) nightSchedule() nightmode.Schedule {
	return nightmode.Schedule{StartHour: c.NightStartHour, EndHour: c.NightEndHour}
}

// defaultStorePath returns the store location for driver under dataDir.
func defaultStorePath(dataDir, driver string) string {
	switch driver {
	case kvstore.DriverSQLite:
		return filepath.Join(dataDir, "flippr.sqlite")
	case kvstore.DriverDuckDB:
		return filepath.Join(dataDir, "flippr.duckdb")
	default:
		return filepath.Join(dataDir, "stats.json")
	}
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	dataDir := filepath.Join(home, ".local", "share", "flippr")

	v := viper.New()
	v.SetEnvPrefix("FLIPPR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("items", model.DefaultItems)
	v.SetDefault("assets-dir", filepath.Join(dataDir, "assets"))
	v.SetDefault("store-driver", defaultStoreDriver)
	v.SetDefault("store-path", "")
	v.SetDefault("store-key", defaultStoreKey)
	v.SetDefault("swipe-threshold", defaultSwipeThreshold)
	v.SetDefault("frame-interval", defaultFrameInterval)
	v.SetDefault("night-start-hour", defaultNightStartHour)
	v.SetDefault("night-end-hour", defaultNightEndHour)
	v.SetDefault("night-poll-interval", defaultNightPollInterval)
	v.SetDefault("sound-enabled", true)
	v.SetDefault("sound-player", "")
	v.SetDefault("log-file", filepath.Join(dataDir, "flippr.log"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "flippr", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	// Env overrides arrive as one comma-separated string.
	if len(cfg.Items) == 1 && strings.Contains(cfg.Items[0], ",") {
		cfg.Items = strings.Split(cfg.Items[0], ",")
	}
	for i, id := range cfg.Items {
		cfg.Items[i] = strings.TrimSpace(id)
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}

	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath(dataDir, cfg.StoreDriver)
	}

	// Expand ~ in paths
	for _, p := range []*string{&cfg.AssetsDir, &cfg.StorePath, &cfg.LogFile} {
		if strings.HasPrefix(*p, "~/") {
			*p = filepath.Join(home, (*p)[2:])
		}
	}

	return cfg, nil
}

func validateConfig(cfg appConfig) error {
	if len(cfg.Items) == 0 {
		return errors.New("items must not be empty")
	}
	seen := make(map[string]bool, len(cfg.Items))
	for _, id := range cfg.Items {
		if id == "" || id == model.IntroID {
			return fmt.Errorf("invalid item id: %q", id)
		}
		if seen[id] {
			return fmt.Errorf("duplicate item id: %q", id)
		}
		seen[id] = true
	}
	if !slices.Contains(kvstore.Drivers, cfg.StoreDriver) {
		return fmt.Errorf("invalid store-driver: %q (want one of %s)", cfg.StoreDriver, strings.Join(kvstore.Drivers, ", "))
	}
	if cfg.StoreKey == "" {
		return errors.New("store-key must not be empty")
	}
	if cfg.SwipeThreshold <= 0 || cfg.SwipeThreshold >= 1 {
		return fmt.Errorf("invalid swipe-threshold: %v", cfg.SwipeThreshold)
	}
	if cfg.FrameInterval <= 0 {
		return fmt.Errorf("invalid frame-interval: %s", cfg.FrameInterval)
	}
	if cfg.NightPollInterval <= 0 {
		return fmt.Errorf("invalid night-poll-interval: %s", cfg.NightPollInterval)
	}
	if err := cfg.nightSchedule().Validate(); err != nil {
		return err
	}
	return nil
}
