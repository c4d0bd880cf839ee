// Package config loads runtime settings from defaults, an optional file and RALLY_ environment variables
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/store"
)

// StoreConfig selects the rank record backend
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// AudioConfig controls the sound triggers
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// Config is the decoded settings tree
type Config struct {
	Seed      uint64      `mapstructure:"seed"` // 0 seeds from the clock
	TickRate  int         `mapstructure:"tickRate"`
	LogLevel  string      `mapstructure:"logLevel"`
	LogFile   string      `mapstructure:"logFile"`
	SentryDSN string      `mapstructure:"sentryDsn"`
	Store     StoreConfig `mapstructure:"store"`
	Audio     AudioConfig `mapstructure:"audio"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("tickRate", parameter.TickRate)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "rally.log")
	v.SetDefault("sentryDsn", "")

	v.SetDefault("store.driver", store.DriverSQLite)
	v.SetDefault("store.dsn", "rally.db")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
}

// Load reads the settings, path may be empty to use defaults and environment only
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("RALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 1000 {
		return fmt.Errorf("tickRate %d out of range (1..1000)", c.TickRate)
	}
	switch c.Store.Driver {
	case store.DriverMemory, store.DriverSQLite, store.DriverPostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %f out of range (0..1)", c.Audio.Volume)
	}
	return nil
}
