// Package config loads rapport settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// EnvRedisAddr overrides store.redis.addr when set.
const EnvRedisAddr = "RAPPORT_REDIS_ADDR"

// Config is the root configuration.
type Config struct {
	Name     string      `mapstructure:"name"`
	LogLevel string      `mapstructure:"log_level"`
	HTTP     HTTPConfig  `mapstructure:"http"`
	Store    StoreConfig `mapstructure:"store"`
}

type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

type StoreConfig struct {
	Driver string      `mapstructure:"driver"`
	Path   string      `mapstructure:"path"`
	Redis  RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
	Lock     bool          `mapstructure:"lock"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Name:     "Joe",
		LogLevel: "info",
		HTTP:     HTTPConfig{Port: "8080"},
		Store: StoreConfig{
			Driver: DriverMemory,
			Path:   ".rapport/people",
			Redis: RedisConfig{
				Addr:    "localhost:6379",
				Prefix:  "rapport:",
				LockTTL: 30 * time.Second,
			},
		},
	}
}

// Load reads the YAML file at path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := Decode(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		cfg.Store.Redis.Addr = addr
	}

	return cfg, cfg.Validate()
}

// Decode parses YAML into a generic map and decodes it onto cfg, keeping unset fields.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

