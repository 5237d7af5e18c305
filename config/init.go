package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init loads config.yaml (if present) via viper, then lets environment
// variables override individual fields via envconfig. Environment always
// wins so containerized deployments need no config file at all.
func Init() {
	once.Do(func() {
		cfg := defaultConfig()

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err == nil {
			if err := v.Unmarshal(cfg); err != nil {
				panic(fmt.Errorf("unmarshal config file: %w", err))
			}
		} else if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(fmt.Errorf("read config file: %w", err))
		}

		if err := envconfig.Process("PORTAL", cfg); err != nil {
			panic(fmt.Errorf("process env config: %w", err))
		}

		normalize(cfg)
		instance = cfg
	})
}

// Get returns the loaded config, initializing it on first use.
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

func defaultConfig() *Config {
	return &Config{
		Host:   "0.0.0.0",
		Port:   "8080",
		Prefix: "api",
		Mode:   ModeDebug,
		JWT: JWT{
			AccessExpire: 7 * 24 * 3600,
		},
		Log: Log{
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
		Superadmin: Superadmin{
			Username: "admin",
			Password: "admin123",
		},
	}
}

func normalize(cfg *Config) {
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	cfg.Superadmin.Username = strings.ToLower(cfg.Superadmin.Username)
	switch cfg.Mode {
	case ModeDebug, ModeRelease:
	default:
		cfg.Mode = ModeDebug
	}
}

// Set replaces the loaded config. Tests use it to run modules against a
// known configuration without touching the environment.
func Set(cfg *Config) {
	once.Do(func() {})
	normalize(cfg)
	instance = cfg
}
