// Package config loads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Everything has a default
// suitable for local demo use; deployments override via environment
// variables.
type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	StorageDriver string `mapstructure:"STORAGE_DRIVER"` // file | sqlite | memory
	StoragePath   string `mapstructure:"STORAGE_PATH"`
	CORSOrigins   string `mapstructure:"CORS_ORIGINS"` // comma-separated
	NotifyTTLSecs int    `mapstructure:"NOTIFICATION_TTL_SECONDS"`
}

// NotificationTTL returns the configured notification lifetime.
func (c Config) NotificationTTL() time.Duration {
	return time.Duration(c.NotifyTTLSecs) * time.Second
}

// Load reads configuration from environment variables, falling back to
// defaults.
func Load() (config Config, err error) {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("STORAGE_PATH", "./data/hr-state.json")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:8080")
	viper.SetDefault("NOTIFICATION_TTL_SECONDS", 5)

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	return
}
