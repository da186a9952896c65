// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/viper"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port string
}

// DBConfig holds the settings for the local SQLite store.
type DBConfig struct {
	Path string
}

// AIConfig holds the settings for the generative service. APIKey may be
// empty: a missing credential is a review-time error, not a startup error,
// so the server can still serve history without one.
type AIConfig struct {
	APIKey       string
	DefaultModel string
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Config holds the application's configuration values.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	AI     AIConfig
	Log    LogConfig
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates the result. Environment variables take
// precedence over the .env file.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_PATH", "data/code-mentor.db")
	viper.SetDefault("DEFAULT_MODEL", "balanced")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("could not read .env file, relying on environment", "error", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		DB: DBConfig{
			Path: viper.GetString("DB_PATH"),
		},
		AI: AIConfig{
			APIKey:       viper.GetString("GEMINI_API_KEY"),
			DefaultModel: viper.GetString("DEFAULT_MODEL"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid port number, got %q", c.Server.Port)
	}
	if c.DB.Path == "" {
		return fmt.Errorf("DB_PATH must not be empty")
	}
	if c.AI.DefaultModel == "" {
		return fmt.Errorf("DEFAULT_MODEL must not be empty")
	}
	return nil
}
