// Package config loads and validates application configuration from
// environment variables and an optional config file.
package config

import "time"

// Config holds all application configuration, organized into logical
// groups.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Articles ArticlesConfig `mapstructure:"articles" validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}

// DatabaseConfig contains the database connection and pool settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"required,gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"required"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout" validate:"required"`
}

// ArticlesConfig contains article-specific behavior switches.
type ArticlesConfig struct {
	// DeletePolicy controls what happens to comments when their article
	// is deleted: cascade, restrict, or orphan.
	DeletePolicy string `mapstructure:"delete_policy" validate:"required,oneof=cascade restrict orphan"`
}
