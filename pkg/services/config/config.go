// Package config loads the application configuration from an optional
// YAML file with environment overrides for deploy-time values.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type EmailConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	FromName  string `mapstructure:"from_name"`
	FromEmail string `mapstructure:"from_email"`
	ReplyTo   string `mapstructure:"reply_to"`
}

type AppConfig struct {
	Server      ServerConfig   `mapstructure:"server"`
	Postgres    PostgresConfig `mapstructure:"postgres"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Email       EmailConfig    `mapstructure:"email"`
	CatalogPath string         `mapstructure:"catalog_path"`
}

// Load reads the config file at path (optional) and applies environment
// overrides with the QUOTEFORGE_ prefix, e.g. QUOTEFORGE_POSTGRES_DSN.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	// Every key needs a default so environment overrides are visible to
	// Unmarshal.
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.access_key", "")
	v.SetDefault("email.secret_key", "")
	v.SetDefault("email.from_name", "")
	v.SetDefault("email.from_email", "")
	v.SetDefault("email.reply_to", "")
	v.SetDefault("catalog_path", "")

	v.SetEnvPrefix("QUOTEFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Addr joins the configured host and port.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}
