package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	schemePostgres   = "postgres://"
	schemePostgresQL = "postgresql://"
)

type (
	Config struct {
		Host        string `mapstructure:"HOST"`
		Port        string `mapstructure:"PORT"`
		DatabaseURL string `mapstructure:"DATABASE_URL"`
		SQLitePath  string `mapstructure:"SQLITE_PATH"`
		LogLevel    string `mapstructure:"LOG_LEVEL"`
	}
)

func NewConfig() (*Config, error) {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "/tmp/test.db")
	viper.SetDefault("LOG_LEVEL", "info")

	envs := []string{"HOST", "PORT", "DATABASE_URL", "SQLITE_PATH", "LOG_LEVEL"}
	for _, key := range envs {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DatabaseURL = NormalizeDatabaseURL(cfg.DatabaseURL)

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// UsePostgres reports whether a database URL was configured. Without one the
// service falls back to the SQLite file at SQLitePath.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

func (c *Config) ListenAddr() string {
	return c.Host + ":" + c.Port
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme handed out by
// some hosting providers to postgresql://.
func NormalizeDatabaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, schemePostgres) {
		return schemePostgresQL + strings.TrimPrefix(raw, schemePostgres)
	}
	return raw
}

func validate(cfg *Config) error {
	if cfg.Port == "" {
		return errors.New("PORT is empty")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	levelOK := false
	for _, validValue := range validLogLevels {
		if cfg.LogLevel == validValue {
			levelOK = true
			break
		}
	}
	if !levelOK {
		return errors.New(fmt.Sprintf("log level is invalid: %s", cfg.LogLevel))
	}

	if cfg.UsePostgres() {
		u, err := url.Parse(cfg.DatabaseURL)
		if err != nil {
			return errors.Wrap(err, "parse DATABASE_URL")
		}
		if u.Scheme != "postgresql" {
			return errors.New(fmt.Sprintf("DATABASE_URL scheme is invalid: %s", u.Scheme))
		}
	} else if cfg.SQLitePath == "" {
		return errors.New("SQLITE_PATH is empty and DATABASE_URL is not set")
	}

	return nil
}
