// Package config loads runtime configuration from environment variables and
// an optional stockroom.yaml file via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string
	DatabaseURL string
	RedisAddr   string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	SMTP SMTPConfig

	// DemoPassword is the shared password the seeded demo accounts accept.
	DemoPassword string
}

type SMTPConfig struct {
	Server       string
	Port         string
	User         string
	Password     string
	From         string
	To           string
	AuthDisabled bool
}

// Load reads STOCKROOM_* environment variables, falling back to an optional
// stockroom.yaml in the working directory.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("stockroom")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("jwt.secret", "dev-only-secret")
	v.SetDefault("jwt.access_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("demo.password", "mworx123")

	v.SetConfigName("stockroom")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		Addr:            v.GetString("addr"),
		DatabaseURL:     v.GetString("database.url"),
		RedisAddr:       v.GetString("redis.addr"),
		JWTSecret:       v.GetString("jwt.secret"),
		AccessTokenTTL:  v.GetDuration("jwt.access_ttl"),
		RefreshTokenTTL: v.GetDuration("jwt.refresh_ttl"),
		DemoPassword:    v.GetString("demo.password"),
		SMTP: SMTPConfig{
			Server:       v.GetString("smtp.server"),
			Port:         v.GetString("smtp.port"),
			User:         v.GetString("smtp.user"),
			Password:     v.GetString("smtp.password"),
			From:         v.GetString("smtp.from"),
			To:           v.GetString("smtp.to"),
			AuthDisabled: v.GetBool("smtp.auth_disabled"),
		},
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("STOCKROOM_DATABASE_URL is required")
	}
	return cfg, nil
}
