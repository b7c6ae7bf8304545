// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            int           `env:"PORT" env-default:"3318"`
	StoreType       string        `env:"STORE_TYPE" env-default:"memory"`
	IPHashSalt      string        `env:"IP_HASH_SALT"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" env-default:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
}

// ParseFlags loads the dotenv file, reads the environment, then applies CLI
// flags on top
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var port int
	var storeType, ipSalt, envFile string

	fs := flag.NewFlagSet("asapochi", flag.ContinueOnError)

	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&storeType, "s", "", "Store type (memory or sqlite)")
	fs.StringVar(&ipSalt, "ip-salt", "", "IP hash salt (prefer env)")
	fs.StringVar(&envFile, "env", ".env", "Dotenv file to load if present")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Variables already set in the environment win over the file
	if err := loadDotEnv(envFile); err != nil {
		return Config{}, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	// CLI overrides env
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = port
		case "s":
			cfg.StoreType = storeType
		case "ip-salt":
			cfg.IPHashSalt = ipSalt
		}
	})

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (cfg Config) validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}
	switch cfg.StoreType {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid store type %q (use memory or sqlite)", cfg.StoreType)
	}
	if cfg.RefreshInterval < time.Second {
		return errors.New("REFRESH_INTERVAL must be at least 1s")
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps debug/info/warn/error to a slog level
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
