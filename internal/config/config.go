package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when no bot token is configured anywhere.
var ErrMissingToken = errors.New("TELEGRAM_TOKEN is not set in the environment, .env file or keychain")

// Config holds the bot settings.
type Config struct {
	Token         string        `env:"TELEGRAM_TOKEN"`
	SelfEmail     string        `env:"TOKU_SELF_EMAIL" envDefault:"tokuplus.contact@gmail.com"`
	InviteURL     string        `env:"TOKU_INVITE_URL" envDefault:"https://tokuplus.com/Robot/index.asp"`
	OpenBrowser   bool          `env:"TOKU_OPEN_BROWSER" envDefault:"true"`
	MaxConcurrent int           `env:"TOKU_MAX_CONCURRENT" envDefault:"4"`
	HTTPTimeout   time.Duration `env:"TOKU_HTTP_TIMEOUT" envDefault:"35s"`
	LogLevel      string        `env:"TOKU_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"TOKU_LOG_FORMAT" envDefault:"text"`
}

// SecretFunc looks up a secret by account name.
type SecretFunc func(account string) (string, error)

// Load reads dotenvPath (if it exists) into the environment without
// overriding variables already set, then parses the environment. When the
// token is unset, secret is consulted for tokenAccount.
func Load(dotenvPath string, secret SecretFunc, tokenAccount string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Token = strings.TrimSpace(cfg.Token)
	var secretErr error
	if cfg.Token == "" && secret != nil {
		tok, err := secret(tokenAccount)
		cfg.Token = strings.TrimSpace(tok)
		secretErr = err
	}

	if err := cfg.validate(); err != nil {
		if errors.Is(err, ErrMissingToken) && secretErr != nil {
			return nil, fmt.Errorf("%w (%v)", err, secretErr)
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("TOKU_MAX_CONCURRENT must be at least 1, got %d", c.MaxConcurrent)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("TOKU_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("TOKU_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("TOKU_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// Logger builds the process logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, _ := c.level()
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
