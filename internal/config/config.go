// Package config loads process configuration from the environment, with an
// optional .env file layered underneath.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the bot reads at startup. Nothing here changes
// while requests are served.
type Config struct {
	PublicKey     string `env:"DISCORD_PUBLIC_KEY"`
	ApplicationID string `env:"DISCORD_APPLICATION_ID"`
	Token         string `env:"DISCORD_TOKEN"`
	GuildID       string `env:"DISCORD_GUILD_ID"`

	ListenAddr       string `env:"LISTEN_ADDR" envDefault:":8080"`
	InteractionsPath string `env:"INTERACTIONS_PATH" envDefault:"/interactions"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	LogFile   string `env:"LOG_FILE"`

	// RegisterRate caps outbound command registrations per second.
	RegisterRate float64 `env:"REGISTER_RATE" envDefault:"5"`
}

// Load reads the given .env files (or ./.env when none are named) into the
// process environment without overriding variables that are already set, then
// parses the environment. Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// LoadFrom parses configuration from an explicit environment map instead of
// the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// ValidateServe checks the settings the webhook server cannot run without.
func (c *Config) ValidateServe() error {
	if c.PublicKey == "" {
		return errors.New("DISCORD_PUBLIC_KEY is not set")
	}
	key, err := hex.DecodeString(c.PublicKey)
	if err != nil || len(key) != 32 {
		return errors.New("DISCORD_PUBLIC_KEY must be 64 hex characters")
	}
	if c.InteractionsPath == "" || c.InteractionsPath[0] != '/' {
		return fmt.Errorf("INTERACTIONS_PATH must start with '/', got %q", c.InteractionsPath)
	}
	return nil
}

// ValidateRegister checks the settings command registration needs.
func (c *Config) ValidateRegister() error {
	if c.Token == "" {
		return errors.New("DISCORD_TOKEN is not set")
	}
	if c.ApplicationID == "" {
		return errors.New("DISCORD_APPLICATION_ID is not set")
	}
	if c.RegisterRate <= 0 {
		return fmt.Errorf("REGISTER_RATE must be positive, got %v", c.RegisterRate)
	}
	return nil
}
