// Package config handles resolving configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/HenningWaack/ccAcmePairing/internal/sec"
)

// Account is a static credential entry. PasswordHash is a bcrypt hash as
// produced by the hashpw command; plaintext passwords never appear in
// configuration.
type Account struct {
	Username     string   `yaml:"username"`
	PasswordHash string   `yaml:"password_hash"`
	Roles        []string `yaml:"roles"`
}

// Config is the service configuration. All fields have defaults; a config
// file only needs to name what it overrides.
type Config struct {
	ListenAddress string    `yaml:"listen_address"`
	DBFilepath    string    `yaml:"db_filepath"`
	LogLevel      string    `yaml:"log_level"`
	Accounts      []Account `yaml:"accounts"`
}

// The two built-in accounts are hashed once at first use; bcrypt is too
// expensive to run on every Default call.
var defaultAccounts = sync.OnceValue(func() []Account {
	return []Account{
		{
			Username:     "admin",
			PasswordHash: string(sec.MustHashPassword("admin123")),
			Roles:        []string{string(sec.RoleAdmin)},
		},
		{
			Username:     "user",
			PasswordHash: string(sec.MustHashPassword("user123")),
			Roles:        []string{string(sec.RoleUser)},
		},
	}
})

// Default returns the configuration used when no config file overrides it:
// a local listen address, the XDG data directory for the database, and the
// two built-in accounts.
func Default() Config {
	return Config{
		ListenAddress: "localhost:8080",
		DBFilepath:    filepath.Join(xdg.DataHome, "acme", "db.sqlite"),
		LogLevel:      "info",
		Accounts:      defaultAccounts(),
	}
}

// Load reads a YAML configuration file, merges it over the defaults, and
// validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fileCfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}

	cfg := Default()
	if fileCfg.ListenAddress != "" {
		cfg.ListenAddress = fileCfg.ListenAddress
	}
	if fileCfg.DBFilepath != "" {
		cfg.DBFilepath = fileCfg.DBFilepath
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if len(fileCfg.Accounts) > 0 {
		cfg.Accounts = fileCfg.Accounts
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for completeness.
func (c Config) Validate() error {
	if c.ListenAddress == "" {
		return errors.New("listen_address must not be empty")
	}
	if c.DBFilepath == "" {
		return errors.New("db_filepath must not be empty")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if len(c.Accounts) == 0 {
		return errors.New("at least one account is required")
	}
	for _, acct := range c.Accounts {
		if acct.Username == "" {
			return errors.New("account username must not be empty")
		}
		if acct.PasswordHash == "" {
			return fmt.Errorf("account %q has no password_hash", acct.Username)
		}
		for _, role := range acct.Roles {
			if _, err := sec.ParseRole(role); err != nil {
				return fmt.Errorf("account %q: %w", acct.Username, err)
			}
		}
	}
	return nil
}

// SlogLevel returns the configured log level. Validate guarantees it parses.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", name, err)
	}
	return lvl, nil
}
