package command

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"golang.org/x/term"

	"github.com/HenningWaack/ccAcmePairing/internal/config"
	"github.com/HenningWaack/ccAcmePairing/internal/sec"
	"github.com/HenningWaack/ccAcmePairing/internal/storage"
)

type configKey struct{}

// configFromContext returns the configuration stashed by the root command.
func configFromContext(ctx context.Context) (config.Config, error) {
	cfg, ok := ctx.Value(configKey{}).(config.Config)
	if !ok {
		return config.Config{}, errors.New("config file resolution failed")
	}
	return cfg, nil
}

// openStore opens the configured product database.
func openStore(ctx context.Context) (config.Config, *storage.DB, error) {
	cfg, err := configFromContext(ctx)
	if err != nil {
		return config.Config{}, nil, err
	}
	store, err := storage.NewDB(ctx, cfg.DBFilepath, slog.Default())
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, store, nil
}

// credentialStore builds the immutable credential store from the configured
// accounts.
func credentialStore(accounts []config.Account) (*sec.CredentialStore, error) {
	secAccounts := make([]sec.Account, 0, len(accounts))
	for _, acct := range accounts {
		roles := make([]sec.Role, 0, len(acct.Roles))
		for _, name := range acct.Roles {
			role, err := sec.ParseRole(name)
			if err != nil {
				return nil, err
			}
			roles = append(roles, role)
		}
		secAccounts = append(secAccounts, sec.Account{
			Name:         acct.Username,
			PasswordHash: []byte(acct.PasswordHash),
			Roles:        roles,
		})
	}
	return sec.NewCredentialStore(secAccounts), nil
}

// promptPassword reads a password from stdin, masking the input when stdin is
// a terminal.
func promptPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		if _, err := os.Stderr.WriteString(prompt); err != nil {
			return nil, err
		}
		defer func() { _, _ = os.Stderr.WriteString("\n") }()
		return term.ReadPassword(fd)
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}
