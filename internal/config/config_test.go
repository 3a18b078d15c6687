package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HenningWaack/ccAcmePairing/internal/sec"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Accounts, 2)

	admin := cfg.Accounts[0]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, []string{"ADMIN"}, admin.Roles)
	assert.NoError(t, sec.ComparePassword("admin123", []byte(admin.PasswordHash)))

	user := cfg.Accounts[1]
	assert.Equal(t, "user", user.Username)
	assert.Equal(t, []string{"USER"}, user.Roles)
	assert.NoError(t, sec.ComparePassword("user123", []byte(user.PasswordHash)))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "partial file keeps defaults",
			yaml: `listen_address: "127.0.0.1:9090"`,
		},
		{
			name:    "invalid yaml syntax",
			yaml:    `invalid: [yaml: content`,
			wantErr: "failed to unmarshal config file",
		},
		{
			name:    "unknown field",
			yaml:    `listen_adress: ":8080"`,
			wantErr: "failed to unmarshal config file",
		},
		{
			name:    "invalid log level",
			yaml:    `log_level: "loud"`,
			wantErr: "config validation failed",
		},
		{
			name: "account without hash",
			yaml: "accounts:\n  - username: admin\n",
			wantErr: "config validation failed",
		},
		{
			name: "account with unknown role",
			yaml: "accounts:\n  - username: admin\n    password_hash: \"$2a$10$x\"\n    roles: [ROOT]\n",
			wantErr: "config validation failed",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := writeTestConfig(t, test.yaml)
			cfg, err := Load(path)

			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddress)
			assert.NotEmpty(t, cfg.DBFilepath)
			assert.Len(t, cfg.Accounts, 2)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_AccountsReplaceDefaults(t *testing.T) {
	t.Parallel()

	hash := string(sec.MustHashPassword("secret"))
	path := writeTestConfig(t,
		"accounts:\n"+
			"  - username: ops\n"+
			"    password_hash: \""+hash+"\"\n"+
			"    roles: [ADMIN]\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Accounts, 1)
	assert.Equal(t, "ops", cfg.Accounts[0].Username)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.LogLevel = "debug"
	assert.Equal(t, "DEBUG", cfg.SlogLevel().String())

	cfg.LogLevel = "WARN"
	assert.Equal(t, "WARN", cfg.SlogLevel().String())
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}
