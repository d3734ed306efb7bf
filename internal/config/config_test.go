package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
telegram:
  token: "test-token"
  admin_id: 42
  run_mode: longpoll
logging:
  level: debug
  format: kv
database:
  host: localhost
  port: "5432"
  user: clubbot
  name: clubbot
club:
  group_id: -100200300
  catalog_file: catalog.yaml
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	require.Equal(t, "test-token", cfg.Core.Telegram.Token)
	require.EqualValues(t, 42, cfg.Core.Telegram.AdminID)
	require.EqualValues(t, -100200300, cfg.Club.GroupID)

	// Defaults fill unset domain fields.
	require.Equal(t, "RIDNESS10", cfg.Club.PromoCode)
	require.Equal(t, "https://ridness.ru", cfg.Club.SiteURL)
}

func TestLoadRejectsMissingDatabase(t *testing.T) {
	_, err := Load(writeConfig(t, `
telegram:
  token: "test-token"
`))
	require.Error(t, err)
}

func TestNormalizeRejectsNegativeTTL(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	cfg.Club.SessionTTLMinutes = -1
	require.Error(t, Normalize(cfg))
}
