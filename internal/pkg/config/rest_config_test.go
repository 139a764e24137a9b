//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xmh0511/byte-aes/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRestConfig = `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
cryptor:
  key_source: file
  key_file: /run/secrets/byte-aes-key
  workers: 2
  parallel_threshold: 16
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, testRestConfig))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, KeySourceFile, cfg.Cryptor.KeySource)
	assert.Equal(t, "/run/secrets/byte-aes-key", cfg.Cryptor.KeyFile)
	assert.Equal(t, 2, cfg.Cryptor.Workers)
	assert.Equal(t, 16, cfg.Cryptor.ParallelThreshold)
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, KeySourceEnv, cfg.Cryptor.KeySource)
	assert.Equal(t, DefaultKeyEnv, cfg.Cryptor.KeyEnv)
	assert.Equal(t, crypto.DefaultParallelThreshold, cfg.Cryptor.ParallelThreshold)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	t.Setenv("BYTE_AES_PORT", "7070")
	t.Setenv("BYTE_AES_CRYPTOR_WORKERS", "8")

	cfg, err := InitializeRestConfig(writeConfig(t, testRestConfig))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 8, cfg.Cryptor.Workers)
}

func TestInitializeRestConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid settings", func(t *testing.T) {
		path := writeConfig(t, "port: \"80\"\ndatabase:\n  type: mysql\n")
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("non numeric port", func(t *testing.T) {
		path := writeConfig(t, "port: http\n")
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
