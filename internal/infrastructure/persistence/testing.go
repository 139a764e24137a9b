//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/pkg/config"
	"github.com/xmh0511/byte-aes/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB       *gorm.DB
	BlobRepo blobs.BlobRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	blobRepo, err := NewGormBlobRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create blob repository")

	return &TestContext{
		DB:       db,
		BlobRepo: blobRepo,
	}
}

// CreateTestBlob creates blob metadata matching a ciphertext of cipherSize bytes
func CreateTestBlob(t *testing.T, name string, plainSize, cipherSize int64) *blobs.BlobMeta {
	t.Helper()

	if name == "" {
		name = "test-blob"
	}

	return &blobs.BlobMeta{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		Name:            name,
		PlainSize:       plainSize,
		CipherSize:      cipherSize,
		Algorithm:       crypto.AlgorithmAES256,
		Mode:            crypto.ModeIndependentBlock,
	}
}
