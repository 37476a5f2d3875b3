package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, applies the schema and truncates every table.
// The test is skipped when no database is configured.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{MaxConns: 5, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	schema, err := os.ReadFile(schemaPath())
	require.NoError(t, err)
	_, err = db.Exec(ctx, string(schema))
	require.NoError(t, err)

	require.NoError(t, truncateAll(ctx, db))
	return db
}

func schemaPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations", "0001_init.sql")
}

func truncateAll(ctx context.Context, db *database.DB) error {
	for _, table := range []string{"absensi", "pendaftar", "users"} {
		if _, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}

func insertUser(t *testing.T, db *database.DB, username, role string) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $1 || '@rajawali.test', 'x', $2)
		RETURNING id
	`, username, role).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertPendaftar(t *testing.T, db *database.DB, nama, status, gender string, userID *string) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO pendaftar (user_id, nama_lengkap, username, email, jenis_kelamin, status)
		VALUES ($1, $2, LOWER(REPLACE($2, ' ', '.')), LOWER(REPLACE($2, ' ', '.')) || '@rajawali.test', $3, $4)
		RETURNING id
	`, userID, nama, gender, status).Scan(&id)
	require.NoError(t, err)
	return id
}
