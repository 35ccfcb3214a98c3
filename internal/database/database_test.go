package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase_CreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "gardens.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable("gardens"))

	var columns []string
	rows, err := db.DB.Raw("SELECT name FROM pragma_table_info('gardens') ORDER BY cid").Rows()
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		columns = append(columns, name)
	}

	assert.Equal(t, []string{
		"id", "name", "type", "neighborhood", "address", "longitude", "latitude",
		"contact", "plots_available", "year_created", "food_tree_varieties",
		"jurisdiction", "steward", "public_email", "website", "geo_local_area",
	}, columns)
}

func TestNewDatabase_IsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "gardens.db")

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.DB.Exec("INSERT INTO gardens (name) VALUES (?)", "Existing").Error)
	require.NoError(t, db.Close())

	reopened, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	var count int64
	require.NoError(t, reopened.DB.Table("gardens").Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, reopened.EnsureSchema())
}

func TestDatabase_Ping(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "gardens.db"))
	require.NoError(t, err)

	assert.NoError(t, db.Ping())
	require.NoError(t, db.Close())
	assert.Error(t, db.Ping())
}

func TestNewDatabase_FailsOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	_, err := NewDatabase(filepath.Join(blocker, "gardens.db"))
	assert.Error(t, err)
}
