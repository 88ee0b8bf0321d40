package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "weaver.db")
	db, err := Open(path, WithMkdirAll())
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenAppliesSchema(t *testing.T) {
	db := OpenMemory(t, WithSchema("CREATE TABLE things (id TEXT PRIMARY KEY)"))

	_, err := db.Exec("INSERT INTO things (id) VALUES ('a')")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM things").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestOpenRejectsBadSchema(t *testing.T) {
	_, err := Open(":memory:", WithSchema("CREATE NONSENSE"))
	assert.Error(t, err)
}

func TestOpenMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "weaver.db")
	_, err := Open(path)
	assert.Error(t, err)
}
