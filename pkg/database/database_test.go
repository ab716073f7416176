package database

import (
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", SQLiteDSN(":memory:"))
	assert.Equal(t, "file:x.db?mode=ro", SQLiteDSN("file:x.db?mode=ro"))
	assert.Equal(t, "file:/data/ref.db?_busy_timeout=5000&_foreign_keys=on", SQLiteDSN("/data/ref.db"))
}

func TestNew_InvalidOptions(t *testing.T) {
	cases := map[string][]Option{
		"empty driver":      {WithDriver("")},
		"empty data source": {WithDataSource("")},
		"no attempts":       {WithRetry(0, time.Millisecond)},
	}

	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			db, err := New(opts...)

			assert.Nil(t, db)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestNew_InMemoryUsesSingleConnection(t *testing.T) {
	db, err := New(WithMaxOpenConns(10))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	_, err = db.Exec(`CREATE TABLE t (v INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO t VALUES (1)`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.db")

	db, err := New(WithDataSource(SQLiteDSN(path)), WithMaxOpenConns(4))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Equal(t, 4, db.Stats().MaxOpenConnections)
	_, err = db.Exec(`CREATE TABLE t (v INTEGER)`)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestNew_UnknownDriver(t *testing.T) {
	db, err := New(WithDriver("nope"), WithRetry(2, time.Millisecond))

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "after 2 attempts")
}
