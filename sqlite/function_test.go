package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/uuidb64"
)

const (
	knownHex  = "b0c1ee86-6f46-4f1b-8d8b-7849e75dbcee"
	knownText = "sMHuhm9GTxuNi3hJ51287g"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRegister_Idempotent(t *testing.T) {
	assert.NoError(t, Register())
	assert.NoError(t, Register())
}

func TestOpen_RequiresDSN(t *testing.T) {
	_, err := Open("  ")
	assert.EqualError(t, err, "dsn is required")
}

func TestFunctions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	var hex string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT b64uuid(?)", knownText).Scan(&hex))
	assert.Equal(t, knownHex, hex)

	var text string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT uuidb64(?)", knownHex).Scan(&text))
	assert.Equal(t, knownText, text)

	require.NoError(t, db.QueryRowContext(ctx, "SELECT uuidb64(?)", uuidb64.MustParse(knownText).Bytes()).Scan(&text))
	assert.Equal(t, knownText, text)

	var null sql.NullString
	require.NoError(t, db.QueryRowContext(ctx, "SELECT b64uuid(NULL)").Scan(&null))
	assert.False(t, null.Valid)
	require.NoError(t, db.QueryRowContext(ctx, "SELECT uuidb64(NULL)").Scan(&null))
	assert.False(t, null.Valid)
}

func TestFunctions_Errors(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	var out string
	err := db.QueryRowContext(ctx, "SELECT b64uuid(?)", "sMHuhm9GTxuNi3hJ51287g==").Scan(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identifier text")

	err = db.QueryRowContext(ctx, "SELECT uuidb64(?)", "nope").Scan(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identifier text")

	err = db.QueryRowContext(ctx, "SELECT b64uuid(42)").Scan(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported argument type")
}

func TestLookupByCanonicalText(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "CREATE TABLE orders (id TEXT PRIMARY KEY, item TEXT NOT NULL)")
	require.NoError(t, err)

	known := uuidb64.MustParse(knownText)
	ids := []uuidb64.UUID{known, uuidb64.New(), uuidb64.New()}
	for i, id := range ids {
		_, err := db.ExecContext(ctx, "INSERT INTO orders (id, item) VALUES (?, ?)", id, []string{"book", "pen", "ink"}[i])
		require.NoError(t, err)
	}

	var stored string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM orders WHERE item = 'book'").Scan(&stored))
	assert.Equal(t, knownHex, stored)

	var item string
	require.NoError(t, db.QueryRowContext(ctx, "SELECT item FROM orders WHERE id = b64uuid(?)", knownText).Scan(&item))
	assert.Equal(t, "book", item)

	rows, err := db.QueryContext(ctx, "SELECT id, uuidb64(id) FROM orders")
	require.NoError(t, err)
	defer rows.Close()
	count := 0
	for rows.Next() {
		var (
			id   uuidb64.UUID
			text string
		)
		require.NoError(t, rows.Scan(&id, &text))
		assert.Equal(t, id.String(), text)
		assert.Contains(t, ids, id)
		count++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, len(ids), count)
}
