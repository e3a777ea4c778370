package pgstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE collections (
		name TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	require.NoError(t, err)

	return db
}

func TestStore_ReadWrite(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	body, err := s.ReadCollection(ctx, "clients")
	require.NoError(t, err)
	assert.Nil(t, body)

	require.NoError(t, s.WriteCollection(ctx, "clients", []byte(`[{"id":"c1"}]`)))

	body, err = s.ReadCollection(ctx, "clients")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c1"}]`, string(body))

	// a segunda gravação substitui o documento inteiro
	require.NoError(t, s.WriteCollection(ctx, "clients", []byte(`[]`)))

	body, err = s.ReadCollection(ctx, "clients")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestStore_ColecoesIndependentes(t *testing.T) {
	s := New(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.WriteCollection(ctx, "users", []byte(`[{"id":"u1"}]`)))
	require.NoError(t, s.WriteCollection(ctx, "messages", []byte(`[{"id":"m1"}]`)))

	users, err := s.ReadCollection(ctx, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"u1"}]`, string(users))

	messages, err := s.ReadCollection(ctx, "messages")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"m1"}]`, string(messages))
}
