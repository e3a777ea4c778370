package localcache

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const entriesTable = "cache_entries"

// Cache é um armazenamento chave/valor em arquivo SQLite.
// Guarda a última cópia conhecida de cada coleção para quando o banco remoto cai.
type Cache struct {
	db *sql.DB
}

// Open abre (ou cria) o arquivo do cache. Use ":memory:" para um cache volátil.
func Open(ctx context.Context, path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// sqlite não lida bem com escritas concorrentes
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+entriesTable+` (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := squirrel.
		Select("value").
		From(entriesTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var value []byte
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := squirrel.
		Insert(entriesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx, query, args...)
	return err
}

func (c *Cache) Close() error {
	return c.db.Close()
}
