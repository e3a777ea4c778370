package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/infrastructure/database/postgres"
)

const collectionsTable = "collections"

// Store guarda cada coleção como um documento JSON na tabela collections
type Store struct {
	conn postgres.Queryer
}

func New(conn postgres.Queryer) *Store {
	return &Store{conn: conn}
}

func (s *Store) ReadCollection(ctx context.Context, name string) ([]byte, error) {
	query, args, err := squirrel.
		Select("body").
		From(collectionsTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var body []byte
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return body, nil
}

func (s *Store) WriteCollection(ctx context.Context, name string, body []byte) error {
	query, args, err := squirrel.
		Insert(collectionsTable).
		Columns("name", "body", "updated_at").
		Values(name, string(body), time.Now().UTC()).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	logrus.WithField("collection", name).Debug("pgstore: coleção gravada")

	return nil
}
