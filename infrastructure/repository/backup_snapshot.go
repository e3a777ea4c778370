package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-os-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-os-api/internal/domain"
)

//go:generate mockgen -source=backup_snapshot.go -destination=mocks/backup_snapshot.go -package=mocks

const backupSnapshotsTable = "backup_snapshots"

var ErrSnapshotNotFound = errors.New("snapshot não encontrado")

type BackupSnapshotRepository interface {
	CreateSnapshot(ctx context.Context, payload []byte) (*domain.BackupSnapshot, error)
	ListSnapshots(ctx context.Context) ([]*domain.BackupSnapshot, error)
	GetSnapshot(ctx context.Context, id int64) (*domain.BackupSnapshot, error)
	DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int64, error)
}

type backupSnapshotRepository struct {
	conn postgres.Queryer
}

func NewBackupSnapshotRepository(conn postgres.Queryer) BackupSnapshotRepository {
	return &backupSnapshotRepository{conn: conn}
}

func (r *backupSnapshotRepository) CreateSnapshot(ctx context.Context, payload []byte) (*domain.BackupSnapshot, error) {
	snapshot := &domain.BackupSnapshot{
		Payload:   payload,
		SizeBytes: len(payload),
		CreatedAt: time.Now().UTC(),
	}

	query, args, err := squirrel.
		Insert(backupSnapshotsTable).
		Columns("payload", "size_bytes", "created_at").
		Values(string(payload), snapshot.SizeBytes, snapshot.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&snapshot.ID); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"size_bytes":  snapshot.SizeBytes,
	}).Info("Snapshot de backup gravado")

	return snapshot, nil
}

// ListSnapshots retorna os snapshots sem o conteúdo, do mais recente para o mais antigo
func (r *backupSnapshotRepository) ListSnapshots(ctx context.Context) ([]*domain.BackupSnapshot, error) {
	query, args, err := squirrel.
		Select("id", "size_bytes", "created_at").
		From(backupSnapshotsTable).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]*domain.BackupSnapshot, 0)
	for rows.Next() {
		var snapshot domain.BackupSnapshot
		if err := rows.Scan(&snapshot.ID, &snapshot.SizeBytes, &snapshot.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}

func (r *backupSnapshotRepository) GetSnapshot(ctx context.Context, id int64) (*domain.BackupSnapshot, error) {
	query, args, err := squirrel.
		Select("id", "payload", "size_bytes", "created_at").
		From(backupSnapshotsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var snapshot domain.BackupSnapshot
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.ID,
		&snapshot.Payload,
		&snapshot.SizeBytes,
		&snapshot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}

	return &snapshot, nil
}

func (r *backupSnapshotRepository) DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(backupSnapshotsTable).
		Where(squirrel.Lt{"created_at": before.UTC()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
