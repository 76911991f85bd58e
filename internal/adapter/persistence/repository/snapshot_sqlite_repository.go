package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"
)

const snapshotRowID = 1

// SnapshotSqliteRepository persists the job-store snapshot as a single row
// in a local sqlite file. The local backend mirrors the DynamoDB layout:
// one JSON document, fully rewritten on every save.

type SnapshotSqliteRepository struct {
	db *sqlx.DB
}

var _ interfaces.ISnapshotRepository = (*SnapshotSqliteRepository)(nil)

func NewSnapshotSqliteRepository(db *sqlx.DB) (*SnapshotSqliteRepository, error) {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			document TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`); err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return &SnapshotSqliteRepository{db: db}, nil
}

func (r *SnapshotSqliteRepository) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	var document string
	err := r.db.GetContext(ctx, &document, `SELECT document FROM snapshots WHERE id = ?`, snapshotRowID)
	if err == sql.ErrNoRows {
		return entities.Snapshot{}, false, nil
	}
	if err != nil {
		return entities.Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap entities.Snapshot
	if err := json.Unmarshal([]byte(document), &snap); err != nil {
		return entities.Snapshot{}, false, fmt.Errorf("failed to decode snapshot document: %w", err)
	}
	return snap, true, nil
}

func (r *SnapshotSqliteRepository) Save(ctx context.Context, snap entities.Snapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, document, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		snapshotRowID, string(doc), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
