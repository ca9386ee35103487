package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"dasbor/domain/core"
	"dasbor/models"
	"dasbor/ports"
)

// snapshotRepository implements the SnapshotRepository interface
type snapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *sqlx.DB) ports.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// EnsureSchema creates the snapshot table when it does not exist yet
func EnsureSchema(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS dataset_snapshots (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		sheet_count INTEGER NOT NULL DEFAULT 0,
		record_count INTEGER NOT NULL DEFAULT 0,
		metadata JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure snapshot schema: %w", err)
	}
	return nil
}

// Save inserts a new snapshot into the database
func (r *snapshotRepository) Save(ctx context.Context, snap *models.DatasetSnapshot) error {
	metadataJSON, err := json.Marshal(snap.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `INSERT INTO dataset_snapshots (
		id, source, sheet_count, record_count, metadata, created_at
	) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		snap.ID, snap.Source, snap.SheetCount, snap.RecordCount, metadataJSON, snap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetByID retrieves a snapshot by its ID
func (r *snapshotRepository) GetByID(ctx context.Context, id core.SnapshotID) (*models.DatasetSnapshot, error) {
	query := `SELECT id, source, sheet_count, record_count, metadata, created_at
	FROM dataset_snapshots WHERE id = $1`

	var snap models.DatasetSnapshot
	var metadataJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&snap.ID, &snap.Source, &snap.SheetCount, &snap.RecordCount, &metadataJSON, &snap.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &snap.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return &snap, nil
}

// ListRecent returns the newest snapshots, most recent first
func (r *snapshotRepository) ListRecent(ctx context.Context, limit int) ([]*models.DatasetSnapshot, error) {
	query := `SELECT id, source, sheet_count, record_count, metadata, created_at
	FROM dataset_snapshots
	ORDER BY created_at DESC
	LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.DatasetSnapshot
	for rows.Next() {
		var snap models.DatasetSnapshot
		var metadataJSON []byte

		if err := rows.Scan(
			&snap.ID, &snap.Source, &snap.SheetCount, &snap.RecordCount, &metadataJSON, &snap.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &snap.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
		}

		snapshots = append(snapshots, &snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}

	return snapshots, nil
}
