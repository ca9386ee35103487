package ports

import (
	"context"

	"dasbor/domain/core"
	"dasbor/models"
)

// SnapshotRepository persists dataset snapshot bookkeeping
type SnapshotRepository interface {
	// Save inserts a new snapshot record
	Save(ctx context.Context, snap *models.DatasetSnapshot) error

	// GetByID retrieves a snapshot by its ID
	GetByID(ctx context.Context, id core.SnapshotID) (*models.DatasetSnapshot, error)

	// ListRecent returns the newest snapshots, most recent first
	ListRecent(ctx context.Context, limit int) ([]*models.DatasetSnapshot, error)
}
