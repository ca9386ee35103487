package models

import (
	"time"

	"dasbor/domain/core"
)

// DatasetSnapshot records one load-and-convert pass over a workbook.
// Snapshots are bookkeeping for the dashboard's history panel; the
// converted records themselves stay in memory.
type DatasetSnapshot struct {
	ID          core.SnapshotID        `json:"id" db:"id"`
	Source      string                 `json:"source" db:"source"`
	SheetCount  int                    `json:"sheet_count" db:"sheet_count"`
	RecordCount int                    `json:"record_count" db:"record_count"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at" db:"created_at"`
}
