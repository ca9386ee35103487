package app

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"dasbor/adapters/excel"
	"dasbor/domain/core"
	"dasbor/domain/sheet"
	"dasbor/internal"
	"dasbor/internal/config"
	"dasbor/internal/profile"
	"dasbor/internal/testkit"
	"dasbor/models"
	"dasbor/ports"
)

// Dataset is one fully loaded and converted workbook, ready to render
type Dataset struct {
	Source     string
	SheetNames []string
	Sheets     sheet.Collection                // converted: []sheet.Record or passthrough
	Tables     map[string]sheet.Table          // compact originals, kept for header order
	Profiles   map[string]profile.SheetProfile // per-sheet column profiles
	Notes      string
	LoadedAt   time.Time
}

// RecordCount totals the records across all converted sheets
func (d *Dataset) RecordCount() int {
	total := 0
	for _, raw := range d.Sheets {
		if records, ok := raw.([]sheet.Record); ok {
			total += len(records)
		}
	}
	return total
}

// DatasetService orchestrates load, convert, and profile for the
// dashboard. One dataset is held in memory at a time; snapshots of each
// load go to the repository when one is configured.
type DatasetService struct {
	dataConfig config.DataConfig
	snapshots  ports.SnapshotRepository // nil when persistence is disabled
	kit        *testkit.TestKit

	mu      sync.RWMutex
	current *Dataset
}

// NewDatasetService creates the service. snapshots may be nil.
func NewDatasetService(dataConfig config.DataConfig, snapshots ports.SnapshotRepository) *DatasetService {
	return &DatasetService{
		dataConfig: dataConfig,
		snapshots:  snapshots,
		kit:        testkit.NewTestKit(),
	}
}

// Current returns the loaded dataset, loading it on first use
func (s *DatasetService) Current(ctx context.Context) (*Dataset, error) {
	s.mu.RLock()
	if s.current != nil {
		ds := s.current
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	return s.Reload(ctx)
}

// Reload loads the workbook from scratch and replaces the cached dataset
func (s *DatasetService) Reload(ctx context.Context) (*Dataset, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()

	s.recordSnapshot(ctx, ds)
	return ds, nil
}

// SheetRecords returns the converted records for one sheet, or false when
// the sheet does not exist or is a passthrough entry.
func (s *DatasetService) SheetRecords(ctx context.Context, name string) ([]sheet.Record, bool, error) {
	ds, err := s.Current(ctx)
	if err != nil {
		return nil, false, err
	}
	raw, ok := ds.Sheets[name]
	if !ok {
		return nil, false, nil
	}
	records, ok := raw.([]sheet.Record)
	return records, ok, nil
}

// RecentSnapshots lists persisted snapshots, newest first. Returns nil
// without error when persistence is disabled.
func (s *DatasetService) RecentSnapshots(ctx context.Context, limit int) ([]*models.DatasetSnapshot, error) {
	if s.snapshots == nil {
		return nil, nil
	}
	return s.snapshots.ListRecent(ctx, limit)
}

// load reads the configured workbook, or falls back to the demo kit when
// none is set, then converts and profiles every sheet.
func (s *DatasetService) load(ctx context.Context) (*Dataset, error) {
	var (
		source string
		names  []string
		raw    sheet.Collection
		notes  string
	)

	if s.dataConfig.WorkbookFile != "" {
		reader := excel.NewWorkbookReader(s.dataConfig.WorkbookFile)
		wb, err := reader.ReadWorkbook()
		if err != nil {
			return nil, err
		}
		source = s.dataConfig.WorkbookFile
		names = wb.SheetNames
		raw = wb.Sheets
	} else {
		log.Printf("[DatasetService] No workbook configured, using demo data")
		source = "demo"
		names, raw = s.kit.DemoCollection()
		notes = s.kit.DemoNotes()
	}

	if s.dataConfig.NotesFile != "" {
		if content, err := os.ReadFile(s.dataConfig.NotesFile); err == nil {
			notes = string(content)
		} else {
			log.Printf("[DatasetService] Could not read notes file %s: %v", s.dataConfig.NotesFile, err)
		}
	}

	converted := sheet.ConvertToObjects(raw)

	tables := make(map[string]sheet.Table)
	for name, entry := range raw {
		if tbl, ok := entry.(sheet.Table); ok {
			tables[name] = tbl
		}
	}

	ds := &Dataset{
		Source:     source,
		SheetNames: names,
		Sheets:     converted,
		Tables:     tables,
		Profiles:   s.profileSheets(ctx, tables, converted),
		Notes:      notes,
		LoadedAt:   time.Now(),
	}

	log.Printf("[DatasetService] Loaded %s: %d sheets, %d records", source, len(names), ds.RecordCount())
	return ds, nil
}

// profileSheets profiles converted sheets with bounded concurrency
func (s *DatasetService) profileSheets(ctx context.Context, tables map[string]sheet.Table, converted sheet.Collection) map[string]profile.SheetProfile {
	maxConcurrency := int64(s.dataConfig.MaxProfileConcurrency)
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	sem := semaphore.NewWeighted(maxConcurrency)

	profiles := make(map[string]profile.SheetProfile, len(tables))
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for name, tbl := range tables {
		records, ok := converted[name].([]sheet.Record)
		if !ok {
			continue
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Printf("[DatasetService] Profiling cancelled: %v", err)
			break
		}

		wg.Add(1)
		go func(name string, headers []string, records []sheet.Record) {
			defer wg.Done()
			defer sem.Release(1)

			prof := profile.Summarize(name, headers, records)
			internal.DefaultLogger.Debug("Profiled sheet %q: %d columns, %d correlations", name, len(prof.Columns), len(prof.Correlations))
			mu.Lock()
			profiles[name] = prof
			mu.Unlock()
		}(name, tbl.Headers, records)
	}

	wg.Wait()
	return profiles
}

// recordSnapshot persists load bookkeeping when a repository is wired
func (s *DatasetService) recordSnapshot(ctx context.Context, ds *Dataset) {
	if s.snapshots == nil {
		return
	}

	snap := &models.DatasetSnapshot{
		ID:          core.SnapshotID(core.NewID()),
		Source:      ds.Source,
		SheetCount:  len(ds.SheetNames),
		RecordCount: ds.RecordCount(),
		Metadata: map[string]interface{}{
			"sheet_names": ds.SheetNames,
		},
		CreatedAt: ds.LoadedAt,
	}

	if err := s.snapshots.Save(ctx, snap); err != nil {
		// Snapshot bookkeeping must never block the render path
		log.Printf("[DatasetService] Failed to save snapshot: %v", err)
	}
}
