package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dasbor/domain/core"
	"dasbor/domain/sheet"
	"dasbor/internal/config"
	"dasbor/models"
)

// MockSnapshotRepository records snapshot calls for assertions
type MockSnapshotRepository struct {
	mock.Mock
	saved []*models.DatasetSnapshot
}

func (m *MockSnapshotRepository) Save(ctx context.Context, snap *models.DatasetSnapshot) error {
	args := m.Called(ctx, snap)
	m.saved = append(m.saved, snap)
	return args.Error(0)
}

func (m *MockSnapshotRepository) GetByID(ctx context.Context, id core.SnapshotID) (*models.DatasetSnapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.DatasetSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) ListRecent(ctx context.Context, limit int) ([]*models.DatasetSnapshot, error) {
	args := m.Called(ctx, limit)
	return m.saved, args.Error(1)
}

func demoDataConfig() config.DataConfig {
	return config.DataConfig{MaxProfileConcurrency: 2}
}

// TestCurrentLoadsDemoDataset tests the demo fallback path end to end
func TestCurrentLoadsDemoDataset(t *testing.T) {
	service := NewDatasetService(demoDataConfig(), nil)

	ds, err := service.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "demo", ds.Source)
	assert.NotEmpty(t, ds.SheetNames)
	assert.Len(t, ds.Sheets, len(ds.SheetNames))
	assert.Greater(t, ds.RecordCount(), 0)
	assert.NotEmpty(t, ds.Notes)

	// Converted sheets hold records, passthrough entries stay put
	_, ok := ds.Sheets["Penjualan"].([]sheet.Record)
	assert.True(t, ok, "Penjualan should convert to records")
	_, ok = ds.Sheets["Catatan"].([]sheet.Record)
	assert.False(t, ok, "Catatan should pass through")

	// Every compact sheet got a profile
	for name := range ds.Tables {
		_, ok := ds.Profiles[name]
		assert.True(t, ok, "missing profile for sheet %q", name)
	}
}

// TestCurrentCachesDataset tests that repeat calls reuse the load
func TestCurrentCachesDataset(t *testing.T) {
	service := NewDatasetService(demoDataConfig(), nil)

	first, err := service.Current(context.Background())
	require.NoError(t, err)
	second, err := service.Current(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

// TestReloadSavesSnapshot tests snapshot bookkeeping on reload
func TestReloadSavesSnapshot(t *testing.T) {
	repo := &MockSnapshotRepository{}
	repo.On("Save", mock.Anything, mock.AnythingOfType("*models.DatasetSnapshot")).Return(nil)

	service := NewDatasetService(demoDataConfig(), repo)

	ds, err := service.Reload(context.Background())
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "Save", 1)
	require.Len(t, repo.saved, 1)

	snap := repo.saved[0]
	assert.Equal(t, "demo", snap.Source)
	assert.Equal(t, len(ds.SheetNames), snap.SheetCount)
	assert.Equal(t, ds.RecordCount(), snap.RecordCount)
	assert.False(t, core.ID(snap.ID).IsEmpty())
}

// TestSheetRecords tests the sheet accessor distinctions
func TestSheetRecords(t *testing.T) {
	service := NewDatasetService(demoDataConfig(), nil)
	ctx := context.Background()

	records, ok, err := service.SheetRecords(ctx, "Penjualan")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, records)

	_, ok, err = service.SheetRecords(ctx, "Catatan")
	require.NoError(t, err)
	assert.False(t, ok, "passthrough sheet should not expose records")

	_, ok, err = service.SheetRecords(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestRecentSnapshotsWithoutRepository tests the persistence-disabled path
func TestRecentSnapshotsWithoutRepository(t *testing.T) {
	service := NewDatasetService(demoDataConfig(), nil)

	snapshots, err := service.RecentSnapshots(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, snapshots)
}
