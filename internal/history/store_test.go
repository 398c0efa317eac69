package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewen/folio/internal/folder"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReport(folderPath string, startedAt time.Time) folder.Report {
	return folder.Report{
		CycleID:   uuid.NewString(),
		Folder:    folderPath,
		Suffix:    ".spell.yaml",
		Expected:  3,
		Loaded:    2,
		Failed:    1,
		StartedAt: startedAt,
		Duration:  125 * time.Millisecond,
	}
}

func TestStoreRecordAndList(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	require.NoError(t, store.Record(sampleReport("prefabs/spells", now.Add(-time.Hour))))
	require.NoError(t, store.Record(sampleReport("prefabs/spells", now)))
	require.NoError(t, store.Record(sampleReport("prefabs/perks", now)))

	records, err := store.List("", 0)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.True(t, !records[0].StartedAt.Before(records[1].StartedAt))

	spells, err := store.List("prefabs/spells", 0)
	require.NoError(t, err)
	require.Len(t, spells, 2)
	for _, rec := range spells {
		assert.Equal(t, "prefabs/spells", rec.Folder)
		assert.Equal(t, ".spell.yaml", rec.Suffix)
		assert.Equal(t, 3, rec.Expected)
		assert.Equal(t, 2, rec.Loaded)
		assert.Equal(t, 1, rec.Failed)
		assert.Equal(t, 125*time.Millisecond, rec.Duration)
	}
}

func TestStoreListLimit(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(sampleReport("prefabs/spells", now.Add(time.Duration(i)*time.Minute))))
	}

	records, err := store.List("", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStoreStats(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	require.NoError(t, store.Record(sampleReport("prefabs/spells", now.Add(-time.Hour))))
	require.NoError(t, store.Record(sampleReport("prefabs/spells", now)))
	require.NoError(t, store.Record(sampleReport("prefabs/perks", now)))

	stats, err := store.Stats()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byFolder := make(map[string]FolderStats, len(stats))
	for _, st := range stats {
		byFolder[st.Folder] = st
	}
	spells := byFolder["prefabs/spells"]
	assert.Equal(t, 2, spells.Cycles)
	assert.Equal(t, 4, spells.TotalLoaded)
	assert.Equal(t, 2, spells.TotalFailed)
}

func TestStoreClear(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	require.NoError(t, store.Record(sampleReport("prefabs/spells", now.Add(-48*time.Hour))))
	require.NoError(t, store.Record(sampleReport("prefabs/spells", now)))

	removed, err := store.Clear(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = store.Clear(time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	records, err := store.List("", 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStoreDuplicateCycleIDRejected(t *testing.T) {
	store := newTestStore(t)
	rep := sampleReport("prefabs/spells", time.Now())

	require.NoError(t, store.Record(rep))
	assert.Error(t, store.Record(rep), "cycle ids are unique")
}

func TestStoreCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(sampleReport("prefabs/spells", time.Now())))
}
