package dataset

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SnapshotCaches(t *testing.T) {
	path := writeCSV(t, testHeader+
		"Austin,TX,30.27,-97.74,100,1500,1200,4500,400,300\n")

	store := NewStore(path)

	first, err := store.Snapshot()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Deleting the backing file must not affect the cached snapshot.
	require.NoError(t, os.Remove(path))

	second, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_ConcurrentFirstLoad(t *testing.T) {
	path := writeCSV(t, testHeader+
		"Austin,TX,30.27,-97.74,100,1500,1200,4500,400,300\n"+
		"Dallas,TX,32.78,-96.80,95,1300,1000,4300,380,290\n")

	store := NewStore(path)

	const readers = 16
	var wg sync.WaitGroup
	results := make([][]Record, readers)
	errs := make([]error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.Snapshot()
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 2)
	}
}

func TestStore_InvalidateReloads(t *testing.T) {
	path := writeCSV(t, testHeader+
		"Austin,TX,30.27,-97.74,100,1500,1200,4500,400,300\n")

	store := NewStore(path)

	records, err := store.Snapshot()
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Rewrite the source and invalidate; the next snapshot sees both rows.
	require.NoError(t, os.WriteFile(path, []byte(testHeader+
		"Austin,TX,30.27,-97.74,100,1500,1200,4500,400,300\n"+
		"Dallas,TX,32.78,-96.80,95,1300,1000,4300,380,290\n"), 0600))
	store.Invalidate()

	records, err = store.Snapshot()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStore_ReloadKeepsOldSnapshotOnFailure(t *testing.T) {
	path := writeCSV(t, testHeader+
		"Austin,TX,30.27,-97.74,100,1500,1200,4500,400,300\n")

	store := NewStore(path)

	records, err := store.Snapshot()
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Corrupt the source. Reload must fail without clobbering the cache.
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0600))

	_, err = store.Reload()
	require.Error(t, err)

	cached, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, records, cached)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	csvPath := writeCSV(t, testHeader+
		"Austin,TX,30.27,-97.74,100,1500,1200,4500,400,300\n")
	dbPath := filepath.Join(t.TempDir(), "cities.db")

	n, err := ImportCSV(csvPath, dbPath)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	fromCSV, err := Load(csvPath)
	require.NoError(t, err)

	fromDB, err := Load(dbPath)
	require.NoError(t, err)

	assert.Equal(t, fromCSV, fromDB)
}
