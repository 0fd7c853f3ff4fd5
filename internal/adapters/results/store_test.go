package results_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonic/internal/adapters/results"
	"go.trai.ch/mesonic/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	buildDir := t.TempDir()
	store := results.NewStore()

	result := domain.TestResult{
		ID:        "unit",
		Outcome:   domain.OutcomeFailed,
		Duration:  1500 * time.Millisecond,
		Message:   "assertion failed",
		Output:    "1/1 unit FAIL\n",
		Timestamp: time.Now().Truncate(time.Second),
	}

	require.NoError(t, store.Put(buildDir, result))

	got, err := store.Get(buildDir, "unit")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, result.ID, got.ID)
	assert.Equal(t, result.Outcome, got.Outcome)
	assert.Equal(t, result.Duration, got.Duration)
	assert.Equal(t, result.Message, got.Message)
	assert.True(t, result.Timestamp.Equal(got.Timestamp))

	entries, err := os.ReadDir(domain.ResultStorePath(buildDir))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	buildDir := t.TempDir()
	store := results.NewStore()

	require.NoError(t, store.Put(buildDir, domain.TestResult{ID: "unit", Outcome: domain.OutcomeFailed}))
	require.NoError(t, store.Put(buildDir, domain.TestResult{ID: "unit", Outcome: domain.OutcomePassed}))

	got, err := store.Get(buildDir, "unit")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePassed, got.Outcome)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	got, err := results.NewStore().Get(t.TempDir(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_BuildDirsAreIsolated(t *testing.T) {
	t.Parallel()

	store := results.NewStore()
	first, second := t.TempDir(), t.TempDir()

	require.NoError(t, store.Put(first, domain.TestResult{ID: "unit", Outcome: domain.OutcomePassed}))

	got, err := store.Get(second, "unit")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	buildDir := t.TempDir()
	store := results.NewStore()
	require.NoError(t, store.Put(buildDir, domain.TestResult{ID: "unit"}))

	dir := domain.ResultStorePath(buildDir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	//nolint:gosec // test fixture
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{ invalid json"), 0o600))

	_, err = store.Get(buildDir, "unit")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_PutUnwritable(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	buildDir := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(buildDir, []byte("not a directory"), 0o600))

	err := results.NewStore().Put(buildDir, domain.TestResult{ID: "unit"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}
