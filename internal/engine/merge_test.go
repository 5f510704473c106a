package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ignerrors "github.com/ignitedb/ignite/pkg/errors"
	"github.com/ignitedb/ignite/pkg/options"
)

func dirSize(t *testing.T, dir string) int64 {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var total int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		require.NoError(t, err)
		total += info.Size()
	}
	return total
}

func TestEngine_Merge_Equivalence(t *testing.T) {
	dir := t.TempDir()
	opts := options.NewDefaultOptions()
	opts.DirPath = dir
	opts.FileSizeThreshold = 512

	e, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)

	want := make(map[string]string)
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key-%03d", i)
		for v := 0; v < 3; v++ {
			value := fmt.Sprintf("value-%03d-v%d", i, v)
			require.NoError(t, e.Put([]byte(key), []byte(value)))
		}
		want[key] = fmt.Sprintf("value-%03d-v2", i)
	}
	for i := 0; i < 100; i += 3 {
		key := fmt.Sprintf("key-%03d", i)
		require.NoError(t, e.Delete([]byte(key)))
		delete(want, key)
	}

	sizeBefore := dirSize(t, dir)

	require.NoError(t, e.Merge())
	require.NoError(t, e.Close())

	reopened, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)
	defer reopened.Close()

	sizeAfter := dirSize(t, dir)
	assert.Less(t, sizeAfter, sizeBefore)

	for key, value := range want {
		got, err := reopened.Get([]byte(key))
		require.NoError(t, err, "key %s", key)
		assert.Equal(t, value, string(got))
	}

	for i := 0; i < 100; i += 3 {
		key := fmt.Sprintf("key-%03d", i)
		_, err := reopened.Get([]byte(key))
		assert.ErrorIs(t, err, ignerrors.ErrKeyNotFound)
	}

	assert.Len(t, reopened.ListKeys(), len(want))
}

func TestEngine_Merge_ConcurrentCallFails(t *testing.T) {
	dir := t.TempDir()
	opts := options.NewDefaultOptions()
	opts.DirPath = dir

	e, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)
	defer e.Close()

	e.mergeMu.Lock()
	defer e.mergeMu.Unlock()

	assert.ErrorIs(t, e.Merge(), ignerrors.ErrMergeInProcess)
}

func TestEngine_Merge_AbortedMergeDiscardedOnOpen(t *testing.T) {
	dir := t.TempDir()
	opts := options.NewDefaultOptions()
	opts.DirPath = dir

	e, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)
	require.NoError(t, e.Put([]byte("key"), []byte("value")))
	require.NoError(t, e.Close())

	// Simulate an interrupted merge: a scratch directory with no
	// merge-finished marker in it.
	mergeDir := dir + "-merge"
	require.NoError(t, os.MkdirAll(mergeDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(mergeDir, "000000000.data"), []byte("garbage"), 0644))

	reopened, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)
	defer reopened.Close()

	_, statErr := os.Stat(mergeDir)
	assert.True(t, os.IsNotExist(statErr))

	v, err := reopened.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, "value", string(v))
}
