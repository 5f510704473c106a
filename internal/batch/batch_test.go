package batch_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignitedb/ignite/internal/engine"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
	"github.com/ignitedb/ignite/pkg/options"
)

func openTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	opts := options.NewDefaultOptions()
	opts.DirPath = t.TempDir()

	e, err := engine.New(context.Background(), &engine.Config{Options: &opts})
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestWriteBatch_NotVisibleUntilCommit(t *testing.T) {
	e := openTestEngine(t)
	wb := e.NewWriteBatch(options.NewDefaultBatchOptions())

	require.NoError(t, wb.Put([]byte("key"), []byte("value")))

	_, err := e.Get([]byte("key"))
	assert.ErrorIs(t, err, ignerrors.ErrKeyNotFound)

	require.NoError(t, wb.Commit())

	v, err := e.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, "value", string(v))
}

func TestWriteBatch_DurableAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	opts := options.NewDefaultOptions()
	opts.DirPath = dir

	e, err := engine.New(context.Background(), &engine.Config{Options: &opts})
	require.NoError(t, err)

	wb := e.NewWriteBatch(options.NewDefaultBatchOptions())
	require.NoError(t, wb.Put([]byte("key"), []byte("value")))
	require.NoError(t, wb.Commit())
	require.NoError(t, e.Close())

	reopened, err := engine.New(context.Background(), &engine.Config{Options: &opts})
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, "value", string(v))
}

func TestWriteBatch_ExceedsMaxRows(t *testing.T) {
	e := openTestEngine(t)
	wb := e.NewWriteBatch(options.BatchOptions{BatchMaxRows: 2, SyncWrites: false})

	require.NoError(t, wb.Put([]byte("a"), []byte("1")))
	require.NoError(t, wb.Put([]byte("b"), []byte("2")))
	require.NoError(t, wb.Put([]byte("c"), []byte("3")))

	err := wb.Commit()
	assert.ErrorIs(t, err, ignerrors.ErrExceedBatchMaxRows)
}

func TestWriteBatch_Delete_NoOpForUnknownKey(t *testing.T) {
	e := openTestEngine(t)
	wb := e.NewWriteBatch(options.NewDefaultBatchOptions())
	require.NoError(t, wb.Delete([]byte("never-existed")))
	require.NoError(t, wb.Commit())
}

func TestWriteBatch_EmptyKeyRejected(t *testing.T) {
	e := openTestEngine(t)
	wb := e.NewWriteBatch(options.NewDefaultBatchOptions())
	assert.ErrorIs(t, wb.Put(nil, []byte("v")), ignerrors.ErrKeyEmpty)
	assert.ErrorIs(t, wb.Delete(nil), ignerrors.ErrKeyEmpty)
}

func TestWriteBatch_ConcurrentCommitsOrdered(t *testing.T) {
	e := openTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wb := e.NewWriteBatch(options.NewDefaultBatchOptions())
			_ = wb.Put([]byte("concurrent"), []byte{byte(i)})
			_ = wb.Commit()
		}(i)
	}
	wg.Wait()

	_, err := e.Get([]byte("concurrent"))
	require.NoError(t, err)
}
