package ignite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ignerrors "github.com/ignitedb/ignite/pkg/errors"
	"github.com/ignitedb/ignite/pkg/options"
)

func newTestInstance(t *testing.T) *Instance {
	t.Helper()
	inst, err := NewInstance(context.Background(), "ignite-test",
		options.WithDirPath(t.TempDir()),
		options.WithFileSizeThreshold(1<<20),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = inst.Close(context.Background()) })
	return inst
}

func TestInstance_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	inst := newTestInstance(t)

	require.NoError(t, inst.Set(ctx, "key1", []byte("value1")))
	v, err := inst.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", string(v))

	require.NoError(t, inst.Delete(ctx, "key1"))
	_, err = inst.Get(ctx, "key1")
	assert.ErrorIs(t, err, ignerrors.ErrKeyNotFound)
}

func TestInstance_Scan(t *testing.T) {
	ctx := context.Background()
	inst := newTestInstance(t)

	require.NoError(t, inst.Set(ctx, "bbc", []byte("value1")))
	require.NoError(t, inst.Set(ctx, "bcc", []byte("value2")))
	require.NoError(t, inst.Set(ctx, "cbb", []byte("value3")))

	pairs, err := inst.Scan(ctx, ScanOptions{Prefix: []byte("c")})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "cbb", string(pairs[0][0]))
	assert.Equal(t, "value3", string(pairs[0][1]))
}

func TestInstance_WriteBatch(t *testing.T) {
	ctx := context.Background()
	inst := newTestInstance(t)

	wb := inst.NewWriteBatch(options.NewDefaultBatchOptions())
	require.NoError(t, wb.Put("batched", []byte("value")))

	_, err := inst.Get(ctx, "batched")
	assert.ErrorIs(t, err, ignerrors.ErrKeyNotFound)

	require.NoError(t, wb.Commit())

	v, err := inst.Get(ctx, "batched")
	require.NoError(t, err)
	assert.Equal(t, "value", string(v))
}

func TestInstance_Merge(t *testing.T) {
	ctx := context.Background()
	inst := newTestInstance(t)

	for i := 0; i < 10; i++ {
		require.NoError(t, inst.Set(ctx, "key", []byte("v")))
	}
	require.NoError(t, inst.Merge(ctx))

	v, err := inst.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "v", string(v))
}
