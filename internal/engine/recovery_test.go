package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignitedb/ignite/internal/data"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
	"github.com/ignitedb/ignite/pkg/options"
)

// TestEngine_TornBatch_Discarded simulates a process killed between the
// first record of a batch and its terminator: the terminator is never
// appended, so on reopen recovery must discard the dangling group entirely.
func TestEngine_TornBatch_Discarded(t *testing.T) {
	dir := t.TempDir()
	opts := options.NewDefaultOptions()
	opts.DirPath = dir

	e, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)

	const seqNo = uint64(1)
	storedKey := data.EncodeStoredKey([]byte("torn"), seqNo)
	_, err = e.Append(&data.LogRecord{Key: storedKey, Value: []byte("never committed"), Type: data.RecordNormal})
	require.NoError(t, err)
	// No terminator follows: the process "died" here.
	require.NoError(t, e.Close())

	reopened, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)
	defer reopened.Close()

	_, err = reopened.Get([]byte("torn"))
	assert.ErrorIs(t, err, ignerrors.ErrKeyNotFound)
}

// TestEngine_TornBatch_DiscardedByFollowingSequence covers the branch where
// a new sequence number appears before the prior batch's terminator: the
// prior pending group is discarded (never reaching a terminator of its
// own), while the following batch, whose own terminator does arrive,
// commits normally.
func TestEngine_TornBatch_DiscardedByFollowingSequence(t *testing.T) {
	dir := t.TempDir()
	opts := options.NewDefaultOptions()
	opts.DirPath = dir

	e, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)

	storedA := data.EncodeStoredKey([]byte("first"), 1)
	_, err = e.Append(&data.LogRecord{Key: storedA, Value: []byte("orphan"), Type: data.RecordNormal})
	require.NoError(t, err)

	storedB := data.EncodeStoredKey([]byte("second"), 2)
	_, err = e.Append(&data.LogRecord{Key: storedB, Value: []byte("committed"), Type: data.RecordNormal})
	require.NoError(t, err)

	finB := data.EncodeStoredKey(data.TxnFinKey, 2)
	_, err = e.Append(&data.LogRecord{Key: finB, Type: data.RecordTxnCommit})
	require.NoError(t, err)
	require.NoError(t, e.Close())

	reopened, err := New(context.Background(), &Config{Options: &opts})
	require.NoError(t, err)
	defer reopened.Close()

	_, err = reopened.Get([]byte("first"))
	assert.ErrorIs(t, err, ignerrors.ErrKeyNotFound)

	v, err := reopened.Get([]byte("second"))
	require.NoError(t, err)
	assert.Equal(t, "committed", string(v))
}
