package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignitedb/ignite/internal/data"
)

func TestIndex_PutGetDelete(t *testing.T) {
	idx := New()

	pos := data.LogRecordPos{FileID: 1, Offset: 10}
	idx.Put([]byte("key1"), pos)

	got, ok := idx.Get([]byte("key1"))
	require.True(t, ok)
	assert.Equal(t, pos, got)

	assert.True(t, idx.Delete([]byte("key1")))
	_, ok = idx.Get([]byte("key1"))
	assert.False(t, ok)

	assert.False(t, idx.Delete([]byte("key1")))
}

func TestIndex_ListKeys_Sorted(t *testing.T) {
	idx := New()
	idx.Put([]byte("bcc"), data.LogRecordPos{FileID: 0, Offset: 1})
	idx.Put([]byte("bbc"), data.LogRecordPos{FileID: 0, Offset: 2})
	idx.Put([]byte("cbb"), data.LogRecordPos{FileID: 0, Offset: 3})

	keys := idx.ListKeys()
	require.Len(t, keys, 3)
	assert.Equal(t, "bbc", string(keys[0]))
	assert.Equal(t, "bcc", string(keys[1]))
	assert.Equal(t, "cbb", string(keys[2]))
}

func seedFixture(t *testing.T) *Index {
	t.Helper()
	idx := New()
	idx.Put([]byte("bbc"), data.LogRecordPos{FileID: 0, Offset: 1})
	idx.Put([]byte("bcc"), data.LogRecordPos{FileID: 0, Offset: 2})
	idx.Put([]byte("cbb"), data.LogRecordPos{FileID: 0, Offset: 3})
	return idx
}

func collect(it *Iterator) []string {
	var keys []string
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	return keys
}

func TestIterator_Forward(t *testing.T) {
	idx := seedFixture(t)
	it := NewIterator(idx, IteratorOptions{})
	it.Seek([]byte("a"))
	var keys []string
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	assert.Equal(t, []string{"bbc", "bcc", "cbb"}, keys)
}

func TestIterator_Prefix(t *testing.T) {
	idx := seedFixture(t)
	it := NewIterator(idx, IteratorOptions{Prefix: []byte("c")})
	assert.Equal(t, []string{"cbb"}, collect(it))
}

func TestIterator_Reverse(t *testing.T) {
	idx := seedFixture(t)
	it := NewIterator(idx, IteratorOptions{Reverse: true})
	it.Seek([]byte("c"))
	var keys []string
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	assert.Equal(t, []string{"bcc", "bbc"}, keys)
}

func TestIterator_SnapshotsAtConstruction(t *testing.T) {
	idx := seedFixture(t)
	it := NewIterator(idx, IteratorOptions{})

	idx.Put([]byte("aaa"), data.LogRecordPos{FileID: 0, Offset: 99})
	idx.Delete([]byte("bbc"))

	assert.Equal(t, []string{"bbc", "bcc", "cbb"}, collect(it))
}
