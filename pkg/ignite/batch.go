package ignite

import "github.com/ignitedb/ignite/internal/batch"

// WriteBatch stages pending mutations against an Instance and commits them
// atomically: every record in the batch becomes visible together, or none
// do if the process dies mid-commit. Staging calls on the same batch may be
// made from multiple goroutines; they are serialized by an internal lock.
type WriteBatch struct {
	inner *batch.WriteBatch
}

// Put stages a value for key. Re-puts overwrite the staged entry: last
// writer wins within the batch.
func (b *WriteBatch) Put(key string, value []byte) error {
	return b.inner.Put([]byte(key), value)
}

// Delete stages a tombstone for key. If neither the store nor this batch
// has an entry for key, Delete is a no-op.
func (b *WriteBatch) Delete(key string) error {
	return b.inner.Delete([]byte(key))
}

// Commit atomically appends every staged record under one commit sequence
// number. On success, every staged mutation is visible to subsequent reads.
func (b *WriteBatch) Commit() error {
	return b.inner.Commit()
}
