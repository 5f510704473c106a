package engine

import (
	"github.com/ignitedb/ignite/internal/index"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

// Iterator walks the index in key order (forward or reverse, optionally
// prefix-filtered), reading each record's value from its data file on
// demand rather than eagerly. It reflects the index as of construction
// time; later writes are not observed.
type Iterator struct {
	engine *Engine
	inner  *index.Iterator
}

// Iterator constructs an Iterator over the live index honoring opts.
func (e *Engine) Iterator(opts index.IteratorOptions) *Iterator {
	return &Iterator{engine: e, inner: index.NewIterator(e.idx, opts)}
}

// Rewind resets the cursor to the first matching element.
func (it *Iterator) Rewind() { it.inner.Rewind() }

// Seek positions the cursor at the first matching key >= target (or <=
// target in reverse).
func (it *Iterator) Seek(target []byte) { it.inner.Seek(target) }

// Valid reports whether the cursor currently points at an element.
func (it *Iterator) Valid() bool { return it.inner.Valid() }

// Next advances the cursor to the next matching element.
func (it *Iterator) Next() { it.inner.Next() }

// Key returns the key the cursor points at. Only valid when Valid() is true.
func (it *Iterator) Key() []byte { return it.inner.Key() }

// Value reads and returns the value stored at the cursor's position. Only
// valid when Valid() is true.
func (it *Iterator) Value() ([]byte, error) {
	pos := it.inner.Position()
	f, ok := it.engine.fileForID(pos.FileID)
	if !ok {
		return nil, ignerrors.NewFileNotFoundError(pos.FileID, string(it.inner.Key()))
	}

	record, _, err := f.ReadRecord(pos.Offset)
	if err != nil {
		return nil, err
	}
	return record.Value, nil
}

// ListKeys returns every live key, in ascending byte order.
func (e *Engine) ListKeys() [][]byte {
	return e.idx.ListKeys()
}

// Fold walks every live key/value pair in ascending order, calling pred for
// each. It stops early the first time pred returns false, or on the first
// read error.
func (e *Engine) Fold(pred func(key, value []byte) bool) error {
	it := e.Iterator(index.IteratorOptions{})
	for it.Rewind(); it.Valid(); it.Next() {
		value, err := it.Value()
		if err != nil {
			return err
		}
		if !pred(it.Key(), value) {
			break
		}
	}
	return nil
}
