package engine

import (
	"github.com/ignitedb/ignite/internal/data"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

// Put appends a NORMAL record for key/value as a standalone (sequence 0)
// write and updates the index once the append succeeds. The append is
// fsynced only when the Sync option is set.
func (e *Engine) Put(key, value []byte) error {
	if e.closed.Load() {
		return ignerrors.ErrEngineClosed
	}
	if len(key) == 0 {
		return ignerrors.ErrKeyEmpty
	}

	storedKey := data.EncodeStoredKey(key, data.NonTxnSeqNo)
	pos, err := e.Append(&data.LogRecord{Key: storedKey, Value: value, Type: data.RecordNormal})
	if err != nil {
		return err
	}

	e.idx.Put(key, pos)
	return nil
}

// Get looks key up in the index and reads its value from the data file the
// index points at.
func (e *Engine) Get(key []byte) ([]byte, error) {
	if e.closed.Load() {
		return nil, ignerrors.ErrEngineClosed
	}
	if len(key) == 0 {
		return nil, ignerrors.ErrKeyEmpty
	}

	pos, ok := e.idx.Get(key)
	if !ok {
		return nil, ignerrors.ErrKeyNotFound
	}

	f, ok := e.fileForID(pos.FileID)
	if !ok {
		return nil, ignerrors.NewFileNotFoundError(pos.FileID, string(key))
	}

	record, _, err := f.ReadRecord(pos.Offset)
	if err != nil {
		return nil, err
	}

	if record.Type == data.RecordDeleted {
		return nil, ignerrors.ErrKeyNotFound
	}

	return record.Value, nil
}

// Delete appends a DELETED tombstone for key (as a standalone write) and
// removes its index entry. A key absent from the index is a no-op.
func (e *Engine) Delete(key []byte) error {
	if e.closed.Load() {
		return ignerrors.ErrEngineClosed
	}
	if len(key) == 0 {
		return ignerrors.ErrKeyEmpty
	}

	if _, ok := e.idx.Get(key); !ok {
		return nil
	}

	storedKey := data.EncodeStoredKey(key, data.NonTxnSeqNo)
	if _, err := e.Append(&data.LogRecord{Key: storedKey, Type: data.RecordDeleted}); err != nil {
		return err
	}

	e.idx.Delete(key)
	return nil
}
