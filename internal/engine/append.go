package engine

import (
	"sync"
	"sync/atomic"

	"github.com/ignitedb/ignite/internal/data"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

// CommitLocker returns the engine's commit mutex, giving a WriteBatch a lock
// it can hold for its entire commit so sequence numbers stay totally
// ordered across concurrently committing batches.
func (e *Engine) CommitLocker() sync.Locker {
	return &e.batchCommitMu
}

// NextSeqNo atomically increments and returns the commit sequence counter.
// Sequence 0 is reserved for non-transactional writes, so the first batch
// commit in a fresh directory observes 1; on open the counter resumes from
// the highest sequence number found in the log.
func (e *Engine) NextSeqNo() uint64 {
	return atomic.AddUint64(&e.seqNo, 1)
}

// HasKey reports whether the index currently holds an entry for key.
func (e *Engine) HasKey(key []byte) bool {
	_, ok := e.idx.Get(key)
	return ok
}

// ApplyPut inserts (key -> pos) into the index.
func (e *Engine) ApplyPut(key []byte, pos data.LogRecordPos) {
	e.idx.Put(key, pos)
}

// ApplyDelete removes key's index entry, if any.
func (e *Engine) ApplyDelete(key []byte) {
	e.idx.Delete(key)
}

// Append encodes record and writes it to the active file, rotating to a
// fresh active file first if the write would exceed file_size_threshold.
// Returns the position the record now lives at.
func (e *Engine) Append(record *data.LogRecord) (data.LogRecordPos, error) {
	e.activeMu.Lock()
	defer e.activeMu.Unlock()
	return e.appendLocked(record)
}

// appendLocked performs the append under activeMu already held.
func (e *Engine) appendLocked(record *data.LogRecord) (data.LogRecordPos, error) {
	encoded := record.Encode()

	if e.active.WriteOffset()+uint64(len(encoded)) > uint64(e.opts.FileSizeThreshold) {
		if err := e.rotateActiveLocked(); err != nil {
			return data.LogRecordPos{}, err
		}
	}

	offset, err := e.active.Append(encoded)
	if err != nil {
		return data.LogRecordPos{}, err
	}

	if e.opts.Sync {
		if err := e.active.Sync(); err != nil {
			return data.LogRecordPos{}, err
		}
	}

	return data.LogRecordPos{FileID: e.active.ID(), Offset: offset}, nil
}

// rotateActiveLocked fsyncs and retires the current active file into the
// older-file map, then opens a fresh active file one id higher. Callers
// must hold activeMu.
func (e *Engine) rotateActiveLocked() error {
	if err := e.active.Sync(); err != nil {
		return err
	}

	retiring := e.active
	nextID := retiring.ID() + 1

	fresh, err := data.OpenDataFile(e.opts.DirPath, nextID)
	if err != nil {
		return ignerrors.NewStorageError(ignerrors.ErrFailNewDataFile, ignerrors.ErrorCodeIO, "failed to open new active data file").
			WithFileID(nextID).WithPath(e.opts.DirPath)
	}

	e.olderMu.Lock()
	e.older[retiring.ID()] = retiring
	e.olderMu.Unlock()

	e.active = fresh
	return nil
}
