// Package batch implements the transactional write-batch protocol: staged
// mutations committed atomically under a global commit sequence number.
package batch

import (
	"sync"

	"github.com/ignitedb/ignite/internal/data"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
	"github.com/ignitedb/ignite/pkg/options"
)

// Committer is the slice of Engine behavior a WriteBatch commits against.
// Defining it here (rather than importing internal/engine directly) keeps
// internal/batch free of a dependency on internal/engine, which itself
// constructs WriteBatch values.
type Committer interface {
	// CommitLocker returns the engine's commit mutex; Commit holds it for
	// its entire duration so batches commit in a total order and their
	// sequence numbers monotonically increase in file order.
	CommitLocker() sync.Locker

	// NextSeqNo atomically increments and returns the engine's commit
	// sequence counter.
	NextSeqNo() uint64

	// Append encodes and appends record under the active-file lock,
	// rotating the active file if necessary. Returns the position the
	// record's stored key now lives at.
	Append(record *data.LogRecord) (data.LogRecordPos, error)

	// ApplyPut inserts (userKey -> pos) into the index.
	ApplyPut(userKey []byte, pos data.LogRecordPos)

	// ApplyDelete removes userKey's index entry, if any.
	ApplyDelete(userKey []byte)

	// HasKey reports whether the index currently has an entry for userKey.
	HasKey(userKey []byte) bool

	// Sync fsyncs the active file.
	Sync() error
}

type stagedRecord struct {
	value []byte
	typ   data.RecordType
}

// WriteBatch stages pending mutations against one Engine and commits them
// atomically: every record in the batch becomes visible together, or none
// do if the process dies mid-commit.
type WriteBatch struct {
	mu     sync.Mutex
	engine Committer
	opts   options.BatchOptions
	staged map[string]stagedRecord
}

// New constructs a WriteBatch staging mutations against engine.
func New(engine Committer, opts options.BatchOptions) *WriteBatch {
	return &WriteBatch{
		engine: engine,
		opts:   opts,
		staged: make(map[string]stagedRecord),
	}
}

// Put stages a NORMAL record for key. Re-puts overwrite the staged entry:
// last writer wins within the batch.
func (b *WriteBatch) Put(key, value []byte) error {
	if len(key) == 0 {
		return ignerrors.ErrKeyEmpty
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.staged[string(key)] = stagedRecord{value: append([]byte(nil), value...), typ: data.RecordNormal}
	return nil
}

// Delete stages a DELETED record for key. If the engine's index has no
// entry for key and the batch has no pending put for it, Delete is a no-op:
// there is nothing to tombstone.
func (b *WriteBatch) Delete(key []byte) error {
	if len(key) == 0 {
		return ignerrors.ErrKeyEmpty
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, staged := b.staged[string(key)]; !staged && !b.engine.HasKey(key) {
		return nil
	}
	b.staged[string(key)] = stagedRecord{typ: data.RecordDeleted}
	return nil
}

// Commit atomically appends every staged record, a transaction terminator,
// and then applies each record's indexer effect. It holds the engine's
// commit lock for its entire duration so commit sequence numbers stay
// totally ordered across concurrent batches.
func (b *WriteBatch) Commit() error {
	b.mu.Lock()
	staged := b.staged
	b.staged = make(map[string]stagedRecord)
	b.mu.Unlock()

	if len(staged) == 0 {
		return nil
	}

	locker := b.engine.CommitLocker()
	locker.Lock()
	defer locker.Unlock()

	if uint(len(staged)) > b.opts.BatchMaxRows {
		return ignerrors.NewIndexError(ignerrors.ErrExceedBatchMaxRows, ignerrors.ErrorCodeExceedBatchMaxRows, "write batch exceeded batch_max_rows").
			WithDetail("staged_rows", len(staged)).
			WithDetail("batch_max_rows", b.opts.BatchMaxRows)
	}

	seqNo := b.engine.NextSeqNo()
	positions := make(map[string]data.LogRecordPos, len(staged))

	for key, rec := range staged {
		storedKey := data.EncodeStoredKey([]byte(key), seqNo)
		pos, err := b.engine.Append(&data.LogRecord{Key: storedKey, Value: rec.value, Type: rec.typ})
		if err != nil {
			return err
		}
		positions[key] = pos
	}

	finKey := data.EncodeStoredKey(data.TxnFinKey, seqNo)
	if _, err := b.engine.Append(&data.LogRecord{Key: finKey, Type: data.RecordTxnCommit}); err != nil {
		return err
	}

	if b.opts.SyncWrites {
		if err := b.engine.Sync(); err != nil {
			return err
		}
	}

	for key, rec := range staged {
		if rec.typ == data.RecordDeleted {
			b.engine.ApplyDelete([]byte(key))
		} else {
			b.engine.ApplyPut([]byte(key), positions[key])
		}
	}

	return nil
}
