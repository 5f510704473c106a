package engine

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"sort"
	"strconv"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"

	"github.com/ignitedb/ignite/internal/data"
	"github.com/ignitedb/ignite/internal/merge"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

// mergeFinishedKey is an arbitrary non-empty key for the merge-finished
// marker record. The record codec treats a zero key_size as end-of-file, so
// the marker's stored key must not be empty even though its content is
// never read back.
var mergeFinishedKey = []byte("merge-finished")

// Merge compacts every immutable file plus the current active file into the
// sibling scratch directory, writing a compacted log (via a secondary
// Engine rooted there), a hint file mirroring the resulting index, and a
// merge-finished marker naming the first file id the merge did not cover.
// None of this is visible to the primary directory until the next Open
// calls merge.LoadMergeFiles, which performs the actual swap.
//
// At most one merge runs at a time; a concurrent call returns
// ErrMergeInProcess.
func (e *Engine) Merge() error {
	if !e.mergeMu.TryLock() {
		return ignerrors.ErrMergeInProcess
	}
	defer e.mergeMu.Unlock()

	if e.closed.Load() {
		return ignerrors.ErrEngineClosed
	}

	mergeDirPath := merge.GetMergeDirPath(e.opts.DirPath)
	if err := os.RemoveAll(mergeDirPath); err != nil {
		return ignerrors.NewStorageError(err, ignerrors.ErrorCodeIO, "failed to clear stale merge directory").
			WithPath(mergeDirPath)
	}

	fileIDs, err := e.snapshotFileIDsForMerge()
	if err != nil {
		return err
	}

	mergeOpts := e.opts
	mergeOpts.DirPath = mergeDirPath
	mergeEngine, err := New(context.Background(), &Config{Options: &mergeOpts, Logger: e.log})
	if err != nil {
		return err
	}

	hintFile, err := data.OpenHintFile(mergeDirPath)
	if err != nil {
		multierr.AppendInto(&err, mergeEngine.Close())
		return err
	}

	if err := e.writeMergedFiles(fileIDs, mergeEngine, hintFile); err != nil {
		err = multierr.Combine(err, hintFile.Close(), mergeEngine.Close())
		return err
	}

	var closeErr error
	closeErr = multierr.Append(closeErr, hintFile.Sync())
	closeErr = multierr.Append(closeErr, hintFile.Close())
	closeErr = multierr.Append(closeErr, mergeEngine.Close())
	if closeErr != nil {
		return closeErr
	}

	nextID := fileIDs[len(fileIDs)-1] + 1
	marker := &data.LogRecord{
		Key:   mergeFinishedKey,
		Value: []byte(strconv.FormatUint(uint64(nextID), 10)),
		Type:  data.RecordNormal,
	}
	markerPath := merge.MarkerPath(mergeDirPath)
	if err := atomic.WriteFile(markerPath, bytes.NewReader(marker.Encode())); err != nil {
		return ignerrors.NewStorageError(err, ignerrors.ErrorCodeIO, "failed to write merge-finished marker").
			WithPath(markerPath)
	}

	e.log.Infow("merge finished", "dirPath", e.opts.DirPath, "filesCompacted", len(fileIDs), "nextFileID", nextID)
	return nil
}

// snapshotFileIDsForMerge promotes the active file to immutable (rotating
// to a fresh one, regardless of its size) and returns the ascending ids of
// every file that rotation left behind: every previously-immutable file
// plus the file that was active a moment ago.
func (e *Engine) snapshotFileIDsForMerge() ([]uint32, error) {
	e.activeMu.Lock()
	err := e.rotateActiveLocked()
	e.activeMu.Unlock()
	if err != nil {
		return nil, err
	}

	e.olderMu.RLock()
	ids := make([]uint32, 0, len(e.older))
	for id := range e.older {
		ids = append(ids, id)
	}
	e.olderMu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// writeMergedFiles reads every file in fileIDs sequentially and, for each
// record whose position is still the index's live position for its user
// key, re-appends it to mergeEngine and records a hint-file entry for it.
// Superseded records and tombstones are skipped: the index never points at
// a DELETED record, so their positions never match and no explicit type
// check is needed.
func (e *Engine) writeMergedFiles(fileIDs []uint32, mergeEngine *Engine, hintFile *data.DataFile) error {
	for _, id := range fileIDs {
		f, ok := e.fileForID(id)
		if !ok {
			continue
		}

		var offset uint64
		for {
			record, n, err := f.ReadRecord(offset)
			if err != nil {
				if stderrors.Is(err, ignerrors.ErrDataFileReadEOF) {
					break
				}
				return err
			}

			userKey, _, ok := data.DecodeStoredKey(record.Key)
			if !ok {
				return ignerrors.NewIndexError(ignerrors.ErrDataFileCorrupted, ignerrors.ErrorCodeIndexCorrupted, "failed to decode stored key during merge").
					WithOperation("Merge").WithFileID(id)
			}

			livePos, ok := e.idx.Get(userKey)
			isLive := ok && livePos.FileID == id && livePos.Offset == offset
			if isLive {
				storedKey := data.EncodeStoredKey(userKey, data.NonTxnSeqNo)

				mergedPos, err := mergeEngine.Append(&data.LogRecord{Key: storedKey, Value: record.Value, Type: data.RecordNormal})
				if err != nil {
					return err
				}

				hintRecord := &data.LogRecord{Key: storedKey, Value: data.EncodePosition(mergedPos), Type: data.RecordNormal}
				if _, err := hintFile.Append(hintRecord.Encode()); err != nil {
					return err
				}
			}

			offset += n
		}
	}

	return nil
}
