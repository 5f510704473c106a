package engine

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/ignitedb/ignite/internal/data"
	"github.com/ignitedb/ignite/internal/index"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

type pendingBatch struct {
	seqNo   uint64
	records []pendingRecord
}

type pendingRecord struct {
	userKey []byte
	typ     data.RecordType
	pos     data.LogRecordPos
}

// loadIndexFromDataFiles replays every data file from the merge threshold
// (or 0 if no merge has ever completed) through the active file inclusive,
// applying each record's indexer effect in file order. Transactional
// records (sequence > 0) are buffered per spec §4.3 until their terminator
// arrives or a different sequence number proves the batch was never
// completed on disk. The commit sequence counter is advanced to the highest
// sequence number seen, so later batches never reuse one already on disk.
func (e *Engine) loadIndexFromDataFiles(dirPath string) error {
	threshold, err := readMergeThreshold(dirPath)
	if err != nil {
		return err
	}

	ids := make([]uint32, 0, len(e.older)+1)
	for id := range e.older {
		ids = append(ids, id)
	}
	ids = append(ids, e.active.ID())
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var pending *pendingBatch
	var maxSeqNo uint64

	for _, id := range ids {
		if id < threshold {
			continue
		}

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

			userKey, seqNo, ok := data.DecodeStoredKey(record.Key)
			if !ok {
				return ignerrors.NewIndexError(ignerrors.ErrDataFileCorrupted, ignerrors.ErrorCodeIndexCorrupted, "failed to decode stored key during recovery").
					WithOperation("Open").WithFileID(id)
			}

			pos := data.LogRecordPos{FileID: id, Offset: offset}
			if seqNo > maxSeqNo {
				maxSeqNo = seqNo
			}

			if seqNo == data.NonTxnSeqNo {
				applyRecordEffect(e.idx, userKey, record.Type, pos)
			} else {
				if pending != nil && pending.seqNo != seqNo {
					pending = nil
				}
				if pending == nil {
					pending = &pendingBatch{seqNo: seqNo}
				}

				if record.Type == data.RecordTxnCommit && bytes.Equal(userKey, data.TxnFinKey) {
					for _, pr := range pending.records {
						applyRecordEffect(e.idx, pr.userKey, pr.typ, pr.pos)
					}
					pending = nil
				} else {
					pending.records = append(pending.records, pendingRecord{
						userKey: append([]byte(nil), userKey...),
						typ:     record.Type,
						pos:     pos,
					})
				}
			}

			offset += n
		}
	}

	if maxSeqNo > e.seqNo {
		e.seqNo = maxSeqNo
	}

	return nil
}

func applyRecordEffect(idx *index.Index, userKey []byte, typ data.RecordType, pos data.LogRecordPos) {
	switch typ {
	case data.RecordNormal:
		idx.Put(userKey, pos)
	case data.RecordDeleted:
		idx.Delete(userKey)
	}
}

// readMergeThreshold reads the merge-finished marker (if present) and
// returns the first non-merged file id it names, or 0 if no merge has ever
// completed against this directory.
func readMergeThreshold(dirPath string) (uint32, error) {
	markerPath := filepath.Join(dirPath, data.MergeFinishedFileName)
	if _, err := os.Stat(markerPath); os.IsNotExist(err) {
		return 0, nil
	}

	f, err := data.OpenMergeFinishedFile(dirPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	record, _, err := f.ReadRecord(0)
	if err != nil {
		return 0, err
	}

	m, err := strconv.ParseUint(string(record.Value), 10, 32)
	if err != nil {
		return 0, ignerrors.NewStorageError(ignerrors.ErrDataFileCorrupted, ignerrors.ErrorCodeDataFileCorrupted, "malformed merge-finished marker value").
			WithFileName(data.MergeFinishedFileName)
	}

	return uint32(m), nil
}
