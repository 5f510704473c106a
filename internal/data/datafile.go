package data

import (
	"encoding/binary"
	"hash/crc32"
	"sync"

	ignerrors "github.com/ignitedb/ignite/pkg/errors"
	"github.com/ignitedb/ignite/internal/storage"
)

// DataFile owns one append-only file identified by a monotonically
// increasing 32-bit file id. It tracks the current write offset and
// exposes positional record reads, appends, and fsync. Appends are guarded
// by an exclusive lock so concurrent appends serialize; reads and fsync do
// not take the lock.
type DataFile struct {
	id  uint32
	io  storage.IOManager
	mu  sync.RWMutex
	off uint64
}

// HintFileID and MergeFinishedFileID are the reserved file ids the two
// specialized constructors use; neither participates in the numbered-file
// scan.
const HintFileID uint32 = 0
const MergeFinishedFileID uint32 = 0

func newDataFile(id uint32, path string) (*DataFile, error) {
	mgr, err := storage.NewFileIOManager(path)
	if err != nil {
		return nil, ignerrors.ClassifyFileOpenError(err, path, FileName(id))
	}

	size, err := mgr.Size()
	if err != nil {
		mgr.Close()
		return nil, err
	}

	return &DataFile{id: id, io: mgr, off: uint64(size)}, nil
}

// OpenDataFile opens (creating if absent) the numbered data file for id
// inside dirPath, seeding its write offset from the file's current length.
func OpenDataFile(dirPath string, id uint32) (*DataFile, error) {
	return newDataFile(id, filePath(dirPath, FileName(id)))
}

// OpenHintFile opens the hint-index file inside dirPath. It shares the
// record codec with numbered data files but uses a reserved file id and is
// not part of the numbered-file scan.
func OpenHintFile(dirPath string) (*DataFile, error) {
	return newDataFile(HintFileID, filePath(dirPath, HintFileName))
}

// OpenMergeFinishedFile opens the merge-finished marker file inside dirPath.
func OpenMergeFinishedFile(dirPath string) (*DataFile, error) {
	return newDataFile(MergeFinishedFileID, filePath(dirPath, MergeFinishedFileName))
}

// ID returns the file's id.
func (f *DataFile) ID() uint32 {
	return f.id
}

// WriteOffset returns the current write offset: the byte offset the next
// Append will land at.
func (f *DataFile) WriteOffset() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.off
}

// Append writes the already-encoded record bytes at the current end of
// file and advances the write offset. Returns the offset the record was
// written at.
func (f *DataFile) Append(encoded []byte) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pos := f.off
	n, err := f.io.Write(encoded)
	if err != nil {
		return 0, ignerrors.NewStorageError(ignerrors.ErrFailWriteDataToFile, ignerrors.ErrorCodeIO, "failed to append record").
			WithFileID(f.id).WithOffset(int64(pos))
	}
	f.off += uint64(n)
	return pos, nil
}

// Sync fsyncs the file to stable storage.
func (f *DataFile) Sync() error {
	if err := f.io.Sync(); err != nil {
		return ignerrors.NewStorageError(ignerrors.ErrFailSyncDataToFile, ignerrors.ErrorCodeIO, "failed to sync data file").
			WithFileID(f.id)
	}
	return nil
}

// Close releases the underlying file handle.
func (f *DataFile) Close() error {
	return f.io.Close()
}

// ReadRecord reads the record stored at offset, returning the decoded
// record and the number of bytes it occupies on disk (header + key +
// value + crc32). Returns ignerrors.ErrDataFileReadEOF if offset is at or
// past the tail (decoded key_size == 0, a short-read-tolerant signal, not
// a corruption), and ignerrors.ErrCheckSumFailed if the trailing CRC does
// not match.
func (f *DataFile) ReadRecord(offset uint64) (*LogRecord, uint64, error) {
	headerBuf := make([]byte, MaxHeaderSize)
	n, err := f.io.ReadAt(headerBuf, int64(offset))
	if err != nil && n == 0 {
		return nil, 0, ignerrors.ErrDataFileReadEOF
	}
	headerBuf = headerBuf[:n]

	header, ok := decodeHeader(headerBuf)
	if !ok || header.keySize == 0 {
		return nil, 0, ignerrors.ErrDataFileReadEOF
	}

	bodyLen := header.keySize + header.valueSize + crc32.Size
	body := make([]byte, bodyLen)
	n2, err := f.io.ReadAt(body, int64(offset)+int64(header.headerLen))
	if uint64(n2) < bodyLen {
		// The header advertised a full record but fewer bytes than it
		// promised are actually present: a torn write at the file tail
		// (the process died mid-append). Treated the same as any other
		// CRC mismatch rather than a distinct I/O failure, since the
		// trailing bytes that would have let it validate are exactly
		// what's missing.
		return nil, 0, ignerrors.ErrCheckSumFailed
	}
	if err != nil {
		return nil, 0, ignerrors.NewStorageError(ignerrors.ErrFailReadFromFile, ignerrors.ErrorCodeIO, "failed to read record body").
			WithFileID(f.id).WithOffset(int64(offset))
	}

	key := body[:header.keySize]
	value := body[header.keySize : header.keySize+header.valueSize]
	wantCRC := binary.LittleEndian.Uint32(body[header.keySize+header.valueSize:])

	checked := make([]byte, header.headerLen+int(header.keySize)+int(header.valueSize))
	copy(checked, headerBuf[:header.headerLen])
	copy(checked[header.headerLen:], key)
	copy(checked[header.headerLen+int(header.keySize):], value)

	if crc32.ChecksumIEEE(checked) != wantCRC {
		return nil, 0, ignerrors.ErrCheckSumFailed
	}

	record := &LogRecord{
		Type:  header.recordType,
		Key:   append([]byte(nil), key...),
		Value: append([]byte(nil), value...),
	}
	bytesConsumed := uint64(header.headerLen) + bodyLen

	return record, bytesConsumed, nil
}
