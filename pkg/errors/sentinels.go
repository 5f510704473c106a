package errors

import stdErrors "errors"

// Sentinel errors used for control-flow decisions (errors.Is) rather than
// structured context extraction. Recovery and merge loops branch on these
// directly; callers that need segment/key/offset context should prefer
// AsStorageError/AsIndexError instead.
var (
	// ErrDataFileReadEOF signals the normal scan terminator: a short read at
	// the tail of a data file, distinguished from a genuinely corrupted
	// record because its header could not even be parsed.
	ErrDataFileReadEOF = stdErrors.New("ignite: data file read reached EOF")

	// ErrCheckSumFailed signals a record whose trailing CRC-32 did not match
	// the bytes preceding it. Fatal to the scan that found it.
	ErrCheckSumFailed = stdErrors.New("ignite: record checksum mismatch")

	// ErrDataFileCorrupted signals a data file whose on-disk layout could
	// not be parsed, such as a non-numeric file-id prefix.
	ErrDataFileCorrupted = stdErrors.New("ignite: data file corrupted")

	// ErrKeyEmpty is returned by Put/Get/Delete for a zero-length key.
	ErrKeyEmpty = stdErrors.New("ignite: key is empty")

	// ErrKeyNotFound is returned by Get when the index has no entry for the
	// requested key. Delete of such a key succeeds without writing.
	ErrKeyNotFound = stdErrors.New("ignite: key not found")

	// ErrKeyNotFoundInDataFile signals an index entry pointing at a data
	// file id with no corresponding open handle. Indicates an index
	// inconsistent with the files actually present on disk.
	ErrKeyNotFoundInDataFile = stdErrors.New("ignite: data file not found for indexed key")

	// ErrFailUpdateIndexer signals that an index mutation reported failure
	// after its record was already durably appended to the log.
	ErrFailUpdateIndexer = stdErrors.New("ignite: failed to update index")

	// ErrExceedBatchMaxRows is returned by WriteBatch.Commit when the batch
	// has staged more than batch_max_rows entries.
	ErrExceedBatchMaxRows = stdErrors.New("ignite: exceeded batch max rows")

	// ErrMergeInProcess is returned by Merge when another merge is already
	// running against the same engine.
	ErrMergeInProcess = stdErrors.New("ignite: merge already in process")

	// ErrDirPathEmpty is returned by option validation for an empty dir_path.
	ErrDirPathEmpty = stdErrors.New("ignite: dir_path must not be empty")

	// ErrInvalidDataFileSizeOption is returned by option validation for a
	// non-positive file_size_threshold.
	ErrInvalidDataFileSizeOption = stdErrors.New("ignite: file_size_threshold must be greater than zero")

	// ErrDirPathCreateFailed is returned when dir_path cannot be created.
	ErrDirPathCreateFailed = stdErrors.New("ignite: failed to create dir_path")

	// ErrDirPathReadFailed is returned when dir_path cannot be scanned for
	// existing data files during recovery.
	ErrDirPathReadFailed = stdErrors.New("ignite: failed to read dir_path")

	// ErrFailReadFromFile is returned when a positional read against a data
	// file fails for reasons other than EOF.
	ErrFailReadFromFile = stdErrors.New("ignite: failed to read from data file")

	// ErrFailWriteDataToFile is returned when an append to the active file
	// fails partway through.
	ErrFailWriteDataToFile = stdErrors.New("ignite: failed to write to data file")

	// ErrFailSyncDataToFile is returned when fsync on a data file fails.
	ErrFailSyncDataToFile = stdErrors.New("ignite: failed to sync data file")

	// ErrFailNewDataFile is returned when a new active data file cannot be
	// created during rotation.
	ErrFailNewDataFile = stdErrors.New("ignite: failed to create new data file")

	// ErrEngineClosed is returned by Put, Get, Delete, Merge and a second
	// Close invoked on an Engine after Close. Sync, iteration, ListKeys and
	// Fold do not check for it.
	ErrEngineClosed = stdErrors.New("ignite: engine is closed")
)
