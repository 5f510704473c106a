package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// Base error codes represent the fundamental categories of failures that can
// occur across any software system. These codes provide the foundation layer
// of error classification.
const (
	// ErrorCodeIO represents failures in input/output operations across any
	// system boundary. This includes file system operations like reading or
	// writing data files, and device I/O when accessing storage hardware.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeInvalidInput represents client-side errors where the provided
	// data doesn't meet the system's requirements or constraints. This maps
	// to HTTP 400-series errors and indicates problems with the request itself
	// rather than system failures.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInternal represents unexpected system failures that don't fit
	// into other categories. These are the equivalent of HTTP 500 errors and
	// indicate bugs, assertion failures, or other programming errors that
	// shouldn't occur during normal operation.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Storage-specific error codes extend the base error taxonomy to handle the
// unique failure modes that occur in persistent storage systems: append-only
// data file management and record-level durability.
const (
	// ErrorCodeDataFileCorrupted indicates that a data file's on-disk layout
	// could not be parsed (e.g. a non-numeric file-id prefix).
	ErrorCodeDataFileCorrupted ErrorCode = "DATA_FILE_CORRUPTED"

	// ErrorCodeChecksumFailed indicates a record's CRC-32 trailer did not
	// match the bytes that precede it. Fatal to recovery and merge scans.
	ErrorCodeChecksumFailed ErrorCode = "CHECKSUM_FAILED"

	// ErrorCodeDataFileReadEOF is the normal scan terminator for recovery
	// and merge loops, not a failure condition.
	ErrorCodeDataFileReadEOF ErrorCode = "DATA_FILE_READ_EOF"

	// ErrorCodeRecoveryFailed indicates that the storage system's attempt to
	// rebuild its index from the log was unsuccessful.
	ErrorCodeRecoveryFailed ErrorCode = "STORAGE_RECOVERY_FAILED"

	// ErrorCodePermissionDenied indicates insufficient permissions to access a resource.
	ErrorCodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// ErrorCodeDiskFull indicates that the storage device has run out of space.
	ErrorCodeDiskFull ErrorCode = "DISK_FULL"

	// ErrorCodeFilesystemReadonly indicates that the filesystem is mounted read-only.
	ErrorCodeFilesystemReadonly ErrorCode = "FILESYSTEM_READONLY"

	// ErrorCodeDirPathCreateFailed indicates the data directory could not be created.
	ErrorCodeDirPathCreateFailed ErrorCode = "DIR_PATH_CREATE_FAILED"

	// ErrorCodeDirPathReadFailed indicates the data directory could not be scanned.
	ErrorCodeDirPathReadFailed ErrorCode = "DIR_PATH_READ_FAILED"

	// ErrorCodeMergeInProcess indicates a merge was requested while another
	// merge is already running. Non-fatal refusal, not an I/O failure.
	ErrorCodeMergeInProcess ErrorCode = "MERGE_IN_PROCESS"
)

// Index-specific error codes address the specialized needs of index
// operations and the engine operations layered directly on top of it.
const (
	// ErrorCodeIndexKeyNotFound indicates a point lookup found no entry for
	// the requested key.
	ErrorCodeIndexKeyNotFound ErrorCode = "INDEX_KEY_NOT_FOUND"

	// ErrorCodeKeyNotFoundInDataFile indicates the index pointed at a file id
	// that has no corresponding open data file handle. Defensive; indicates
	// an inconsistent index.
	ErrorCodeKeyNotFoundInDataFile ErrorCode = "KEY_NOT_FOUND_IN_DATA_FILE"

	// ErrorCodeIndexCorrupted indicates structural damage to the in-memory
	// index or to data read while rebuilding it (e.g. an unparsable stored
	// key or hint-file position).
	ErrorCodeIndexCorrupted ErrorCode = "INDEX_CORRUPTED"

	// ErrorCodeFailUpdateIndexer indicates an index mutation reported failure
	// after a record was already durably appended.
	ErrorCodeFailUpdateIndexer ErrorCode = "FAIL_UPDATE_INDEXER"

	// ErrorCodeExceedBatchMaxRows indicates a write-batch staged more entries
	// than its configured BatchMaxRows allows.
	ErrorCodeExceedBatchMaxRows ErrorCode = "EXCEED_BATCH_MAX_ROWS"
)
