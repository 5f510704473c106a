package options

// IndexType selects the in-memory index implementation backing an Engine.
type IndexType string

const (
	// IndexTypeBtree is the only implemented index: an ordered key→position
	// map with range iteration.
	IndexTypeBtree IndexType = "btree"

	// IndexTypeSkipList is reserved for a future concurrent skip-list index;
	// selecting it currently falls back to IndexTypeBtree.
	IndexTypeSkipList IndexType = "skiplist"
)

const (
	// DefaultDirPath is the data directory used when none is supplied.
	DefaultDirPath = "/var/lib/ignite"

	// DefaultFileSizeThreshold rotates the active file once the next
	// append would push it past 256MB.
	DefaultFileSizeThreshold int64 = 256 * 1024 * 1024

	// DefaultSync disables an fsync after every standalone append; callers
	// that need durability per-write should opt in explicitly.
	DefaultSync = false

	// DefaultIndexType is the only implemented index.
	DefaultIndexType = IndexTypeBtree

	// DefaultBatchMaxRows caps a write batch at 10,000 staged entries.
	DefaultBatchMaxRows uint = 10_000

	// DefaultSyncWrites fsyncs the active file at every batch commit.
	DefaultSyncWrites = true
)

// Options holds the configuration parameters for an Engine.
var defaultOptions = Options{
	DirPath:           DefaultDirPath,
	FileSizeThreshold: DefaultFileSizeThreshold,
	Sync:              DefaultSync,
	IndexType:         DefaultIndexType,
}

// NewDefaultOptions returns a copy of the engine's default configuration.
func NewDefaultOptions() Options {
	return defaultOptions
}

// defaultBatchOptions holds the configuration parameters for a write batch.
var defaultBatchOptions = BatchOptions{
	BatchMaxRows: DefaultBatchMaxRows,
	SyncWrites:   DefaultSyncWrites,
}

// NewDefaultBatchOptions returns a copy of the default write-batch configuration.
func NewDefaultBatchOptions() BatchOptions {
	return defaultBatchOptions
}
