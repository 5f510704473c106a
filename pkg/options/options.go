// Package options provides the functional-options configuration surface for
// the Ignite engine and its write batches: the data directory, rotation
// threshold, durability knob, index backend, and per-batch limits.
package options

import "strings"

// Options configures an Engine.
type Options struct {
	// DirPath is the directory the engine reads and writes data files in.
	// Must be a non-empty path.
	DirPath string `json:"dirPath"`

	// FileSizeThreshold rotates the active file once the next append would
	// exceed it. Must be greater than zero.
	FileSizeThreshold int64 `json:"fileSizeThreshold"`

	// Sync fsyncs the active file after every standalone (non-batch) append.
	Sync bool `json:"sync"`

	// IndexType selects the in-memory index implementation.
	IndexType IndexType `json:"indexType"`
}

// OptionFunc mutates an Options value being built up by NewInstance.
type OptionFunc func(*Options)

// WithDefaultOptions resets every field to its default value.
func WithDefaultOptions() OptionFunc {
	return func(o *Options) {
		*o = NewDefaultOptions()
	}
}

// WithDirPath sets the data directory. Blank paths are ignored.
func WithDirPath(path string) OptionFunc {
	return func(o *Options) {
		path = strings.TrimSpace(path)
		if path != "" {
			o.DirPath = path
		}
	}
}

// WithFileSizeThreshold sets the rotation threshold in bytes. Non-positive
// values are ignored.
func WithFileSizeThreshold(size int64) OptionFunc {
	return func(o *Options) {
		if size > 0 {
			o.FileSizeThreshold = size
		}
	}
}

// WithSync enables or disables fsync-after-every-write.
func WithSync(sync bool) OptionFunc {
	return func(o *Options) {
		o.Sync = sync
	}
}

// WithIndexType selects the index backend. IndexTypeSkipList is accepted
// but currently served by the same implementation as IndexTypeBtree.
func WithIndexType(t IndexType) OptionFunc {
	return func(o *Options) {
		if t == IndexTypeBtree || t == IndexTypeSkipList {
			o.IndexType = t
		}
	}
}

// BatchOptions configures a WriteBatch.
type BatchOptions struct {
	// BatchMaxRows caps the number of staged entries a batch may hold;
	// Commit fails with ExceedBatchMaxRows once exceeded.
	BatchMaxRows uint `json:"batchMaxRows"`

	// SyncWrites fsyncs the active file when the batch commits.
	SyncWrites bool `json:"syncWrites"`
}

// BatchOptionFunc mutates a BatchOptions value.
type BatchOptionFunc func(*BatchOptions)

// WithDefaultBatchOptions resets every field to its default value.
func WithDefaultBatchOptions() BatchOptionFunc {
	return func(o *BatchOptions) {
		*o = NewDefaultBatchOptions()
	}
}

// WithBatchMaxRows sets the hard cap on staged entries. Zero is ignored.
func WithBatchMaxRows(rows uint) BatchOptionFunc {
	return func(o *BatchOptions) {
		if rows > 0 {
			o.BatchMaxRows = rows
		}
	}
}

// WithSyncWrites enables or disables fsync-on-commit.
func WithSyncWrites(sync bool) BatchOptionFunc {
	return func(o *BatchOptions) {
		o.SyncWrites = sync
	}
}
