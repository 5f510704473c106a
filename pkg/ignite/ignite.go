// Package ignite provides a high-performance key/value data store
// designed for fast read and write operations, inspired by Bitcask.
// It combines an in-memory ordered index (KeyDir) with an append-only log
// structure on disk to achieve high throughput. It is designed for
// applications requiring fast read and write operations, such as caching,
// session management, and real-time data processing, aiming to provide a
// simple, efficient, and reliable solution for persistent key/value storage
// in Go applications.
package ignite

import (
	"context"

	"github.com/ignitedb/ignite/internal/engine"
	"github.com/ignitedb/ignite/internal/index"
	"github.com/ignitedb/ignite/pkg/logger"
	"github.com/ignitedb/ignite/pkg/options"
)

// Instance is an instance of the Ignite key/value data store.
// It encapsulates the core engine responsible for data handling and
// the configuration options for this specific database instance.
//
// Instance is the primary entry point for interacting with the Ignite store,
// providing methods for setting, getting, and deleting key-value pairs, for
// ordered scans, and for write batches and merge.
type Instance struct {
	engine  *engine.Engine   // The underlying database engine handling read/write operations.
	options *options.Options // Configuration options applied to this DB instance.
}

// NewInstance creates and initializes a new Ignite DB instance, opening (or
// recovering) the data directory named by the applied options.
func NewInstance(ctx context.Context, service string, opts ...options.OptionFunc) (*Instance, error) {
	log := logger.New(service)

	resolved := options.NewDefaultOptions()
	for _, opt := range opts {
		opt(&resolved)
	}

	eng, err := engine.New(ctx, &engine.Config{Logger: log, Options: &resolved})
	if err != nil {
		return nil, err
	}

	return &Instance{engine: eng, options: &resolved}, nil
}

// Set stores a key-value pair in the database. If the key already exists,
// its value is updated. Durability is governed by the engine's Sync option.
func (i *Instance) Set(ctx context.Context, key string, value []byte) error {
	return i.engine.Put([]byte(key), value)
}

// Get retrieves the value associated with the given key.
func (i *Instance) Get(ctx context.Context, key string) ([]byte, error) {
	return i.engine.Get([]byte(key))
}

// Delete removes a key-value pair from the database by appending a
// tombstone record; the underlying bytes are reclaimed by the next Merge.
func (i *Instance) Delete(ctx context.Context, key string) error {
	return i.engine.Delete([]byte(key))
}

// Sync fsyncs the active data file, making every write issued so far
// durable regardless of the engine's Sync option.
func (i *Instance) Sync(ctx context.Context) error {
	return i.engine.Sync()
}

// Close gracefully shuts down the Ignite DB instance: it fsyncs and closes
// the active file, closes every older-file handle, and releases the
// directory lock.
func (i *Instance) Close(ctx context.Context) error {
	return i.engine.Close()
}

// ListKeys returns every live key in the store, in ascending byte order.
func (i *Instance) ListKeys(ctx context.Context) [][]byte {
	return i.engine.ListKeys()
}

// Fold walks every live key/value pair in ascending order, calling pred for
// each. It stops early the first time pred returns false, or on the first
// read error.
func (i *Instance) Fold(ctx context.Context, pred func(key, value []byte) bool) error {
	return i.engine.Fold(pred)
}

// ScanOptions configures Scan: forward or reverse order, optionally
// restricted to keys sharing a byte prefix.
type ScanOptions struct {
	Reverse bool
	Prefix  []byte
}

// Scan returns every live key/value pair matching opts, in iteration order.
// It is a convenience wrapper over the engine's snapshot iterator; large
// stores should prefer Fold to avoid materializing the whole result set.
func (i *Instance) Scan(ctx context.Context, opts ScanOptions) ([][2][]byte, error) {
	it := i.engine.Iterator(index.IteratorOptions{Reverse: opts.Reverse, Prefix: opts.Prefix})

	var pairs [][2][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		value, err := it.Value()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2][]byte{it.Key(), value})
	}
	return pairs, nil
}

// NewWriteBatch returns a WriteBatch that stages mutations against the
// instance and commits them atomically under a single commit sequence
// number.
func (i *Instance) NewWriteBatch(opts options.BatchOptions) *WriteBatch {
	return &WriteBatch{inner: i.engine.NewWriteBatch(opts)}
}

// Merge compacts older, superseded, and tombstoned records out of the log.
// It returns ErrMergeInProcess if another merge is already running against
// this instance.
func (i *Instance) Merge(ctx context.Context) error {
	return i.engine.Merge()
}
