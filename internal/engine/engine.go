// Package engine provides the core database engine: the coordinator that
// owns the active data file, the set of older immutable files, and the
// in-memory index, and implements put/get/delete, open (recovery),
// iteration, fold, write batches, and merge.
package engine

import (
	"context"
	stderrors "errors"
	"sync"
	"sync/atomic"

	"github.com/ignitedb/ignite/internal/data"
	"github.com/ignitedb/ignite/internal/index"
	"github.com/ignitedb/ignite/internal/merge"
	"github.com/ignitedb/ignite/internal/storage"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
	"github.com/ignitedb/ignite/pkg/filesys"
	"github.com/ignitedb/ignite/pkg/options"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Engine coordinates the active file, the older-file map, and the index.
// It is safe for concurrent use by multiple goroutines.
type Engine struct {
	opts options.Options
	log  *zap.SugaredLogger

	dirLock *storage.DirLock

	activeMu sync.RWMutex
	active   *data.DataFile

	olderMu sync.RWMutex
	older   map[uint32]*data.DataFile

	idx *index.Index

	seqNo uint64

	batchCommitMu sync.Mutex
	mergeMu       sync.Mutex

	closed atomic.Bool
}

// Config holds the parameters needed to open an Engine.
type Config struct {
	Options *options.Options
	Logger  *zap.SugaredLogger
}

// New validates config.Options, creates the data directory if missing,
// reconciles any pending merge, loads the data files and index, and
// returns a ready-to-use Engine. See spec §4.3 for the full open/recovery
// algorithm.
func New(ctx context.Context, config *Config) (*Engine, error) {
	if err := config.Options.Validate(); err != nil {
		return nil, err
	}

	opts := *config.Options
	log := config.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if err := ensureDir(opts.DirPath); err != nil {
		return nil, err
	}

	dirLock, err := storage.AcquireDirLock(opts.DirPath)
	if err != nil {
		return nil, ignerrors.NewStorageError(err, ignerrors.ErrorCodeIO, "failed to acquire directory lock").
			WithPath(opts.DirPath)
	}

	if err := merge.LoadMergeFiles(opts.DirPath); err != nil {
		dirLock.Release()
		return nil, err
	}

	e := &Engine{
		opts:    opts,
		log:     log,
		older:   make(map[uint32]*data.DataFile),
		idx:     index.New(),
		dirLock: dirLock,
	}

	if err := e.loadDataFiles(); err != nil {
		dirLock.Release()
		return nil, err
	}

	if err := merge.LoadHintFile(opts.DirPath, e.idx); err != nil {
		dirLock.Release()
		return nil, err
	}

	if err := e.loadIndexFromDataFiles(opts.DirPath); err != nil {
		dirLock.Release()
		return nil, err
	}

	log.Infow("engine opened", "dirPath", opts.DirPath, "activeFileID", e.active.ID(), "olderFiles", len(e.older))
	return e, nil
}

func ensureDir(path string) error {
	if err := filesys.CreateDir(path, 0755, true); err != nil {
		return ignerrors.NewStorageError(stderrors.Join(ignerrors.ErrDirPathCreateFailed, err), ignerrors.ErrorCodeDirPathCreateFailed, "failed to create dir_path").
			WithPath(path)
	}
	return nil
}

// Close fsyncs and closes the active file, closes every older file handle,
// releases the directory lock, and marks the engine closed. Every
// resource that fails to release is reported, not just the first.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return ignerrors.ErrEngineClosed
	}

	var err error

	e.activeMu.Lock()
	err = multierr.Append(err, e.active.Sync())
	err = multierr.Append(err, e.active.Close())
	e.activeMu.Unlock()

	e.olderMu.Lock()
	for id, f := range e.older {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, cerr)
		}
		delete(e.older, id)
	}
	e.olderMu.Unlock()

	if e.dirLock != nil {
		err = multierr.Append(err, e.dirLock.Release())
	}

	e.log.Infow("engine closed")
	return err
}

// Sync fsyncs the active file.
func (e *Engine) Sync() error {
	e.activeMu.RLock()
	defer e.activeMu.RUnlock()
	return e.active.Sync()
}
