package engine

import (
	"github.com/ignitedb/ignite/internal/data"
)

// loadDataFiles enumerates dir_path, opens every numbered data file, sets
// the highest id as active (creating an empty file id 0 if the directory
// holds none), and files the rest into the older-file map.
func (e *Engine) loadDataFiles() error {
	ids, err := data.ListFileIDs(e.opts.DirPath)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		active, err := data.OpenDataFile(e.opts.DirPath, 0)
		if err != nil {
			return err
		}
		e.active = active
		return nil
	}

	for _, id := range ids[:len(ids)-1] {
		f, err := data.OpenDataFile(e.opts.DirPath, id)
		if err != nil {
			return err
		}
		e.older[id] = f
	}

	active, err := data.OpenDataFile(e.opts.DirPath, ids[len(ids)-1])
	if err != nil {
		return err
	}
	e.active = active

	return nil
}

// fileForID returns the data file handle for id, whether that is the
// active file or one from the older-file map.
func (e *Engine) fileForID(id uint32) (*data.DataFile, bool) {
	e.activeMu.RLock()
	if e.active != nil && e.active.ID() == id {
		f := e.active
		e.activeMu.RUnlock()
		return f, true
	}
	e.activeMu.RUnlock()

	e.olderMu.RLock()
	defer e.olderMu.RUnlock()
	f, ok := e.older[id]
	return f, ok
}
