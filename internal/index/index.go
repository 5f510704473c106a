// Package index implements the in-memory ordered key→position map: the
// Bitcask "KeyDir". It supports put/get/delete and forward or reverse range
// iteration under an optional prefix filter, and produces a whole-key
// listing in index order.
package index

import (
	"sort"
	"sync"

	"github.com/ignitedb/ignite/internal/data"
)

// Index is a concurrency-safe key→position map. The only implementation is
// a plain Go map guarded by a RWMutex; ordering for iteration is produced
// lazily by snapshotting and sorting at iterator-construction time rather
// than maintaining a live sorted structure (see DESIGN.md).
type Index struct {
	mu      sync.RWMutex
	entries map[string]data.LogRecordPos
}

// New constructs an empty Index.
func New() *Index {
	return &Index{entries: make(map[string]data.LogRecordPos, 2048)}
}

// Put inserts or overwrites the position for key.
func (idx *Index) Put(key []byte, pos data.LogRecordPos) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries[string(key)] = pos
}

// Get returns the position stored for key, if any.
func (idx *Index) Get(key []byte) (data.LogRecordPos, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	pos, ok := idx.entries[string(key)]
	return pos, ok
}

// Delete removes key's entry, if present. Reports whether an entry existed.
func (idx *Index) Delete(key []byte) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if _, ok := idx.entries[string(key)]; !ok {
		return false
	}
	delete(idx.entries, string(key))
	return true
}

// Len reports the number of live keys.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// ListKeys returns every live key, in ascending byte order.
func (idx *Index) ListKeys() [][]byte {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	keys := make([][]byte, 0, len(idx.entries))
	for k := range idx.entries {
		keys = append(keys, []byte(k))
	}
	sort.Slice(keys, func(i, j int) bool { return string(keys[i]) < string(keys[j]) })
	return keys
}

// snapshot returns a sorted copy of every (key, position) pair currently in
// the index. Iterator construction calls this once; later mutations to the
// index are not observed by an already-constructed iterator.
func (idx *Index) snapshot() []entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	items := make([]entry, 0, len(idx.entries))
	for k, pos := range idx.entries {
		items = append(items, entry{key: []byte(k), pos: pos})
	}
	sort.Slice(items, func(i, j int) bool { return string(items[i].key) < string(items[j].key) })
	return items
}

type entry struct {
	key []byte
	pos data.LogRecordPos
}
