package index

import (
	"bytes"
	"sort"

	"github.com/ignitedb/ignite/internal/data"
)

// IteratorOptions configures range iteration over the index.
type IteratorOptions struct {
	// Reverse walks keys from highest to lowest when true.
	Reverse bool
	// Prefix restricts iteration to keys sharing this byte prefix. An empty
	// prefix matches every key.
	Prefix []byte
}

// Iterator walks a snapshot of the index's key→position pairs taken at
// construction time; later Put/Delete calls on the index are not observed.
type Iterator struct {
	items []entry
	pos   int
	opts  IteratorOptions
}

// NewIterator snapshots idx and returns an Iterator honoring opts. The
// cursor starts before the first element; call Rewind or Seek, then Next.
func NewIterator(idx *Index, opts IteratorOptions) *Iterator {
	items := idx.snapshot()
	if opts.Reverse {
		sort.SliceStable(items, func(i, j int) bool {
			return string(items[i].key) > string(items[j].key)
		})
	}

	it := &Iterator{items: items, opts: opts}
	it.Rewind()
	return it
}

// Rewind resets the cursor to the first element satisfying the prefix
// filter, in iteration order.
func (it *Iterator) Rewind() {
	it.pos = 0
	it.skipToPrefix()
}

// Seek positions the cursor at the first key >= target (or <= target when
// iterating in reverse), honoring the prefix filter.
func (it *Iterator) Seek(target []byte) {
	if it.opts.Reverse {
		it.pos = sort.Search(len(it.items), func(i int) bool {
			return string(it.items[i].key) <= string(target)
		})
	} else {
		it.pos = sort.Search(len(it.items), func(i int) bool {
			return string(it.items[i].key) >= string(target)
		})
	}
	it.skipToPrefix()
}

func (it *Iterator) skipToPrefix() {
	if len(it.opts.Prefix) == 0 {
		return
	}
	for it.pos < len(it.items) && !bytes.HasPrefix(it.items[it.pos].key, it.opts.Prefix) {
		it.pos++
	}
}

// Valid reports whether the cursor currently points at an element.
func (it *Iterator) Valid() bool {
	return it.pos < len(it.items)
}

// Key returns the key the cursor points at. Only valid when Valid() is true.
func (it *Iterator) Key() []byte {
	return it.items[it.pos].key
}

// Position returns the position the cursor points at. Only valid when
// Valid() is true.
func (it *Iterator) Position() data.LogRecordPos {
	return it.items[it.pos].pos
}

// Next advances the cursor to the next element satisfying the prefix
// filter.
func (it *Iterator) Next() {
	it.pos++
	for it.pos < len(it.items) && len(it.opts.Prefix) > 0 && !bytes.HasPrefix(it.items[it.pos].key, it.opts.Prefix) {
		it.pos++
	}
}
