package engine

import (
	"github.com/ignitedb/ignite/internal/batch"
	"github.com/ignitedb/ignite/pkg/options"
)

// NewWriteBatch returns a WriteBatch that stages mutations against e,
// honoring opts for its row cap and sync-on-commit behavior.
func (e *Engine) NewWriteBatch(opts options.BatchOptions) *batch.WriteBatch {
	return batch.New(e, opts)
}
