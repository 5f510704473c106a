package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	opts := NewDefaultOptions()
	opts.DirPath = "/tmp/ignite-test"
	assert.NoError(t, opts.Validate())

	empty := opts
	empty.DirPath = "  "
	assert.Error(t, empty.Validate())

	badSize := opts
	badSize.FileSizeThreshold = 0
	assert.Error(t, badSize.Validate())
}

func TestWithFunctionalOptions(t *testing.T) {
	opts := NewDefaultOptions()

	WithDirPath(" /data ")(&opts)
	assert.Equal(t, "/data", opts.DirPath)

	WithDirPath("")(&opts)
	assert.Equal(t, "/data", opts.DirPath, "blank path is ignored")

	WithFileSizeThreshold(1024)(&opts)
	assert.EqualValues(t, 1024, opts.FileSizeThreshold)

	WithFileSizeThreshold(-1)(&opts)
	assert.EqualValues(t, 1024, opts.FileSizeThreshold, "non-positive size is ignored")

	WithSync(true)(&opts)
	assert.True(t, opts.Sync)
}

func TestBatchOptions_Defaults(t *testing.T) {
	batchOpts := NewDefaultBatchOptions()
	WithBatchMaxRows(0)(&batchOpts)
	assert.Equal(t, DefaultBatchMaxRows, batchOpts.BatchMaxRows)

	WithBatchMaxRows(5)(&batchOpts)
	assert.EqualValues(t, 5, batchOpts.BatchMaxRows)
}
