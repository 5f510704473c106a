package options

import (
	"strings"

	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

// Validate checks the non-goal-free invariants an Engine requires before
// opening: a non-empty directory and a positive rotation threshold.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.DirPath) == "" {
		return ignerrors.NewValidationError(
			ignerrors.ErrDirPathEmpty, ignerrors.ErrorCodeInvalidInput, "dir_path must not be empty",
		).WithField("dir_path").WithRule("required")
	}

	if o.FileSizeThreshold <= 0 {
		return ignerrors.NewValidationError(
			ignerrors.ErrInvalidDataFileSizeOption, ignerrors.ErrorCodeInvalidInput,
			"file_size_threshold must be greater than zero",
		).WithField("file_size_threshold").
			WithRule("positive").
			WithProvided(o.FileSizeThreshold)
	}

	return nil
}
