package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

// DataFileExt is the suffix every numbered data file carries.
const DataFileExt = ".data"

// HintFileName and MergeFinishedFileName are the two reserved, non-numbered
// filenames a directory may contain at most one of.
const (
	HintFileName          = "hint-index"
	MergeFinishedFileName = "merge-finished"
)

// FileName formats a file id as the nine-digit zero-padded name the engine
// expects on disk: NNNNNNNNN.data.
func FileName(id uint32) string {
	return fmt.Sprintf("%09d%s", id, DataFileExt)
}

// ParseFileID extracts the numeric id from a NNNNNNNNN.data filename.
// Any non-numeric prefix is rejected with DataFileCorrupted.
func ParseFileID(name string) (uint32, error) {
	trimmed := strings.TrimSuffix(name, DataFileExt)
	id, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, ignerrors.NewStorageError(ignerrors.ErrDataFileCorrupted, ignerrors.ErrorCodeDataFileCorrupted, "data file name is not a valid file id").
			WithFileName(name)
	}
	return uint32(id), nil
}

func filePath(dirPath, name string) string {
	return filepath.Join(dirPath, name)
}

// ListFileIDs enumerates dirPath and returns the ids of every NNNNNNNNN.data
// file present, sorted ascending.
func ListFileIDs(dirPath string) ([]uint32, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, ignerrors.NewStorageError(ignerrors.ErrDirPathReadFailed, ignerrors.ErrorCodeDirPathReadFailed, "failed to read data directory").
			WithPath(dirPath)
	}

	var ids []uint32
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), DataFileExt) {
			continue
		}

		id, err := ParseFileID(entry.Name())
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
