// Package merge implements the directory-level half of the merge/hint
// subsystem: resolving the sibling scratch directory, swapping a completed
// merge's output into the primary directory at open, and replaying a hint
// file into the index. The merge algorithm itself (the half that needs a
// live Engine to write a compacted log) lives as a method on Engine, to
// avoid an import cycle between this package and internal/engine.
package merge

import (
	"os"
	"path/filepath"
	"strconv"

	stderrors "errors"

	"github.com/ignitedb/ignite/internal/data"
	"github.com/ignitedb/ignite/internal/index"
	"github.com/ignitedb/ignite/internal/storage"
	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

// GetMergeDirPath returns the sibling scratch directory merge uses,
// "<dir>-merge" next to dirPath.
func GetMergeDirPath(dirPath string) string {
	parent := filepath.Dir(dirPath)
	base := filepath.Base(dirPath)
	return filepath.Join(parent, base+"-merge")
}

// MarkerPath returns the path of the merge-finished marker file inside
// mergeDirPath.
func MarkerPath(mergeDirPath string) string {
	return filepath.Join(mergeDirPath, data.MergeFinishedFileName)
}

// LoadMergeFiles reconciles a possibly in-flight or completed merge before
// data files are loaded. Both the hint file and the merge-finished marker
// are staged in the scratch directory during merge, not the primary
// directory; this function performs the atomic-looking swap as a sequence
// of idempotent renames so a crash at any point leaves the next attempt
// able to pick up where it left off:
//
//   - If the scratch directory carries no marker, the merge it holds was
//     never completed (or its marker was already moved by an earlier
//     reconciliation); what is left there is discarded wholesale.
//   - Otherwise: delete every primary data file superseded by the merge,
//     move the scratch directory's non-marker files into the primary
//     directory, move the marker itself last (replacing the marker of any
//     earlier merge), then remove the now-empty scratch directory.
func LoadMergeFiles(dirPath string) error {
	primaryMarker := filepath.Join(dirPath, data.MergeFinishedFileName)
	mergeDir := GetMergeDirPath(dirPath)

	if _, err := os.Stat(mergeDir); os.IsNotExist(err) {
		return nil
	}

	scratchMarker := filepath.Join(mergeDir, data.MergeFinishedFileName)
	if _, err := os.Stat(scratchMarker); os.IsNotExist(err) {
		// The previous merge never finished; its partial output is unsafe.
		return removeIfExists(mergeDir)
	}

	m, err := readMarkerValue(mergeDir)
	if err != nil {
		return err
	}

	ids, err := data.ListFileIDs(dirPath)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id >= m {
			continue
		}
		if err := os.Remove(filepath.Join(dirPath, data.FileName(id))); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	entries, err := os.ReadDir(mergeDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Name() == data.MergeFinishedFileName || entry.Name() == storage.DirLockFileName {
			continue
		}
		src := filepath.Join(mergeDir, entry.Name())
		dst := filepath.Join(dirPath, entry.Name())
		if err := os.Rename(src, dst); err != nil {
			return err
		}
	}

	if err := os.Rename(scratchMarker, primaryMarker); err != nil {
		return err
	}

	return removeIfExists(mergeDir)
}

// LoadHintFile replays hint-index (if present) directly into idx, after
// data files are loaded, so already-merged data skips a full log scan.
func LoadHintFile(dirPath string, idx *index.Index) error {
	hintPath := filepath.Join(dirPath, data.HintFileName)
	if _, err := os.Stat(hintPath); os.IsNotExist(err) {
		return nil
	}

	hintFile, err := data.OpenHintFile(dirPath)
	if err != nil {
		return err
	}
	defer hintFile.Close()

	var offset uint64
	for {
		record, n, err := hintFile.ReadRecord(offset)
		if err != nil {
			if stderrors.Is(err, ignerrors.ErrDataFileReadEOF) {
				break
			}
			return err
		}

		userKey, _, ok := data.DecodeStoredKey(record.Key)
		if !ok {
			return ignerrors.NewIndexError(ignerrors.ErrDataFileCorrupted, ignerrors.ErrorCodeIndexCorrupted, "failed to decode hint record key").
				WithOperation("LoadHintFile")
		}

		pos, ok := data.DecodePosition(record.Value)
		if !ok {
			return ignerrors.NewIndexError(ignerrors.ErrDataFileCorrupted, ignerrors.ErrorCodeIndexCorrupted, "failed to decode hint record position").
				WithOperation("LoadHintFile")
		}

		idx.Put(userKey, pos)
		offset += n
	}

	return nil
}

func readMarkerValue(mergeDir string) (uint32, error) {
	markerFile, err := data.OpenMergeFinishedFile(mergeDir)
	if err != nil {
		return 0, err
	}
	defer markerFile.Close()

	record, _, err := markerFile.ReadRecord(0)
	if err != nil {
		return 0, err
	}

	m, err := strconv.ParseUint(string(record.Value), 10, 32)
	if err != nil {
		return 0, ignerrors.NewStorageError(ignerrors.ErrDataFileCorrupted, ignerrors.ErrorCodeDataFileCorrupted, "malformed merge-finished marker value").
			WithFileName(data.MergeFinishedFileName)
	}

	return uint32(m), nil
}

func removeIfExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.RemoveAll(path)
}
