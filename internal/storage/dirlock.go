package storage

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// DirLock is a process-exclusive advisory lock on a data directory, held
// via a non-blocking flock on a sentinel file. It stops a second OS process
// from opening the same dir_path concurrently; it is additive robustness
// beyond the engine's in-process lock model, which assumes one process
// owns one Engine per directory.
type DirLock struct {
	file *os.File
}

// DirLockFileName is the sentinel file AcquireDirLock locks. Exported so
// directory-scanning code elsewhere (e.g. the merge swap) can recognize and
// skip it; it is never a numbered data file or a merge artifact.
const DirLockFileName = "flock"

// AcquireDirLock takes a non-blocking exclusive flock on dirPath/flock.
// Returns an error if another process already holds it.
func AcquireDirLock(dirPath string) (*DirLock, error) {
	f, err := os.OpenFile(filepath.Join(dirPath, DirLockFileName), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, err
	}

	return &DirLock{file: f}, nil
}

// Release drops the flock and closes the sentinel file handle.
func (l *DirLock) Release() error {
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}
