// Package storage abstracts the byte-oriented file I/O a data file needs:
// positional read, append, and fsync. One concrete backend is provided,
// a regular file accessed through pread/write/fsync.
package storage

import "os"

// IOManager is the positional read / append / fsync surface a DataFile
// is built on. It exists so the codec and rotation logic never depend on
// *os.File directly.
type IOManager interface {
	// ReadAt reads len(buf) bytes starting at offset, pread-style. It may
	// return a short read (fewer bytes than len(buf), io.EOF or nil error)
	// at the end of the file; callers that need an exact-length read check
	// the returned count themselves.
	ReadAt(buf []byte, offset int64) (int, error)

	// Write appends buf at the current end of file and returns the number
	// of bytes written.
	Write(buf []byte) (int, error)

	// Sync flushes the file to stable storage.
	Sync() error

	// Close releases the underlying file handle.
	Close() error

	// Size returns the file's current length in bytes.
	Size() (int64, error)
}

// FileIOManager is the regular-file IOManager backend: pread for reads,
// O_APPEND writes, fsync for durability.
type FileIOManager struct {
	file *os.File
}

const dataFilePerm = 0644

// NewFileIOManager opens (creating if necessary) path for read/append.
func NewFileIOManager(path string) (*FileIOManager, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, dataFilePerm)
	if err != nil {
		return nil, err
	}
	return &FileIOManager{file: f}, nil
}

func (m *FileIOManager) ReadAt(buf []byte, offset int64) (int, error) {
	return m.file.ReadAt(buf, offset)
}

func (m *FileIOManager) Write(buf []byte) (int, error) {
	return m.file.Write(buf)
}

func (m *FileIOManager) Sync() error {
	return m.file.Sync()
}

func (m *FileIOManager) Close() error {
	return m.file.Close()
}

func (m *FileIOManager) Size() (int64, error) {
	info, err := m.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
