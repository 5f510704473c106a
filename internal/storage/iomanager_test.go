package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileIOManager_WriteReadAtSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "000000000.data")
	m, err := NewFileIOManager(path)
	require.NoError(t, err)
	defer m.Close()

	n, err := m.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	require.NoError(t, m.Sync())

	size, err := m.Size()
	require.NoError(t, err)
	assert.EqualValues(t, 11, size)

	buf := make([]byte, 5)
	n, err = m.ReadAt(buf, 6)
	require.NoError(t, err)
	assert.Equal(t, "world", string(buf[:n]))
}

func TestDirLock_SecondAcquireFails(t *testing.T) {
	dir := t.TempDir()

	first, err := AcquireDirLock(dir)
	require.NoError(t, err)

	_, err = AcquireDirLock(dir)
	assert.Error(t, err)

	require.NoError(t, first.Release())

	second, err := AcquireDirLock(dir)
	require.NoError(t, err)
	require.NoError(t, second.Release())
}
