package data

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ignerrors "github.com/ignitedb/ignite/pkg/errors"
)

func TestLogRecord_CRC_Vectors(t *testing.T) {
	r1 := &LogRecord{Key: []byte("key1"), Value: []byte("value1"), Type: RecordNormal}
	assert.Equal(t, uint32(2820586739), r1.CRC())

	r2 := &LogRecord{Key: []byte("key2"), Value: []byte(""), Type: RecordNormal}
	assert.Equal(t, uint32(882605098), r2.CRC())

	r3 := &LogRecord{Key: []byte("key3"), Value: []byte("value3"), Type: RecordDeleted}
	assert.Equal(t, uint32(1816502328), r3.CRC())
}

func TestLogRecord_EncodeDecode_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenDataFile(dir, 0)
	require.NoError(t, err)
	defer f.Close()

	want := &LogRecord{Key: []byte("hello"), Value: []byte("world"), Type: RecordNormal}
	offset, err := f.Append(want.Encode())
	require.NoError(t, err)

	got, n, err := f.ReadRecord(offset)
	require.NoError(t, err)
	assert.Equal(t, want.Key, got.Key)
	assert.Equal(t, want.Value, got.Value)
	assert.Equal(t, want.Type, got.Type)
	assert.Equal(t, uint64(len(want.Encode())), n)
}

func TestLogRecord_TruncatedCRC_FailsChecksum(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenDataFile(dir, 0)
	require.NoError(t, err)
	defer f.Close()

	rec := &LogRecord{Key: []byte("k"), Value: []byte("v"), Type: RecordNormal}
	encoded := rec.Encode()
	truncated := encoded[:len(encoded)-1] // drop the trailing CRC byte

	_, err = f.Append(truncated)
	require.NoError(t, err)

	_, _, err = f.ReadRecord(0)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ignerrors.ErrCheckSumFailed))
}

func TestLogRecord_CorruptedCRC_FailsChecksum(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenDataFile(dir, 0)
	require.NoError(t, err)
	defer f.Close()

	rec := &LogRecord{Key: []byte("k"), Value: []byte("v"), Type: RecordNormal}
	encoded := rec.Encode()
	encoded[len(encoded)-1] ^= 0xFF // flip a bit in the CRC trailer

	_, err = f.Append(encoded)
	require.NoError(t, err)

	_, _, err = f.ReadRecord(0)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ignerrors.ErrCheckSumFailed))
}

func TestDataFile_ReadRecord_EmptyFileIsEOF(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenDataFile(dir, 0)
	require.NoError(t, err)
	defer f.Close()

	_, _, err = f.ReadRecord(0)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ignerrors.ErrDataFileReadEOF))
}

func TestStoredKey_EncodeDecode_RoundTrip(t *testing.T) {
	stored := EncodeStoredKey([]byte("key1"), 42)
	userKey, seqNo, ok := DecodeStoredKey(stored)
	require.True(t, ok)
	assert.Equal(t, []byte("key1"), userKey)
	assert.Equal(t, uint64(42), seqNo)
}

func TestPosition_EncodeDecode_RoundTrip(t *testing.T) {
	pos := LogRecordPos{FileID: 7, Offset: 123456}
	encoded := EncodePosition(pos)
	decoded, ok := DecodePosition(encoded)
	require.True(t, ok)
	assert.Equal(t, pos, decoded)
}
