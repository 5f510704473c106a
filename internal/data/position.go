package data

import "encoding/binary"

// LogRecordPos locates a record within the directory: the file that holds
// it and the byte offset its stored record begins at.
type LogRecordPos struct {
	FileID uint32
	Offset uint64
}

// encodedPositionSize is the fixed width of EncodePosition's output.
const encodedPositionSize = 4 + 8

// EncodePosition produces the fixed-layout binary form of pos used as the
// value of a hint-file record.
func EncodePosition(pos LogRecordPos) []byte {
	buf := make([]byte, encodedPositionSize)
	binary.LittleEndian.PutUint32(buf[:4], pos.FileID)
	binary.LittleEndian.PutUint64(buf[4:], pos.Offset)
	return buf
}

// DecodePosition is the symmetric inverse of EncodePosition.
func DecodePosition(buf []byte) (LogRecordPos, bool) {
	if len(buf) != encodedPositionSize {
		return LogRecordPos{}, false
	}
	return LogRecordPos{
		FileID: binary.LittleEndian.Uint32(buf[:4]),
		Offset: binary.LittleEndian.Uint64(buf[4:]),
	}, true
}
