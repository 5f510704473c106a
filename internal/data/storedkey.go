package data

import "encoding/binary"

// EncodeStoredKey prefixes userKey with the varuint-encoded commit sequence
// number, producing the form actually written to the log. seqNo ==
// NonTxnSeqNo marks a standalone (non-transactional) write.
func EncodeStoredKey(userKey []byte, seqNo uint64) []byte {
	prefix := make([]byte, maxVaruintLen)
	n := binary.PutUvarint(prefix, seqNo)

	stored := make([]byte, n+len(userKey))
	copy(stored, prefix[:n])
	copy(stored[n:], userKey)
	return stored
}

// DecodeStoredKey splits a stored key back into its user key and commit
// sequence number. Returns ok=false if the varuint prefix could not be
// parsed, which callers treat as index/log corruption.
func DecodeStoredKey(stored []byte) (userKey []byte, seqNo uint64, ok bool) {
	seqNo, n := binary.Uvarint(stored)
	if n <= 0 {
		return nil, 0, false
	}
	return stored[n:], seqNo, true
}
