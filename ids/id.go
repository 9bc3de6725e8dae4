// Copyright (C) 2019-2024, Frostworks, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/frostworks/snowtrie/utils/cb58"
	"github.com/frostworks/snowtrie/utils/hashing"
)

// The number of bytes in an ID
const IDLen = 32

// Empty is a useful all-zeroes value
var Empty = ID{}

// ID wraps a 32 byte hash used as an identifier
type ID [IDLen]byte

// ToID attempt to convert a byte slice into an id
func ToID(bytes []byte) (ID, error) {
	hash, err := hashing.ToHash256(bytes)
	return ID(hash), err
}

// FromString is the inverse of ID.String()
func FromString(idStr string) (ID, error) {
	bytes, err := cb58.Decode(idStr)
	if err != nil {
		return ID{}, err
	}
	return ToID(bytes)
}

// Prefix this id to create a more selective id. This can be used to store
// multiple values under the same key. For example:
// prefix1(id) -> confidence
// prefix2(id) -> vertex
func (id ID) Prefix(prefixes ...uint64) ID {
	packed := make([]byte, len(prefixes)*8+IDLen)
	for i, prefix := range prefixes {
		binary.BigEndian.PutUint64(packed[i*8:], prefix)
	}
	copy(packed[len(prefixes)*8:], id[:])
	return hashing.ComputeHash256Array(packed)
}

// Bit returns the bit value at the ith index of the ID. Returns 0 or 1
func (id ID) Bit(i uint) int {
	byteIndex := i / BitsPerByte
	bitIndex := i % BitsPerByte

	// b = [7, 6, 5, 4, 3, 2, 1, 0]
	b := id[byteIndex]

	// b = [0, ..., bitIndex + 1, bitIndex]
	b >>= bitIndex

	// b = [0, 0, 0, 0, 0, 0, 0, bitIndex]
	b &= 1

	return int(b)
}

// Hex returns a hex encoded string of this id.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) Bytes() []byte {
	return id[:]
}

func (id ID) String() string {
	// We assume that the maximum size of a byte slice that
	// can be stringified is at least the length of an ID
	s, _ := cb58.Encode(id[:])
	return s
}

func (id ID) Less(other ID) bool {
	return bytes.Compare(id[:], other[:]) == -1
}
