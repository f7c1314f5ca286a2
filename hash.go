package jsondelta

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"math"
)

// HashFunc computes a hash of a value. LCS uses hashes only to rule out
// matches, so a HashFunc must give equal values equal hashes under the
// EqualFunc it's paired with
type HashFunc func(v *Value) uint64

// NewHash returns a new hash interface, wrapped in a function for easy
// hash algorithm switching, package consumers can override NewHash
// with their own desired hash.Hash64 implementation. default is 64-bit FNV 1
// for fast, cheap, (non-cryptographic) hashing
var NewHash = func() hash.Hash64 {
	return fnv.New64()
}

// canonical NaN bits, every NaN hashes the same way because Equal treats all
// NaNs as equal
const nanBits = 0x7ff8000000000001

// Hash is a structural hash consistent with Equal: object keys are visited in
// sorted order, -0 hashes as 0 and all NaNs hash alike
func Hash(v *Value) uint64 {
	h := NewHash()
	writeHash(h, v)
	return h.Sum64()
}

func writeHash(h hash.Hash64, v *Value) {
	var b [8]byte
	if v == nil {
		h.Write([]byte{0xff})
		return
	}
	h.Write([]byte{byte(v.Type)})

	switch v.Type {
	case NullType:
	case BoolType:
		if v.Bool {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case NumberType:
		bits := math.Float64bits(v.Number)
		switch {
		case v.Number != v.Number:
			bits = nanBits
		case v.Number == 0:
			bits = 0
		}
		binary.LittleEndian.PutUint64(b[:], bits)
		h.Write(b[:])
	case StringType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.String)))
		h.Write(b[:])
		h.Write([]byte(v.String))
	case ArrayType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.Values)))
		h.Write(b[:])
		for _, el := range v.Values {
			writeHash(h, el)
		}
	case ObjectType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(v.Fields)))
		h.Write(b[:])
		for _, key := range v.Keys() {
			binary.LittleEndian.PutUint64(b[:], uint64(len(key)))
			h.Write(b[:])
			h.Write([]byte(key))
			writeHash(h, v.Fields[key])
		}
	default:
		panic(fmt.Sprintf("unexpected value type: %s", v.Type))
	}
}
