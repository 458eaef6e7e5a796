// Package buf contains bounds discipline and endian-safe decoding helpers
// shared by the buffer engine and its hosts.
package buf

import (
	"encoding/binary"
	"math"
)

// U16 reads a uint16 from b in the given byte order. Returns 0 when b is too short.
func U16(b []byte, bigEndian bool) uint16 {
	if len(b) < 2 {
		return 0
	}
	if bigEndian {
		return binary.BigEndian.Uint16(b)
	}
	return binary.LittleEndian.Uint16(b)
}

// U32 reads a uint32 from b in the given byte order. Returns 0 when b is too short.
func U32(b []byte, bigEndian bool) uint32 {
	if len(b) < 4 {
		return 0
	}
	if bigEndian {
		return binary.BigEndian.Uint32(b)
	}
	return binary.LittleEndian.Uint32(b)
}

// U64 reads a uint64 from b in the given byte order. Returns 0 when b is too short.
func U64(b []byte, bigEndian bool) uint64 {
	if len(b) < 8 {
		return 0
	}
	if bigEndian {
		return binary.BigEndian.Uint64(b)
	}
	return binary.LittleEndian.Uint64(b)
}

// I16 reads an int16 from b in the given byte order. Returns 0 when b is too short.
func I16(b []byte, bigEndian bool) int16 {
	return int16(U16(b, bigEndian))
}

// I32 reads an int32 from b in the given byte order. Returns 0 when b is too short.
func I32(b []byte, bigEndian bool) int32 {
	return int32(U32(b, bigEndian))
}

// I64 reads an int64 from b in the given byte order. Returns 0 when b is too short.
func I64(b []byte, bigEndian bool) int64 {
	return int64(U64(b, bigEndian))
}

// F32 reads a float32 from b in the given byte order. Returns 0 when b is too short.
func F32(b []byte, bigEndian bool) float32 {
	if len(b) < 4 {
		return 0
	}
	return math.Float32frombits(U32(b, bigEndian))
}

// F64 reads a float64 from b in the given byte order. Returns 0 when b is too short.
func F64(b []byte, bigEndian bool) float64 {
	if len(b) < 8 {
		return 0
	}
	return math.Float64frombits(U64(b, bigEndian))
}
