package ir

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Kind bytes prefixing the canonical encoding fed to the hasher. They keep
// values of different kinds from colliding (the string "1" never hashes
// like the number 1 or the path "1").
const (
	kindNull byte = iota + 1
	kindBool
	kindInt
	kindFloat
	kindString
	kindPath
	kindSet
	kindMap
)

func hashKind(kind byte, payload []byte) uint64 {
	buf := make([]byte, 0, len(payload)+1)
	buf = append(buf, kind)
	buf = append(buf, payload...)
	return xxh3.Hash(buf)
}

func hashString(kind byte, s string) uint64 {
	return hashKind(kind, []byte(s))
}

func hashInt(v int64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return hashKind(kindInt, b[:])
}

func hashFloat(v float64) uint64 {
	// Integral floats hash as the integer they equal.
	if i, ok := floatToInt(v); ok {
		return hashInt(i)
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return hashKind(kindFloat, b[:])
}

func hashBool(v bool) uint64 {
	if v {
		return hashKind(kindBool, []byte{1})
	}
	return hashKind(kindBool, []byte{0})
}

// mix avalanches a child hash before combining it commutatively, so sets
// {a, b} and {ab, ""} style collisions do not line up.
func mix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// NormalizeNumber reduces any Go numeric to an int64 or float64, with
// integral floats reduced to ints. ok is false for non-numeric values.
func NormalizeNumber(v any) (i int64, f float64, isInt, ok bool) {
	switch n := v.(type) {
	case int:
		return int64(n), 0, true, true
	case int8:
		return int64(n), 0, true, true
	case int16:
		return int64(n), 0, true, true
	case int32:
		return int64(n), 0, true, true
	case int64:
		return n, 0, true, true
	case uint:
		return int64(n), 0, true, true
	case uint8:
		return int64(n), 0, true, true
	case uint16:
		return int64(n), 0, true, true
	case uint32:
		return int64(n), 0, true, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, float64(n), false, true
		}
		return int64(n), 0, true, true
	case float32:
		return NormalizeNumber(float64(n))
	case float64:
		if i, intOK := floatToInt(n); intOK {
			return i, 0, true, true
		}
		return 0, n, false, true
	}
	return 0, 0, false, false
}
