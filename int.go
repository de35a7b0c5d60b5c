package tuples

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// appendInt encodes v as a tag byte (sign and byte-length class relative to
// intZeroCode) followed by 0 to 8 payload bytes. Positive payloads are the
// minimal big-endian magnitude; negative payloads are sizeLimits[n] minus
// the magnitude, which makes more negative values within a class sort first.
func appendInt(buf []byte, v int64) []byte {
	switch {
	case v == 0:
		return appendUint8(buf, intZeroCode)
	case v == math.MinInt64:
		// Negating MinInt64 overflows, so it gets the reserved payload of
		// the full 8-byte class.
		buf = appendUint8(buf, intNegMinCode)
		return appendUint64(buf, math.MaxUint64>>1)
	case v > 0:
		u := uint64(v)
		n := (bits.Len64(u) + 7) / 8
		var be [maxIntBytes]byte
		binary.BigEndian.PutUint64(be[:], u)
		buf = appendUint8(buf, intZeroCode+byte(n))
		return appendRaw(buf, be[maxIntBytes-n:])
	default:
		m := uint64(-v)
		n := (bits.Len64(m) + 7) / 8
		var be [maxIntBytes]byte
		binary.BigEndian.PutUint64(be[:], sizeLimits[n]-m)
		buf = appendUint8(buf, intZeroCode-byte(n))
		return appendRaw(buf, be[maxIntBytes-n:])
	}
}

// decodeInt decodes an integer segment at the start of data; data[0] must be
// a tag in the intNegMinCode..intPosMaxCode range. errPos is the absolute
// offset of the tag for error reporting.
func decodeInt(data []byte, errPos int) (int64, int, error) {
	tag := data[0]
	neg := tag < intZeroCode
	var n int
	if neg {
		n = int(intZeroCode - tag)
	} else {
		n = int(tag - intZeroCode)
	}
	if 1+n > len(data) {
		return 0, 0, decodeErr(KindTruncatedInt, errPos)
	}
	var be [maxIntBytes]byte
	copy(be[maxIntBytes-n:], data[1:1+n])
	raw := binary.BigEndian.Uint64(be[:])
	if !neg {
		return int64(raw), 1 + n, nil
	}
	if raw == math.MaxInt64 {
		return math.MinInt64, 1 + n, nil
	}
	return int64(raw) - int64(sizeLimits[n]), 1 + n, nil
}
