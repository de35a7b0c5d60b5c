package tuples

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Segment is one typed value within a tuple. The set of implementations is
// closed: Bytes, String, Nested, Integer, Float, Double, Boolean, UUID and
// the encode-only Raw.
type Segment interface {
	// appendTo appends the segment's wire encoding to buf.
	appendTo(buf []byte) []byte
}

type (
	Bytes   []byte
	String  string
	Nested  []Segment
	Integer int64
	Float   float32
	Double  float64
	Boolean bool
	UUID    uuid.UUID

	// Raw splices already-encoded tuple bytes verbatim, with no framing of
	// its own. Use it to reuse a finished tuple's encoding as a shared key
	// prefix. Raw is encode-only: Decode never produces it, and it must
	// contain valid segment encodings for the result to be decodable.
	Raw []byte
)

func (v Bytes) appendTo(buf []byte) []byte { return appendBytesSegment(buf, bytesCode, v) }

func (v String) appendTo(buf []byte) []byte { return appendStringSegment(buf, string(v)) }

func (v Nested) appendTo(buf []byte) []byte {
	buf = appendUint8(buf, nestedCode)
	buf = Append(buf, v...)
	return appendUint8(buf, terminator)
}

func (v Integer) appendTo(buf []byte) []byte { return appendInt(buf, int64(v)) }

func (v Float) appendTo(buf []byte) []byte {
	buf = appendUint8(buf, floatCode)
	buf = appendUint32(buf, math.Float32bits(float32(v)))
	encodeSortableFloat(buf[len(buf)-4:])
	return buf
}

func (v Double) appendTo(buf []byte) []byte {
	buf = appendUint8(buf, doubleCode)
	buf = appendUint64(buf, math.Float64bits(float64(v)))
	encodeSortableFloat(buf[len(buf)-8:])
	return buf
}

func (v Boolean) appendTo(buf []byte) []byte {
	if v {
		return appendUint8(buf, trueCode)
	}
	return appendUint8(buf, falseCode)
}

func (v UUID) appendTo(buf []byte) []byte {
	buf = appendUint8(buf, uuidCode)
	return appendRaw(buf, v[:])
}

func (v Raw) appendTo(buf []byte) []byte { return appendRaw(buf, v) }

// Append appends the encodings of segs to buf and returns the extended
// buffer. Encoding a well-formed in-memory segment never fails.
func Append(buf []byte, segs ...Segment) []byte {
	for _, s := range segs {
		buf = s.appendTo(buf)
	}
	return buf
}

// Encode returns the concatenated encoding of segs.
func Encode(segs ...Segment) []byte {
	return Append(nil, segs...)
}

// Decode parses data as a complete tuple and returns its segments.
// Malformed input is reported as a *DecodeError; Decode never panics on
// adversarial bytes. A stray unescaped 0x00 outside a nested region is
// rejected as a truncated tuple rather than silently ending the parse.
func Decode(data []byte) ([]Segment, error) {
	segs, n, err := decodeSegments(data, 0)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, decodeErr(KindTruncatedTuple, n)
	}
	return segs, nil
}

// decodeSegments reads segments until data is exhausted or an unescaped
// 0x00 is found, returning the segments and the number of bytes consumed.
// The 0x00 itself is not consumed; the caller decides whether it closes a
// nested region or is an error. base is the absolute offset of data[0],
// used for error positions. Decoded payloads never alias data.
func decodeSegments(data []byte, base int) ([]Segment, int, error) {
	var segs []Segment
	i := 0
	for i < len(data) {
		tag := data[i]
		switch {
		case tag == terminator:
			return segs, i, nil

		case tag == bytesCode:
			payload, n, ok := decodeByteString(data[i+1:])
			if !ok {
				return nil, 0, decodeErr(KindTruncatedBytes, base+i)
			}
			segs = append(segs, Bytes(payload))
			i += 1 + n

		case tag == stringCode:
			payload, n, ok := decodeByteString(data[i+1:])
			if !ok {
				return nil, 0, decodeErr(KindTruncatedBytes, base+i)
			}
			if !utf8.Valid(payload) {
				return nil, 0, decodeErr(KindInvalidString, base+i)
			}
			segs = append(segs, String(payload))
			i += 1 + n

		case tag == nestedCode:
			children, n, err := decodeSegments(data[i+1:], base+i+1)
			if err != nil {
				return nil, 0, err
			}
			end := i + 1 + n
			if end >= len(data) || data[end] != terminator {
				return nil, 0, decodeErr(KindTruncatedNested, base+i)
			}
			if children == nil {
				children = Nested{}
			}
			segs = append(segs, Nested(children))
			i = end + 1

		case tag >= intNegMinCode && tag <= intPosMaxCode:
			v, n, err := decodeInt(data[i:], base+i)
			if err != nil {
				return nil, 0, err
			}
			segs = append(segs, Integer(v))
			i += n

		case tag == floatCode:
			if i+1+4 > len(data) {
				return nil, 0, decodeErr(KindTruncatedFloat, base+i)
			}
			var be [4]byte
			copy(be[:], data[i+1:i+5])
			decodeSortableFloat(be[:])
			segs = append(segs, Float(math.Float32frombits(binary.BigEndian.Uint32(be[:]))))
			i += 5

		case tag == doubleCode:
			if i+1+8 > len(data) {
				return nil, 0, decodeErr(KindTruncatedFloat, base+i)
			}
			var be [8]byte
			copy(be[:], data[i+1:i+9])
			decodeSortableFloat(be[:])
			segs = append(segs, Double(math.Float64frombits(binary.BigEndian.Uint64(be[:]))))
			i += 9

		case tag == falseCode:
			segs = append(segs, Boolean(false))
			i++

		case tag == trueCode:
			segs = append(segs, Boolean(true))
			i++

		case tag == uuidCode:
			if i+1+16 > len(data) {
				return nil, 0, decodeErr(KindBadUUID, base+i)
			}
			var u UUID
			copy(u[:], data[i+1:i+17])
			segs = append(segs, u)
			i += 17

		default:
			return nil, 0, unknownTagErr(base+i, tag)
		}
	}
	return segs, i, nil
}
