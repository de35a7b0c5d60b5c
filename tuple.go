package tuples

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Tuple accumulates encoded segments in a single growable buffer.
// The zero value is an empty tuple ready for use. A Tuple is not safe for
// concurrent use; build concurrent tuples in independent Tuples and splice
// them with AddTuple.
type Tuple struct {
	buf []byte
}

func New() *Tuple {
	return &Tuple{}
}

func NewWithCapacity(n int) *Tuple {
	return &Tuple{buf: make([]byte, 0, n)}
}

// FromBytes creates a tuple over a copy of an existing encoding, e.g. a key
// read back from storage. Use Segments to parse it.
func FromBytes(data []byte) *Tuple {
	return &Tuple{buf: appendRaw(nil, data)}
}

// Of builds a tuple from plain Go values; see AddValues for the accepted
// types.
func Of(values ...any) *Tuple {
	return New().AddValues(values...)
}

// Add appends segments to the tuple and returns it for chaining.
func (t *Tuple) Add(segs ...Segment) *Tuple {
	t.buf = Append(t.buf, segs...)
	return t
}

// AddValues appends plain Go values, mapping each onto its segment type:
// string, []byte, bool, int/int8/int16/int32/int64, uint8/uint16/uint32,
// float32, float64, uuid.UUID, []Segment (nested), *Tuple (raw splice), or
// any Segment as is. Unsupported types panic: passing one is a programming
// error, not a data error.
func (t *Tuple) AddValues(values ...any) *Tuple {
	for _, v := range values {
		t.buf = asSegment(v).appendTo(t.buf)
	}
	return t
}

// AddTuple splices another tuple's encoded bytes verbatim, reusing it as a
// shared prefix without re-encoding.
func (t *Tuple) AddTuple(other *Tuple) *Tuple {
	t.buf = appendRaw(t.buf, other.buf)
	return t
}

// Bytes returns the encoded tuple. The slice is the tuple's backing buffer;
// do not modify it while continuing to use the tuple.
func (t *Tuple) Bytes() []byte {
	return t.buf
}

func (t *Tuple) Len() int {
	return len(t.buf)
}

// Segments parses the accumulated encoding back into its segments.
func (t *Tuple) Segments() ([]Segment, error) {
	return Decode(t.buf)
}

func (t *Tuple) String() string {
	return hex.EncodeToString(t.buf)
}

func asSegment(v any) Segment {
	switch v := v.(type) {
	case Segment:
		return v
	case string:
		return String(v)
	case []byte:
		return Bytes(v)
	case bool:
		return Boolean(v)
	case int:
		return Integer(v)
	case int8:
		return Integer(v)
	case int16:
		return Integer(v)
	case int32:
		return Integer(v)
	case int64:
		return Integer(v)
	case uint8:
		return Integer(v)
	case uint16:
		return Integer(v)
	case uint32:
		return Integer(v)
	case float32:
		return Float(v)
	case float64:
		return Double(v)
	case uuid.UUID:
		return UUID(v)
	case []Segment:
		return Nested(v)
	case *Tuple:
		return Raw(v.buf)
	default:
		panic(fmt.Sprintf("tuples: unsupported tuple value type %T", v))
	}
}
