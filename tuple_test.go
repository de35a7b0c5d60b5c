package tuples

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestTupleOf(t *testing.T) {
	enc := Of("users", 1).Bytes()
	want := []byte{2, 117, 115, 101, 114, 115, 0, 21, 1}
	if !bytes.Equal(enc, want) {
		t.Fatalf("Of(\"users\", 1).Bytes() = %x, wanted %x", enc, want)
	}
}

func TestTuplePrefixReuse(t *testing.T) {
	users := Of("users", 1, "posts")
	post1 := Of(users, 1)
	post2 := Of(users, 2)

	want1 := []byte{2, 117, 115, 101, 114, 115, 0, 21, 1, 2, 112, 111, 115, 116, 115, 0, 21, 1}
	want2 := []byte{2, 117, 115, 101, 114, 115, 0, 21, 1, 2, 112, 111, 115, 116, 115, 0, 21, 2}
	if !bytes.Equal(post1.Bytes(), want1) {
		t.Fatalf("post1 = %x, wanted %x", post1.Bytes(), want1)
	}
	if !bytes.Equal(post2.Bytes(), want2) {
		t.Fatalf("post2 = %x, wanted %x", post2.Bytes(), want2)
	}

	// AddTuple is the explicit form of passing a *Tuple to Of.
	spliced := New().AddTuple(users).AddValues(1)
	if !bytes.Equal(spliced.Bytes(), want1) {
		t.Fatalf("AddTuple splice = %x, wanted %x", spliced.Bytes(), want1)
	}
}

func TestTupleFromBytes(t *testing.T) {
	raw := []byte{2, 117, 115, 101, 114, 115, 0, 21, 1}
	tup := FromBytes(raw)
	segs, err := tup.Segments()
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	want := []Segment{String("users"), Integer(1)}
	if !reflect.DeepEqual(segs, want) {
		t.Fatalf("Segments = %#v, wanted %#v", segs, want)
	}

	// FromBytes copies: mutating the source must not affect the tuple.
	raw[0] = 0xAA
	if tup.Bytes()[0] != 2 {
		t.Fatalf("FromBytes aliases its input")
	}
}

func TestTupleAddValuesMapping(t *testing.T) {
	u := must(uuid.Parse("c5c2a280-e47c-4181-94b3-c23cd5faede8"))
	tup := New().AddValues(
		"name",
		[]byte{1, 2},
		true,
		int(-5),
		int8(-8),
		int16(-16),
		int32(-32),
		int64(math.MinInt64),
		uint8(8),
		uint16(16),
		uint32(32),
		float32(1.5),
		float64(-2.5),
		u,
		[]Segment{Boolean(false), Integer(0)},
	)

	want := Encode(
		String("name"),
		Bytes{1, 2},
		Boolean(true),
		Integer(-5),
		Integer(-8),
		Integer(-16),
		Integer(-32),
		Integer(math.MinInt64),
		Integer(8),
		Integer(16),
		Integer(32),
		Float(1.5),
		Double(-2.5),
		UUID(u),
		Nested{Boolean(false), Integer(0)},
	)
	if !bytes.Equal(tup.Bytes(), want) {
		t.Fatalf("AddValues = %x, wanted %x", tup.Bytes(), want)
	}

	segs, err := tup.Segments()
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	if len(segs) != 15 {
		t.Fatalf("len(Segments) = %d, wanted 15", len(segs))
	}
}

func TestTupleAddValuesPanicsOnUnsupportedType(t *testing.T) {
	defer func() {
		v := recover()
		if v == nil {
			t.Fatalf("expected panic")
		}
		if s, ok := v.(string); !ok || !strings.Contains(s, "unsupported tuple value type") {
			t.Fatalf("panic = %v, wanted unsupported-type message", v)
		}
	}()
	New().AddValues(struct{}{})
}

func TestTupleZeroValue(t *testing.T) {
	var tup Tuple
	tup.Add(Integer(1))
	if !bytes.Equal(tup.Bytes(), []byte{0x15, 0x01}) {
		t.Fatalf("zero-value Tuple.Add = %x, wanted 1501", tup.Bytes())
	}
	if tup.Len() != 2 {
		t.Fatalf("Len = %d, wanted 2", tup.Len())
	}
	if tup.String() != "1501" {
		t.Fatalf("String = %q, wanted %q", tup.String(), "1501")
	}
}

func TestTupleNewWithCapacity(t *testing.T) {
	tup := NewWithCapacity(64)
	if cap(tup.buf) < 64 {
		t.Fatalf("cap = %d, wanted >= 64", cap(tup.buf))
	}
	tup.AddValues("k")
	if !bytes.Equal(tup.Bytes(), []byte{0x02, 'k', 0x00}) {
		t.Fatalf("Bytes = %x, wanted 026b00", tup.Bytes())
	}
}

func TestTupleSegmentsError(t *testing.T) {
	tup := FromBytes([]byte{0xFF})
	_, err := tup.Segments()
	if err == nil {
		t.Fatalf("Segments on malformed tuple succeeded, wanted error")
	}
}
