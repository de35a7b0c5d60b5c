package tuples

import "fmt"

// ErrorKind identifies the way a tuple failed to decode.
type ErrorKind int

const (
	KindUnknownTag ErrorKind = iota + 1
	KindTruncatedBytes
	KindInvalidString
	KindTruncatedInt
	KindTruncatedFloat
	KindBadUUID
	KindTruncatedNested
	KindTruncatedTuple
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownTag:
		return "unrecognized type code"
	case KindTruncatedBytes:
		return "unterminated byte string"
	case KindInvalidString:
		return "string is not valid UTF-8"
	case KindTruncatedInt:
		return "truncated integer"
	case KindTruncatedFloat:
		return "truncated float"
	case KindBadUUID:
		return "malformed UUID"
	case KindTruncatedNested:
		return "truncated nested tuple"
	case KindTruncatedTuple:
		return "truncated tuple"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// DecodeError reports malformed tuple data. Pos is the byte offset of the
// segment that failed to decode; Tag is set for KindUnknownTag only.
type DecodeError struct {
	Kind ErrorKind
	Pos  int
	Tag  byte
}

func (e *DecodeError) Error() string {
	if e.Kind == KindUnknownTag {
		return fmt.Sprintf("tuples: unrecognized type code 0x%02X at offset %d", e.Tag, e.Pos)
	}
	return fmt.Sprintf("tuples: %v at offset %d", e.Kind, e.Pos)
}

func decodeErr(kind ErrorKind, pos int) error {
	return &DecodeError{Kind: kind, Pos: pos}
}

func unknownTagErr(pos int, tag byte) error {
	return &DecodeError{Kind: KindUnknownTag, Pos: pos, Tag: tag}
}
