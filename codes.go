package tuples

import "math"

const maxIntBytes = 8

// Wire format type codes. Numeric code order matches value-category order;
// this is what makes mixed-type tuples compare correctly as raw bytes.
const (
	terminator byte = 0x00 // ends byte strings and nested tuples
	escape     byte = 0xFF // 0x00 0xFF is a literal zero byte inside a byte string

	bytesCode  byte = 0x01
	stringCode byte = 0x02
	nestedCode byte = 0x05

	intZeroCode   byte = 0x14
	intNegMinCode byte = intZeroCode - maxIntBytes
	intNegMaxCode byte = intZeroCode - 1
	intPosMinCode byte = intZeroCode + 1
	intPosMaxCode byte = intZeroCode + maxIntBytes

	floatCode  byte = 0x20
	doubleCode byte = 0x21
	falseCode  byte = 0x26
	trueCode   byte = 0x27
	uuidCode   byte = 0x30
)

// sizeLimits[n] is the largest magnitude representable in n bytes. Negative
// integers are encoded as sizeLimits[n] minus their magnitude.
var sizeLimits = [maxIntBytes + 1]uint64{
	0,
	1<<8 - 1,
	1<<16 - 1,
	1<<24 - 1,
	1<<32 - 1,
	1<<40 - 1,
	1<<48 - 1,
	1<<56 - 1,
	math.MaxUint64,
}
