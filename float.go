package tuples

// encodeSortableFloat transforms big-endian IEEE-754 bytes in place so that
// lexicographic byte order matches numeric order: a negative value has every
// bit inverted, a non-negative value only the sign bit. This puts all
// negatives (in ascending numeric order) below all non-negatives, with
// -Inf first and +Inf last.
func encodeSortableFloat(b []byte) {
	if b[0]&0x80 != 0 {
		for i := range b {
			b[i] ^= 0xFF
		}
	} else {
		b[0] ^= 0x80
	}
}

// decodeSortableFloat is the exact inverse, branching on the transformed
// sign bit: clear means the original was negative.
func decodeSortableFloat(b []byte) {
	if b[0]&0x80 == 0 {
		for i := range b {
			b[i] ^= 0xFF
		}
	} else {
		b[0] ^= 0x80
	}
}
