package tuples

// appendBytesSegment writes code, then data with every zero byte escaped as
// 0x00 0xFF, then the 0x00 terminator. Termination can only ever happen at
// an unescaped zero, so a byte string that is a strict prefix of another
// encodes to a strict byte prefix of the other's encoding.
func appendBytesSegment(buf []byte, code byte, data []byte) []byte {
	buf = ensureCapacity(buf, len(buf)+len(data)+2)
	buf = appendUint8(buf, code)
	start := 0
	for i, b := range data {
		if b == terminator {
			buf = appendRaw(buf, data[start:i])
			buf = appendUint8(buf, terminator)
			buf = appendUint8(buf, escape)
			start = i + 1
		}
	}
	buf = appendRaw(buf, data[start:])
	return appendUint8(buf, terminator)
}

// appendStringSegment is appendBytesSegment for string payloads, avoiding a
// []byte conversion copy.
func appendStringSegment(buf []byte, v string) []byte {
	buf = ensureCapacity(buf, len(buf)+len(v)+2)
	buf = appendUint8(buf, stringCode)
	start := 0
	for i := 0; i < len(v); i++ {
		if v[i] == terminator {
			buf = appendString(buf, v[start:i])
			buf = appendUint8(buf, terminator)
			buf = appendUint8(buf, escape)
			start = i + 1
		}
	}
	buf = appendString(buf, v[start:])
	return appendUint8(buf, terminator)
}

// decodeByteString unescapes data up to the first unescaped zero byte,
// returning the payload and the number of bytes consumed including the
// terminator. ok is false when data ends before a terminator is found.
func decodeByteString(data []byte) (payload []byte, consumed int, ok bool) {
	payload = make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		b := data[i]
		if b != terminator {
			payload = append(payload, b)
			i++
			continue
		}
		if i+1 < len(data) && data[i+1] == escape {
			payload = append(payload, terminator)
			i += 2
			continue
		}
		return payload, i + 1, true
	}
	return nil, 0, false
}
