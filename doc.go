/*
Package tuples implements an order-preserving binary encoding of typed
value sequences (“tuples”), meant to be used as keys in sorted key-value
stores like Bolt: comparing two encoded tuples as raw bytes gives the
same result as comparing the decoded value sequences element by element.

A tuple is a sequence of segments. Supported segment types: byte
strings, UTF-8 strings, signed 64-bit integers, 32/64-bit floats,
booleans, UUIDs, and nested tuples. Build a tuple with [Tuple] (or
encode segments directly with [Encode]/[Append]), and parse raw bytes
back with [Decode].

# Binary encoding

Each segment is a one-byte type code followed by a per-type payload.
Codes are assigned so that numeric code order matches value-category
order, which makes mixed-type tuples compare correctly:

 1. 0x01 byte string, 0x02 UTF-8 string: the payload bytes with every
    0x00 replaced by 0x00 0xFF, then a 0x00 terminator.

 2. 0x05 nested tuple: the encoded child segments, then a 0x00
    terminator.

 3. 0x0C..0x1C integers: 0x14 encodes zero by itself; 0x14+n (resp.
    0x14−n) is an n-byte positive (resp. negative) integer. Positive
    payloads are the minimal big-endian magnitude; negative payloads
    are the magnitude subtracted from the largest n-byte value, so that
    more negative values sort first.

 4. 0x20 float, 0x21 double: big-endian IEEE-754 bits with all bits
    inverted for negative values and just the sign bit inverted
    otherwise, placing −∞ < negatives < zeros < positives < +∞.

 5. 0x26 false, 0x27 true: the code alone.

 6. 0x30 UUID: the 16 raw bytes.

Because every segment's encoding is self-delimiting and concatenation
needs no separator, a tuple that extends another reuses its encoding as
a byte prefix; see [Tuple.AddTuple].
*/
package tuples
