/*
Package pack converts between fixed-width integers and byte sequences.

Layouts are described by compact format strings: an optional byte order
prefix followed by field codes, each with an optional repeat count.

	Prefix  Byte order
	------  ----------------------------
	<       little-endian
	> !     big-endian
	= @     little-endian (the default)

	Code  Go type   Width
	----  --------  -----
	x     (pad)     1
	c     byte      1
	b     int8      1
	B     uint8     1
	?     bool      1
	h     int16     2
	H     uint16    2
	i l   int32     4
	I L   uint32    4
	q     int64     8
	Q     uint64    8
	s     []byte    count

Fields are packed back to back with no alignment padding. A bitmap header
prefix is "<ccIIIIIIHH":

	vals, err := pack.Unpack("<ccIIIIIIHH", data[:30])

Uint32Shift and Uint32Hex produce the same big-endian bytes as
Pack(">I", v) using mask-and-shift arithmetic and a hex round trip.
*/
package pack
