package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := U64LE(data); got != 0xefcdab8967452301 {
		t.Fatalf("U64LE = 0x%x, want 0xefcdab8967452301", got)
	}
	if got := U16BE(data); got != 0x0123 {
		t.Fatalf("U16BE = 0x%x, want 0x0123", got)
	}
	if got := U32BE(data); got != 0x01234567 {
		t.Fatalf("U32BE = 0x%x, want 0x01234567", got)
	}
	if got := U64BE(data); got != 0x0123456789abcdef {
		t.Fatalf("U64BE = 0x%x, want 0x0123456789abcdef", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 || U16BE(short) != 0 {
		t.Fatalf("16-bit short reads should be 0")
	}
	if U32LE(short) != 0 || U32BE(short) != 0 || U64LE(short) != 0 || U64BE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestPutHelpers(t *testing.T) {
	b := make([]byte, 4)

	PutU32BE(b, 10240099)
	if b[0] != 0x00 || b[1] != 0x9c || b[2] != 0x40 || b[3] != 0x63 {
		t.Fatalf("PutU32BE = % x, want 00 9c 40 63", b)
	}
	if got := U32BE(b); got != 10240099 {
		t.Fatalf("U32BE after PutU32BE = %d", got)
	}

	PutU32LE(b, 144056)
	if b[0] != 0xb8 || b[1] != 0x32 || b[2] != 0x02 || b[3] != 0x00 {
		t.Fatalf("PutU32LE = % x, want b8 32 02 00", b)
	}

	PutU16LE(b, 0x0018)
	if b[0] != 0x18 || b[1] != 0x00 {
		t.Fatalf("PutU16LE = % x, want 18 00", b[:2])
	}

	short := []byte{0xAA}
	PutU32LE(short, 0xffffffff)
	PutU32BE(short, 0xffffffff)
	PutU16LE(short, 0xffff)
	if short[0] != 0xAA {
		t.Fatalf("short writes should not modify the buffer")
	}
}

func TestPut64AndBE16(t *testing.T) {
	b := make([]byte, 8)

	PutU64LE(b, 0x0102030405060708)
	if got := U64LE(b); got != 0x0102030405060708 || b[0] != 0x08 {
		t.Fatalf("PutU64LE = % x", b)
	}

	PutU64BE(b, 0x0102030405060708)
	if got := U64BE(b); got != 0x0102030405060708 || b[0] != 0x01 {
		t.Fatalf("PutU64BE = % x", b)
	}

	PutU16BE(b, 0x8080)
	if got := U16BE(b); got != 0x8080 {
		t.Fatalf("PutU16BE = % x", b[:2])
	}

	short := []byte{0xAA, 0xBB}
	PutU64LE(short, ^uint64(0))
	PutU64BE(short, ^uint64(0))
	PutU16BE(short[:1], 0xffff)
	if short[0] != 0xAA || short[1] != 0xBB {
		t.Fatalf("short writes should not modify the buffer")
	}
}
