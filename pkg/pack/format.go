package pack

import (
	"fmt"

	"github.com/joshuapare/bmpkit/internal/buf"
)

// MaxSize is the largest layout, in bytes, that parse accepts.
const MaxSize = 1 << 24

// field is one code with its repeat count.
type field struct {
	code  byte
	count int
}

type layout struct {
	order  byteOrder
	fields []field
	size   int
}

var widths = map[byte]int{
	'x': 1, 'c': 1, 'b': 1, 'B': 1, '?': 1, 's': 1,
	'h': 2, 'H': 2,
	'i': 4, 'I': 4, 'l': 4, 'L': 4,
	'q': 8, 'Q': 8,
}

func parse(format string) (layout, error) {
	l := layout{}
	i := 0
	if i < len(format) {
		switch format[i] {
		case '<', '=', '@':
			i++
		case '>', '!':
			l.order = byteOrder{big: true}
			i++
		}
	}

	for i < len(format) {
		ch := format[i]
		if ch == ' ' || ch == '\t' || ch == '\n' {
			i++
			continue
		}

		count, hasCount := 0, false
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			next, ok := buf.MulOverflowSafe(count, 10)
			if ok {
				next, ok = buf.AddOverflowSafe(next, int(format[i]-'0'))
			}
			if !ok {
				return layout{}, fmt.Errorf("%w: repeat count overflows in %q", ErrFormat, format)
			}
			count, hasCount = next, true
			i++
		}
		if i >= len(format) {
			return layout{}, fmt.Errorf("%w: repeat count without code in %q", ErrFormat, format)
		}
		if !hasCount {
			count = 1
		}

		code := format[i]
		width, ok := widths[code]
		if !ok {
			return layout{}, fmt.Errorf("%w: unknown code %q in %q", ErrFormat, code, format)
		}
		n, ok := buf.MulOverflowSafe(count, width)
		if ok {
			l.size, ok = buf.AddOverflowSafe(l.size, n)
		}
		if !ok {
			return layout{}, fmt.Errorf("%w: size overflows in %q", ErrFormat, format)
		}
		if l.size > MaxSize {
			return layout{}, fmt.Errorf("%w: %q exceeds %d bytes", ErrFormat, format, MaxSize)
		}
		if count > 0 || code == 's' {
			l.fields = append(l.fields, field{code: code, count: count})
		}
		i++
	}
	return l, nil
}

// byteOrder reads and writes fixed-width integers through the buf helpers.
// The zero value is little-endian.
type byteOrder struct {
	big bool
}

func (o byteOrder) Uint16(b []byte) uint16 {
	if o.big {
		return buf.U16BE(b)
	}
	return buf.U16LE(b)
}

func (o byteOrder) Uint32(b []byte) uint32 {
	if o.big {
		return buf.U32BE(b)
	}
	return buf.U32LE(b)
}

func (o byteOrder) Uint64(b []byte) uint64 {
	if o.big {
		return buf.U64BE(b)
	}
	return buf.U64LE(b)
}

func (o byteOrder) PutUint16(b []byte, v uint16) {
	if o.big {
		buf.PutU16BE(b, v)
		return
	}
	buf.PutU16LE(b, v)
}

func (o byteOrder) PutUint32(b []byte, v uint32) {
	if o.big {
		buf.PutU32BE(b, v)
		return
	}
	buf.PutU32LE(b, v)
}

func (o byteOrder) PutUint64(b []byte, v uint64) {
	if o.big {
		buf.PutU64BE(b, v)
		return
	}
	buf.PutU64LE(b, v)
}

// values reports how many Go values the layout consumes or produces.
func (l layout) values() int {
	n := 0
	for _, f := range l.fields {
		switch f.code {
		case 'x':
		case 's':
			n++
		default:
			n += f.count
		}
	}
	return n
}

// CalcSize returns the number of bytes described by format.
func CalcSize(format string) (int, error) {
	l, err := parse(format)
	if err != nil {
		return 0, err
	}
	return l.size, nil
}
