package pack

import (
	"fmt"

	"github.com/joshuapare/bmpkit/internal/buf"
)

// Unpack decodes b according to format. len(b) must equal CalcSize(format).
//
// Example:
//
//	vals, err := pack.Unpack(">IH", []byte{0xf0, 0xf0, 0xf0, 0xf0, 0x80, 0x80})
//	// vals == []any{uint32(4042322160), uint16(32896)}
func Unpack(format string, b []byte) ([]any, error) {
	l, err := parse(format)
	if err != nil {
		return nil, err
	}
	if len(b) != l.size {
		return nil, fmt.Errorf("%w: format %q needs %d bytes, got %d", ErrSize, format, l.size, len(b))
	}

	out := make([]any, 0, l.values())
	off := 0
	for _, f := range l.fields {
		if f.code == 's' {
			s, _ := buf.Slice(b, off, f.count)
			out = append(out, append([]byte(nil), s...))
			off += f.count
			continue
		}
		width := widths[f.code]
		for range f.count {
			p, _ := buf.Slice(b, off, width)
			off += width
			switch f.code {
			case 'x':
			case 'c':
				out = append(out, p[0])
			case 'b':
				out = append(out, int8(p[0]))
			case 'B':
				out = append(out, uint8(p[0]))
			case '?':
				out = append(out, p[0] != 0)
			case 'h':
				out = append(out, int16(l.order.Uint16(p)))
			case 'H':
				out = append(out, l.order.Uint16(p))
			case 'i', 'l':
				out = append(out, int32(l.order.Uint32(p)))
			case 'I', 'L':
				out = append(out, l.order.Uint32(p))
			case 'q':
				out = append(out, int64(l.order.Uint64(p)))
			case 'Q':
				out = append(out, l.order.Uint64(p))
			}
		}
	}
	return out, nil
}
