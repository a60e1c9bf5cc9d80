package pack

import (
	"fmt"
	"math"
	"strconv"
)

// Pack encodes values according to format. Each non-pad code consumes one
// value; an "s" field consumes one []byte or string, zero-padded or cut to
// the field's count. Integer codes accept any Go integer type whose value
// fits the field.
//
// Example:
//
//	b, err := pack.Pack(">I", 10240099) // 00 9c 40 63
func Pack(format string, values ...any) ([]byte, error) {
	l, err := parse(format)
	if err != nil {
		return nil, err
	}
	if want := l.values(); len(values) != want {
		return nil, fmt.Errorf("%w: format %q takes %d values, got %d", ErrValue, format, want, len(values))
	}

	out := make([]byte, l.size)
	off, vi := 0, 0
	for _, f := range l.fields {
		if f.code == 's' {
			raw, ok := bytesValue(values[vi])
			if !ok {
				return nil, badValue(f.code, vi, values[vi])
			}
			copy(out[off:off+f.count], raw)
			off += f.count
			vi++
			continue
		}
		width := widths[f.code]
		for range f.count {
			if f.code == 'x' {
				off += width
				continue
			}
			if err := put(out[off:off+width], l, f.code, values[vi]); err != nil {
				return nil, badValue(f.code, vi, values[vi])
			}
			off += width
			vi++
		}
	}
	return out, nil
}

// PackStrings is Pack for textual arguments, parsing each one according to
// its field code. Integers accept the 0x, 0o and 0b prefixes.
func PackStrings(format string, args []string) ([]byte, error) {
	l, err := parse(format)
	if err != nil {
		return nil, err
	}
	slots := l.slots()
	if len(args) != len(slots) {
		return nil, fmt.Errorf("%w: format %q takes %d values, got %d", ErrValue, format, len(slots), len(args))
	}

	values := make([]any, len(args))
	for i, arg := range args {
		v, err := parseArg(slots[i], arg)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d (%q) for code %q: %v", ErrValue, i, arg, slots[i], err)
		}
		values[i] = v
	}
	return Pack(format, values...)
}

// slots lists the code of every value position in order.
func (l layout) slots() []byte {
	var out []byte
	for _, f := range l.fields {
		switch f.code {
		case 'x':
		case 's':
			out = append(out, 's')
		default:
			for range f.count {
				out = append(out, f.code)
			}
		}
	}
	return out
}

func parseArg(code byte, arg string) (any, error) {
	switch code {
	case 'c':
		if len(arg) != 1 {
			return nil, fmt.Errorf("want a single byte")
		}
		return arg[0], nil
	case '?':
		return strconv.ParseBool(arg)
	case 's':
		return arg, nil
	case 'b', 'h', 'i', 'l', 'q':
		return strconv.ParseInt(arg, 0, 64)
	default:
		return strconv.ParseUint(arg, 0, 64)
	}
}

func put(p []byte, l layout, code byte, v any) error {
	switch code {
	case 'c':
		c, ok := charValue(v)
		if !ok {
			return ErrValue
		}
		p[0] = c
	case '?':
		switch x := v.(type) {
		case bool:
			if x {
				p[0] = 1
			}
		default:
			s, u, signed, ok := toInteger(v)
			if !ok {
				return ErrValue
			}
			if (signed && s != 0) || (!signed && u != 0) {
				p[0] = 1
			}
		}
	case 'b':
		n, ok := fitsSigned(v, math.MinInt8, math.MaxInt8)
		if !ok {
			return ErrValue
		}
		p[0] = byte(int8(n))
	case 'B':
		n, ok := fitsUnsigned(v, math.MaxUint8)
		if !ok {
			return ErrValue
		}
		p[0] = byte(n)
	case 'h':
		n, ok := fitsSigned(v, math.MinInt16, math.MaxInt16)
		if !ok {
			return ErrValue
		}
		l.order.PutUint16(p, uint16(int16(n)))
	case 'H':
		n, ok := fitsUnsigned(v, math.MaxUint16)
		if !ok {
			return ErrValue
		}
		l.order.PutUint16(p, uint16(n))
	case 'i', 'l':
		n, ok := fitsSigned(v, math.MinInt32, math.MaxInt32)
		if !ok {
			return ErrValue
		}
		l.order.PutUint32(p, uint32(int32(n)))
	case 'I', 'L':
		n, ok := fitsUnsigned(v, math.MaxUint32)
		if !ok {
			return ErrValue
		}
		l.order.PutUint32(p, uint32(n))
	case 'q':
		n, ok := fitsSigned(v, math.MinInt64, math.MaxInt64)
		if !ok {
			return ErrValue
		}
		l.order.PutUint64(p, uint64(n))
	case 'Q':
		n, ok := fitsUnsigned(v, math.MaxUint64)
		if !ok {
			return ErrValue
		}
		l.order.PutUint64(p, n)
	}
	return nil
}

func badValue(code byte, idx int, v any) error {
	return fmt.Errorf("%w: value %d (%v, %T) does not fit code %q", ErrValue, idx, v, v, code)
}

func charValue(v any) (byte, bool) {
	switch x := v.(type) {
	case []byte:
		if len(x) == 1 {
			return x[0], true
		}
		return 0, false
	case string:
		if len(x) == 1 {
			return x[0], true
		}
		return 0, false
	}
	n, ok := fitsUnsigned(v, math.MaxUint8)
	return byte(n), ok
}

func bytesValue(v any) ([]byte, bool) {
	switch x := v.(type) {
	case []byte:
		return x, true
	case string:
		return []byte(x), true
	}
	return nil, false
}

// toInteger normalizes any Go integer. Signed kinds land in s, unsigned in u.
func toInteger(v any) (s int64, u uint64, signed, ok bool) {
	switch x := v.(type) {
	case int:
		return int64(x), 0, true, true
	case int8:
		return int64(x), 0, true, true
	case int16:
		return int64(x), 0, true, true
	case int32:
		return int64(x), 0, true, true
	case int64:
		return x, 0, true, true
	case uint:
		return 0, uint64(x), false, true
	case uint8:
		return 0, uint64(x), false, true
	case uint16:
		return 0, uint64(x), false, true
	case uint32:
		return 0, uint64(x), false, true
	case uint64:
		return 0, x, false, true
	case uintptr:
		return 0, uint64(x), false, true
	}
	return 0, 0, false, false
}

func fitsUnsigned(v any, hi uint64) (uint64, bool) {
	s, u, signed, ok := toInteger(v)
	switch {
	case !ok:
		return 0, false
	case signed:
		if s < 0 || uint64(s) > hi {
			return 0, false
		}
		return uint64(s), true
	case u > hi:
		return 0, false
	}
	return u, true
}

func fitsSigned(v any, lo, hi int64) (int64, bool) {
	s, u, signed, ok := toInteger(v)
	switch {
	case !ok:
		return 0, false
	case signed:
		if s < lo || s > hi {
			return 0, false
		}
		return s, true
	case u > uint64(hi):
		return 0, false
	}
	return int64(u), true
}
