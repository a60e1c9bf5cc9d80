package bmp

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/bmpkit/internal/format"
	"github.com/joshuapare/bmpkit/internal/prefix"
)

// Decode interprets b as a bitmap header prefix. b must be exactly
// HeaderSize bytes. Decode performs no I/O and accepts any signature.
//
// Example:
//
//	hdr, err := bmp.Decode(data[:bmp.HeaderSize])
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%dx%d\n", hdr.Width, hdr.Height)
func Decode(b []byte) (Header, error) {
	return DecodeWith(b, Options{})
}

// DecodeWith is Decode with explicit options.
func DecodeWith(b []byte, opts Options) (Header, error) {
	raw, err := format.DecodeHeader(b)
	switch {
	case errors.Is(err, format.ErrTruncated):
		return Header{}, &TruncatedInputError{Got: len(b), Want: HeaderSize}
	case errors.Is(err, format.ErrLength):
		return Header{}, &LengthError{Got: len(b), Want: HeaderSize}
	case err != nil:
		return Header{}, err
	}

	if opts.Strict {
		if err := format.CheckSignature(raw.Signature()); err != nil {
			return Header{}, &InvalidMagicError{Magic: raw.Signature()}
		}
	}
	return fromRaw(raw), nil
}

// Read consumes exactly HeaderSize bytes from r and decodes them. A stream
// that ends early yields *TruncatedInputError.
func Read(r io.Reader, opts Options) (Header, error) {
	var b [HeaderSize]byte
	n, err := io.ReadFull(r, b[:])
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return Header{}, &TruncatedInputError{Got: n, Want: HeaderSize}
	}
	if err != nil {
		return Header{}, fmt.Errorf("bmp: read header: %w", err)
	}
	return DecodeWith(b[:], opts)
}

// ReadFile opens path, reads its first HeaderSize bytes and decodes them.
// The file is closed before ReadFile returns.
func ReadFile(path string, opts Options) (Header, error) {
	b, err := prefix.Read(path, HeaderSize)
	if err != nil {
		return Header{}, fmt.Errorf("bmp: %w", err)
	}
	hdr, err := DecodeWith(b, opts)
	if err != nil {
		return Header{}, fmt.Errorf("%s: %w", path, err)
	}
	return hdr, nil
}
