package bmp

import (
	"fmt"

	"github.com/joshuapare/bmpkit/internal/format"
)

// Sentinels the typed errors unwrap to.
var (
	// ErrTruncated indicates fewer than HeaderSize bytes were available.
	ErrTruncated = format.ErrTruncated
	// ErrLength indicates more than HeaderSize bytes were passed to Decode.
	ErrLength = format.ErrLength
	// ErrInvalidMagic indicates an unrecognized signature in strict mode.
	ErrInvalidMagic = format.ErrSignatureMismatch
)

// TruncatedInputError reports a header prefix shorter than HeaderSize.
type TruncatedInputError struct {
	Got  int // bytes available
	Want int // bytes required
}

// Error implements the error interface.
func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("bmp: truncated header: got %d bytes, want %d", e.Got, e.Want)
}

// Unwrap returns ErrTruncated.
func (e *TruncatedInputError) Unwrap() error { return ErrTruncated }

// LengthError reports a buffer longer than the fixed header width.
type LengthError struct {
	Got  int
	Want int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("bmp: header must be exactly %d bytes, got %d", e.Want, e.Got)
}

// Unwrap returns ErrLength.
func (e *LengthError) Unwrap() error { return ErrLength }

// InvalidMagicError reports an unrecognized two-byte signature.
type InvalidMagicError struct {
	Magic [2]byte
}

// Error implements the error interface.
func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("bmp: invalid signature %q (0x%02X 0x%02X)", e.Magic[:], e.Magic[0], e.Magic[1])
}

// Unwrap returns ErrInvalidMagic.
func (e *InvalidMagicError) Unwrap() error { return ErrInvalidMagic }
