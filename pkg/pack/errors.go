package pack

import "errors"

var (
	// ErrFormat indicates a malformed format string.
	ErrFormat = errors.New("pack: bad format")
	// ErrSize indicates the buffer length does not match the format.
	ErrSize = errors.New("pack: size mismatch")
	// ErrValue indicates a value of the wrong type or out of range for its code.
	ErrValue = errors.New("pack: bad value")
)
