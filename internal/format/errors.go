package format

import "errors"

var (
	// ErrSignatureMismatch indicates the magic bytes are not a recognized bitmap signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for the header.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrLength indicates the buffer carried more bytes than the fixed header width.
	ErrLength = errors.New("format: unexpected buffer length")
)
