package format

import (
	"fmt"

	"github.com/joshuapare/bmpkit/internal/buf"
)

// Header is the raw 30-byte bitmap header prefix. Field order and widths
// mirror the on-disk layout described in consts.go; every multi-byte field
// is stored little-endian.
type Header struct {
	Magic0     byte
	Magic1     byte
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
	InfoSize   uint32
	Width      uint32
	Height     uint32
	Planes     uint16
	ColorCount uint16
}

// DecodeHeader extracts the header fields from b. The buffer must be exactly
// HeaderSize bytes long; the length is checked before any field is read.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("bmp header: %w", ErrTruncated)
	}
	if len(b) > HeaderSize {
		return Header{}, fmt.Errorf("bmp header: %w", ErrLength)
	}
	return Header{
		Magic0:     b[Magic0Offset],
		Magic1:     b[Magic1Offset],
		FileSize:   buf.U32LE(b[FileSizeOffset:]),
		Reserved:   buf.U32LE(b[ReservedOffset:]),
		DataOffset: buf.U32LE(b[DataOffsetOffset:]),
		InfoSize:   buf.U32LE(b[InfoSizeOffset:]),
		Width:      buf.U32LE(b[WidthOffset:]),
		Height:     buf.U32LE(b[HeightOffset:]),
		Planes:     buf.U16LE(b[PlanesOffset:]),
		ColorCount: buf.U16LE(b[ColorCountOffset:]),
	}, nil
}

// EncodeHeader lays h out in its on-disk form. It is the exact inverse of
// DecodeHeader.
func EncodeHeader(h Header) [HeaderSize]byte {
	var b [HeaderSize]byte
	b[Magic0Offset] = h.Magic0
	b[Magic1Offset] = h.Magic1
	buf.PutU32LE(b[FileSizeOffset:], h.FileSize)
	buf.PutU32LE(b[ReservedOffset:], h.Reserved)
	buf.PutU32LE(b[DataOffsetOffset:], h.DataOffset)
	buf.PutU32LE(b[InfoSizeOffset:], h.InfoSize)
	buf.PutU32LE(b[WidthOffset:], h.Width)
	buf.PutU32LE(b[HeightOffset:], h.Height)
	buf.PutU16LE(b[PlanesOffset:], h.Planes)
	buf.PutU16LE(b[ColorCountOffset:], h.ColorCount)
	return b
}

// Signature returns the two magic bytes.
func (h Header) Signature() [SignatureSize]byte {
	return [SignatureSize]byte{h.Magic0, h.Magic1}
}

// CheckSignature returns ErrSignatureMismatch unless sig is one of the
// recognized bitmap signatures.
func CheckSignature(sig [SignatureSize]byte) error {
	switch sig {
	case BMSignature, BASignature, CISignature, CPSignature, ICSignature, PTSignature:
		return nil
	}
	return fmt.Errorf("bmp header: %w", ErrSignatureMismatch)
}
