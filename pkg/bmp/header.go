package bmp

import (
	"fmt"
	"math"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/bmpkit/internal/format"
)

// HeaderSize is the number of bytes Decode consumes.
const HeaderSize = format.HeaderSize

// Header is a read-only snapshot of a bitmap's leading metadata. It is a
// plain value: copies are independent and no method modifies it.
type Header struct {
	Magic0     byte   `json:"magic0"`      // first signature byte ('B')
	Magic1     byte   `json:"magic1"`      // second signature byte ('M' or 'A')
	FileSize   uint32 `json:"file_size"`   // total file size in bytes
	Reserved   uint32 `json:"reserved"`    // always zero in well-formed files
	DataOffset uint32 `json:"data_offset"` // offset of the pixel array
	HeaderSize uint32 `json:"header_size"` // size of the info header that follows
	Width      uint32 `json:"width"`       // pixels
	Height     uint32 `json:"height"`      // pixels
	Planes     uint16 `json:"planes"`      // always 1
	ColorCount uint16 `json:"color_count"` // bits per pixel
}

// Kind identifies the bitmap variant named by the signature bytes.
type Kind int

const (
	KindUnknown         Kind = iota
	KindWindows              // BM
	KindOS2Array             // BA
	KindOS2ColorIcon         // CI
	KindOS2ColorPointer      // CP
	KindOS2Icon              // IC
	KindOS2Pointer           // PT
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindWindows:         "Windows bitmap",
	KindOS2Array:        "OS/2 bitmap array",
	KindOS2ColorIcon:    "OS/2 color icon",
	KindOS2ColorPointer: "OS/2 color pointer",
	KindOS2Icon:         "OS/2 icon",
	KindOS2Pointer:      "OS/2 pointer",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindBySignature = map[[format.SignatureSize]byte]Kind{
	format.BMSignature: KindWindows,
	format.BASignature: KindOS2Array,
	format.CISignature: KindOS2ColorIcon,
	format.CPSignature: KindOS2ColorPointer,
	format.ICSignature: KindOS2Icon,
	format.PTSignature: KindOS2Pointer,
}

// Kind reports which bitmap variant the signature names.
func (h Header) Kind() Kind {
	return kindBySignature[[format.SignatureSize]byte{h.Magic0, h.Magic1}]
}

// Signature renders the two magic bytes as text. Bytes are mapped through
// the Windows-1252 code page so non-ASCII signatures stay printable.
func (h Header) Signature() string {
	raw := []byte{h.Magic0, h.Magic1}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// SizeKB returns FileSize in kibibytes rounded to the nearest integer, with
// ties going to the even neighbour.
func (h Header) SizeKB() int {
	return int(math.RoundToEven(float64(h.FileSize) / format.KiB))
}

// MarshalBinary returns the 30-byte on-disk form of h.
func (h Header) MarshalBinary() ([]byte, error) {
	b := format.EncodeHeader(h.raw())
	return b[:], nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s %dx%d %dbpp %d bytes (pixels at %d)",
		h.Signature(), h.Width, h.Height, h.ColorCount, h.FileSize, h.DataOffset)
}

func (h Header) raw() format.Header {
	return format.Header{
		Magic0:     h.Magic0,
		Magic1:     h.Magic1,
		FileSize:   h.FileSize,
		Reserved:   h.Reserved,
		DataOffset: h.DataOffset,
		InfoSize:   h.HeaderSize,
		Width:      h.Width,
		Height:     h.Height,
		Planes:     h.Planes,
		ColorCount: h.ColorCount,
	}
}

func fromRaw(r format.Header) Header {
	return Header{
		Magic0:     r.Magic0,
		Magic1:     r.Magic1,
		FileSize:   r.FileSize,
		Reserved:   r.Reserved,
		DataOffset: r.DataOffset,
		HeaderSize: r.InfoSize,
		Width:      r.Width,
		Height:     r.Height,
		Planes:     r.Planes,
		ColorCount: r.ColorCount,
	}
}
