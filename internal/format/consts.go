// Package format houses low-level decoders for the bitmap (BMP) file header.
// The goal is to keep the parsing focused, allocation-free, and independent
// from the public API so higher-level packages can present the data in a
// more ergonomic form.
package format

var (
	// BMSignature is the two-byte signature of a Windows bitmap.
	BMSignature = [SignatureSize]byte{'B', 'M'}

	// BASignature identifies an OS/2 bitmap array.
	BASignature = [SignatureSize]byte{'B', 'A'}

	// CISignature, CPSignature, ICSignature and PTSignature identify the
	// OS/2 color icon, color pointer, icon and pointer variants.
	CISignature = [SignatureSize]byte{'C', 'I'}
	CPSignature = [SignatureSize]byte{'C', 'P'}
	ICSignature = [SignatureSize]byte{'I', 'C'}
	PTSignature = [SignatureSize]byte{'P', 'T'}
)

const (
	// HeaderSize is the size of the decoded header prefix in bytes: the
	// 14-byte file header followed by the first 16 bytes of the info header.
	HeaderSize = 30

	// SignatureSize is the number of magic bytes at the start of the file.
	SignatureSize = 2

	// Field offsets within the header prefix.
	//
	//	Offset  Size  Description
	//	------  ----  ------------------------------------------
	//	 0x00    1    Magic byte 0 ('B')
	//	 0x01    1    Magic byte 1 ('M')
	//	 0x02    4    File size in bytes
	//	 0x06    4    Reserved (zero)
	//	 0x0A    4    Offset of the pixel data
	//	 0x0E    4    Size of the info header that follows
	//	 0x12    4    Width in pixels
	//	 0x16    4    Height in pixels
	//	 0x1A    2    Color planes (one)
	//	 0x1C    2    Bits per pixel
	Magic0Offset     = 0x00
	Magic1Offset     = 0x01
	FileSizeOffset   = 0x02
	ReservedOffset   = 0x06
	DataOffsetOffset = 0x0A
	InfoSizeOffset   = 0x0E
	WidthOffset      = 0x12
	HeightOffset     = 0x16
	PlanesOffset     = 0x1A
	ColorCountOffset = 0x1C

	// KiB is the divisor used for the kilobyte convenience figure.
	KiB = 1024
)
