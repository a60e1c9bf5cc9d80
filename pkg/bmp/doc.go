/*
Package bmp decodes the fixed 30-byte prefix of a bitmap image file.

The prefix covers the 14-byte BITMAPFILEHEADER and the leading fields of
the info header that follows it. All multi-byte fields are little-endian.

# Quick Start

Decode a header from bytes already in memory:

	hdr, err := bmp.Decode(data[:bmp.HeaderSize])
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(hdr.Width, hdr.Height, hdr.ColorCount)

Read and decode the header of a file on disk:

	hdr, err := bmp.ReadFile("test.bmp", bmp.Options{Strict: true})

# Error Handling

Short input returns *TruncatedInputError, over-long input given to Decode
returns *LengthError, and strict mode rejects unknown signatures with
*InvalidMagicError. Each unwraps to a sentinel for use with errors.Is:

	if errors.Is(err, bmp.ErrTruncated) {
	    // file is shorter than the header
	}

Decoding never returns a partially filled Header.
*/
package bmp
