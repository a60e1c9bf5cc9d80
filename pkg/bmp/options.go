package bmp

// Options controls header decoding.
type Options struct {
	// Strict rejects signatures other than BM, BA, CI, CP, IC and PT with
	// *InvalidMagicError. When false any two leading bytes are accepted.
	Strict bool
}
