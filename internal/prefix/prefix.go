// Package prefix reads the leading bytes of a file. The file handle is
// always released before Read returns, on success and failure alike.
package prefix

import "errors"

// errNegativeSize is returned when a caller asks for a negative prefix.
var errNegativeSize = errors.New("prefix: negative size")

// Read returns up to n bytes from the start of the file at path. A file
// shorter than n yields the bytes it has and a nil error; deciding whether a
// short prefix is acceptable is left to the caller.
func Read(path string, n int) ([]byte, error) {
	if n < 0 {
		return nil, errNegativeSize
	}
	return readPrefix(path, n)
}
