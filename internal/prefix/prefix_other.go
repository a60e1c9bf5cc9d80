//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package prefix

import (
	"errors"
	"io"
	"os"
)

// readPrefix falls back to os.File where pread is not wired up.
func readPrefix(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make([]byte, n)
	got, err := io.ReadFull(f, out)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return out[:got], nil
}
