//go:build linux || darwin || freebsd || netbsd || openbsd

package prefix

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// readPrefix uses pread(2) from offset zero so the descriptor's own offset
// never matters.
func readPrefix(path string, n int) ([]byte, error) {
	fd, err := openRetry(path)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	defer unix.Close(fd)

	out := make([]byte, n)
	got := 0
	for got < n {
		m, err := unix.Pread(fd, out[got:], int64(got))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, &fs.PathError{Op: "read", Path: path, Err: err}
		}
		if m == 0 {
			break // EOF
		}
		got += m
	}
	return out[:got], nil
}

func openRetry(path string) (int, error) {
	for {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err == unix.EINTR {
			continue
		}
		return fd, err
	}
}
