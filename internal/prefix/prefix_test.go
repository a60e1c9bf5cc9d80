package prefix

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.bmp")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadPrefix(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}
	path := writeFile(t, data)

	got, err := Read(path, 30)
	require.NoError(t, err)
	require.Equal(t, data[:30], got)
}

func TestReadShortFile(t *testing.T) {
	path := writeFile(t, []byte{'B', 'M', 1, 2})

	got, err := Read(path, 30)
	require.NoError(t, err)
	require.Equal(t, []byte{'B', 'M', 1, 2}, got)
}

func TestReadEmptyFile(t *testing.T) {
	path := writeFile(t, nil)

	got, err := Read(path, 30)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadZeroBytes(t *testing.T) {
	path := writeFile(t, []byte("BM"))

	got, err := Read(path, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.bmp"), 30)
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
}

func TestReadNegativeSize(t *testing.T) {
	_, err := Read("unused", -1)
	require.ErrorIs(t, err, errNegativeSize)
}
