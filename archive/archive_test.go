package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

type entry struct {
	name string
	mode fs.FileMode
}

var entries = []entry{
	{"./bin/", fs.ModeDir | 0o755},
	{"./bin/tool", 0o750},
	{"./etc/config", 0o640},
}

var want = map[string]fs.FileMode{
	"bin":        fs.ModeDir | 0o755,
	"bin/tool":   0o750,
	"etc/config": 0o640,
}

func writeTar(t *testing.T, w io.Writer) {
	t.Helper()
	tw := tar.NewWriter(w)
	for _, e := range entries {
		hdr := &tar.Header{
			Name:     e.name,
			Mode:     int64(e.mode.Perm()),
			Typeflag: tar.TypeReg,
			Size:     int64(len(e.name)),
		}
		if e.mode.IsDir() {
			hdr.Typeflag = tar.TypeDir
			hdr.Size = 0
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if !e.mode.IsDir() {
			_, err := tw.Write([]byte(e.name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
}

func writeZip(t *testing.T, w io.Writer) {
	t.Helper()
	zw := zip.NewWriter(w)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate}
		hdr.SetMode(e.mode)
		fw, err := zw.CreateHeader(hdr)
		require.NoError(t, err)
		if !e.mode.IsDir() {
			_, err = fw.Write([]byte(e.name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
}

func compressed(newWriter func(io.Writer) (io.WriteCloser, error)) func(*testing.T, io.Writer) {
	return func(t *testing.T, w io.Writer) {
		t.Helper()
		cw, err := newWriter(w)
		require.NoError(t, err)
		writeTar(t, cw)
		require.NoError(t, cw.Close())
	}
}

func collect(t *testing.T, path string) map[string]fs.FileMode {
	t.Helper()
	got := make(map[string]fs.FileMode)
	err := Walk(path, func(path string, info fs.FileInfo, err error) error {
		require.NoError(t, err)
		got[path] = info.Mode() & (fs.ModeDir | fs.ModePerm)
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestWalkArchives(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		write func(*testing.T, io.Writer)
	}{
		{"test.tar", writeTar},
		{"test.zip", writeZip},
		{"test.tgz", compressed(func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriter(w), nil
		})},
		{"test.tar.xz", compressed(func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		})},
		{"test.tar.zst", compressed(func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w)
		})},
		{"test.tar.lz4", compressed(func(w io.Writer) (io.WriteCloser, error) {
			return lz4.NewWriter(w), nil
		})},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tc.write(t, &buf)

			path := filepath.Join(t.TempDir(), tc.name)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
			require.True(t, IsSupported(path))
			require.Equal(t, want, collect(t, path))
		})
	}
}

func TestWalkDirectory(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin", "tool"), nil, 0o600))
	// chmod explicitly, the umask may strip bits on creation
	require.NoError(t, os.Chmod(filepath.Join(root, "bin"), 0o755))
	require.NoError(t, os.Chmod(filepath.Join(root, "bin", "tool"), 0o750))

	require.True(t, IsSupported(root))
	require.Equal(t, map[string]fs.FileMode{
		"bin":      fs.ModeDir | 0o755,
		"bin/tool": 0o750,
	}, collect(t, root))
}

func TestWalkUnsupported(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
	require.False(t, IsSupported(path))
	require.Error(t, Walk(path, func(string, fs.FileInfo, error) error { return nil }))
}

func TestCleanPath(t *testing.T) {
	t.Parallel()
	require.Equal(t, "bin", cleanPath("./bin/"))
	require.Equal(t, "a/b", cleanPath("/a//b"))
	require.Equal(t, "x", cleanPath("../x"))
	require.Equal(t, ".", cleanPath("./"))
}
