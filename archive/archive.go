package archive

import (
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

var supportedExtensions = map[string]bool{
	".gz":   true,
	".tgz":  true,
	".xz":   true,
	".txz":  true,
	".zst":  true,
	".tzst": true,
	".lz4":  true,
	".tlz4": true,
	".tar":  true,
	".cpio": true,
	".zip":  true,
	".7z":   true,
	".rpm":  true,
}

// WalkFunc is called for every entry of a directory tree or archive.
// Only the entry metadata is passed, file contents are never read.
type WalkFunc func(path string, info fs.FileInfo, err error) error

func IsSupported(path string) bool {
	_, found := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	if found {
		return true
	}
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// Walk walks the directory or archive at path. Paths passed to walkFunc are
// slash separated and relative to the root of the directory or archive.
func Walk(path string, walkFunc WalkFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return walkDir(path, walkFunc)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".tgz":
		return WalkTarGzip(f, walkFunc)
	case ".xz", ".txz":
		return WalkTarXz(f, walkFunc)
	case ".zst", ".tzst":
		return WalkTarZstd(f, walkFunc)
	case ".lz4", ".tlz4":
		return WalkTarLz4(f, walkFunc)
	case ".tar":
		return WalkTar(f, walkFunc)
	case ".cpio":
		return WalkCpio(f, walkFunc)
	case ".zip":
		return WalkZip(f, stat.Size(), walkFunc)
	case ".7z":
		return Walk7Zip(f, stat.Size(), walkFunc)
	case ".rpm":
		return WalkRPM(f, walkFunc)
	}
	return fmt.Errorf("unknown file extension: %s", ext)
}

func walkDir(root string, walkFunc WalkFunc) error {
	return filepath.Walk(root, func(path string, info fs.FileInfo, err error) error {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			// the root itself is not an entry
			return err
		}
		return walkFunc(filepath.ToSlash(rel), info, err)
	})
}

func WalkTarGzip(file io.Reader, walkFunc WalkFunc) error {
	gr, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer gr.Close()
	return WalkTar(gr, walkFunc)
}

func WalkTarXz(file io.Reader, walkFunc WalkFunc) error {
	xr, err := xz.NewReader(file)
	if err != nil {
		return err
	}
	return WalkTar(xr, walkFunc)
}

func WalkTarZstd(file io.Reader, walkFunc WalkFunc) error {
	zr, err := zstd.NewReader(file)
	if err != nil {
		return err
	}
	defer zr.Close()
	return WalkTar(zr, walkFunc)
}

func WalkTarLz4(file io.Reader, walkFunc WalkFunc) error {
	return WalkTar(lz4.NewReader(file), walkFunc)
}
