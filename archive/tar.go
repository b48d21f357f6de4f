package archive

import (
	"archive/tar"
	"errors"
	"io"
	"path"
)

// WalkTar may be passed a decompressed reader instead of an explicit file
func WalkTar(file io.Reader, walkFunc WalkFunc) error {
	tr := tar.NewReader(file)

	for {
		header, err := tr.Next()

		switch {
		// if no more files are found return
		case errors.Is(err, io.EOF):
			return nil

		// return any other error
		case err != nil:
			return err

		case header == nil:
			continue
		}

		// file contents are skipped by the next call to tr.Next
		err = walkFunc(cleanPath(header.Name), header.FileInfo(), nil)
		if err != nil {
			return err
		}
	}
}

// cleanPath normalizes archive entry names like "./dir/" to "dir".
func cleanPath(name string) string {
	p := path.Clean("/" + name)
	if p == "/" {
		return "."
	}
	return p[1:]
}
