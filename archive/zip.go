package archive

import (
	"archive/zip"
	"io"

	"github.com/bodgit/sevenzip"
)

func WalkZip(file io.ReaderAt, fileSize int64, walkFunc WalkFunc) error {
	zr, err := zip.NewReader(file, fileSize)
	if err != nil {
		return err
	}

	for _, f := range zr.File {
		err = walkFunc(cleanPath(f.Name), f.FileInfo(), nil)
		if err != nil {
			return err
		}
	}
	return nil
}

func Walk7Zip(file io.ReaderAt, fileSize int64, walkFunc WalkFunc) error {
	zr, err := sevenzip.NewReader(file, fileSize)
	if err != nil {
		return err
	}

	for _, f := range zr.File {
		err = walkFunc(cleanPath(f.Name), f.FileInfo(), nil)
		if err != nil {
			return err
		}
	}
	return nil
}
