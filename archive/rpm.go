package archive

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/cavaliergopher/cpio"
	"github.com/cavaliergopher/rpm"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

func WalkRPM(file io.Reader, walkFunc WalkFunc) error {
	// Read the package headers
	pkg, err := rpm.Read(file)
	if err != nil {
		return err
	}

	// Check the archive format of the payload
	if format := pkg.PayloadFormat(); format != "cpio" {
		return fmt.Errorf("unsupported payload format: %s", format)
	}

	var payload io.Reader

	switch format := pkg.PayloadCompression(); format {
	case "xz":
		payload, err = xz.NewReader(file)
	case "lzma":
		payload, err = lzma.NewReader(file)
	case "gzip":
		payload, err = gzip.NewReader(file)
	case "zstd":
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(file)
		if err == nil {
			defer zr.Close()
		}
		payload = zr
	default:
		return fmt.Errorf("unsupported rpm compression format: %s", format)
	}
	if err != nil {
		return err
	}

	return WalkCpio(payload, walkFunc)
}

// WalkCpio walks an uncompressed cpio stream, e.g. a decompressed rpm payload.
func WalkCpio(file io.Reader, walkFunc WalkFunc) error {
	cr := cpio.NewReader(file)
	for {
		header, err := cr.Next()
		switch {
		// if no more files are found return
		case errors.Is(err, io.EOF):
			return nil

		// return any other error
		case err != nil:
			return err
		}

		err = walkFunc(cleanPath(header.Name), header.FileInfo(), nil)
		if err != nil {
			return err
		}
	}
}
