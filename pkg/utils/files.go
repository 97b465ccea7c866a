// Package utils provides helpers for hosts of the emulator.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive is empty")

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip and .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	// read the file into a byte slice
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", filename)
	}

	// try to assert the compression type from the file extension
	var decoder io.ReadCloser
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		var r *zip.Reader
		r, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			if len(r.File) == 0 {
				return nil, errors.Wrapf(ErrEmptyArchive, "loading %s", filename)
			}
			decoder, err = r.File[0].Open()
		}
	case ".7z":
		var r *sevenzip.Reader
		r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err == nil {
			if len(r.File) == 0 {
				return nil, errors.Wrapf(ErrEmptyArchive, "loading %s", filename)
			}
			decoder, err = r.File[0].Open()
		}
	default:
		// .gb, .bin, or no extension at all: return the data as is
		return data, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decompressing %s", filename)
	}
	defer decoder.Close()

	// read the decompressed data into a byte slice
	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, errors.Wrapf(err, "decompressing %s", filename)
	}

	return data, nil
}
