package seed

import (
	"compress/gzip"
	"errors"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
)

// Inherits an io.ReadCloser (such as gzip.Reader), and takes
// an additional io.Closer to close when Close() is called.
// Used to close the underlying file along with the decompressor.
type dualCloser struct {
	io.ReadCloser
	inner io.Closer
}

func (c *dualCloser) Close() error {
	return errors.Join(
		c.ReadCloser.Close(),
		c.inner.Close(),
	)
}

// open returns a reader over the decompressed contents of name. The caller
// is responsible for closing it.
func open(fs afero.Fs, name string, comp compression) (io.ReadCloser, error) {
	file, err := fs.Open(name)
	if err != nil {
		return nil, err
	}

	var r io.ReadCloser

	switch comp {
	case compressionGzip:
		r, err = gzip.NewReader(file)
	case compressionZstd:
		var decoder *zstd.Decoder
		decoder, err = zstd.NewReader(file)

		if err == nil {
			r = decoder.IOReadCloser()
		}
	default:
		return file, nil
	}

	if err != nil {
		file.Close()
		return nil, err
	}

	return &dualCloser{
		ReadCloser: r,
		inner:      file,
	}, nil
}
