package biofaster

import (
	"compress/bzip2"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/pierrec/lz4/v4"
)

// compression identifies a supported compressed container.
type compression int

const (
	compressionNone compression = iota
	compressionGzip
	compressionBzip2
	compressionZstd
	compressionLz4
)

// detectCompression sniffs the leading magic bytes of a stream.
func detectCompression(magic []byte) compression {
	switch {
	case len(magic) >= 2 && magic[0] == 0x1f && magic[1] == 0x8b:
		return compressionGzip
	case len(magic) >= 3 && magic[0] == 'B' && magic[1] == 'Z' && magic[2] == 'h':
		return compressionBzip2
	case len(magic) >= 4 && magic[0] == 0x28 && magic[1] == 0xb5 && magic[2] == 0x2f && magic[3] == 0xfd:
		return compressionZstd
	case len(magic) >= 4 && magic[0] == 0x04 && magic[1] == 0x22 && magic[2] == 0x4d && magic[3] == 0x18:
		return compressionLz4
	}
	return compressionNone
}

// multiReadCloser closes every closer when Close is called, returning the
// first error encountered.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openStream opens path and, when the magic bytes identify a supported
// compressed container, wraps the file with a transparent decompressor.
// "-" reads stdin uncompressed. The returned *os.File is nil when the
// stream is not file-backed.
func openStream(path string) (io.ReadCloser, *os.File, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	var magic [4]byte
	n, err := f.Read(magic[:])
	if err != nil && err != io.EOF {
		f.Close()
		return nil, nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, nil, err
	}

	switch detectCompression(magic[:n]) {
	case compressionGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr, f}}, f, nil
	case compressionBzip2:
		return &multiReadCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, f, nil
	case compressionZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		rc := dec.IOReadCloser()
		return &multiReadCloser{Reader: rc, closers: []io.Closer{rc, f}}, f, nil
	case compressionLz4:
		return &multiReadCloser{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, f, nil
	}
	return f, f, nil
}
