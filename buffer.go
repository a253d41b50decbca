package biofaster

import (
	"bytes"
	"io"
)

// DefaultChunkSize is the number of bytes requested from the byte source per
// fill. Smaller values are useful in tests to force record boundaries onto
// chunk boundaries.
const DefaultChunkSize = 64 * 1024

// buffer pulls chunks from a byte source into a growable window and hands
// out lines without copying. The window holds bytes [r:w); fill compacts the
// consumed prefix away and doubles the window when a single line outgrows it.
type buffer struct {
	src   io.Reader
	chunk int
	data  []byte
	r, w  int
	err   error // deferred source error, usually io.EOF
}

func newBuffer(src io.Reader, chunk int) *buffer {
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	return &buffer{
		src:   src,
		chunk: chunk,
		data:  make([]byte, chunk),
	}
}

// fill makes room and reads up to one chunk from the source. The source
// error, if any, is parked in b.err and surfaced once the window drains.
func (b *buffer) fill() {
	if b.r > 0 {
		copy(b.data, b.data[b.r:b.w])
		b.w -= b.r
		b.r = 0
	}
	if b.w == len(b.data) {
		grown := make([]byte, 2*len(b.data))
		copy(grown, b.data[:b.w])
		b.data = grown
	}
	n := b.chunk
	if n > len(b.data)-b.w {
		n = len(b.data) - b.w
	}
	m, err := b.src.Read(b.data[b.w : b.w+n])
	b.w += m
	if err != nil {
		b.err = err
	}
}

// ensure guarantees at least n unconsumed bytes are available at the cursor.
// It returns false only when the source is exhausted with fewer than n bytes
// left; the remainder (if any) stays available.
func (b *buffer) ensure(n int) bool {
	for b.w-b.r < n {
		if b.err != nil {
			return false
		}
		b.fill()
	}
	return true
}

// peekByte reports the byte at the cursor without consuming it.
func (b *buffer) peekByte() (byte, bool) {
	if !b.ensure(1) {
		return 0, false
	}
	return b.data[b.r], true
}

// consume advances the cursor by n bytes.
func (b *buffer) consume(n int) {
	b.r += n
	if b.r > b.w {
		b.r = b.w
	}
}

// peekLine returns the next line at the cursor, not including the newline,
// without consuming it. At end of input it returns the final unterminated
// line if one is pending, then io.EOF. Any other source error propagates
// verbatim. The returned slice is only valid until the next fill.
func (b *buffer) peekLine() ([]byte, error) {
	for {
		if i := bytes.IndexByte(b.data[b.r:b.w], '\n'); i >= 0 {
			return b.data[b.r : b.r+i], nil
		}
		if b.err != nil {
			if b.r == b.w || b.err != io.EOF {
				return nil, b.err
			}
			return b.data[b.r:b.w], nil
		}
		b.fill()
	}
}

// dropLine consumes a line previously returned by peekLine along with its
// terminator, if present. The line may have had a trailing carriage return
// trimmed already; the leftover CR is consumed with the newline.
func (b *buffer) dropLine(line []byte) {
	b.consume(len(line))
	if b.r < b.w && b.data[b.r] == '\r' {
		b.consume(1)
	}
	if b.r < b.w && b.data[b.r] == '\n' {
		b.consume(1)
	}
}
