// Package biofaster provides a streaming sequence record reader for FASTA
// and FASTQ files, optionally compressed. It reads records one at a time
// with minimal allocation, which makes it suitable as a building block for
// tight counting and scanning loops.
//
// Example usage to tally a file:
//
//	r, err := biofaster.Open("reads.fq.gz")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//	for r.Next() {
//		rec := r.Record()
//		_ = rec.Sequence()
//	}
//	if err := r.Err(); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d\t%d\n", r.Records(), r.Bases())
package biofaster

import (
	"io"
	"os"
)

// Format is the detected input format.
type Format int

const (
	FormatUnknown Format = iota
	FormatFASTA
	FormatFASTQ
)

func (f Format) String() string {
	switch f {
	case FormatFASTA:
		return "fasta"
	case FormatFASTQ:
		return "fastq"
	}
	return "unknown"
}

// parseState enumerates the tokenizer states. Each state is handled by one
// step function so the truncation edge cases stay in one place per state.
type parseState int

const (
	stateSniff parseState = iota
	stateHeader
	stateSequence
	stateSeparator // FASTQ only
	stateQuality   // FASTQ only
	stateDone
)

// Reader streams records from a single FASTA or FASTQ input. It is a pull
// iterator in the style of bufio.Scanner: call Next until it returns false,
// then check Err. A Reader is single-consumer and must not be shared across
// goroutines; open one Reader per input instead.
type Reader struct {
	f  *os.File // nil when not file-backed
	rc io.ReadCloser

	buf    *buffer
	format Format
	state  parseState
	line   int

	rec     Record
	qualBuf []byte

	nrecords uint64
	nbases   uint64

	err    error
	closed bool
}

// Open opens the named sequence file, transparently decompressing gzip,
// bzip2, zstd and lz4 containers identified by their magic bytes. "-" reads
// from stdin.
func Open(path string) (*Reader, error) {
	rc, f, err := openStream(path)
	if err != nil {
		return nil, err
	}
	r := NewReaderSize(rc, DefaultChunkSize)
	r.rc = rc
	r.f = f
	return r, nil
}

// NewReader returns a Reader consuming src. The caller retains ownership of
// src; Close is a no-op for readers constructed this way.
func NewReader(src io.Reader) *Reader {
	return NewReaderSize(src, DefaultChunkSize)
}

// NewReaderSize is NewReader with an explicit fill chunk size. Records are
// parsed identically regardless of the chunk size; small sizes mainly serve
// tests that force records to straddle fill boundaries.
func NewReaderSize(src io.Reader, chunk int) *Reader {
	return &Reader{
		buf:   newBuffer(src, chunk),
		state: stateSniff,
		line:  1,
	}
}

// Next advances to the next record. It returns false at end of input or on
// the first error; Err distinguishes the two. The record view returned by
// Record is invalidated by the next call to Next.
func (r *Reader) Next() bool {
	if r.err != nil || r.closed {
		return false
	}
	for {
		var emitted bool
		switch r.state {
		case stateSniff:
			r.sniff()
		case stateHeader:
			r.stepHeader()
		case stateSequence:
			if r.format == FormatFASTQ {
				r.stepFastqSequence()
			} else {
				emitted = r.stepFastaSequence()
			}
		case stateSeparator:
			r.stepSeparator()
		case stateQuality:
			emitted = r.stepQuality()
		case stateDone:
			r.shutdown()
			return false
		}
		if r.err != nil {
			r.shutdown()
			return false
		}
		if emitted {
			return true
		}
	}
}

// sniff inspects the first non-whitespace byte to pick the format. An input
// with no such byte simply has no records and is not an error.
func (r *Reader) sniff() {
	for {
		c, ok := r.buf.peekByte()
		if !ok {
			if r.buf.err != io.EOF {
				r.err = r.buf.err
				return
			}
			r.state = stateDone
			return
		}
		switch c {
		case ' ', '\t', '\r':
			r.buf.consume(1)
		case '\n':
			r.buf.consume(1)
			r.line++
		case '>':
			r.format = FormatFASTA
			r.state = stateHeader
			return
		case '@':
			r.format = FormatFASTQ
			r.state = stateHeader
			return
		default:
			r.err = lineError(r.line, ErrUnrecognizedMarker)
			return
		}
	}
}

// stepHeader consumes the record header line. End of input here is the
// clean termination point; anything not starting with the format's marker
// byte is malformed. Blank lines between records are tolerated.
func (r *Reader) stepHeader() {
	line, err := r.buf.peekLine()
	if err == io.EOF {
		r.state = stateDone
		return
	}
	if err != nil {
		r.err = err
		return
	}
	line = trimCR(line)
	if len(line) == 0 {
		r.dropLine(line)
		return
	}
	if line[0] != r.marker() {
		r.err = lineError(r.line, ErrMalformedHeader)
		return
	}
	r.rec.id = append(r.rec.id[:0], line[1:]...)
	r.rec.seq = r.rec.seq[:0]
	r.rec.qual = nil
	r.qualBuf = r.qualBuf[:0]
	r.dropLine(line)
	r.state = stateSequence
}

// emit finalizes the buffered record and bumps the running totals.
func (r *Reader) emit() {
	if r.format == FormatFASTQ {
		if r.qualBuf == nil {
			r.qualBuf = []byte{}
		}
		r.rec.qual = r.qualBuf
	}
	r.nrecords++
	r.nbases += uint64(len(r.rec.seq))
}

// Record returns the current record view. It is valid until the next call
// to Next.
func (r *Reader) Record() *Record { return &r.rec }

// Format reports the detected input format. It is FormatUnknown until the
// first call to Next.
func (r *Reader) Format() Format { return r.format }

// Records returns the number of records emitted so far.
func (r *Reader) Records() uint64 { return r.nrecords }

// Bases returns the total sequence length over all records emitted so far.
func (r *Reader) Bases() uint64 { return r.nbases }

// Err returns the first error encountered while reading. It is nil after a
// clean end of input.
func (r *Reader) Err() error { return r.err }

// Progress returns the percentage progress through the underlying file
// (0.0-100.0). For compressed files this may lag due to read-ahead. It
// returns -1.0 for non-file inputs or when the position is unknown.
func (r *Reader) Progress() float64 {
	if r.f == nil {
		return -1.0
	}
	info, err := r.f.Stat()
	if err != nil || info.Size() <= 0 {
		return -1.0
	}
	pos, err := r.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1.0
	}
	return float64(pos*100.0) / float64(info.Size())
}

// Close releases the underlying file handle. It is safe to call at any
// point, including after abandoning iteration early, and is idempotent.
// Readers constructed with NewReader have nothing to close.
func (r *Reader) Close() error {
	if r.closed || r.rc == nil {
		r.closed = true
		return nil
	}
	r.closed = true
	return r.rc.Close()
}

// shutdown releases the source once iteration terminates, keeping the first
// close failure visible through Err.
func (r *Reader) shutdown() {
	if r.closed || r.rc == nil {
		r.closed = true
		return
	}
	r.closed = true
	if cerr := r.rc.Close(); cerr != nil && r.err == nil {
		r.err = cerr
	}
}

func (r *Reader) marker() byte {
	if r.format == FormatFASTQ {
		return '@'
	}
	return '>'
}

func (r *Reader) dropLine(line []byte) {
	r.buf.dropLine(line)
	r.line++
}

// trimCR strips a single trailing carriage return, for CRLF inputs.
func trimCR(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\r' {
		return line[:len(line)-1]
	}
	return line
}
