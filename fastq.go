package biofaster

import "io"

// stepFastqSequence accumulates sequence lines for the current FASTQ record
// until the '+' separator line. FASTQ sequences are conventionally a single
// line but multi-line input is tolerated and concatenated. End of input
// before the separator is a truncated record.
func (r *Reader) stepFastqSequence() {
	line, err := r.buf.peekLine()
	if err == io.EOF {
		r.err = lineError(r.line, ErrTruncatedRecord)
		return
	}
	if err != nil {
		r.err = err
		return
	}
	if len(line) > 0 && line[0] == '+' {
		r.state = stateSeparator
		return
	}
	r.rec.seq = append(r.rec.seq, trimCR(line)...)
	r.dropLine(line)
}

// stepSeparator consumes the '+' line. Its remainder is conventionally
// empty or repeats the id; either way it is ignored.
func (r *Reader) stepSeparator() {
	line, err := r.buf.peekLine()
	if err != nil {
		if err == io.EOF {
			err = lineError(r.line, ErrTruncatedRecord)
		}
		r.err = err
		return
	}
	r.dropLine(line)
	r.state = stateQuality
}

// stepQuality accumulates quality lines until their length matches the
// sequence length. Termination is length-driven, never marker-driven:
// quality strings may legally contain '@' or '+' bytes, so the next header
// cannot be recognized until the count is satisfied. Overshooting the
// sequence length or hitting end of input short of it fails the record.
// Reports whether a record was emitted.
func (r *Reader) stepQuality() bool {
	if len(r.qualBuf) == len(r.rec.seq) {
		r.state = stateHeader
		r.emit()
		return true
	}
	line, err := r.buf.peekLine()
	if err == io.EOF {
		r.err = lineError(r.line, ErrTruncatedRecord)
		return false
	}
	if err != nil {
		r.err = err
		return false
	}
	r.qualBuf = append(r.qualBuf, trimCR(line)...)
	if len(r.qualBuf) > len(r.rec.seq) {
		r.err = lineError(r.line, ErrQualityLength)
		return false
	}
	r.dropLine(line)
	return false
}
