package biofaster

import "io"

// stepFastaSequence accumulates sequence lines for the current FASTA record
// until the next '>' header or end of input, either of which completes the
// record. Blank lines contribute zero bytes. A header with no following
// sequence lines yields an empty record rather than an error; FASTA permits
// zero-length sequences. Reports whether a record was emitted.
func (r *Reader) stepFastaSequence() bool {
	line, err := r.buf.peekLine()
	if err == io.EOF {
		r.state = stateHeader
		r.emit()
		return true
	}
	if err != nil {
		r.err = err
		return false
	}
	if len(line) > 0 && line[0] == '>' {
		r.state = stateHeader
		r.emit()
		return true
	}
	r.rec.seq = append(r.rec.seq, trimCR(line)...)
	r.dropLine(line)
	return false
}
