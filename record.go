package biofaster

// Record is a read-only view of one sequence record. The byte slices it
// exposes alias storage owned by the Reader and are valid only until the
// next call to Next; use Clone to keep a record across iterations.
type Record struct {
	id   []byte
	seq  []byte
	qual []byte
}

// ID returns the header line minus the leading marker byte.
func (r *Record) ID() []byte { return r.id }

// Sequence returns the sequence bytes with line breaks removed.
func (r *Record) Sequence() []byte { return r.seq }

// Quality returns the quality bytes for FASTQ records, nil for FASTA.
func (r *Record) Quality() []byte { return r.qual }

// NumBases returns the sequence length.
func (r *Record) NumBases() int { return len(r.seq) }

// Clone returns a copy of the record owning its own storage.
func (r *Record) Clone() *Record {
	c := &Record{
		id:  append([]byte(nil), r.id...),
		seq: append([]byte(nil), r.seq...),
	}
	if r.qual != nil {
		c.qual = append([]byte(nil), r.qual...)
	}
	return c
}
