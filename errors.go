package biofaster

import (
	"errors"
	"fmt"
)

// Sentinel parse errors. Structural failures are wrapped with the line
// number at which they were detected; match with errors.Is.
var (
	// ErrUnrecognizedMarker is returned when the first meaningful byte of
	// the input is neither '>' (FASTA) nor '@' (FASTQ).
	ErrUnrecognizedMarker = errors.New("unrecognized leading marker byte")

	// ErrMalformedHeader is returned when a line expected to start a record
	// does not begin with the detected format's marker byte.
	ErrMalformedHeader = errors.New("malformed record header")

	// ErrTruncatedRecord is returned when the input ends in the middle of a
	// record, including a FASTQ quality string shorter than its sequence.
	ErrTruncatedRecord = errors.New("truncated record")

	// ErrQualityLength is returned when a FASTQ quality string overshoots
	// its sequence length. It matches ErrTruncatedRecord under errors.Is.
	ErrQualityLength = fmt.Errorf("quality length exceeds sequence length: %w", ErrTruncatedRecord)
)

// lineError ties a structural error to the input line it was detected on.
func lineError(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
