package biofaster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFastqSingleRecord(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGT\n+\n!!!!\n"))
	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Equal(t, []parsed{{id: "r1", seq: "ACGT", qual: "!!!!"}}, recs)
	require.Equal(t, FormatFASTQ, r.Format())
	require.Equal(t, uint64(1), r.Records())
	require.Equal(t, uint64(4), r.Bases())
}

func TestFastqTruncatedQuality(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGT\n+\n!!\n"))
	recs, err := collect(t, r)
	require.ErrorIs(t, err, ErrTruncatedRecord)
	require.Empty(t, recs)
	require.Zero(t, r.Records())
}

func TestFastqQualityOvershoot(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGT\n+\n!!!!!!\n"))
	_, err := collect(t, r)
	require.ErrorIs(t, err, ErrQualityLength)
	require.ErrorIs(t, err, ErrTruncatedRecord)
}

func TestFastqMultilineSequenceAndQuality(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGT\nGGGG\n+\n!!!!\n####\n@r2\nTT\n+\nII\n"))
	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Equal(t, []parsed{
		{id: "r1", seq: "ACGTGGGG", qual: "!!!!####"},
		{id: "r2", seq: "TT", qual: "II"},
	}, recs)
}

// Quality strings may contain '@' and '+', including at line starts, so
// quality termination has to be length-driven rather than marker-driven.
func TestFastqQualityContainsMarkerBytes(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGTAC\n+\n@+@+@+\n@r2\nGG\n+\n++\n"))
	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Equal(t, []parsed{
		{id: "r1", seq: "ACGTAC", qual: "@+@+@+"},
		{id: "r2", seq: "GG", qual: "++"},
	}, recs)
}

func TestFastqSeparatorRepeatsID(t *testing.T) {
	r := NewReader(strings.NewReader("@r1 extra\nACGT\n+r1 extra\nIIII\n"))
	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Equal(t, []parsed{{id: "r1 extra", seq: "ACGT", qual: "IIII"}}, recs)
}

func TestFastqMalformedSecondHeader(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGT\n+\n!!!!\nJUNK\n"))
	recs, err := collect(t, r)
	require.ErrorIs(t, err, ErrMalformedHeader)
	require.Len(t, recs, 1)
	require.Equal(t, uint64(1), r.Records())
}

func TestFastqTruncation(t *testing.T) {
	for _, in := range []string{
		"@r1\n",           // header with no body
		"@r1\nACGT\n",     // no separator
		"@r1\nACGT\n+\n",  // no quality
		"@r1\nACGT\n+r1",  // stream ends on the separator line
	} {
		r := NewReader(strings.NewReader(in))
		recs, err := collect(t, r)
		require.ErrorIs(t, err, ErrTruncatedRecord, "input %q", in)
		require.Empty(t, recs, "input %q", in)
	}
}

func TestFastqZeroLengthRead(t *testing.T) {
	r := NewReader(strings.NewReader("@empty\n+\n"))
	recs, err := collect(t, r)
	require.NoError(t, err)
	require.Equal(t, []parsed{{id: "empty", seq: "", qual: ""}}, recs)
	require.Zero(t, r.Bases())
}

func TestFastqCountsPreservedOnError(t *testing.T) {
	r := NewReader(strings.NewReader("@r1\nACGT\n+\n!!!!\n@r2\nGGGG\n+\n!!\n"))
	recs, err := collect(t, r)
	require.ErrorIs(t, err, ErrTruncatedRecord)
	require.Len(t, recs, 1)
	require.Equal(t, uint64(1), r.Records())
	require.Equal(t, uint64(4), r.Bases())
}

func TestFastqQualityLengthInvariant(t *testing.T) {
	r := NewReader(strings.NewReader("@a\nACGTACGT\n+\nIIIIIIII\n@b\nAC\n+\n!!\n"))
	for r.Next() {
		rec := r.Record()
		require.Equal(t, len(rec.Sequence()), len(rec.Quality()))
	}
	require.NoError(t, r.Err())
}
