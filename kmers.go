package biofaster

import "fmt"

// Kmer is a packed 2-bit DNA k-mer representation.
type Kmer uint64

// MaxKmerSize is the maximum K (bases) that can be represented in a Kmer.
const MaxKmerSize = 32

// KmerScheme fixes a value of K and precomputes the rolling mask, so that
// scanning loops can work with multiple values of K without recomputing it.
type KmerScheme struct {
	k    int
	mask Kmer
}

// NewKmerScheme returns a scheme for k-mers of the given size. It returns
// an error if k cannot be packed into a Kmer (k > MaxKmerSize).
func NewKmerScheme(k int) (*KmerScheme, error) {
	if k <= 0 || k > MaxKmerSize {
		return nil, fmt.Errorf("kmer size k=%d out of range (1-%d)", k, MaxKmerSize)
	}
	return &KmerScheme{
		k:    k,
		mask: Kmer(1)<<(uint(k)*2) - 1,
	}, nil
}

// K returns the base length of the k-mers.
func (s *KmerScheme) K() int { return s.k }

// Space returns the total number of distinct k-mers representable.
func (s *KmerScheme) Space() uint64 { return 1 + uint64(s.mask) }

// Append shifts the k-mer left by one base, dropping the left-most, and
// packs the nucleotide onto the right. Ambiguity codes pack as 'A', the
// same policy a 2-bit encoding forces everywhere.
func (s *KmerScheme) Append(k *Kmer, nuc byte) {
	*k = s.mask & (*k << 2)
	switch nuc {
	case 'C', 'c':
		*k |= 1
	case 'G', 'g':
		*k |= 2
	case 'T', 't':
		*k |= 3
	}
}

// Scan slides a window over the record's sequence and calls fn once per
// k-mer position, left to right. Records shorter than K produce no calls.
func (s *KmerScheme) Scan(rec *Record, fn func(Kmer)) {
	seq := rec.Sequence()
	if len(seq) < s.k {
		return
	}
	var k Kmer
	for i := 0; i < s.k-1; i++ {
		s.Append(&k, seq[i])
	}
	for _, nuc := range seq[s.k-1:] {
		s.Append(&k, nuc)
		fn(k)
	}
}

// String unpacks a k-mer back into lowercase bases.
func (s *KmerScheme) String(k Kmer) string {
	out := make([]byte, s.k)
	for i := range out {
		switch (k >> (uint(s.k-1-i) * 2)) & 3 {
		case 0:
			out[i] = 'a'
		case 1:
			out[i] = 'c'
		case 2:
			out[i] = 'g'
		case 3:
			out[i] = 't'
		}
	}
	return string(out)
}
