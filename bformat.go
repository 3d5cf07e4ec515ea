package ambisonic

import "fmt"

// BFormat is a planar multichannel buffer addressed [channel][sample].
type BFormat[F Float] struct {
	rows    [][]F
	samples int
}

// NewBFormat allocates a zeroed buffer of channels rows, samples long each.
func NewBFormat[F Float](channels, samples int) (*BFormat[F], error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channels must be at least 1", ErrInvalidConfig)
	}

	if samples < 0 {
		return nil, fmt.Errorf("%w: sample count must not be negative", ErrInvalidConfig)
	}

	// One backing array keeps the rows contiguous.
	backing := make([]F, channels*samples)
	rows := make([][]F, channels)
	for c := range rows {
		rows[c] = backing[c*samples : (c+1)*samples : (c+1)*samples]
	}

	return &BFormat[F]{rows: rows, samples: samples}, nil
}

// Channels returns the number of rows.
func (b *BFormat[F]) Channels() int { return len(b.rows) }

// Samples returns the length of each row.
func (b *BFormat[F]) Samples() int { return b.samples }

// Channel returns row c.
func (b *BFormat[F]) Channel(c int) []F { return b.rows[c] }

// Rows returns all rows, suitable for DistanceEncoder.Process.
func (b *BFormat[F]) Rows() [][]F { return b.rows }

// Clear zeroes every sample.
func (b *BFormat[F]) Clear() {
	for _, row := range b.rows {
		clear(row)
	}
}

// Slice returns a view of samples [from, to) of every row. The view shares
// storage with b.
func (b *BFormat[F]) Slice(from, to int) [][]F {
	out := make([][]F, len(b.rows))
	for c, row := range b.rows {
		out[c] = row[from:to]
	}
	return out
}
