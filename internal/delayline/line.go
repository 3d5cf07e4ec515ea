// Package delayline implements a fixed-capacity circular delay line with
// two-tap linear interpolation for fractional sample delays.
package delayline

import (
	"errors"
	"fmt"
)

// Float is the type constraint for supported sample types.
type Float interface {
	float32 | float64
}

// ErrZeroCapacity is returned when a delay line is configured without storage.
var ErrZeroCapacity = errors.New("delay line capacity must be positive")

// Line is a circular sample buffer with a single write cursor.
// Capacity is fixed between calls to Configure.
type Line[F Float] struct {
	buf []F
	in  int
}

// Configure allocates a new zeroed buffer of capacity samples and rewinds
// the write cursor. The previous buffer is replaced, never resized.
func (l *Line[F]) Configure(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrZeroCapacity, capacity)
	}

	l.buf = make([]F, capacity)
	l.in = 0

	return nil
}

// Capacity returns the buffer length in samples.
func (l *Line[F]) Capacity() int {
	return len(l.buf)
}

// Samples returns the backing buffer. Callers must not modify it.
func (l *Line[F]) Samples() []F {
	return l.buf
}

// WriteCursor returns the index the next Write stores to.
func (l *Line[F]) WriteCursor() int {
	return l.in
}

// Clear zero-fills the buffer and rewinds the write cursor.
func (l *Line[F]) Clear() {
	clear(l.buf)
	l.in = 0
}

// Write stores sample at the write cursor and advances it.
func (l *Line[F]) Write(sample F) {
	l.buf[l.in] = sample
	l.in++
	if l.in == len(l.buf) {
		l.in = 0
	}
}

// ReadInterpolated returns (1-frac)*buf[outA] + frac*buf[outB].
func (l *Line[F]) ReadInterpolated(outA, outB int, frac F) F {
	return l.buf[outA]*(1-frac) + l.buf[outB]*frac
}

// Render pushes every sample of src through the line, writing the
// interpolated tap output to dst and advancing tap after each sample.
// dst must be at least len(src) long.
func (l *Line[F]) Render(src, dst []F, tap *Tap[F]) {
	capacity := len(l.buf)
	dst = dst[:len(src)]

	for i, sample := range src {
		l.Write(sample)
		dst[i] = l.ReadInterpolated(tap.OutA, tap.OutB, tap.Frac)
		tap.Advance(capacity)
	}
}
