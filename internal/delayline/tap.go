package delayline

// Tap holds the read cursors and fractional weight of an interpolated read.
// OutB always trails OutA by one slot: OutB = (OutA+1) mod capacity.
type Tap[F Float] struct {
	OutA int
	OutB int
	Frac F
}

// Set positions the tap delay samples behind the write cursor in.
// Any integer delay is accepted; the cursors are wrapped into [0, capacity).
func (t *Tap[F]) Set(in, delay int, frac F, capacity int) {
	t.OutA = wrap(in-delay+capacity, capacity)
	t.OutB = wrap(t.OutA+1, capacity)
	t.Frac = frac
}

// Advance moves both read cursors forward by one sample.
func (t *Tap[F]) Advance(capacity int) {
	t.OutA++
	if t.OutA == capacity {
		t.OutA = 0
	}
	t.OutB++
	if t.OutB == capacity {
		t.OutB = 0
	}
}

// wrap is a Euclidean modulo: the result is always in [0, n).
func wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}
