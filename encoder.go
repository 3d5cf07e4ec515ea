package ambisonic

import (
	"fmt"
	"math"

	"github.com/tphakala/go-ambisonic/internal/delayline"
	"github.com/tphakala/go-ambisonic/internal/proximity"
	"github.com/tphakala/go-ambisonic/internal/simdops"
)

// Float is the type constraint for supported sample types.
type Float interface {
	float32 | float64
}

// DelayState describes the delay line cursors of a DistanceEncoder.
type DelayState struct {
	// Capacity of the delay buffer in samples.
	Capacity int

	// In is the write cursor.
	In int

	// OutA and OutB are the interpolation read cursors; OutB = (OutA+1) mod Capacity.
	OutA int
	OutB int

	// Delay is the whole-sample part of the propagation delay.
	Delay int

	// Frac is the interpolation weight applied to OutB.
	Frac float64
}

// DistanceEncoder encodes a single mono point source into B-format while
// simulating propagation delay and near-field proximity.
//
// The directional coefficients come from a CoefficientProvider. The encoder
// adds a fractional delay line driven by the source distance and splits the
// delayed signal between the omnidirectional channel (interior gain) and the
// directional channels (exterior gain).
//
// A DistanceEncoder is not safe for concurrent use. Position updates made by
// another goroutine must be synchronised before Refresh is called.
type DistanceEncoder[F Float] struct {
	provider   CoefficientProvider
	physics    Physics
	roomRadius float64
	sampleRate int

	line delayline.Line[F]
	tap  delayline.Tap[F]

	delay    int
	frac     float64
	interior float64
	exterior float64

	coeff   []F
	scratch []F
	ops     *simdops.Ops[F]
}

// NewDistanceEncoder wraps provider with distance simulation. The encoder
// must be configured before use.
func NewDistanceEncoder[F Float](provider CoefficientProvider, physics Physics) (*DistanceEncoder[F], error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: coefficient provider is nil", ErrInvalidConfig)
	}

	if err := physics.Validate(); err != nil {
		return nil, err
	}

	return &DistanceEncoder[F]{
		provider:   provider,
		physics:    physics,
		roomRadius: DefaultRoomRadius,
		ops:        simdops.For[F](),
	}, nil
}

// Configure sets the order, dimensionality and sample rate, allocating a new
// delay buffer sized for Physics.MaxDistance. The buffer is cleared and the
// delay cursors are placed by Reset. Gains keep their previous values until
// the next Refresh.
//
// On error the encoder must not be used until a later Configure succeeds.
func (e *DistanceEncoder[F]) Configure(order int, is3D bool, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, sampleRate)
	}

	capacity := proximity.Capacity(e.physics.MaxDistance, e.physics.SpeedOfSound, float64(sampleRate))

	var line delayline.Line[F]
	if err := line.Configure(capacity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := e.provider.Configure(order, is3D, sampleRate); err != nil {
		return fmt.Errorf("directional setup failed: %w", err)
	}

	channels := e.provider.ChannelCount()
	if channels < 1 {
		return fmt.Errorf("%w: provider reports %d channels", ErrInvalidConfig, channels)
	}

	e.line = line
	e.sampleRate = sampleRate
	e.coeff = make([]F, channels)
	e.scratch = make([]F, processBlockSize)
	e.loadCoefficients()
	e.Reset()

	return nil
}

// Reset clears the delay buffer, rewinds the write cursor and places the
// read cursors from the current distance, rounded to the nearest sample.
// The distance is used as given, so a negative distance yields a negative
// delay. Gains are not recomputed.
func (e *DistanceEncoder[F]) Reset() {
	e.line.Clear()

	delay, frac := proximity.RoundedDelay(e.provider.Position().Distance, float64(e.sampleRate), e.physics.SpeedOfSound)
	e.setDelay(delay, frac)
}

// Refresh recomputes the directional coefficients, delay and gains from
// the current position. It must be called after the position changes and
// before the next Process. The magnitude of the distance is used.
func (e *DistanceEncoder[F]) Refresh() {
	e.provider.Refresh()
	e.loadCoefficients()

	distance := math.Abs(e.provider.Position().Distance)

	delay, frac := proximity.Delay(distance, float64(e.sampleRate), e.physics.SpeedOfSound)
	e.setDelay(delay, frac)

	e.interior, e.exterior = proximity.Gains(distance, e.roomRadius)
}

// Process encodes input into output, one frame per input sample.
// output must hold ChannelCount rows, each at least len(input) long.
// Process does not allocate.
func (e *DistanceEncoder[F]) Process(input []F, output [][]F) {
	omni := F(e.interior) * e.coeff[0]
	directional := F(e.exterior)

	for off := 0; off < len(input); off += len(e.scratch) {
		n := min(len(e.scratch), len(input)-off)
		v := e.scratch[:n]
		e.line.Render(input[off:off+n], v, &e.tap)

		e.ops.Scale(output[0][off:off+n], v, omni)
		for c := 1; c < len(e.coeff); c++ {
			e.ops.Scale(output[c][off:off+n], v, directional*e.coeff[c])
		}
	}
}

// RoomRadius returns the proximity transition radius in metres.
func (e *DistanceEncoder[F]) RoomRadius() float64 {
	return e.roomRadius
}

// SetRoomRadius sets the proximity transition radius in metres. It takes
// effect on the next Refresh.
func (e *DistanceEncoder[F]) SetRoomRadius(radius float64) error {
	if !positiveFinite(radius) {
		return fmt.Errorf("%w: room radius must be positive, got %v", ErrInvalidConfig, radius)
	}
	e.roomRadius = radius
	return nil
}

// Position returns the source position held by the provider.
func (e *DistanceEncoder[F]) Position() Position {
	return e.provider.Position()
}

// SetPosition moves the source. Call Refresh before the next Process.
func (e *DistanceEncoder[F]) SetPosition(pos Position) {
	e.provider.SetPosition(pos)
}

// Provider returns the wrapped coefficient provider.
func (e *DistanceEncoder[F]) Provider() CoefficientProvider {
	return e.provider
}

// ChannelCount returns the number of output channels.
func (e *DistanceEncoder[F]) ChannelCount() int {
	return len(e.coeff)
}

// SampleRate returns the configured sample rate in Hz.
func (e *DistanceEncoder[F]) SampleRate() int {
	return e.sampleRate
}

// Physics returns the physical constants the encoder was built with.
func (e *DistanceEncoder[F]) Physics() Physics {
	return e.physics
}

// Gains returns the current interior (omnidirectional) and exterior
// (directional) gains.
func (e *DistanceEncoder[F]) Gains() (interior, exterior float64) {
	return e.interior, e.exterior
}

// DelayState returns the current delay line cursors.
func (e *DistanceEncoder[F]) DelayState() DelayState {
	return DelayState{
		Capacity: e.line.Capacity(),
		In:       e.line.WriteCursor(),
		OutA:     e.tap.OutA,
		OutB:     e.tap.OutB,
		Delay:    e.delay,
		Frac:     e.frac,
	}
}

func (e *DistanceEncoder[F]) setDelay(delay int, frac float64) {
	e.delay = delay
	e.frac = frac
	e.tap.Set(e.line.WriteCursor(), delay, F(frac), e.line.Capacity())
}

func (e *DistanceEncoder[F]) loadCoefficients() {
	for i, c := range e.provider.Coefficients()[:len(e.coeff)] {
		e.coeff[i] = F(c)
	}
}
