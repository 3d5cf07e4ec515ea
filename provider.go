package ambisonic

import (
	"fmt"

	"github.com/tphakala/go-ambisonic/internal/harmonics"
)

// CoefficientProvider supplies the directional part of an encoding: a
// per-channel gain vector for the current source position. Channel 0 is the
// omnidirectional W channel.
type CoefficientProvider interface {
	// Configure sets the order and dimensionality.
	Configure(order int, is3D bool, sampleRate int) error

	// Refresh recomputes the coefficients from the current position.
	Refresh()

	// Position returns the current source position.
	Position() Position

	// SetPosition moves the source. Coefficients are not updated until Refresh.
	SetPosition(pos Position)

	// Coefficients returns the coefficient vector. The slice is owned by
	// the provider and must not be modified.
	Coefficients() []float64

	// ChannelCount returns the length of the coefficient vector.
	ChannelCount() int
}

// DirectionalEncoder is the plain direction-only encoder. It produces
// Furse-Malham weighted coefficients for orders 0 through 3 and ignores
// the source distance.
type DirectionalEncoder struct {
	order      int
	is3D       bool
	sampleRate int
	position   Position
	gain       float64
	coeff      []float64
}

var _ CoefficientProvider = (*DirectionalEncoder)(nil)

// NewDirectionalEncoder creates an unconfigured encoder with unity gain.
func NewDirectionalEncoder() *DirectionalEncoder {
	return &DirectionalEncoder{gain: 1}
}

// Configure sets the order and dimensionality and recomputes the
// coefficients. sampleRate is recorded but does not affect directional
// encoding.
func (d *DirectionalEncoder) Configure(order int, is3D bool, sampleRate int) error {
	if err := harmonics.ValidateOrder(order); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if sampleRate < 0 {
		return fmt.Errorf("%w: sample rate must not be negative, got %d", ErrInvalidConfig, sampleRate)
	}

	d.order = order
	d.is3D = is3D
	d.sampleRate = sampleRate
	d.coeff = make([]float64, harmonics.ChannelCount(order, is3D))
	d.Refresh()

	return nil
}

// Refresh recomputes the coefficients from the current position and gain.
func (d *DirectionalEncoder) Refresh() {
	if d.coeff == nil {
		return
	}
	harmonics.Encode(d.coeff, d.order, d.is3D, d.position.Azimuth, d.position.Elevation)
	for i := range d.coeff {
		d.coeff[i] *= d.gain
	}
}

// Position returns the current source position.
func (d *DirectionalEncoder) Position() Position { return d.position }

// SetPosition moves the source.
func (d *DirectionalEncoder) SetPosition(pos Position) { d.position = pos }

// Gain returns the source gain applied to every coefficient.
func (d *DirectionalEncoder) Gain() float64 { return d.gain }

// SetGain sets the source gain. It takes effect on the next Refresh.
func (d *DirectionalEncoder) SetGain(gain float64) { d.gain = gain }

// Coefficients returns the current coefficient vector.
func (d *DirectionalEncoder) Coefficients() []float64 { return d.coeff }

// ChannelCount returns the number of output channels.
func (d *DirectionalEncoder) ChannelCount() int { return len(d.coeff) }

// Order returns the configured Ambisonic order.
func (d *DirectionalEncoder) Order() int { return d.order }

// Is3D reports whether height channels are encoded.
func (d *DirectionalEncoder) Is3D() bool { return d.is3D }

// SampleRate returns the sample rate passed to Configure.
func (d *DirectionalEncoder) SampleRate() int { return d.sampleRate }

// ChannelNames returns the FuMa letter of each output channel, in order.
func (d *DirectionalEncoder) ChannelNames() []string {
	layout := harmonics.Layout(d.order, d.is3D)
	names := make([]string, len(layout))
	for i, ch := range layout {
		names[i] = ch.String()
	}
	return names
}
