// Package harmonics computes Furse-Malham (FuMa) weighted spherical harmonic
// encoding coefficients for orders 0 through 3.
//
// Channel ordering follows the FuMa convention:
//
//	3D: W X Y Z R S T U V K L M N O P Q
//	2D: W X Y U V P Q
//
// Azimuth is measured anticlockwise from the front, elevation upward from the
// horizontal plane, both in radians.
package harmonics

import (
	"fmt"
	"math"
)

// Channel identifies one FuMa channel.
type Channel int

// FuMa channels in 3D order.
const (
	W Channel = iota
	X
	Y
	Z
	R
	S
	T
	U
	V
	K
	L
	M
	N
	O
	P
	Q
)

var channelNames = [...]string{"W", "X", "Y", "Z", "R", "S", "T", "U", "V", "K", "L", "M", "N", "O", "P", "Q"}

// String returns the single-letter FuMa name.
func (c Channel) String() string {
	if c < 0 || int(c) >= len(channelNames) {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// horizontal lists the channels kept by a 2D encoding, in output order.
var horizontal = [...]Channel{W, X, Y, U, V, P, Q}

// ChannelCount returns the number of channels for an order and dimensionality.
func ChannelCount(order int, is3D bool) int {
	if is3D {
		return (order + 1) * (order + 1)
	}
	return 2*order + 1
}

// Layout returns the FuMa channels of an encoding in output order.
func Layout(order int, is3D bool) []Channel {
	n := ChannelCount(order, is3D)
	layout := make([]Channel, n)
	for i := range layout {
		if is3D {
			layout[i] = Channel(i)
		} else {
			layout[i] = horizontal[i]
		}
	}
	return layout
}

// ValidateOrder reports whether order is supported.
func ValidateOrder(order int) error {
	if order < MinOrder || order > MaxOrder {
		return fmt.Errorf("ambisonic order must be %d-%d, got %d", MinOrder, MaxOrder, order)
	}
	return nil
}

// Encode writes the coefficients for a source at (azimuth, elevation) into
// dst, which must hold ChannelCount(order, is3D) values.
func Encode(dst []float64, order int, is3D bool, azimuth, elevation float64) {
	var full [16]float64
	encode3D(&full, order, azimuth, elevation)

	if is3D {
		copy(dst, full[:ChannelCount(order, true)])
		return
	}
	for i := range ChannelCount(order, false) {
		dst[i] = full[horizontal[i]]
	}
}

func encode3D(c *[16]float64, order int, azimuth, elevation float64) {
	sinA, cosA := math.Sincos(azimuth)
	sinE, cosE := math.Sincos(elevation)

	c[W] = wWeight
	if order < 1 {
		return
	}

	c[X] = cosA * cosE
	c[Y] = sinA * cosE
	c[Z] = sinE
	if order < 2 {
		return
	}

	sin2A, cos2A := math.Sincos(2 * azimuth)
	sin2E := math.Sin(2 * elevation)
	sinE2 := sinE * sinE
	cosE2 := cosE * cosE

	c[R] = rScale*sinE2 - rOffset
	c[S] = cosA * sin2E
	c[T] = sinA * sin2E
	c[U] = cos2A * cosE2
	c[V] = sin2A * cosE2
	if order < 3 {
		return
	}

	sin3A, cos3A := math.Sincos(3 * azimuth)
	cosE3 := cosE2 * cosE

	c[K] = kScale * sinE * (fiveSin*sinE2 - threeSin)
	c[L] = lmWeight * cosA * cosE * (fiveSin*sinE2 - 1)
	c[M] = lmWeight * sinA * cosE * (fiveSin*sinE2 - 1)
	c[N] = noWeight * cos2A * sinE * cosE2
	c[O] = noWeight * sin2A * sinE * cosE2
	c[P] = cos3A * cosE3
	c[Q] = sin3A * cosE3
}
