// Package proximity models the distance cues of a point source: propagation
// delay at a finite speed of sound, and the near-field crossfade between the
// omnidirectional (interior) and directional (exterior) components.
package proximity

import "math"

// Gains returns the interior and exterior gains for a source at distance d
// from the listener, given the room radius r.
//
// Outside the room radius both components fall off as r/(2d). Inside it the
// interior gain rises linearly to 1 at the centre while the exterior gain
// falls to 0. Both branches evaluate to 0.5 at d == r. The pair is not
// energy normalised.
func Gains(d, r float64) (interior, exterior float64) {
	if d >= r {
		interior = r / d / halfDivisor
		return interior, interior
	}

	ratio := d / r
	interior = (halfDivisor - ratio) / halfDivisor
	exterior = ratio / halfDivisor
	return interior, exterior
}

// Delay converts distance d into a propagation delay, split into whole and
// fractional samples. The whole part is truncated toward zero.
//
// A delay that is not finite or exceeds maxDelaySamples in magnitude has no
// meaningful integer part and yields (0, 0).
func Delay(d, sampleRate, speedOfSound float64) (whole int, frac float64) {
	return split(d / speedOfSound * sampleRate)
}

// RoundedDelay is Delay with the sample count offset by half a sample before
// truncation. The sign of d is not altered.
func RoundedDelay(d, sampleRate, speedOfSound float64) (whole int, frac float64) {
	return split(d/speedOfSound*sampleRate + roundingOffset)
}

func split(samples float64) (whole int, frac float64) {
	if math.IsNaN(samples) || math.Abs(samples) > maxDelaySamples {
		return 0, 0
	}
	whole = int(samples)
	return whole, samples - float64(whole)
}

// Capacity returns the delay buffer length in samples needed to cover
// maxDistance metres, rounded to the nearest sample.
func Capacity(maxDistance, speedOfSound, sampleRate float64) int {
	samples := maxDistance / speedOfSound * sampleRate
	if math.IsNaN(samples) || math.IsInf(samples, 0) || samples < 0 {
		return 0
	}
	return int(samples + roundingOffset)
}
