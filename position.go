package ambisonic

import "math"

// Position locates a point source relative to the listener.
type Position struct {
	// Azimuth in radians, anticlockwise from the front.
	Azimuth float64

	// Elevation in radians, upward from the horizontal plane.
	Elevation float64

	// Distance in metres. Distances whose delay does not fit in 2^53 samples,
	// or that are not finite, are encoded with no delay.
	Distance float64
}

// Lerp returns the position a fraction t of the way from p to q.
// Each coordinate is interpolated independently.
func (p Position) Lerp(q Position, t float64) Position {
	return Position{
		Azimuth:   p.Azimuth + (q.Azimuth-p.Azimuth)*t,
		Elevation: p.Elevation + (q.Elevation-p.Elevation)*t,
		Distance:  p.Distance + (q.Distance-p.Distance)*t,
	}
}

// Degrees builds a Position from angles in degrees.
func Degrees(azimuth, elevation, distance float64) Position {
	return Position{
		Azimuth:   azimuth * math.Pi / halfTurnDegrees,
		Elevation: elevation * math.Pi / halfTurnDegrees,
		Distance:  distance,
	}
}
