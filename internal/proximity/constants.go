package proximity

const (
	// Both crossfade gains equal 1/halfDivisor at the room radius.
	halfDivisor = 2.0

	// Added before truncation to round to the nearest sample.
	roundingOffset = 0.5

	// Largest delay whose whole part converts to int with an exact fraction.
	maxDelaySamples = 1 << 53
)
