package ambisonic

// Physical defaults
const (
	// DefaultSpeedOfSound is the speed of sound in metres per second.
	DefaultSpeedOfSound = 344.0

	// DefaultMaxDistance is the furthest source distance in metres the delay
	// buffer is sized for.
	DefaultMaxDistance = 150.0

	// DefaultRoomRadius is the radius in metres inside which directional
	// cues fade toward the omnidirectional channel.
	DefaultRoomRadius = 5.0
)

// Encoding defaults
const (
	DefaultOrder      = 1
	DefaultIs3D       = true
	DefaultSampleRate = 44100
)

// Processing constants
const (
	// processBlockSize is the number of samples rendered through the delay
	// line before the channel gains are applied.
	processBlockSize = 256
)

// Unit conversion
const (
	halfTurnDegrees = 180.0
)
