package ambisonic

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-ambisonic/internal/harmonics"
)

// ErrInvalidConfig indicates invalid configuration parameters.
var ErrInvalidConfig = errors.New("invalid encoder configuration")

// Physics holds the physical constants the distance model is built on.
type Physics struct {
	// SpeedOfSound in metres per second.
	SpeedOfSound float64

	// MaxDistance is the largest source distance in metres the delay line
	// can represent. It sets the delay buffer capacity.
	MaxDistance float64
}

// DefaultPhysics returns the speed of sound and maximum distance used when
// none are configured.
func DefaultPhysics() Physics {
	return Physics{
		SpeedOfSound: DefaultSpeedOfSound,
		MaxDistance:  DefaultMaxDistance,
	}
}

// Validate checks if the physical constants are usable.
func (p Physics) Validate() error {
	if !positiveFinite(p.SpeedOfSound) {
		return fmt.Errorf("%w: speed of sound must be positive, got %v", ErrInvalidConfig, p.SpeedOfSound)
	}

	if !positiveFinite(p.MaxDistance) {
		return fmt.Errorf("%w: max distance must be positive, got %v", ErrInvalidConfig, p.MaxDistance)
	}

	return nil
}

// Config holds distance encoder configuration for the convenience constructors.
type Config struct {
	// Order is the Ambisonic order (0-3).
	Order int

	// Is3D selects periphonic (full sphere) encoding. When false only the
	// horizontal channels are produced.
	Is3D bool

	// SampleRate of the input audio in Hz.
	SampleRate int

	// RoomRadius in metres. Zero selects DefaultRoomRadius.
	RoomRadius float64

	// Physics overrides the physical constants. The zero value selects
	// DefaultPhysics.
	Physics Physics
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := harmonics.ValidateOrder(c.Order); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, c.SampleRate)
	}

	if c.RoomRadius != 0 && !positiveFinite(c.RoomRadius) {
		return fmt.Errorf("%w: room radius must be positive, got %v", ErrInvalidConfig, c.RoomRadius)
	}

	if c.Physics != (Physics{}) {
		if err := c.Physics.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// withDefaults returns a copy of c with zero fields replaced by defaults.
func (c *Config) withDefaults() Config {
	out := *c
	if out.RoomRadius == 0 {
		out.RoomRadius = DefaultRoomRadius
	}
	if out.Physics == (Physics{}) {
		out.Physics = DefaultPhysics()
	}
	return out
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
