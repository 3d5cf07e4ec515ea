package ambisonic

import "fmt"

// New creates a distance encoder over a DirectionalEncoder, configured and
// refreshed for a source at the origin.
func New[F Float](config *Config) (*DistanceEncoder[F], error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := config.withDefaults()

	enc, err := NewDistanceEncoder[F](NewDirectionalEncoder(), cfg.Physics)
	if err != nil {
		return nil, err
	}

	if err := enc.SetRoomRadius(cfg.RoomRadius); err != nil {
		return nil, err
	}

	if err := enc.Configure(cfg.Order, cfg.Is3D, cfg.SampleRate); err != nil {
		return nil, err
	}

	enc.Refresh()

	return enc, nil
}

// NewDefault creates a first order 3D encoder at DefaultSampleRate.
func NewDefault[F Float]() (*DistanceEncoder[F], error) {
	return New[F](&Config{
		Order:      DefaultOrder,
		Is3D:       DefaultIs3D,
		SampleRate: DefaultSampleRate,
	})
}

// EncodeMono encodes a static source at pos in one shot. The returned
// channels are freshly allocated, each len(input) long.
func EncodeMono(input []float64, pos Position, config *Config) ([][]float64, error) {
	enc, err := New[float64](config)
	if err != nil {
		return nil, err
	}

	enc.SetPosition(pos)
	enc.Refresh()

	out, err := NewBFormat[float64](enc.ChannelCount(), len(input))
	if err != nil {
		return nil, err
	}

	enc.Process(input, out.Rows())

	return out.Rows(), nil
}
