package main

import (
	"fmt"
	"math"

	ambisonic "github.com/tphakala/go-ambisonic"
	"gonum.org/v1/gonum/floats"
)

// tailMargin is added to the silence appended by -tail to cover the
// interpolation tap.
const tailMargin = 2

type encodeOptions struct {
	config    ambisonic.Config
	start     ambisonic.Position
	end       ambisonic.Position
	blockSize int
	tail      bool
}

type encodeResult struct {
	rows         [][]float64
	channelNames []string
}

// encodeTrajectory encodes samples with the source moving linearly from
// opts.start to opts.end. The position is updated once per block.
func encodeTrajectory(samples []float64, opts encodeOptions) (*encodeResult, error) {
	if opts.blockSize < 1 {
		return nil, fmt.Errorf("block size must be at least 1, got %d", opts.blockSize)
	}

	enc, err := ambisonic.New[float64](&opts.config)
	if err != nil {
		return nil, err
	}

	if opts.tail {
		samples = padTail(samples, opts, enc.Physics().SpeedOfSound, float64(enc.SampleRate()))
	}

	out, err := ambisonic.NewBFormat[float64](enc.ChannelCount(), len(samples))
	if err != nil {
		return nil, err
	}

	enc.SetPosition(opts.start)
	enc.Reset()

	n := len(samples)
	for off := 0; off < n; off += opts.blockSize {
		m := min(opts.blockSize, n-off)
		enc.SetPosition(opts.start.Lerp(opts.end, pathFraction(off, n, opts.blockSize)))
		enc.Refresh()
		enc.Process(samples[off:off+m], out.Slice(off, off+m))
	}

	return &encodeResult{
		rows:         out.Rows(),
		channelNames: channelNames(enc),
	}, nil
}

// pathFraction maps the start of the block at off to its place on the path,
// so the first block sits at the start and the last block at the end.
func pathFraction(off, n, blockSize int) float64 {
	last := (n - 1) / blockSize * blockSize
	if last <= 0 {
		return 0
	}
	return float64(off) / float64(last)
}

// channelNames returns the FuMa channel letters when the encoder wraps a
// DirectionalEncoder, or channel numbers otherwise.
func channelNames(enc *ambisonic.DistanceEncoder[float64]) []string {
	if d, ok := enc.Provider().(*ambisonic.DirectionalEncoder); ok {
		return d.ChannelNames()
	}
	names := make([]string, enc.ChannelCount())
	for i := range names {
		names[i] = fmt.Sprint(i)
	}
	return names
}

// padTail appends silence long enough for the furthest point of the path to
// be heard.
func padTail(samples []float64, opts encodeOptions, speed, sampleRate float64) []float64 {
	furthest := math.Max(math.Abs(opts.start.Distance), math.Abs(opts.end.Distance))
	pad := int(math.Ceil(furthest/speed*sampleRate)) + tailMargin
	padded := make([]float64, len(samples)+pad)
	copy(padded, samples)
	return padded
}

// peakLevel returns the largest absolute sample across all rows.
func peakLevel(rows [][]float64) float64 {
	var peak float64
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		peak = math.Max(peak, floats.Norm(row, math.Inf(1)))
	}
	return peak
}

// normalizePeak scales every row so the loudest sample reaches target.
// Silent input is left unchanged.
func normalizePeak(rows [][]float64, target float64) {
	peak := peakLevel(rows)
	if peak == 0 {
		return
	}
	for _, row := range rows {
		floats.Scale(target/peak, row)
	}
}

func toDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
