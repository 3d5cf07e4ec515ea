package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ambisonic "github.com/tphakala/go-ambisonic"
)

func TestDecodeInput_FileNotFound(t *testing.T) {
	_, err := decodeInput("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestDecodeInput_Unsupported(t *testing.T) {
	_, err := decodeInput("song.flac")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestDecodeInput_InvalidFiles(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"invalid.wav", "invalid.mp3", "invalid.ogg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, name)
			require.NoError(t, os.WriteFile(path, []byte("not an audio file"), 0o644))

			_, err := decodeInput(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid")
		})
	}
}

func TestWAVRoundTrip_Mono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	row := []float64{0, 0.5, -0.5, 0.25, 1, -1}

	require.NoError(t, writeBFormatWAV(path, [][]float64{row}, 22050, bitsPerSample16))

	in, err := decodeInput(path)
	require.NoError(t, err)
	assert.Equal(t, 22050, in.rate)
	assert.Equal(t, 1, in.channels)
	require.Len(t, in.samples, len(row))
	for i := range row {
		assert.InDelta(t, row[i], in.samples[i], 1/maxInt16, "sample %d", i)
	}
}

func TestWAVRoundTrip_StereoDownmix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	left := []float64{0.5, 0.2, -0.4}
	right := []float64{0.1, 0.2, 0.4}

	require.NoError(t, writeBFormatWAV(path, [][]float64{left, right}, 48000, bitsPerSample24))

	in, err := decodeInput(path)
	require.NoError(t, err)
	assert.Equal(t, 2, in.channels)
	require.Len(t, in.samples, 3)
	for i := range left {
		assert.InDelta(t, (left[i]+right[i])/2, in.samples[i], 2/maxInt24, "sample %d", i)
	}
}

func TestWriteBFormatWAV_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bformat.wav")
	rows := [][]float64{
		{0.1, 0.2},
		{0.3, 0.4},
		{-0.5, -0.6},
		{2, -2}, // clamped
	}

	require.NoError(t, writeBFormatWAV(path, rows, 48000, bitsPerSample16))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	require.True(t, decoder.IsValidFile())
	buf, err := decoder.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, 4, buf.Format.NumChannels)
	assert.Equal(t, 48000, buf.Format.SampleRate)
	assert.Equal(t, []int{3276, 9830, -16383, 32767, 6553, 13106, -19660, -32767}, buf.Data)
}

func TestWriteBFormatWAV_NoChannels(t *testing.T) {
	err := writeBFormatWAV(filepath.Join(t.TempDir(), "x.wav"), nil, 48000, bitsPerSample16)
	assert.Error(t, err)
}

func TestDownmix(t *testing.T) {
	mono := []float64{1, 2, 3}
	assert.Equal(t, mono, downmix(mono, 1))

	assert.Equal(t, []float64{1.5, 3.5}, downmix([]float64{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, []float64{2}, downmix([]float64{1, 2, 3}, 3))
}

func TestValidateBitDepth(t *testing.T) {
	for _, bits := range []int{16, 24, 32} {
		assert.NoError(t, validateBitDepth(bits))
	}
	assert.Error(t, validateBitDepth(8))
	assert.Error(t, validateBitDepth(20))
}

func TestGetMaxValue(t *testing.T) {
	assert.InDelta(t, maxInt16, getMaxValue(16), 0)
	assert.InDelta(t, maxInt24, getMaxValue(24), 0)
	assert.InDelta(t, maxInt32, getMaxValue(32), 0)
	assert.InDelta(t, maxInt16, getMaxValue(12), 0)
}

func TestResolveEnd(t *testing.T) {
	start := ambisonic.Degrees(10, 20, 3)
	end := ambisonic.Degrees(40, 50, 9)

	assert.Equal(t, start, resolveEnd(start, end, map[string]bool{}))
	assert.Equal(t, end, resolveEnd(start, end, map[string]bool{"az-end": true, "el-end": true, "dist-end": true}))

	got := resolveEnd(start, end, map[string]bool{"dist-end": true})
	assert.Equal(t, ambisonic.Position{Azimuth: start.Azimuth, Elevation: start.Elevation, Distance: 9}, got)
}

func TestEncodeTrajectory_StaticMatchesEncodeMono(t *testing.T) {
	const sampleRate = 48000
	samples := make([]float64, 3000)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate)
	}

	cfg := ambisonic.Config{Order: 2, Is3D: true, SampleRate: sampleRate}
	pos := ambisonic.Degrees(-35, 12, 7.5)

	got, err := encodeTrajectory(samples, encodeOptions{config: cfg, start: pos, end: pos, blockSize: 100})
	require.NoError(t, err)

	want, err := ambisonic.EncodeMono(samples, pos, &cfg)
	require.NoError(t, err)

	assert.Equal(t, want, got.rows)
	assert.Equal(t, []string{"W", "X", "Y", "Z", "R", "S", "T", "U", "V"}, got.channelNames)
}

func TestEncodeTrajectory_ApproachingSourceGetsLouder(t *testing.T) {
	const sampleRate = 8000
	samples := make([]float64, 8000)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 200 * float64(i) / sampleRate)
	}

	res, err := encodeTrajectory(samples, encodeOptions{
		config:    ambisonic.Config{Order: 1, Is3D: true, SampleRate: sampleRate},
		start:     ambisonic.Degrees(0, 0, 40),
		end:       ambisonic.Degrees(0, 0, 6),
		blockSize: 64,
	})
	require.NoError(t, err)

	early := peakLevel([][]float64{res.rows[1][1000:2000]})
	late := peakLevel([][]float64{res.rows[1][7000:8000]})
	assert.Greater(t, late, early)
}

func TestPathFraction(t *testing.T) {
	tests := []struct {
		off, n, block int
		want          float64
	}{
		{0, 1000, 100, 0},
		{450, 1000, 150, 0.5},
		{900, 1000, 100, 1},
		{900, 901, 100, 1},
		{0, 50, 100, 0},
		{0, 0, 100, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, pathFraction(tt.off, tt.n, tt.block), 1e-12,
			"off=%d n=%d block=%d", tt.off, tt.n, tt.block)
	}
}

func TestEncodeTrajectory_Tail(t *testing.T) {
	samples := make([]float64, 100)
	res, err := encodeTrajectory(samples, encodeOptions{
		config:    ambisonic.Config{Order: 1, Is3D: false, SampleRate: 1000},
		start:     ambisonic.Degrees(0, 0, 3.44),
		end:       ambisonic.Degrees(0, 0, 6.88),
		blockSize: 16,
		tail:      true,
	})
	require.NoError(t, err)

	require.Len(t, res.rows, 3)
	assert.Len(t, res.rows[0], 100+20+tailMargin)
}

func TestEncodeTrajectory_Errors(t *testing.T) {
	_, err := encodeTrajectory([]float64{1}, encodeOptions{
		config:    ambisonic.Config{Order: 1, SampleRate: 48000},
		blockSize: 0,
	})
	assert.Error(t, err)

	_, err = encodeTrajectory([]float64{1}, encodeOptions{
		config:    ambisonic.Config{Order: 7, SampleRate: 48000},
		blockSize: 64,
	})
	assert.ErrorIs(t, err, ambisonic.ErrInvalidConfig)
}

func TestNormalizePeak(t *testing.T) {
	rows := [][]float64{{0.1, -0.4}, {0.2, 0.3}}
	assert.InDelta(t, 0.4, peakLevel(rows), 0)

	normalizePeak(rows, 0.8)
	assert.InDelta(t, 0.8, peakLevel(rows), 1e-12)
	assert.InDelta(t, 0.2, rows[0][0], 1e-12)

	silent := [][]float64{{0, 0}}
	normalizePeak(silent, 0.8)
	assert.Equal(t, [][]float64{{0, 0}}, silent)
	assert.Zero(t, peakLevel([][]float64{{}}))
}
