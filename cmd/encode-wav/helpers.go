package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

const (
	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// go-mp3 always decodes to 16-bit little-endian stereo
	mp3Channels       = 2
	mp3BytesPerSample = 2
	mp3FullScale      = 32768.0
)

// monoInput holds a decoded input file downmixed to mono.
type monoInput struct {
	samples  []float64
	rate     int
	channels int
}

// decodeInput opens path and decodes it according to its extension.
func decodeInput(path string) (*monoInput, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".ogg", ".oga":
	default:
		return nil, fmt.Errorf("unsupported input format %q (supported: %s)", ext, supportedFormats)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var in *monoInput
	switch ext {
	case ".wav":
		in, err = decodeWAV(f)
	case ".mp3":
		in, err = decodeMP3(f)
	default:
		in, err = decodeVorbis(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if in.rate <= 0 {
		return nil, fmt.Errorf("%s: invalid sample rate %d", path, in.rate)
	}

	return in, nil
}

// decodeWAV reads a PCM WAV stream.
func decodeWAV(r io.ReadSeeker) (*monoInput, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}

	invMaxVal := 1 / getMaxValue(int(decoder.BitDepth))
	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) * invMaxVal
	}

	return &monoInput{
		samples:  downmix(samples, channels),
		rate:     buf.Format.SampleRate,
		channels: channels,
	}, nil
}

// decodeMP3 reads an MPEG-1/2 Layer III stream.
func decodeMP3(r io.Reader) (*monoInput, error) {
	decoder, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("invalid MP3 file: %w", err)
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	samples := make([]float64, len(raw)/mp3BytesPerSample)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[i*mp3BytesPerSample:]))
		samples[i] = float64(v) / mp3FullScale
	}

	return &monoInput{
		samples:  downmix(samples, mp3Channels),
		rate:     decoder.SampleRate(),
		channels: mp3Channels,
	}, nil
}

// decodeVorbis reads an Ogg Vorbis stream.
func decodeVorbis(r io.Reader) (*monoInput, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("invalid Ogg Vorbis file: %w", err)
	}

	if format.Channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", format.Channels)
	}

	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}

	return &monoInput{
		samples:  downmix(samples, format.Channels),
		rate:     format.SampleRate,
		channels: format.Channels,
	}, nil
}

// downmix averages interleaved frames to mono. A trailing partial frame is
// dropped.
func downmix(interleaved []float64, channels int) []float64 {
	if channels == 1 {
		return interleaved
	}

	frames := len(interleaved) / channels
	mono := make([]float64, frames)
	scale := 1 / float64(channels)
	for i := range frames {
		var sum float64
		for _, v := range interleaved[i*channels : (i+1)*channels] {
			sum += v
		}
		mono[i] = sum * scale
	}
	return mono
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// validateBitDepth accepts the PCM depths the WAV writer supports.
func validateBitDepth(bits int) error {
	switch bits {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return nil
	default:
		return fmt.Errorf("unsupported bit depth %d (use 16, 24 or 32)", bits)
	}
}
