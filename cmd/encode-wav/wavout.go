package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// Frames interleaved per write
	writeChunkFrames = 65536

	// WAV format tag for integer PCM
	wavFormatPCM = 1
)

// writeBFormatWAV writes planar rows as an interleaved PCM WAV file.
func writeBFormatWAV(path string, rows [][]float64, sampleRate, bitDepth int) (err error) {
	if len(rows) == 0 {
		return fmt.Errorf("no channels to write")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	channels := len(rows)
	encoder := wav.NewEncoder(f, sampleRate, bitDepth, channels, wavFormatPCM)

	maxVal := getMaxValue(bitDepth)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, min(writeChunkFrames, len(rows[0]))*channels),
		SourceBitDepth: bitDepth,
	}

	frames := len(rows[0])
	for off := 0; off < frames; off += writeChunkFrames {
		n := min(writeChunkFrames, frames-off)
		buf.Data = buf.Data[:n*channels]
		interleaveInto(rows, off, n, buf.Data, maxVal)
		if err := encoder.Write(buf); err != nil {
			return fmt.Errorf("failed to write audio data: %w", err)
		}
	}

	// Close finalises the RIFF header sizes
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return nil
}

// interleaveInto converts frames [off, off+n) of planar rows into dst,
// clamping to [-1, 1] before scaling to integer PCM.
func interleaveInto(rows [][]float64, off, n int, dst []int, maxVal float64) {
	channels := len(rows)
	for i := range n {
		base := i * channels
		for ch, row := range rows {
			sample := row[off+i]
			if sample > 1.0 {
				sample = 1.0
			} else if sample < -1.0 {
				sample = -1.0
			}
			dst[base+ch] = int(sample * maxVal)
		}
	}
}
