// Command encode-wav encodes a mono recording into a B-format WAV file,
// moving the source along a straight path while simulating distance.
//
// Usage:
//
//	encode-wav -az 30 -dist 12 input.wav output.wav
//	encode-wav -order 3 -dist 40 -dist-end 1 -tail voice.mp3 flyby.wav
//	encode-wav -2d -az -90 -az-end 90 -radius 3 loop.ogg pan.wav
//
// Multichannel inputs are averaged to mono. Output channels follow the FuMa
// ordering (W X Y Z ... or W X Y U V P Q for -2d).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	ambisonic "github.com/tphakala/go-ambisonic"
)

const (
	// CLI defaults
	defaultOrder     = 1
	defaultBlockSize = 512
	defaultBitDepth  = 24
	defaultPeak      = 0.98
	minRequiredArgs  = 2

	// Flag names shared with resolveEnd
	distanceFlag  = "dist"
	azimuthFlag   = "az"
	elevationFlag = "el"
	endSuffix     = "-end"

	supportedFormats = ".wav, .mp3, .ogg"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	order := flag.Int("order", defaultOrder, "Ambisonic order (0-3)")
	flat := flag.Bool("2d", false, "Horizontal-only encoding")
	radius := flag.Float64("radius", ambisonic.DefaultRoomRadius, "Room radius in metres")
	speed := flag.Float64("c", ambisonic.DefaultSpeedOfSound, "Speed of sound in m/s")
	maxDist := flag.Float64("max-dist", ambisonic.DefaultMaxDistance, "Maximum source distance in metres")
	az := flag.Float64(azimuthFlag, 0, "Start azimuth in degrees (anticlockwise from front)")
	el := flag.Float64(elevationFlag, 0, "Start elevation in degrees")
	dist := flag.Float64(distanceFlag, 1, "Start distance in metres")
	azEnd := flag.Float64(azimuthFlag+endSuffix, 0, "End azimuth in degrees (default: start)")
	elEnd := flag.Float64(elevationFlag+endSuffix, 0, "End elevation in degrees (default: start)")
	distEnd := flag.Float64(distanceFlag+endSuffix, 0, "End distance in metres (default: start)")
	block := flag.Int("block", defaultBlockSize, "Position update interval in samples")
	bits := flag.Int("bits", defaultBitDepth, "Output bit depth: 16, 24 or 32")
	normalize := flag.Bool("normalize", false, "Scale output so the loudest channel peaks at 0.98")
	tail := flag.Bool("tail", false, "Append silence so the delayed signal is not cut off")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input(%s) output.wav\n\n", os.Args[0], supportedFormats)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -az 30 -dist 12 in.wav out.wav               # Static source\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -dist 40 -dist-end 1 -tail in.mp3 out.wav    # Approaching source\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	start := ambisonic.Degrees(*az, *el, *dist)
	end := resolveEnd(start, ambisonic.Degrees(*azEnd, *elEnd, *distEnd), set)

	opts := encodeOptions{
		config: ambisonic.Config{
			Order:      *order,
			Is3D:       !*flat,
			RoomRadius: *radius,
			Physics:    ambisonic.Physics{SpeedOfSound: *speed, MaxDistance: *maxDist},
		},
		start:     start,
		end:       end,
		blockSize: *block,
		tail:      *tail,
	}

	if err := validateBitDepth(*bits); err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	begin := time.Now()

	input, err := decodeInput(inputPath)
	if err != nil {
		return err
	}
	opts.config.SampleRate = input.rate

	if *verbose {
		log.Printf("Input: %s (%d Hz, %d channels, %d samples)", inputPath, input.rate, input.channels, len(input.samples))
		log.Printf("Output: %s (%d-bit)", outputPath, *bits)
		log.Printf("Order: %d, 3D: %v, room radius: %.2f m", *order, !*flat, *radius)
		log.Printf("Path: az %.1f° el %.1f° %.2f m -> az %.1f° el %.1f° %.2f m",
			*az, *el, start.Distance, toDegrees(end.Azimuth), toDegrees(end.Elevation), end.Distance)
	}

	result, err := encodeTrajectory(input.samples, opts)
	if err != nil {
		return err
	}

	peak := peakLevel(result.rows)
	if *normalize {
		normalizePeak(result.rows, defaultPeak)
	} else if peak > 1 {
		log.Printf("Warning: output peaks at %.2f and will clip; use -normalize", peak)
	}

	if err := writeBFormatWAV(outputPath, result.rows, input.rate, *bits); err != nil {
		return err
	}

	elapsed := time.Since(begin)
	duration := float64(len(result.rows[0])) / float64(input.rate)

	fmt.Printf("Encoded %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d channels (%s), %d Hz, %d-bit\n",
		len(result.rows), strings.Join(result.channelNames, ""), input.rate, *bits)
	fmt.Printf("  Duration: %.2fs, peak %.3f, Speed: %.1fx realtime\n",
		duration, peak, duration/elapsed.Seconds())

	return nil
}

// resolveEnd fills end coordinates that were not given on the command line
// from the start position.
func resolveEnd(start, end ambisonic.Position, set map[string]bool) ambisonic.Position {
	if !set[azimuthFlag+endSuffix] {
		end.Azimuth = start.Azimuth
	}
	if !set[elevationFlag+endSuffix] {
		end.Elevation = start.Elevation
	}
	if !set[distanceFlag+endSuffix] {
		end.Distance = start.Distance
	}
	return end
}
