// Package ambisonic encodes a moving point source into Ambisonic B-format
// while simulating the two cues that depend on its distance: propagation
// delay at a finite speed of sound, and the loss of directionality as the
// source approaches the listener.
//
// # Quick Start
//
// For a static source encoded in one shot:
//
//	bformat, err := ambisonic.EncodeMono(input, ambisonic.Degrees(30, 0, 12),
//	    &ambisonic.Config{Order: 1, Is3D: true, SampleRate: 48000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For a moving source processed block by block:
//
//	enc, err := ambisonic.New[float32](&ambisonic.Config{
//	    Order:      3,
//	    Is3D:       true,
//	    SampleRate: 48000,
//	    RoomRadius: 4,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := ambisonic.NewBFormat[float32](enc.ChannelCount(), blockSize)
//
//	for block := range blocks {
//	    enc.SetPosition(block.Position)
//	    enc.Refresh()
//	    enc.Process(block.Samples, out.Rows())
//	}
//
// # Distance Model
//
// The delayed signal v is written to channel 0 (W) scaled by the interior
// gain and to every other channel scaled by the exterior gain, each times
// the channel's directional coefficient. With room radius r and distance d:
//
//	d >= r: interior = exterior = r/(2d)
//	d <  r: interior = (2 - d/r)/2, exterior = (d/r)/2
//
// At the centre the source is fully omnidirectional; at the room radius both
// gains are 0.5. The gains are deliberately not energy normalised.
//
// The delay is d/c*fs samples, realised with a circular buffer and two-tap
// linear interpolation. The buffer is sized for [Physics.MaxDistance].
//
// # Channel Layout
//
// [DirectionalEncoder] produces Furse-Malham (FuMa) weighted coefficients
// for orders 0 to 3, in FuMa channel order (W X Y Z R S T U V K L M N O P Q,
// or W X Y U V P Q for horizontal-only encoding). Any [CoefficientProvider]
// can be used in its place.
//
// # Real-time Use
//
// [DistanceEncoder.Process] is allocation free and runs in time linear in
// the block length. Configure and Reset may allocate and must not run
// concurrently with Process. An encoder belongs to one goroutine; position
// updates from elsewhere must be handed over before Refresh is called.
package ambisonic
