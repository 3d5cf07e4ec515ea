package ambisonic

import "errors"

// fakeProvider is a CoefficientProvider with caller-controlled coefficients.
type fakeProvider struct {
	pos       Position
	base      []float64
	coeff     []float64
	err       error
	refreshes int
	configs   int
}

func newFakeProvider(coeff ...float64) *fakeProvider {
	return &fakeProvider{base: coeff}
}

func (f *fakeProvider) Configure(order int, is3D bool, sampleRate int) error {
	f.configs++
	if f.err != nil {
		return f.err
	}
	f.coeff = append([]float64(nil), f.base...)
	return nil
}

func (f *fakeProvider) Refresh()                 { f.refreshes++ }
func (f *fakeProvider) Position() Position       { return f.pos }
func (f *fakeProvider) SetPosition(pos Position) { f.pos = pos }
func (f *fakeProvider) Coefficients() []float64  { return f.coeff }
func (f *fakeProvider) ChannelCount() int        { return len(f.coeff) }

var errProviderSetup = errors.New("provider setup failed")

// smallPhysics sizes the delay line to 10 samples at 1 kHz.
var smallPhysics = Physics{SpeedOfSound: 344, MaxDistance: 3.44}

func newTestEncoder(t interface{ Fatal(...any) }, provider CoefficientProvider, physics Physics, sampleRate int) *DistanceEncoder[float64] {
	enc, err := NewDistanceEncoder[float64](provider, physics)
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Configure(1, true, sampleRate); err != nil {
		t.Fatal(err)
	}
	return enc
}

func newRows(channels, samples int) [][]float64 {
	rows := make([][]float64, channels)
	for c := range rows {
		rows[c] = make([]float64, samples)
	}
	return rows
}
