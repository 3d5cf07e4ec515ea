package harmonics

// Order limits
const (
	MinOrder = 0
	MaxOrder = 3
)

// FuMa channel weights
const (
	// wWeight scales the omnidirectional W channel by 1/sqrt(2).
	wWeight = 0.7071067811865476

	// Second order: R = 1.5*sin²E - 0.5
	rScale  = 1.5
	rOffset = 0.5

	// Third order weights
	kScale   = 0.5                // K = sinE*(5sin²E-3)/2
	lmWeight = 0.7261843774138907 // sqrt(135/256)
	noWeight = 2.598076211353316  // sqrt(27/4)
	fiveSin  = 5.0
	threeSin = 3.0
)
