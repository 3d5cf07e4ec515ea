package ambisonic

// Export internals for the external test package.

// ExportedDelayBuffer returns the delay line storage of e.
func ExportedDelayBuffer[F Float](e *DistanceEncoder[F]) []F {
	return e.line.Samples()
}
