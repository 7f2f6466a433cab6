package anomaly

// Classify assigns a categorical anomaly type to a flagged value using the
// batch statistics. Pure function; values sitting exactly on a fence are not
// treated as high or low.
func Classify(value float64, s Stats) Type {
	switch {
	case value > s.Q3+1.5*s.IQR:
		if value > s.Mean*2 {
			return TypeVeryHigh
		}
		return TypeHigh
	case value < s.Q1-1.5*s.IQR:
		if value < s.Mean*0.5 {
			return TypeVeryLow
		}
		return TypeLow
	default:
		// Flagged by the scorer without breaching a univariate fence.
		return TypeOutlier
	}
}
