package anomaly

// Severity normalizes a raw scorer output into a 0-100 rank, where 100 is the
// most suspicious member of the batch. Lower raw scores mean stronger anomaly
// signal, so the normalized position is inverted. When the batch carries no
// discriminating signal (all scores equal) the neutral fallback is returned.
func Severity(score float64, all []float64, neutral int) int {
	if len(all) == 0 {
		return neutral
	}
	min, max := all[0], all[0]
	for _, s := range all[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	if max == min {
		return neutral
	}
	return int(100 - (score-min)/(max-min)*100)
}
