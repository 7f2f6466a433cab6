package reports

import "math"

// Summarize tallies delivery counts per status and value totals. Statuses
// outside the known set only contribute to the overall count and value sum.
func Summarize(deliveries []Delivery) Summary {
	s := Summary{Total: len(deliveries)}
	for _, d := range deliveries {
		s.TotalValue += d.Value
		switch d.Status {
		case StatusDelivered:
			s.Delivered++
			s.DeliveredValue += d.Value
		case StatusPending:
			s.Pending++
		case StatusCanceled:
			s.Canceled++
		}
	}
	s.TotalValue = round2(s.TotalValue)
	s.DeliveredValue = round2(s.DeliveredValue)
	if s.Total > 0 {
		s.SuccessRate = round2(float64(s.Delivered) / float64(s.Total) * 100)
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
