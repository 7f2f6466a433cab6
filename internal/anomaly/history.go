package anomaly

import (
	"fmt"
	"sort"
)

// AnalyzeWithHistory runs the base pipeline over the current batch and then
// re-examines it against the customer's prior record set. History smaller
// than the configured minimum is silently ignored as too thin a comparison
// basis. A record already flagged by the base pass is never flagged twice.
func (d *Detector) AnalyzeWithHistory(records, history []Record) *Result {
	res := d.Analyze(records)
	if len(history) < d.historyMinRecords {
		return res
	}

	values := Values(history)
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	hs := HistoryStats{
		Mean:   mean(values),
		Median: quantile(sorted, 0.5),
		Max:    sorted[len(sorted)-1],
		Min:    sorted[0],
	}

	flagged := make(map[string]bool, len(res.Anomalies))
	for _, a := range res.Anomalies {
		flagged[identifierKey(a.ID)] = true
	}

	for _, rec := range records {
		value := float64(rec.Value)
		if value <= hs.Max*d.historyFactor {
			continue
		}
		if flagged[identifierKey(rec.ID)] {
			continue
		}
		res.Anomalies = append(res.Anomalies, Anomaly{
			ID:         rec.ID,
			Vehicle:    rec.Vehicle,
			Chassis:    rec.Chassis,
			Value:      value,
			Type:       TypeOutOfRange,
			Severity:   d.historySeverity,
			Suggestion: suggestHistory(value, hs.Max, d.historyFactor),
			Expected:   hs.Mean,
		})
		flagged[identifierKey(rec.ID)] = true
	}

	res.History = &hs
	res.TotalAnomalies = len(res.Anomalies)
	if res.Total > 0 {
		res.Percentage = round2(float64(res.TotalAnomalies) / float64(res.Total) * 100)
	}
	return res
}

// identifierKey compares opaque record identifiers by their printed form, so
// that a numeric 7 and a string "7" coming from the same feed still match.
func identifierKey(id any) string {
	return fmt.Sprint(id)
}
