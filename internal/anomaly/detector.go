package anomaly

import "fmt"

// minRecords is the smallest batch the scorer can build a meaningful
// partition over.
const minRecords = 3

// WarnInsufficientRecords is surfaced when a batch is too small to analyze.
const WarnInsufficientRecords = "Número insuficiente de cargas para análise (mínimo 3)"

// Detector runs the scoring pipeline over one batch of records. A Detector is
// immutable after construction and safe for concurrent use.
type Detector struct {
	scorer          Scorer
	neutralSeverity int

	historyMinRecords int
	historyFactor     float64
	historySeverity   int
}

// Option customizes a Detector.
type Option func(*Detector)

// WithScorer swaps the outlier scorer, e.g. for a deterministic test stub.
func WithScorer(s Scorer) Option {
	return func(d *Detector) {
		if s != nil {
			d.scorer = s
		}
	}
}

// WithNeutralSeverity sets the severity used when a batch's raw scores carry
// no discriminating signal.
func WithNeutralSeverity(severity int) Option {
	return func(d *Detector) { d.neutralSeverity = severity }
}

// WithHistoryThreshold sets the minimum history size and the multiple of the
// historical maximum past which a current value is flagged.
func WithHistoryThreshold(minHistory int, factor float64) Option {
	return func(d *Detector) {
		if minHistory > 0 {
			d.historyMinRecords = minHistory
		}
		if factor > 0 {
			d.historyFactor = factor
		}
	}
}

// WithHistorySeverity sets the fixed severity of history-only anomalies.
func WithHistorySeverity(severity int) Option {
	return func(d *Detector) { d.historySeverity = severity }
}

// New builds a Detector with production defaults: the robust deviation scorer,
// neutral severity 50, and history comparison at 2x the historical maximum
// once at least 10 prior records exist.
func New(opts ...Option) *Detector {
	d := &Detector{
		scorer:            NewRobustScorer(DefaultScorerConfig()),
		neutralSeverity:   50,
		historyMinRecords: 10,
		historyFactor:     2,
		historySeverity:   90,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Analyze runs the full pipeline over one batch. It is total: scorer and
// extraction failures come back inside the Result, never as a Go error.
func (d *Detector) Analyze(records []Record) *Result {
	res := &Result{
		Anomalies: []Anomaly{},
		Total:     len(records),
	}
	if len(records) < minRecords {
		res.Warning = WarnInsufficientRecords
		return res
	}

	values := Values(records)
	stats := Summarize(values)

	outliers, scores, err := d.scorer.Score(values)
	if err == nil && (len(outliers) != len(records) || len(scores) != len(records)) {
		err = fmt.Errorf("scorer returned %d labels and %d scores for %d records",
			len(outliers), len(scores), len(records))
	}
	if err != nil {
		res.Err = fmt.Sprintf("falha ao pontuar cargas: %v", err)
		return res
	}

	for i, rec := range records {
		if !outliers[i] {
			continue
		}
		value := float64(rec.Value)
		t := Classify(value, stats)
		res.Anomalies = append(res.Anomalies, Anomaly{
			ID:         rec.ID,
			Vehicle:    rec.Vehicle,
			Chassis:    rec.Chassis,
			Value:      value,
			Type:       t,
			Severity:   Severity(scores[i], scores, d.neutralSeverity),
			Score:      scores[i],
			Suggestion: Suggest(value, stats, t),
			Expected:   stats.Median,
		})
	}

	res.Stats = &stats
	res.TotalAnomalies = len(res.Anomalies)
	res.Percentage = round2(float64(len(res.Anomalies)) / float64(len(records)) * 100)
	return res
}
