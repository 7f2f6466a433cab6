package anomaly

import (
	"errors"
	"math"
	"sort"
)

// Scorer flags outliers in a one-dimensional feature vector. Both returned
// slices have the same length as the input; lower scores indicate stronger
// anomaly signal. Implementations must be deterministic for a fixed seed and
// safe for concurrent use once constructed.
type Scorer interface {
	Score(values []float64) (outliers []bool, scores []float64, err error)
}

// ScorerConfig carries the process-wide scorer settings, fixed at startup.
type ScorerConfig struct {
	// Contamination is the expected fraction of anomalous records per batch.
	Contamination float64
	// Seed drives any randomized partitioning an implementation uses.
	Seed int64
}

// DefaultScorerConfig mirrors the detector defaults used in production.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{Contamination: 0.1, Seed: 42}
}

// ErrEmptyBatch is returned when a scorer receives no values.
var ErrEmptyBatch = errors.New("anomaly: empty feature vector")

// consistency constant relating MAD to the standard deviation of a normal
// distribution
const madScale = 1.4826

// RobustScorer scores records by their absolute deviation from the batch
// median, scaled by the median absolute deviation. It flags the
// ceil(contamination*n) records with the lowest scores. The scorer has no
// internal randomness, so the configured seed only exists to honor the
// collaborator contract shared with ensemble implementations.
type RobustScorer struct {
	cfg ScorerConfig
}

// NewRobustScorer builds a scorer with the given configuration. A
// non-positive contamination falls back to the default.
func NewRobustScorer(cfg ScorerConfig) *RobustScorer {
	if cfg.Contamination <= 0 || cfg.Contamination > 1 {
		cfg.Contamination = DefaultScorerConfig().Contamination
	}
	return &RobustScorer{cfg: cfg}
}

// Score implements Scorer.
func (s *RobustScorer) Score(values []float64) ([]bool, []float64, error) {
	n := len(values)
	if n == 0 {
		return nil, nil, ErrEmptyBatch
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	center := quantile(sorted, 0.5)

	devs := make([]float64, n)
	for i, v := range values {
		devs[i] = math.Abs(v - center)
	}
	sortedDevs := append([]float64(nil), devs...)
	sort.Float64s(sortedDevs)
	mad := quantile(sortedDevs, 0.5)

	scores := make([]float64, n)
	for i, d := range devs {
		scores[i] = -d / (1 + mad*madScale)
	}

	k := int(math.Ceil(s.cfg.Contamination * float64(n)))
	if k < 1 {
		k = 1
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	outliers := make([]bool, n)
	for _, idx := range order[:k] {
		// A uniform batch has nothing to flag.
		if scores[idx] < 0 {
			outliers[idx] = true
		}
	}
	return outliers, scores, nil
}
