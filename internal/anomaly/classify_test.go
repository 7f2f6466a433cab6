package anomaly

import "testing"

func TestClassify(t *testing.T) {
	// q3 + 1.5*iqr = 130, q1 - 1.5*iqr = 70
	s := Stats{Mean: 100, Median: 100, Q1: 85, Q3: 115, IQR: 30}

	cases := []struct {
		name     string
		value    float64
		expected Type
	}{
		{name: "very_high_above_twice_mean", value: 250, expected: TypeVeryHigh},
		{name: "high_above_fence_below_twice_mean", value: 150, expected: TypeHigh},
		{name: "very_low_below_half_mean", value: 40, expected: TypeVeryLow},
		{name: "low_below_fence_above_half_mean", value: 60, expected: TypeLow},
		{name: "inside_fences", value: 100, expected: TypeOutlier},
		{name: "upper_fence_tie_not_high", value: 130, expected: TypeOutlier},
		{name: "lower_fence_tie_not_low", value: 70, expected: TypeOutlier},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.value, s); got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	s := Stats{Mean: 100, Median: 100, Q1: 85, Q3: 115, IQR: 30}
	first := Classify(250, s)
	for i := 0; i < 10; i++ {
		if got := Classify(250, s); got != first {
			t.Fatalf("expected stable classification, got %s then %s", first, got)
		}
	}
}
