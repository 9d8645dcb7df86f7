package metrics

// Stats is a descriptive summary over one duration sample series.
type Stats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Compute summarizes a series of duration samples in a single pass.
// The second return value is false for an empty series, in which case
// the Stats value is meaningless.
func Compute(samples []float64) (Stats, bool) {
	if len(samples) == 0 {
		return Stats{}, false
	}

	min := samples[0]
	max := samples[0]
	sum := 0.0
	for _, s := range samples {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
		sum += s
	}

	return Stats{
		Min:     min,
		Max:     max,
		Average: sum / float64(len(samples)),
		Count:   len(samples),
	}, true
}
