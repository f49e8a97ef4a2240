package smoke

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

// LoadReport aggregates the load check's outcome. Latencies are reported,
// never asserted against a threshold.
type LoadReport struct {
	Passed int
	Failed int

	durations []time.Duration
}

func (r *LoadReport) Requests() int {
	return r.Passed + r.Failed
}

func (r *LoadReport) Min() time.Duration {
	if len(r.durations) == 0 {
		return 0
	}
	min := r.durations[0]
	for _, d := range r.durations[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

func (r *LoadReport) Max() time.Duration {
	var max time.Duration
	for _, d := range r.durations {
		if d > max {
			max = d
		}
	}
	return max
}

func (r *LoadReport) Mean() time.Duration {
	if len(r.durations) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.durations {
		sum += d
	}
	return sum / time.Duration(len(r.durations))
}

func (r *LoadReport) Median() time.Duration {
	if len(r.durations) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(r.durations))
	copy(sorted, r.durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func (r *LoadReport) Fields() log.Fields {
	return log.Fields{
		"requests": r.Requests(),
		"passed":   r.Passed,
		"failed":   r.Failed,
		"min":      r.Min(),
		"max":      r.Max(),
		"mean":     r.Mean(),
		"median":   r.Median(),
	}
}
