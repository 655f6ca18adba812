package sampler

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"benchsuite/internal/core"
)

// confidence is the two-sided confidence level of the margin of error.
const confidence = 0.95

// stats summarizes sample periods, in seconds per operation.
type stats struct {
	mean float64
	sd   float64
	sem  float64
	moe  float64 // seconds
	rme  float64 // percent of mean
}

func computeStats(periods []float64) stats {
	n := len(periods)
	if n == 0 {
		return stats{}
	}

	mean, sd := stat.MeanStdDev(periods, nil)
	if n < 2 || math.IsNaN(sd) {
		return stats{mean: mean}
	}

	sem := sd / math.Sqrt(float64(n))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	moe := sem * t.Quantile(1-(1-confidence)/2)

	st := stats{mean: mean, sd: sd, sem: sem, moe: moe}
	if mean > 0 {
		st.rme = moe / mean * 100
	}
	return st
}

// result converts period statistics into throughput terms.
func (s stats) result(name string) core.CycleResult {
	r := core.CycleResult{Name: name, MoePercent: s.rme}
	if s.mean > 0 {
		r.Hz = 1 / s.mean
		r.MarginOfError = r.Hz * s.rme / 100
	}
	return r
}
