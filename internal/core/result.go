package core

import "context"

// CycleResult holds the converged statistics of one benchmark.
type CycleResult struct {
	Name          string  `json:"name"`
	Hz            float64 `json:"hz"`            // operations per second
	MarginOfError float64 `json:"marginOfError"` // absolute, in ops/sec
	MoePercent    float64 `json:"moePercent"`    // relative margin of error, percent of Hz
}

// Measurement is what a Measurer produces for a single benchmark.
type Measurement struct {
	Result  CycleResult
	Summary string // one human-readable line, no trailing newline
}

// Outcome is the aggregate of a completed run.
type Outcome struct {
	Report  string
	Results []CycleResult
}

// Measurer runs a benchmark until its statistics converge.
type Measurer interface {
	Measure(ctx context.Context, b Benchmark) (Measurement, error)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(ctx context.Context, b Benchmark) (Measurement, error)

func (f MeasurerFunc) Measure(ctx context.Context, b Benchmark) (Measurement, error) {
	return f(ctx, b)
}

// ProgressFunc receives progress text. Calls are sequential and in order.
type ProgressFunc func(text string)
