// Package suite runs groups of benchmarks and reports their progress.
package suite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"benchsuite/internal/core"
)

// Executor runs every benchmark of a group in order and aggregates the results.
// Runs are independent; one Executor may serve several sequential or concurrent runs
// as long as its Measurer allows it.
type Executor struct {
	measurer core.Measurer
	logger   *slog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger used for run lifecycle and reporter failures.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// NewExecutor creates an Executor that measures benchmarks with m.
func NewExecutor(m core.Measurer, opts ...Option) *Executor {
	e := &Executor{
		measurer: m,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run executes g and returns the final report and ordered results.
//
// onProgress receives core.StartingMessage, then one summary line per completed
// benchmark, then the final report. Each call returns before the next benchmark
// starts. A nil onProgress is allowed.
//
// A malformed group fails before any progress is reported. If a benchmark fails the
// run stops there and returns a *core.BenchmarkError; no partial Outcome is returned.
func (e *Executor) Run(ctx context.Context, g core.Group, onProgress core.ProgressFunc) (*core.Outcome, error) {
	benchmarks, err := core.Flatten(g)
	if err != nil {
		return nil, err
	}

	logger := e.logger.With(slog.String("suite", core.GroupName(g)))
	logger.InfoContext(ctx, "starting benchmarks", slog.Int("count", len(benchmarks)))

	e.notify(ctx, onProgress, core.StartingMessage)

	results := make([]core.CycleResult, 0, len(benchmarks))
	var lines strings.Builder

	for i, b := range benchmarks {
		m, err := e.measure(ctx, b)
		if err != nil {
			logger.ErrorContext(ctx, "benchmark failed",
				slog.String("benchmark", b.Name),
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			return nil, &core.BenchmarkError{Name: b.Name, Index: i, Err: err}
		}

		results = append(results, m.Result)
		lines.WriteString(m.Summary)
		lines.WriteByte('\n')

		logger.InfoContext(ctx, "benchmark complete",
			slog.String("benchmark", b.Name),
			slog.Float64("hz", m.Result.Hz),
			slog.Float64("rme", m.Result.MoePercent),
		)
		e.notify(ctx, onProgress, m.Summary)
	}

	report := core.FinalHeader + lines.String()
	e.notify(ctx, onProgress, report)

	logger.InfoContext(ctx, "benchmarks finished", slog.Int("count", len(results)))

	return &core.Outcome{Report: report, Results: results}, nil
}

// measure calls the Measurer, converting a panic into an error.
func (e *Executor) measure(ctx context.Context, b core.Benchmark) (m core.Measurement, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("measurer panicked: %v", r)
		}
	}()
	return e.measurer.Measure(ctx, b)
}

// notify delivers one progress event. A panicking reporter is logged and ignored.
func (e *Executor) notify(ctx context.Context, onProgress core.ProgressFunc, text string) {
	if onProgress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.WarnContext(ctx, "progress reporter panicked",
				slog.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	onProgress(text)
}
