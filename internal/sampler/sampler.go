// Package sampler measures benchmarks by timing repeated samples until their
// statistics converge.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"benchsuite/internal/core"
)

var (
	// ErrInvalidOptions indicates an invalid sampler configuration.
	ErrInvalidOptions = errors.New("invalid sampler options")

	// ErrWorkPanicked indicates that the benchmarked function panicked.
	ErrWorkPanicked = errors.New("benchmark work panicked")

	// ErrUnmeasurable indicates that no time elapsed across all samples.
	ErrUnmeasurable = errors.New("benchmark too fast to measure")
)

// maxCount bounds the number of calls per sample.
const maxCount = 1_000_000_000

// Options controls when sampling stops.
type Options struct {
	// MinSamples is the minimum number of timed samples. Must be at least 2.
	MinSamples int
	// MaxSamples stops sampling once reached. 0 means no limit.
	MaxSamples int
	// MinTime is the minimum duration of a single sample.
	MinTime time.Duration
	// MaxTime is the sampling budget; sampling stops once exceeded and MinSamples is met.
	MaxTime time.Duration
	// TargetRME stops sampling early once the relative margin of error (percent)
	// drops to this value. 0 disables early stopping.
	TargetRME float64
	// Warmup is the number of untimed calls before calibration.
	Warmup int
}

// DefaultOptions returns options comparable to common JavaScript benchmark runners.
func DefaultOptions() Options {
	return Options{
		MinSamples: 5,
		MinTime:    50 * time.Millisecond,
		MaxTime:    5 * time.Second,
		Warmup:     1,
	}
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	switch {
	case o.MinSamples < 2:
		return fmt.Errorf("%w: min samples must be at least 2", ErrInvalidOptions)
	case o.MaxSamples != 0 && o.MaxSamples < o.MinSamples:
		return fmt.Errorf("%w: max samples must be 0 or >= min samples", ErrInvalidOptions)
	case o.MinTime <= 0:
		return fmt.Errorf("%w: min time must be positive", ErrInvalidOptions)
	case o.MaxTime <= 0:
		return fmt.Errorf("%w: max time must be positive", ErrInvalidOptions)
	case o.TargetRME < 0:
		return fmt.Errorf("%w: target rme must be non-negative", ErrInvalidOptions)
	case o.Warmup < 0:
		return fmt.Errorf("%w: warmup must be non-negative", ErrInvalidOptions)
	}
	return nil
}

// SampleInfo describes sampling progress of the benchmark currently measured.
type SampleInfo struct {
	Benchmark string
	Samples   int
	Elapsed   time.Duration
	RME       float64
}

// Sampler implements core.Measurer.
// A Sampler is NOT safe for concurrent use.
type Sampler struct {
	opts     Options
	clock    core.Clock
	logger   *slog.Logger
	onSample func(SampleInfo)
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithClock replaces the time source used to time samples.
func WithClock(c core.Clock) Option {
	return func(s *Sampler) { s.clock = c }
}

// WithLogger sets the logger for calibration and convergence details.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sampler) { s.logger = l }
}

// WithSampleHook registers a function called after every timed sample.
func WithSampleHook(fn func(SampleInfo)) Option {
	return func(s *Sampler) { s.onSample = fn }
}

// New creates a Sampler.
func New(opts Options, options ...Option) (*Sampler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Sampler{
		opts:   opts,
		clock:  core.RealClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range options {
		o(s)
	}
	return s, nil
}

// Measure runs b until its statistics converge and returns the result with
// a one-line summary.
func (s *Sampler) Measure(ctx context.Context, b core.Benchmark) (core.Measurement, error) {
	if err := b.Validate(); err != nil {
		return core.Measurement{}, err
	}

	for i := 0; i < s.opts.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return core.Measurement{}, fmt.Errorf("warmup interrupted: %w", err)
		}
		if _, err := s.cycle(b, 1); err != nil {
			return core.Measurement{}, err
		}
	}

	count, err := s.calibrate(ctx, b)
	if err != nil {
		return core.Measurement{}, err
	}
	s.logger.DebugContext(ctx, "benchmark calibrated",
		slog.String("benchmark", b.Name),
		slog.Int("calls_per_sample", count),
	)

	periods := make([]float64, 0, s.opts.MinSamples)
	start := s.clock.Now()
	var st stats

	for {
		if err := ctx.Err(); err != nil {
			return core.Measurement{}, fmt.Errorf("sampling interrupted: %w", err)
		}

		elapsed, err := s.cycle(b, count)
		if err != nil {
			return core.Measurement{}, err
		}
		periods = append(periods, elapsed.Seconds()/float64(count))
		st = computeStats(periods)

		total := s.clock.Since(start)
		if s.onSample != nil {
			s.onSample(SampleInfo{
				Benchmark: b.Name,
				Samples:   len(periods),
				Elapsed:   total,
				RME:       st.rme,
			})
		}

		if s.converged(len(periods), total, st) {
			break
		}
	}

	if st.mean <= 0 {
		return core.Measurement{}, ErrUnmeasurable
	}

	result := st.result(b.Name)
	s.logger.DebugContext(ctx, "benchmark converged",
		slog.String("benchmark", b.Name),
		slog.Int("samples", len(periods)),
		slog.Float64("hz", result.Hz),
		slog.Float64("rme", result.MoePercent),
	)

	return core.Measurement{
		Result:  result,
		Summary: Summary(b.Name, result.Hz, result.MoePercent, len(periods)),
	}, nil
}

func (s *Sampler) converged(n int, total time.Duration, st stats) bool {
	if n < s.opts.MinSamples {
		return false
	}
	if s.opts.MaxSamples > 0 && n >= s.opts.MaxSamples {
		return true
	}
	if s.opts.TargetRME > 0 && st.mean > 0 && st.rme <= s.opts.TargetRME {
		return true
	}
	return total >= s.opts.MaxTime
}

// calibrate finds the number of calls per sample needed to fill MinTime.
func (s *Sampler) calibrate(ctx context.Context, b core.Benchmark) (int, error) {
	count := 1
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("calibration interrupted: %w", err)
		}
		elapsed, err := s.cycle(b, count)
		if err != nil {
			return 0, err
		}
		if elapsed >= s.opts.MinTime || count >= maxCount {
			return count, nil
		}
		count = nextCount(count, elapsed, s.opts.MinTime)
	}
}

// nextCount predicts the calls needed to reach target, growing at most 100x.
func nextCount(count int, elapsed, target time.Duration) int {
	var n int64
	if elapsed <= 0 {
		n = int64(count) * 100
	} else {
		n = int64(count) * int64(target) / int64(elapsed)
		n += n / 5
	}
	n = min(n, int64(count)*100)
	n = max(n, int64(count)+1)
	return int(min(n, maxCount))
}

// cycle times count calls of the work function.
func (s *Sampler) cycle(b core.Benchmark, count int) (elapsed time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkPanicked, r)
		}
	}()

	start := s.clock.Now()
	for i := 0; i < count; i++ {
		b.Work()
	}
	return s.clock.Since(start), nil
}
