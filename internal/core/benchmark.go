// Package core defines the fundamental types shared by the benchmark engine.
package core

import "fmt"

const (
	// StartingMessage is the first progress event of every run.
	StartingMessage = "Starting Benchmarks"

	// FinalHeader prefixes the final report text.
	FinalHeader = "Final results:\n\n"
)

// Benchmark is a named unit of work measured by a Measurer.
type Benchmark struct {
	Name string
	Work func()
}

// NewBenchmark creates a Benchmark.
func NewBenchmark(name string, work func()) Benchmark {
	return Benchmark{Name: name, Work: work}
}

// Validate reports whether the benchmark can be run.
func (b Benchmark) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: benchmark has no name", ErrMalformedDefinition)
	}
	if b.Work == nil {
		return fmt.Errorf("%w: benchmark %q has no work function", ErrMalformedDefinition, b.Name)
	}
	return nil
}

// Group is either a Single benchmark or a Suite of them.
// The set of implementations is closed.
type Group interface {
	benchmarks() []Benchmark
}

// Single wraps one benchmark.
type Single struct {
	Benchmark Benchmark
}

func (s Single) benchmarks() []Benchmark { return []Benchmark{s.Benchmark} }

// Suite is an ordered collection of benchmarks. Order is execution and report order.
type Suite struct {
	Name       string
	Benchmarks []Benchmark
}

// NewSuite creates a Suite from the given benchmarks.
func NewSuite(name string, benchmarks ...Benchmark) Suite {
	return Suite{Name: name, Benchmarks: benchmarks}
}

func (s Suite) benchmarks() []Benchmark { return s.Benchmarks }

// GroupName returns the suite name, or the benchmark name for a Single.
func GroupName(g Group) string {
	switch v := g.(type) {
	case Single:
		return v.Benchmark.Name
	case Suite:
		return v.Name
	default:
		return ""
	}
}

// Flatten returns the benchmarks of g in execution order.
// Every definition is validated; an empty Suite yields an empty, non-nil slice.
func Flatten(g Group) ([]Benchmark, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil group", ErrMalformedDefinition)
	}

	src := g.benchmarks()
	out := make([]Benchmark, 0, len(src))
	for i, b := range src {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}
