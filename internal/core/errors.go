package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDefinition indicates a group or benchmark that cannot be run.
	ErrMalformedDefinition = errors.New("malformed benchmark definition")

	// ErrBenchmarkFailed indicates that measuring a benchmark failed.
	ErrBenchmarkFailed = errors.New("benchmark failed")
)

// BenchmarkError reports which benchmark of a run failed and why.
type BenchmarkError struct {
	Name  string
	Index int
	Err   error
}

func (e *BenchmarkError) Error() string {
	return fmt.Sprintf("benchmark %q (#%d) failed: %v", e.Name, e.Index, e.Err)
}

func (e *BenchmarkError) Unwrap() error { return e.Err }

// Is matches ErrBenchmarkFailed in addition to the wrapped cause.
func (e *BenchmarkError) Is(target error) bool {
	return target == ErrBenchmarkFailed
}
