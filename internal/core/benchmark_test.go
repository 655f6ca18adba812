package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func noop() {}

func TestFlatten_Single(t *testing.T) {
	b := NewBenchmark("one", noop)

	got, err := Flatten(Single{Benchmark: b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "one" {
		t.Errorf("expected [one], got %v", names(got))
	}
}

func TestFlatten_SuitePreservesOrder(t *testing.T) {
	suite := NewSuite("s",
		NewBenchmark("c", noop),
		NewBenchmark("a", noop),
		NewBenchmark("b", noop),
	)

	got, err := Flatten(suite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(names(got), ",") != "c,a,b" {
		t.Errorf("expected order c,a,b, got %v", names(got))
	}
}

func TestFlatten_EmptySuite(t *testing.T) {
	got, err := Flatten(NewSuite("empty"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFlatten_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		group Group
	}{
		{"nil group", nil},
		{"single without work", Single{Benchmark: Benchmark{Name: "x"}}},
		{"single without name", Single{Benchmark: Benchmark{Work: noop}}},
		{"suite with bad member", NewSuite("s", NewBenchmark("ok", noop), Benchmark{Name: "bad"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Flatten(tt.group)
			if !errors.Is(err, ErrMalformedDefinition) {
				t.Errorf("expected ErrMalformedDefinition, got %v", err)
			}
		})
	}
}

func TestFlatten_DoesNotAliasSuite(t *testing.T) {
	suite := NewSuite("s", NewBenchmark("a", noop))

	got, err := Flatten(suite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got[0].Name = "changed"

	if suite.Benchmarks[0].Name != "a" {
		t.Errorf("flattening must not share the suite's backing array")
	}
}

func TestGroupName(t *testing.T) {
	if got := GroupName(Single{Benchmark: NewBenchmark("solo", noop)}); got != "solo" {
		t.Errorf("expected solo, got %q", got)
	}
	if got := GroupName(NewSuite("strings")); got != "strings" {
		t.Errorf("expected strings, got %q", got)
	}
}

func TestBenchmarkError(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("run: %w", &BenchmarkError{Name: "sort", Index: 1, Err: cause})

	if !errors.Is(err, ErrBenchmarkFailed) {
		t.Error("expected errors.Is(err, ErrBenchmarkFailed)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}

	var be *BenchmarkError
	if !errors.As(err, &be) {
		t.Fatal("expected errors.As to find *BenchmarkError")
	}
	if be.Name != "sort" {
		t.Errorf("expected name sort, got %q", be.Name)
	}
	if !strings.Contains(err.Error(), `"sort"`) {
		t.Errorf("expected message to name the benchmark, got %q", err.Error())
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var sink ProgressFunc = r.Report

	sink("a")
	sink("b")

	events := r.Events()
	if len(events) != 2 || events[0] != "a" || events[1] != "b" {
		t.Errorf("expected [a b], got %v", events)
	}

	events[0] = "mutated"
	if r.Events()[0] != "a" {
		t.Error("Events must return a copy")
	}
}

func names(bs []Benchmark) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Name
	}
	return out
}
