// Package report ranks benchmark results and renders them for humans and machines.
package report

import (
	"sort"

	"benchsuite/internal/core"
)

// Entry is one benchmark result with its standing in the run.
type Entry struct {
	core.CycleResult
	Rank     int     `json:"rank"`     // 1 = fastest
	Relative float64 `json:"relative"` // Hz / fastest Hz
}

// Summary is the ranked view of a run. Entries keep execution order.
type Summary struct {
	Suite   string  `json:"suite"`
	Entries []Entry `json:"results"`
	Fastest string  `json:"fastest,omitempty"`
	Slowest string  `json:"slowest,omitempty"`
}

// Summarize ranks results by throughput. Pure function, no side effects.
func Summarize(suite string, results []core.CycleResult) *Summary {
	s := &Summary{
		Suite:   suite,
		Entries: make([]Entry, len(results)),
	}
	if len(results) == 0 {
		return s
	}

	order := make([]int, len(results))
	for i := range results {
		order[i] = i
		s.Entries[i] = Entry{CycleResult: results[i]}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return results[order[a]].Hz > results[order[b]].Hz
	})

	fastest := results[order[0]].Hz
	for rank, idx := range order {
		e := &s.Entries[idx]
		e.Rank = rank + 1
		if fastest > 0 {
			e.Relative = e.Hz / fastest
		}
	}

	s.Fastest = results[order[0]].Name
	s.Slowest = results[order[len(order)-1]].Name
	return s
}

// ByRank returns the entries ordered fastest first.
func (s *Summary) ByRank() []Entry {
	out := make([]Entry, len(s.Entries))
	copy(out, s.Entries)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Rank < out[b].Rank })
	return out
}

// Lookup returns the first entry with the given benchmark name.
func (s *Summary) Lookup(name string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
