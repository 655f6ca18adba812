package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"benchsuite/internal/sampler"
)

// Thresholds defines pass/fail criteria for a run.
type Thresholds struct {
	// MinHz maps a benchmark name to its minimum acceptable ops/sec.
	MinHz map[string]float64 `yaml:"minHz" toml:"minHz"`
	// MaxRME is the largest acceptable relative margin of error, e.g. "5%".
	MaxRME string `yaml:"maxRme" toml:"maxRme"`
}

// ThresholdResult represents the outcome of a single threshold check.
type ThresholdResult struct {
	Name      string `json:"name"`
	Passed    bool   `json:"passed"`
	Threshold string `json:"threshold"`
	Actual    string `json:"actual"`
}

// ThresholdResults contains all threshold check results.
type ThresholdResults struct {
	Passed  bool              `json:"passed"`
	Results []ThresholdResult `json:"results"`
}

// Validate checks that the thresholds are well formed.
func (t *Thresholds) Validate() error {
	if t == nil {
		return nil
	}
	if t.MaxRME != "" {
		if _, err := parsePercentage(t.MaxRME); err != nil {
			return fmt.Errorf("maxRme: %w", err)
		}
	}
	for name, hz := range t.MinHz {
		if hz < 0 {
			return fmt.Errorf("minHz.%s: must be non-negative", name)
		}
	}
	return nil
}

// Check evaluates all thresholds against a summary.
// A benchmark named in MinHz that did not run fails its check.
func (t *Thresholds) Check(s *Summary) *ThresholdResults {
	if t == nil {
		return &ThresholdResults{Passed: true, Results: nil}
	}

	results := &ThresholdResults{
		Passed:  true,
		Results: make([]ThresholdResult, 0),
	}

	results.checkMinHz(t.MinHz, s)

	if t.MaxRME != "" {
		results.checkMaxRME(t.MaxRME, s)
	}

	return results
}

func (r *ThresholdResults) add(res ThresholdResult) {
	if !res.Passed {
		r.Passed = false
	}
	r.Results = append(r.Results, res)
}

func (r *ThresholdResults) checkMinHz(minHz map[string]float64, s *Summary) {
	names := make([]string, 0, len(minHz))
	for name := range minHz {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		threshold := minHz[name]
		res := ThresholdResult{
			Name:      "hz." + name,
			Threshold: sampler.FormatHz(threshold) + " ops/sec",
			Actual:    "not run",
		}
		if e, ok := s.Lookup(name); ok {
			res.Passed = e.Hz >= threshold
			res.Actual = sampler.FormatHz(e.Hz) + " ops/sec"
		}
		r.add(res)
	}
}

func (r *ThresholdResults) checkMaxRME(limit string, s *Summary) {
	maxRME, err := parsePercentage(limit)
	if err != nil {
		return
	}

	for _, e := range s.Entries {
		r.add(ThresholdResult{
			Name:      "rme." + e.Name,
			Passed:    e.MoePercent <= maxRME,
			Threshold: limit,
			Actual:    fmt.Sprintf("%.2f%%", e.MoePercent),
		})
	}
}

func parsePercentage(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("invalid percentage format: %s", s)
	}
	s = strings.TrimSuffix(s, "%")
	return strconv.ParseFloat(s, 64)
}

// Violations returns only the failed threshold results.
func (r *ThresholdResults) Violations() []ThresholdResult {
	violations := make([]ThresholdResult, 0)
	for _, result := range r.Results {
		if !result.Passed {
			violations = append(violations, result)
		}
	}
	return violations
}
