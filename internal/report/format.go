package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"benchsuite/internal/sampler"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// FormatText writes a ranked results table in human-readable format.
func FormatText(w io.Writer, s *Summary, thresholds *ThresholdResults) {
	if len(s.Entries) == 0 {
		fmt.Fprintln(w, "No benchmarks run")
	} else {
		formatTable(w, s)
	}
	formatThresholds(w, thresholds)
}

func formatTable(w io.Writer, s *Summary) {
	title := "benchsuite - Benchmark Results"
	if s.Suite != "" {
		title += " (" + s.Suite + ")"
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, bold.Sprint(title))
	fmt.Fprintln(w, "==============================")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "  %-4s %-24s %16s %10s  %s\n", "#", "Benchmark", "ops/sec", "±rme", "Relative")
	for _, e := range s.ByRank() {
		fmt.Fprintf(w, "  %-4d %-24s %16s %9.2f%%  %s\n",
			e.Rank, e.Name, sampler.FormatHz(e.Hz), e.MoePercent, relative(e))
	}
}

func formatThresholds(w io.Writer, thresholds *ThresholdResults) {
	if thresholds == nil || len(thresholds.Results) == 0 {
		return
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Thresholds:")
	for _, result := range thresholds.Results {
		symbol := green.Sprint("✓")
		if !result.Passed {
			symbol = red.Sprint("✗")
		}
		fmt.Fprintf(w, "  %s %s (threshold: %s, actual: %s)\n",
			symbol, result.Name, result.Threshold, result.Actual)
	}
}

func relative(e Entry) string {
	if e.Rank == 1 {
		return green.Sprint("fastest")
	}
	if e.Relative <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx slower", 1/e.Relative)
}

// Document is the machine-readable form of a run.
type Document struct {
	RunID      string            `json:"runId"`
	Timestamp  time.Time         `json:"timestamp"`
	Report     string            `json:"report"`
	Summary    *Summary          `json:"summary"`
	Thresholds *ThresholdResults `json:"thresholds,omitempty"`
}

// NewDocument stamps a summary with a fresh run id and the current time.
func NewDocument(report string, s *Summary, thresholds *ThresholdResults) Document {
	return Document{
		RunID:      uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Report:     report,
		Summary:    s,
		Thresholds: thresholds,
	}
}

// FormatJSON writes the document as indented JSON.
func FormatJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(doc)
}
