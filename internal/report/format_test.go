package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

func init() {
	color.NoColor = true
}

func TestFormatText_BasicOutput(t *testing.T) {
	var buf bytes.Buffer
	FormatText(&buf, Summarize("strings", sampleResults()), nil)

	output := buf.String()

	if !strings.Contains(output, "benchsuite - Benchmark Results (strings)") {
		t.Errorf("expected header in output, got: %s", output)
	}
	if !strings.Contains(output, "builder") || !strings.Contains(output, "8,000") {
		t.Errorf("expected builder row, got: %s", output)
	}
	if !strings.Contains(output, "fastest") {
		t.Errorf("expected fastest marker, got: %s", output)
	}
	if !strings.Contains(output, "4.00x slower") {
		t.Errorf("expected concat to be 4.00x slower, got: %s", output)
	}
	if !strings.Contains(output, "8.00x slower") {
		t.Errorf("expected sprintf to be 8.00x slower, got: %s", output)
	}
	if strings.Contains(output, "Thresholds:") {
		t.Error("expected no thresholds section without thresholds")
	}
}

func TestFormatText_RankOrder(t *testing.T) {
	var buf bytes.Buffer
	FormatText(&buf, Summarize("strings", sampleResults()), nil)

	output := buf.String()
	b := strings.Index(output, "builder")
	c := strings.Index(output, "concat")
	s := strings.Index(output, "sprintf")
	if !(b < c && c < s) {
		t.Errorf("expected rows ordered fastest first, got: %s", output)
	}
}

func TestFormatText_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatText(&buf, Summarize("none", nil), nil)

	if !strings.Contains(buf.String(), "No benchmarks run") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestFormatText_EmptyWithThresholds(t *testing.T) {
	s := Summarize("none", nil)
	th := (&Thresholds{MinHz: map[string]float64{"missing": 100}}).Check(s)

	var buf bytes.Buffer
	FormatText(&buf, s, th)

	output := buf.String()
	if !strings.Contains(output, "No benchmarks run") {
		t.Errorf("expected empty message, got: %s", output)
	}
	if !strings.Contains(output, "✗ hz.missing (threshold: 100 ops/sec, actual: not run)") {
		t.Errorf("expected failing hz.missing with its reason, got: %s", output)
	}
}

func TestFormatText_WithThresholds(t *testing.T) {
	s := Summarize("strings", sampleResults())
	th := (&Thresholds{MaxRME: "2%"}).Check(s)

	var buf bytes.Buffer
	FormatText(&buf, s, th)

	output := buf.String()
	if !strings.Contains(output, "Thresholds:") {
		t.Errorf("expected thresholds section, got: %s", output)
	}
	if !strings.Contains(output, "✓ rme.builder") {
		t.Errorf("expected passing rme.builder, got: %s", output)
	}
	if !strings.Contains(output, "✗ rme.sprintf (threshold: 2%, actual: 3.00%)") {
		t.Errorf("expected failing rme.sprintf, got: %s", output)
	}
}

func TestFormatJSON(t *testing.T) {
	s := Summarize("strings", sampleResults())
	doc := NewDocument("Final results:\n\n", s, nil)

	var buf bytes.Buffer
	if err := FormatJSON(&buf, doc); err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var parsed struct {
		RunID   string `json:"runId"`
		Report  string `json:"report"`
		Summary struct {
			Suite   string `json:"suite"`
			Fastest string `json:"fastest"`
			Results []struct {
				Name          string  `json:"name"`
				Hz            float64 `json:"hz"`
				MarginOfError float64 `json:"marginOfError"`
				MoePercent    float64 `json:"moePercent"`
				Rank          int     `json:"rank"`
			} `json:"results"`
		} `json:"summary"`
		Thresholds *ThresholdResults `json:"thresholds"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if _, err := uuid.Parse(parsed.RunID); err != nil {
		t.Errorf("expected a UUID run id, got %q", parsed.RunID)
	}
	if parsed.Report != "Final results:\n\n" {
		t.Errorf("expected report text, got %q", parsed.Report)
	}
	if parsed.Summary.Fastest != "builder" {
		t.Errorf("expected fastest builder, got %q", parsed.Summary.Fastest)
	}
	if len(parsed.Summary.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(parsed.Summary.Results))
	}
	first := parsed.Summary.Results[0]
	if first.Name != "concat" || first.Hz != 2000 || first.MarginOfError != 20 || first.MoePercent != 1 || first.Rank != 2 {
		t.Errorf("unexpected first result: %+v", first)
	}
	if parsed.Thresholds != nil {
		t.Error("expected thresholds to be omitted")
	}
}

func TestNewDocument_UniqueRunIDs(t *testing.T) {
	s := Summarize("s", nil)
	a := NewDocument("", s, nil)
	b := NewDocument("", s, nil)

	if a.RunID == b.RunID {
		t.Error("expected distinct run ids")
	}
	if a.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}
