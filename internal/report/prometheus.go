package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "benchsuite"

// Registry builds a registry holding one gauge series per benchmark.
func Registry(s *Summary) *prometheus.Registry {
	labels := []string{"suite", "benchmark"}

	hz := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hz",
		Help:      "Operations per second.",
	}, labels)
	moe := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "margin_of_error",
		Help:      "Absolute margin of error of the ops/sec estimate.",
	}, labels)
	rme := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rme_percent",
		Help:      "Relative margin of error, percent.",
	}, labels)

	reg := prometheus.NewRegistry()
	reg.MustRegister(hz, moe, rme)

	for _, e := range s.Entries {
		hz.WithLabelValues(s.Suite, e.Name).Set(e.Hz)
		moe.WithLabelValues(s.Suite, e.Name).Set(e.MarginOfError)
		rme.WithLabelValues(s.Suite, e.Name).Set(e.MoePercent)
	}

	return reg
}

// WritePrometheus writes the summary in the text exposition format to path,
// suitable for the node exporter textfile collector.
func WritePrometheus(path string, s *Summary) error {
	if err := prometheus.WriteToTextfile(path, Registry(s)); err != nil {
		return fmt.Errorf("writing prometheus textfile: %w", err)
	}
	return nil
}
