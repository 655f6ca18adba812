package sampler

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Summary renders a result line such as
//
//	sort x 1,234,567 ops/sec ±0.52% (90 runs sampled)
func Summary(name string, hz, rme float64, samples int) string {
	plural := "s"
	if samples == 1 {
		plural = ""
	}
	return fmt.Sprintf("%s x %s ops/sec ±%.2f%% (%d run%s sampled)",
		name, FormatHz(hz), rme, samples, plural)
}

// FormatHz formats operations per second with thousands separators.
// Rates below 100 keep two decimals.
func FormatHz(hz float64) string {
	if hz < 100 {
		return fmt.Sprintf("%.2f", hz)
	}
	return humanize.Comma(int64(math.Round(hz)))
}
