// Package progress prints benchmark progress to a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"benchsuite/internal/sampler"
)

// liveInterval bounds how often the live sample line is redrawn.
const liveInterval = 250 * time.Millisecond

// Progress writes progress events and a live sampling line to stderr.
type Progress struct {
	output  io.Writer
	quiet   bool
	live    bool
	redraw  rate.Sometimes
	stopped atomic.Bool
	mu      sync.Mutex
}

// NewProgress creates a progress printer.
// If quiet is true nothing is printed. If live is true, Sample redraws a status line.
func NewProgress(quiet, live bool) *Progress {
	return &Progress{
		output: os.Stderr,
		quiet:  quiet,
		live:   live,
		redraw: rate.Sometimes{First: 1, Interval: liveInterval},
	}
}

func (p *Progress) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.output = w
}

// Report prints one progress event. It satisfies core.ProgressFunc.
func (p *Progress) Report(text string) {
	p.Print(text)
}

// Sample redraws the live line for the benchmark being sampled, at most once
// per liveInterval. It is meant for sampler.WithSampleHook.
func (p *Progress) Sample(info sampler.SampleInfo) {
	if p.quiet || !p.live || p.stopped.Load() {
		return
	}
	p.redraw.Do(func() {
		elapsed := info.Elapsed.Round(time.Second)
		mins := int(elapsed.Minutes())
		secs := int(elapsed.Seconds()) % 60
		p.mu.Lock()
		fmt.Fprintf(p.output, "\033[K[%02d:%02d] %s: %d samples, ±%.2f%%\r",
			mins, secs, info.Benchmark, info.Samples, info.RME)
		p.mu.Unlock()
	})
}

// Stop clears the live line. Later Sample calls are ignored.
func (p *Progress) Stop() {
	if p.quiet || p.stopped.Swap(true) {
		return
	}
	if !p.live {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(p.output, "\033[K")
	p.mu.Unlock()
}

func (p *Progress) Print(message string) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(p.output, "\033[K%s\n", message)
	p.mu.Unlock()
}

func (p *Progress) Printf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(p.output, "\033[K"+format+"\n", args...)
	p.mu.Unlock()
}
