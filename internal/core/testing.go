package core

import "sync"

// Recorder is a ProgressFunc sink that keeps every event. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

// Report records one progress event.
func (r *Recorder) Report(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, text)
}

// Events returns a copy of the recorded events in delivery order.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}
