// Package catalog holds named benchmark workloads selectable from config or flags.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"benchsuite/internal/core"
)

// ErrUnknownBenchmark indicates a name with no registered workload.
var ErrUnknownBenchmark = errors.New("unknown benchmark")

// Catalog maps benchmark names to work functions. Safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	description string
	work        func()
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]entry)}
}

// Register adds a workload. Registering a name twice is an error.
func (c *Catalog) Register(name, description string, work func()) error {
	if err := core.NewBenchmark(name, work).Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[name]; exists {
		return fmt.Errorf("benchmark %q already registered", name)
	}
	c.entries[name] = entry{description: description, work: work}
	return nil
}

// Lookup returns the benchmark registered under name.
func (c *Catalog) Lookup(name string) (core.Benchmark, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	if !ok {
		return core.Benchmark{}, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
	}
	return core.NewBenchmark(name, e.work), nil
}

// Description returns the description registered with name.
func (c *Catalog) Description(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[name].description
}

// Names returns all registered names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group builds a group from names in the given order; no names selects every
// benchmark. A single name with an empty suiteName yields a core.Single so the
// run is named after the benchmark. Otherwise the result is a core.Suite.
func (c *Catalog) Group(suiteName string, names []string) (core.Group, error) {
	if len(names) == 0 {
		names = c.Names()
	}

	benchmarks := make([]core.Benchmark, 0, len(names))
	for _, name := range names {
		b, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		benchmarks = append(benchmarks, b)
	}

	if len(benchmarks) == 1 && suiteName == "" {
		return core.Single{Benchmark: benchmarks[0]}, nil
	}
	return core.NewSuite(suiteName, benchmarks...), nil
}
