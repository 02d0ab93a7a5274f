// Package warmup pre-exercises comparators and normalizers so pools and
// lookup tables are populated before the first real request.
package warmup

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_list_compare/internal/ports"
)

// Config defines configuration for warming up the system.
type Config struct {
	// Concurrency is the number of concurrent warmup routines.
	Concurrency int
	// Iterations is the number of iterations per routine.
	Iterations int
	// SampleItems is the number of items in each generated sample list.
	SampleItems int
	// Duration caps the warmup run (0 means no time limit).
	Duration time.Duration
	// ForceGC triggers a garbage collection after warmup.
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  100,
		SampleItems: 200,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles warmup for registered components.
type Manager struct {
	logger      ports.Logger
	comparators []ports.ListComparator
	normalizers []ports.Normalizer
	config      Config
}

// NewManager creates a warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterComparator adds a comparator to be warmed up.
func (wm *Manager) RegisterComparator(c ports.ListComparator) {
	wm.comparators = append(wm.comparators, c)
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(n ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, n)
}

// WarmUp runs the warmup process for all registered components.
func (wm *Manager) WarmUp(ctx context.Context) {
	start := time.Now()
	wm.logger.Debug("Starting warmup",
		"comparators", len(wm.comparators),
		"normalizers", len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	listA := sampleList(wm.config.SampleItems, 0)
	listB := sampleList(wm.config.SampleItems, wm.config.SampleItems/2)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}
				for _, n := range wm.normalizers {
					_ = n.Normalize("Warmup Token")
				}
				for _, c := range wm.comparators {
					_ = c.Compare(warmupCtx, listA, listB)
				}
			}
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		runtime.GC()
	}

	wm.logger.Debug("Warmup completed", "duration", time.Since(start))
}

// sampleList generates a newline-separated list of items starting at the
// given offset, so two lists can share a controlled overlap.
func sampleList(items, offset int) string {
	var sb strings.Builder
	for i := 0; i < items; i++ {
		fmt.Fprintf(&sb, "item-%d\n", offset+i)
	}
	return sb.String()
}
