// Package progress implements the cosmetic upload-progress simulation.
//
// The percentage does not reflect true server progress: it advances by a
// random increment on every tick and holds at 90% until the real response
// arrives. The simulation is a scoped, cancellable task; the orchestrator
// guarantees Stop on every exit path, and starting a new run cancels any
// run still active, so at most one ticker ever exists.
package progress

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	maxPercent   = 90
	maxIncrement = 20
)

// Stage labels shown next to the percentage.
const (
	StageUploading  = "Uploading"
	StageOCR        = "Processing with OCR"
	StageExtracting = "Extracting text"
)

// Update is one simulated progress step.
type Update struct {
	Percent int
	Label   string
}

// LabelFor maps a progress percentage to its stage label: under 30
// "Uploading", 30-60 "Processing with OCR", above 60 "Extracting text".
func LabelFor(percent int) string {
	switch {
	case percent < 30:
		return StageUploading
	case percent <= 60:
		return StageOCR
	default:
		return StageExtracting
	}
}

// Simulator drives the periodic progress ticks. The zero value is not
// usable; construct with NewSimulator.
type Simulator struct {
	interval time.Duration
	randIntn func(n int) int // test seam

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSimulator(interval time.Duration) *Simulator {
	return &Simulator{interval: interval, randIntn: rand.Intn}
}

// Start launches the tick goroutine, cancelling any run still active.
// onTick is invoked from the goroutine with each update.
func (s *Simulator) Start(ctx context.Context, onTick func(Update)) {
	s.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.mu.Lock()
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		percent := 0
		for {
			select {
			case <-ticker.C:
				percent += s.randIntn(maxIncrement) + 1
				if percent > maxPercent {
					percent = maxPercent
				}
				onTick(Update{Percent: percent, Label: LabelFor(percent)})

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the active run, if any, and waits for its goroutine to
// finish so no tick can fire after Stop returns. Safe to call repeatedly.
func (s *Simulator) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether a simulation is currently active.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
