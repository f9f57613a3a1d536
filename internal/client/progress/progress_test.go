package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, StageUploading},
		{29, StageUploading},
		{30, StageOCR},
		{60, StageOCR},
		{61, StageExtracting},
		{90, StageExtracting},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.percent), "percent=%d", tt.percent)
	}
}

func collectTicks(t *testing.T, s *Simulator, n int) []Update {
	t.Helper()

	var mu sync.Mutex
	var got []Update
	ch := make(chan struct{}, 64)

	s.Start(context.Background(), func(u Update) {
		mu.Lock()
		got = append(got, u)
		mu.Unlock()
		ch <- struct{}{}
	})

	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for tick %d", i)
		}
	}
	s.Stop()

	mu.Lock()
	defer mu.Unlock()
	return append([]Update(nil), got...)
}

func TestSimulator_CapsAtNinety(t *testing.T) {
	s := NewSimulator(time.Millisecond)
	s.randIntn = func(int) int { return 19 } // always the max increment

	got := collectTicks(t, s, 8)
	require.NotEmpty(t, got)

	for _, u := range got {
		assert.LessOrEqual(t, u.Percent, 90)
	}
	last := got[len(got)-1]
	assert.Equal(t, 90, last.Percent, "must hold at the cap")
	assert.Equal(t, StageExtracting, last.Label)
}

func TestSimulator_ProgressIsMonotonic(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	got := collectTicks(t, s, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].Percent, got[i-1].Percent)
	}
}

func TestSimulator_StopPreventsFurtherTicks(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	var mu sync.Mutex
	count := 0
	s.Start(context.Background(), func(Update) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	time.Sleep(10 * time.Millisecond)
	s.Stop()
	assert.False(t, s.Running())

	mu.Lock()
	after := count
	mu.Unlock()

	time.Sleep(10 * time.Millisecond)
	mu.Lock()
	final := count
	mu.Unlock()

	assert.Equal(t, after, final, "no tick may fire after Stop returns")
}

func TestSimulator_StartCancelsPreviousRun(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	first := make(chan struct{}, 64)
	s.Start(context.Background(), func(Update) { first <- struct{}{} })

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("first simulation never ticked")
	}

	// Starting again must replace, not leak, the first run.
	second := make(chan struct{}, 64)
	s.Start(context.Background(), func(Update) { second <- struct{}{} })

	// Drain anything queued by the first run, then ensure it stays quiet.
	for {
		select {
		case <-first:
			continue
		default:
		}
		break
	}
	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("second simulation never ticked")
	}
	select {
	case <-first:
		t.Fatal("first simulation still ticking after restart")
	case <-time.After(20 * time.Millisecond):
	}

	s.Stop()
}

func TestSimulator_StopTwiceIsSafe(t *testing.T) {
	s := NewSimulator(time.Millisecond)
	s.Start(context.Background(), func(Update) {})
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}
