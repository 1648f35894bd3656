package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avdeev/go-device-vault/internal/logger"
)

// countingPruner records how many times PruneExpired was invoked.
type countingPruner struct {
	calls atomic.Int64
}

func (p *countingPruner) PruneExpired(context.Context) int {
	p.calls.Add(1)
	return 0
}

func TestSessionSweeper_PrunesOnInterval(t *testing.T) {
	pruner := &countingPruner{}
	sweeper := NewSessionSweeper(pruner, 5*time.Millisecond, logger.Nop())

	sweeper.Run()
	defer sweeper.Stop()

	deadline := time.After(time.Second)
	for pruner.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 prune calls, got %d", pruner.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSessionSweeper_StopHaltsPruning(t *testing.T) {
	pruner := &countingPruner{}
	sweeper := NewSessionSweeper(pruner, time.Millisecond, logger.Nop())

	sweeper.Run()
	time.Sleep(20 * time.Millisecond)
	sweeper.Stop()

	after := pruner.calls.Load()
	time.Sleep(20 * time.Millisecond)

	if got := pruner.calls.Load(); got != after {
		t.Errorf("expected no prune calls after Stop, got %d more", got-after)
	}
}

func TestSessionSweeper_StopWithoutRunIsSafe(t *testing.T) {
	sweeper := NewSessionSweeper(&countingPruner{}, time.Minute, logger.Nop())

	// Should not panic or block
	sweeper.Stop()
}

func TestSessionSweeper_DefaultInterval(t *testing.T) {
	sweeper := NewSessionSweeper(&countingPruner{}, 0, logger.Nop())

	if sweeper.interval != time.Minute {
		t.Errorf("expected default interval of 1m, got %v", sweeper.interval)
	}
}
