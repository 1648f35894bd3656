package workers

import (
	"context"
	"sync"
	"time"

	"github.com/avdeev/go-device-vault/internal/logger"
)

// SessionSweeper periodically drops expired login sessions so stale tokens
// do not accumulate in memory between logins. The sweeper is idle until
// Run is called and keeps running until Stop.
type SessionSweeper struct {
	pruner   SessionPruner
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionSweeper creates a sweeper that calls pruner.PruneExpired on a
// ticker. If interval is zero or negative it defaults to one minute.
func NewSessionSweeper(pruner SessionPruner, interval time.Duration, log *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionSweeper{pruner: pruner, interval: interval, log: log}
}

// Run implements [Worker]. It stops any previously running sweep loop, then
// launches a background goroutine that prunes expired sessions every
// interval. The goroutine exits when Stop is called.
func (s *SessionSweeper) Run() {
	s.Stop()

	s.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.log.Debug().Dur("interval", s.interval).Msg("session sweeper started")

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.pruner.PruneExpired(ctx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the sweeper is not running.
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}
