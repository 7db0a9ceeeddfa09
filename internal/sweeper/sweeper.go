package sweeper

import (
	"auction-engine/utils"
	"sync"
	"sync/atomic"
	"time"
)

// ExpiryLedger is the slice of the auction ledger the sweeper depends on
type ExpiryLedger interface {
	SweepExpired(now time.Time) (int, error)
}

// Sweeper periodically moves auctions whose end time has passed out of the
// active state. It is a safety net behind the ledger's lazy expiry checks;
// both paths apply the same transition rule.
type Sweeper struct {
	ledger   ExpiryLedger
	interval time.Duration

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSweeper creates a sweeper that runs every interval
func NewSweeper(ledger ExpiryLedger, interval time.Duration) *Sweeper {
	return &Sweeper{
		ledger:   ledger,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background sweep loop. Repeated calls are no-ops.
func (s *Sweeper) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
}

// Stop terminates the sweep loop and waits for it to exit. Safe to call more
// than once, and before Start.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	if s.started.Load() {
		<-s.done
	}
}

func (s *Sweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Sweeper) sweepOnce() {
	swept, err := s.ledger.SweepExpired(time.Now().UTC())
	if err != nil {
		utils.Error("sweeper: sweep failed", map[string]any{"error": err.Error()})
		return
	}
	if swept > 0 {
		utils.Info("sweeper: expired auctions transitioned", map[string]any{"count": swept})
	}
}
