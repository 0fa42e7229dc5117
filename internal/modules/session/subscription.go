package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thorvi/playtrack/internal/modules/session/domain"

	"go.uber.org/zap"
)

// Subscription is one active polling subscription. Each Subscribe call
// returns an independent Subscription owning its own timer and inactive
// flag - there is no shared listener registry.
type Subscription struct {
	inactive atomic.Bool
	ticker   *time.Ticker
	done     chan struct{}
	once     sync.Once
}

// Unsubscribe stops future deliveries. It is idempotent. An already
// in-flight fetch is not cancelled, but its result is dropped instead of
// delivered.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.inactive.Store(true)
		s.ticker.Stop()
		close(s.done)
	})
}

// Subscribe approximates live updates by polling: it fetches the full
// session list once immediately, then again on every poll interval, pushing
// each successful result to listener. Fetch failures are logged and the
// listener is simply not called for that tick. Ticks do not wait for earlier
// fetches - if responses arrive out of order, the last one to resolve is the
// last one delivered.
func (s *Store) Subscribe(listener func([]domain.Session)) *Subscription {
	sub := &Subscription{
		ticker: time.NewTicker(s.pollInterval),
		done:   make(chan struct{}),
	}

	deliver := func() {
		sessions, err := s.ListAll(context.Background())
		if err != nil {
			s.logger.Error("session poll failed", zap.Error(err))
			return
		}

		// Checked after the fetch so a response arriving late, after
		// Unsubscribe, is silently dropped.
		if sub.inactive.Load() {
			return
		}

		listener(sessions)
	}

	go deliver()

	go func() {
		for {
			select {
			case <-sub.done:
				return
			case <-sub.ticker.C:
				go deliver()
			}
		}
	}()

	return sub
}
