package animate

import "time"

// Ticker delivers ticks at a fixed interval until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Scheduler creates tickers. It abstracts time.NewTicker for tests.
type Scheduler interface {
	NewTicker(d time.Duration) Ticker
}

// RealScheduler implements Scheduler with the standard time package.
type RealScheduler struct{}

// NewTicker returns a ticker backed by time.Ticker.
func (RealScheduler) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }
