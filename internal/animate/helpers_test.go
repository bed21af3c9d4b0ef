package animate

import (
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// recordingField is a Field that keeps every written value.
type recordingField struct {
	mu     sync.Mutex
	text   string
	writes []string
}

func newField(text string) *recordingField {
	return &recordingField{text: text}
}

func (f *recordingField) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

func (f *recordingField) SetText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	f.writes = append(f.writes, text)
}

func (f *recordingField) Writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

// manualTicker only ticks when the test sends on c.
type manualTicker struct {
	c       chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func newManualTicker() *manualTicker {
	return &manualTicker{c: make(chan time.Time), stopped: make(chan struct{})}
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() { t.once.Do(func() { close(t.stopped) }) }

func (t *manualTicker) IsStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}

// manualScheduler hands out manual tickers in creation order.
type manualScheduler struct {
	created chan *manualTicker
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{created: make(chan *manualTicker, 16)}
}

func (s *manualScheduler) NewTicker(time.Duration) Ticker {
	t := newManualTicker()
	s.created <- t
	return t
}

// instantScheduler ticks as fast as the animation consumes.
type instantScheduler struct{}

func (instantScheduler) NewTicker(time.Duration) Ticker {
	t := newManualTicker()
	go func() {
		for {
			select {
			case t.c <- time.Time{}:
			case <-t.stopped:
				return
			}
		}
	}()
	return t
}

// MockField simulates a Field using testify/mock.
type MockField struct {
	mock.Mock
}

func (m *MockField) Text() string {
	return m.Called().String(0)
}

func (m *MockField) SetText(text string) {
	m.Called(text)
}
