package animate

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// Render failures detected before any field is touched.
var (
	ErrMalformedResult = errors.New(config.ErrMalformedResult)
	ErrMissingFields   = errors.New(config.ErrMissingFields)
)

// Display animates age results into a set of fields.
// A field never runs two animations: starting a new one cancels the old one.
type Display struct {
	Scheduler Scheduler
	Duration  time.Duration
	FPS       int

	mu      sync.Mutex
	running map[string]*run
	wg      sync.WaitGroup
}

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDisplay returns a Display using real tickers and the default timing.
func NewDisplay() *Display {
	return &Display{
		Scheduler: RealScheduler{},
		Duration:  config.AnimationDuration,
		FPS:       config.AnimationFPS,
	}
}

type target struct {
	name  string
	field Field
	value int
}

// Render starts one animation per field towards result.
// Nothing is written when result or a field is missing, or when any of the
// three animations fails its preconditions.
func (d *Display) Render(ctx context.Context, fields Fields, result *engine.AgeResult) error {
	log := slog.With(config.LogKeyComponent, config.CompAnimator)

	if result == nil {
		log.ErrorContext(ctx, config.ErrMalformedResult)
		return ErrMalformedResult
	}
	if fields.Years == nil || fields.Months == nil || fields.Days == nil {
		log.ErrorContext(ctx, config.ErrMissingFields)
		return ErrMissingFields
	}

	targets := []target{
		{config.FieldYearValue, fields.Years, result.Years},
		{config.FieldMonthValue, fields.Months, result.Months},
		{config.FieldDayValue, fields.Days, result.Days},
	}

	log.DebugContext(ctx, config.MsgRenderStarted,
		config.LogKeyYears, result.Years,
		config.LogKeyMonths, result.Months,
		config.LogKeyDays, result.Days)

	d.mu.Lock()
	defer d.mu.Unlock()

	// Stop previous writers first so start values are read from settled text.
	for _, t := range targets {
		d.cancelLocked(t.name)
	}

	anims := make([]*Animation, len(targets))
	for i, t := range targets {
		a, err := NewAnimation(t.field, float64(t.value), d.Duration, d.FPS)
		if err != nil {
			log.ErrorContext(ctx, config.ErrAnimationAborted,
				config.LogKeyField, t.name,
				config.LogKeyError, err)
			return err
		}
		anims[i] = a
	}

	for i, t := range targets {
		d.startLocked(ctx, t.name, anims[i])
	}
	return nil
}

// Wait blocks until every running animation has returned.
func (d *Display) Wait() {
	d.wg.Wait()
}

// Stop cancels all running animations and waits for them.
func (d *Display) Stop() {
	d.mu.Lock()
	for name := range d.running {
		d.cancelLocked(name)
	}
	d.mu.Unlock()
	d.Wait()
}

func (d *Display) cancelLocked(name string) {
	r, ok := d.running[name]
	if !ok {
		return
	}
	slog.Debug(config.MsgAnimCancelled,
		config.LogKeyComponent, config.CompAnimator,
		config.LogKeyField, name)
	r.cancel()
	<-r.done
	delete(d.running, name)
}

func (d *Display) startLocked(ctx context.Context, name string, a *Animation) {
	if d.running == nil {
		d.running = make(map[string]*run)
	}
	scheduler := d.Scheduler
	if scheduler == nil {
		scheduler = RealScheduler{}
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &run{cancel: cancel, done: make(chan struct{})}
	d.running[name] = r

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		err := a.Run(runCtx, scheduler)
		close(r.done)

		d.mu.Lock()
		if d.running[name] == r {
			delete(d.running, name)
		}
		d.mu.Unlock()
		cancel()

		if err == nil {
			slog.Debug(config.MsgAnimFinished,
				config.LogKeyComponent, config.CompAnimator,
				config.LogKeyField, name,
				config.LogKeyTarget, a.Target,
				config.LogKeySteps, a.TotalSteps)
		}
	}()
}
