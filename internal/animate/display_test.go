package animate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

func newTestFields() (Fields, *recordingField, *recordingField, *recordingField) {
	y, m, d := newField(config.ValuePlaceholder), newField(config.ValuePlaceholder), newField(config.ValuePlaceholder)
	return Fields{Years: y, Months: m, Days: d}, y, m, d
}

func TestDisplay_Render(t *testing.T) {
	display := &Display{Scheduler: instantScheduler{}, Duration: time.Second, FPS: 60}
	fields, y, m, d := newTestFields()

	err := display.Render(context.Background(), fields, &engine.AgeResult{Years: 23, Months: 11, Days: 25})
	require.NoError(t, err)
	display.Wait()

	assert.Equal(t, "23", y.Text())
	assert.Equal(t, "11", m.Text())
	assert.Equal(t, "25", d.Text())
	assert.Len(t, y.Writes(), 60)
}

func TestDisplay_Render_FromPreviousResult(t *testing.T) {
	display := &Display{Scheduler: instantScheduler{}, Duration: time.Second, FPS: 60}
	fields, y, _, _ := newTestFields()

	require.NoError(t, display.Render(context.Background(), fields, &engine.AgeResult{Years: 40}))
	display.Wait()
	require.NoError(t, display.Render(context.Background(), fields, &engine.AgeResult{Years: 10}))
	display.Wait()

	writes := y.Writes()
	assert.Equal(t, "10", y.Text())
	// The second run starts from 40 and eases down.
	assert.Equal(t, "40", writes[60])
}

func TestDisplay_Render_MalformedResult(t *testing.T) {
	display := &Display{Scheduler: instantScheduler{}, Duration: time.Second, FPS: 60}
	fields, y, m, d := newTestFields()

	err := display.Render(context.Background(), fields, nil)
	assert.ErrorIs(t, err, ErrMalformedResult)
	display.Wait()

	for _, f := range []*recordingField{y, m, d} {
		assert.Empty(t, f.Writes())
	}
}

func TestDisplay_Render_MissingFields(t *testing.T) {
	display := &Display{Scheduler: instantScheduler{}, Duration: time.Second, FPS: 60}
	fields, y, _, _ := newTestFields()
	fields.Days = nil

	err := display.Render(context.Background(), fields, &engine.AgeResult{Years: 1})
	assert.ErrorIs(t, err, ErrMissingFields)
	display.Wait()
	assert.Empty(t, y.Writes())
}

func TestDisplay_Render_NoPartialUpdate(t *testing.T) {
	display := &Display{Scheduler: instantScheduler{}, Duration: time.Second, FPS: 60}
	fields, y, m, d := newTestFields()
	d.text = "not a number"

	err := display.Render(context.Background(), fields, &engine.AgeResult{Years: 1, Months: 2, Days: 3})
	assert.ErrorIs(t, err, ErrInvalidStart)
	display.Wait()

	assert.Empty(t, y.Writes())
	assert.Empty(t, m.Writes())
}

// TestDisplay_Render_ReadsStartOnly checks the single write of a one-step
// animation and that starting values are read exactly once.
func TestDisplay_Render_ReadsStartOnly(t *testing.T) {
	display := &Display{Scheduler: instantScheduler{}, Duration: time.Second, FPS: 1}

	years, months, days := new(MockField), new(MockField), new(MockField)
	for _, f := range []*MockField{years, months, days} {
		f.On("Text").Return(config.ValuePlaceholder).Once()
	}
	years.On("SetText", "5").Once()
	months.On("SetText", "4").Once()
	days.On("SetText", "3").Once()

	fields := Fields{Years: years, Months: months, Days: days}
	require.NoError(t, display.Render(context.Background(), fields, &engine.AgeResult{Years: 5, Months: 4, Days: 3}))
	display.Wait()

	years.AssertExpectations(t)
	months.AssertExpectations(t)
	days.AssertExpectations(t)
}

func TestDisplay_Render_NonPositiveDuration(t *testing.T) {
	display := &Display{Scheduler: instantScheduler{}}
	fields, _, _, _ := newTestFields()

	err := display.Render(context.Background(), fields, &engine.AgeResult{Years: 1})
	assert.ErrorIs(t, err, ErrNonPositiveDuration)
}

// TestDisplay_Render_ReplacesRunningAnimation checks that a resubmission
// stops the previous tickers before the new ones start.
func TestDisplay_Render_ReplacesRunningAnimation(t *testing.T) {
	sched := newManualScheduler()
	display := &Display{Scheduler: sched, Duration: time.Second, FPS: 60}
	fields, y, _, _ := newTestFields()

	require.NoError(t, display.Render(context.Background(), fields, &engine.AgeResult{Years: 30, Months: 6, Days: 6}))
	first := []*manualTicker{<-sched.created, <-sched.created, <-sched.created}

	// Advance every field halfway.
	for _, tk := range first {
		for i := 0; i < 30; i++ {
			tk.c <- time.Time{}
		}
	}
	require.Eventually(t, func() bool { return len(y.Writes()) == 30 }, time.Second, time.Millisecond)
	midway := y.Text()

	require.NoError(t, display.Render(context.Background(), fields, &engine.AgeResult{Years: 10, Months: 1, Days: 1}))
	second := []*manualTicker{<-sched.created, <-sched.created, <-sched.created}

	for _, tk := range first {
		assert.True(t, tk.IsStopped(), "Previous ticker must be stopped")
	}
	for _, tk := range second {
		assert.False(t, tk.IsStopped())
	}

	for _, tk := range second {
		for i := 0; i < 60; i++ {
			tk.c <- time.Time{}
		}
	}
	display.Wait()

	writes := y.Writes()
	assert.Len(t, writes, 90)
	assert.Equal(t, midway, writes[29])
	assert.Equal(t, "10", y.Text())
}

func TestDisplay_Stop(t *testing.T) {
	sched := newManualScheduler()
	display := &Display{Scheduler: sched, Duration: time.Second, FPS: 60}
	fields, _, _, _ := newTestFields()

	require.NoError(t, display.Render(context.Background(), fields, &engine.AgeResult{Years: 30}))
	tickers := []*manualTicker{<-sched.created, <-sched.created, <-sched.created}

	display.Stop()
	for _, tk := range tickers {
		assert.True(t, tk.IsStopped())
	}
}
