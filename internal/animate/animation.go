package animate

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// Precondition failures of an animation. They signal a programming error,
// not bad user input.
var (
	ErrInvalidField        = errors.New(config.ErrInvalidField)
	ErrTargetNotNumeric    = errors.New(config.ErrTargetNotNumeric)
	ErrNonPositiveDuration = errors.New(config.ErrDurationNotPos)
	ErrInvalidStart        = errors.New(config.ErrInvalidStart)
)

// Animation moves one field from Start to Target in TotalSteps ticks.
type Animation struct {
	Field      Field
	Start      float64
	Target     float64
	Step       int
	TotalSteps int

	interval time.Duration
}

// NewAnimation validates the request and reads the start value from field.
// The placeholder text counts as 0. fps <= 0 selects config.AnimationFPS.
func NewAnimation(field Field, target float64, duration time.Duration, fps int) (*Animation, error) {
	if field == nil {
		return nil, ErrInvalidField
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return nil, ErrTargetNotNumeric
	}
	if duration <= 0 {
		return nil, ErrNonPositiveDuration
	}
	if fps <= 0 {
		fps = config.AnimationFPS
	}

	start, err := parseStart(field.Text())
	if err != nil {
		return nil, err
	}

	return &Animation{
		Field:      field,
		Start:      start,
		Target:     target,
		TotalSteps: Steps(duration, fps),
		interval:   time.Second / time.Duration(fps),
	}, nil
}

// Steps returns the tick count for duration at fps, at least 1.
func Steps(duration time.Duration, fps int) int {
	n := int(math.Floor(duration.Seconds() * float64(fps)))
	if n < 1 {
		return 1
	}
	return n
}

// Ease is the smoothstep curve t²(3-2t).
func Ease(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Done reports whether the final step has been shown.
func (a *Animation) Done() bool {
	return a.Step >= a.TotalSteps
}

// Next advances one step and returns the value to display.
func (a *Animation) Next() int {
	if a.Step < a.TotalSteps {
		a.Step++
	}
	progress := float64(a.Step) / float64(a.TotalSteps)
	value := a.Start + Ease(progress)*(a.Target-a.Start)
	// Half-up rounding, also for negative values.
	return int(math.Floor(value + 0.5))
}

// Run writes one value per tick until the animation is done or ctx ends.
// The ticker is always stopped on return.
func (a *Animation) Run(ctx context.Context, s Scheduler) error {
	ticker := s.NewTicker(a.interval)
	defer ticker.Stop()

	for !a.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			a.Field.SetText(strconv.Itoa(a.Next()))
		}
	}
	return nil
}

func parseStart(text string) (float64, error) {
	if text == config.ValuePlaceholder {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidStart
	}
	return v, nil
}
