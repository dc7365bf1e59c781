package render

import (
	"context"
	"errors"
	"time"
)

// ErrDone is returned by a Scheduler that has no more frames to give.
var ErrDone = errors.New("render: no more frames")

// Scheduler blocks until the next frame should be drawn.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// Ticker schedules frames at a fixed rate.
type Ticker struct {
	t *time.Ticker
}

// NewTicker returns a scheduler firing fps times per second.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

// Stop releases the underlying ticker.
func (t *Ticker) Stop() {
	t.t.Stop()
}

// Frames schedules exactly n frames without waiting, then returns ErrDone.
type Frames int

func (f *Frames) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if *f <= 0 {
		return ErrDone
	}
	*f--
	return nil
}
