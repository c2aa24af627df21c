// Package frameloop drives a viewport's frame ticks from a dedicated
// goroutine. The engine itself is single threaded; the loop preserves that
// affinity by funneling both gesture events and animation steps through the
// one goroutine it owns, pacing frames with a rate limiter.
package frameloop

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/xkilldash9x/gestureview/api/schemas"
)

// DefaultFrameRate is the frame pacing used when none is configured.
const DefaultFrameRate = 60

// Stepper is the slice of the viewport coordinator the loop drives.
type Stepper interface {
	HandleEvent(ev schemas.GestureEvent) bool
	Step() bool
}

// Loop owns the goroutine on which all viewport mutations run. While an
// animation reports more frames, the loop ticks at the configured frame rate;
// otherwise it sleeps until the next dispatched event.
type Loop struct {
	logger  *zap.Logger
	view    Stepper
	limiter *rate.Limiter
	events  chan schemas.GestureEvent

	group  *errgroup.Group
	cancel context.CancelFunc
}

// New creates a Loop for the given view. A frameRate of zero or below falls
// back to DefaultFrameRate.
func New(view Stepper, frameRate int, logger *zap.Logger) *Loop {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		logger:  logger,
		view:    view,
		limiter: rate.NewLimiter(rate.Limit(frameRate), 1),
		events:  make(chan schemas.GestureEvent, 64),
	}
}

// Start launches the loop goroutine. It returns immediately; Stop shuts the
// loop down and waits for it to exit.
func (l *Loop) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	l.group, ctx = errgroup.WithContext(ctx)
	l.group.Go(func() error { return l.run(ctx) })
}

// Dispatch hands a gesture event to the loop goroutine. It blocks when the
// event queue is full, returning the context error on cancellation.
func (l *Loop) Dispatch(ctx context.Context, ev schemas.GestureEvent) error {
	select {
	case l.events <- ev:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("frameloop: dispatch aborted: %w", ctx.Err())
	}
}

// Stop cancels the loop and waits for the goroutine to exit.
func (l *Loop) Stop() error {
	if l.cancel == nil {
		return nil
	}
	l.cancel()
	return l.group.Wait()
}

func (l *Loop) run(ctx context.Context) error {
	l.logger.Debug("frame loop started")
	defer l.logger.Debug("frame loop stopped")

	needFrame := false
	for {
		if !needFrame {
			// Nothing animating: sleep until the next event.
			select {
			case <-ctx.Done():
				return nil
			case ev := <-l.events:
				l.view.HandleEvent(ev)
				needFrame = true
			}
			continue
		}

		if err := l.limiter.Wait(ctx); err != nil {
			return nil
		}

		// Apply whatever arrived during the frame wait before stepping.
	drain:
		for {
			select {
			case ev := <-l.events:
				l.view.HandleEvent(ev)
			default:
				break drain
			}
		}

		needFrame = l.view.Step()
	}
}
