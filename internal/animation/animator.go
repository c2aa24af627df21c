// Package animation drives time based interpolation of scroll position and
// scale between a start state and a target state. One animator instance
// serves a viewport; a new request replaces whatever was running.
package animation

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/gestureview/internal/geom"
)

// DefaultDuration is applied to smooth transitions unless configured
// otherwise.
const DefaultDuration = 400 * time.Millisecond

// Clock supplies the current time to animation ticks. Injected so tests can
// drive frames deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// State is the interpolatable slice of viewport state.
type State struct {
	ScrollX int
	ScrollY int
	Scale   float64
}

// Animator interpolates from a start State to a target State over a fixed
// duration. It holds at most one target; starting a new animation supersedes
// the previous one mid flight.
type Animator struct {
	logger   *zap.Logger
	clock    Clock
	duration time.Duration

	active        bool
	runID         string
	start         State
	end           State
	startTime     time.Time
	animateScroll bool
	animateScale  bool
}

// NewAnimator creates an Animator with the given transition duration. A non
// positive duration falls back to DefaultDuration.
func NewAnimator(duration time.Duration, clock Clock, logger *zap.Logger) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Animator{
		logger:   logger,
		clock:    clock,
		duration: duration,
	}
}

// SetDuration changes the duration applied to future animations. The running
// animation, if any, keeps its original timing.
func (a *Animator) SetDuration(d time.Duration) {
	if d > 0 {
		a.duration = d
	}
}

// Duration returns the duration applied to future animations.
func (a *Animator) Duration() time.Duration { return a.duration }

// StartSlide begins a scroll-only animation from the given state.
func (a *Animator) StartSlide(from State, toX, toY int) {
	end := from
	end.ScrollX = toX
	end.ScrollY = toY
	a.begin(from, end, true, false)
}

// StartScale begins a scale-only animation; the scroll offset stays fixed.
func (a *Animator) StartScale(from State, toScale float64) {
	end := from
	end.Scale = toScale
	a.begin(from, end, false, true)
}

// StartSlideWithScale begins a combined scroll and scale animation.
func (a *Animator) StartSlideWithScale(from State, toX, toY int, toScale float64) {
	a.begin(from, State{ScrollX: toX, ScrollY: toY, Scale: toScale}, true, true)
}

func (a *Animator) begin(from, to State, scroll, scaling bool) {
	if a.active {
		a.logger.Debug("animation superseded", zap.String("runID", a.runID))
	}
	a.runID = uuid.NewString()
	a.start = from
	a.end = to
	a.startTime = a.clock.Now()
	a.animateScroll = scroll
	a.animateScale = scaling
	a.active = true

	a.logger.Debug("animation started",
		zap.String("runID", a.runID),
		zap.Bool("scroll", scroll),
		zap.Bool("scale", scaling),
		zap.Duration("duration", a.duration),
	)
}

// Tick computes the state for the current frame time. It returns the
// interpolated state and whether the animation still has time remaining.
// After the final frame the end state is returned exactly.
func (a *Animator) Tick() (State, bool) {
	if !a.active {
		return a.end, false
	}

	elapsed := a.clock.Now().Sub(a.startTime)
	if elapsed >= a.duration {
		a.active = false
		a.logger.Debug("animation finished", zap.String("runID", a.runID))
		return a.end, false
	}

	t := easeInOutCubic(float64(elapsed) / float64(a.duration))
	state := a.start
	if a.animateScroll {
		state.ScrollX = int(math.Round(geom.Lerp(float64(a.start.ScrollX), float64(a.end.ScrollX), t)))
		state.ScrollY = int(math.Round(geom.Lerp(float64(a.start.ScrollY), float64(a.end.ScrollY), t)))
	}
	if a.animateScale {
		state.Scale = geom.Lerp(a.start.Scale, a.end.Scale, t)
	}
	return state, true
}

// IsRunning reports whether an animation is in flight.
func (a *Animator) IsRunning() bool { return a.active }

// AnimatesScroll reports whether the running animation moves the scroll
// offset. False when idle.
func (a *Animator) AnimatesScroll() bool { return a.active && a.animateScroll }

// AnimatesScale reports whether the running animation changes the scale.
// False when idle.
func (a *Animator) AnimatesScale() bool { return a.active && a.animateScale }

// Stop cancels the running animation without jumping to its end state.
func (a *Animator) Stop() {
	if a.active {
		a.logger.Debug("animation cancelled", zap.String("runID", a.runID))
	}
	a.active = false
}

// easeInOutCubic accelerates through the first half of the transition and
// decelerates through the second.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
