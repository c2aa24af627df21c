// Package kinetics computes decelerating scroll trajectories for fling
// gestures. A fling converts a release velocity into a bounded travel
// distance and duration, then plays the trajectory back one frame at a time.
package kinetics

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/gestureview/internal/geom"
)

// maxVelocity caps the usable release speed in pixels per second. Detectors
// on fast hardware can report spikes well beyond anything a finger produces.
const maxVelocity = 6000.0

// DefaultFriction is the constant deceleration applied to a fling, in pixels
// per second squared.
const DefaultFriction = 4000.0

// Clock supplies the current time to trajectory playback. Injected so tests
// can drive frames deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Scroller owns at most one fling trajectory at a time. Starting a new fling
// replaces the previous one; ForceFinished cancels playback immediately.
type Scroller struct {
	logger   *zap.Logger
	clock    Clock
	friction float64

	active    bool
	startTime time.Time
	duration  time.Duration

	start geom.Vector2D
	final geom.Vector2D

	currX int
	currY int
}

// NewScroller creates a Scroller with the given deceleration. A zero or
// negative friction falls back to DefaultFriction.
func NewScroller(friction float64, clock Clock, logger *zap.Logger) *Scroller {
	if friction <= 0 {
		friction = DefaultFriction
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scroller{
		logger:   logger,
		clock:    clock,
		friction: friction,
	}
}

// Fling starts a trajectory from (startX, startY) with the given release
// velocity, clamping the end point into [minX, limitX] x [minY, limitY].
// It reports whether there is any motion to play back: a fling whose clamped
// travel is zero never starts.
func (s *Scroller) Fling(startX, startY int, velocityX, velocityY float64, minX, limitX, minY, limitY int) bool {
	velocity := geom.Vector2D{X: velocityX, Y: velocityY}.Limit(maxVelocity)
	speed := velocity.Mag()
	if speed < 1e-6 {
		s.active = false
		return false
	}

	// Uniform deceleration along the release direction: the fling stops
	// after speed/friction seconds having covered speed^2/(2*friction)
	// pixels, split across the axes in proportion to the velocity.
	stopTime := speed / s.friction
	travel := velocity.Mul(stopTime / 2)

	// A fling scrolls against the finger: content follows the gesture, so
	// the scroll offset moves opposite to the release velocity.
	finalX := geom.Clamp(startX-int(math.Round(travel.X)), minX, limitX)
	finalY := geom.Clamp(startY-int(math.Round(travel.Y)), minY, limitY)
	if finalX == startX && finalY == startY {
		s.active = false
		return false
	}

	s.start = geom.Vector2D{X: float64(startX), Y: float64(startY)}
	s.final = geom.Vector2D{X: float64(finalX), Y: float64(finalY)}
	s.currX = startX
	s.currY = startY
	s.startTime = s.clock.Now()
	s.duration = time.Duration(stopTime * float64(time.Second))
	s.active = true

	s.logger.Debug("fling started",
		zap.String("flingID", uuid.NewString()),
		zap.Float64("speed", speed),
		zap.Duration("duration", s.duration),
		zap.Int("finalX", finalX),
		zap.Int("finalY", finalY),
	)
	return true
}

// ComputeScrollOffset advances the trajectory to the current frame time and
// reports whether motion remains. Once it returns false the trajectory is
// finished and CurrX/CurrY hold the final clamped position.
func (s *Scroller) ComputeScrollOffset() bool {
	if !s.active {
		return false
	}

	elapsed := s.clock.Now().Sub(s.startTime)
	if elapsed >= s.duration {
		s.currX = int(math.Round(s.final.X))
		s.currY = int(math.Round(s.final.Y))
		s.active = false
		return false
	}

	t := easeOutCubic(float64(elapsed) / float64(s.duration))
	s.currX = int(math.Round(geom.Lerp(s.start.X, s.final.X, t)))
	s.currY = int(math.Round(geom.Lerp(s.start.Y, s.final.Y, t)))
	return true
}

// CurrX returns the horizontal offset computed by the last ComputeScrollOffset.
func (s *Scroller) CurrX() int { return s.currX }

// CurrY returns the vertical offset computed by the last ComputeScrollOffset.
func (s *Scroller) CurrY() int { return s.currY }

// IsFinished reports whether no trajectory is playing.
func (s *Scroller) IsFinished() bool { return !s.active }

// ForceFinished cancels the trajectory in place. The current position is left
// wherever the last frame put it.
func (s *Scroller) ForceFinished() { s.active = false }

// easeOutCubic decelerates smoothly to a stop, mirroring the feel of a finger
// fling losing momentum.
func easeOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}
