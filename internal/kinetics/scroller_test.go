package kinetics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeClock hands out a controllable time to the scroller.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestScroller(t *testing.T) (*Scroller, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	return NewScroller(DefaultFriction, clock, zaptest.NewLogger(t)), clock
}

func TestFling_ZeroVelocityDoesNotStart(t *testing.T) {
	s, _ := newTestScroller(t)
	started := s.Fling(0, 0, 0, 0, -100, 100, -100, 100)
	assert.False(t, started)
	assert.True(t, s.IsFinished())
}

func TestFling_TravelFullyClampedDoesNotStart(t *testing.T) {
	s, _ := newTestScroller(t)
	// Already at the limit and flinging further in the same direction:
	// the clamped travel is zero, so there is nothing to animate.
	started := s.Fling(0, 0, 3000, 0, 0, 100, 0, 100)
	assert.False(t, started)
}

func TestFling_DeceleratesToRest(t *testing.T) {
	s, clock := newTestScroller(t)

	// 2000 px/s against 4000 px/s^2 friction: stops after 0.5s having
	// covered 250 px. Scroll moves opposite to the release velocity.
	started := s.Fling(0, 0, -2000, 0, -1000, 1000, -1000, 1000)
	require.True(t, started)

	clock.advance(100 * time.Millisecond)
	require.True(t, s.ComputeScrollOffset())
	firstX := s.CurrX()
	assert.Greater(t, firstX, 0)
	assert.Less(t, firstX, 250)

	clock.advance(100 * time.Millisecond)
	require.True(t, s.ComputeScrollOffset())
	secondX := s.CurrX()
	assert.Greater(t, secondX, firstX, "offset keeps advancing while motion remains")

	// Ease-out: the first 100ms covers more ground than the second.
	assert.Greater(t, firstX, secondX-firstX)

	clock.advance(time.Second)
	assert.False(t, s.ComputeScrollOffset(), "no motion remains past the stop time")
	assert.Equal(t, 250, s.CurrX())
	assert.Equal(t, 0, s.CurrY())
	assert.True(t, s.IsFinished())
}

func TestFling_EndPointClampedToBounds(t *testing.T) {
	s, clock := newTestScroller(t)

	// Unclamped travel would be 450 px; the limit cuts it at 100.
	started := s.Fling(0, 0, -6000, 0, -100, 100, -100, 100)
	require.True(t, started)

	clock.advance(10 * time.Second)
	assert.False(t, s.ComputeScrollOffset())
	assert.Equal(t, 100, s.CurrX())
}

func TestForceFinished_StopsPlayback(t *testing.T) {
	s, clock := newTestScroller(t)
	require.True(t, s.Fling(0, 0, -2000, -2000, -1000, 1000, -1000, 1000))

	clock.advance(50 * time.Millisecond)
	require.True(t, s.ComputeScrollOffset())

	s.ForceFinished()
	assert.True(t, s.IsFinished())
	assert.False(t, s.ComputeScrollOffset())
}

func TestFling_VelocityCapped(t *testing.T) {
	s, clock := newTestScroller(t)

	// 100000 px/s is capped to 6000, which stops after 1.5s / 4500 px.
	require.True(t, s.Fling(0, 0, -100000, 0, -100000, 100000, -100000, 100000))
	clock.advance(10 * time.Second)
	s.ComputeScrollOffset()
	assert.Equal(t, 4500, s.CurrX())
}
