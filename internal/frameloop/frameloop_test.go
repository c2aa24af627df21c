package frameloop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/gestureview/api/schemas"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubView counts calls and animates for a fixed number of frames after each
// event. Only the loop goroutine touches it; atomics let the test peek.
type stubView struct {
	events         atomic.Int64
	steps          atomic.Int64
	framesPerEvent int
	remaining      int
}

func (s *stubView) HandleEvent(schemas.GestureEvent) bool {
	s.events.Add(1)
	s.remaining = s.framesPerEvent
	return true
}

func (s *stubView) Step() bool {
	s.steps.Add(1)
	if s.remaining > 0 {
		s.remaining--
	}
	return s.remaining > 0
}

func TestLoop_StartStopLeavesNoGoroutines(t *testing.T) {
	view := &stubView{}
	loop := New(view, 240, zaptest.NewLogger(t))
	loop.Start(context.Background())
	require.NoError(t, loop.Stop())
}

func TestLoop_StopWithoutStart(t *testing.T) {
	loop := New(&stubView{}, 0, zaptest.NewLogger(t))
	assert.NoError(t, loop.Stop())
}

func TestLoop_DispatchedEventsReachTheView(t *testing.T) {
	view := &stubView{framesPerEvent: 3}
	loop := New(view, 1000, zaptest.NewLogger(t))
	loop.Start(context.Background())
	defer loop.Stop()

	ctx := context.Background()
	require.NoError(t, loop.Dispatch(ctx, schemas.GestureEvent{Type: schemas.GesturePan, DeltaX: 5}))
	require.NoError(t, loop.Dispatch(ctx, schemas.GestureEvent{Type: schemas.GestureTouchUp}))

	assert.Eventually(t, func() bool {
		return view.events.Load() == 2
	}, time.Second, 5*time.Millisecond, "both events handled on the loop goroutine")

	assert.Eventually(t, func() bool {
		return view.steps.Load() >= 3
	}, time.Second, 5*time.Millisecond, "animation frames keep ticking until the view settles")
}

func TestLoop_IdleWithoutAnimation(t *testing.T) {
	view := &stubView{framesPerEvent: 0}
	loop := New(view, 1000, zaptest.NewLogger(t))
	loop.Start(context.Background())
	defer loop.Stop()

	require.NoError(t, loop.Dispatch(context.Background(), schemas.GestureEvent{Type: schemas.GestureDown}))
	assert.Eventually(t, func() bool {
		return view.events.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// One settling step after the event, then the loop must go back to
	// sleep instead of spinning.
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, view.steps.Load(), int64(1))
}

func TestLoop_DispatchAbortsOnCancelledContext(t *testing.T) {
	view := &stubView{}
	loop := New(view, 60, zaptest.NewLogger(t))
	// Deliberately not started: fill the queue, then cancel.
	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < cap(loop.events); i++ {
		require.NoError(t, loop.Dispatch(ctx, schemas.GestureEvent{Type: schemas.GestureDown}))
	}
	cancel()
	err := loop.Dispatch(ctx, schemas.GestureEvent{Type: schemas.GestureDown})
	assert.ErrorIs(t, err, context.Canceled)
}
