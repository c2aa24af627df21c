package gestureview

import (
	"math"

	"go.uber.org/zap"

	"github.com/xkilldash9x/gestureview/api/schemas"
)

// HandleEvent is the single dispatch entry point for classified gesture
// events. It returns whether the event was consumed. Unknown event types are
// ignored and reported unconsumed.
//
// Interruption semantics: any direct gesture (down, pan, pinch) cancels an
// in-flight fling and any running animation before taking effect; a fling
// event replaces a previous fling outright.
func (v *View) HandleEvent(ev schemas.GestureEvent) bool {
	switch ev.Type {
	case schemas.GestureDown:
		return v.onDown()
	case schemas.GesturePan:
		return v.onPan(ev)
	case schemas.GestureFling:
		return v.onFling(ev)
	case schemas.GestureTouchUp:
		return v.onTouchUp()
	case schemas.GesturePinch:
		return v.onPinch(ev)
	case schemas.GestureDoubleTap:
		return v.onDoubleTap(ev)
	case schemas.GestureSingleTap:
		return v.onSingleTapEvent(ev)
	case schemas.GestureRotate:
		return v.onRotate(ev)
	default:
		v.logger.Debug("unhandled gesture", zap.String("type", string(ev.Type)))
		return false
	}
}

// onDown handles the initial pointer contact. Touching the surface while a
// fling is decaying or an animation is playing stops the motion in place; the
// user's finger wins over any programmatic transition.
func (v *View) onDown() bool {
	v.interruptFling()
	v.animator.Stop()
	return true
}

// onPan handles an incremental drag delta. Any fling or animation still in
// progress is terminated first so a later frame tick cannot re-apply its
// interpolated position over the drag.
func (v *View) onPan(ev schemas.GestureEvent) bool {
	v.interruptFling()
	v.animator.Stop()
	v.isDragging = true
	v.ScrollTo(
		v.scrollX+int(math.Round(ev.DeltaX)),
		v.scrollY+int(math.Round(ev.DeltaY)),
	)
	return true
}

// onTouchUp ends the drag. A fling, if one was classified from the release,
// arrives as its own event.
func (v *View) onTouchUp() bool {
	v.isDragging = false
	return true
}

// onFling starts a decelerating trajectory from the release velocity, bounded
// by the scroll limits. A fling whose clamped travel is zero never starts.
func (v *View) onFling(ev schemas.GestureEvent) bool {
	v.interruptFling()
	v.isDragging = false

	started := v.scroller.Fling(
		v.scrollX, v.scrollY,
		ev.VelocityX, ev.VelocityY,
		v.scaler.ScrollMinX(), v.scaler.ScrollLimitX(),
		v.scaler.ScrollMinY(), v.scaler.ScrollLimitY(),
	)
	v.isFlinging = started
	return true
}

// onPinch handles the pinch lifecycle. Each update multiplies the current
// scale by the incremental factor and applies it anchored at the reported
// focus point, so the content under the fingers stays under the fingers.
func (v *View) onPinch(ev schemas.GestureEvent) bool {
	switch ev.Phase {
	case schemas.PhaseBegin:
		v.interruptFling()
		v.animator.Stop()
		v.pinchActive = true
	case schemas.PhaseUpdate:
		if !v.pinchActive || ev.Factor <= 0 {
			return false
		}
		v.SetScaleFromPosition(ev.FocusX, ev.FocusY, v.scaler.Scale()*ev.Factor)
	case schemas.PhaseEnd:
		v.pinchActive = false
	default:
		return false
	}
	return true
}

// onDoubleTap zooms to the next power-of-two scale step, anchored at the tap
// point. Once the ceiling is reached the next tap toggles back to the
// minimum scale.
func (v *View) onDoubleTap(ev schemas.GestureEvent) bool {
	current := v.scaler.Scale()
	candidate := math.Pow(2, math.Floor(math.Log2(current*2)))
	destination := v.scaler.DoubleTapDestinationScale(candidate, current)
	v.SmoothScaleFromFocalPoint(ev.X, ev.Y, destination)
	return true
}

// onSingleTapEvent surfaces confirmed single taps to the host. Consumed only
// when a callback is registered.
func (v *View) onSingleTapEvent(ev schemas.GestureEvent) bool {
	if v.onSingleTap == nil {
		return false
	}
	v.onSingleTap(ev.X, ev.Y)
	return true
}

// onRotate tracks the accumulated rotation angle but deliberately leaves the
// scroll and scale math untouched; rotation is not applied to the layout.
func (v *View) onRotate(ev schemas.GestureEvent) bool {
	switch ev.Phase {
	case schemas.PhaseBegin, schemas.PhaseEnd:
		v.logger.Debug("rotation gesture", zap.String("phase", string(ev.Phase)))
	case schemas.PhaseUpdate:
		v.rotation += ev.Delta
		v.logger.Debug("rotation gesture",
			zap.Float64("delta", ev.Delta),
			zap.Float64("rotation", v.rotation),
			zap.Float64("focusX", ev.FocusX),
			zap.Float64("focusY", ev.FocusY),
		)
	default:
		return false
	}
	return true
}
