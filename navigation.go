package gestureview

import (
	"math"

	"github.com/xkilldash9x/gestureview/internal/animation"
	"github.com/xkilldash9x/gestureview/internal/geom"
)

// currentAnimationState captures the interpolatable slice of the viewport for
// use as an animation start point.
func (v *View) currentAnimationState() animation.State {
	return animation.State{
		ScrollX: v.scrollX,
		ScrollY: v.scrollY,
		Scale:   v.scaler.Scale(),
	}
}

// SlideTo starts a smooth scroll-only transition to the given position,
// clamped into the scroll bounds.
func (v *View) SlideTo(x, y int) {
	v.interruptFling()
	targetX := geom.Clamp(x, v.scaler.ScrollMinX(), v.scaler.ScrollLimitX())
	targetY := geom.Clamp(y, v.scaler.ScrollMinY(), v.scaler.ScrollLimitY())
	v.animator.StartSlide(v.currentAnimationState(), targetX, targetY)
}

// SlideToAndCenter starts a smooth scroll that centers the given scaled
// content point in the viewport.
func (v *View) SlideToAndCenter(x, y int) {
	v.SlideTo(x-v.HalfWidth(), y-v.HalfHeight())
}

// SlideToAndCenterWithScale starts a combined scroll and scale transition
// that ends centered on the given point, expressed in content pixels at the
// destination scale. The scroll target is clamped against the bounds the
// viewport will have once the destination scale is applied.
func (v *View) SlideToAndCenterWithScale(x, y int, requestedScale float64) {
	v.interruptFling()
	destScale := v.scaler.ConstrainedDestinationScale(requestedScale)
	minX, limitX, minY, limitY := v.scaler.ScrollBoundsAt(destScale)
	targetX := geom.Clamp(x-v.HalfWidth(), minX, limitX)
	targetY := geom.Clamp(y-v.HalfHeight(), minY, limitY)
	v.animator.StartSlideWithScale(v.currentAnimationState(), targetX, targetY, destScale)
}

// SmoothScaleTo starts an animated scale-only change. The viewport origin
// stays fixed; no focal point is preserved.
func (v *View) SmoothScaleTo(requestedScale float64) {
	destScale := v.scaler.ConstrainedDestinationScale(requestedScale)
	if destScale == v.scaler.Scale() {
		return
	}
	v.interruptFling()
	v.animator.StartScale(v.currentAnimationState(), destScale)
}

// SmoothScaleFromFocalPoint starts an animated scale change that keeps the
// content point under the viewport point (focusX, focusY) visually fixed. A
// request whose constrained destination equals the current scale is a no-op,
// avoiding a zero-delta animation.
func (v *View) SmoothScaleFromFocalPoint(focusX, focusY float64, requestedScale float64) {
	destScale := v.scaler.ConstrainedDestinationScale(requestedScale)
	currentScale := v.scaler.Scale()
	if destScale == currentScale {
		return
	}
	v.interruptFling()

	targetX, targetY := v.focalScrollTarget(focusX, focusY, currentScale, destScale)
	v.animator.StartSlideWithScale(v.currentAnimationState(), targetX, targetY, destScale)
}

// SmoothScaleFromCenter is SmoothScaleFromFocalPoint anchored at the viewport
// center.
func (v *View) SmoothScaleFromCenter(requestedScale float64) {
	v.SmoothScaleFromFocalPoint(float64(v.HalfWidth()), float64(v.HalfHeight()), requestedScale)
}

// SetScaleFromPosition is the immediate, non-animated focal point scale
// operation: it applies the scale, re-clamps the focal-preserving scroll
// against the new bounds, and scrolls there in one step.
func (v *View) SetScaleFromPosition(offsetX, offsetY float64, requestedScale float64) {
	destScale := v.scaler.ConstrainedDestinationScale(requestedScale)
	currentScale := v.scaler.Scale()
	if destScale == currentScale {
		return
	}

	targetX, targetY := v.focalScrollTarget(offsetX, offsetY, currentScale, destScale)
	v.scaler.SetScale(destScale)
	v.ScrollTo(targetX, targetY)
}

// SetScaleFromCenter is SetScaleFromPosition anchored at the viewport center.
func (v *View) SetScaleFromCenter(requestedScale float64) {
	v.SetScaleFromPosition(float64(v.HalfWidth()), float64(v.HalfHeight()), requestedScale)
}

// focalScrollTarget computes the scroll offset that keeps the content point
// under the viewport point (focusX, focusY) in place across a scale change:
// newScroll = (oldScroll + focus) * (dest/current) - focus per axis, clamped
// against the destination bounds.
func (v *View) focalScrollTarget(focusX, focusY, currentScale, destScale float64) (int, int) {
	ratio := destScale / currentScale
	newX := (float64(v.scrollX)+focusX)*ratio - focusX
	newY := (float64(v.scrollY)+focusY)*ratio - focusY
	minX, limitX, minY, limitY := v.scaler.ScrollBoundsAt(destScale)
	return geom.Clamp(int(math.Round(newX)), minX, limitX),
		geom.Clamp(int(math.Round(newY)), minY, limitY)
}

// interruptFling force-terminates an in-flight fling. Any direct gesture or
// new programmatic transition cancels the trajectory before taking over.
func (v *View) interruptFling() {
	if !v.isFlinging {
		return
	}
	v.scroller.ForceFinished()
	v.isFlinging = false
	v.logger.Debug("fling interrupted")
}
