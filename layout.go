package gestureview

import "github.com/xkilldash9x/gestureview/internal/geom"

// Layout records the viewport dimensions delivered by the hosting framework's
// measure/layout pass. Children should be measured at the full scaled content
// size, not the viewport size; hosts read ScaledWidth/ScaledHeight for that.
// Every layout pass re-derives the minimum scale to fit, the centering
// offsets, and re-enforces the scroll constraints.
func (v *View) Layout(viewportWidth, viewportHeight int) {
	if viewportWidth == v.viewportWidth && viewportHeight == v.viewportHeight {
		// Repeated layouts at the same size still re-enforce constraints
		// but skip the notification churn of a full pass.
		v.ConstrainScrollToLimits()
		return
	}

	v.viewportWidth = viewportWidth
	v.viewportHeight = viewportHeight

	// May raise the scale to the new minimum, in which case onScaleChanged
	// has already recomputed the offsets, re-clamped scroll and notified;
	// a second notification for the same pass would double the host's
	// redraw work.
	before := v.scaler.Scale()
	v.scaler.SetViewportSize(viewportWidth, viewportHeight)
	if v.scaler.Scale() != before {
		return
	}

	v.updateOffsets()
	v.scrollX = geom.Clamp(v.scrollX, v.scaler.ScrollMinX(), v.scaler.ScrollLimitX())
	v.scrollY = geom.Clamp(v.scrollY, v.scaler.ScrollMinY(), v.scaler.ScrollLimitY())
	v.notify()
}

// ScaledWidth returns the content width at the current scale. Hosts measure
// children at this size.
func (v *View) ScaledWidth() int { return v.scaler.ScaledWidth() }

// ScaledHeight returns the content height at the current scale.
func (v *View) ScaledHeight() int { return v.scaler.ScaledHeight() }
