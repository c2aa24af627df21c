// Package scale owns the zoom factor and content geometry for a viewport:
// base and scaled content dimensions, the dynamic minimum scale to fit, the
// configured maximum scale, and the scroll bounds derived from them.
package scale

import (
	"math"

	"go.uber.org/zap"

	"github.com/xkilldash9x/gestureview/internal/geom"
)

// scaleEqualityTolerance absorbs the floating point drift accumulated by
// incremental pinch factors, so comparisons against the scale ceiling do not
// rely on exact equality.
const scaleEqualityTolerance = 1e-9

// Controller is the single source of truth for the scale factor and content
// sizing. All scale mutations clamp into [minScale, maxScale] before storing.
type Controller struct {
	logger *zap.Logger

	baseWidth  int
	baseHeight int

	viewportWidth  int
	viewportHeight int

	scale    float64
	minScale float64
	maxScale float64

	imagePadding int

	// onChanged fires after any committed scale change so the coordinator
	// can re-clamp scroll and request a redraw. Never fired for no-op sets.
	onChanged func()
}

// NewController creates a Controller with the given scale ceiling. The scale
// starts at 1.0 and the lower bound stays open until both content and
// viewport sizes are known.
func NewController(maxScale float64, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxScale <= 0 {
		maxScale = 1.0
	}
	return &Controller{
		logger:   logger,
		scale:    1.0,
		maxScale: maxScale,
	}
}

// SetOnChanged registers the callback fired after every committed scale change.
func (c *Controller) SetOnChanged(fn func()) { c.onChanged = fn }

// SetSize establishes the base (unscaled) content dimensions and recomputes
// the minimum scale to fit.
func (c *Controller) SetSize(width, height int) {
	c.baseWidth = width
	c.baseHeight = height
	c.CalculateMinimumScaleToFit()
}

// SetViewportSize records the hosting viewport dimensions and recomputes the
// minimum scale to fit.
func (c *Controller) SetViewportSize(width, height int) {
	c.viewportWidth = width
	c.viewportHeight = height
	c.CalculateMinimumScaleToFit()
}

// SetImagePadding sets the extra scrollable margin beyond the content edges,
// in base content pixels. The effective margin scales with the current scale.
func (c *Controller) SetImagePadding(padding int) { c.imagePadding = padding }

// Scale returns the current scale factor.
func (c *Controller) Scale() float64 { return c.scale }

// MinScale returns the current lower scale bound.
func (c *Controller) MinScale() float64 { return c.minScale }

// MaxScale returns the configured upper scale bound.
func (c *Controller) MaxScale() float64 { return c.maxScale }

// BaseWidth returns the unscaled content width.
func (c *Controller) BaseWidth() int { return c.baseWidth }

// BaseHeight returns the unscaled content height.
func (c *Controller) BaseHeight() int { return c.baseHeight }

// SetScale clamps the requested scale into bounds and stores it. Dependent
// sizes are recomputed and the changed callback fires, but only when the
// clamped value actually differs from the current scale.
func (c *Controller) SetScale(requested float64) {
	constrained := c.ConstrainedDestinationScale(requested)
	if constrained == c.scale {
		return
	}
	c.scale = constrained
	if c.onChanged != nil {
		c.onChanged()
	}
}

// ScaledWidth returns the content width at the current scale.
func (c *Controller) ScaledWidth() int {
	return int(math.Round(float64(c.baseWidth) * c.scale))
}

// ScaledHeight returns the content height at the current scale.
func (c *Controller) ScaledHeight() int {
	return int(math.Round(float64(c.baseHeight) * c.scale))
}

// ScaledPadding returns the image padding at the current scale.
func (c *Controller) ScaledPadding() int {
	return int(math.Round(float64(c.imagePadding) * c.scale))
}

// CalculateMinimumScaleToFit recomputes the lower scale bound as the smallest
// scale at which the content still covers the viewport on both axes:
// max(viewportW/baseW, viewportH/baseH). If the current scale falls below the
// new bound it is raised to it. With a zero sized viewport or content the
// recompute is deferred until real dimensions arrive.
func (c *Controller) CalculateMinimumScaleToFit() {
	if c.baseWidth <= 0 || c.baseHeight <= 0 || c.viewportWidth <= 0 || c.viewportHeight <= 0 {
		return
	}
	minX := float64(c.viewportWidth) / float64(c.baseWidth)
	minY := float64(c.viewportHeight) / float64(c.baseHeight)
	recalculated := math.Max(minX, minY)
	if recalculated == c.minScale {
		return
	}
	c.minScale = recalculated
	c.logger.Debug("recomputed minimum scale to fit",
		zap.Float64("minScale", recalculated),
		zap.Int("viewportWidth", c.viewportWidth),
		zap.Int("viewportHeight", c.viewportHeight),
	)
	if c.scale < recalculated {
		c.SetScale(recalculated)
	}
}

// ConstrainedDestinationScale clamps a requested scale into bounds. Used
// before starting any animated or direct scale change.
func (c *Controller) ConstrainedDestinationScale(requested float64) float64 {
	return geom.ClampF(requested, c.minScale, c.maxScale)
}

// DoubleTapDestinationScale resolves the next scale for a double tap. When
// the current scale has reached the ceiling, the next tap toggles back toward
// the minimum instead of trying to exceed it; otherwise the candidate is
// clamped normally. The ceiling check uses a tolerance, not exact equality:
// incremental pinch math leaves the stored scale epsilon short of maxScale
// and an exact comparison would never take the toggle branch.
func (c *Controller) DoubleTapDestinationScale(candidate, current float64) float64 {
	if current >= c.maxScale-scaleEqualityTolerance {
		return c.minScale
	}
	return c.ConstrainedDestinationScale(candidate)
}

// Scroll bounds, derived from the scaled content size, the viewport size and
// the scaled padding. The valid scroll range is [ScrollMin, ScrollLimit] per
// axis; a limit below its minimum means the content is smaller than the
// viewport on that axis and the range collapses.

// ScrollMinX returns the smallest valid horizontal scroll offset.
func (c *Controller) ScrollMinX() int { return -c.ScaledPadding() }

// ScrollMinY returns the smallest valid vertical scroll offset.
func (c *Controller) ScrollMinY() int { return -c.ScaledPadding() }

// ScrollLimitX returns the largest valid horizontal scroll offset.
func (c *Controller) ScrollLimitX() int {
	return c.ScaledWidth() - c.viewportWidth + c.ScaledPadding()
}

// ScrollLimitY returns the largest valid vertical scroll offset.
func (c *Controller) ScrollLimitY() int {
	return c.ScaledHeight() - c.viewportHeight + c.ScaledPadding()
}

// ScrollBoundsAt returns the scroll bounds as they will be once the given
// scale is applied, as (minX, limitX, minY, limitY). Animated transitions
// clamp their scroll targets against the destination bounds rather than the
// current ones.
func (c *Controller) ScrollBoundsAt(scale float64) (int, int, int, int) {
	scaledW := int(math.Round(float64(c.baseWidth) * scale))
	scaledH := int(math.Round(float64(c.baseHeight) * scale))
	padding := int(math.Round(float64(c.imagePadding) * scale))
	return -padding, scaledW - c.viewportWidth + padding,
		-padding, scaledH - c.viewportHeight + padding
}
