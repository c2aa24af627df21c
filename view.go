// Package gestureview implements a gesture-to-transform coordination engine
// for pan/zoom viewports. It integrates drag, pinch, fling, double tap and
// rotation gesture streams with programmatic navigation into one
// authoritative scroll offset and scale, enforcing scroll limits and scale
// bounds on every mutation.
//
// The engine is single threaded by design: gesture callbacks, layout passes
// and animation ticks are expected to arrive sequentially on one goroutine,
// the way UI frameworks dispatch them. The frameloop package provides a
// ready made driver that preserves this affinity.
package gestureview

import (
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/gestureview/api/schemas"
	"github.com/xkilldash9x/gestureview/internal/animation"
	"github.com/xkilldash9x/gestureview/internal/geom"
	"github.com/xkilldash9x/gestureview/internal/kinetics"
	"github.com/xkilldash9x/gestureview/internal/scale"
)

// Clock supplies frame times to the fling scroller and animator. Injected via
// NewWithClock for deterministic tests; New uses the system clock.
type Clock interface {
	Now() time.Time
}

// Config holds the tunable parameters of a View.
type Config struct {
	// MaxScale is the fixed upper zoom bound. The lower bound is computed
	// dynamically as the minimum scale at which content covers the
	// viewport.
	MaxScale float64
	// AnimationDuration applies to all smooth transitions.
	AnimationDuration time.Duration
	// ImagePadding is extra scrollable margin beyond the content edges, in
	// base content pixels. It scales with the current zoom.
	ImagePadding int
	// FlingFriction is the fling deceleration in pixels per second squared.
	FlingFriction float64
}

// DefaultConfig returns the configuration used by New when callers have no
// opinion.
func DefaultConfig() Config {
	return Config{
		MaxScale:          2.0,
		AnimationDuration: animation.DefaultDuration,
		ImagePadding:      0,
		FlingFriction:     kinetics.DefaultFriction,
	}
}

// View is the viewport/transform coordinator: the single source of truth for
// scroll offset and scale. All gesture detectors, animations and programmatic
// callers funnel through its constrained setters, so the invariants
// minScale <= scale <= maxScale and scrollMin <= scroll <= scrollLimit hold
// after every mutation.
type View struct {
	logger *zap.Logger

	scaler   *scale.Controller
	scroller *kinetics.Scroller
	animator *animation.Animator

	scrollX  int
	scrollY  int
	rotation float64

	viewportWidth  int
	viewportHeight int

	// offsetX/offsetY center the content inside the viewport when the
	// scaled content is smaller on an axis. Zero otherwise.
	offsetX int
	offsetY int

	isDragging  bool
	isFlinging  bool
	pinchActive bool

	onChange    func(schemas.ViewportState)
	onSingleTap func(x, y float64)
}

// New creates a View with the system clock. A nil logger is replaced with a
// no-op logger.
func New(cfg Config, logger *zap.Logger) *View {
	return NewWithClock(cfg, logger, kinetics.SystemClock{})
}

// NewWithClock creates a View whose fling and animation timing comes from the
// given clock. All helper objects are constructed eagerly.
func NewWithClock(cfg Config, logger *zap.Logger, clock Clock) *View {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxScale <= 0 {
		cfg.MaxScale = DefaultConfig().MaxScale
	}

	v := &View{
		logger:   logger,
		scaler:   scale.NewController(cfg.MaxScale, logger),
		scroller: kinetics.NewScroller(cfg.FlingFriction, clock, logger),
		animator: animation.NewAnimator(cfg.AnimationDuration, clock, logger),
	}
	v.scaler.SetImagePadding(cfg.ImagePadding)
	v.scaler.SetOnChanged(v.onScaleChanged)
	return v
}

// SetOnChange registers the callback invoked after every committed change to
// the viewport state. Hosts use it as their redraw signal.
func (v *View) SetOnChange(fn func(schemas.ViewportState)) { v.onChange = fn }

// SetOnSingleTap registers an optional callback for confirmed single taps,
// receiving the tap position in viewport coordinates.
func (v *View) SetOnSingleTap(fn func(x, y float64)) { v.onSingleTap = fn }

// SetSize establishes the base content dimensions, distinct from the viewport
// size supplied through Layout.
func (v *View) SetSize(width, height int) {
	v.scaler.SetSize(width, height)
	v.updateOffsets()
	v.ConstrainScrollToLimits()
}

// SetImagePadding sets the extra scrollable margin beyond the content edges.
func (v *View) SetImagePadding(padding int) {
	v.scaler.SetImagePadding(padding)
	v.ConstrainScrollToLimits()
}

// SetAnimationDuration changes the duration applied to future smooth
// transitions.
func (v *View) SetAnimationDuration(d time.Duration) { v.animator.SetDuration(d) }

// Scale returns the current scale factor.
func (v *View) Scale() float64 { return v.scaler.Scale() }

// MinScale returns the current dynamic lower scale bound.
func (v *View) MinScale() float64 { return v.scaler.MinScale() }

// MaxScale returns the configured upper scale bound.
func (v *View) MaxScale() float64 { return v.scaler.MaxScale() }

// ScrollX returns the current horizontal scroll offset in scaled pixels.
func (v *View) ScrollX() int { return v.scrollX }

// ScrollY returns the current vertical scroll offset in scaled pixels.
func (v *View) ScrollY() int { return v.scrollY }

// OffsetX returns the horizontal centering offset applied when the scaled
// content is narrower than the viewport.
func (v *View) OffsetX() int { return v.offsetX }

// OffsetY returns the vertical centering offset applied when the scaled
// content is shorter than the viewport.
func (v *View) OffsetY() int { return v.offsetY }

// HalfWidth returns half the viewport width.
func (v *View) HalfWidth() int { return v.viewportWidth / 2 }

// HalfHeight returns half the viewport height.
func (v *View) HalfHeight() int { return v.viewportHeight / 2 }

// Rotation returns the accumulated rotation gesture angle in degrees. It is
// tracked but never applied to the scroll or scale math.
func (v *View) Rotation() float64 { return v.rotation }

// IsDragging reports whether a drag gesture is in progress.
func (v *View) IsDragging() bool { return v.isDragging }

// IsFlinging reports whether a fling trajectory is playing.
func (v *View) IsFlinging() bool { return v.isFlinging }

// IsScaling reports whether the scale is changing, either from an active
// pinch or from an animation that interpolates scale.
func (v *View) IsScaling() bool { return v.pinchActive || v.animator.AnimatesScale() }

// IsSliding reports whether an animated scroll transition is in flight.
func (v *View) IsSliding() bool { return v.animator.AnimatesScroll() }

// State returns a snapshot of the full viewport state.
func (v *View) State() schemas.ViewportState {
	return schemas.ViewportState{
		ScrollX:    v.scrollX,
		ScrollY:    v.scrollY,
		Scale:      v.scaler.Scale(),
		Rotation:   v.rotation,
		IsDragging: v.isDragging,
		IsScaling:  v.IsScaling(),
		IsFlinging: v.isFlinging,
		IsSliding:  v.IsSliding(),
	}
}

// ScrollTo clamps the requested position into the scroll bounds and applies
// it. Positions already equal to the clamped current offset produce no state
// change and no redraw notification.
func (v *View) ScrollTo(x, y int) {
	clampedX := geom.Clamp(x, v.scaler.ScrollMinX(), v.scaler.ScrollLimitX())
	clampedY := geom.Clamp(y, v.scaler.ScrollMinY(), v.scaler.ScrollLimitY())
	if clampedX == v.scrollX && clampedY == v.scrollY {
		return
	}
	v.scrollX = clampedX
	v.scrollY = clampedY
	v.notify()
}

// ScrollToAndCenter scrolls so the given scaled content point sits at the
// viewport center.
func (v *View) ScrollToAndCenter(x, y int) {
	v.ScrollTo(x-v.HalfWidth(), y-v.HalfHeight())
}

// ConstrainScrollToLimits re-clamps the current scroll offset against the
// current bounds. Called after any layout or size change; a no-op when the
// offset is already valid.
func (v *View) ConstrainScrollToLimits() {
	v.ScrollTo(v.scrollX, v.scrollY)
}

// SetScale clamps the requested scale into bounds and applies it immediately,
// keeping the viewport origin fixed.
func (v *View) SetScale(requested float64) {
	v.scaler.SetScale(requested)
}

// onScaleChanged runs after every committed scale change, from any source:
// direct sets, pinch updates, animation frames or a raised minimum bound.
// The scroll offset is re-clamped inline so the change reaches the host as a
// single notification.
func (v *View) onScaleChanged() {
	v.updateOffsets()
	v.scrollX = geom.Clamp(v.scrollX, v.scaler.ScrollMinX(), v.scaler.ScrollLimitX())
	v.scrollY = geom.Clamp(v.scrollY, v.scaler.ScrollMinY(), v.scaler.ScrollLimitY())
	v.notify()
}

// updateOffsets recomputes the centering offsets for axes on which the scaled
// content does not fill the viewport.
func (v *View) updateOffsets() {
	v.offsetX = 0
	v.offsetY = 0
	if w := v.scaler.ScaledWidth(); w < v.viewportWidth {
		v.offsetX = (v.viewportWidth - w) / 2
	}
	if h := v.scaler.ScaledHeight(); h < v.viewportHeight {
		v.offsetY = (v.viewportHeight - h) / 2
	}
}

func (v *View) notify() {
	if v.onChange != nil {
		v.onChange(v.State())
	}
}
