// Package schemas defines the shared data contracts between gesture
// detectors, the viewport coordinator, and host applications.
package schemas

// GestureType identifies the kind of gesture a detector has classified.
type GestureType string

const (
	// GestureDown is the initial pointer contact, before classification.
	GestureDown GestureType = "down"
	// GesturePan is an incremental scroll delta from a drag in progress.
	GesturePan GestureType = "pan"
	// GestureFling is a release with residual velocity.
	GestureFling GestureType = "fling"
	// GesturePinch is an incremental scale factor from a two finger pinch.
	GesturePinch GestureType = "pinch"
	// GestureRotate is an incremental rotation delta in degrees.
	GestureRotate GestureType = "rotate"
	// GestureSingleTap is a confirmed single tap.
	GestureSingleTap GestureType = "single_tap"
	// GestureDoubleTap is a confirmed double tap.
	GestureDoubleTap GestureType = "double_tap"
	// GestureTouchUp is the final pointer lift, regardless of classification.
	GestureTouchUp GestureType = "touch_up"
)

// GesturePhase marks where a continuous gesture (pinch, rotate) is in its
// lifecycle. Discrete gestures leave it empty.
type GesturePhase string

const (
	PhaseBegin  GesturePhase = "begin"
	PhaseUpdate GesturePhase = "update"
	PhaseEnd    GesturePhase = "end"
)

// GestureEvent encapsulates all data for a classified gesture. The Type field
// is the variant tag; only the fields relevant to that type are meaningful.
// The struct is JSON round-trippable so recorded gesture scripts can be
// replayed verbatim.
type GestureEvent struct {
	Type  GestureType  `json:"type"`
	Phase GesturePhase `json:"phase,omitempty"`

	// X, Y carry the screen position for tap and down events.
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// DeltaX, DeltaY carry the incremental scroll distance for pan events.
	DeltaX float64 `json:"deltaX,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`

	// Delta carries the incremental rotation angle, in degrees, for rotate
	// update events.
	Delta float64 `json:"delta,omitempty"`

	// VelocityX, VelocityY carry the release velocity for fling events,
	// in pixels per second.
	VelocityX float64 `json:"velocityX,omitempty"`
	VelocityY float64 `json:"velocityY,omitempty"`

	// FocusX, FocusY carry the focal point for pinch and rotate events.
	FocusX float64 `json:"focusX,omitempty"`
	FocusY float64 `json:"focusY,omitempty"`

	// Factor is the incremental scale multiplier for pinch update events.
	Factor float64 `json:"factor,omitempty"`

	// OffsetMs is the event time relative to the start of a recorded
	// script. Live detectors leave it zero.
	OffsetMs int64 `json:"offsetMs,omitempty"`
}
