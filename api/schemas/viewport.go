package schemas

// ViewportState is a read only snapshot of the coordinator's transform state,
// published to hosts on every committed change. Scroll offsets are in scaled
// content pixels; a positive offset moves the content up and to the left.
type ViewportState struct {
	ScrollX int `json:"scrollX"`
	ScrollY int `json:"scrollY"`
	// Scale is the current zoom factor applied to the base content size.
	Scale float64 `json:"scale"`
	// Rotation is tracked from rotate gestures but is not applied to the
	// scroll or scale math.
	Rotation float64 `json:"rotation"`

	IsDragging bool `json:"isDragging"`
	IsScaling  bool `json:"isScaling"`
	IsFlinging bool `json:"isFlinging"`
	IsSliding  bool `json:"isSliding"`
}
