package gestureview

// Step advances whatever is animating by one display frame and reports
// whether another frame is needed. Hosts call it from their frame callback
// (or let frameloop.Loop drive it) and keep scheduling frames while it
// returns true.
//
// Fling playback and programmatic animations are stepped in the same frame;
// each mutation goes through the constrained setters, so boundary invariants
// hold for every intermediate state.
func (v *View) Step() bool {
	more := false

	if v.isFlinging {
		if v.scroller.ComputeScrollOffset() {
			more = true
		} else {
			// Natural stop: land exactly on the trajectory's clamped
			// end point.
			v.isFlinging = false
			v.logger.Debug("fling completed")
		}
		v.ScrollTo(v.scroller.CurrX(), v.scroller.CurrY())
	}

	if v.animator.IsRunning() {
		// Flags must be read before Tick: the final frame deactivates
		// the animator.
		animScroll := v.animator.AnimatesScroll()
		animScale := v.animator.AnimatesScale()

		state, running := v.animator.Tick()
		if animScale {
			v.scaler.SetScale(state.Scale)
		}
		if animScroll {
			v.ScrollTo(state.ScrollX, state.ScrollY)
		}
		if running {
			more = true
		}
	}

	return more
}
