package field

import "time"

// ResizeWindow is how long a burst of resize events is allowed to settle
// before the particle set is rebuilt.
const ResizeWindow = 200 * time.Millisecond

// Throttle collapses a burst of triggers into a single trailing-edge firing
// per window. It is poll-driven: the owner calls Trigger on each resize
// event and Ready once per frame, rebuilding when Ready reports true. This
// keeps continuous drag-resize from rebuilding the field every event.
type Throttle struct {
	Window time.Duration

	pending bool
	due     time.Time
}

// Trigger notes a resize event. The first trigger of a burst opens the
// window; later triggers inside it are absorbed.
func (t *Throttle) Trigger(now time.Time) {
	if t.pending {
		return
	}
	window := t.Window
	if window == 0 {
		window = ResizeWindow
	}
	t.pending = true
	t.due = now.Add(window)
}

// Ready reports true exactly once per burst, at the trailing edge of the
// window.
func (t *Throttle) Ready(now time.Time) bool {
	if !t.pending || now.Before(t.due) {
		return false
	}
	t.pending = false
	return true
}
