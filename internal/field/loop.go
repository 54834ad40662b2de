package field

// Scheduler is the host's "run this before the next display repaint"
// primitive. RequestFrame returns a handle that Cancel can revoke while the
// callback is still pending.
type Scheduler interface {
	RequestFrame(fn func()) int
	Cancel(handle int)
}

// Loop chains frame callbacks: step the field, draw it, request the next
// frame. Hiding the page cancels the single pending request; showing it
// again re-requests one. All calls are expected on one goroutine, matching
// the event-queue model of the host.
type Loop struct {
	field     *Field
	canvas    Canvas
	scheduler Scheduler

	visible bool
	pending bool
	handle  int
}

// NewLoop wires a field to its canvas and scheduler. A nil canvas disables
// the loop entirely: the drawing surface is absent and the animation is a
// silent no-op, not an error.
func NewLoop(f *Field, c Canvas, s Scheduler) *Loop {
	if c == nil {
		return &Loop{}
	}
	return &Loop{field: f, canvas: c, scheduler: s}
}

// Start kicks off the frame chain. Calling Start on a disabled loop does
// nothing.
func (l *Loop) Start() {
	if l.canvas == nil {
		return
	}
	l.visible = true
	l.request()
}

// SetVisible gates the loop on page visibility: hiding cancels the pending
// frame request, showing re-requests one.
func (l *Loop) SetVisible(v bool) {
	if l.canvas == nil || v == l.visible {
		return
	}
	l.visible = v
	if v {
		l.request()
		return
	}
	if l.pending {
		l.scheduler.Cancel(l.handle)
		l.pending = false
	}
}

// Running reports whether a frame request is outstanding.
func (l *Loop) Running() bool {
	return l.pending
}

func (l *Loop) request() {
	if l.pending {
		return
	}
	l.handle = l.scheduler.RequestFrame(l.frame)
	l.pending = true
}

func (l *Loop) frame() {
	l.pending = false
	l.field.Step()
	l.field.Draw(l.canvas)
	if l.visible {
		l.request()
	}
}
