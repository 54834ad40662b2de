package hero

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dmadera0/Portfolio-v2/internal/field"
)

// tickScheduler maps the field's frame-request contract onto ebiten's tick
// loop: requested callbacks run on the next Update.
type tickScheduler struct {
	next    int
	pending map[int]func()
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{pending: map[int]func(){}}
}

func (s *tickScheduler) RequestFrame(fn func()) int {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *tickScheduler) Cancel(handle int) {
	delete(s.pending, handle)
}

// fire runs the callbacks pending right now. Requests made during a
// callback wait for the next tick.
func (s *tickScheduler) fire() {
	fns := make([]func(), 0, len(s.pending))
	for h, fn := range s.pending {
		fns = append(fns, fn)
		delete(s.pending, h)
	}
	for _, fn := range fns {
		fn()
	}
}

// Game hosts the particle field in a window. The field draws into a backing
// buffer sized at logical size times the device scale factor; window
// resizes rebuild buffer and field through the trailing-edge throttle, and
// losing focus parks the frame loop the way a hidden browser tab would.
type Game struct {
	field    *field.Field
	loop     *field.Loop
	sched    *tickScheduler
	throttle field.Throttle

	buffer *ebiten.Image
	scale  float64

	// logical size the buffer and field currently match, and what the
	// host last reported.
	width, height      float64
	pendingW, pendingH float64
	pendingScale       float64

	started bool
}

// NewGame builds a field and backing buffer sized for the initial window.
func NewGame(width, height float64) *Game {
	g := &Game{
		field:        field.New(width, height),
		sched:        newTickScheduler(),
		scale:        1,
		width:        width,
		height:       height,
		pendingW:     width,
		pendingH:     height,
		pendingScale: 1,
	}
	g.buffer = ebiten.NewImage(bufferDim(width, 1), bufferDim(height, 1))
	g.loop = field.NewLoop(g.field, &canvas{g: g}, g.sched)
	return g
}

func bufferDim(logical, scale float64) int {
	n := int(logical*scale + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

func (g *Game) Update() error {
	focused := ebiten.IsFocused()
	if focused && !g.started {
		g.loop.Start()
		g.started = true
	}
	g.loop.SetVisible(focused)

	now := time.Now()
	if g.pendingW != g.width || g.pendingH != g.height || g.pendingScale != g.scale {
		g.throttle.Trigger(now)
	}
	if g.throttle.Ready(now) {
		g.rebuild()
	}

	// Run the frame the loop requested, if any. It steps the field, draws
	// into the buffer and requests the next one.
	g.sched.fire()
	return nil
}

// rebuild resizes the backing buffer to the new logical size times the
// device scale factor and respawns the particle set.
func (g *Game) rebuild() {
	g.width, g.height = g.pendingW, g.pendingH
	g.scale = g.pendingScale
	g.buffer = ebiten.NewImage(bufferDim(g.width, g.scale), bufferDim(g.height, g.scale))
	g.field.Resize(g.width, g.height)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.buffer, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// LayoutF reports the window in physical pixels while recording the logical
// size and scale the next rebuild should use.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	g.pendingW = outsideWidth
	g.pendingH = outsideHeight
	g.pendingScale = scale
	return outsideWidth * scale, outsideHeight * scale
}
