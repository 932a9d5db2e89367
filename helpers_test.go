package cardtable

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingSurface implements Surface by logging every call.
type recordingSurface struct {
	bounds Rect
	calls  []string
	images []*ebiten.Image
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{bounds: Rect{Width: w, Height: h}}
}

func (s *recordingSurface) record(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) Bounds() Rect { return s.bounds }
func (s *recordingSurface) Clear(r Rect) { s.record("clear %v %v %v %v", r.X, r.Y, r.Width, r.Height) }
func (s *recordingSurface) Save() { s.record("save") }
func (s *recordingSurface) Restore() { s.record("restore") }
func (s *recordingSurface) Translate(x, y float64) { s.record("translate %v %v", x, y) }
func (s *recordingSurface) Rotate(theta float64) { s.record("rotate %.4f", theta) }
func (s *recordingSurface) Scale(sx, sy float64) { s.record("scale %v %v", sx, sy) }
func (s *recordingSurface) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	s.images = append(s.images, img)
	s.record("draw %v %v %v %v", x, y, w, h)
}

func (s *recordingSurface) String() string {
	return strings.Join(s.calls, "\n")
}

// manualClock holds the pending frame callback until the test fires it.
type manualClock struct {
	pending  func(float64)
	requests int
}

func (c *manualClock) RequestNextFrame(fn func(float64)) {
	c.pending = fn
	c.requests++
}

func (c *manualClock) fire(ts float64) bool {
	fn := c.pending
	if fn == nil {
		return false
	}
	c.pending = nil
	fn(ts)
	return true
}

// staticSurfaces hands out the same surface, or err when set.
type staticSurfaces struct {
	surface Surface
	err     error
}

func (s *staticSurfaces) Surface() (Surface, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.surface, nil
}

// box is a minimal Object with configurable capabilities that records what
// the router and loop did to it.
type box struct {
	name string
	pos  Vec2
	dims Vec2
	caps Capability

	clicks     []ClickContext
	drags      []DragContext
	dragStarts []DragContext
	dragEnds   []DragContext
	updates    []float64
	trace      *[]string
}

func newBox(name string, x, y, w, h float64) *box {
	return &box{name: name, pos: Vec2{x, y}, dims: Vec2{w, h}, caps: CapClickable | CapDraggable}
}

func (b *box) Position() Vec2 { return b.pos }
func (b *box) Dimensions() Vec2 { return b.dims }
func (b *box) Capabilities() Capability { return b.caps }

func (b *box) Update(dt float64) {
	b.updates = append(b.updates, dt)
	if b.trace != nil {
		*b.trace = append(*b.trace, "update "+b.name)
	}
}

func (b *box) Draw(s Surface) {
	if b.trace != nil {
		*b.trace = append(*b.trace, "draw "+b.name)
	}
}

func (b *box) OnClick(ctx ClickContext) { b.clicks = append(b.clicks, ctx) }
func (b *box) OnDrag(ctx DragContext) { b.drags = append(b.drags, ctx) }
func (b *box) OnDragStart(ctx DragContext) { b.dragStarts = append(b.dragStarts, ctx) }
func (b *box) OnDragEnd(ctx DragContext) { b.dragEnds = append(b.dragEnds, ctx) }
