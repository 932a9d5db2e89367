package cardtable

import "math"

const defaultDragThreshold = 5.0 // canvas units, per axis

// PointerState is the router's pointer session state.
type PointerState uint8

const (
	PointerIdle     PointerState = iota // no button held
	PointerArmed                        // pressed, drag not confirmed yet
	PointerDragging                     // threshold crossed over a target
)

// String returns the state name.
func (s PointerState) String() string {
	switch s {
	case PointerIdle:
		return "idle"
	case PointerArmed:
		return "armed"
	case PointerDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// pointerSession lives from press to release. target is a routing
// reference only; it never keeps an object alive past the session.
type pointerSession struct {
	state   PointerState
	start   Vec2
	current Vec2
	last    Vec2
	target  Object
}

// --- ECS bridge ---

// EventSink receives every resolved interaction. Set one with
// Router.SetEventSink to forward events into an ECS world.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the EventSink.
type InteractionEvent struct {
	Type   EventType
	Object Object
	X, Y   float64
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
}

// --- Handler registry ---

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	click     []clickHandler
	dragStart []dragHandler
	drag      []dragHandler
	dragEnd   []dragHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered router-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventClick:
		h.reg.click = removeClickHandler(h.reg.click, h.id)
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	}
}

func removeClickHandler(s []clickHandler, id uint32) []clickHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = clickHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Router ---

// Router turns raw pointer events into click or drag callbacks on exactly
// one object. It owns the registry used for hit testing.
//
// Down, Move and Up take client coordinates; the router subtracts its origin
// (the canvas offset) from all three so hit testing and dispatch always see
// canvas-local positions.
type Router struct {
	registry  *Registry
	session   pointerSession
	origin    Vec2
	threshold float64
	handlers  handlerRegistry
	sink      EventSink
	log       *debugLogger

	injectQueue []syntheticPointerEvent
	mouseDown   bool
}

// NewRouter creates a router over registry with the default drag threshold.
func NewRouter(registry *Registry) *Router {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Router{
		registry:  registry,
		threshold: defaultDragThreshold,
	}
}

// Registry returns the registry the router hit-tests against.
func (r *Router) Registry() *Registry {
	return r.registry
}

// SetOrigin sets the canvas offset subtracted from every incoming position.
func (r *Router) SetOrigin(x, y float64) {
	r.origin = Vec2{x, y}
}

// SetDragThreshold sets how far, on either axis, the pointer must travel
// from the press position before a drag starts.
func (r *Router) SetDragThreshold(units float64) {
	r.threshold = units
}

// SetEventSink sets the optional ECS bridge.
func (r *Router) SetEventSink(sink EventSink) {
	r.sink = sink
}

// State returns the current pointer session state.
func (r *Router) State() PointerState {
	return r.session.state
}

// Target returns the object the current session is routed to, if any.
func (r *Router) Target() Object {
	return r.session.target
}

// OnClick registers a router-level callback for click events.
func (r *Router) OnClick(fn func(ClickContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.click = append(r.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventClick}
}

// OnDragStart registers a router-level callback for drag start events.
func (r *Router) OnDragStart(fn func(DragContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.dragStart = append(r.handlers.dragStart, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventDragStart}
}

// OnDrag registers a router-level callback for drag events.
func (r *Router) OnDrag(fn func(DragContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.drag = append(r.handlers.drag, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventDrag}
}

// OnDragEnd registers a router-level callback for drag end events.
func (r *Router) OnDragEnd(fn func(DragContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.dragEnd = append(r.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventDragEnd}
}

func (r *Router) local(x, y float64) Vec2 {
	return Vec2{x, y}.Sub(r.origin)
}

// Down starts a pointer session. The topmost object under the pointer
// becomes the provisional target; nothing fires yet. A drag still in
// progress from a missed release is ended first.
func (r *Router) Down(x, y float64) {
	r.endDrag()
	p := r.local(x, y)
	r.session = pointerSession{
		state:   PointerArmed,
		start:   p,
		current: p,
		last:    p,
		target:  r.registry.HitTest(p),
	}
	if r.session.target == nil {
		r.log.debugf("pointer down at (%.0f, %.0f): no target", p.X, p.Y)
	}
}

// Move advances the session. An armed session with a target is promoted to
// dragging once either axis moves past the threshold; every later move is
// delivered to the target as a drag.
func (r *Router) Move(x, y float64) {
	ps := &r.session
	if ps.state == PointerIdle {
		return
	}
	p := r.local(x, y)
	ps.current = p

	switch ps.state {
	case PointerArmed:
		if ps.target != nil &&
			(math.Abs(p.X-ps.start.X) > r.threshold || math.Abs(p.Y-ps.start.Y) > r.threshold) {
			ps.state = PointerDragging
			r.fireDragStart(ps.target, p, ps.start, p.Sub(ps.start))
		}
	case PointerDragging:
		r.fireDrag(ps.target, p, ps.start, p.Sub(ps.last))
	}
	ps.last = p
}

// Up ends the session. A session that never started dragging resolves to a
// click on whatever is topmost at the release position; a dragging session
// never clicks.
func (r *Router) Up(x, y float64) {
	ps := r.session
	r.session = pointerSession{}
	if ps.state == PointerIdle {
		return
	}
	p := r.local(x, y)

	if ps.state == PointerDragging {
		r.fireDragEnd(ps.target, p, ps.start, p.Sub(ps.last))
		return
	}
	if target := r.registry.HitTest(p); target != nil {
		r.fireClick(target, p)
	}
}

// Cancel drops the current session without clicking. An active drag ends
// at the last pointer position.
func (r *Router) Cancel() {
	r.endDrag()
	r.session = pointerSession{}
}

// endDrag closes a dragging session at its last position.
func (r *Router) endDrag() {
	ps := r.session
	if ps.state != PointerDragging {
		return
	}
	r.session = pointerSession{}
	r.fireDragEnd(ps.target, ps.last, ps.start, Vec2{})
}

// --- Event dispatch ---

func (r *Router) fireClick(o Object, p Vec2) {
	c, ok := asClicker(o)
	if !ok {
		return
	}
	ctx := ClickContext{Object: o, X: p.X, Y: p.Y}
	// Handlers may remove themselves; iterate a snapshot.
	for _, h := range append([]clickHandler(nil), r.handlers.click...) {
		h.fn(ctx)
	}
	c.OnClick(ctx)
	r.emit(InteractionEvent{Type: EventClick, Object: o, X: p.X, Y: p.Y})
}

func (r *Router) fireDragStart(o Object, p, start, delta Vec2) {
	if _, ok := asDragger(o); !ok {
		return
	}
	ctx := dragContext(o, p, start, delta)
	for _, h := range append([]dragHandler(nil), r.handlers.dragStart...) {
		h.fn(ctx)
	}
	if ds, ok := o.(DragStarter); ok {
		ds.OnDragStart(ctx)
	}
	r.log.debugf("drag start at (%.0f, %.0f)", p.X, p.Y)
	r.emitDrag(EventDragStart, ctx)
}

func (r *Router) fireDrag(o Object, p, start, delta Vec2) {
	d, ok := asDragger(o)
	if !ok {
		return
	}
	ctx := dragContext(o, p, start, delta)
	for _, h := range append([]dragHandler(nil), r.handlers.drag...) {
		h.fn(ctx)
	}
	d.OnDrag(ctx)
	r.emitDrag(EventDrag, ctx)
}

func (r *Router) fireDragEnd(o Object, p, start, delta Vec2) {
	if _, ok := asDragger(o); !ok {
		return
	}
	ctx := dragContext(o, p, start, delta)
	for _, h := range append([]dragHandler(nil), r.handlers.dragEnd...) {
		h.fn(ctx)
	}
	if de, ok := o.(DragEnder); ok {
		de.OnDragEnd(ctx)
	}
	r.log.debugf("drag end at (%.0f, %.0f)", p.X, p.Y)
	r.emitDrag(EventDragEnd, ctx)
}

func dragContext(o Object, p, start, delta Vec2) DragContext {
	return DragContext{
		Object: o,
		X:      p.X, Y: p.Y,
		StartX: start.X, StartY: start.Y,
		DeltaX: delta.X, DeltaY: delta.Y,
	}
}

func (r *Router) emitDrag(t EventType, ctx DragContext) {
	r.emit(InteractionEvent{
		Type:   t,
		Object: ctx.Object,
		X:      ctx.X,
		Y:      ctx.Y,
		StartX: ctx.StartX,
		StartY: ctx.StartY,
		DeltaX: ctx.DeltaX,
		DeltaY: ctx.DeltaY,
	})
}

func (r *Router) emit(e InteractionEvent) {
	if r.sink == nil {
		return
	}
	r.sink.EmitEvent(e)
}
