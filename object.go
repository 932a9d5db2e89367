package cardtable

// Capability declares which pointer interactions an Object accepts.
// Values can be combined with bitwise OR.
type Capability uint8

const (
	CapClickable Capability = 1 << iota // object implements Clicker
	CapDraggable                        // object implements Dragger
)

// Has reports whether every bit in want is set.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// Object is anything that takes part in the update/draw cycle and can be hit
// tested. Its box is [Position, Position+Dimensions].
type Object interface {
	Position() Vec2
	Dimensions() Vec2
	Capabilities() Capability
	Update(dt float64)
	Draw(s Surface)
}

// ClickContext carries click event data. X and Y are canvas-local.
type ClickContext struct {
	Object Object
	X, Y   float64
}

// DragContext carries drag event data. All coordinates are canvas-local.
// DeltaX/DeltaY is the movement since the previous pointer event.
type DragContext struct {
	Object         Object
	X, Y           float64
	StartX, StartY float64
	DeltaX, DeltaY float64
}

// Clicker is implemented by objects declaring CapClickable.
type Clicker interface {
	OnClick(ctx ClickContext)
}

// Dragger is implemented by objects declaring CapDraggable.
type Dragger interface {
	OnDrag(ctx DragContext)
}

// DragStarter is an optional hook for draggable objects, called when the
// pointer crosses the drag threshold.
type DragStarter interface {
	OnDragStart(ctx DragContext)
}

// DragEnder is an optional hook for draggable objects, called on release
// after a drag.
type DragEnder interface {
	OnDragEnd(ctx DragContext)
}

// Bounds returns the hit box of o.
func Bounds(o Object) Rect {
	return RectOf(o.Position(), o.Dimensions())
}

func asClicker(o Object) (Clicker, bool) {
	if o == nil || !o.Capabilities().Has(CapClickable) {
		return nil, false
	}
	c, ok := o.(Clicker)
	return c, ok
}

func asDragger(o Object) (Dragger, bool) {
	if o == nil || !o.Capabilities().Has(CapDraggable) {
		return nil, false
	}
	d, ok := o.(Dragger)
	return d, ok
}
