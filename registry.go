package cardtable

// Registry is a flat, ordered collection of objects. Registration order is
// draw order; hit testing walks it backwards so later objects win overlaps.
// The registry does not own its objects.
type Registry struct {
	objects []Object
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends o on top of every object already registered.
func (r *Registry) Add(o Object) {
	if o == nil {
		return
	}
	r.objects = append(r.objects, o)
}

// Remove drops o from the registry. It reports whether o was registered.
func (r *Registry) Remove(o Object) bool {
	for i, cur := range r.objects {
		if cur == o {
			copy(r.objects[i:], r.objects[i+1:])
			r.objects[len(r.objects)-1] = nil
			r.objects = r.objects[:len(r.objects)-1]
			return true
		}
	}
	return false
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// Objects returns the registered objects in registration order.
// The returned slice MUST NOT be mutated.
func (r *Registry) Objects() []Object {
	return r.objects
}

// HitTest returns the topmost object whose box contains p, or nil.
func (r *Registry) HitTest(p Vec2) Object {
	// Iterate backward: the last registered object is drawn on top.
	for i := len(r.objects) - 1; i >= 0; i-- {
		o := r.objects[i]
		if Bounds(o).Contains(p.X, p.Y) {
			return o
		}
	}
	return nil
}
