package cardtable

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// floatTween animates a single float64 field toward a target. The caller
// advances it with Update(seconds) each frame; it writes the field on every
// step and reports Done once the duration has elapsed.
//
// There is no global animation manager: objects own and drive their tweens.
type floatTween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// newFloatTween animates *field from its current value to to over duration
// seconds using fn.
func newFloatTween(field *float64, to float64, duration float32, fn ease.TweenFunc) *floatTween {
	return &floatTween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the new value.
func (t *floatTween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}
