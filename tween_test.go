package cardtable

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFloatTween(t *testing.T) {
	v := 0.0
	tw := newFloatTween(&v, 10, 1, ease.Linear)

	tw.Update(0.5)
	if v < 4.99 || v > 5.01 {
		t.Errorf("halfway value = %v, want ~5", v)
	}
	if tw.Done {
		t.Error("tween done too early")
	}

	tw.Update(0.6)
	if v != 10 || !tw.Done {
		t.Errorf("end: v=%v done=%v", v, tw.Done)
	}

	// A finished tween no longer writes.
	v = 3
	tw.Update(1)
	if v != 3 {
		t.Errorf("finished tween wrote %v", v)
	}
}

func TestFloatTweenNil(t *testing.T) {
	var tw *floatTween
	tw.Update(1) // must not panic
}
