package cardtable

import "testing"

func drain(r *Router) int {
	n := 0
	for r.processInjectedInput() {
		n++
	}
	return n
}

func TestInjectClick(t *testing.T) {
	b := newBox("b", 100, 100, 100, 150)
	r := newTestRouter(b)

	r.InjectClick(150, 150)
	if r.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", r.Pending())
	}

	if !r.processInjectedInput() {
		t.Fatal("first poll consumed nothing")
	}
	if r.State() != PointerArmed {
		t.Errorf("after press state = %v, want armed", r.State())
	}
	r.processInjectedInput()

	if len(b.clicks) != 1 {
		t.Errorf("clicks = %d, want 1", len(b.clicks))
	}
	if r.processInjectedInput() {
		t.Error("queue should be empty")
	}
}

func TestInjectClickUsesOrigin(t *testing.T) {
	b := newBox("b", 0, 0, 10, 10)
	r := newTestRouter(b)
	r.SetOrigin(50, 50)

	r.InjectClick(55, 55)
	drain(r)

	if len(b.clicks) != 1 {
		t.Fatalf("clicks = %d, want 1", len(b.clicks))
	}
	if c := b.clicks[0]; c.X != 5 || c.Y != 5 {
		t.Errorf("click at (%v, %v), want (5, 5)", c.X, c.Y)
	}
}

func TestInjectDrag(t *testing.T) {
	b := newBox("b", 100, 100, 100, 150)
	r := newTestRouter(b)

	r.InjectDrag(150, 150, 350, 350, 6)
	if r.Pending() != 6 {
		t.Fatalf("Pending = %d, want 6", r.Pending())
	}
	if n := drain(r); n != 6 {
		t.Fatalf("consumed %d, want 6", n)
	}

	if len(b.clicks) != 0 {
		t.Errorf("clicks = %d, want 0", len(b.clicks))
	}
	if len(b.dragStarts) != 1 || len(b.dragEnds) != 1 {
		t.Fatalf("dragStart/dragEnd = %d/%d", len(b.dragStarts), len(b.dragEnds))
	}
	// 4 interpolated moves: the first commits, the other 3 drag.
	if len(b.drags) != 3 {
		t.Errorf("drags = %d, want 3", len(b.drags))
	}
	if e := b.dragEnds[0]; e.X != 350 || e.Y != 350 {
		t.Errorf("dragEnd at (%v, %v)", e.X, e.Y)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	r := newTestRouter()
	r.InjectDrag(0, 0, 10, 10, 0)
	if r.Pending() != 2 {
		t.Errorf("Pending = %d, want 2 (press + release)", r.Pending())
	}
}

func TestInjectPressMoveRelease(t *testing.T) {
	b := newBox("b", 0, 0, 100, 100)
	r := newTestRouter(b)

	r.InjectPress(10, 10)
	r.InjectMove(30, 10)
	r.InjectMove(35, 10)
	r.InjectRelease(35, 10)
	drain(r)

	if len(b.dragStarts) != 1 || len(b.drags) != 1 || len(b.dragEnds) != 1 {
		t.Errorf("got %d/%d/%d drag callbacks", len(b.dragStarts), len(b.drags), len(b.dragEnds))
	}
}
