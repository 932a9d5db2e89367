package cardtable

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCardStartsIdle(t *testing.T) {
	c := NewCard(Vec2{100, 100}, Ace, Hearts, nil)
	if c.Animating || c.AnimationTime != 0 || c.Rotation != 0 {
		t.Errorf("new card: animating=%v t=%d rot=%v", c.Animating, c.AnimationTime, c.Rotation)
	}
	if c.Dimensions() != (Vec2{100, 150}) {
		t.Errorf("Dimensions = %v", c.Dimensions())
	}
	if !c.FaceUp {
		t.Error("new card should be face up")
	}
	if c.Lift() != 1 {
		t.Errorf("Lift = %v, want 1", c.Lift())
	}
}

func TestCardWiggleCurve(t *testing.T) {
	c := NewCard(Vec2{}, Ace, Hearts, nil)
	c.Wiggle()

	for i := 1; i < wiggleFrames; i++ {
		c.Update(16)
		want := math.Sin(float64(i)*0.2) * 0.3
		if !approx(c.Rotation, want) {
			t.Fatalf("frame %d: rotation = %v, want %v", i, c.Rotation, want)
		}
		if !c.Animating {
			t.Fatalf("frame %d: stopped early", i)
		}
		if math.Abs(c.Rotation) > 0.3 {
			t.Fatalf("frame %d: rotation %v exceeds amplitude", i, c.Rotation)
		}
	}

	c.Update(16)
	if c.Animating {
		t.Error("wiggle should stop at frame 30")
	}
	if c.Rotation != 0 {
		t.Errorf("rotation = %v, want exactly 0", c.Rotation)
	}
	if c.AnimationTime != wiggleFrames {
		t.Errorf("AnimationTime = %d, want %d", c.AnimationTime, wiggleFrames)
	}

	// Further updates leave the card at rest.
	c.Update(16)
	if c.Rotation != 0 || c.AnimationTime != wiggleFrames {
		t.Errorf("idle update changed state: rot=%v t=%d", c.Rotation, c.AnimationTime)
	}
}

func TestCardWiggleAtSpawnScenario(t *testing.T) {
	c := NewCard(Vec2{100, 100}, Ace, Hearts, nil)
	c.Wiggle()

	c.Update(0)
	if !approx(c.Rotation, math.Sin(0.2)*0.3) {
		t.Errorf("first frame rotation = %v", c.Rotation)
	}
	for n := 0; n < 29; n++ {
		c.Update(16)
	}
	if c.Animating || c.Rotation != 0 {
		t.Errorf("after 30 frames: animating=%v rot=%v", c.Animating, c.Rotation)
	}
}

func TestCardClickRestartsWiggle(t *testing.T) {
	c := NewCard(Vec2{}, King, Spades, nil)
	c.Wiggle()
	for n := 0; n < 10; n++ {
		c.Update(16)
	}

	c.OnClick(ClickContext{Object: c})
	if c.AnimationTime != 0 || !c.Animating {
		t.Fatalf("after click: t=%d animating=%v", c.AnimationTime, c.Animating)
	}

	// A full 30 frames run from the click.
	for i := 1; i < wiggleFrames; i++ {
		c.Update(16)
	}
	if !c.Animating {
		t.Error("restarted wiggle ended early")
	}
	c.Update(16)
	if c.Animating {
		t.Error("restarted wiggle should end 30 frames after the click")
	}
}

func TestCardClickThroughRouter(t *testing.T) {
	reg := NewRegistry()
	a := NewCard(Vec2{100, 100}, Ace, Hearts, nil)
	k := NewCard(Vec2{159, 100}, King, Spades, nil)
	reg.Add(a)
	reg.Add(k)
	r := NewRouter(reg)

	r.Down(180, 110)
	r.Up(180, 110)

	if !k.Animating {
		t.Error("king should wiggle")
	}
	if a.Animating {
		t.Error("ace should not wiggle")
	}
}

func TestCardDragKeepsGrabOffset(t *testing.T) {
	reg := NewRegistry()
	c := NewCard(Vec2{100, 100}, Queen, Diamonds, nil)
	reg.Add(c)
	r := NewRouter(reg)

	r.Down(150, 170)
	r.Move(160, 170)
	if c.Lift() != dragLift {
		t.Errorf("lift during drag = %v, want %v", c.Lift(), dragLift)
	}
	r.Move(200, 250)
	if c.Pos != (Vec2{150, 180}) {
		t.Errorf("Pos during drag = %v, want {150 180}", c.Pos)
	}
	r.Up(400, 400)

	if c.Pos != (Vec2{350, 330}) {
		t.Errorf("Pos after drop = %v, want {350 330}", c.Pos)
	}
	if c.Animating {
		t.Error("dragging must not wiggle")
	}
}

func TestCardLiftSettles(t *testing.T) {
	c := NewCard(Vec2{}, Ace, Spades, nil)
	c.OnDragStart(DragContext{Object: c})
	c.OnDragEnd(DragContext{Object: c})

	c.Update(75)
	if l := c.Lift(); l <= 1 || l >= dragLift {
		t.Errorf("lift halfway = %v, want between 1 and %v", l, dragLift)
	}
	c.Update(100)
	if c.Lift() != 1 {
		t.Errorf("lift after settle = %v, want 1", c.Lift())
	}
}

func TestCardSetDimensionsClamps(t *testing.T) {
	c := NewCard(Vec2{}, Ace, Spades, nil)
	c.SetDimensions(-10, 40)
	if c.Dimensions() != (Vec2{0, 40}) {
		t.Errorf("Dimensions = %v, want {0 40}", c.Dimensions())
	}
}

func TestCardDrawSkippedWithoutTexture(t *testing.T) {
	c := NewCard(Vec2{}, Ace, Spades, nil)
	rs := newRecordingSurface(800, 800)
	c.Draw(rs)
	if len(rs.calls) != 0 {
		t.Errorf("calls = %v, want none", rs.calls)
	}
}

func TestCardDrawSkippedWhilePending(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	assets := NewAssetCache(LoaderFunc(func(string) (*ebiten.Image, error) {
		<-release
		return nil, errors.New("never")
	}))
	c := NewCard(Vec2{}, Ace, Spades, assets)

	rs := newRecordingSurface(800, 800)
	c.Draw(rs)
	if len(rs.calls) != 0 {
		t.Errorf("calls = %v, want none", rs.calls)
	}
}

func TestCardDrawSkippedOnFailure(t *testing.T) {
	assets := NewAssetCache(LoaderFunc(func(key string) (*ebiten.Image, error) {
		return nil, errors.New("missing file")
	}))
	c := NewCard(Vec2{}, Ace, Spades, assets)
	waitFor(t, assets.Resolve(CardKey(Ace, Spades)))

	rs := newRecordingSurface(800, 800)
	c.Draw(rs)
	c.Draw(rs)
	if len(rs.calls) != 0 {
		t.Errorf("calls = %v, want none", rs.calls)
	}
	if !c.faceReported {
		t.Error("failure should be reported")
	}
}

func TestCardDrawTransform(t *testing.T) {
	face := ebiten.NewImage(100, 150)
	back := ebiten.NewImage(100, 150)
	assets := NewAssetCache(LoaderFunc(func(key string) (*ebiten.Image, error) {
		if key == BackKey {
			return back, nil
		}
		return face, nil
	}))
	c := NewCard(Vec2{100, 100}, Ace, Hearts, assets)
	waitFor(t, assets.Resolve(CardKey(Ace, Hearts)))
	waitFor(t, assets.Resolve(BackKey))

	rs := newRecordingSurface(800, 800)
	c.Draw(rs)
	want := "save\ntranslate 150 175\nrotate 0.0000\ndraw -50 -75 100 150\nrestore"
	if rs.String() != want {
		t.Errorf("calls:\n%s\nwant:\n%s", rs, want)
	}
	if rs.images[0] != face {
		t.Error("face-up card should draw the face")
	}

	c.Flip()
	c.Rotation = 0.25
	c.lift = dragLift
	rs = newRecordingSurface(800, 800)
	c.Draw(rs)
	want = "save\ntranslate 150 175\nrotate 0.2500\nscale 1.05 1.05\ndraw -50 -75 100 150\nrestore"
	if rs.String() != want {
		t.Errorf("calls:\n%s\nwant:\n%s", rs, want)
	}
	if rs.images[0] != back {
		t.Error("face-down card should draw the back")
	}
}

func TestCardKeys(t *testing.T) {
	if got := CardKey(Ten, Clubs); got != "10_of_clubs" {
		t.Errorf("CardKey = %q", got)
	}
	r, s, err := ParseCardKey("Q_of_diamonds")
	if err != nil || r != Queen || s != Diamonds {
		t.Errorf("ParseCardKey = %v %v %v", r, s, err)
	}
	for _, bad := range []string{"", "back", "1_of_hearts", "A_of_stars", "A_hearts"} {
		if _, _, err := ParseCardKey(bad); err == nil {
			t.Errorf("ParseCardKey(%q) should fail", bad)
		}
	}
}

func TestSuitRed(t *testing.T) {
	for _, s := range Suits {
		want := s == Hearts || s == Diamonds
		if s.Red() != want {
			t.Errorf("%s.Red() = %v", s, s.Red())
		}
	}
}

func TestCardString(t *testing.T) {
	if got := NewCard(Vec2{}, Ace, Hearts, nil).String(); got != "A of hearts" {
		t.Errorf("String = %q", got)
	}
}

func waitFor(t *testing.T, f *Future) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	f.Wait(ctx)
	if !f.Ready() {
		t.Fatalf("future %q did not complete", f.Key())
	}
}
