package cardtable

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Suit is a card suit. The value is used in asset keys.
type Suit string

const (
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
)

// Suits lists every suit.
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank. The value is used in asset keys.
type Rank string

const (
	Ace   Rank = "A"
	King  Rank = "K"
	Queen Rank = "Q"
	Jack  Rank = "J"
	Ten   Rank = "10"
	Nine  Rank = "9"
	Eight Rank = "8"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// Ranks lists every rank, highest first.
var Ranks = []Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// BackKey is the asset key of the card back.
const BackKey = "back"

// CardKey returns the asset key of a card face, e.g. "A_of_hearts".
func CardKey(rank Rank, suit Suit) string {
	return string(rank) + "_of_" + string(suit)
}

// ParseCardKey splits a face key produced by CardKey.
func ParseCardKey(key string) (Rank, Suit, error) {
	for _, r := range Ranks {
		for _, s := range Suits {
			if key == CardKey(r, s) {
				return r, s, nil
			}
		}
	}
	return "", "", fmt.Errorf("not a card face key: %q", key)
}

const (
	// DefaultCardWidth and DefaultCardHeight are the card box in canvas units.
	DefaultCardWidth  = 100
	DefaultCardHeight = 150

	wiggleFrames    = 30  // animation length in update calls
	wiggleSpeed     = 0.2 // radians of phase per frame
	wiggleAmplitude = 0.3 // peak rotation in radians

	dragLift       = 1.05
	settleDuration = 0.15 // seconds
)

// Card is a draggable, clickable playing card. A click starts a short
// rotational wiggle; a drag moves the card, keeping the grab point under the
// pointer.
//
// The wiggle is counted in Update calls, not wall time, so its duration
// follows the frame rate.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool

	Pos      Vec2
	dims     Vec2
	Rotation float64

	AnimationTime int
	Animating     bool

	lift   float64
	settle *floatTween
	grab   Vec2

	face, back   *Future
	faceReported bool
	backReported bool

	log *debugLogger
}

// NewCard creates a face-up, idle card at pos. If assets is non-nil the face
// and back textures start resolving immediately; until they arrive the card
// draws nothing.
func NewCard(pos Vec2, rank Rank, suit Suit, assets *AssetCache) *Card {
	c := &Card{
		Rank:   rank,
		Suit:   suit,
		FaceUp: true,
		Pos:    pos,
		dims:   Vec2{DefaultCardWidth, DefaultCardHeight},
		lift:   1,
	}
	if assets != nil {
		c.face = assets.Resolve(CardKey(rank, suit))
		c.back = assets.Resolve(BackKey)
	}
	return c
}

// String returns e.g. "A of hearts".
func (c *Card) String() string {
	return string(c.Rank) + " of " + string(c.Suit)
}

// Position returns the top-left corner.
func (c *Card) Position() Vec2 { return c.Pos }

// Dimensions returns the card's width and height.
func (c *Card) Dimensions() Vec2 { return c.dims }

// SetDimensions resizes the card. Negative sizes are clamped to zero.
func (c *Card) SetDimensions(w, h float64) {
	c.dims = Vec2{math.Max(w, 0), math.Max(h, 0)}
}

// Capabilities reports that cards are clickable and draggable.
func (c *Card) Capabilities() Capability {
	return CapClickable | CapDraggable
}

// Lift returns the current draw scale; 1 when resting.
func (c *Card) Lift() float64 { return c.lift }

// Flip turns the card over.
func (c *Card) Flip() {
	c.FaceUp = !c.FaceUp
}

// Wiggle starts the wiggle from frame 0, restarting it if already running.
func (c *Card) Wiggle() {
	c.AnimationTime = 0
	c.Animating = true
	c.Rotation = 0
}

// Update advances the wiggle by one frame and the lift tween by dt
// milliseconds.
func (c *Card) Update(dt float64) {
	if c.Animating {
		c.AnimationTime++
		if c.AnimationTime >= wiggleFrames {
			c.Rotation = 0
			c.Animating = false
		} else {
			c.Rotation = math.Sin(float64(c.AnimationTime)*wiggleSpeed) * wiggleAmplitude
		}
	}

	if c.settle != nil {
		c.settle.Update(float32(dt / 1000))
		if c.settle.Done {
			c.settle = nil
			c.lift = 1
		}
	}
}

// Draw renders the current texture rotated about the card's center. It
// draws nothing while the texture is pending or failed.
func (c *Card) Draw(s Surface) {
	tex := c.texture()
	if tex == nil {
		return
	}
	w, h := c.dims.X, c.dims.Y
	s.Save()
	s.Translate(c.Pos.X+w/2, c.Pos.Y+h/2)
	s.Rotate(c.Rotation)
	if c.lift != 1 {
		s.Scale(c.lift, c.lift)
	}
	s.DrawImage(tex, -w/2, -h/2, w, h)
	s.Restore()
}

// OnClick restarts the wiggle.
func (c *Card) OnClick(ctx ClickContext) {
	c.log.debugf("card clicked: %s", c)
	c.Wiggle()
}

// OnDragStart remembers where the card was grabbed and lifts it.
func (c *Card) OnDragStart(ctx DragContext) {
	c.grab = Vec2{ctx.StartX, ctx.StartY}.Sub(c.Pos)
	c.settle = nil
	c.lift = dragLift
}

// OnDrag moves the card so the grab point follows the pointer.
func (c *Card) OnDrag(ctx DragContext) {
	c.Pos = Vec2{ctx.X, ctx.Y}.Sub(c.grab)
}

// OnDragEnd drops the card at the release point and settles the lift.
func (c *Card) OnDragEnd(ctx DragContext) {
	c.Pos = Vec2{ctx.X, ctx.Y}.Sub(c.grab)
	c.grab = Vec2{}
	c.settle = newFloatTween(&c.lift, 1, settleDuration, ease.OutQuad)
}

func (c *Card) setLogger(l *debugLogger) {
	c.log = l
}

// texture returns the image for the visible side, reporting a failed load
// once per side.
func (c *Card) texture() *ebiten.Image {
	if c.FaceUp {
		return c.poll(c.face, &c.faceReported)
	}
	return c.poll(c.back, &c.backReported)
}

func (c *Card) poll(f *Future, reported *bool) *ebiten.Image {
	if f == nil || !f.Ready() {
		return nil
	}
	if err := f.Err(); err != nil {
		if !*reported {
			*reported = true
			c.log.errorf("%s: %v", c, err)
		}
		return nil
	}
	return f.Image()
}
