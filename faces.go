package cardtable

import (
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	faceInk    = color.RGBA{20, 20, 30, 255}
	faceRed    = color.RGBA{200, 30, 40, 255}
	facePaper  = color.RGBA{250, 248, 240, 255}
	backFill   = color.RGBA{40, 70, 140, 255}
	backStripe = color.RGBA{70, 110, 190, 255}
)

// FaceLoader draws plain card faces and a striped back at load time, so a
// table can run without any image files. It answers CardKey keys and
// BackKey.
type FaceLoader struct {
	Width, Height int

	mu   sync.Mutex // GoXFace keeps glyph caches
	face *text.GoXFace
}

// NewFaceLoader creates a loader producing w x h images. Non-positive sizes
// fall back to the default card size.
func NewFaceLoader(w, h int) *FaceLoader {
	if w <= 0 {
		w = DefaultCardWidth
	}
	if h <= 0 {
		h = DefaultCardHeight
	}
	return &FaceLoader{
		Width:  w,
		Height: h,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Load renders the image for key.
func (l *FaceLoader) Load(key string) (*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if key == BackKey {
		return l.drawBack(), nil
	}
	rank, suit, err := ParseCardKey(key)
	if err != nil {
		return nil, err
	}
	return l.drawFace(rank, suit), nil
}

func (l *FaceLoader) drawFace(rank Rank, suit Suit) *ebiten.Image {
	w, h := float32(l.Width), float32(l.Height)
	img := ebiten.NewImage(l.Width, l.Height)
	img.Fill(facePaper)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, faceInk, true)

	ink := faceInk
	if suit.Red() {
		ink = faceRed
	}

	corner := string(rank)
	l.drawText(img, corner, 6, 4, ink, text.AlignStart)

	// The corner index is mirrored in the opposite corner.
	l.drawText(img, corner, float64(l.Width)-6, float64(l.Height)-17, ink, text.AlignEnd)

	name := strings.ToUpper(string(suit))
	l.drawText(img, name, float64(l.Width)/2, float64(l.Height)/2-6, ink, text.AlignCenter)
	return img
}

func (l *FaceLoader) drawBack() *ebiten.Image {
	w, h := float32(l.Width), float32(l.Height)
	img := ebiten.NewImage(l.Width, l.Height)
	img.Fill(backFill)
	for y := float32(8); y < h-8; y += 12 {
		vector.DrawFilledRect(img, 8, y, w-16, 4, backStripe, false)
	}
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, facePaper, true)
	return img
}

func (l *FaceLoader) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, l.face, op)
}
