package cardtable

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the drawing target handed to Object.Draw. Transforms follow
// canvas semantics: each Translate, Rotate or Scale applies to coordinates
// before the transform already in effect.
type Surface interface {
	Bounds() Rect
	Clear(r Rect)
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
	Scale(sx, sy float64)
	DrawImage(img *ebiten.Image, x, y, w, h float64)
}

// ImageSurface implements Surface over an *ebiten.Image.
type ImageSurface struct {
	target *ebiten.Image
	geo    ebiten.GeoM
	stack  []ebiten.GeoM
}

// NewImageSurface wraps target. The transform starts as identity.
func NewImageSurface(target *ebiten.Image) *ImageSurface {
	return &ImageSurface{target: target}
}

// Reset points the surface at a new target and drops any saved transforms.
func (s *ImageSurface) Reset(target *ebiten.Image) {
	s.target = target
	s.geo.Reset()
	s.stack = s.stack[:0]
}

// Target returns the wrapped image.
func (s *ImageSurface) Target() *ebiten.Image {
	return s.target
}

// GeoM returns the current transform.
func (s *ImageSurface) GeoM() ebiten.GeoM {
	return s.geo
}

// Bounds returns the target's rectangle.
func (s *ImageSurface) Bounds() Rect {
	b := s.target.Bounds()
	return Rect{
		X:      float64(b.Min.X),
		Y:      float64(b.Min.Y),
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}
}

// Clear makes r fully transparent. r is in target pixels and ignores the
// current transform.
func (s *ImageSurface) Clear(r Rect) {
	b := s.target.Bounds()
	rect := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height)).Intersect(b)
	if rect.Empty() {
		return
	}
	if rect == b {
		s.target.Clear()
		return
	}
	s.target.SubImage(rect).(*ebiten.Image).Clear()
}

// Save pushes the current transform.
func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.geo)
}

// Restore pops the last saved transform. Unbalanced calls are ignored.
func (s *ImageSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.geo = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// prepend applies m before the current transform.
func (s *ImageSurface) prepend(m ebiten.GeoM) {
	m.Concat(s.geo)
	s.geo = m
}

// Translate moves the origin by (x, y).
func (s *ImageSurface) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	s.prepend(m)
}

// Rotate rotates by theta radians, clockwise on screen.
func (s *ImageSurface) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	s.prepend(m)
}

// Scale scales by (sx, sy).
func (s *ImageSurface) Scale(sx, sy float64) {
	var m ebiten.GeoM
	m.Scale(sx, sy)
	s.prepend(m)
}

// DrawImage draws img stretched to the box (x, y, w, h) under the current
// transform. A nil or empty image draws nothing.
func (s *ImageSurface) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geo)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, &op)
}
