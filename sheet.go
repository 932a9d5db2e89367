package cardtable

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// SheetLoader serves card textures cut from TexturePacker sprite sheets.
// Frame names are matched against asset keys with any file extension
// stripped, so "A_of_hearts.png" answers the key "A_of_hearts".
type SheetLoader struct {
	pages   []*ebiten.Image
	regions map[string]sheetRegion
}

type sheetRegion struct {
	page    int
	rect    image.Rectangle // footprint on the page
	size    image.Point     // unrotated frame size
	rotated bool
}

// NewSheetLoader parses TexturePacker JSON data and associates the given page
// images. Supports both the hash format (single "frames" object) and the
// array format ("textures" array with per-page frame lists).
func NewSheetLoader(jsonData []byte, pages []*ebiten.Image) (*SheetLoader, error) {
	var head struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &head); err != nil {
		return nil, fmt.Errorf("parse sheet JSON: %w", err)
	}

	l := &SheetLoader{
		pages:   pages,
		regions: make(map[string]sheetRegion),
	}

	switch {
	case head.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(head.Textures, &textures); err != nil {
			return nil, fmt.Errorf("parse sheet textures array: %w", err)
		}
		for i, tex := range textures {
			l.addFrames(tex.Frames, i)
		}
	case head.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(head.Frames, &frames); err != nil {
			return nil, fmt.Errorf("parse sheet frames: %w", err)
		}
		l.addFrames(frames, 0)
	default:
		return nil, fmt.Errorf("sheet JSON has neither \"frames\" nor \"textures\" key")
	}

	for name, r := range l.regions {
		if r.page >= len(pages) || pages[r.page] == nil {
			return nil, fmt.Errorf("sheet frame %q references missing page %d", name, r.page)
		}
	}
	return l, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func (l *SheetLoader) addFrames(frames map[string]jsonFrame, page int) {
	for name, f := range frames {
		w, h := f.Frame.W, f.Frame.H
		// Rotated frames are stored 90 degrees clockwise; their footprint on
		// the page has width and height swapped.
		if f.Rotated {
			w, h = h, w
		}
		l.regions[frameKey(name)] = sheetRegion{
			page:    page,
			rect:    image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+w, f.Frame.Y+h),
			size:    image.Pt(f.Frame.W, f.Frame.H),
			rotated: f.Rotated,
		}
	}
}

func frameKey(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// Len returns the number of frames in the sheet.
func (l *SheetLoader) Len() int {
	return len(l.regions)
}

// Load returns the image for key. Unrotated frames share the page's
// pixels; rotated frames are copied upright into a new image.
func (l *SheetLoader) Load(key string) (*ebiten.Image, error) {
	r, ok := l.regions[key]
	if !ok {
		return nil, fmt.Errorf("sheet has no frame %q", key)
	}
	sub := l.pages[r.page].SubImage(r.rect).(*ebiten.Image)
	if !r.rotated {
		return sub, nil
	}
	if r.size.X <= 0 || r.size.Y <= 0 {
		return nil, fmt.Errorf("sheet frame %q has no area", key)
	}
	return unrotate(sub, r.size), nil
}

// unrotate turns a frame stored 90 degrees clockwise back upright.
func unrotate(sub *ebiten.Image, size image.Point) *ebiten.Image {
	dst := ebiten.NewImage(size.X, size.Y)
	var op ebiten.DrawImageOptions
	op.GeoM.Rotate(-math.Pi / 2)
	op.GeoM.Translate(0, float64(size.Y))
	dst.DrawImage(sub, &op)
	return dst
}
