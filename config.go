package cardtable

import "fmt"

// Config holds the table's window and canvas settings.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the canvas size in canvas units.
	Width, Height int
	// Margin is the gap between the window edge and the canvas on every
	// side. Pointer positions are shifted by it before hit testing.
	Margin int
	// DragThreshold is how far the pointer must travel on either axis
	// before a press becomes a drag.
	DragThreshold float64
	// ClearColor fills the window behind the canvas.
	ClearColor Color
	// ShowFPS prints FPS and TPS in the window corner.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// Debug enables verbose logging.
	Debug bool
}

// DefaultConfig returns an 800x800 canvas with a 5 unit drag threshold.
func DefaultConfig() Config {
	return Config{
		Title:         "cardtable",
		Width:         800,
		Height:        800,
		DragThreshold: defaultDragThreshold,
		ClearColor:    Color{R: 0.05, G: 0.3, B: 0.15, A: 1},
		ScreenshotDir: "screenshots",
	}
}

// Validate reports a configuration the table cannot start with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d has no area", c.Width, c.Height)
	}
	if c.Margin < 0 {
		return fmt.Errorf("negative margin %d", c.Margin)
	}
	if c.DragThreshold < 0 {
		return fmt.Errorf("negative drag threshold %v", c.DragThreshold)
	}
	return nil
}

// ScreenSize returns the window size: the canvas plus margins.
func (c Config) ScreenSize() (int, int) {
	return c.Width + 2*c.Margin, c.Height + 2*c.Margin
}
