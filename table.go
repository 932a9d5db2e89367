package cardtable

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Table is the scene owner. It holds the objects, routes pointer input to
// them, and runs the render loop on an offscreen canvas that is composited
// into the window every frame. Table implements ebiten.Game.
//
//	table, err := cardtable.NewTable(cardtable.DefaultConfig())
//	// ... add cards ...
//	err = cardtable.Run(table)
type Table struct {
	cfg      Config
	registry *Registry
	router   *Router
	loop     *Loop
	clock    *EbitenClock
	canvas   *ebiten.Image
	surface  *ImageSurface
	log      *debugLogger

	script          *ScriptRunner
	screenshotQueue []string
}

// NewTable validates cfg and builds an idle table. The render loop starts on
// the first Update or Draw, or on Start.
func NewTable(cfg Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	t := &Table{
		cfg:      cfg,
		registry: NewRegistry(),
		clock:    NewEbitenClock(),
		canvas:   ebiten.NewImage(cfg.Width, cfg.Height),
		log:      &debugLogger{Logger: NewLogger(), enabled: cfg.Debug},
	}
	t.surface = NewImageSurface(t.canvas)

	t.router = NewRouter(t.registry)
	t.router.SetDragThreshold(cfg.DragThreshold)
	t.router.SetOrigin(float64(cfg.Margin), float64(cfg.Margin))
	t.router.log = t.log

	t.loop = NewLoop(t.clock, t, t.registry)
	t.loop.log = t.log
	return t, nil
}

// Config returns the configuration the table was built with.
func (t *Table) Config() Config {
	return t.cfg
}

// Registry returns the table's object registry.
func (t *Table) Registry() *Registry {
	return t.registry
}

// Router returns the table's input router.
func (t *Table) Router() *Router {
	return t.router
}

// Loop returns the table's render loop.
func (t *Table) Loop() *Loop {
	return t.loop
}

// Canvas returns the offscreen image the loop draws onto.
func (t *Table) Canvas() *ebiten.Image {
	return t.canvas
}

// SetLogger replaces the logger. A nil logger silences all output.
func (t *Table) SetLogger(l *log.Logger) {
	t.log.Logger = l
}

// SetDebugMode enables or disables verbose click, drag and frame logging.
func (t *Table) SetDebugMode(enabled bool) {
	t.log.enabled = enabled
}

// Add registers o on top of every object added before it.
func (t *Table) Add(o Object) {
	if l, ok := o.(interface{ setLogger(*debugLogger) }); ok {
		l.setLogger(t.log)
	}
	t.registry.Add(o)
}

// Start arms the render loop. It is called automatically by Update and Draw.
func (t *Table) Start() {
	t.loop.Start()
}

// Surface hands the loop the canvas. It fails once the canvas is gone.
func (t *Table) Surface() (Surface, error) {
	if t.canvas == nil {
		return nil, fmt.Errorf("canvas disposed")
	}
	return t.surface, nil
}

// Close disposes the canvas. The loop reports ErrSurfaceUnavailable on its
// next tick and the game exits with it.
func (t *Table) Close() {
	if t.canvas == nil {
		return
	}
	t.canvas.Deallocate()
	t.canvas = nil
}

// Update implements ebiten.Game. It runs the script runner, if any, and
// feeds one tick of pointer input to the router. It returns the loop's
// fatal error once the loop has stopped.
func (t *Table) Update() error {
	t.Start()
	if err := t.loop.Err(); err != nil {
		return err
	}
	if t.script != nil {
		t.script.step(t)
	}
	t.router.PollEbiten()
	return nil
}

// Draw implements ebiten.Game. It fires the pending frame callback, then
// composites the canvas into the window.
func (t *Table) Draw(screen *ebiten.Image) {
	t.Start()
	t.clock.Fire()

	screen.Fill(t.cfg.ClearColor.RGBA())
	if t.canvas != nil {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(t.cfg.Margin), float64(t.cfg.Margin))
		screen.DrawImage(t.canvas, &op)
	}

	if t.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	t.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed screen size.
func (t *Table) Layout(outsideWidth, outsideHeight int) (int, int) {
	return t.cfg.ScreenSize()
}

// Run opens a window sized for the table and runs it until the window is
// closed or the render loop fails.
func Run(t *Table) error {
	w, h := t.cfg.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(t.cfg.Title)
	return ebiten.RunGame(t)
}
