package dial

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Widget is an ebiten presentation of a slider: a ring, a progress arc and
// a draggable handle. Presses that land on the handle start a drag Session;
// the session then follows the pointer anywhere on screen until release.
type Widget struct {
	// X, Y is the container's top-left corner in screen coordinates.
	X, Y float64

	// Session tunes drags started by this widget.
	Session SessionOptions

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	engine  *Engine
	style   Style
	events  *Dispatcher
	input   *PointerInput
	session *Session
	mounted bool

	testRunner      *TestRunner
	screenshotQueue []string
}

// NewWidget creates a widget for cfg. The widget is not mounted: its
// bounds are unknown and pointer events are ignored until Mount.
func NewWidget(cfg Config) (*Widget, error) {
	engine, err := NewEngine(cfg, nil)
	if err != nil {
		return nil, err
	}
	w := &Widget{
		ScreenshotDir: "screenshots",
		engine:        engine,
		style:         cfg.Style,
		events:        NewDispatcher(),
	}
	engine.SetContainer(w)
	w.input = NewPointerInput(w.events)
	w.events.Subscribe(w.handlePress)
	return w, nil
}

// Engine returns the widget's interaction engine, for registering OnMove
// and OnMoveEnd callbacks.
func (w *Widget) Engine() *Engine { return w.engine }

// Input returns the pointer adapter, for injecting synthetic input.
func (w *Widget) Input() *PointerInput { return w.input }

// Events returns the dispatcher all pointer events of this widget flow through.
func (w *Widget) Events() *Dispatcher { return w.events }

// Dragging reports whether a drag session is active.
func (w *Widget) Dragging() bool {
	return w.session != nil && !w.session.Done()
}

// Bounds implements Container.
func (w *Widget) Bounds() (Rect, bool) {
	if !w.mounted {
		return Rect{}, false
	}
	size := w.engine.Config().Size
	return Rect{X: w.X, Y: w.Y, Width: size, Height: size}, true
}

// Mount marks the widget as laid out and announces the seeded state through
// the engine's move callbacks.
func (w *Widget) Mount() {
	w.mounted = true
	w.engine.Mount(w)
}

// Mounted reports whether Mount has been called.
func (w *Widget) Mounted() bool { return w.mounted }

// SetConfig applies a new configuration, dropping any drag in progress.
func (w *Widget) SetConfig(cfg Config) error {
	if err := w.engine.Reset(cfg); err != nil {
		return err
	}
	w.style = cfg.Style
	if w.session != nil {
		// The engine is idle now; the session notices and unsubscribes.
		w.session.Tick()
		w.session = nil
	}
	return nil
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update, before input is read.
func (w *Widget) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// HandleHit returns the handle's hit area in screen coordinates.
func (w *Widget) HandleHit() HitCircle {
	c := w.engine.Coordinates()
	return HitCircle{CenterX: w.X + c.X, CenterY: w.Y + c.Y, Radius: w.style.HandleSize / 2}
}

// handlePress starts a session when a press lands on the handle.
func (w *Widget) handlePress(ev PointerEvent) {
	if ev.Phase != PhaseBegin || w.Dragging() || !w.mounted {
		return
	}
	if !w.HandleHit().Contains(ev.Position.X, ev.Position.Y) {
		return
	}
	if s, ok := StartSession(w.engine, w.events, ev.Position, ev.Kind, w.Session); ok {
		w.session = s
	}
}

// Update advances the test runner, reads pointer input and ticks the active
// session. Call once per frame.
func (w *Widget) Update() {
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.input.Update()

	if w.session == nil {
		return
	}
	// The release was never observed: the adapter no longer holds the pointer.
	if !w.session.Done() && !w.input.Down(w.session.kind) {
		w.session.Cancel()
	}
	w.session.Tick()
	if w.session.Done() {
		w.session = nil
	}
}

// Draw renders the ring, the progress arc and the handle, then captures
// any queued screenshots.
func (w *Widget) Draw(screen *ebiten.Image) {
	cfg := w.engine.Config()
	center := w.engine.Center()
	center.X += w.X
	center.Y += w.Y

	verts, inds := buildArcStrip(center, cfg.Radius, w.style.RingThickness, 0, 2*math.Pi, w.style.RingColor)
	drawShape(screen, verts, inds)

	from := DegToRad(cfg.RotationAdjustment)
	sweep := ProgressSweep(w.engine.Value(), cfg)
	verts, inds = buildArcStrip(center, cfg.Radius, w.style.RingThickness, from, from+sweep, w.style.ArcColor)
	drawShape(screen, verts, inds)

	handleColor := w.style.HandleColor
	if w.engine.Pressed() {
		handleColor = w.style.PressedColor
	}
	c := w.engine.Coordinates()
	verts, inds = buildDiscFan(Vec2{w.X + c.X, w.Y + c.Y}, w.style.HandleSize/2, handleColor)
	drawShape(screen, verts, inds)

	w.flushScreenshots(screen)
}
