// Package termdial presents a dial slider on a terminal grid using tcell.
//
// A View maps terminal cells to slider units: each cell is CellWidth by
// CellHeight units, and pointer positions are taken at cell centers. Mouse
// events go through the same Dispatcher and Session pipeline as the ebiten
// Widget, so the engine behaves identically on both surfaces.
package termdial

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dial"
)

// Runes used by Draw.
const (
	RingRune    = '·'
	ArcRune     = '●'
	HandleRune  = '◉'
	PressedRune = '◎'
)

// View is a slider drawn with terminal cells.
type View struct {
	// Col, Row is the cell holding the container's top-left corner.
	Col, Row int

	// CellWidth and CellHeight give the size of one cell in slider units.
	// Terminal cells are roughly twice as tall as wide; the defaults of 1
	// and 2 keep the ring round.
	CellWidth, CellHeight float64

	// Session tunes drags started by this view.
	Session dial.SessionOptions

	engine  *dial.Engine
	style   dial.Style
	events  *dial.Dispatcher
	session *dial.Session
	mounted bool

	down bool
	last dial.Vec2
}

// NewView creates an unmounted view for cfg.
func NewView(cfg dial.Config) (*View, error) {
	engine, err := dial.NewEngine(cfg, nil)
	if err != nil {
		return nil, err
	}
	v := &View{
		CellWidth:  1,
		CellHeight: 2,
		engine:     engine,
		style:      cfg.Style,
		events:     dial.NewDispatcher(),
	}
	engine.SetContainer(v)
	v.events.Subscribe(v.handlePress)
	return v, nil
}

// Engine returns the view's interaction engine.
func (v *View) Engine() *dial.Engine { return v.engine }

// Events returns the dispatcher pointer events are published to.
func (v *View) Events() *dial.Dispatcher { return v.events }

// Dragging reports whether a drag session is active.
func (v *View) Dragging() bool {
	return v.session != nil && !v.session.Done()
}

// Bounds implements dial.Container, in slider units.
func (v *View) Bounds() (dial.Rect, bool) {
	if !v.mounted {
		return dial.Rect{}, false
	}
	size := v.engine.Config().Size
	o := v.origin()
	return dial.Rect{X: o.X, Y: o.Y, Width: size, Height: size}, true
}

// Mount marks the view as placed on screen and announces the seeded state.
func (v *View) Mount() {
	v.mounted = true
	v.engine.Mount(v)
}

// SetConfig applies a new configuration, dropping any drag in progress.
func (v *View) SetConfig(cfg dial.Config) error {
	if err := v.engine.Reset(cfg); err != nil {
		return err
	}
	v.style = cfg.Style
	v.Tick()
	return nil
}

// HandleEvent feeds one tcell event into the view. It returns true when
// the event was a mouse event and has been consumed.
func (v *View) HandleEvent(ev tcell.Event) bool {
	e, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	col, row := e.Position()
	pos := v.cellCenter(col, row)
	pressed := e.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !v.down:
		v.down = true
		v.events.Publish(dial.PointerEvent{Phase: dial.PhaseBegin, Kind: dial.PointerMouse, Position: pos})
	case !pressed && v.down:
		v.down = false
		v.events.Publish(dial.PointerEvent{Phase: dial.PhaseEnd, Kind: dial.PointerMouse, Position: pos})
	case pressed && pos != v.last:
		v.events.Publish(dial.PointerEvent{Phase: dial.PhaseMove, Kind: dial.PointerMouse, Position: pos})
	}
	v.last = pos
	return true
}

// Tick advances the active session by one frame. Call it from the
// program's render ticker.
func (v *View) Tick() {
	if v.session == nil {
		return
	}
	v.session.Tick()
	if v.session.Done() {
		v.session = nil
	}
}

// HandleHit returns the handle's hit area in slider units. Cells are
// coarse, so the radius is never smaller than one cell.
func (v *View) HandleHit() dial.HitCircle {
	c := v.engine.Coordinates().Add(v.origin())
	r := math.Max(v.style.HandleSize/2, math.Max(v.CellWidth, v.CellHeight))
	return dial.HitCircle{CenterX: c.X, CenterY: c.Y, Radius: r}
}

func (v *View) handlePress(ev dial.PointerEvent) {
	if ev.Phase != dial.PhaseBegin || v.Dragging() || !v.mounted {
		return
	}
	if !v.HandleHit().Contains(ev.Position.X, ev.Position.Y) {
		return
	}
	if s, ok := dial.StartSession(v.engine, v.events, ev.Position, ev.Kind, v.Session); ok {
		v.session = s
	}
}

// Draw plots the ring, the progress arc and the handle onto screen. It
// does not clear or Show the screen.
func (v *View) Draw(screen tcell.Screen) {
	cfg := v.engine.Config()
	center := v.engine.Center().Add(v.origin())

	ringStyle := styleFor(v.style.RingColor)
	n := v.samples(cfg.Radius, 2*math.Pi)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		v.plot(screen, center, cfg.Radius, a, RingRune, ringStyle)
	}

	from := dial.DegToRad(cfg.RotationAdjustment)
	sweep := dial.ProgressSweep(v.engine.Value(), cfg)
	if sweep > 0 {
		arcStyle := styleFor(v.style.ArcColor)
		n = v.samples(cfg.Radius, sweep)
		for i := 0; i <= n; i++ {
			v.plot(screen, center, cfg.Radius, from+sweep*float64(i)/float64(n), ArcRune, arcStyle)
		}
	}

	r, c := HandleRune, v.style.HandleColor
	if v.engine.Pressed() {
		r, c = PressedRune, v.style.PressedColor
	}
	col, row := v.cellAt(v.engine.Coordinates().Add(v.origin()))
	screen.SetContent(col, row, r, nil, styleFor(c))
}

// samples returns how many points an arc needs so that neighbouring
// points fall at most half a cell apart.
func (v *View) samples(radius, sweep float64) int {
	step := math.Min(v.CellWidth, v.CellHeight) / 2
	n := int(math.Ceil(radius * sweep / step))
	if n < 8 {
		n = 8
	}
	return n
}

func (v *View) plot(screen tcell.Screen, center dial.Vec2, radius, angle float64, r rune, style tcell.Style) {
	p := dial.Vec2{X: center.X + radius*math.Cos(angle), Y: center.Y + radius*math.Sin(angle)}
	col, row := v.cellAt(p)
	screen.SetContent(col, row, r, nil, style)
}

func (v *View) origin() dial.Vec2 {
	return dial.Vec2{X: float64(v.Col) * v.CellWidth, Y: float64(v.Row) * v.CellHeight}
}

// cellCenter converts a cell to the slider-unit position of its center.
func (v *View) cellCenter(col, row int) dial.Vec2 {
	return dial.Vec2{X: (float64(col) + 0.5) * v.CellWidth, Y: (float64(row) + 0.5) * v.CellHeight}
}

// cellAt converts a slider-unit position to the cell containing it.
func (v *View) cellAt(p dial.Vec2) (int, int) {
	return int(math.Floor(p.X / v.CellWidth)), int(math.Floor(p.Y / v.CellHeight))
}

func styleFor(c dial.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B)))
}

func channel(v float64) int32 {
	return int32(math.Round(255 * math.Max(0, math.Min(1, v))))
}
