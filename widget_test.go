package dial

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestWidget(t *testing.T, mutate func(*Config)) *Widget {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWidget(cfg)
	if err != nil {
		t.Fatalf("NewWidget: %v", err)
	}
	w.X, w.Y = 50, 60
	return w
}

// ringCenter is the ring center in screen coordinates.
func ringCenter(w *Widget) Vec2 {
	return w.Engine().Center().Add(Vec2{w.X, w.Y})
}

func drain(w *Widget) {
	for i := 0; i < 100 && w.Input().Pending() > 0; i++ {
		w.Update()
	}
}

func TestNewWidget_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 0
	if _, err := NewWidget(cfg); err == nil {
		t.Error("NewWidget should reject an invalid config")
	}
}

func TestWidget_BoundsBeforeMount(t *testing.T) {
	w := newTestWidget(t, nil)
	if _, ok := w.Bounds(); ok {
		t.Error("unmounted widget should have unknown bounds")
	}
	w.Mount()
	r, ok := w.Bounds()
	if !ok || r != (Rect{X: 50, Y: 60, Width: 200, Height: 200}) {
		t.Errorf("Bounds() = %v, %v", r, ok)
	}
}

func TestWidget_MountAnnounces(t *testing.T) {
	w := newTestWidget(t, func(c *Config) { c.Value = 40 })
	var got []MovementRecord
	w.Engine().OnMove(func(r MovementRecord) { got = append(got, r) })
	w.Mount()
	if len(got) != 1 || got[0].Value != 40 || got[0].Pressed {
		t.Errorf("mount records = %+v", got)
	}
}

func TestWidget_RotateHandle(t *testing.T) {
	w := newTestWidget(t, nil)
	w.Mount()
	var ends []MovementRecord
	w.Engine().OnMoveEnd(func(r MovementRecord) { ends = append(ends, r) })

	w.Input().InjectRotate(ringCenter(w), 100, 0, 90, 4)

	w.Update() // press on the handle
	if !w.Dragging() || !w.Engine().Pressed() {
		t.Fatal("press on the handle should start a drag")
	}
	drain(w)

	if w.Dragging() {
		t.Error("release should end the drag")
	}
	if len(ends) != 1 || !approxEqual(ends[0].Value, 25, 1e-9) {
		t.Errorf("ends = %+v, want one record at 25", ends)
	}
	if w.Events().Len() != 1 {
		t.Errorf("session leaked a subscription, Len() = %d", w.Events().Len())
	}
}

func TestWidget_TrackingOffTheHandle(t *testing.T) {
	w := newTestWidget(t, func(c *Config) { c.Motion = MotionInfinite })
	w.Mount()
	center := ringCenter(w)
	w.Input().InjectPress(center.X+100, center.Y)
	// Far outside the widget, straight below the center.
	w.Input().InjectMove(center.X, center.Y+900)
	w.Input().InjectRelease(center.X, center.Y+900)
	drain(w)

	if got := w.Engine().Value(); !approxEqual(got, 25, 1e-9) {
		t.Errorf("value = %v, want 25", got)
	}
}

func TestWidget_PressMissesHandle(t *testing.T) {
	w := newTestWidget(t, nil)
	w.Mount()
	center := ringCenter(w)
	w.Input().InjectDrag(center.X, center.Y, center.X, center.Y+100, 4)
	drain(w)
	if w.Engine().Value() != 0 || w.Engine().Pressed() {
		t.Error("a press off the handle should not drag")
	}
}

func TestWidget_IgnoresInputBeforeMount(t *testing.T) {
	w := newTestWidget(t, nil)
	w.Input().InjectRotate(ringCenter(w), 100, 0, 90, 4)
	drain(w)
	if w.Engine().Value() != 0 {
		t.Errorf("value = %v, want 0 before mount", w.Engine().Value())
	}
}

func TestWidget_LostReleaseCancels(t *testing.T) {
	w := newTestWidget(t, nil)
	w.Mount()
	var ends int
	w.Engine().OnMoveEnd(func(MovementRecord) { ends++ })

	c := ringCenter(w)
	w.Input().InjectPress(c.X+100, c.Y)
	w.Update()
	if !w.Dragging() {
		t.Fatal("expected a drag")
	}

	// The adapter lost the pointer without publishing a release.
	w.Input().pointers[PointerMouse].down = false
	w.Update()
	if w.Dragging() || w.Engine().Pressed() {
		t.Error("drag should be cancelled once the pointer is no longer held")
	}
	if ends != 1 {
		t.Errorf("ends = %d, want 1", ends)
	}
}

func TestWidget_SetConfigDropsDrag(t *testing.T) {
	w := newTestWidget(t, nil)
	w.Mount()
	c := ringCenter(w)
	w.Input().InjectPress(c.X+100, c.Y)
	w.Update()

	cfg := DefaultConfig()
	cfg.Value = 60
	cfg.Style.HandleSize = 10
	if err := w.SetConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if w.Dragging() || w.Engine().Pressed() {
		t.Error("SetConfig should drop the drag")
	}
	if w.Events().Len() != 1 {
		t.Errorf("Len() = %d, want 1", w.Events().Len())
	}
	if w.HandleHit().Radius != 5 {
		t.Errorf("handle radius = %v, want 5", w.HandleHit().Radius)
	}
}

func TestWidget_HandleHit(t *testing.T) {
	w := newTestWidget(t, func(c *Config) {
		c.Value = 25
		c.Style.HandleSize = 30
	})
	h := w.HandleHit()
	// value 25 sits at 6 o'clock.
	if !approxEqual(h.CenterX, 150, 1e-9) || !approxEqual(h.CenterY, 260, 1e-9) || h.Radius != 15 {
		t.Errorf("HandleHit() = %+v", h)
	}
}

func TestProgressSweep(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"zero", 0, 0},
		{"half", 50, math.Pi},
		{"beyond one turn", 125, math.Pi / 2},
		{"negative", -25, 3 * math.Pi / 2},
	}
	cfg := DefaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressSweep(tt.value, cfg); !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("ProgressSweep(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestWidget_DrawSmoke(t *testing.T) {
	w := newTestWidget(t, nil)
	w.Mount()
	screen := ebiten.NewImage(320, 320)
	w.Draw(screen)
}
