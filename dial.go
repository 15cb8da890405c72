package dial

import (
	"fmt"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for ebiten fill calls.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or vector. Positions are either absolute screen
// coordinates or container-relative coordinates; callers must not mix the two.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Motion selects how the value behaves at and beyond the configured bounds.
type Motion uint8

const (
	MotionOnce     Motion = iota // value stays in [MinValue, MaxValue); the handle stops at the bounds
	MotionLoop                   // value wraps modulo MaxValue
	MotionInfinite               // value accumulates without bound across turns
)

// String returns the configuration name of the motion policy.
func (m Motion) String() string {
	switch m {
	case MotionOnce:
		return "once"
	case MotionLoop:
		return "loop"
	case MotionInfinite:
		return "infinite"
	default:
		return fmt.Sprintf("Motion(%d)", uint8(m))
	}
}

// ParseMotion converts "once", "loop" or "infinite" to a Motion.
func ParseMotion(s string) (Motion, error) {
	switch s {
	case "once", "":
		return MotionOnce, nil
	case "loop":
		return MotionLoop, nil
	case "infinite":
		return MotionInfinite, nil
	}
	return 0, fmt.Errorf("dial: %w: unknown motion %q", ErrInvalidConfig, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Motion) MarshalText() ([]byte, error) {
	if m > MotionInfinite {
		return nil, fmt.Errorf("dial: %w: unknown motion %d", ErrInvalidConfig, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Motion) UnmarshalText(text []byte) error {
	parsed, err := ParseMotion(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// PointerKind identifies which input stream produced a pointer event.
// Mouse and touch share one state machine; only coordinate extraction differs.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota // mouse cursor
	PointerTouch                    // first active touch point
)

// Phase is the stage of a pointer interaction.
type Phase uint8

const (
	PhaseBegin Phase = iota // pointer pressed
	PhaseMove               // pointer moved while pressed
	PhaseEnd                // pointer released
)

// PointerEvent is an abstract pointer event at an absolute position, in the
// same coordinate space the container's bounds are measured in.
type PointerEvent struct {
	Phase    Phase
	Kind     PointerKind
	Position Vec2
}

// EventType identifies which output channel a movement record was sent on.
type EventType uint8

const (
	EventMove    EventType = iota // fires on begin and on every move
	EventMoveEnd                  // fires when the drag ends or is cancelled
)

// MovementRecord is emitted on every begin, move and end.
type MovementRecord struct {
	Coordinates Vec2
	Value       float64
	Pressed     bool
}
