package dial

import "math"

// Container is the element hosting the slider. Bounds reports its rectangle
// in the same space raw pointer events use, or ok=false when the layout is
// not known yet (before mount).
type Container interface {
	Bounds() (r Rect, ok bool)
}

// FixedContainer is a Container with a constant rectangle.
type FixedContainer Rect

// Bounds returns the fixed rectangle. A zero-sized FixedContainer is still
// considered known.
func (c FixedContainer) Bounds() (Rect, bool) {
	return Rect(c), true
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle maps an angle in radians into (-π, π].
func NormalizeAngle(rad float64) float64 {
	a := math.Mod(rad, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// ValueToRadians maps value in [minValue, maxValue) onto [0, 2π).
// Returns NaN when maxValue == minValue.
func ValueToRadians(value, minValue, maxValue float64) float64 {
	span := maxValue - minValue
	if span == 0 {
		return math.NaN()
	}
	return ((value - minValue) / span) * 2 * math.Pi
}

// AngleToValue converts an angle in radians to a value delta, one full turn
// being maxValue - minValue.
func AngleToValue(angle, minValue, maxValue float64) float64 {
	return (angle / (2 * math.Pi)) * (maxValue - minValue)
}

// RadialPositionFromValue projects value onto the circle of the given radius
// around center. rotationDeg shifts where value == minValue lands; 0 is
// 3 o'clock and -90 is 12 o'clock in a y-down space.
func RadialPositionFromValue(center Vec2, radius, value, minValue, maxValue, rotationDeg float64) Vec2 {
	angle := ValueToRadians(value, minValue, maxValue) + DegToRad(rotationDeg)
	return Vec2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// AngleBetweenPoints returns the shortest signed rotation in (-π, π] that
// takes (prev - center) onto (next - center). Rotation from +X toward +Y is
// positive, which is visually clockwise in a y-down space. Degenerate
// vectors yield exactly 0.
func AngleBetweenPoints(center, prev, next Vec2) float64 {
	a := prev.Sub(center)
	b := next.Sub(center)
	cross := a.X*b.Y - a.Y*b.X
	dot := a.X*b.X + a.Y*b.Y
	if cross == 0 && dot >= 0 {
		// Same direction or a zero-length vector.
		return 0
	}
	// atan2(±0, negative) is ±π; keep the half-open range.
	if cross == 0 {
		return math.Pi
	}
	angle := math.Atan2(cross, dot)
	if angle <= -math.Pi {
		return math.Pi
	}
	return angle
}

// ContainerOrigin returns the container's top-left corner in the space raw
// pointer events use.
func ContainerOrigin(c Container) (Vec2, bool) {
	if c == nil {
		return Vec2{}, false
	}
	r, ok := c.Bounds()
	if !ok {
		return Vec2{}, false
	}
	return Vec2{r.X, r.Y}, true
}

// RadialPosition resolves an absolute pointer position into the container's
// space, the space center is expressed in. The result is not re-projected
// onto the circle; only the angle it subtends from center is meaningful.
// radius is accepted for symmetry with RadialPositionFromValue.
func RadialPosition(c Container, center Vec2, radius float64, abs Vec2) (Vec2, bool) {
	origin, ok := ContainerOrigin(c)
	if !ok {
		return Vec2{}, false
	}
	return abs.Sub(origin), true
}

// ProgressSweep is the arc angle, in [0, 2π), from cfg.MinValue to value.
// Values outside the range wrap, so an infinite slider shows its progress
// within the current turn.
func ProgressSweep(value float64, cfg Config) float64 {
	span := cfg.MaxValue - cfg.MinValue
	return ValueToRadians(cfg.MinValue+wrapValue(value-cfg.MinValue, span), cfg.MinValue, cfg.MaxValue)
}
