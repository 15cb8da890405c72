package dial

import "math"

// syntheticPointerEvent represents a single injected mouse event in screen
// coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates.
// The event is consumed on the next Update.
func (p *PointerInput) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (p *PointerInput) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (p *PointerInput) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). Minimum frames is 2.
func (p *PointerInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// InjectRotate queues a press on the circle of the given radius around
// center at fromDeg, moves along the arc and a release at toDeg. Angles are
// in degrees with 0 at 3 o'clock and positive values turning clockwise on
// screen. frames is the total number of events, minimum 2; keep each step
// under 180 degrees or the rotation is read the short way round.
func (p *PointerInput) InjectRotate(center Vec2, radius, fromDeg, toDeg float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	at := func(deg float64) (float64, float64) {
		rad := DegToRad(deg)
		return center.X + radius*math.Cos(rad), center.Y + radius*math.Sin(rad)
	}
	x, y := at(fromDeg)
	p.InjectPress(x, y)
	steps := frames - 1
	for i := 1; i < steps; i++ {
		x, y = at(fromDeg + (toDeg-fromDeg)*float64(i)/float64(steps))
		p.InjectMove(x, y)
	}
	x, y = at(toDeg)
	p.InjectRelease(x, y)
}

// Pending returns the number of queued synthetic events.
func (p *PointerInput) Pending() int {
	return len(p.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer as mouse input. Returns true if an event was
// consumed (real input is skipped for the frame).
func (p *PointerInput) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	p.processPointer(PointerMouse, evt.screenX, evt.screenY, evt.pressed)
	return true
}
