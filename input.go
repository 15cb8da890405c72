package dial

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// PointerInput reads the ebiten mouse and the first active touch each frame
// and publishes begin/move/end events. Additional touches are ignored.
type PointerInput struct {
	out *Dispatcher

	pointers     [2]pointerState // indexed by PointerKind
	touchID      ebiten.TouchID
	touchActive  bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
}

// NewPointerInput creates an input adapter publishing into out.
func NewPointerInput(out *Dispatcher) *PointerInput {
	return &PointerInput{out: out}
}

// Down reports whether the given pointer is currently held.
func (p *PointerInput) Down(kind PointerKind) bool {
	if int(kind) >= len(p.pointers) {
		return false
	}
	return p.pointers[kind].down
}

// Update processes one frame of input. A queued synthetic event replaces
// real mouse input for the frame.
func (p *PointerInput) Update() {
	if p.processInjectedInput() {
		return
	}
	p.processMousePointer()
	p.processTouchPointer()
}

// processMousePointer handles the left mouse button.
func (p *PointerInput) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.processPointer(PointerMouse, float64(mx), float64(my), pressed)
}

// processTouchPointer tracks the first touch that went down while no other
// touch was being tracked.
func (p *PointerInput) processTouchPointer() {
	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	if !p.touchActive {
		if len(touchIDs) == 0 {
			return
		}
		p.touchID = touchIDs[0]
		p.touchActive = true
	}

	for _, tid := range touchIDs {
		if tid == p.touchID {
			tx, ty := ebiten.TouchPosition(tid)
			p.processPointer(PointerTouch, float64(tx), float64(ty), true)
			return
		}
	}

	// Released: ebiten no longer reports a position, use the last one.
	ps := &p.pointers[PointerTouch]
	p.processPointer(PointerTouch, ps.lastX, ps.lastY, false)
	p.touchActive = false
}

// processPointer runs the press/move/release state machine for one pointer.
func (p *PointerInput) processPointer(kind PointerKind, x, y float64, pressed bool) {
	ps := &p.pointers[kind]
	pos := Vec2{x, y}

	switch {
	case pressed && !ps.down:
		ps.down = true
		p.out.Publish(PointerEvent{Phase: PhaseBegin, Kind: kind, Position: pos})
	case !pressed && ps.down:
		ps.down = false
		p.out.Publish(PointerEvent{Phase: PhaseEnd, Kind: kind, Position: pos})
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			p.out.Publish(PointerEvent{Phase: PhaseMove, Kind: kind, Position: pos})
		}
	}
	ps.lastX = x
	ps.lastY = y
}
