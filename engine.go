package dial

import (
	"fmt"
	"log"
	"math"
	"os"
)

// EntityStore is the interface for optional ECS integration.
// When set on an Engine, every emitted record is forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event MovementEvent)
}

// MovementEvent carries a movement record for the ECS bridge.
type MovementEvent struct {
	Type     EventType
	EntityID uint32
	Record   MovementRecord
}

// --- Handler registry ---

type recordHandler struct {
	id uint32
	fn func(MovementRecord)
}

type handlerRegistry struct {
	move    []recordHandler
	moveEnd []recordHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventMove:
		h.reg.move = removeRecordHandler(h.reg.move, h.id)
	case EventMoveEnd:
		h.reg.moveEnd = removeRecordHandler(h.reg.moveEnd, h.id)
	}
}

func removeRecordHandler(s []recordHandler, id uint32) []recordHandler {
	for i := range s {
		if s[i].id == id {
			// Copy on remove so a dispatch loop over the old slice is unaffected.
			out := make([]recordHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// --- Engine ---

// Engine is the radial interaction state machine. It owns the current value,
// the last known handle coordinates and the pressed flag, and turns angular
// pointer deltas into value changes under the configured Motion.
//
// An Engine is not safe for concurrent use; events are expected to arrive
// serialized from one UI loop.
type Engine struct {
	// EntityID is forwarded with every MovementEvent sent to the EntityStore.
	EntityID uint32

	cfg       Config
	center    Vec2
	container Container

	coords  Vec2
	value   float64
	pressed bool
	kind    PointerKind
	// drag changes on every Begin and re-seed, so a Session can tell
	// whether the drag it started is still the engine's current one.
	drag uint64

	handlers handlerRegistry
	store    EntityStore
	debug    bool
}

// NewEngine validates cfg and creates an idle engine seeded from cfg.Value.
// container may be nil until the hosting element is laid out; events are
// ignored until it is set.
func NewEngine(cfg Config, container Container) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{container: container}
	e.seed(cfg)
	return e, nil
}

// seed installs cfg and projects its value onto the handle circle.
func (e *Engine) seed(cfg Config) {
	e.cfg = cfg
	e.center = cfg.Center()
	e.value = cfg.Value
	if cfg.Motion == MotionLoop {
		e.value = wrapValue(e.value, cfg.MaxValue)
	}
	e.coords = RadialPositionFromValue(e.center, cfg.HandleRadius(), e.value,
		cfg.MinValue, cfg.MaxValue, cfg.RotationAdjustment)
	e.pressed = false
	e.drag++
}

// Reset replaces the configuration and re-seeds the state from cfg.Value.
// Any drag in progress is dropped without firing callbacks. On error the
// engine keeps its previous configuration and state.
func (e *Engine) Reset(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.seed(cfg)
	if e.debug {
		e.debugf("reset value=%v coords=(%.2f,%.2f)", e.value, e.coords.X, e.coords.Y)
	}
	return nil
}

// Mount sets the container and announces the seeded state through the move
// callbacks.
func (e *Engine) Mount(container Container) {
	e.container = container
	e.fire(EventMove, e.Record())
}

// SetContainer replaces the container without emitting anything.
func (e *Engine) SetContainer(container Container) {
	e.container = container
}

// SetEntityStore sets the optional ECS bridge.
func (e *Engine) SetEntityStore(store EntityStore) {
	e.store = store
}

// SetDebugMode enables or disables [dial] transition traces on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// Center returns the ring's center in container-relative coordinates.
func (e *Engine) Center() Vec2 { return e.center }

// Value returns the current logical value.
func (e *Engine) Value() float64 { return e.value }

// Coordinates returns the last known handle position, container-relative.
func (e *Engine) Coordinates() Vec2 { return e.coords }

// Pressed reports whether a drag is in progress.
func (e *Engine) Pressed() bool { return e.pressed }

// Record returns the current state as a MovementRecord.
func (e *Engine) Record() MovementRecord {
	return MovementRecord{Coordinates: e.coords, Value: e.value, Pressed: e.pressed}
}

// OnMove registers a callback fired on Begin and every Move.
func (e *Engine) OnMove(fn func(MovementRecord)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.move = append(e.handlers.move, recordHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventMove}
}

// OnMoveEnd registers a callback fired when a drag ends or is cancelled.
func (e *Engine) OnMoveEnd(fn func(MovementRecord)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.moveEnd = append(e.handlers.moveEnd, recordHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, event: EventMoveEnd}
}

// Begin starts a drag at an absolute pointer position. The value is not
// changed; the stored coordinates become the pointer's container-relative
// position. Returns false, emitting nothing, when already dragging or when
// the container has no bounds yet.
func (e *Engine) Begin(pos Vec2, kind PointerKind) bool {
	if e.pressed {
		log.Printf("dial: begin while dragging ignored (only one pointer is supported)")
		return false
	}
	coords, ok := RadialPosition(e.container, e.center, e.cfg.HandleRadius(), pos)
	if !ok {
		return false
	}
	e.coords = coords
	e.pressed = true
	e.kind = kind
	e.drag++
	if e.debug {
		e.debugf("begin kind=%d pos=(%.2f,%.2f) value=%v", kind, pos.X, pos.Y, e.value)
	}
	e.fire(EventMove, e.Record())
	return true
}

// Move applies the rotation swept since the last known coordinates.
// Ignored when idle, for a pointer kind other than the one that began the
// drag, or when the container has no bounds.
func (e *Engine) Move(pos Vec2, kind PointerKind) bool {
	if !e.pressed || kind != e.kind {
		return false
	}
	if !e.step(pos) {
		return false
	}
	e.fire(EventMove, e.Record())
	return true
}

// End applies the final movement like Move, then releases the drag and
// fires the move-end callbacks.
func (e *Engine) End(pos Vec2, kind PointerKind) bool {
	if !e.pressed || kind != e.kind {
		return false
	}
	if !e.step(pos) {
		return false
	}
	e.pressed = false
	if e.debug {
		e.debugf("end value=%v", e.value)
	}
	e.fire(EventMoveEnd, e.Record())
	return true
}

// Cancel releases a drag without applying any further movement, firing the
// move-end callbacks with the last committed state. Used when the pointer
// release is never observed.
func (e *Engine) Cancel() bool {
	if !e.pressed {
		return false
	}
	e.pressed = false
	if e.debug {
		e.debugf("cancel value=%v", e.value)
	}
	e.fire(EventMoveEnd, e.Record())
	return true
}

// abandon drops the drag without firing callbacks. Used when a release
// arrives but cannot be resolved against the container.
func (e *Engine) abandon() {
	if !e.pressed {
		return
	}
	e.pressed = false
	if e.debug {
		e.debugf("abandon value=%v", e.value)
	}
}

// step resolves pos, converts the swept angle to a value delta and applies
// the motion policy. Returns false if the container has no bounds.
func (e *Engine) step(pos Vec2) bool {
	next, ok := RadialPosition(e.container, e.center, e.cfg.HandleRadius(), pos)
	if !ok {
		return false
	}
	angle := AngleBetweenPoints(e.center, e.coords, next)
	candidate := e.value + AngleToValue(angle, e.cfg.MinValue, e.cfg.MaxValue)

	switch e.cfg.Motion {
	case MotionOnce:
		if candidate < e.cfg.MinValue || candidate >= e.cfg.MaxValue {
			if e.debug {
				e.debugf("hold value=%v (candidate %v out of range)", e.value, candidate)
			}
			return true
		}
		e.value = candidate
	case MotionLoop:
		e.value = wrapValue(candidate, e.cfg.MaxValue)
	default:
		e.value = candidate
	}
	e.coords = next
	if e.debug {
		e.debugf("move angle=%.4f value=%v", angle, e.value)
	}
	return true
}

// wrapValue maps v into [0, modulus).
func wrapValue(v, modulus float64) float64 {
	r := math.Mod(v, modulus)
	if r < 0 {
		r += modulus
	}
	// r+modulus can round up to modulus for tiny negative r.
	if r >= modulus {
		r = 0
	}
	return r
}

func (e *Engine) fire(event EventType, rec MovementRecord) {
	var handlers []recordHandler
	switch event {
	case EventMove:
		handlers = e.handlers.move
	case EventMoveEnd:
		handlers = e.handlers.moveEnd
	}
	for _, h := range handlers {
		h.fn(rec)
	}
	if e.store != nil {
		e.store.EmitEvent(MovementEvent{Type: event, EntityID: e.EntityID, Record: rec})
	}
}

func (e *Engine) debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[dial] "+format+"\n", args...)
}
