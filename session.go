package dial

// Subscription is returned by EventSource.Subscribe. Remove stops delivery
// and is safe to call more than once.
type Subscription interface {
	Remove()
}

// EventSource delivers pointer events to subscribers. Sessions subscribe for
// the lifetime of one drag so tracking continues wherever the pointer goes.
type EventSource interface {
	Subscribe(fn func(PointerEvent)) Subscription
}

// --- Dispatcher ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

// Dispatcher is an in-process EventSource. Pointer adapters Publish into it;
// handlers may subscribe or unsubscribe while an event is being dispatched.
type Dispatcher struct {
	handlers []pointerHandler
	nextID   uint32
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers fn for every published event.
func (d *Dispatcher) Subscribe(fn func(PointerEvent)) Subscription {
	d.nextID++
	id := d.nextID
	d.handlers = append(d.handlers, pointerHandler{id: id, fn: fn})
	return &dispatcherSubscription{d: d, id: id}
}

// Publish delivers ev to the handlers registered when Publish was called.
func (d *Dispatcher) Publish(ev PointerEvent) {
	// Subscribe appends and remove copies, so this header stays stable.
	handlers := d.handlers
	for _, h := range handlers {
		h.fn(ev)
	}
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}

type dispatcherSubscription struct {
	d  *Dispatcher
	id uint32
}

func (s *dispatcherSubscription) Remove() {
	if s.d == nil {
		return
	}
	hs := s.d.handlers
	for i := range hs {
		if hs[i].id == s.id {
			out := make([]pointerHandler, 0, len(hs)-1)
			out = append(out, hs[:i]...)
			s.d.handlers = append(out, hs[i+1:]...)
			break
		}
	}
	s.d = nil
}

// --- Session ---

// SessionOptions tunes a drag session.
type SessionOptions struct {
	// IdleFrames cancels the drag after this many consecutive Tick calls
	// without a pointer event of the session's kind. 0 disables the timeout.
	IdleFrames int
}

// Session is one drag, from Begin to End. It owns the subscription to the
// event source and removes it exactly once: on End, on Cancel, on idle
// timeout, or as soon as it sees that its drag is no longer the engine's
// current one (reset, cancelled, or replaced by a newer drag).
//
// A release that cannot be resolved because the container has no bounds
// ends the drag silently: no move-end is fired.
type Session struct {
	engine *Engine
	sub    Subscription
	kind   PointerKind
	drag   uint64
	opts   SessionOptions
	idle   int
	done   bool
}

// StartSession begins a drag on engine at pos and subscribes to src for the
// rest of it. Returns ok=false, with nothing subscribed, if the engine
// refused the begin (already dragging or no container yet).
func StartSession(engine *Engine, src EventSource, pos Vec2, kind PointerKind, opts SessionOptions) (*Session, bool) {
	if !engine.Begin(pos, kind) {
		return nil, false
	}
	s := &Session{engine: engine, kind: kind, drag: engine.drag, opts: opts}
	s.sub = src.Subscribe(s.handle)
	return s, true
}

func (s *Session) handle(ev PointerEvent) {
	if s.done {
		return
	}
	if s.stale() {
		s.release()
		return
	}
	if ev.Kind != s.kind {
		return
	}
	s.idle = 0
	switch ev.Phase {
	case PhaseMove:
		s.engine.Move(ev.Position, ev.Kind)
	case PhaseEnd:
		if !s.engine.End(ev.Position, ev.Kind) {
			s.engine.abandon()
		}
		s.release()
	}
}

// Tick advances the idle timeout by one frame.
func (s *Session) Tick() {
	if s.done {
		return
	}
	if s.stale() {
		s.release()
		return
	}
	if s.opts.IdleFrames <= 0 {
		return
	}
	s.idle++
	if s.idle >= s.opts.IdleFrames {
		s.Cancel()
	}
}

// Cancel ends the drag without further movement and unsubscribes. A drag
// that already belongs to someone else is left alone.
func (s *Session) Cancel() {
	if s.done {
		return
	}
	if !s.stale() {
		s.engine.Cancel()
	}
	s.release()
}

// stale reports whether the engine has moved on from this session's drag.
func (s *Session) stale() bool {
	return !s.engine.Pressed() || s.engine.drag != s.drag
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.done
}

func (s *Session) release() {
	s.done = true
	if s.sub != nil {
		s.sub.Remove()
		s.sub = nil
	}
}
