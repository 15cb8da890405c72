package dial

import "testing"

func TestDispatcher_SubscribeRemove(t *testing.T) {
	d := NewDispatcher()
	var a, b int
	sa := d.Subscribe(func(PointerEvent) { a++ })
	d.Subscribe(func(PointerEvent) { b++ })

	d.Publish(PointerEvent{})
	sa.Remove()
	sa.Remove()
	d.Publish(PointerEvent{})

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want a=1 b=2", a, b)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestDispatcher_ChangesDuringPublish(t *testing.T) {
	d := NewDispatcher()
	var late int
	var calls []string
	var self Subscription
	self = d.Subscribe(func(PointerEvent) {
		calls = append(calls, "self-removing")
		self.Remove()
		d.Subscribe(func(PointerEvent) { late++ })
	})
	d.Subscribe(func(PointerEvent) { calls = append(calls, "other") })

	d.Publish(PointerEvent{})
	if len(calls) != 2 || calls[0] != "self-removing" || calls[1] != "other" {
		t.Errorf("calls = %v", calls)
	}
	if late != 0 {
		t.Error("handler subscribed during publish should not see that event")
	}

	d.Publish(PointerEvent{})
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

func begin(pos Vec2) PointerEvent {
	return PointerEvent{Phase: PhaseBegin, Kind: PointerMouse, Position: pos}
}

func move(pos Vec2) PointerEvent {
	return PointerEvent{Phase: PhaseMove, Kind: PointerMouse, Position: pos}
}

func end(pos Vec2) PointerEvent {
	return PointerEvent{Phase: PhaseEnd, Kind: PointerMouse, Position: pos}
}

func TestSession_Lifecycle(t *testing.T) {
	e := newTestEngine(t, nil)
	rec := record(e)
	d := NewDispatcher()

	s, ok := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{})
	if !ok {
		t.Fatal("StartSession should succeed")
	}
	if d.Len() != 1 {
		t.Fatalf("session should subscribe once, Len() = %d", d.Len())
	}

	d.Publish(move(screenAt(e, 36)))
	d.Publish(move(screenAt(e, 72)))
	d.Publish(end(screenAt(e, 108)))

	if !s.Done() {
		t.Error("session should be done after end")
	}
	if d.Len() != 0 {
		t.Errorf("session leaked its subscription, Len() = %d", d.Len())
	}
	if len(rec.moves) != 3 || len(rec.ends) != 1 {
		t.Fatalf("got %d moves, %d ends; want 3, 1", len(rec.moves), len(rec.ends))
	}
	if !approxEqual(rec.ends[0].Value, 30, 1e-9) {
		t.Errorf("end value = %v, want 30", rec.ends[0].Value)
	}

	// Events after the end reach nobody.
	d.Publish(move(screenAt(e, 144)))
	if len(rec.moves) != 3 {
		t.Error("move after session end should be ignored")
	}
}

func TestSession_RefusedBegin(t *testing.T) {
	e := newTestEngine(t, nil)
	d := NewDispatcher()
	e.Begin(screenAt(e, 0), PointerMouse)

	if s, ok := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{}); ok || s != nil {
		t.Error("StartSession should fail while the engine is dragging")
	}
	if d.Len() != 0 {
		t.Error("refused session must not subscribe")
	}
}

func TestSession_IgnoresOtherKind(t *testing.T) {
	e := newTestEngine(t, nil)
	d := NewDispatcher()
	s, _ := StartSession(e, d, screenAt(e, 0), PointerTouch, SessionOptions{})

	d.Publish(end(screenAt(e, 36)))
	if s.Done() {
		t.Error("a mouse release should not end a touch session")
	}
	d.Publish(PointerEvent{Phase: PhaseEnd, Kind: PointerTouch, Position: screenAt(e, 36)})
	if !s.Done() {
		t.Error("touch release should end the touch session")
	}
	if !approxEqual(e.Value(), 10, 1e-9) {
		t.Errorf("value = %v, want 10", e.Value())
	}
}

func TestSession_Cancel(t *testing.T) {
	e := newTestEngine(t, nil)
	rec := record(e)
	d := NewDispatcher()
	s, _ := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{})
	d.Publish(move(screenAt(e, 36)))

	s.Cancel()
	s.Cancel()
	if !s.Done() || e.Pressed() {
		t.Error("Cancel should end the session and the drag")
	}
	if d.Len() != 0 {
		t.Error("Cancel should unsubscribe")
	}
	if len(rec.ends) != 1 || !approxEqual(rec.ends[0].Value, 10, 1e-9) {
		t.Errorf("ends = %+v", rec.ends)
	}
}

func TestSession_IdleTimeout(t *testing.T) {
	e := newTestEngine(t, nil)
	rec := record(e)
	d := NewDispatcher()
	s, _ := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{IdleFrames: 3})

	s.Tick()
	s.Tick()
	d.Publish(move(screenAt(e, 36))) // resets the idle count
	s.Tick()
	s.Tick()
	if s.Done() {
		t.Fatal("session timed out early")
	}
	s.Tick()
	if !s.Done() {
		t.Fatal("session should time out after 3 idle frames")
	}
	if e.Pressed() || d.Len() != 0 {
		t.Error("timeout should cancel the drag and unsubscribe")
	}
	if len(rec.ends) != 1 {
		t.Errorf("timeout should fire move-end once, got %d", len(rec.ends))
	}
}

func TestSession_NoTimeoutByDefault(t *testing.T) {
	e := newTestEngine(t, nil)
	d := NewDispatcher()
	s, _ := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{})
	for i := 0; i < 1000; i++ {
		s.Tick()
	}
	if s.Done() {
		t.Error("session without IdleFrames should not time out")
	}
}

func TestSession_EngineResetBehindItsBack(t *testing.T) {
	e := newTestEngine(t, nil)
	rec := record(e)
	d := NewDispatcher()
	s, _ := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{})

	if err := e.Reset(DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	d.Publish(move(screenAt(e, 36)))
	if !s.Done() || d.Len() != 0 {
		t.Error("session should release once the engine is no longer pressed")
	}
	if len(rec.ends) != 0 {
		t.Error("reset should not produce a move-end")
	}
}

func TestSession_EndWithoutContainerStillEnds(t *testing.T) {
	e := newTestEngine(t, nil)
	rec := record(e)
	d := NewDispatcher()
	s, _ := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{})

	e.SetContainer(unmountedContainer{})
	d.Publish(end(screenAt(e, 36)))
	if !s.Done() || e.Pressed() {
		t.Error("release should end the drag even without container bounds")
	}
	if len(rec.ends) != 0 {
		t.Errorf("unresolved release fired move-end: %+v", rec.ends)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}

	// The engine is free for the next drag.
	e.SetContainer(testContainer)
	if _, ok := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{}); !ok {
		t.Error("engine should accept a new drag after an unresolved release")
	}
}

func TestSession_ResetThenNewSession(t *testing.T) {
	e := newTestEngine(t, nil)
	d := NewDispatcher()
	d.Subscribe(func(PointerEvent) {}) // stands in for a widget's press handler

	old, _ := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{})
	if err := e.Reset(DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	cur, ok := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{})
	if !ok {
		t.Fatal("second StartSession should succeed after Reset")
	}

	var moves int
	e.OnMove(func(MovementRecord) { moves++ })
	d.Publish(move(screenAt(e, 36)))

	if moves != 1 {
		t.Errorf("one move fired OnMove %d times, want 1", moves)
	}
	if !old.Done() || cur.Done() {
		t.Errorf("old.Done()=%v cur.Done()=%v, want true, false", old.Done(), cur.Done())
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	if !approxEqual(e.Value(), 10, 1e-9) {
		t.Errorf("value = %v, want 10", e.Value())
	}

	// Cancelling the stale session must not end the live drag.
	old.Cancel()
	if !e.Pressed() || cur.Done() {
		t.Error("stale Cancel ended the live drag")
	}
}

func TestSession_StaleTickReleases(t *testing.T) {
	e := newTestEngine(t, nil)
	d := NewDispatcher()
	old, _ := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{IdleFrames: 1})
	if err := e.Reset(DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	cur, _ := StartSession(e, d, screenAt(e, 0), PointerMouse, SessionOptions{})

	old.Tick()
	if !old.Done() || !e.Pressed() || cur.Done() {
		t.Error("stale session should release on Tick without touching the live drag")
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}
