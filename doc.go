// Package dial is an interactive circular slider for [Ebitengine]: a
// draggable handle constrained to a ring, exposing a bounded value
// proportional to its angular position.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := dial.DefaultConfig()
//	cfg.RotationAdjustment = -90 // value 0 at 12 o'clock
//	w, err := dial.NewWidget(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	w.Engine().OnMove(func(r dial.MovementRecord) { fmt.Println(r.Value) })
//	log.Fatal(dial.Run(w, dial.RunConfig{Title: "Dial", Width: 240, Height: 240}))
//
// For full control, call [Widget.Update] and [Widget.Draw] from your own
// [ebiten.Game].
//
// # Engine
//
// [Engine] is the interaction state machine and does not depend on ebiten.
// Feed it abstract begin/move/end events at absolute positions; it resolves
// them against its [Container], measures the angle swept since the last
// known coordinates with [AngleBetweenPoints] and converts it into a value
// delta with [AngleToValue]. The [Motion] policy then decides what is
// committed:
//
//   - [MotionOnce] keeps the value in [MinValue, MaxValue); the handle stops
//     at the bounds instead of wrapping.
//   - [MotionLoop] wraps the value into [0, MaxValue).
//   - [MotionInfinite] accumulates across any number of turns.
//
// Each event is read as at most half a turn, so very fast drags with sparse
// events under-count.
//
// # Sessions
//
// A drag is a [Session] subscribed to an [EventSource] (usually a
// [Dispatcher]) from begin to end. It unsubscribes exactly once, on release,
// on [Session.Cancel], or after [SessionOptions.IdleFrames] frames without
// input. Pointer adapters publish into a Dispatcher: [PointerInput] for
// ebiten mouse and touch, and the termdial package for tcell terminals.
//
// # Configuration
//
// [Config] can be built in code from [DefaultConfig] or loaded from YAML
// with [LoadConfig]:
//
//	minValue: 0
//	maxValue: 360
//	motion: loop
//	rotationAdjustment: -90
//	style:
//	  handleSize: 32
//
// [Ebitengine]: https://ebitengine.org
package dial
