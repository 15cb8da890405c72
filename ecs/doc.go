// Package ecs forwards slider movement into a [Donburi] world.
//
// An engine with an EntityStore sends one [dial.MovementEvent] per emitted
// record: EventMove on press and on every move, EventMoveEnd on release or
// cancel. Each carries the engine's EntityID together with the value,
// handle coordinates and pressed flag. [NewDonburiStore] queues these on
// [MovementEventType]; systems read them with Subscribe and ProcessEvents,
// so slider changes are applied at the world's own event-processing step
// rather than inside the input callback.
//
//	store := ecs.NewDonburiStore(world)
//	engine.EntityID = uint32(entity.Id())
//	engine.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
