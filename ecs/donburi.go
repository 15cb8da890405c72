package ecs

import (
	"github.com/phanxgames/dial"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MovementEventType carries dial movement records. Filter on EntityID when
// several sliders share one world.
var MovementEventType = events.NewEventType[dial.MovementEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns a dial.EntityStore that queues every movement
// record on MovementEventType in world.
func NewDonburiStore(world donburi.World) dial.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dial.MovementEvent) {
	MovementEventType.Publish(s.world, event)
}
