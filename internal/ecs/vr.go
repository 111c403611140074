package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// VRSessionEvent is published whenever an entity's VR session starts or ends.
type VRSessionEvent struct {
	Entity donburi.Entity
	Active bool
}

// VRSessionEvents carries VRSessionEvent. Subscribers run on ProcessEvents.
var VRSessionEvents = events.NewEventType[VRSessionEvent]()

// SetInsideVR adds or removes the InsideVR tag on entity and publishes a
// VRSessionEvent. It does nothing for dead entities or when the tag already
// has the requested state.
func SetInsideVR(w donburi.World, entity donburi.Entity, active bool) {
	if !w.Valid(entity) {
		return
	}
	entry := w.Entry(entity)
	if entry.HasComponent(InsideVR) == active {
		return
	}
	if active {
		entry.AddComponent(InsideVR)
	} else {
		entry.RemoveComponent(InsideVR)
	}
	VRSessionEvents.Publish(w, VRSessionEvent{Entity: entity, Active: active})
}

// IsInsideVR reports whether entity carries the InsideVR tag.
func IsInsideVR(w donburi.World, entity donburi.Entity) bool {
	return w.Valid(entity) && w.Entry(entity).HasComponent(InsideVR)
}
