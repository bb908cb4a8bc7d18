package ecs

import (
	"github.com/phanxgames/sprout"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Kinematics is the component read and written by a Donburi actor. Physics
// systems own Position and Contact; the graph only commands Velocity.
type Kinematics struct {
	Position sprout.Vec2
	Velocity sprout.Vec2
	Contact  sprout.Contact
}

// KinematicsComponent is the Donburi component type for Kinematics.
var KinematicsComponent = donburi.NewComponentType[Kinematics]()

// Axis identifies which velocity component a VelocityEvent changed.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// VelocityEvent is published for every velocity command a graph issues.
type VelocityEvent struct {
	Entity donburi.Entity
	Axis   Axis
	Value  float64
}

// VelocityEventType is the Donburi event type for velocity commands.
// Subscribe to this in your ECS systems to observe graph output.
var VelocityEventType = events.NewEventType[VelocityEvent]()

type donburiActor struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiActor creates an Actor backed by the entity's Kinematics
// component. If the entity is removed or lacks the component, reads return
// zero values and commands are dropped.
func NewDonburiActor(world donburi.World, entity donburi.Entity) sprout.Actor {
	return &donburiActor{world: world, entity: entity}
}

func (a *donburiActor) kinematics() *Kinematics {
	if !a.world.Valid(a.entity) {
		return nil
	}
	entry := a.world.Entry(a.entity)
	if !entry.HasComponent(KinematicsComponent) {
		return nil
	}
	return KinematicsComponent.Get(entry)
}

func (a *donburiActor) Position() sprout.Vec2 {
	if k := a.kinematics(); k != nil {
		return k.Position
	}
	return sprout.Vec2{}
}

func (a *donburiActor) Velocity() sprout.Vec2 {
	if k := a.kinematics(); k != nil {
		return k.Velocity
	}
	return sprout.Vec2{}
}

func (a *donburiActor) Contact() sprout.Contact {
	if k := a.kinematics(); k != nil {
		return k.Contact
	}
	return sprout.Contact{}
}

func (a *donburiActor) SetVelocityX(v float64) {
	k := a.kinematics()
	if k == nil {
		return
	}
	k.Velocity.X = v
	VelocityEventType.Publish(a.world, VelocityEvent{Entity: a.entity, Axis: AxisX, Value: v})
}

func (a *donburiActor) SetVelocityY(v float64) {
	k := a.kinematics()
	if k == nil {
		return
	}
	k.Velocity.Y = v
	VelocityEventType.Publish(a.world, VelocityEvent{Entity: a.entity, Axis: AxisY, Value: v})
}
