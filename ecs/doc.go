// Package ecs provides [Donburi] adapters for sprout.
//
// The primary adapter is [NewDonburiActor], which exposes an entity's
// [Kinematics] component to a sprout Processor as an Actor. Velocity commands
// are written to the component and also published as [VelocityEvent]s so
// other systems can react to them.
//
// Usage:
//
//	entity := world.Create(ecs.KinematicsComponent)
//	actor := ecs.NewDonburiActor(world, entity)
//	proc := sprout.NewProcessor(graph, actor, sprout.ProcessorConfig{})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
