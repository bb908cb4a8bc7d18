package ecs

import (
	"testing"

	"github.com/phanxgames/sprout"

	"github.com/yohamta/donburi"
)

func TestNewDonburiActor(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(KinematicsComponent)
	if NewDonburiActor(world, e) == nil {
		t.Fatal("NewDonburiActor returned nil")
	}
}

func TestDonburiActor_ReadsComponent(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(KinematicsComponent)
	KinematicsComponent.SetValue(world.Entry(e), Kinematics{
		Position: sprout.Vec2{X: 10, Y: 20},
		Velocity: sprout.Vec2{X: 1, Y: 2},
		Contact:  sprout.Contact{BlockedDown: true},
	})

	actor := NewDonburiActor(world, e)
	if got := actor.Position(); got != (sprout.Vec2{X: 10, Y: 20}) {
		t.Errorf("Position = %+v", got)
	}
	if got := actor.Velocity(); got != (sprout.Vec2{X: 1, Y: 2}) {
		t.Errorf("Velocity = %+v", got)
	}
	if !actor.Contact().Grounded() {
		t.Error("expected grounded contact")
	}
}

func TestDonburiActor_SetVelocityPublishes(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(KinematicsComponent)
	actor := NewDonburiActor(world, e)

	var received []VelocityEvent
	VelocityEventType.Subscribe(world, func(w donburi.World, ev VelocityEvent) {
		received = append(received, ev)
	})

	actor.SetVelocityX(5)
	actor.SetVelocityY(-300)

	k := KinematicsComponent.Get(world.Entry(e))
	if k.Velocity.X != 5 || k.Velocity.Y != -300 {
		t.Errorf("velocity = %+v, want (5,-300)", k.Velocity)
	}

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	VelocityEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Axis != AxisX || received[0].Value != 5 || received[0].Entity != e {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Axis != AxisY || received[1].Value != -300 {
		t.Errorf("event 1: %+v", received[1])
	}
}

var markerTag = donburi.NewTag()

func TestDonburiActor_MissingComponent(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(markerTag)
	actor := NewDonburiActor(world, e)

	actor.SetVelocityX(5)
	if got := actor.Velocity(); got != (sprout.Vec2{}) {
		t.Errorf("Velocity = %+v, want zero", got)
	}
}

func TestDonburiActor_RemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(KinematicsComponent)
	actor := NewDonburiActor(world, e)
	world.Remove(e)

	actor.SetVelocityY(10)
	if got := actor.Position(); got != (sprout.Vec2{}) {
		t.Errorf("Position = %+v, want zero", got)
	}
}

func TestDonburiActor_DrivenByProcessor(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create(KinematicsComponent)
	KinematicsComponent.Get(world.Entry(e)).Contact.BlockedDown = true

	g := sprout.NewGraph()
	for _, n := range []*sprout.Node{
		sprout.NewUpdateTick("tick"),
		sprout.NewConstant("jump", -300),
		sprout.NewApplyMotion("move"),
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	for _, c := range []sprout.Connection{
		{Source: "tick", SourceOutput: sprout.PortExec, Target: "move", TargetInput: sprout.PortExec},
		{Source: "jump", SourceOutput: sprout.PortValue, Target: "move", TargetInput: sprout.PortY},
	} {
		if err := g.Connect(c); err != nil {
			t.Fatal(err)
		}
	}

	proc := sprout.NewProcessor(g, NewDonburiActor(world, e), sprout.ProcessorConfig{})
	proc.Tick(1.0 / 60)

	k := KinematicsComponent.Get(world.Entry(e))
	if k.Velocity.X != 0 || k.Velocity.Y != -300 {
		t.Errorf("velocity = %+v, want (0,-300)", k.Velocity)
	}
}
