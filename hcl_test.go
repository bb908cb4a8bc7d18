package sprout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const platformerHCL = `
node "tick" {
  kind = "update_tick"
}

node "axis" {
  kind = "axis_x"
  x    = 10
  y    = 20
}

node "speed" {
  kind  = "constant"
  label = "Run Speed"
  value = 180
}

node "scale" {
  kind = "multiply"
}

node "move" {
  kind = "apply_motion"
}

connect {
  from = "tick.exec"
  to   = "move.exec"
}

connect {
  from = "axis.value"
  to   = "scale.a"
}

connect {
  from = "speed.value"
  to   = "scale.b"
}

connect {
  from = "scale.value"
  to   = "move.x"
}
`

func TestLoadGraphHCL(t *testing.T) {
	g, err := LoadGraphHCL("test.hcl", []byte(platformerHCL))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes()) != 5 || len(g.Connections()) != 4 {
		t.Fatalf("got %d nodes, %d connections", len(g.Nodes()), len(g.Connections()))
	}

	speed := g.Node("speed")
	if speed.Kind != KindConstant || speed.Label != "Run Speed" {
		t.Errorf("speed = %+v", speed)
	}
	if v := speed.NumberControl(ControlValue); v != 180 {
		t.Errorf("speed value = %v, want 180", v)
	}
	if p := g.Node("axis").Position; p != (Vec2{X: 10, Y: 20}) {
		t.Errorf("axis position = %+v", p)
	}

	actor := &fakeActor{}
	input := InputFunc(func() InputState { return InputState{Keys: KeyState{Right: true}} })
	newTestProcessor(g, actor, input).Tick(1.0 / 60)
	if actor.vel.X != 180 {
		t.Errorf("vx = %v, want 180", actor.vel.X)
	}
}

func TestLoadGraphHCL_Controls(t *testing.T) {
	src := `
node "c" {
  kind     = "constant"
  controls = {
    value = 2.5
    note  = "tuned"
    on    = true
  }
}
`
	g, err := LoadGraphHCL("controls.hcl", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	c := g.Node("c")
	if v := c.NumberControl(ControlValue); v != 2.5 {
		t.Errorf("value = %v, want 2.5", v)
	}
	if c.Controls["note"] != "tuned" || c.Controls["on"] != true {
		t.Errorf("controls = %v", c.Controls)
	}
}

func TestLoadGraphHCL_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		is   error
	}{
		{
			name: "syntax",
			src:  `node "a" {`,
			want: "parse",
		},
		{
			name: "missing kind",
			src:  `node "a" {}`,
			want: "decode",
		},
		{
			name: "unknown kind",
			src:  `node "a" { kind = "teleport" }`,
			is:   ErrUnknownKind,
		},
		{
			name: "bad endpoint",
			src: `
node "a" { kind = "update_tick" }
connect {
  from = "a"
  to   = "b.exec"
}`,
			want: "<node>.<socket>",
		},
		{
			name: "socket mismatch",
			src: `
node "t" { kind = "update_tick" }
node "m" { kind = "apply_motion" }
connect {
  from = "t.exec"
  to   = "m.x"
}`,
			is: ErrSocketMismatch,
		},
		{
			name: "controls not an object",
			src: `
node "a" {
  kind     = "constant"
  controls = 3
}`,
			want: "controls must be an object",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGraphHCL("bad.hcl", []byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("expected %v, got %v", tt.is, err)
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadGraphFile_HCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.hcl")
	if err := os.WriteFile(path, []byte(platformerHCL), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGraphFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Node("move") == nil {
		t.Error("expected move node")
	}
}

func TestSplitEndpoint(t *testing.T) {
	id, socket, err := splitEndpoint("player.v2.value")
	if err != nil {
		t.Fatal(err)
	}
	if id != "player.v2" || socket != "value" {
		t.Errorf("got %q, %q", id, socket)
	}
	for _, bad := range []string{"", "a", ".value", "a."} {
		if _, _, err := splitEndpoint(bad); err == nil {
			t.Errorf("splitEndpoint(%q) should fail", bad)
		}
	}
}
