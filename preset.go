package sprout

// Node IDs used by NewPlatformerGraph.
const (
	presetTick  NodeID = "tick"
	presetAxisX NodeID = "axis_x"
	presetAxisY NodeID = "axis_y"
	presetSpeed NodeID = "speed"
	presetJump  NodeID = "jump"
	presetRunX  NodeID = "scale_x"
	presetRunY  NodeID = "scale_y"
	presetMove  NodeID = "move"
)

// NewPlatformerGraph builds the standard movement graph: the horizontal axis
// scaled by speed drives x, the vertical axis scaled by jump drives y, and an
// UpdateTick fires ApplyMotion every frame. With jump=300 a held up key gives
// a -300 px/s jump and a held down key a fast-fall of gravity+150.
func NewPlatformerGraph(speed, jump float64) *Graph {
	g := NewGraph()
	for _, n := range []*Node{
		NewUpdateTick(presetTick),
		NewAxisX(presetAxisX),
		NewAxisY(presetAxisY),
		NewConstant(presetSpeed, speed),
		NewConstant(presetJump, jump),
		NewMultiply(presetRunX),
		NewMultiply(presetRunY),
		NewApplyMotion(presetMove),
	} {
		if err := g.AddNode(n); err != nil {
			panic(err)
		}
	}

	// Lay the nodes out in columns for editors.
	layout := map[NodeID]Vec2{
		presetTick:  {X: 0, Y: 0},
		presetAxisX: {X: 0, Y: 120},
		presetSpeed: {X: 0, Y: 200},
		presetAxisY: {X: 0, Y: 300},
		presetJump:  {X: 0, Y: 380},
		presetRunX:  {X: 220, Y: 160},
		presetRunY:  {X: 220, Y: 340},
		presetMove:  {X: 440, Y: 120},
	}
	for id, pos := range layout {
		g.Node(id).Position = pos
	}

	for _, c := range []Connection{
		{Source: presetTick, SourceOutput: PortExec, Target: presetMove, TargetInput: PortExec},
		{Source: presetAxisX, SourceOutput: PortValue, Target: presetRunX, TargetInput: PortA},
		{Source: presetSpeed, SourceOutput: PortValue, Target: presetRunX, TargetInput: PortB},
		{Source: presetAxisY, SourceOutput: PortValue, Target: presetRunY, TargetInput: PortA},
		{Source: presetJump, SourceOutput: PortValue, Target: presetRunY, TargetInput: PortB},
		{Source: presetRunX, SourceOutput: PortValue, Target: presetMove, TargetInput: PortX},
		{Source: presetRunY, SourceOutput: PortValue, Target: presetMove, TargetInput: PortY},
	} {
		if err := g.Connect(c); err != nil {
			panic(err)
		}
	}
	return g
}

// DefaultLevel returns a 640x360 level with three floating platforms.
func DefaultLevel() Level {
	return Level{
		Bounds: Rect{Width: 640, Height: 360},
		Platforms: []Rect{
			{X: 80, Y: 260, Width: 140, Height: 16},
			{X: 260, Y: 200, Width: 120, Height: 16},
			{X: 430, Y: 140, Width: 140, Height: 16},
		},
	}
}

// DefaultBody is the player size used by the CLI and examples.
var DefaultBody = BodyConfig{Width: 24, Height: 32, MaxFallSpeed: 900}
