package sprout

import "testing"

func TestLoadInputScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "hold", "keys": ["left", "up"], "frames": 5},
			{"action": "wait", "frames": 3},
			{"action": "tap", "keys": ["pad_jump"]}
		]
	}`)

	script, err := LoadInputScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(script.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(script.steps))
	}
	if script.steps[0].Action != "hold" || script.steps[0].Frames != 5 || len(script.steps[0].Keys) != 2 {
		t.Error("step 0 mismatch")
	}
	if script.steps[1].Action != "wait" || script.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
}

func TestLoadInputScript_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":       `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "click"}]}`,
		"unknown key":    `{"steps": [{"action": "hold", "keys": ["jump"]}]}`,
	}
	for name, src := range tests {
		if _, err := LoadInputScript([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestInputScriptStep_Hold(t *testing.T) {
	script, err := LoadInputScript([]byte(`{"steps": [{"action": "hold", "keys": ["right"], "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	var in ScriptedInput

	var held int
	for frame := 0; frame < 10 && !script.Done(); frame++ {
		script.Step(&in)
		if in.Poll().Keys.Right {
			held++
		}
	}
	if held != 3 {
		t.Errorf("right held for %d frames, want 3", held)
	}
	if !script.Done() {
		t.Error("script should be done")
	}
}

func TestInputScriptStep_Wait(t *testing.T) {
	script, err := LoadInputScript([]byte(`{
		"steps": [
			{"action": "wait", "frames": 3},
			{"action": "tap", "keys": ["pad_down"]}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	var in ScriptedInput

	var frames []bool
	for frame := 0; frame < 10 && !script.Done(); frame++ {
		script.Step(&in)
		frames = append(frames, in.Poll().Touch.Down)
	}
	// Three idle frames, then the tap press.
	if len(frames) < 4 || frames[0] || frames[1] || frames[2] || !frames[3] {
		t.Errorf("unexpected frame sequence %v", frames)
	}
}

func TestInputScriptStep_DoneIsSticky(t *testing.T) {
	script, err := LoadInputScript([]byte(`{"steps": [{"action": "wait", "frames": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	var in ScriptedInput
	script.Step(&in)
	if !script.Done() {
		t.Fatal("single one-frame wait should finish immediately")
	}
	script.Step(&in)
	if in.Pending() != 0 {
		t.Error("finished script should not queue input")
	}
}
