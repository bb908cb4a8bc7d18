package sprout

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string   `json:"action"`
	Keys   []string `json:"keys,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// inputScriptFile is the top-level JSON structure for an input script.
type inputScriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// InputScript sequences synthetic input across frames for automated play
// testing. Call Step once per frame before the processor ticks, with the
// ScriptedInput the processor polls.
//
// Actions: "hold" (keys for frames), "tap" (keys for one frame, then release),
// "wait" (no input for frames). Key names: left, right, up, down for the
// keyboard; pad_left, pad_right, pad_jump, pad_down for the virtual pad.
type InputScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*InputScript, error) {
	var script inputScriptFile
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "hold", "tap", "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := stateForKeys(st.Keys); err != nil {
			return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *InputScript) Done() bool {
	return r.done
}

// Step advances the script by one frame.
func (r *InputScript) Step(in *ScriptedInput) {
	if r.done {
		return
	}
	// Wait for queued frames to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	state, _ := stateForKeys(st.Keys)
	switch st.Action {
	case "hold":
		in.InjectHold(state, st.Frames)
	case "tap":
		in.InjectTap(state)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}

func stateForKeys(keys []string) (InputState, error) {
	var s InputState
	for _, k := range keys {
		switch k {
		case "left":
			s.Keys.Left = true
		case "right":
			s.Keys.Right = true
		case "up":
			s.Keys.Up = true
		case "down":
			s.Keys.Down = true
		case "pad_left":
			s.Touch.Left = true
		case "pad_right":
			s.Touch.Right = true
		case "pad_jump":
			s.Touch.Jump = true
		case "pad_down":
			s.Touch.Down = true
		default:
			return InputState{}, fmt.Errorf("unknown key %q", k)
		}
	}
	return s, nil
}
