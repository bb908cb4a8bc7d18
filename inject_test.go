package sprout

import "testing"

func TestScriptedInput_Hold(t *testing.T) {
	var s ScriptedInput
	left := InputState{Keys: KeyState{Left: true}}
	s.InjectHold(left, 3)
	if s.Pending() != 3 {
		t.Fatalf("expected 3 queued frames, got %d", s.Pending())
	}
	for i := 0; i < 3; i++ {
		if got := s.Poll(); got != left {
			t.Errorf("frame %d: %+v, want left", i, got)
		}
	}
	if s.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", s.Pending())
	}
	if got := s.Poll(); got != (InputState{}) {
		t.Errorf("empty queue should poll as no input, got %+v", got)
	}
}

func TestScriptedInput_HoldMinimumOneFrame(t *testing.T) {
	var s ScriptedInput
	s.InjectHold(InputState{Keys: KeyState{Up: true}}, 0)
	if s.Pending() != 1 {
		t.Errorf("expected 1 queued frame, got %d", s.Pending())
	}
}

func TestScriptedInput_Tap(t *testing.T) {
	var s ScriptedInput
	jump := InputState{Touch: ButtonState{Jump: true}}
	s.InjectTap(jump)
	if s.Pending() != 2 {
		t.Fatalf("expected 2 queued frames, got %d", s.Pending())
	}

	// Frame 1: press
	if got := s.Poll(); got != jump {
		t.Errorf("press frame = %+v", got)
	}
	// Frame 2: release
	if got := s.Poll(); got != (InputState{}) {
		t.Errorf("release frame = %+v", got)
	}
}

func TestScriptedInput_Order(t *testing.T) {
	var s ScriptedInput
	s.InjectHold(InputState{Keys: KeyState{Left: true}}, 1)
	s.InjectIdle(2)
	s.InjectHold(InputState{Keys: KeyState{Right: true}}, 1)

	want := []InputState{
		{Keys: KeyState{Left: true}},
		{},
		{},
		{Keys: KeyState{Right: true}},
	}
	for i, w := range want {
		if got := s.Poll(); got != w {
			t.Errorf("frame %d = %+v, want %+v", i, got, w)
		}
	}
}
