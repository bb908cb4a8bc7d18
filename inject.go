package sprout

// ScriptedInput is an InputSource fed by queued synthetic frames instead of
// devices. Each Poll consumes one frame; an empty queue polls as no input.
type ScriptedInput struct {
	queue []InputState
}

// InjectHold queues state for the given number of frames (minimum 1).
func (s *ScriptedInput) InjectHold(state InputState, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		s.queue = append(s.queue, state)
	}
}

// InjectTap queues state for one frame followed by one released frame.
// Consumes two frames.
func (s *ScriptedInput) InjectTap(state InputState) {
	s.queue = append(s.queue, state, InputState{})
}

// InjectIdle queues the given number of frames with nothing held.
func (s *ScriptedInput) InjectIdle(frames int) {
	s.InjectHold(InputState{}, frames)
}

// Pending returns the number of queued frames.
func (s *ScriptedInput) Pending() int {
	return len(s.queue)
}

// Poll pops the next queued frame.
func (s *ScriptedInput) Poll() InputState {
	if len(s.queue) == 0 {
		return InputState{}
	}
	state := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	return state
}
