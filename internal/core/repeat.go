package core

import "time"

// RepeatPolicy controls how a held action re-fires.
// Both values are measured in frames.
type RepeatPolicy struct {
	Delay    int // Frames a key must be held before repeating starts
	Interval int // Frames between repeats once repeating
}

// KeyState tracks how many consecutive frames an action has been pressed.
type KeyState struct {
	pressedFrames    int
	pressedThisFrame bool
}

// Press marks the action as pressed during the current frame.
func (k *KeyState) Press() {
	k.pressedThisFrame = true
}

// Update closes the frame. A frame without a press resets the counter.
func (k *KeyState) Update() {
	if k.pressedThisFrame {
		k.pressedThisFrame = false
		k.pressedFrames++
	} else {
		k.pressedFrames = 0
	}
}

// Repeated reports whether the action should fire this frame:
// on the first pressed frame, then every Interval frames after Delay.
func (k KeyState) Repeated(p RepeatPolicy) bool {
	if k.pressedFrames == 1 {
		return true
	}
	if p.Interval <= 0 {
		return false
	}
	return k.pressedFrames > p.Delay && k.pressedFrames%p.Interval == 0
}

// KeyRepeat applies a RepeatPolicy to a fixed set of actions.
// Actions it does not track pass through unchanged.
type KeyRepeat struct {
	policy RepeatPolicy
	states map[Action]*KeyState
}

// NewKeyRepeat creates a repeater for the given actions.
func NewKeyRepeat(policy RepeatPolicy, actions ...Action) *KeyRepeat {
	states := make(map[Action]*KeyState, len(actions))
	for _, a := range actions {
		states[a] = &KeyState{}
	}
	return &KeyRepeat{policy: policy, states: states}
}

// Feed consumes the raw frame and returns the actions that fire this frame.
func (r *KeyRepeat) Feed(raw InputFrame) InputFrame {
	fired := NewInputFrame()
	for a, pressed := range raw.Actions {
		if _, tracked := r.states[a]; !tracked && pressed {
			fired.Set(a)
		}
	}

	for a, st := range r.states {
		if raw.Has(a) {
			st.Press()
		}
		st.Update()
		if st.Repeated(r.policy) {
			fired.Set(a)
		}
	}
	return fired
}

// Reset forgets all held keys.
func (r *KeyRepeat) Reset() {
	for _, st := range r.states {
		*st = KeyState{}
	}
}

// HoldLatch turns discrete key events into a held state. Terminals only
// report presses, and a held key arrives as autorepeat events a few frames
// apart, so an action counts as held until no event for it has arrived for
// more than Window frames.
type HoldLatch struct {
	window  int
	frame   int
	pressed map[Action]int // Frame of the latest event per action
	tracked map[Action]bool
}

// NewHoldLatch creates a latch for the given actions. A window below one
// frame is raised to one.
func NewHoldLatch(window int, actions ...Action) *HoldLatch {
	tracked := make(map[Action]bool, len(actions))
	for _, a := range actions {
		tracked[a] = true
	}
	return &HoldLatch{
		window:  max(window, 1),
		pressed: make(map[Action]int, len(actions)),
		tracked: tracked,
	}
}

// LatchWindow converts a duration to a latch window at the given tick rate.
func LatchWindow(gap time.Duration, tickRate int) int {
	return max(int(gap*time.Duration(tickRate)/time.Second), 1)
}

// Press records an event for the action in the current frame.
// Untracked actions are ignored.
func (l *HoldLatch) Press(a Action) {
	if l.tracked[a] {
		l.pressed[a] = l.frame
	}
}

// Apply sets every action still held on the frame and advances to the next frame.
func (l *HoldLatch) Apply(f *InputFrame) {
	for a, at := range l.pressed {
		if l.frame-at <= l.window {
			f.Set(a)
		} else {
			delete(l.pressed, a)
		}
	}
	l.frame++
}

// Reset releases every held action.
func (l *HoldLatch) Reset() {
	for a := range l.pressed {
		delete(l.pressed, a)
	}
}
