package tui

import (
	"time"

	"github.com/vovakirdan/dino-dash/internal/core"
)

// Terminals report presses and auto-repeats, never releases. A key counts
// as held for holdWindow after each report. After a first press the
// terminal waits its initial repeat delay before repeating, so a second
// report sooner than tapWindow is a new tap. A later one is a tap only if
// no further report follows within holdWindow; otherwise it opened the
// auto-repeat stream. After repeatWindow of silence the key is released.
const (
	holdWindow   = 100 * time.Millisecond
	tapWindow    = 200 * time.Millisecond
	repeatWindow = 750 * time.Millisecond
)

type keyPhase int

const (
	keyTapped    keyPhase = iota // Pressed once, waiting for auto-repeat
	keyPending                   // Second report, tap or first repeat
	keyRepeating                 // Auto-repeat stream in progress
)

type keyState struct {
	phase keyPhase
	age   int  // Ticks since the last report
	edge  bool // Rising edge not yet delivered
}

// heldInput turns key presses into per-tick input frames with explicit
// rising edges. Pulse actions are down for exactly one tick.
type heldInput struct {
	hold   int // holdWindow in ticks
	tap    int
	repeat int

	keys   map[core.Action]*keyState
	pulses map[core.Action]bool
	frame  core.InputFrame
}

func newHeldInput(tickRate int) *heldInput {
	return &heldInput{
		hold:   windowTicks(holdWindow, tickRate),
		tap:    windowTicks(tapWindow, tickRate),
		repeat: windowTicks(repeatWindow, tickRate),
		keys:   make(map[core.Action]*keyState),
		pulses: make(map[core.Action]bool),
		frame:  core.NewEdgeFrame(),
	}
}

// windowTicks converts d to whole ticks, rounding up, at least one.
func windowTicks(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	n := int((d*time.Duration(tickRate) + time.Second - 1) / time.Second)
	return max(n, 1)
}

// isPulse reports actions that must fire once per key press.
func isPulse(a core.Action) bool {
	switch a {
	case core.ActionPause, core.ActionRestart, core.ActionBack, core.ActionConfirm:
		return true
	}
	return false
}

// Press records a key report for action a.
func (h *heldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if isPulse(a) {
		h.pulses[a] = true
		return
	}

	k, ok := h.keys[a]
	switch {
	case !ok:
		h.keys[a] = &keyState{phase: keyTapped, edge: true}
		return
	case k.phase == keyTapped && k.age < h.tap:
		k.edge = true
	case k.phase == keyTapped:
		k.phase = keyPending
	case k.phase == keyPending:
		k.phase = keyRepeating
	}
	k.age = 0
}

// Frame returns the input for the next tick and ages held keys.
func (h *heldInput) Frame() core.InputFrame {
	h.frame.Clear()
	for a, k := range h.keys {
		if k.phase == keyPending && k.age >= h.hold {
			// Nothing followed, so it was a second tap
			k.phase = keyTapped
			k.edge = true
		}
		if k.age < h.hold || k.edge {
			h.frame.Set(a)
		}
		if k.edge {
			h.frame.Press(a)
			k.edge = false
		}

		k.age++
		if (k.phase == keyTapped && k.age >= h.repeat) || (k.phase == keyRepeating && k.age >= h.hold) {
			delete(h.keys, a)
		}
	}
	for a := range h.pulses {
		h.frame.Press(a)
		delete(h.pulses, a)
	}
	return h.frame.Clone()
}

// Reset releases every key.
func (h *heldInput) Reset() {
	clear(h.keys)
	clear(h.pulses)
	h.frame.Clear()
}
