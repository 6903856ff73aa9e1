package tui

import (
	"slices"
	"testing"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/runner"
	"github.com/vovakirdan/dino-dash/internal/upgrades"
)

// reports lists the ticks a key is reported on, then every step ticks
// from from to to (auto-repeat).
func reports(taps []int, from, to, step int) []int {
	out := slices.Clone(taps)
	if step > 0 {
		for t := from; t <= to; t += step {
			out = append(out, t)
		}
	}
	return out
}

// feed presses a on the given ticks and collects one frame per tick.
func feed(h *heldInput, a core.Action, at []int, ticks int) []core.InputFrame {
	frames := make([]core.InputFrame, 0, ticks)
	for tick := range ticks {
		if slices.Contains(at, tick) {
			h.Press(a)
		}
		frames = append(frames, h.Frame())
	}
	return frames
}

func edgeTicks(frames []core.InputFrame, a core.Action) []int {
	var out []int
	for tick, f := range frames {
		if f.Pressed[a] {
			out = append(out, tick)
		}
	}
	return out
}

func TestWindowTicks(t *testing.T) {
	tests := []struct {
		rate             int
		hold, tap, delay int
	}{
		{60, 6, 12, 45},
		{30, 3, 6, 23},
		{0, 6, 12, 45},
		{1, 1, 1, 1},
	}

	for _, tc := range tests {
		h := newHeldInput(tc.rate)
		if h.hold != tc.hold || h.tap != tc.tap || h.repeat != tc.delay {
			t.Errorf("rate %d: windows = %d/%d/%d, expected %d/%d/%d",
				tc.rate, h.hold, h.tap, h.repeat, tc.hold, tc.tap, tc.delay)
		}
	}
}

func TestHeldInputEdges(t *testing.T) {
	tests := []struct {
		name  string
		at    []int
		edges []int
	}{
		{"single tap", []int{0}, []int{0}},
		{"held key with auto-repeat", reports([]int{0}, 30, 80, 2), []int{0}},
		{"quick double tap", []int{0, 4}, []int{0, 4}},
		{"slow double tap", []int{0, 20}, []int{0, 26}},
		{"tap after the repeat delay", []int{0, 60}, []int{0, 60}},
		{"tap after releasing a held key", reports([]int{0, 70}, 30, 50, 2), []int{0, 70}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frames := feed(newHeldInput(60), core.ActionJump, tc.at, 100)
			if got := edgeTicks(frames, core.ActionJump); !slices.Equal(got, tc.edges) {
				t.Errorf("edges at %v, expected %v", got, tc.edges)
			}
		})
	}
}

func TestHeldInputLevel(t *testing.T) {
	h := newHeldInput(60)
	frames := feed(h, core.ActionJump, reports([]int{0}, 30, 40, 2), 60)

	for tick, f := range frames {
		want := tick < h.hold || (tick >= 30 && tick < 40+h.hold)
		if f.Has(core.ActionJump) != want {
			t.Errorf("tick %d: held = %v, expected %v", tick, f.Has(core.ActionJump), want)
		}
	}
}

func TestHeldInputDrivesAirJump(t *testing.T) {
	tests := []struct {
		name    string
		at      []int
		airJump bool
	}{
		{"held jump", reports([]int{0}, 30, 90, 2), false},
		{"quick double tap", []int{0, 4}, true},
		{"slow double tap", []int{0, 18}, true},
	}

	levels := upgrades.Levels{AirJump: 1}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := runner.NewPlayer(config.DefaultDinoConfig(), levels, 4, runner.NewRNG(1))
			used := false
			for _, in := range feed(newHeldInput(60), core.ActionJump, tc.at, 100) {
				p.Update(in, levels, 6)
				used = used || p.AirJumpUsed
			}
			if used != tc.airJump {
				t.Errorf("air jump used = %v, expected %v", used, tc.airJump)
			}
		})
	}
}

func TestHeldInputPulse(t *testing.T) {
	tests := []core.Action{core.ActionPause, core.ActionRestart, core.ActionBack}

	for _, a := range tests {
		h := newHeldInput(60)
		h.Press(a)
		if f := h.Frame(); !f.Has(a) || !f.Pressed[a] {
			t.Errorf("%s should be pressed on the first tick", a)
		}
		if h.Frame().Has(a) {
			t.Errorf("%s should only last one tick", a)
		}
	}
}

func TestHeldInputNoneAndReset(t *testing.T) {
	h := newHeldInput(60)
	h.Press(core.ActionNone)
	if len(h.Frame().Actions) != 0 {
		t.Error("ActionNone should not be recorded")
	}

	h.Press(core.ActionDash)
	h.Press(core.ActionPause)
	h.Reset()
	f := h.Frame()
	if len(f.Actions) != 0 || len(f.Pressed) != 0 {
		t.Error("Reset should release every key")
	}
}

func TestHeldInputFramesAreIndependent(t *testing.T) {
	h := newHeldInput(60)
	h.Press(core.ActionPause)
	first := h.Frame()
	h.Frame()

	if !first.Has(core.ActionPause) || !first.Pressed[core.ActionPause] {
		t.Error("a later Frame call should not change an earlier frame")
	}
}
