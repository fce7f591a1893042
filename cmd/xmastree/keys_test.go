package main

import (
	"slices"
	"testing"

	"github.com/taigrr/xmastree/pkg/scene"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []action
	}{
		{"empty", "", nil},
		{"quit letters", "qQ", []action{actQuit, actQuit}},
		{"ctrl-c", "\x03", []action{actQuit}},
		{"lone escape", "\x1b", []action{actQuit}},
		{"arrows", "\x1b[D\x1b[C", []action{actNudgeLeft, actNudgeRight}},
		{"other escape sequence is ignored", "\x1b[A", nil},
		{"split arrow is dropped", "\x1b[", nil},
		{"key before split arrow", "s\x1b[", []action{actToggleSnow}},
		{"mixed", " s?rad", []action{actPause, actToggleSnow, actToggleHUD, actReset, actNudgeLeft, actNudgeRight}},
		{"unknown keys", "xyz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseKeys([]byte(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseKeys(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	anim := scene.NewAnimation(scene.DefaultStep, 60)
	view := &viewState{}

	if !apply(actPause, anim, view) || !anim.Paused {
		t.Error("pause did not pause")
	}
	apply(actNudgeRight, anim, view)
	if anim.Boost() != nudgeStep {
		t.Errorf("Boost = %v, want %v", anim.Boost(), nudgeStep)
	}
	apply(actToggleSnow, anim, view)
	apply(actToggleHUD, anim, view)
	if !view.Snow || !view.ShowHUD {
		t.Errorf("toggles not applied: %+v", view)
	}
	anim.Advance()
	apply(actReset, anim, view)
	if anim.Paused || anim.Index != 0 || anim.Boost() != 0 {
		t.Errorf("reset left state behind: %+v", anim.Frame())
	}
	if apply(actQuit, anim, view) {
		t.Error("quit should stop the host")
	}
}
