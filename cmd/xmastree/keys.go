package main

import "github.com/taigrr/xmastree/pkg/scene"

// action is one user command, independent of the host's input source.
type action int

const (
	actNone action = iota
	actQuit
	actPause
	actNudgeLeft
	actNudgeRight
	actToggleSnow
	actToggleHUD
	actReset
)

// nudgeStep is the extra spin per frame added by one nudge.
const nudgeStep = 0.04

// parseKeys turns raw terminal input into actions. Arrow keys arrive as
// "ESC [ C" and "ESC [ D"; a lone ESC quits. An "ESC [" cut off at the end
// of data is dropped.
func parseKeys(data []byte) []action {
	var out []action
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b == 27 {
			if i+1 < len(data) && data[i+1] == '[' {
				if i+2 >= len(data) {
					// The rest of the sequence is in the next read.
					break
				}
				switch data[i+2] {
				case 'C':
					out = append(out, actNudgeRight)
				case 'D':
					out = append(out, actNudgeLeft)
				}
				i += 2
				continue
			}
			out = append(out, actQuit)
			continue
		}
		if a := keyAction(rune(b)); a != actNone {
			out = append(out, a)
		}
	}
	return out
}

// keyAction maps a printable key (or Ctrl-C/Ctrl-D) to its action.
func keyAction(r rune) action {
	switch r {
	case 'q', 'Q', 3, 4:
		return actQuit
	case ' ':
		return actPause
	case 'a', 'A':
		return actNudgeLeft
	case 'd', 'D':
		return actNudgeRight
	case 's', 'S':
		return actToggleSnow
	case '?':
		return actToggleHUD
	case 'r', 'R':
		return actReset
	default:
		return actNone
	}
}

// viewState is the host-side toggles shared by the terminal and window.
type viewState struct {
	ShowHUD bool
	Snow    bool
}

// apply performs a and reports whether the host should keep running.
func apply(a action, anim *scene.Animation, view *viewState) bool {
	switch a {
	case actQuit:
		return false
	case actPause:
		anim.Paused = !anim.Paused
	case actNudgeLeft:
		anim.Nudge(-nudgeStep)
	case actNudgeRight:
		anim.Nudge(nudgeStep)
	case actToggleSnow:
		view.Snow = !view.Snow
	case actToggleHUD:
		view.ShowHUD = !view.ShowHUD
	case actReset:
		anim.Reset()
		anim.Paused = false
	}
	return true
}
