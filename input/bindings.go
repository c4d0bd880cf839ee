// Package input turns terminal key events into per-tick input snapshots
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is a logical control bound to one or more keys
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionSwing
	ActionCharge
	ActionPause
	ActionRestart
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionJump:    "jump",
	ActionSwing:   "swing",
	ActionCharge:  "charge",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// held reports whether the action is level-triggered rather than one-shot
func (a Action) held() bool {
	return a == ActionLeft || a == ActionRight || a == ActionCharge
}

// Bindings maps special keys and runes to actions
// Runes are matched case-insensitively
type Bindings struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultBindings returns arrows plus a left-hand letter layout
func DefaultBindings() *Bindings {
	return &Bindings{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyUp:     ActionJump,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'd': ActionRight,
			'w': ActionJump,
			' ': ActionJump,
			'j': ActionSwing,
			'x': ActionSwing,
			'k': ActionCharge,
			'p': ActionPause,
			'r': ActionRestart,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action, ActionNone when unbound
func (b *Bindings) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return b.Runes[unicode.ToLower(r)]
	}
	return b.Keys[key]
}
