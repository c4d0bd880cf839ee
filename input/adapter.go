package input

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rally/component"
)

// Adapter collects key presses from the event goroutine and yields one Input per tick
// Movement and charge stay held while presses keep arriving within the hold window
// Jump, swing, pause and restart are latched until the next Poll
type Adapter struct {
	mu       sync.Mutex
	bindings *Bindings
	hold     time.Duration
	now      func() time.Time

	lastPress [actionCount]time.Time
	latched   [actionCount]bool
}

func NewAdapter(b *Bindings, hold time.Duration) *Adapter {
	if b == nil {
		b = DefaultBindings()
	}
	return &Adapter{
		bindings: b,
		hold:     hold,
		now:      time.Now,
	}
}

// HandleEvent records a terminal event, returning true when the user asked to quit
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	// Some terminals report Ctrl-C as a modified rune
	if key.Key() == tcell.KeyRune && key.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(key.Rune()) == 'c' {
		return true
	}
	return a.Press(a.bindings.Lookup(key.Key(), key.Rune()))
}

// Press records one activation of an action
func (a *Adapter) Press(act Action) bool {
	switch act {
	case ActionNone:
		return false
	case ActionQuit:
		return true
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if act.held() {
		a.lastPress[act] = a.now()
		// The latest direction wins, the opposite key is released
		switch act {
		case ActionLeft:
			a.lastPress[ActionRight] = time.Time{}
		case ActionRight:
			a.lastPress[ActionLeft] = time.Time{}
		}
		return false
	}
	a.latched[act] = true
	return false
}

// Poll builds the input snapshot for the next tick and clears the latches
func (a *Adapter) Poll() component.Input {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	in := component.Input{
		MoveLeft:    a.isHeld(ActionLeft, now),
		MoveRight:   a.isHeld(ActionRight, now),
		ChargePower: a.isHeld(ActionCharge, now),
		Jump:        a.latched[ActionJump],
		Swing:       a.latched[ActionSwing],
		Pause:       a.latched[ActionPause],
		Restart:     a.latched[ActionRestart],
	}
	a.latched = [actionCount]bool{}
	return in
}

func (a *Adapter) isHeld(act Action, now time.Time) bool {
	t := a.lastPress[act]
	return !t.IsZero() && now.Sub(t) < a.hold
}

// Release drops every held and latched action, used on focus loss and restart
func (a *Adapter) Release() {
	a.mu.Lock()
	a.lastPress = [actionCount]time.Time{}
	a.latched = [actionCount]bool{}
	a.mu.Unlock()
}
