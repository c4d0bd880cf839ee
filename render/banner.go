package render

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/rally/component"
)

// Banner keeps the current overlay message, fed by match lifecycle callbacks
// Written from the clock goroutine, read by the draw loop
type Banner struct {
	mu   sync.Mutex
	text string
}

func NewBanner() *Banner {
	return &Banner{}
}

func (b *Banner) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *Banner) set(s string) {
	b.mu.Lock()
	b.text = s
	b.mu.Unlock()
}

func (b *Banner) OnPointScored(winner component.Side, score component.Score) {
	who := "AI"
	if winner == component.SideHuman {
		who = "You"
	}
	b.set(fmt.Sprintf("Point: %s  %d - %d", who, score.Human, score.AI))
}

func (b *Banner) OnMatchOver(winner component.Side, score component.Score) {
	if winner == component.SideHuman {
		b.set(fmt.Sprintf("You win %d - %d   [r] rematch", score.Human, score.AI))
		return
	}
	b.set(fmt.Sprintf("AI wins %d - %d   [r] rematch", score.AI, score.Human))
}

func (b *Banner) OnServeReady(server component.Side) {
	if server == component.SideHuman {
		b.set("Your serve   [j] swing")
		return
	}
	b.set("AI to serve")
}
