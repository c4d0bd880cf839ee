package actor

import (
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
)

// HumanController turns the flat input snapshot into an intent for the human actor
type HumanController struct {
	actor *component.Actor
}

func NewHumanController() *HumanController {
	return &HumanController{actor: New(component.SideHuman)}
}

func (h *HumanController) Actor() *component.Actor {
	return h.actor
}

// Intent maps input to movement; left and right held together cancel out
func (h *HumanController) Intent(in component.Input) component.Intent {
	var vx float64
	switch {
	case in.MoveLeft && in.MoveRight:
		vx = 0
	case in.MoveLeft:
		vx = -parameter.ActorMoveSpeed
	case in.MoveRight:
		vx = parameter.ActorMoveSpeed
	}
	return component.Intent{
		DesiredVx: vx,
		Jump:      in.Jump,
		Swing:     in.Swing,
		Charge:    in.ChargePower,
	}
}

// Step applies one tick of input to the owned actor
func (h *HumanController) Step(in component.Input) {
	Update(h.actor, h.Intent(in))
}

// Reset returns the owned actor to its home position
func (h *HumanController) Reset() {
	Reset(h.actor)
}
