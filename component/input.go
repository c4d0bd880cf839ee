package component

// Input is the flat per-tick snapshot of player signals
type Input struct {
	MoveLeft    bool
	MoveRight   bool
	Jump        bool
	Swing       bool
	ChargePower bool
	Pause       bool
	Restart     bool
}
