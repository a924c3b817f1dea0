package tetris

// State is the phase of the game state machine.
type State int

const (
	StateStart State = iota
	StateSpawn
	StateMoving
	StateShifting
	StateAttaching
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateSpawn:
		return "Spawn"
	case StateMoving:
		return "Moving"
	case StateShifting:
		return "Shifting"
	case StateAttaching:
		return "Attaching"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Timer paces gravity while a piece is falling.
type Timer struct {
	Ticker         int64
	SpeedThreshold int
}
