package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform layer maps raw input to exactly one Action per tick; an absent
// or unrecognized key is ActionNone.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Enter - leave the start screen
	ActionPause            // P - toggle pause
	ActionTerminate        // Q, Ctrl+C - end the game immediately
	ActionMoveLeft         // Left arrow
	ActionMoveRight        // Right arrow
	ActionMoveDown         // Down arrow - hard drop
	ActionRotate           // Up arrow - rotate clockwise
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionTerminate:
		return "Terminate"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveDown:
		return "MoveDown"
	case ActionRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}
