package tetris

// Snapshot captures the complete game state for determinism testing and for
// the renderer.
type Snapshot struct {
	Tick        uint64
	State       State
	Board       Board
	Piece       Piece
	Next        Kind
	Info        Info
	Ticker      int64
	Lines       int // rows cleared this game
	Pieces      int // pieces spawned this game
	LastCleared int // rows cleared by the most recent imprint
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:        s.tick,
		State:       s.state,
		Board:       s.board,
		Piece:       s.piece,
		Next:        Kind(s.next),
		Info:        s.info,
		Ticker:      s.timer.Ticker,
		Lines:       s.lines,
		Pieces:      s.pieces,
		LastCleared: s.lastCleared,
	}
}
