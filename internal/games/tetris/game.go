// Package tetris implements the rules engine of a falling-block puzzle game:
// the playfield, the falling piece, collision, gravity, line clearing,
// scoring and the state machine that runs a game from the start screen to
// game over.
//
// The engine is single-threaded and tick driven. The platform calls Step
// once per tick with at most one action; nothing in this package blocks,
// sleeps or prints.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
)

// SpawnX and SpawnY are the board coordinates of a new piece's 4x4 box.
const (
	SpawnX = Width/2 - 2
	SpawnY = -2
)

const defaultSpeedThreshold = 20

// HighScoreLoader provides the persisted high score. It returns 0 when no
// value is stored or the stored value is unusable.
type HighScoreLoader interface {
	LoadHighScore() int
}

// HighScoreStore persists the high score, overwriting any prior value.
type HighScoreStore interface {
	HighScoreLoader
	SaveHighScore(score int) error
}

// Session is one game: the board, the falling piece, the queued next piece,
// the score panel, the gravity timer and the state machine.
type Session struct {
	rng   *rand.Rand
	tick  uint64
	board Board
	piece Piece
	next  int
	info  Info
	state State
	timer Timer

	lines       int // rows cleared this game
	pieces      int // pieces spawned this game
	lastCleared int // rows cleared by the most recent imprint
}

// New creates a session in the Start state. The high score is seeded from
// scores; a nil loader means 0.
func New(scores HighScoreLoader, cfg core.RuntimeConfig) *Session {
	s := &Session{}
	s.Reset(scores, cfg)
	return s
}

// Reset reinitializes the session: empty board, score 0, level 1, unpaused,
// a fresh next piece and the Start state.
func (s *Session) Reset(scores HighScoreLoader, cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	threshold := cfg.SpeedThreshold
	if threshold <= 0 {
		threshold = defaultSpeedThreshold
	}

	highScore := 0
	if scores != nil {
		highScore = max(0, scores.LoadHighScore())
	}

	s.rng = rand.New(rand.NewSource(seed))
	s.tick = 0
	s.board = Board{}
	s.piece = Piece{}
	s.info = Info{Score: 0, HighScore: highScore, Level: 1}
	s.next = s.NextShapeIndex()
	s.state = StateStart
	s.timer = Timer{Ticker: 0, SpeedThreshold: threshold}
	s.lines = 0
	s.pieces = 0
	s.lastCleared = 0
}

// NextShapeIndex draws a piece index uniformly from [0, KindCount).
func (s *Session) NextShapeIndex() int {
	return s.rng.Intn(KindCount)
}

// Spawn installs the queued piece at the spawn position and queues a new
// one. It returns false when the new piece already collides (top out); the
// piece stays installed in that case.
func (s *Session) Spawn() bool {
	s.piece = Piece{
		Shape: ShapeOf(Kind(s.next)),
		X:     SpawnX,
		Y:     SpawnY,
		Color: Kind(s.next).Color(),
	}
	s.next = s.NextShapeIndex()
	s.pieces++
	return !s.IsColliding()
}

// IsColliding reports whether the falling piece is in an illegal position.
func (s *Session) IsColliding() bool {
	return s.board.Collides(&s.piece)
}

// TryMove shifts the falling piece by (dx, dy). On collision the piece is
// restored as a whole to where it was.
func (s *Session) TryMove(dx, dy int) {
	saved := s.piece
	s.piece.X += dx
	s.piece.Y += dy
	if s.IsColliding() {
		s.piece = saved
	}
}

// Rotate turns the falling piece clockwise without any legality check.
// See Piece.Rotate for the rollback contract.
func (s *Session) Rotate() {
	s.piece.Rotate()
}

// Imprint commits the falling piece into the board.
func (s *Session) Imprint() {
	s.board.Imprint(&s.piece)
}

// ClearLines removes full rows and returns how many were removed.
func (s *Session) ClearLines() int {
	return s.board.ClearLines()
}

// Step applies one action and runs the automatic transitions of one tick.
func (s *Session) Step(a core.Action) core.StepResult {
	s.tick++
	s.ApplyAction(a)
	s.Advance()
	return core.StepResult{State: s.GameState()}
}

// ApplyAction handles a user action for the current state. Actions that make
// no sense in the current state are ignored.
func (s *Session) ApplyAction(a core.Action) {
	switch a {
	case core.ActionTerminate:
		s.state = StateGameOver
		return
	case core.ActionPause:
		if s.state != StateStart && s.state != StateGameOver {
			s.info.Pause = !s.info.Pause
		}
		return
	}

	if s.info.Pause {
		return
	}

	switch s.state {
	case StateStart:
		if a == core.ActionStart {
			s.state = StateSpawn
		}
	case StateMoving:
		s.applyMoving(a)
	case StateSpawn, StateShifting, StateAttaching, StateGameOver:
		// no user input outside of Moving
	}
}

func (s *Session) applyMoving(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		s.TryMove(-1, 0)
	case core.ActionMoveRight:
		s.TryMove(1, 0)
	case core.ActionRotate:
		saved := s.piece
		s.Rotate()
		if s.IsColliding() {
			s.piece = saved
		}
	case core.ActionMoveDown:
		s.hardDrop()
		s.state = StateAttaching
	}
}

// hardDrop moves the piece straight down to the lowest legal row.
func (s *Session) hardDrop() {
	for !s.IsColliding() {
		s.piece.Y++
	}
	s.piece.Y--
}

// Advance runs the automatic work of one tick: gravity pacing, spawning,
// shifting and attaching. It does nothing while paused.
func (s *Session) Advance() {
	if s.info.Pause {
		return
	}

	if s.state == StateMoving {
		if s.timer.Ticker > int64(s.timer.SpeedThreshold-s.info.Level) {
			s.state = StateShifting
			s.timer.Ticker = 0
		}
		s.timer.Ticker++
	}

	switch s.state {
	case StateSpawn:
		if s.Spawn() {
			s.state = StateMoving
		} else {
			s.state = StateGameOver
		}
	case StateShifting:
		y := s.piece.Y
		s.TryMove(0, 1)
		if s.piece.Y == y {
			s.state = StateAttaching
		} else {
			s.state = StateMoving
		}
	case StateAttaching:
		s.Imprint()
		s.lastCleared = s.ClearLines()
		if s.lastCleared > 0 {
			s.lines += s.lastCleared
			ScoreAndLevel(&s.info, s.lastCleared)
		}
		s.state = StateSpawn
	case StateStart, StateMoving, StateGameOver:
	}
}

// SaveHighScore persists the session's high score.
func (s *Session) SaveHighScore(store HighScoreStore) error {
	return store.SaveHighScore(s.info.HighScore)
}

// GameState returns the platform-level summary of the session.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		Score:     s.info.Score,
		HighScore: s.info.HighScore,
		Level:     s.info.Level,
		GameOver:  s.state == StateGameOver,
		Paused:    s.info.Pause,
	}
}

// Board returns a copy of the playfield.
func (s *Session) Board() Board { return s.board }

// Piece returns a copy of the falling piece.
func (s *Session) Piece() Piece { return s.piece }

// NextIndex returns the queued piece index.
func (s *Session) NextIndex() int { return s.next }

// NextShape returns the template of the queued piece.
func (s *Session) NextShape() Shape { return ShapeOf(Kind(s.next)) }

// Info returns a copy of the score panel.
func (s *Session) Info() Info { return s.info }

// State returns the current state machine phase.
func (s *Session) State() State { return s.state }

// Timer returns a copy of the gravity timer.
func (s *Session) Timer() Timer { return s.timer }
