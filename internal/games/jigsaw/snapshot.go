package jigsaw

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateDragging    GameStateType = "dragging"
	StateFinished    GameStateType = "finished"
	StateExited      GameStateType = "exited"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for tests and debugging.
type Snapshot struct {
	Tick    uint64
	Session string
	Turns   int
	Filled  int
	Seconds int64
	Piece   string // Held piece, e.g. "Line[(0,0) (0,1) (0,2)]"
	PieceX  int    // Piece origin in screen cells, relative to the board
	PieceY  int
	AtHome  bool
	Status  string
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.exit:
		state = StateExited
	case g.finished:
		state = StateFinished
	case g.drag.active:
		state = StateDragging
	}

	return Snapshot{
		Tick:    g.tick,
		Session: g.session.ID(),
		Turns:   g.session.PlacedCount(),
		Filled:  g.session.Grid().FilledCount(),
		Seconds: g.session.ElapsedSeconds(),
		Piece:   g.session.Held().String(),
		PieceX:  g.pieceX - g.boardX,
		PieceY:  g.pieceY - g.boardY,
		AtHome:  g.pieceX == g.homeX && g.pieceY == g.homeY,
		Status:  g.status,
		State:   state,
	}
}
