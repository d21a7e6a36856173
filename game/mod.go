package game

// NoWinner is reported while a game is running or when it ended in a draw.
const NoWinner = -1

// State is the view of a game that search strategies explore.
// Play never mutates the receiver: it returns an independent successor.
type State interface {
	Player() int
	LegalMoves() []Move
	Play(Move) State
	Winner() int
}

// Evaluates the game state to a score indicating how favorable it is
// for the player about to move (positive) versus the opponent (negative).
type Evaluate func(State) float64
