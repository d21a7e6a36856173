package game

import (
	"github.com/pkg/errors"
)

// ErrInvalidMove is returned when a move is out of bounds, targets an occupied
// cell, uses a symbol that is not legal there, or arrives after the game ended.
var ErrInvalidMove = errors.New("invalid move")

var claimSymbols = [2]Field{Wealth, Knowledge}

// ClaimSymbol returns the claim symbol of player 0 or 1.
func ClaimSymbol(player int) Field {
	return claimSymbols[player]
}

// Opponent returns the other player index.
func Opponent(player int) int {
	return 1 - player
}

// Game is the full searchable game state. Clone hands out independent copies,
// so search strategies may explore freely without touching the original.
type Game struct {
	board       Board
	gameOver    bool
	nextPlayer  int
	lastMove    Move
	hasLastMove bool
}

// NewGame creates a game on a size x size board with Birth seeded at the center.
func NewGame(size int) *Game {
	g := &Game{board: NewBoard(size)}
	g.seed()
	return g
}

func (g *Game) seed() {
	center := g.board.Size() / 2
	g.board.Change(Position{center, center}, Birth)
}

// Reset returns the game to its initial state.
func (g *Game) Reset() {
	g.board.Reset()
	g.seed()
	g.gameOver = false
	g.nextPlayer = 0
	g.lastMove = Move{}
	g.hasLastMove = false
}

func (g *Game) Clone() Game {
	clone := *g
	clone.board = g.board.Clone()
	return clone
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board.Clone()
}

func (g *Game) Size() int {
	return g.board.Size()
}

func (g *Game) FieldAt(pos Position) Field {
	return g.board.FieldAt(pos)
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

// NextPlayer returns the index of the player about to move.
func (g *Game) NextPlayer() int {
	return g.nextPlayer
}

// LastMove returns the most recently applied move, if any.
func (g *Game) LastMove() (Move, bool) {
	return g.lastMove, g.hasLastMove
}

// ValidSymbolsAt returns the symbols the player to move may place at pos, in
// ascending order. Occupied or out-of-bounds cells have none.
func (g *Game) ValidSymbolsAt(pos Position) []Field {
	if !g.board.InBounds(pos) || !g.board.IsEmpty(pos) {
		return nil
	}
	c := g.board.CountAround(pos)

	valid := make([]Field, 0, 3)
	if c.Birth+c.Gift+c.Wealth+c.Knowledge == 0 {
		valid = append(valid, Birth)
	} else {
		valid = append(valid, Gift)
	}
	own := ClaimSymbol(g.nextPlayer)
	if c.Birth > 0 && c.Gift > 0 {
		valid = append(valid, own)
	}
	if c.IsFormation() && c.Of(own) == 1 {
		valid = append(valid, Joy)
	}
	return valid
}

// BestSymbolAt returns the greatest legal symbol at pos, or Empty if none.
func (g *Game) BestSymbolAt(pos Position) Field {
	best := Empty
	for _, f := range g.ValidSymbolsAt(pos) {
		if f > best {
			best = f
		}
	}
	return best
}

func (g *Game) IsValidMove(m Move) bool {
	if !g.board.InBounds(m.Position) || !g.board.IsEmpty(m.Position) {
		return false
	}
	for _, f := range g.ValidSymbolsAt(m.Position) {
		if f == m.Symbol {
			return true
		}
	}
	return false
}

// ApplyMove validates and applies m, returning the placed symbol.
func (g *Game) ApplyMove(m Move) (Field, error) {
	if err := g.checkMove(m); err != nil {
		return Empty, err
	}
	g.apply(m)
	return m.Symbol, nil
}

// ApplyBestMoveAt places the best legal symbol at pos.
func (g *Game) ApplyBestMoveAt(pos Position) (Field, error) {
	if !g.board.InBounds(pos) {
		return Empty, errors.Wrapf(ErrInvalidMove, "position %v is off the board", pos)
	}
	return g.ApplyMove(NewMove(pos, g.BestSymbolAt(pos)))
}

func (g *Game) checkMove(m Move) error {
	switch {
	case g.gameOver:
		return errors.Wrap(ErrInvalidMove, "game is over")
	case !g.board.InBounds(m.Position):
		return errors.Wrapf(ErrInvalidMove, "position %v is off the board", m.Position)
	case !g.board.IsEmpty(m.Position):
		return errors.Wrapf(ErrInvalidMove, "position %v is occupied", m.Position)
	case !g.IsValidMove(m):
		return errors.Wrapf(ErrInvalidMove, "%s is not allowed at %v", m.Symbol, m.Position)
	}
	return nil
}

func (g *Game) apply(m Move) {
	g.board.Change(m.Position, m.Symbol)
	g.lastMove = m
	g.hasLastMove = true
	if m.Symbol == Joy || g.board.IsFull() {
		g.gameOver = true
	}
	g.nextPlayer = Opponent(g.nextPlayer)
}

// Winner returns the winning player once the game is over. A Joy next to
// Wealth wins for player 0, any other Joy for player 1. A full board without
// Joy is a draw.
func (g *Game) Winner() int {
	if !g.gameOver || !g.hasLastMove || g.lastMove.Symbol != Joy {
		return NoWinner
	}
	if g.board.CountAround(g.lastMove.Position).Wealth > 0 {
		return 0
	}
	return 1
}

// GenerateMoves returns one move per empty cell using the best symbol there,
// pruned tactically: if the mover can complete Joy only those moves are kept;
// otherwise, if the opponent could complete Joy somewhere, only moves near
// such cells are kept.
func (g *Game) GenerateMoves() []Move {
	if g.gameOver {
		return nil
	}
	own := ClaimSymbol(g.nextPlayer)
	opp := ClaimSymbol(Opponent(g.nextPlayer))

	var moves, winning []Move
	var threats []Position
	size := g.board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := Position{row, col}
			if !g.board.IsEmpty(pos) {
				continue
			}
			m := NewMove(pos, g.BestSymbolAt(pos))
			moves = append(moves, m)

			c := g.board.CountAround(pos)
			if !c.IsFormation() {
				continue
			}
			if c.Of(own) == 1 {
				winning = append(winning, m)
			}
			if c.Of(opp) == 1 {
				threats = append(threats, pos)
			}
		}
	}

	if len(winning) > 0 {
		return winning
	}
	if len(threats) > 0 {
		var blocking []Move
		for _, m := range moves {
			for _, t := range threats {
				if m.Position.Near(t) {
					blocking = append(blocking, m)
					break
				}
			}
		}
		return blocking
	}
	return moves
}

// Player implements State.
func (g *Game) Player() int {
	return g.nextPlayer
}

// LegalMoves implements State.
func (g *Game) LegalMoves() []Move {
	return g.GenerateMoves()
}

// Play implements State. It panics on an illegal move, which inside search
// means the move generator and the rules disagree.
func (g *Game) Play(m Move) State {
	next := g.Clone()
	if err := next.checkMove(m); err != nil {
		panic(err)
	}
	next.apply(m)
	return &next
}
