package searcher

import (
	"testing"

	"runes/game"

	"github.com/stretchr/testify/require"
)

// mockState is a one-ply game: every listed move ends the game with the
// winner recorded in outcomes, or a draw.
type mockState struct {
	player   int
	moves    []game.Move
	played   []game.Move
	outcomes map[game.Move]int
	winner   int
}

func newMockState(outcomes map[game.Move]int, moves ...game.Move) mockState {
	return mockState{moves: moves, outcomes: outcomes, winner: game.NoWinner}
}

func (s mockState) Player() int {
	return s.player
}

func (s mockState) LegalMoves() []game.Move {
	return append([]game.Move(nil), s.moves...)
}

func (s mockState) Play(move game.Move) game.State {
	winner, ok := s.outcomes[move]
	if !ok {
		winner = game.NoWinner
	}
	return mockState{
		player: game.Opponent(s.player),
		played: append(append([]game.Move(nil), s.played...), move),
		winner: winner,
	}
}

func (s mockState) Winner() int {
	return s.winner
}

func mockMove(id int) game.Move {
	return game.NewMove(game.Position{Row: id, Col: 0}, game.Birth)
}

// threatGame returns a 7x7 game where player 0 threatens Joy at (2,2) and
// player 1 is to move.
func threatGame(t *testing.T) *game.Game {
	t.Helper()
	g := game.NewGame(7)
	for _, m := range []game.Move{
		game.NewMove(game.Position{Row: 2, Col: 3}, game.Gift),
		game.NewMove(game.Position{Row: 6, Col: 6}, game.Birth),
		game.NewMove(game.Position{Row: 3, Col: 2}, game.Wealth),
	} {
		_, err := g.ApplyMove(m)
		require.NoError(t, err)
	}
	return g
}

// ownWinGame returns threatGame with player 0 to move and Joy at (2,2) as the
// only candidate.
func ownWinGame(t *testing.T) *game.Game {
	t.Helper()
	g := threatGame(t)
	_, err := g.ApplyMove(game.NewMove(game.Position{Row: 0, Col: 6}, game.Birth))
	require.NoError(t, err)
	return g
}

func finishedGame(t *testing.T) *game.Game {
	t.Helper()
	g := ownWinGame(t)
	_, err := g.ApplyMove(game.NewMove(game.Position{Row: 2, Col: 2}, game.Joy))
	require.NoError(t, err)
	return g
}

// midGame plays a few deterministic moves on a 5x5 board.
func midGame(t *testing.T, plies int) *game.Game {
	t.Helper()
	g := game.NewGame(5)
	for i := 0; i < plies && !g.GameOver(); i++ {
		moves := g.GenerateMoves()
		_, err := g.ApplyMove(moves[(i*7)%len(moves)])
		require.NoError(t, err)
	}
	return g
}

func requireCandidate(t *testing.T, g *game.Game, move game.Move) {
	t.Helper()
	require.Contains(t, g.GenerateMoves(), move, "Move should be one of the generated candidates")
}
