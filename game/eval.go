package game

// FormationWeight scales the mover's near-complete formations against the
// opponent's in EvaluateFormations.
const FormationWeight = 2

// EvaluateFormations weighs the near-complete formations of the player to move
// against the opponent's. Formations are empty cells surrounded by exactly one
// Birth, one Gift, five Empty and a single claim symbol, which is credited.
func EvaluateFormations(s State) float64 {
	g, ok := s.(*Game)
	if !ok {
		panic("unexpected state type")
	}
	return EvaluateFor(g, g.nextPlayer)
}

// EvaluateFor scores g for the given player. Evaluating the same state for the
// two players yields negated scores.
func EvaluateFor(g *Game, player int) float64 {
	counts := g.formations()
	mover := g.nextPlayer
	opponent := Opponent(mover)

	score := float64(counts[mover]*FormationWeight - counts[opponent])
	if player != mover {
		return -score
	}
	return score
}

// EvaluateFormationShare relates the formation counts to a score between -1
// and 1 from the point of view of the player to move.
func EvaluateFormationShare(s State) float64 {
	g, ok := s.(*Game)
	if !ok {
		panic("unexpected state type")
	}
	counts := g.formations()
	mover := g.nextPlayer
	return normalize(float64(counts[mover]), float64(counts[Opponent(mover)]))
}

// formations tallies near-complete formations by the player whose claim
// symbol completes them.
func (g *Game) formations() [2]int {
	var counts [2]int
	size := g.board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			pos := Position{row, col}
			if !g.board.IsEmpty(pos) {
				continue
			}
			c := g.board.CountAround(pos)
			if !c.IsFormation() {
				continue
			}
			for player, symbol := range claimSymbols {
				if c.Of(symbol) == 1 {
					counts[player]++
				}
			}
		}
	}
	return counts
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
