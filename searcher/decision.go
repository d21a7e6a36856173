package searcher

import (
	"math"

	"runes/game"

	"lukechampine.com/frand"
)

// decision is a node of a single worker's search tree. Trees are never shared
// between goroutines, so nodes carry no locks.
type decision struct {
	parent     *decision
	player     int       // Player who moved into this node
	move       game.Move // Move that led to this node
	unexplored []game.Move
	children   []*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, move game.Move, player int, state game.State) *decision {
	moves := state.LegalMoves()
	frand.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	return &decision{
		parent:     parent,
		player:     player,
		move:       move,
		unexplored: moves,
		children:   make([]*decision, 0, len(moves)),
	}
}

func newRoot(state game.State) *decision {
	return newDecision(nil, game.Move{}, game.Opponent(state.Player()), state)
}

// SelectOrExpand descends one level. It returns the reached node, its state
// and whether an existing child was selected. Terminal nodes return
// themselves.
func (d *decision) SelectOrExpand(state game.State) (*decision, game.State, bool) {
	if len(d.unexplored) > 0 { // Expandable node
		last := len(d.unexplored) - 1
		move := d.unexplored[last]
		d.unexplored = d.unexplored[:last]

		next := state.Play(move)
		child := newDecision(d, move, state.Player(), next)
		d.children = append(d.children, child)
		return child, next, false
	}

	if len(d.children) == 0 { // Terminal node
		return d, state, false
	}

	// Fully expanded node
	child := d.pickChild()
	return child, state.Play(child.move), true
}

func (d *decision) pickChild() *decision {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(CSquared, d.visits)
	var best *decision
	maxScore := math.Inf(-1)
	for _, child := range d.children {
		score := policy.evaluate(child.rewards, child.visits)
		if score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// Backup records the reward of the node's mover and returns the parent.
func (d *decision) Backup(rewarder func(player int) float64) *decision {
	d.rewards += rewarder(d.player)
	d.visits++
	return d.parent
}

// stat accumulates the root statistics of one move.
type stat struct {
	rewards float64
	visits  float64
}

func (s stat) winRate() float64 {
	if s.visits == 0 {
		return math.Inf(-1)
	}
	return s.rewards / s.visits
}

func (d *decision) stats() map[game.Move]stat {
	stats := make(map[game.Move]stat, len(d.children))
	for _, child := range d.children {
		stats[child.move] = stat{rewards: child.rewards, visits: child.visits}
	}
	return stats
}
