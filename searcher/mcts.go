package searcher

import (
	"context"
	"time"

	"runes/experiments/metrics"
	"runes/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

const DefaultCutoff = 64 // Rollout moves before falling back to evaluation

type Option func(mcts *MCTS)

// MCTS runs root-parallel Monte Carlo tree search: every goroutine grows its
// own tree on its own clone of the game, and root statistics are summed.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(u *MCTS) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(u *MCTS) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(u *MCTS) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

// WithEvaluationFn sets the rollout cutoff evaluation. It must score states
// in [-1, 1] for the player to move.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	if goroutines < 1 {
		goroutines = 1
	}
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     DefaultCutoff,
		evaluate:   game.EvaluateFormationShare,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// NewMCTSForLevel searches for the level's time budget and rollout cutoff.
// Later options override the level defaults.
func NewMCTSForLevel(level Level, goroutines int, options ...Option) *MCTS {
	defaults := []Option{WithDuration(level.Duration()), WithCutoff(level.Cutoff())}
	return NewMCTS(goroutines, append(defaults, options...)...)
}

func (m *MCTS) Name() string {
	return "mcts"
}

func (m *MCTS) Goroutines() int {
	return m.goroutines
}

func (m *MCTS) FindMove(g game.Game) (game.Move, metrics.SearchMetric, error) {
	m.metrics.Start(m.Name(), m.goroutines, m.cutoff, 0)
	moves, err := candidates(&g)
	if err != nil {
		return game.Move{}, m.metrics.Complete(), err
	}
	if len(moves) == 1 {
		return moves[0], m.metrics.Complete(), nil
	}

	stats, err := m.search(func() game.State {
		clone := g.Clone()
		return &clone
	})
	if err != nil {
		return game.Move{}, m.metrics.Complete(), err
	}

	best := pickMove(moves, stats)
	log.Debug().
		Str("move", best.String()).
		Float64("winRate", stats[best].winRate()).
		Float64("visits", stats[best].visits).
		Int("goroutines", m.goroutines).
		Msg("mcts-best")
	return best, m.metrics.Complete(), nil
}

// search grows one tree per goroutine, each on a fresh state from newState,
// and returns the summed root statistics.
func (m *MCTS) search(newState func() game.State) (map[game.Move]stat, error) {
	ctx := context.Background()
	if m.episodes <= 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.duration)
		defer cancel()
	}

	results := make([]map[game.Move]stat, m.goroutines)
	group, ctx := errgroup.WithContext(ctx)
	for i := 0; i < m.goroutines; i++ {
		episodes := m.share(i)
		group.Go(func() error {
			state := newState()
			root := newRoot(state)
			for n := 0; episodes <= 0 || n < episodes; n++ {
				m.simulate(root, state)
				m.metrics.AddEpisode()
				if episodes <= 0 && ctx.Err() != nil {
					break
				}
			}
			results[i] = root.stats()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[game.Move]stat)
	for _, result := range results {
		for move, s := range result {
			total := merged[move]
			total.rewards += s.rewards
			total.visits += s.visits
			merged[move] = total
		}
	}
	return merged, nil
}

// share returns the episodes of worker i, or 0 when searching against a deadline.
func (m *MCTS) share(i int) int {
	if m.episodes <= 0 {
		return 0
	}
	n := m.episodes / m.goroutines
	if i < m.episodes%m.goroutines {
		n++
	}
	if n == 0 {
		n = 1
	}
	return n
}

func (m *MCTS) simulate(root *decision, state game.State) {
	newNode, newState := selectThenExpand(root, state)
	rewarder := rollout(newState, m.cutoff, m.evaluate, m.metrics)
	backup(newNode, rewarder)
}

func selectThenExpand(root *decision, state game.State) (*decision, game.State) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state)
	}
	return child, state
}

func rollout(state game.State, cutoff int, evaluate game.Evaluate, metrics metrics.Collector) func(int) float64 {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[frand.Intn(len(moves))] // Random rollout policy
		state = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		metrics.AddFullPlayout()
		winner := state.Winner()
		return func(player int) float64 {
			return outcome(winner, player)
		}
	}

	// At cutoff state, estimate from the evaluation of the player to move
	mover, score := state.Player(), evaluate(state)
	return func(player int) float64 {
		return estimate(score, mover, player)
	}
}

func backup(newNode *decision, rewarder func(int) float64) {
	node := newNode
	for node != nil {
		node = node.Backup(rewarder)
	}
}

// pickMove returns the move with the best win rate. Ties go to the more
// visited move, then to the earlier generated one.
func pickMove(moves []game.Move, stats map[game.Move]stat) game.Move {
	best := moves[0]
	bestStat := stats[best]
	for _, move := range moves[1:] {
		s := stats[move]
		if s.visits == 0 {
			continue
		}
		rate, bestRate := s.winRate(), bestStat.winRate()
		if rate > bestRate || (rate == bestRate && s.visits > bestStat.visits) {
			best, bestStat = move, s
		}
	}
	return best
}
