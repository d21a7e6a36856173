package engine

import (
	"time"

	"runes/experiments/metrics"
	"runes/game"
	"runes/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultMaxInvalidMoves = 3

// Observer is called with a snapshot after every applied move.
type Observer func(g *game.Game, move game.Move)

type Option func(e *LocalEngine)

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// WithMaxInvalidMoves bounds the consecutive rejected moves of one player.
func WithMaxInvalidMoves(n int) Option {
	return func(e *LocalEngine) {
		if n > 0 {
			e.maxInvalidMoves = n
		}
	}
}

// WithHeartbeat sets how often a pending move computation is logged.
func WithHeartbeat(interval time.Duration) Option {
	return func(e *LocalEngine) {
		if interval > 0 {
			e.heartbeat = interval
		}
	}
}

// searchReporter is implemented by players that search for their moves.
type searchReporter interface {
	LastSearch() metrics.SearchMetric
}

var _ Engine = (*LocalEngine)(nil)

// LocalEngine owns the authoritative game and asks the two players for moves
// in turn. Players only ever see clones.
type LocalEngine struct {
	game            *game.Game
	players         [2]player.Player
	thinker         *player.Thinker
	observer        Observer
	maxInvalidMoves int
	heartbeat       time.Duration
}

func NewLocalEngine(size int, players []player.Player, options ...Option) *LocalEngine {
	if len(players) != 2 {
		panic("need exactly two players")
	}

	e := &LocalEngine{ // Default values
		game:            game.NewGame(size),
		players:         [2]player.Player{players[0], players[1]},
		thinker:         player.NewThinker(),
		observer:        func(*game.Game, game.Move) {},
		maxInvalidMoves: DefaultMaxInvalidMoves,
		heartbeat:       time.Second,
	}
	for _, option := range options {
		option(e)
	}
	for i, p := range e.players {
		p.SetSymbol(game.ClaimSymbol(i))
	}
	return e
}

// Game returns a snapshot of the authoritative game.
func (e *LocalEngine) Game() game.Game {
	return e.game.Clone()
}

func (e *LocalEngine) Players() [2]player.Player {
	return e.players
}

// Run executes the entire game loop until the game is over. Rejected moves
// are retried up to the configured bound; any other player failure aborts.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.game.NextPlayer(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().
		Str("player0", e.players[0].Name()).
		Str("player1", e.players[1].Name()).
		Int("size", e.game.Size()).
		Msgf("player %d is starting", e.game.NextPlayer())

	step, invalid := 1, 0
	for !e.game.GameOver() {
		current := e.game.NextPlayer()
		p := e.players[current]

		move, err := e.ask(p)
		if err == nil {
			_, err = e.game.ApplyMove(move)
		}
		if err != nil {
			if !errors.Is(err, game.ErrInvalidMove) {
				return game.NoWinner, e.complete(gameMetric, step-1), moveMetrics,
					errors.WithMessagef(err, "step %d", step)
			}
			invalid++
			gameMetric.InvalidMoves++
			log.Warn().Err(err).Str("player", p.Name()).Int("attempt", invalid).Msg("rejected move")
			if invalid >= e.maxInvalidMoves {
				return game.NoWinner, e.complete(gameMetric, step-1), moveMetrics,
					errors.WithMessagef(err, "%s made %d invalid moves in a row", p.Name(), invalid)
			}
			continue
		}
		invalid = 0

		if reporter, ok := p.(searchReporter); ok {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Player:       current,
				SearchMetric: reporter.LastSearch(),
			})
		}
		log.Debug().Int("step", step).Str("player", p.Name()).Str("move", move.String()).Msg("move applied")

		snapshot := e.game.Clone()
		e.observer(&snapshot, move)
		step++
	}

	winner := e.game.Winner()
	gameMetric = e.complete(gameMetric, step-1)
	if winner != game.NoWinner {
		gameMetric.Winner = e.players[winner].Name()
		log.Info().Str("winner", gameMetric.Winner).Int("moves", gameMetric.TotalMoves).Msg("game over")
	} else {
		log.Info().Int("moves", gameMetric.TotalMoves).Msg("game over: draw")
	}
	return winner, gameMetric, moveMetrics, nil
}

// ask hands p a snapshot through the thinker and waits for its move, logging
// a heartbeat while the computation is pending.
func (e *LocalEngine) ask(p player.Player) (game.Move, error) {
	if err := e.thinker.Start(p, e.game.Clone()); err != nil {
		return game.Move{}, err
	}
	done := e.thinker.Done()

	ticker := time.NewTicker(e.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			result, _ := e.thinker.Poll()
			return result.Move, result.Err
		case <-ticker.C:
			log.Debug().Str("player", p.Name()).Msg("thinking")
		}
	}
}

func (e *LocalEngine) complete(gameMetric metrics.GameMetric, moves int) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	return gameMetric
}
