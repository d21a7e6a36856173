package experiments

import (
	"time"

	"runes/config"
	"runes/engine"
	"runes/experiments/metrics"
	"runes/game"
	"runes/player"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
	BoardSize  = 9
)

type Options struct {
	BoardSize  int
	Games      int           // Per match up
	TimeBudget time.Duration // Per MCTS move
	OutDir     string
}

func (o Options) withDefaults() Options {
	if o.BoardSize <= 0 {
		o.BoardSize = BoardSize
	}
	if o.Games <= 0 {
		o.Games = NumGames
	}
	if o.TimeBudget <= 0 {
		o.TimeBudget = TimeBudget
	}
	if o.OutDir == "" {
		o.OutDir = "experiments"
	}
	return o
}

// RunParallelization pairs MCTS agents with growing goroutine counts against
// the sequential baseline under the same time budget.
func RunParallelization(opts Options) error {
	opts = opts.withDefaults()
	baseline := metrics.AgentConfig{ID: 0, Kind: string(config.MCTS), Goroutines: 1, Duration: opts.TimeBudget}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, goroutines := range []int{2, 4, 8, 16} {
		agent := metrics.AgentConfig{ID: i + 1, Kind: string(config.MCTS), Goroutines: goroutines, Duration: opts.TimeBudget}
		configs = append(configs, agent)
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, agent})
	}

	return runExperiment("parallelization", configs, matchUps, opts)
}

// RunStrategies plays every pair of strategies against each other.
func RunStrategies(opts Options) error {
	opts = opts.withDefaults()
	configs := []metrics.AgentConfig{
		{ID: 0, Kind: string(config.Random)},
		{ID: 1, Kind: string(config.Negamax), Depth: 1},
		{ID: 2, Kind: string(config.Negamax), Depth: 2},
		{ID: 3, Kind: string(config.MCTS), Goroutines: 4, Duration: opts.TimeBudget},
	}
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}

	return runExperiment("strategies", configs, matchUps, opts)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, opts Options) error {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < opts.Games; i++ {
			// Alternate seats so that both agents open equally often
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			winner, gameMetric, moveMetrics, err := runGame(opts.BoardSize, config1, config2)
			if err != nil {
				return errors.WithMessagef(err, "%s matchup %d game %d", name, mi+1, i+1)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Int("winner", winner).Str("winnerName", gameMetric.Winner).
				Msgf("completed matchup %d of %d game %d of %d", mi+1, len(matchUps), i+1, opts.Games)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, opts.OutDir, configs, gameRecords, moveRecords)
}

func store(name, outDir string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return errors.WithMessage(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return nil
}

// runGame executes a single game between two agents
func runGame(size int, config1, config2 metrics.AgentConfig) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := make([]player.Player, 0, 2)
	for _, agent := range []metrics.AgentConfig{config1, config2} {
		p, err := player.New(playerConfig(agent), nil)
		if err != nil {
			return game.NoWinner, metrics.GameMetric{}, nil, err
		}
		players = append(players, p)
	}

	return engine.NewLocalEngine(size, players).Run()
}

func playerConfig(agent metrics.AgentConfig) config.Player {
	return config.Player{
		Name:       agent.Name(),
		Kind:       config.Kind(agent.Kind),
		Goroutines: agent.Goroutines,
		Duration:   agent.Duration,
		Episodes:   agent.Episodes,
		Cutoff:     agent.Cutoff,
		Depth:      agent.Depth,
	}
}
