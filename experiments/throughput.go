package experiments

import (
	"runes/config"
	"runes/experiments/metrics"

	"github.com/pkg/errors"
)

// RunThroughput measures episodes per move as goroutines grow. Both seats use
// the same config for the same playing strength and similar game length.
func RunThroughput(opts Options) error {
	opts = opts.withDefaults()
	configs := []metrics.AgentConfig{}
	matchUps := [][]metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16, 32} {
		agent := metrics.AgentConfig{ID: i, Kind: string(config.MCTS), Goroutines: goroutines, Duration: opts.TimeBudget}
		configs = append(configs, agent)
		matchUps = append(matchUps, []metrics.AgentConfig{agent, agent})
	}

	return runExperiment("throughput", configs, matchUps, opts)
}

// Run starts the named experiment.
func Run(name string, opts Options) error {
	switch name {
	case "parallelization":
		return RunParallelization(opts)
	case "strategies":
		return RunStrategies(opts)
	case "throughput":
		return RunThroughput(opts)
	}
	return errors.Errorf("unknown experiment %q", name)
}
