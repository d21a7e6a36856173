package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy     string
	Goroutines   int
	Duration     time.Duration
	Episodes     int // Playouts for MCTS, visited nodes for tree search
	Cutoff       int
	Depth        int
	FullPlayouts int
}

type MoveMetric struct {
	Step   int
	Player int // Player index
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         string // Player name, "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	InvalidMoves   int
}

type Collector interface {
	Start(strategy string, goroutines, cutoff, depth int)
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	strategy     string
	goroutines   int
	cutoff       int
	depth        int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, goroutines, cutoff, depth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.depth = depth
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:     m.strategy,
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
		Depth:        m.depth,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines, cutoff, depth int) {}
func (m *dummyCollector) AddFullPlayout()                                      {}
func (m *dummyCollector) AddEpisode()                                          {}
func (m *dummyCollector) Complete() SearchMetric                               { return SearchMetric{} }
