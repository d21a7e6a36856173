package player

import (
	"sync"

	"runes/game"

	"github.com/pkg/errors"
)

var ErrThinking = errors.New("a move is already being computed")

type Result struct {
	Move game.Move
	Err  error
}

// Thinker computes one move at a time off the caller's goroutine. The result
// lands in a single slot that the caller polls, e.g. once per frame.
type Thinker struct {
	mu       sync.Mutex
	thinking bool
	result   *Result
	done     chan struct{}
}

func NewThinker() *Thinker {
	done := make(chan struct{})
	close(done)
	return &Thinker{done: done}
}

// Start asks p for a move in g. It fails while a computation is pending or
// its result has not been polled.
func (t *Thinker) Start(p Player, g game.Game) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.thinking || t.result != nil {
		return ErrThinking
	}

	t.thinking = true
	done := make(chan struct{})
	t.done = done
	go func() {
		move, err := p.MakeMove(g)
		t.mu.Lock()
		t.result = &Result{Move: move, Err: err}
		t.thinking = false
		t.mu.Unlock()
		close(done)
	}()
	return nil
}

// Poll takes the result if it is ready. Every result is handed out once.
func (t *Thinker) Poll() (Result, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.result == nil {
		return Result{}, false
	}
	result := *t.result
	t.result = nil
	return result, true
}

func (t *Thinker) Thinking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.thinking
}

// Done is closed once the current computation has a result.
func (t *Thinker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}
