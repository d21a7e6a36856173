package searcher

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Level is the difficulty of an AI player.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
	VeryHard
)

var levelNames = [...]string{"easy", "medium", "hard", "very-hard"}

func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	if s == "veryhard" {
		return VeryHard, nil
	}
	for i, name := range levelNames {
		if s == name {
			return Level(i), nil
		}
	}
	return Easy, errors.Errorf("unknown level %q", s)
}

func (l Level) String() string {
	if l >= Easy && l <= VeryHard {
		return levelNames[l]
	}
	return "unknown"
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Depth is the negamax search depth in plies.
func (l Level) Depth() int {
	return int(l) + 1
}

// Duration is the MCTS time budget per move.
func (l Level) Duration() time.Duration {
	return 250 * time.Millisecond << l
}

// Cutoff caps the length of MCTS rollouts.
func (l Level) Cutoff() int {
	return 16 << l
}
