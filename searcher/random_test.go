package searcher

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRandomFindMove(t *testing.T) {
	t.Run("plays a generated move", func(t *testing.T) {
		g := midGame(t, 3)
		r := NewRandom()

		for i := 0; i < 20; i++ {
			move, metric, err := r.FindMove(g.Clone())

			require.NoError(t, err)
			requireCandidate(t, g, move)
			require.Equal(t, "random", metric.Strategy)
		}
	})

	t.Run("plays the forced win", func(t *testing.T) {
		g := ownWinGame(t)

		move, _, err := NewRandom().FindMove(g.Clone())

		require.NoError(t, err)
		require.Equal(t, g.GenerateMoves()[0], move)
	})

	t.Run("finished game exhausts the search", func(t *testing.T) {
		_, _, err := NewRandom().FindMove(*finishedGame(t))

		require.True(t, errors.Is(err, ErrSearchExhausted))
	})
}
