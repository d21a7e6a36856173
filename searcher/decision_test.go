package searcher

import (
	"testing"

	"runes/game"

	"github.com/stretchr/testify/require"
)

func TestNewDecision(t *testing.T) {
	moves := []game.Move{mockMove(0), mockMove(1), mockMove(2), mockMove(3)}
	state := newMockState(nil, moves...)

	node := newRoot(state)

	require.ElementsMatch(t, moves, node.unexplored, "Node should keep every legal move")
	require.Equal(t, 1, node.player, "Root should belong to the player who moved last")
	require.Empty(t, node.children)
}

func TestDecisionSelectOrExpand(t *testing.T) {
	t.Run("selecting fully expanded node", func(t *testing.T) {
		maxChild := &decision{move: mockMove(1), rewards: 1, visits: 1}
		otherChild := &decision{move: mockMove(0), rewards: 0, visits: 1}
		node := &decision{
			children: []*decision{otherChild, maxChild},
			rewards:  1,
			visits:   2,
		}
		state := newMockState(nil)

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, maxChild, gotChild, "Node should select child with max policy value")
		require.Equal(t, []game.Move{mockMove(1)}, gotState.(mockState).played,
			"State should update by the move to the max policy child")
		require.True(t, gotSelected, "Node should perform selection")
		require.Equal(t, 1.0, node.rewards, "Node stats should not change")
		require.Equal(t, 2.0, node.visits, "Node stats should not change")
	})

	t.Run("exploration favors the rarely visited child", func(t *testing.T) {
		often := &decision{move: mockMove(0), rewards: 5, visits: 10}
		rarely := &decision{move: mockMove(1), rewards: 0.5, visits: 1}
		node := &decision{children: []*decision{often, rarely}, visits: 11}

		gotChild, _, _ := node.SelectOrExpand(newMockState(nil))

		require.Equal(t, rarely, gotChild, "Exploration term should dominate for rarely visited children")
	})

	t.Run("expanding node with unexplored moves", func(t *testing.T) {
		unexploredMove := mockMove(1)
		node := &decision{
			unexplored: []game.Move{unexploredMove},
			children:   []*decision{{move: mockMove(0), rewards: 1, visits: 1}},
			visits:     1,
		}
		state := newMockState(nil, unexploredMove)

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, unexploredMove, gotChild.move)
		require.Same(t, node, gotChild.parent)
		require.Equal(t, 0, gotChild.player, "Child should belong to the player who moved into it")
		require.Zero(t, gotChild.visits, "New child should have no visits")
		require.Len(t, node.children, 2, "Node should add a new child")
		require.Empty(t, node.unexplored)
		require.Equal(t, []game.Move{unexploredMove}, gotState.(mockState).played,
			"State should update by the move to the unexplored child")
		require.False(t, gotSelected, "Node should perform expansion")
	})

	t.Run("stagnating on terminal node", func(t *testing.T) {
		node := &decision{}
		state := newMockState(nil)

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, node, gotChild, "Should return the same node")
		require.Equal(t, state, gotState, "Should return the same state")
		require.False(t, gotSelected, "Should not select any child or expand")
	})

	t.Run("panics when selecting without visits", func(t *testing.T) {
		node := &decision{children: []*decision{{visits: 1}}}

		require.Panics(t, func() { node.SelectOrExpand(newMockState(nil)) })
	})
}

func TestDecisionBackup(t *testing.T) {
	rewarder := func(player int) float64 {
		return outcome(0, player)
	}

	t.Run("recording win on root node", func(t *testing.T) {
		node := &decision{player: 0}

		got := node.Backup(rewarder)

		require.Nil(t, got, "Should return no parent")
		require.Equal(t, WIN, node.rewards, "Should apply a win reward")
		require.Equal(t, 1.0, node.visits, "Should add a visit")
	})

	t.Run("recording loss on child node", func(t *testing.T) {
		parent := &decision{}
		node := &decision{parent: parent, player: 1, rewards: 2, visits: 3}

		got := node.Backup(rewarder)

		require.Equal(t, parent, got, "Should return the parent node")
		require.Equal(t, 2+LOSS, node.rewards, "Should add a loss")
		require.Equal(t, 4.0, node.visits, "Should add a visit")
	})

	t.Run("propagating to the root", func(t *testing.T) {
		root := &decision{player: 1}
		child := &decision{parent: root, player: 0}
		leaf := &decision{parent: child, player: 1}

		backup(leaf, rewarder)

		require.Equal(t, LOSS, leaf.rewards)
		require.Equal(t, WIN, child.rewards)
		require.Equal(t, LOSS, root.rewards)
		for _, node := range []*decision{root, child, leaf} {
			require.Equal(t, 1.0, node.visits)
		}
	})
}

func TestDecisionStats(t *testing.T) {
	root := &decision{children: []*decision{
		{move: mockMove(0), rewards: 1, visits: 2},
		{move: mockMove(1), rewards: 3, visits: 4},
	}}

	got := root.stats()

	require.Equal(t, map[game.Move]stat{
		mockMove(0): {rewards: 1, visits: 2},
		mockMove(1): {rewards: 3, visits: 4},
	}, got)
	require.Equal(t, 0.75, got[mockMove(1)].winRate())
}
