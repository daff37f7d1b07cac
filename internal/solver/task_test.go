package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxkimambo/amaze/internal/maze"
)

func TestSearchTask_ResumesPendingAfterUnpublishableGoal(t *testing.T) {
	// 5 was never linked back to the start, so no goal below it can be
	// reconstructed. Both branches must still be walked.
	g := maze.NewGraph(0).
		AddEdge(5, 6).
		AddEdge(5, 7).AddEdge(7, 8).
		AddGoal(6).AddGoal(8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	state := newExploration(ctx, cancel, 0)
	state.TryClaim(0)
	state.TryClaim(5)

	pool := newForkPool(1)
	task := newSearchTask(g, state, pool, 10, 5)

	assert.Nil(t, task.run())
	assert.True(t, state.IsVisited(8), "the deferred branch was explored")
	assert.Equal(t, int64(5), state.Claims())
	assert.False(t, state.Found())
	assert.Empty(t, task.pending)
}

func TestSearchTask_UnvisitedDoesNotModifyNeighbors(t *testing.T) {
	shared := []maze.NodeID{1, 2, 3}
	m := sharedNeighbors{Graph: maze.NewGraph(0), neighbors: shared}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	state := newExploration(ctx, cancel, 0)
	state.TryClaim(0)
	state.TryClaim(1)

	task := newSearchTask(m, state, newForkPool(1), 0, 0)
	assert.Equal(t, []maze.NodeID{2, 3}, task.unvisited())
	assert.Equal(t, []maze.NodeID{1, 2, 3}, shared)
}

// sharedNeighbors hands out the same slice on every call.
type sharedNeighbors struct {
	*maze.Graph
	neighbors []maze.NodeID
}

func (s sharedNeighbors) Neighbors(maze.NodeID) []maze.NodeID {
	return s.neighbors
}
