package solver

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxkimambo/amaze/internal/maze"
)

func newTestExploration(start maze.NodeID) (*Exploration, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	return newExploration(ctx, cancel, start), cancel
}

func TestExploration_TryClaim(t *testing.T) {
	e, cancel := newTestExploration(0)
	defer cancel()

	assert.False(t, e.IsVisited(3))
	assert.True(t, e.TryClaim(3))
	assert.True(t, e.IsVisited(3))
	assert.False(t, e.TryClaim(3))

	assert.Equal(t, int64(1), e.Claims())
	assert.Equal(t, int64(1), e.LostClaims())
}

func TestExploration_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	e, cancel := newTestExploration(0)
	defer cancel()

	const nodes = 200
	const contenders = 16

	winners := make([][]int, nodes)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for c := 0; c < contenders; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			for n := 0; n < nodes; n++ {
				if e.TryClaim(maze.NodeID(n)) {
					e.RecordPredecessor(maze.NodeID(n), maze.NodeID(1000+c))
					mu.Lock()
					winners[n] = append(winners[n], c)
					mu.Unlock()
				}
			}
		}(c)
	}
	wg.Wait()

	predecessors := e.Predecessors()
	require.Len(t, predecessors, nodes)
	for n := 0; n < nodes; n++ {
		require.Len(t, winners[n], 1, "node %d", n)
		assert.Equal(t, maze.NodeID(1000+winners[n][0]), predecessors[maze.NodeID(n)])
	}
	assert.Equal(t, int64(nodes), e.Claims())
	assert.Equal(t, int64(nodes*(contenders-1)), e.LostClaims())
}

func TestExploration_PublishFirstWins(t *testing.T) {
	e, cancel := newTestExploration(0)
	defer cancel()

	assert.False(t, e.stopped())
	assert.True(t, e.publish())
	assert.False(t, e.publish())
	assert.True(t, e.Found())
	assert.True(t, e.stopped())
	assert.Error(t, e.ctx.Err(), "publishing cancels the search context")
}

func TestExploration_StoppedByCaller(t *testing.T) {
	e, cancel := newTestExploration(0)
	cancel()

	assert.True(t, e.stopped())
	assert.False(t, e.Found())
}
