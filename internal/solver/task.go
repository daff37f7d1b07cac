package solver

import (
	"github.com/maxkimambo/amaze/internal/logger"
	"github.com/maxkimambo/amaze/internal/maze"
)

// searchTask walks forward from one node. It follows corridors in-line,
// forks a child for each extra branch it claims and joins its children
// before returning.
type searchTask struct {
	maze      maze.Maze
	state     *Exploration
	pool      *forkPool
	forkAfter int

	current maze.NodeID
	player  maze.PlayerID

	// steps counts in-line claims since the last fork.
	steps   int
	pending []maze.NodeID

	children *forkGroup
	results  []*[]maze.NodeID
}

func newSearchTask(m maze.Maze, state *Exploration, pool *forkPool, forkAfter int, start maze.NodeID) *searchTask {
	return &searchTask{
		maze:      m,
		state:     state,
		pool:      pool,
		forkAfter: forkAfter,
		current:   start,
		children:  pool.group(),
	}
}

// run returns a path from the search start to a goal, or nil when neither
// this task nor any of its children reached one. The task's own in-line
// result wins over its children's, and children are taken in fork order.
func (t *searchTask) run() []maze.NodeID {
	path := t.walk()
	t.children.Wait()
	if path != nil {
		return path
	}
	for _, result := range t.results {
		if *result != nil {
			return *result
		}
	}
	return nil
}

func (t *searchTask) walk() []maze.NodeID {
	t.player = t.maze.NewPlayer(t.current)
	for {
		if t.state.stopped() {
			return nil
		}
		if t.maze.HasGoal(t.current) {
			if path := t.reachedGoal(); path != nil {
				return path
			}
			// the goal could not be published; its deferred nodes are ours
			if !t.resume() {
				return nil
			}
			continue
		}

		claimed := t.claim(t.unvisited())
		if len(claimed) == 0 {
			// dead end, or every candidate was taken by another task
			if !t.resume() {
				return nil
			}
			continue
		}

		t.maze.Move(t.player, claimed[0])
		t.current = claimed[0]
		t.steps++
		t.branch(claimed[1:])
	}
}

// unvisited returns the neighbors of current that nobody has claimed yet.
func (t *searchTask) unvisited() []maze.NodeID {
	neighbors := t.maze.Neighbors(t.current)
	candidates := make([]maze.NodeID, 0, len(neighbors))
	for _, n := range neighbors {
		if !t.state.IsVisited(n) {
			candidates = append(candidates, n)
		}
	}
	return candidates
}

// claim tries to claim each candidate in order and returns the ones won.
// It stops early once the search is over.
func (t *searchTask) claim(candidates []maze.NodeID) []maze.NodeID {
	won := candidates[:0]
	for _, n := range candidates {
		if t.state.stopped() {
			break
		}
		if t.state.TryClaim(n) {
			t.state.RecordPredecessor(n, t.current)
			won = append(won, n)
		}
	}
	return won
}

// branch hands the extra claimed nodes to children, or keeps them on the
// pending stack while fork deferral is in effect.
func (t *searchTask) branch(extra []maze.NodeID) {
	if t.forkAfter <= 0 {
		for _, n := range extra {
			t.fork(n)
		}
		return
	}

	t.pending = append(t.pending, extra...)
	t.pool.deferred.Add(int64(len(extra)))
	if t.steps < t.forkAfter || len(t.pending) == 0 {
		return
	}
	for _, n := range t.pending {
		t.fork(n)
	}
	t.pending = t.pending[:0]
	t.steps = 0
}

// resume continues from the most recently deferred node, with a new player.
// It reports false when nothing is pending.
func (t *searchTask) resume() bool {
	if len(t.pending) == 0 {
		return false
	}
	last := len(t.pending) - 1
	t.current = t.pending[last]
	t.pending = t.pending[:last]
	t.player = t.maze.NewPlayer(t.current)
	return true
}

func (t *searchTask) fork(node maze.NodeID) {
	child := newSearchTask(t.maze, t.state, t.pool, t.forkAfter, node)
	result := new([]maze.NodeID)
	t.results = append(t.results, result)

	logger.Op.WithFields(map[string]interface{}{
		"from": t.current,
		"node": node,
	}).Debug("Forking search task")

	t.children.Go(func() {
		*result = child.run()
	})
}

// reachedGoal rebuilds the path to current and publishes it. Only the first
// task to publish returns the path; later ones, and a goal with no chain back
// to the start, return nil.
func (t *searchTask) reachedGoal() []maze.NodeID {
	path := maze.PathFromTo(t.state.start, t.current, t.state.Predecessors())
	if path == nil {
		logger.Op.WithFields(map[string]interface{}{
			"goal": t.current,
		}).Warn("Goal has no predecessor chain back to the start")
		return nil
	}
	if !t.state.publish() {
		return nil
	}

	logger.Op.WithFields(map[string]interface{}{
		"goal":   t.current,
		"length": len(path),
	}).Debug("Goal reached")
	return path
}
