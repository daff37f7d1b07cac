package solver

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/maxkimambo/amaze/internal/maze"
)

// Exploration is the state shared by every task of one search: the visited
// set, the predecessor links and the found-goal signal. Claims on different
// nodes never serialize on a common lock.
type Exploration struct {
	ctx    context.Context
	cancel context.CancelFunc
	start  maze.NodeID

	visited     sync.Map // maze.NodeID -> struct{}
	predecessor sync.Map // maze.NodeID -> maze.NodeID

	claims     atomic.Int64
	lostClaims atomic.Int64

	found atomic.Bool
}

func newExploration(ctx context.Context, cancel context.CancelFunc, start maze.NodeID) *Exploration {
	return &Exploration{
		ctx:    ctx,
		cancel: cancel,
		start:  start,
	}
}

// TryClaim marks node as visited and reports whether the caller is the first
// to do so. The test and the insert are one atomic step.
func (e *Exploration) TryClaim(node maze.NodeID) bool {
	if _, loaded := e.visited.LoadOrStore(node, struct{}{}); loaded {
		e.lostClaims.Add(1)
		return false
	}
	e.claims.Add(1)
	return true
}

// RecordPredecessor links node to the node it was discovered from. Only the
// task that won the claim on node may call it.
func (e *Exploration) RecordPredecessor(node, predecessor maze.NodeID) {
	e.predecessor.Store(node, predecessor)
}

// IsVisited reports whether node has been claimed.
func (e *Exploration) IsVisited(node maze.NodeID) bool {
	_, ok := e.visited.Load(node)
	return ok
}

// Predecessors returns a snapshot of the predecessor links.
func (e *Exploration) Predecessors() map[maze.NodeID]maze.NodeID {
	out := make(map[maze.NodeID]maze.NodeID)
	e.predecessor.Range(func(k, v any) bool {
		out[k.(maze.NodeID)] = v.(maze.NodeID)
		return true
	})
	return out
}

// Claims returns the number of successful claims so far.
func (e *Exploration) Claims() int64 {
	return e.claims.Load()
}

// LostClaims returns the number of claims that found the node taken.
func (e *Exploration) LostClaims() int64 {
	return e.lostClaims.Load()
}

// Found reports whether some task already published a path.
func (e *Exploration) Found() bool {
	return e.found.Load()
}

// stopped is the cancellation checkpoint: a goal was found or the caller
// gave up.
func (e *Exploration) stopped() bool {
	return e.found.Load() || e.ctx.Err() != nil
}

// publish claims the win for the caller if no other task reached a goal
// first, and signals every other task to stop.
func (e *Exploration) publish() bool {
	if !e.found.CompareAndSwap(false, true) {
		return false
	}
	e.cancel()
	return true
}
