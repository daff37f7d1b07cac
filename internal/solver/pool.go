package solver

import (
	"sync/atomic"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/semaphore"
)

// forkPool bounds how many search tasks run on their own goroutine. A fork
// that finds every slot busy is kept by its parent and run at join time, so
// a parent never waits for a slot while holding one.
type forkPool struct {
	slots *semaphore.Weighted
	// onPanic is called when a task panics, before the panic reaches its
	// joiner. It may be called more than once per search.
	onPanic func()

	active    atomic.Int64
	maxActive atomic.Int64
	tasks     atomic.Int64
	forks     atomic.Int64
	inlined   atomic.Int64
	deferred  atomic.Int64
}

func newForkPool(workers int) *forkPool {
	return &forkPool{slots: semaphore.NewWeighted(int64(workers))}
}

// group returns an empty set of forks to be joined together.
func (p *forkPool) group() *forkGroup {
	return &forkGroup{pool: p}
}

// running runs fn as a task owning a goroutine slot. active and maxActive
// count only such tasks; kept forks run inside their parent's slot.
func (p *forkPool) running(fn func()) {
	p.tasks.Add(1)
	active := p.active.Add(1)
	for {
		seen := p.maxActive.Load()
		if active <= seen || p.maxActive.CompareAndSwap(seen, active) {
			break
		}
	}
	defer p.active.Add(-1)
	p.guard(fn)
}

// guard runs fn and reports a panic through onPanic before re-raising it.
func (p *forkPool) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if p.onPanic != nil {
				p.onPanic()
			}
			panic(r)
		}
	}()
	fn()
}

// forkGroup is the set of children forked by one task.
type forkGroup struct {
	pool    *forkPool
	wg      conc.WaitGroup
	inlined []func()
}

// Go forks fn onto a free slot, or keeps it for Wait if none is free.
func (g *forkGroup) Go(fn func()) {
	if g.pool.slots.TryAcquire(1) {
		g.pool.forks.Add(1)
		g.wg.Go(func() {
			defer g.pool.slots.Release(1)
			g.pool.running(fn)
		})
		return
	}
	g.pool.inlined.Add(1)
	g.inlined = append(g.inlined, fn)
}

// Wait runs the kept forks in fork order on the caller's goroutine, then
// waits for the forked ones. Forked goroutines are always joined, even when
// a kept fork panics; the panic is re-raised once they are done. Kept forks
// after a panicking one are skipped.
func (g *forkGroup) Wait() {
	var kept panics.Catcher
	for _, fn := range g.inlined {
		if kept.Recovered() != nil {
			break
		}
		g.pool.tasks.Add(1)
		fn := fn
		kept.Try(func() { g.pool.guard(fn) })
	}
	g.inlined = nil
	g.wg.Wait()
	kept.Repanic()
}
