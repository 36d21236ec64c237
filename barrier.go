// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

import "sync"

// Barrier is a reusable many-to-one rendezvous: up to [WorkerCount]
// workers call [Barrier.SignalDone] once each round, and a single
// coordinator calls [Barrier.WaitForAllDone] to block until all of them
// have. WaitForAllDone resets the internal counter before returning, so
// the same Barrier can be reused across chunks without rearming.
//
// A Barrier must not be waited on by more than one coordinator goroutine
// at a time; SignalDone may be called concurrently by any number of
// worker goroutines up to the configured target.
//
// The predicate is checked under the barrier's mutex, and
// [sync.Cond.Wait] reacquires that mutex before returning — the Go
// equivalent of the reacquire-on-wake property that the original
// std::condition_variable implementation relied on by holding its
// std::unique_lock as a member across calls.
type Barrier struct {
	mu        sync.Mutex
	cond      *sync.Cond
	doneCount int
	target    int
}

// NewBarrier creates a Barrier that releases its waiter once target
// workers have called [Barrier.SignalDone].
func NewBarrier(target int) *Barrier {
	b := &Barrier{target: target}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// SignalDone records that one worker has finished its round. If this
// signal brings the done count up to target, the coordinator blocked in
// WaitForAllDone is woken.
//
// The predicate compares with == rather than >=, matching the original:
// a stray extra SignalDone call beyond target in a single round would
// leave doneCount > target and deadlock the next WaitForAllDone. This is
// safe as long as, as the spec requires, doneCount is only ever
// incremented by workers dispatched in the current round.
func (b *Barrier) SignalDone() {
	b.mu.Lock()
	b.doneCount++
	reached := b.doneCount == b.target
	b.mu.Unlock()
	if reached {
		b.cond.Signal()
	}
}

// WaitForAllDone blocks until target workers have called SignalDone
// since the last time WaitForAllDone returned, then resets the done
// count to zero.
func (b *Barrier) WaitForAllDone() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.doneCount != b.target {
		b.cond.Wait()
	}
	b.doneCount = 0
}
