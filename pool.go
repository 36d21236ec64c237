// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

import (
	"sync"

	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// boundTask is a type-erased invocation of a [PackagedTask]'s Run
// method; it's what actually sits in the pool's queue, since the queue
// holds tasks of many different result types at once.
type boundTask = func()

// Pool is a fixed set of long-lived worker goroutines sharing one FIFO
// queue of packaged tasks. Workers are started when the Pool is
// constructed and exit cooperatively when [Pool.Close] is called; no
// goroutine is created per task.
//
// The queue is a [deque.Deque], the same ring-buffer FIFO the original's
// ThreadPool used via std::deque, guarded by one mutex with two
// condition variables: workers wait on non-empty, and
// [Pool.WaitForAllDone] waits on empty.
type Pool struct {
	mu            sync.Mutex
	nonEmpty      *sync.Cond
	empty         *sync.Cond
	queue         deque.Deque[boundTask]
	stopRequested bool
	wg            sync.WaitGroup
}

// NewPool starts numWorkers worker goroutines and returns a Pool ready
// to accept submissions.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		panic("parexec: pool needs at least one worker")
	}
	p := &Pool{}
	p.nonEmpty = sync.NewCond(&p.mu)
	p.empty = sync.NewCond(&p.mu)
	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer p.wg.Done()
			p.workerLoop()
		}()
	}
	zap.L().Debug("pool started", zap.Int("workers", numWorkers))
	return p
}

func (p *Pool) workerLoop() {
	for {
		p.mu.Lock()
		for p.queue.Len() == 0 && !p.stopRequested {
			p.nonEmpty.Wait()
		}
		if p.stopRequested && p.queue.Len() == 0 {
			p.mu.Unlock()
			return
		}
		task := p.queue.PopFront()
		wentEmpty := p.queue.Len() == 0
		p.mu.Unlock()
		if wentEmpty {
			p.empty.Broadcast()
		}
		// No suspension occurs inside user task execution: task panics
		// are already captured by PackagedTask.Run before they ever
		// reach this frame, so a worker never dies from a user task.
		task()
	}
}

func (p *Pool) submit(task boundTask) {
	p.mu.Lock()
	p.queue.PushBack(task)
	p.mu.Unlock()
	p.nonEmpty.Signal()
}

// Run packages fn and appends it to the pool's queue, returning the
// [Future] that will receive its outcome. It is thread-safe and O(1)
// amortized.
//
// Run is a package-level function rather than a method because Go
// methods cannot introduce their own type parameters; T is inferred
// from fn.
func Run[T any](p *Pool, fn TaskFunc[T]) *Future[T] {
	task, future := MakeTask(fn)
	p.submit(task.Run)
	return future
}

// WaitForAllDone blocks until the queue is observed empty.
//
// This is a queue-drained signal, not a completion signal: the last
// dequeued task may still be running when WaitForAllDone returns, since
// a worker removes a task from the queue before invoking it. Callers
// that need to know a task has actually finished must observe its
// [Future] instead.
func (p *Pool) WaitForAllDone() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.queue.Len() != 0 {
		p.empty.Wait()
	}
}

// Close requests that every worker stop once the queue drains, then
// waits for all of them to exit. Submitting to a Pool after Close has
// begun is undefined behavior; callers must not race a submission
// against Close.
func (p *Pool) Close() {
	p.mu.Lock()
	p.stopRequested = true
	p.mu.Unlock()
	p.nonEmpty.Broadcast()
	p.wg.Wait()
	zap.L().Debug("pool closed")
}
