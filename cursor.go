// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

import (
	"sync"
	"sync/atomic"
)

// lockedCursor is a shared index into a chunk guarded by a mutex. It
// backs the locked-queue executor: every GetTask call takes the lock,
// reads and advances idx, and returns the item idx used to point to (or
// reports exhaustion).
type lockedCursor struct {
	mu    sync.Mutex
	chunk Chunk
	idx   int
}

// SetChunk rearms the cursor for a new chunk. The caller must ensure no
// worker is concurrently calling GetTask when this runs — in practice
// this means calling it before signalling workers to start a new round.
func (c *lockedCursor) SetChunk(chunk Chunk) {
	c.mu.Lock()
	c.chunk = chunk
	c.idx = 0
	c.mu.Unlock()
}

// GetTask returns the next unclaimed item in the chunk, or false if the
// chunk is exhausted (idx >= len(chunk)).
func (c *lockedCursor) GetTask() (WorkItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idx >= len(c.chunk) {
		return WorkItem{}, false
	}
	item := c.chunk[c.idx]
	c.idx++
	return item, true
}

// atomicCursor is the lock-free counterpart to lockedCursor: idx is
// advanced with a single atomic fetch-and-add, so contention is confined
// to cache-line invalidation of one counter rather than a serialized
// critical section. chunk itself is set only by the coordinator before
// any worker is signalled to start the round, so it needs no
// synchronization of its own.
type atomicCursor struct {
	chunk Chunk
	idx   atomic.Uint64
}

func (c *atomicCursor) SetChunk(chunk Chunk) {
	c.chunk = chunk
	c.idx.Store(0)
}

func (c *atomicCursor) GetTask() (WorkItem, bool) {
	i := c.idx.Add(1) - 1
	if i >= uint64(len(c.chunk)) {
		return WorkItem{}, false
	}
	return c.chunk[i], true
}
