// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

// Package stats tracks bounded summaries over a run's [parexec.TimingRecord]
// stream without retaining the whole history a second time.
package stats

import (
	"cmp"

	"github.com/addrummond/heap"
)

// ChunkStat is one chunk's index and total wall-clock time, as tracked
// by [SlowestTracker].
type ChunkStat struct {
	Index          int
	TotalChunkTime float64
}

// Cmp orders ChunkStat by TotalChunkTime, satisfying the Orderable
// contract that github.com/addrummond/heap requires of its element
// type.
func (a *ChunkStat) Cmp(b *ChunkStat) int {
	return cmp.Compare(a.TotalChunkTime, b.TotalChunkTime)
}

// SlowestTracker keeps the K chunks with the largest TotalChunkTime seen
// across a run, using a size-bounded min-heap: a new observation is only
// ever compared against (and possibly evicts) the current minimum of
// the kept set, so tracking the top K costs O(log K) per chunk instead
// of O(ChunkCount log ChunkCount) for a full sort at the end.
type SlowestTracker struct {
	k     int
	h     heap.Heap[ChunkStat, heap.Min]
	count int
}

// NewSlowestTracker returns a tracker that retains the k slowest chunks
// observed via [SlowestTracker.Observe].
func NewSlowestTracker(k int) *SlowestTracker {
	return &SlowestTracker{k: k}
}

// Observe records one chunk's timing. If fewer than k chunks have been
// kept so far, it is kept unconditionally; otherwise it replaces the
// currently-kept chunk with the smallest TotalChunkTime if and only if
// it is slower.
func (t *SlowestTracker) Observe(index int, totalChunkTime float64) {
	if t.k <= 0 {
		return
	}
	stat := ChunkStat{Index: index, TotalChunkTime: totalChunkTime}
	if t.count < t.k {
		heap.PushOrderable(&t.h, stat)
		t.count++
		return
	}
	min, ok := heap.Peek(&t.h)
	if ok && totalChunkTime > min.TotalChunkTime {
		heap.PopOrderable(&t.h)
		heap.PushOrderable(&t.h, stat)
	}
}

// Slowest drains the tracker and returns the kept chunks ordered from
// slowest to fastest. After calling Slowest the tracker is empty and
// ready to track a new run.
func (t *SlowestTracker) Slowest() []ChunkStat {
	out := make([]ChunkStat, t.count)
	for i := t.count - 1; i >= 0; i-- {
		v, ok := heap.PopOrderable(&t.h)
		if !ok {
			break
		}
		out[i] = v
	}
	t.count = 0
	return out
}
