// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

// NewAtomicQueueExecutor returns a [QueueExecutor] whose shared cursor
// advances via a single atomic fetch-and-add instead of a mutex. It
// gives the same dynamic load balance as [NewLockedQueueExecutor] but
// confines contention to cache-line invalidation of one counter rather
// than serialized lock acquisition.
func NewAtomicQueueExecutor() *QueueExecutor {
	return newQueueExecutor(&atomicCursor{}, "atomic-queue")
}
