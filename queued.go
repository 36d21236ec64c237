// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

// NewLockedQueueExecutor returns a [QueueExecutor] whose shared cursor is
// guarded by a mutex: every GetTask call serializes through one critical
// section. See [QueueExecutor] for the load-balancing tradeoff this
// makes relative to [PreassignedExecutor].
func NewLockedQueueExecutor() *QueueExecutor {
	return newQueueExecutor(&lockedCursor{}, "locked-queue")
}
