// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

// Package parexec studies three ways to spread a chunked, CPU-bound
// workload across a fixed set of worker goroutines — pre-assigned
// sub-ranges, a mutex-guarded shared cursor, and an atomically-advanced
// shared cursor — and, alongside them, a general task-execution
// runtime: a fixed-size thread pool, a promise/future pair
// carrying a value or a propagated failure, and a packaged task that
// binds a callable to a promise.
//
// The three [Executor] implementations exist to compare load-balancing
// strategies under different work distributions; [Pool] exists to run
// arbitrary heterogeneous work once that comparison is done. The two
// halves are independent: [Barrier] and the shared cursors are used only
// by the executors, and [Pool] synchronizes through its own mutex and
// condition variables.
package parexec
