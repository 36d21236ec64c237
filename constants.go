// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

// Fixed configuration for the chunked-workload executors. These mirror the
// compile-time constants of the original study: a worker count, a chunk
// shape, and the iteration counts that make light and heavy work items
// distinguishable in wall-clock time.
const (
	WorkerCount     = 4
	ChunkSize       = 8000
	ChunkCount      = 100
	SubsetSize      = ChunkSize / WorkerCount
	LightIterations = 100
	HeavyIterations = 1000

	ProbabilityHeavy = 0.05

	// TimingMeasurementEnabled gates collection of [TimingRecord] values.
	// It exists as a named constant, rather than being inlined as true,
	// so that callers reading an executor's source see the same
	// conditional structure as the original C++ `if constexpr` guards.
	TimingMeasurementEnabled = true
)

func init() {
	if ChunkSize < WorkerCount {
		panic("parexec: ChunkSize must be >= WorkerCount")
	}
	if ChunkSize%WorkerCount != 0 {
		panic("parexec: ChunkSize must be a multiple of WorkerCount")
	}
}
