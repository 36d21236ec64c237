// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

// Executor drives a fixed set of worker goroutines over a [Dataset],
// using one of three load-balancing strategies (pre-assigned sub-ranges,
// a locked shared cursor, or an atomic shared cursor). All three
// implementations produce the same scalar reduction for the same
// dataset, differing only in how evenly they spread work across workers
// and in where their synchronization overhead falls.
type Executor interface {
	// RunDataset processes every chunk in data in order, returning the
	// sum of every worker's accumulated [WorkItem.Process] results and,
	// if [TimingMeasurementEnabled], one [TimingRecord] per chunk in
	// the same order.
	RunDataset(data Dataset) (uint32, []TimingRecord)

	// Close stops all worker goroutines and waits for them to exit. An
	// Executor must not be used again after Close.
	Close()
}
