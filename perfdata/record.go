// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfdata reads the CSV records produced by the gcache
// benchmark harness.
//
// Each benchmark trial emits one row in a perf.csv file. The row is
// keyed by the experiment configuration (sample_shift, workload,
// num_blocks, zipf_theta, rand_seed) followed by measured fields such
// as elapsed times and operation counts.
package perfdata

// A Key identifies one experiment configuration. It deliberately
// excludes the random seed: trials that differ only by seed are
// repetitions of the same configuration and are aggregated together.
type Key struct {
	SampleShift int
	Workload    string
	NumBlocks   int64
	ZipfTheta   float64
}

// A Record is a single benchmark trial row.
type Record struct {
	Key

	// RandSeed distinguishes repeated trials of the same Key.
	RandSeed int64

	// Metrics holds the measured fields of the row, parallel to
	// the metric names reported by the Reader that produced it.
	Metrics []float64
}

// KeyCols lists the required key columns, in the order they lead
// every input and output file.
var KeyCols = []string{"sample_shift", "workload", "num_blocks", "zipf_theta", "rand_seed"}

// RequiredMetrics lists the measured columns every perf.csv must
// carry. Additional numeric columns are allowed and carried through.
var RequiredMetrics = []string{"baseline_us", "ghost_us", "sampled_us", "num_ops"}
