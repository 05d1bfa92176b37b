// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfstat aggregates benchmark trial records into summary
// tables.
//
// The raw table concatenates every trial, keyed by (sample_shift,
// workload, num_blocks, zipf_theta, rand_seed) and extended with the
// derived per-operation cost columns. The mean and std tables group
// by the key minus rand_seed and report the arithmetic mean and the
// sample standard deviation of every measured column.
package perfstat

import (
	"fmt"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/chenhao-ye/gcache/perfdata"
)

// GroupCols is the aggregation key. Trials that differ only by
// rand_seed fall into the same group.
var GroupCols = []string{"sample_shift", "workload", "num_blocks", "zipf_theta"}

// Derived per-row cost columns, in output order.
const (
	GhostCostCol   = "ghost_cost_us_per_op"
	SampledCostCol = "sampled_cost_us_per_op"
)

// Tables holds the results of one aggregation pass.
type Tables struct {
	// Metrics is the measured column names, input order first,
	// derived cost columns last.
	Metrics []string

	Raw  *table.Table // every trial, sorted by GroupCols, rand_seed retained
	Mean *table.Table // group means, one row per key
	Std  *table.Table // group sample standard deviations
}

// Collect drains a perfdata.Files scanner and aggregates everything
// it produces.
func Collect(f *perfdata.Files) (*Tables, error) {
	var records []perfdata.Record
	for f.Scan() {
		rec := *f.Result()
		rec.Metrics = append([]float64(nil), rec.Metrics...)
		records = append(records, rec)
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return Aggregate(records, f.Metrics())
}

// Aggregate builds the raw, mean, and std tables from a set of trial
// records. metrics names the measured fields, parallel to
// Record.Metrics. Aggregate is deterministic: the same records in the
// same order always produce identical tables.
func Aggregate(records []perfdata.Record, metrics []string) (*Tables, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no benchmark records to aggregate")
	}

	idx := make(map[string]int, len(metrics))
	for i, name := range metrics {
		idx[name] = i
	}
	for _, name := range perfdata.RequiredMetrics {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("aggregate: missing measured column %q", name)
		}
	}

	n := len(records)
	shifts := make([]int, n)
	workloads := make([]string, n)
	blocks := make([]int64, n)
	thetas := make([]float64, n)
	seeds := make([]int64, n)
	cols := make([][]float64, len(metrics))
	for i := range cols {
		cols[i] = make([]float64, n)
	}
	ghostCost := make([]float64, n)
	sampledCost := make([]float64, n)

	baseI, ghostI := idx["baseline_us"], idx["ghost_us"]
	sampledI, opsI := idx["sampled_us"], idx["num_ops"]
	for i, rec := range records {
		if len(rec.Metrics) != len(metrics) {
			return nil, fmt.Errorf("aggregate: record %d has %d metrics, want %d",
				i, len(rec.Metrics), len(metrics))
		}
		shifts[i] = rec.SampleShift
		workloads[i] = rec.Workload
		blocks[i] = rec.NumBlocks
		thetas[i] = rec.ZipfTheta
		seeds[i] = rec.RandSeed
		for j, v := range rec.Metrics {
			cols[j][i] = v
		}
		ops := rec.Metrics[opsI]
		ghostCost[i] = (rec.Metrics[ghostI] - rec.Metrics[baseI]) / ops
		sampledCost[i] = (rec.Metrics[sampledI] - rec.Metrics[baseI]) / ops
	}

	tb := new(table.Builder).
		Add("sample_shift", shifts).
		Add("workload", workloads).
		Add("num_blocks", blocks).
		Add("zipf_theta", thetas).
		Add("rand_seed", seeds)
	for i, name := range metrics {
		tb.Add(name, cols[i])
	}
	tb.Add(GhostCostCol, ghostCost).Add(SampledCostCol, sampledCost)

	allMetrics := append(append([]string(nil), metrics...), GhostCostCol, SampledCostCol)

	// Sorting before grouping makes group order deterministic:
	// groups surface in first-appearance order, which is now
	// ascending key order.
	raw := table.Flatten(table.SortBy(tb.Done(), GroupCols...))

	grouped := ggstat.Agg(GroupCols...)(aggMeanStd(allMetrics...)).
		F(table.Remove(raw, "rand_seed"))
	flat := table.Flatten(grouped)

	mb := new(table.Builder)
	sb := new(table.Builder)
	for _, col := range GroupCols {
		mb.Add(col, flat.MustColumn(col))
		sb.Add(col, flat.MustColumn(col))
	}
	for _, m := range allMetrics {
		mb.Add(m, flat.MustColumn("mean "+m))
		sb.Add(m, flat.MustColumn("std "+m))
	}

	return &Tables{
		Metrics: allMetrics,
		Raw:     raw,
		Mean:    mb.Done(),
		Std:     sb.Done(),
	}, nil
}

// aggMeanStd is a ggstat.Aggregator that emits both the mean and the
// sample standard deviation of each column, as "mean <col>" and
// "std <col>".
func aggMeanStd(cols ...string) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		for _, col := range cols {
			means := make([]float64, 0, len(input.Tables()))
			stds := make([]float64, 0, len(input.Tables()))
			for _, gid := range input.Tables() {
				xs := input.Table(gid).MustColumn(col).([]float64)
				means = append(means, stats.Mean(xs))
				stds = append(stds, stats.StdDev(xs))
			}
			b.Add("mean "+col, means)
			b.Add("std "+col, stds)
		}
	}
}
