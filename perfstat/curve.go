// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfstat

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// A CurveFilter selects the rows of an aggregate table that belong to
// one workload scenario.
type CurveFilter struct {
	Workload  string
	NumBlocks int64
	ZipfTheta float64
}

// Curve extracts the y-column value at each sample_shift in xs from
// the rows matching f.
//
// Every requested x must match exactly one row. Zero matches means
// the data point is missing; more than one means the table was
// aggregated with the wrong key. Either way the aggregate table
// cannot be plotted truthfully, so Curve reports a data-integrity
// error rather than guessing.
func Curve(t *table.Table, y string, xs []int, f CurveFilter) ([]float64, error) {
	if t.Column(y) == nil {
		return nil, fmt.Errorf("curve %q: no such column", y)
	}
	g := table.FilterEq(t, "workload", f.Workload)
	g = table.FilterEq(g, "num_blocks", f.NumBlocks)
	g = table.FilterEq(g, "zipf_theta", f.ZipfTheta)

	ys := make([]float64, 0, len(xs))
	for _, x := range xs {
		pt := table.Flatten(table.FilterEq(g, "sample_shift", x))
		if pt.Len() != 1 {
			return nil, fmt.Errorf(
				"curve %q: %d rows match sample_shift=%d workload=%q num_blocks=%d zipf_theta=%v, want exactly 1",
				y, pt.Len(), x, f.Workload, f.NumBlocks, f.ZipfTheta)
		}
		ys = append(ys, pt.MustColumn(y).([]float64)[0])
	}
	return ys, nil
}
