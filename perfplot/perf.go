// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfplot

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/chenhao-ye/gcache/perfstat"
)

// SampleShifts is the x-axis of the perf figure; the sample rate of a
// shift s is 1/2^s.
var SampleShifts = []int{3, 4, 5, 6, 7, 8}

// A PerfScenario binds a scenario name to the aggregate-table rows it
// plots.
type PerfScenario struct {
	Name   string
	Filter perfstat.CurveFilter
}

// PerfScenarios lists the scenarios of the perf figure, in legend
// order. Working-set sizes are expressed in 4 KiB blocks.
var PerfScenarios = []PerfScenario{
	{"zipf_s1G_z0.99", perfstat.CurveFilter{Workload: "zipf", NumBlocks: 1 << 30 / 4096, ZipfTheta: 0.99}},
	{"unif_s1G", perfstat.CurveFilter{Workload: "unif", NumBlocks: 1 << 30 / 4096, ZipfTheta: 0}},
	{"zipf_s2G_z0.5", perfstat.CurveFilter{Workload: "zipf", NumBlocks: 2 << 30 / 4096, ZipfTheta: 0.5}},
}

// PerfFigure builds the two-panel perf figure from the mean and std
// aggregate tables: sampling error rate on the left, per-block
// overhead on the right, both against sample rate, with ±1 std error
// bars.
func PerfFigure(mean, std *table.Table, scenarios []PerfScenario) (*Figure, error) {
	names := make([]string, len(scenarios))
	for i, sc := range scenarios {
		names[i] = sc.Name
	}
	if err := CheckStyles(names); err != nil {
		return nil, err
	}

	errP := newPanel("Sample rate", "Error rate (%)")
	costP := newPanel("Sample rate", "Overhead (ns/block)")

	xs := make([]float64, len(SampleShifts))
	rateLabels := make([]string, len(SampleShifts))
	for i, s := range SampleShifts {
		xs[i] = float64(s)
		rateLabels[i] = fmt.Sprintf("1/%d", 1<<s)
	}

	for _, sc := range scenarios {
		st, _ := StyleFor(sc.Name)

		errYs, err := perfstat.Curve(mean, "avg_err", SampleShifts, sc.Filter)
		if err != nil {
			return nil, err
		}
		errStd, err := perfstat.Curve(std, "avg_err", SampleShifts, sc.Filter)
		if err != nil {
			return nil, err
		}
		// unit: fraction -> %
		if err := addErrorCurve(errP, xs, scale(errYs, 100), scale(errStd, 100), st); err != nil {
			return nil, err
		}

		costYs, err := perfstat.Curve(mean, perfstat.SampledCostCol, SampleShifts, sc.Filter)
		if err != nil {
			return nil, err
		}
		costStd, err := perfstat.Curve(std, perfstat.SampledCostCol, SampleShifts, sc.Filter)
		if err != nil {
			return nil, err
		}
		// unit: us -> ns
		if err := addErrorCurve(costP, xs, scale(costYs, 1000), scale(costStd, 1000), st); err != nil {
			return nil, err
		}
	}

	fixAxis(&errP.X, labelTicks(xs, rateLabels), xs[0], xs[len(xs)-1])
	fixAxis(&errP.Y, constTicks([]float64{0, 1, 2, 3, 4}), 0, 4)
	fixAxis(&costP.X, labelTicks(xs, rateLabels), xs[0], xs[len(xs)-1])
	fixAxis(&costP.Y, constTicks([]float64{0, 25, 50, 75, 100}), 0, 100)

	return &Figure{Panels: []*plot.Plot{errP, costP}}, nil
}

// addErrorCurve draws a marked line plus symmetric ±err error bars.
// Bars with a non-finite err (a configuration measured only once has
// no sample standard deviation) are left out.
func addErrorCurve(p *plot.Plot, xs, ys, errs []float64, st Style) error {
	if err := addLinePoints(p, xs, ys, st); err != nil {
		return err
	}

	pts := errPoints{}
	for i := range xs {
		if math.IsNaN(ys[i]) || math.IsNaN(errs[i]) || math.IsInf(errs[i], 0) {
			continue
		}
		pts.XYs = append(pts.XYs, plotter.XY{X: xs[i], Y: ys[i]})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{errs[i], errs[i]})
	}
	if len(pts.XYs) == 0 {
		return nil
	}
	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return err
	}
	bars.LineStyle.Color = st.Color
	p.Add(bars)
	return nil
}

type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

func scale(xs []float64, by float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * by
	}
	return out
}
