// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfplot

import (
	"gonum.org/v1/plot"

	"github.com/chenhao-ye/gcache/hitrate"
)

// MotivScenarios lists the scenarios of the motivation figure, in
// legend order.
var MotivScenarios = []string{
	"zipf_s1G_z0.99",
	"unif_s0.5G",
	"unif_s0.7G",
	"unif_s1G",
}

// MotivFigure builds the two-panel motivation figure from the
// hit-rate curves under dir: ghost-cache miss rate on the left,
// motivation metric on the right, both against cache size.
func MotivFigure(dir string, scenarios []string, cfg hitrate.Config) (*Figure, error) {
	if err := CheckStyles(scenarios); err != nil {
		return nil, err
	}

	missP := newPanel("Cache size (GB)", "Miss rate (%)")
	motivP := newPanel("Cache size (GB)", "M = -m'/m (GB^-1)")

	for _, name := range scenarios {
		st, _ := StyleFor(name)
		ghost, _, err := hitrate.LoadScenario(dir, name)
		if err != nil {
			return nil, err
		}
		if err := addLine(missP, ghost.Sizes(cfg), ghost.MissRates(), st); err != nil {
			return nil, err
		}
		sizes, metric := hitrate.Motivation(ghost, cfg)
		if err := addLine(motivP, sizes, metric, st); err != nil {
			return nil, err
		}
	}

	sizeTicks := []float64{0, 0.25, 0.5, 0.75, 1}
	fixAxis(&missP.X, constTicks(sizeTicks), 0, 1)
	fixAxis(&missP.Y, constTicks([]float64{0, 25, 50, 75, 100}), 0, 100)
	fixAxis(&motivP.X, constTicks(sizeTicks), 0, 1)
	fixAxis(&motivP.Y, constTicks([]float64{0, 2, 4, 6, 8}), 0, 8)

	return &Figure{Panels: []*plot.Plot{missP, motivP}}, nil
}

func newPanel(xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	return p
}

func fixAxis(a *plot.Axis, ticks plot.ConstantTicks, min, max float64) {
	a.Tick.Marker = ticks
	a.Min, a.Max = min, max
}
