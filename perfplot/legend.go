// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LegendFigure builds a standalone legend chart for the named
// scenarios, in the given order. The paper figures share one legend
// across several charts, so it is rendered as its own file instead of
// inside any one of them. markers selects whether the thumbnails
// carry the scenario glyph in addition to the line style.
func LegendFigure(scenarios []string, markers bool) (*Figure, error) {
	if err := CheckStyles(scenarios); err != nil {
		return nil, err
	}

	p := plot.New()
	p.HideAxes()
	for _, name := range scenarios {
		st, _ := StyleFor(name)
		// Zero-data plotters: the legend only consults their
		// styles for thumbnails, nothing is drawn in the plot
		// area.
		ln := &plotter.Line{LineStyle: lineStyle(st)}
		if markers {
			sc := &plotter.Scatter{GlyphStyle: glyphStyle(st)}
			p.Legend.Add(st.Label, ln, sc)
		} else {
			p.Legend.Add(st.Label, ln)
		}
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Points(2)

	return &Figure{
		Panels: []*plot.Plot{p},
		Width:  2 * vg.Inch,
		Height: vg.Length(len(scenarios))*0.25*vg.Inch + 0.3*vg.Inch,
	}, nil
}
