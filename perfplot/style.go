// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perfplot renders the benchmark summary charts: hit-rate /
// motivation figures and the sampling error/overhead figures, plus
// their standalone legends.
package perfplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style fixes how one workload scenario is drawn, so a scenario
// looks the same across every chart it appears in.
type Style struct {
	Label  string           // legend text
	Color  color.Color      // line and glyph color
	Dashes []vg.Length      // line dash pattern, nil for solid
	Shape  draw.GlyphDrawer // marker glyph
}

func blue(alpha uint8) color.Color {
	return color.NRGBA{0x1F, 0x77, 0xB4, alpha}
}
func orange(alpha uint8) color.Color {
	return color.NRGBA{0xFF, 0x7F, 0x0E, alpha}
}
func green(alpha uint8) color.Color {
	return color.NRGBA{0x2C, 0xA0, 0x2C, alpha}
}
func red(alpha uint8) color.Color {
	return color.NRGBA{0xD6, 0x27, 0x28, alpha}
}
func purple(alpha uint8) color.Color {
	return color.NRGBA{0x94, 0x67, 0xBD, alpha}
}

func dashed() []vg.Length {
	return []vg.Length{vg.Points(6), vg.Points(3)}
}
func dotted() []vg.Length {
	return []vg.Length{vg.Points(1.5), vg.Points(2)}
}
func dashDotted() []vg.Length {
	return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1.5), vg.Points(2)}
}

// styles is the static scenario table. It is configuration, not
// dispatch: every scenario any chart may name must appear here, and
// StyleFor fails fast on a name it does not know.
var styles = map[string]Style{
	"zipf_s1G_z0.99": {
		Label: "Zipf 1 GB (0.99)",
		Color: blue(0xFF),
		Shape: draw.CircleGlyph{},
	},
	"zipf_s2G_z0.5": {
		Label:  "Zipf 2 GB (0.5)",
		Color:  orange(0xFF),
		Dashes: dashDotted(),
		Shape:  draw.PyramidGlyph{},
	},
	"unif_s0.5G": {
		Label:  "Uniform 0.5 GB",
		Color:  green(0xFF),
		Dashes: dashed(),
		Shape:  draw.TriangleGlyph{},
	},
	"unif_s0.7G": {
		Label:  "Uniform 0.7 GB",
		Color:  purple(0xFF),
		Dashes: dashDotted(),
		Shape:  draw.BoxGlyph{},
	},
	"unif_s1G": {
		Label:  "Uniform 1 GB",
		Color:  red(0xFF),
		Dashes: dotted(),
		Shape:  draw.CrossGlyph{},
	},
}

// StyleFor looks up the style of a scenario.
func StyleFor(scenario string) (Style, error) {
	st, ok := styles[scenario]
	if !ok {
		return Style{}, fmt.Errorf("no style registered for scenario %q", scenario)
	}
	return st, nil
}

// CheckStyles verifies that every named scenario has a registered
// style. Charts call it before rendering anything so a typo fails
// immediately with a clear message instead of mid-render.
func CheckStyles(scenarios []string) error {
	for _, name := range scenarios {
		if _, err := StyleFor(name); err != nil {
			return err
		}
	}
	return nil
}
