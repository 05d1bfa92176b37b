// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfplot

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Panel dimensions, matching the paper figures.
const (
	subfigWidth  = 2.5 * vg.Inch
	subfigHeight = 2 * vg.Inch
	rasterDPI    = 300
)

// A Figure is a single row of panels rendered side by side into one
// output file.
type Figure struct {
	Panels []*plot.Plot

	// Width and Height override the per-panel defaults when
	// non-zero.
	Width, Height vg.Length
}

func (fig *Figure) size() (w, h vg.Length) {
	w, h = vg.Length(len(fig.Panels))*subfigWidth, subfigHeight
	if fig.Width != 0 {
		w = fig.Width
	}
	if fig.Height != 0 {
		h = fig.Height
	}
	return
}

// Save renders the figure to path. The output format is chosen by the
// file extension: .png, .jpg, .pdf, or .svg.
func (fig *Figure) Save(path string) error {
	w, h := fig.size()
	can, err := canvasFor(filepath.Ext(path), w, h)
	if err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}

	dc := draw.New(can)
	tiles := draw.Tiles{
		Rows: 1, Cols: len(fig.Panels),
		PadX: vg.Millimeter * 2, PadY: vg.Millimeter,
	}
	canvases := plot.Align([][]*plot.Plot{fig.Panels}, tiles, dc)
	for i, p := range fig.Panels {
		p.Draw(canvases[0][i])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveAll renders the figure once per path.
func (fig *Figure) SaveAll(paths ...string) error {
	for _, path := range paths {
		if err := fig.Save(path); err != nil {
			return err
		}
	}
	return nil
}

func canvasFor(ext string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	img := func() *vgimg.Canvas {
		return vgimg.NewWith(
			vgimg.UseWH(w, h),
			vgimg.UseDPI(rasterDPI),
			vgimg.UseBackgroundColor(color.White))
	}
	switch ext {
	case ".png":
		return vgimg.PngCanvas{Canvas: img()}, nil
	case ".jpg", ".jpeg":
		return vgimg.JpegCanvas{Canvas: img()}, nil
	case ".pdf":
		return vgpdf.New(w, h), nil
	case ".svg":
		return vgsvg.New(w, h), nil
	}
	return nil, fmt.Errorf("unsupported chart format %q", ext)
}

// addLine draws (xs, ys) as a styled line. NaN entries mark undefined
// points; they are skipped so the rest of the curve still renders,
// mirroring how the motivation metric reports division by zero.
func addLine(p *plot.Plot, xs, ys []float64, st Style) error {
	ln, err := plotter.NewLine(finitePoints(xs, ys))
	if err != nil {
		return err
	}
	ln.LineStyle = lineStyle(st)
	p.Add(ln)
	return nil
}

// addLinePoints is addLine plus the scenario's marker glyph at each
// point.
func addLinePoints(p *plot.Plot, xs, ys []float64, st Style) error {
	pts := finitePoints(xs, ys)
	ln, sc, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	ln.LineStyle = lineStyle(st)
	sc.GlyphStyle = glyphStyle(st)
	p.Add(ln, sc)
	return nil
}

func lineStyle(st Style) draw.LineStyle {
	return draw.LineStyle{
		Color:  st.Color,
		Width:  vg.Points(1.25),
		Dashes: st.Dashes,
	}
}

func glyphStyle(st Style) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  st.Color,
		Radius: vg.Points(2.5),
		Shape:  st.Shape,
	}
}

func finitePoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

// constTicks pins an axis to a fixed tick set, the way the original
// figures fix their axes.
func constTicks(vals []float64) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(vals))
	for i, v := range vals {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return plot.ConstantTicks(ticks)
}

// labelTicks is constTicks with explicit labels (e.g. "1/8" at 3).
func labelTicks(vals []float64, labels []string) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(vals))
	for i, v := range vals {
		ticks[i] = plot.Tick{Value: v, Label: labels[i]}
	}
	return plot.ConstantTicks(ticks)
}
