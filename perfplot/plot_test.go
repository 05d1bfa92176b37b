// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfplot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot"

	"github.com/chenhao-ye/gcache/hitrate"
	"github.com/chenhao-ye/gcache/perfdata"
	"github.com/chenhao-ye/gcache/perfstat"
)

func writeHitRates(t *testing.T, dir, scenario string) {
	t.Helper()
	sub := filepath.Join(dir, scenario)
	if err := os.MkdirAll(sub, 0777); err != nil {
		t.Fatal(err)
	}
	var ghost, sampled strings.Builder
	ghost.WriteString("num_blocks, hit_rate\n")
	sampled.WriteString("num_blocks, hit_rate\n")
	for i := 1; i <= 8; i++ {
		blocks := i * 32768
		hit := 1 - 1/float64(i+1)
		fmt.Fprintf(&ghost, "%d, %g\n", blocks, hit)
		fmt.Fprintf(&sampled, "%d, %g\n", blocks, hit*0.95)
	}
	if err := os.WriteFile(filepath.Join(sub, "hit_rate_ghost.csv"), []byte(ghost.String()), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "hit_rate_sampled.csv"), []byte(sampled.String()), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestMotivFigure(t *testing.T) {
	dir := t.TempDir()
	scenarios := []string{"unif_s1G", "zipf_s1G_z0.99"}
	for _, sc := range scenarios {
		writeHitRates(t, dir, sc)
	}

	fig, err := MotivFigure(dir, scenarios, hitrate.Config{})
	if err != nil {
		t.Fatalf("MotivFigure: %v", err)
	}
	if len(fig.Panels) != 2 {
		t.Fatalf("got %d panels, want 2", len(fig.Panels))
	}

	out := filepath.Join(dir, "motiv.png")
	if err := fig.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Errorf("Save produced no output: %v", err)
	}
}

func TestMotivFigureMissingData(t *testing.T) {
	dir := t.TempDir()
	writeHitRates(t, dir, "unif_s1G")
	// unif_s0.5G has a style but no data files.
	if _, err := MotivFigure(dir, []string{"unif_s1G", "unif_s0.5G"}, hitrate.Config{}); err == nil {
		t.Fatal("MotivFigure succeeded with a missing scenario directory")
	}
}

func perfTables(t *testing.T) *perfstat.Tables {
	t.Helper()
	metrics := []string{"baseline_us", "ghost_us", "sampled_us", "num_ops", "avg_err"}
	var records []perfdata.Record
	for _, sc := range PerfScenarios {
		for _, shift := range SampleShifts {
			for seed := int64(1); seed <= 2; seed++ {
				records = append(records, perfdata.Record{
					Key: perfdata.Key{
						SampleShift: shift,
						Workload:    sc.Filter.Workload,
						NumBlocks:   sc.Filter.NumBlocks,
						ZipfTheta:   sc.Filter.ZipfTheta,
					},
					RandSeed: seed,
					Metrics: []float64{
						100, 150, 120 + float64(seed), 1000,
						0.01 * float64(shift),
					},
				})
			}
		}
	}
	ts, err := perfstat.Aggregate(records, metrics)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	return ts
}

func TestPerfFigure(t *testing.T) {
	ts := perfTables(t)
	fig, err := PerfFigure(ts.Mean, ts.Std, PerfScenarios)
	if err != nil {
		t.Fatalf("PerfFigure: %v", err)
	}
	if len(fig.Panels) != 2 {
		t.Fatalf("got %d panels, want 2", len(fig.Panels))
	}

	dir := t.TempDir()
	if err := fig.SaveAll(filepath.Join(dir, "perf.png"), filepath.Join(dir, "perf.pdf")); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	for _, name := range []string{"perf.png", "perf.pdf"} {
		if fi, err := os.Stat(filepath.Join(dir, name)); err != nil || fi.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestPerfFigureMissingCurve(t *testing.T) {
	ts := perfTables(t)
	scenarios := []PerfScenario{
		{"unif_s0.5G", perfstat.CurveFilter{Workload: "unif", NumBlocks: 1, ZipfTheta: 0}},
	}
	if _, err := PerfFigure(ts.Mean, ts.Std, scenarios); err == nil {
		t.Fatal("PerfFigure succeeded with no matching aggregate rows")
	}
}

func TestLegendFigure(t *testing.T) {
	fig, err := LegendFigure(MotivScenarios, false)
	if err != nil {
		t.Fatalf("LegendFigure: %v", err)
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "legend.pdf")
	if err := fig.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Errorf("legend not written: %v", err)
	}

	if _, err := LegendFigure([]string{"mystery"}, true); err == nil {
		t.Error("LegendFigure accepted an unregistered scenario")
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	fig := &Figure{Panels: []*plot.Plot{newPanel("x", "y")}}
	err := fig.Save(filepath.Join(t.TempDir(), "fig.bmp"))
	if err == nil || !strings.Contains(err.Error(), ".bmp") {
		t.Errorf("Save(.bmp) error = %v, want unsupported format", err)
	}
}
