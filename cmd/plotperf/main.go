// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotperf renders the perf figure from the aggregate tables written
// by perfagg: sampling error rate and per-block overhead against
// sample rate, with error bars, plus the standalone legend.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chenhao-ye/gcache/perfplot"
	"github.com/chenhao-ye/gcache/perfstat"
)

func main() {
	results := flag.String("results", "results", "directory containing perf_mean.csv and perf_std.csv")
	out := flag.String("o", ".", "output directory for the chart files")
	flag.Parse()

	mean, _, err := perfstat.ReadCSVFile(filepath.Join(*results, "perf_mean.csv"))
	if err != nil {
		fail("%v\n", err)
	}
	std, _, err := perfstat.ReadCSVFile(filepath.Join(*results, "perf_std.csv"))
	if err != nil {
		fail("%v\n", err)
	}

	fig, err := perfplot.PerfFigure(mean, std, perfplot.PerfScenarios)
	if err != nil {
		fail("%v\n", err)
	}
	save(fig, filepath.Join(*out, "ghost_perf.png"))
	save(fig, filepath.Join(*out, "ghost_perf.pdf"))

	legend, err := perfplot.LegendFigure(scenarioNames(), true)
	if err != nil {
		fail("%v\n", err)
	}
	save(legend, filepath.Join(*out, "ghost_perf_legend.pdf"))
	save(legend, filepath.Join(*out, "ghost_perf_legend.jpg"))
}

func scenarioNames() []string {
	names := make([]string, len(perfplot.PerfScenarios))
	for i, sc := range perfplot.PerfScenarios {
		names[i] = sc.Name
	}
	return names
}

func save(fig *perfplot.Figure, path string) {
	if err := fig.Save(path); err != nil {
		fail("%v\n", err)
	}
	fmt.Printf("saved %s\n", path)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
