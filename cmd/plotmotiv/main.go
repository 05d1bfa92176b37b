// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotmotiv renders the motivation figure: ghost-cache miss rate and
// the motivation metric (normalized negative miss-rate derivative)
// against cache size, for the standard workload scenarios, plus the
// standalone legend shared by both panels.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chenhao-ye/gcache/hitrate"
	"github.com/chenhao-ye/gcache/perfplot"
)

func main() {
	results := flag.String("results", "results_motiv", "directory containing <scenario>/hit_rate_*.csv inputs")
	out := flag.String("o", ".", "output directory for the chart files")
	flag.Parse()

	fig, err := perfplot.MotivFigure(*results, perfplot.MotivScenarios, hitrate.Config{})
	if err != nil {
		fail("%v\n", err)
	}
	save(fig, filepath.Join(*out, "motiv.pdf"))
	save(fig, filepath.Join(*out, "motiv.png"))

	legend, err := perfplot.LegendFigure(perfplot.MotivScenarios, false)
	if err != nil {
		fail("%v\n", err)
	}
	save(legend, filepath.Join(*out, "motiv_legend.pdf"))
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
