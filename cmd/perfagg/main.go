// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Perfagg merges the per-trial perf.csv files under a results
// directory into one concatenated table plus mean and standard
// deviation summaries grouped by experiment configuration.
//
// It writes perf_raw.csv, perf_mean.csv, and perf_std.csv next to the
// inputs (or under -out), and can additionally export the tables to a
// SQLite database or an HTML report.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/chenhao-ye/gcache/perfdata"
	"github.com/chenhao-ye/gcache/perfdb"
	"github.com/chenhao-ye/gcache/perfstat"
)

func main() {
	results := flag.String("results", "results", "directory containing <scenario>/perf.csv inputs")
	out := flag.String("out", "", "output directory for the CSV tables (defaults to the results directory)")
	dbPath := flag.String("db", "", "also export the tables into this SQLite database")
	htmlPath := flag.String("html", "", "also write an HTML report to this file")
	prefix := flag.String("prefix", perfdata.DefaultPrefix, "required scenario subdirectory prefix")
	flag.Parse()

	files := &perfdata.Files{Dir: *results, Prefix: *prefix, Warn: warn}
	ts, err := perfstat.Collect(files)
	if err != nil {
		fail("%v\n", err)
	}

	dir := *out
	if dir == "" {
		dir = *results
	}
	if err := ts.WriteFiles(dir); err != nil {
		fail("%v\n", err)
	}

	if *dbPath != "" {
		db, err := perfdb.Open(*dbPath)
		if err != nil {
			fail("%v\n", err)
		}
		if err := db.StoreTables(ts); err != nil {
			db.Close()
			fail("%v\n", err)
		}
		if err := db.Close(); err != nil {
			fail("%v\n", err)
		}
	}

	if *htmlPath != "" {
		var buf bytes.Buffer
		ts.FormatHTML(&buf)
		if err := os.WriteFile(*htmlPath, buf.Bytes(), 0666); err != nil {
			fail("%v\n", err)
		}
	}
}

func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
