// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfdata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePerfCSV(t *testing.T, dir, subdir, content string) {
	t.Helper()
	sub := filepath.Join(dir, subdir)
	if err := os.MkdirAll(sub, 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "perf.csv"), []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
}

func row(shift int, seed int64) string {
	return fmt.Sprintf("%d, zipf, 262144, 0.99, %d, 100, 150, 120, 1000, 0.01\n", shift, seed)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writePerfCSV(t, dir, "sr3", testHeader+row(3, 1)+row(3, 2))
	writePerfCSV(t, dir, "sr4", testHeader+row(4, 1))
	writePerfCSV(t, dir, "scratch", testHeader+row(9, 9)) // wrong prefix, skipped
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0666); err != nil {
		t.Fatal(err)
	}

	var warnings []string
	f := &Files{Dir: dir, Warn: func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}}

	var n int
	seen := make(map[int]int)
	for f.Scan() {
		n++
		seen[f.Result().SampleShift]++
	}
	if err := f.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if n != 3 {
		t.Errorf("read %d records, want 3", n)
	}
	if seen[3] != 2 || seen[4] != 1 {
		t.Errorf("records per shift = %v, want map[3:2 4:1]", seen)
	}
	if seen[9] != 0 {
		t.Error("records from skipped subdirectory were read")
	}

	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %q", len(warnings), warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, "unknown subdirectory") {
			t.Errorf("warning %q does not mention unknown subdirectory", w)
		}
	}
}

func TestFilesNoWarnFunc(t *testing.T) {
	dir := t.TempDir()
	writePerfCSV(t, dir, "sr3", testHeader+row(3, 1))
	writePerfCSV(t, dir, "junk", testHeader+row(9, 9))

	// A nil Warn must not panic; the junk subdirectory is still
	// skipped.
	f := &Files{Dir: dir}
	var n int
	for f.Scan() {
		n++
	}
	if err := f.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if n != 1 {
		t.Errorf("read %d records, want 1", n)
	}
}

func TestFilesInconsistentSchema(t *testing.T) {
	dir := t.TempDir()
	writePerfCSV(t, dir, "sr3", testHeader+row(3, 1))
	writePerfCSV(t, dir, "sr4",
		"sample_shift, workload, num_blocks, zipf_theta, rand_seed, baseline_us, ghost_us, sampled_us, num_ops\n"+
			"4, zipf, 262144, 0.99, 1, 100, 150, 120, 1000\n")

	f := &Files{Dir: dir}
	for f.Scan() {
	}
	err := f.Err()
	if err == nil {
		t.Fatal("Scan drained both files, want schema mismatch error")
	}
	if !strings.Contains(err.Error(), "avg_err") {
		t.Errorf("error %q does not name the mismatched column", err)
	}
}

func TestFilesMissingDir(t *testing.T) {
	f := &Files{Dir: filepath.Join(t.TempDir(), "nope")}
	if f.Scan() {
		t.Fatal("Scan succeeded on missing directory")
	}
	if f.Err() == nil {
		t.Fatal("Err() = nil, want error")
	}
}
