// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfdata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPrefix is the scenario subdirectory prefix the benchmark
// harness uses ("sr" + sample rate).
const DefaultPrefix = "sr"

// A Files reads benchmark records from every perf.csv under a results
// directory.
//
// The expected layout is <Dir>/<subdir>/perf.csv, one subdirectory
// per benchmark scenario. Subdirectories whose name does not start
// with Prefix are not an error: they are reported through Warn and
// skipped, so stray files never abort an aggregation.
type Files struct {
	// Dir is the results directory to scan.
	Dir string

	// Prefix is the required subdirectory name prefix.
	// If empty, DefaultPrefix is used.
	Prefix string

	// Warn is called for each skipped subdirectory. If nil,
	// skipped entries are silently ignored.
	Warn func(format string, args ...interface{})

	// inputs is the remaining file paths, or nil before the first
	// Scan. Note that this distinguishes nil from length 0.
	inputs []string

	file    *os.File
	reader  *Reader
	metrics []string
	err     error
}

// init does first-use initialization of f.
func (f *Files) init() {
	f.inputs = []string{}
	prefix := f.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		f.err = err
		return
	}
	// os.ReadDir returns entries sorted by name, which keeps the
	// scan order (and any error) deterministic.
	for _, ent := range entries {
		if !ent.IsDir() || !strings.HasPrefix(ent.Name(), prefix) {
			f.warnf("unknown subdirectory: %s", filepath.Join(f.Dir, ent.Name()))
			continue
		}
		f.inputs = append(f.inputs, filepath.Join(f.Dir, ent.Name(), "perf.csv"))
	}
}

func (f *Files) warnf(format string, args ...interface{}) {
	if f.Warn != nil {
		f.Warn(format, args...)
	}
}

// Scan advances to the next record across the file sequence and
// reports whether a record was read. The caller should use Result to
// get the record and, once Scan returns false, Err to check for
// errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
		if f.err != nil {
			return false
		}
	}

	for {
		if f.reader == nil {
			if len(f.inputs) == 0 {
				return false
			}
			path := f.inputs[0]
			f.inputs = f.inputs[1:]

			file, err := os.Open(path)
			if err != nil {
				f.err = err
				return false
			}
			rd, err := NewReader(file, path)
			if err != nil {
				file.Close()
				f.err = err
				return false
			}
			// All files must agree on the measured columns;
			// otherwise the merged table would be ragged.
			if f.metrics == nil {
				f.metrics = rd.Metrics()
			} else if err := sameMetrics(f.metrics, rd.Metrics(), path); err != nil {
				file.Close()
				f.err = err
				return false
			}
			f.file, f.reader = file, rd
		}

		if f.reader.Scan() {
			return true
		}
		err := f.reader.Err()
		f.file.Close()
		f.file, f.reader = nil, nil
		if err != nil {
			f.err = err
			return false
		}
	}
}

// sameMetrics checks that a file declares the same measured columns,
// in the same order, as the files before it. Record metric values are
// positional, so order matters as much as presence.
func sameMetrics(want, got []string, path string) error {
	for i, name := range want {
		if i >= len(got) {
			return &SchemaError{path, 0, name, "measured column missing from this file"}
		}
		if got[i] != name {
			return &SchemaError{path, 0, got[i],
				fmt.Sprintf("measured column out of order: want %q", name)}
		}
	}
	if len(got) > len(want) {
		return &SchemaError{path, 0, got[len(want)], "measured column not present in earlier files"}
	}
	return nil
}

// Result returns the record read by the last call to Scan. The
// returned Record may be reused by the next Scan; callers that retain
// records must copy them.
func (f *Files) Result() *Record {
	return f.reader.Result()
}

// Metrics returns the measured column names shared by all files read
// so far. It is valid after the first successful Scan.
func (f *Files) Metrics() []string {
	return f.metrics
}

// Err returns the error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}
