// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfdata

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const testHeader = "sample_shift, workload, num_blocks, zipf_theta, rand_seed, " +
	"baseline_us, ghost_us, sampled_us, num_ops, avg_err\n"

func TestReader(t *testing.T) {
	in := testHeader +
		"4, zipf, 262144, 0.99, 1, 100, 150, 120, 1000, 0.01\n" +
		"4, unif, 262144, 0, 2, 200, 260, 230, 2000, 0.02\n"
	r, err := NewReader(strings.NewReader(in), "perf.csv")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	wantMetrics := []string{"baseline_us", "ghost_us", "sampled_us", "num_ops", "avg_err"}
	if !reflect.DeepEqual(r.Metrics(), wantMetrics) {
		t.Fatalf("Metrics() = %v, want %v", r.Metrics(), wantMetrics)
	}

	var got []Record
	for r.Scan() {
		rec := *r.Result()
		rec.Metrics = append([]float64(nil), rec.Metrics...)
		got = append(got, rec)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	want := []Record{
		{
			Key:      Key{SampleShift: 4, Workload: "zipf", NumBlocks: 262144, ZipfTheta: 0.99},
			RandSeed: 1,
			Metrics:  []float64{100, 150, 120, 1000, 0.01},
		},
		{
			Key:      Key{SampleShift: 4, Workload: "unif", NumBlocks: 262144, ZipfTheta: 0},
			RandSeed: 2,
			Metrics:  []float64{200, 260, 230, 2000, 0.02},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("records:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestReaderMissingColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
		col    string
	}{
		{"noWorkload", "sample_shift, num_blocks, zipf_theta, rand_seed, baseline_us, ghost_us, sampled_us, num_ops\n", "workload"},
		{"noSeed", "sample_shift, workload, num_blocks, zipf_theta, baseline_us, ghost_us, sampled_us, num_ops\n", "rand_seed"},
		{"noGhost", "sample_shift, workload, num_blocks, zipf_theta, rand_seed, baseline_us, sampled_us, num_ops\n", "ghost_us"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(test.header), "input/perf.csv")
			var serr *SchemaError
			if !errors.As(err, &serr) {
				t.Fatalf("NewReader error = %v, want *SchemaError", err)
			}
			if serr.Column != test.col {
				t.Errorf("error names column %q, want %q", serr.Column, test.col)
			}
			if serr.FileName != "input/perf.csv" {
				t.Errorf("error names file %q, want input/perf.csv", serr.FileName)
			}
		})
	}
}

func TestReaderMalformedValue(t *testing.T) {
	in := testHeader +
		"4, zipf, 262144, 0.99, 1, 100, fast, 120, 1000, 0.01\n"
	r, err := NewReader(strings.NewReader(in), "perf.csv")
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Scan() {
		t.Fatal("Scan succeeded on malformed row")
	}
	var serr *SchemaError
	if !errors.As(r.Err(), &serr) {
		t.Fatalf("Err() = %v, want *SchemaError", r.Err())
	}
	if serr.Column != "ghost_us" {
		t.Errorf("error names column %q, want ghost_us", serr.Column)
	}
	if serr.Line != 2 {
		t.Errorf("error names line %d, want 2", serr.Line)
	}
}
