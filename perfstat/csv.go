// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfstat

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// WriteCSV writes t in CSV form, cols as the header row. Cell
// formatting is deterministic, so identical tables always produce
// byte-identical output.
func WriteCSV(w io.Writer, t *table.Table, cols []string) error {
	tab := make([][]string, 0, t.Len()+1)
	tab = append(tab, cols)
	for i := 0; i < t.Len(); i++ {
		row := make([]string, len(cols))
		for j, col := range cols {
			s, err := cell(t, col, i)
			if err != nil {
				return err
			}
			row[j] = s
		}
		tab = append(tab, row)
	}
	csvw := csv.NewWriter(w)
	csvw.WriteAll(tab)
	csvw.Flush()
	return csvw.Error()
}

// WriteCSVFile writes t to path, overwriting any previous output.
func WriteCSVFile(path string, t *table.Table, cols []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, t, cols); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func cell(t *table.Table, col string, i int) (string, error) {
	switch c := t.Column(col).(type) {
	case []int:
		return strconv.Itoa(c[i]), nil
	case []int64:
		return strconv.FormatInt(c[i], 10), nil
	case []float64:
		return strconv.FormatFloat(c[i], 'g', -1, 64), nil
	case []string:
		return c[i], nil
	case nil:
		return "", fmt.Errorf("no column %q in table", col)
	default:
		return "", fmt.Errorf("column %q has unsupported type %T", col, c)
	}
}

// RawCols returns the output column order of the raw table:
// the five key columns followed by the metrics.
func (ts *Tables) RawCols() []string {
	cols := append(append([]string(nil), GroupCols...), "rand_seed")
	return append(cols, ts.Metrics...)
}

// AggCols returns the output column order of the mean and std
// tables: the four grouping columns followed by the metrics.
func (ts *Tables) AggCols() []string {
	return append(append([]string(nil), GroupCols...), ts.Metrics...)
}

// WriteFiles writes perf_raw.csv, perf_mean.csv, and perf_std.csv
// under dir.
func (ts *Tables) WriteFiles(dir string) error {
	for _, out := range []struct {
		name string
		t    *table.Table
		cols []string
	}{
		{"perf_raw.csv", ts.Raw, ts.RawCols()},
		{"perf_mean.csv", ts.Mean, ts.AggCols()},
		{"perf_std.csv", ts.Std, ts.AggCols()},
	} {
		if err := WriteCSVFile(dir+"/"+out.name, out.t, out.cols); err != nil {
			return err
		}
	}
	return nil
}

// ReadCSV reads a table previously written by WriteCSV. The key
// columns are typed per the schema (sample_shift int, workload
// string, num_blocks int64, zipf_theta float64, and rand_seed int64
// when present); every remaining column is float64. It returns the
// table and the metric column names.
func ReadCSV(r io.Reader, fileName string) (*table.Table, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v", fileName, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file, header row required", fileName)
	}
	header, rows := rows[0], rows[1:]

	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}
	for _, col := range GroupCols {
		if _, ok := pos[col]; !ok {
			return nil, nil, fmt.Errorf("%s: missing column %q", fileName, col)
		}
	}
	_, hasSeed := pos["rand_seed"]

	n := len(rows)
	shifts := make([]int, n)
	workloads := make([]string, n)
	blocks := make([]int64, n)
	thetas := make([]float64, n)
	var seeds []int64
	if hasSeed {
		seeds = make([]int64, n)
	}
	var metrics []string
	for _, name := range header {
		switch name {
		case "sample_shift", "workload", "num_blocks", "zipf_theta", "rand_seed":
		default:
			metrics = append(metrics, name)
		}
	}
	cols := make([][]float64, len(metrics))
	for i := range cols {
		cols[i] = make([]float64, n)
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, nil, fmt.Errorf("%s:%d: %d fields, want %d", fileName, i+2, len(row), len(header))
		}
		if shifts[i], err = strconv.Atoi(row[pos["sample_shift"]]); err != nil {
			return nil, nil, fmt.Errorf("%s:%d: column %q: %v", fileName, i+2, "sample_shift", err)
		}
		workloads[i] = row[pos["workload"]]
		if blocks[i], err = strconv.ParseInt(row[pos["num_blocks"]], 10, 64); err != nil {
			return nil, nil, fmt.Errorf("%s:%d: column %q: %v", fileName, i+2, "num_blocks", err)
		}
		if thetas[i], err = strconv.ParseFloat(row[pos["zipf_theta"]], 64); err != nil {
			return nil, nil, fmt.Errorf("%s:%d: column %q: %v", fileName, i+2, "zipf_theta", err)
		}
		if hasSeed {
			if seeds[i], err = strconv.ParseInt(row[pos["rand_seed"]], 10, 64); err != nil {
				return nil, nil, fmt.Errorf("%s:%d: column %q: %v", fileName, i+2, "rand_seed", err)
			}
		}
		for j, name := range metrics {
			if cols[j][i], err = strconv.ParseFloat(row[pos[name]], 64); err != nil {
				return nil, nil, fmt.Errorf("%s:%d: column %q: %v", fileName, i+2, name, err)
			}
		}
	}

	tb := new(table.Builder).
		Add("sample_shift", shifts).
		Add("workload", workloads).
		Add("num_blocks", blocks).
		Add("zipf_theta", thetas)
	if hasSeed {
		tb.Add("rand_seed", seeds)
	}
	for i, name := range metrics {
		tb.Add(name, cols[i])
	}
	return tb.Done(), metrics, nil
}

// ReadCSVFile reads one aggregate CSV from path.
func ReadCSVFile(path string) (*table.Table, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadCSV(f, path)
}
