// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perfdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// A SchemaError reports a missing or malformed column in a perf.csv
// file. It names the offending file so the user can fix the input.
type SchemaError struct {
	FileName string
	Line     int
	Column   string
	Msg      string
}

// Pos returns the file name and line of the error. Line is 0 when the
// problem is with the header rather than a data row.
func (e *SchemaError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SchemaError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: column %q: %s", e.FileName, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s:%d: column %q: %s", e.FileName, e.Line, e.Column, e.Msg)
}

// A Reader reads benchmark trial records from a single perf.csv.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next record, Result to retrieve it, and Err once Scan returns
// false. A Reader retains ownership of the Record it returns; callers
// must copy anything they need to keep.
type Reader struct {
	cr       *csv.Reader
	fileName string

	metrics   []string // metric column names, in input order
	keyIdx    map[string]int
	metricIdx []int

	line   int
	result Record
	err    error
}

// NewReader constructs a Reader for one perf.csv. It consumes the
// header row immediately; a header missing any of the key columns or
// the required measured columns is a *SchemaError.
func NewReader(r io.Reader, fileName string) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &SchemaError{fileName, 0, "", "empty file, header row required"}
		}
		return nil, fmt.Errorf("%s: reading header: %v", fileName, err)
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}
	keyIdx := make(map[string]int, len(KeyCols))
	for _, col := range KeyCols {
		i, ok := pos[col]
		if !ok {
			return nil, &SchemaError{fileName, 0, col, "missing required key column"}
		}
		keyIdx[col] = i
	}
	for _, col := range RequiredMetrics {
		if _, ok := pos[col]; !ok {
			return nil, &SchemaError{fileName, 0, col, "missing required measured column"}
		}
	}

	// Every non-key column is a measured field.
	rd := &Reader{cr: cr, fileName: fileName, keyIdx: keyIdx, line: 1}
	for i, name := range header {
		if _, isKey := keyIdx[name]; isKey {
			continue
		}
		rd.metrics = append(rd.metrics, name)
		rd.metricIdx = append(rd.metricIdx, i)
	}
	return rd, nil
}

// Metrics returns the names of the measured columns, in input order.
func (r *Reader) Metrics() []string {
	return r.metrics
}

// Scan advances the Reader to the next record and reports whether one
// was read. When Scan returns false the caller should consult Err.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	row, err := r.cr.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = fmt.Errorf("%s: %v", r.fileName, err)
		return false
	}
	r.line++
	if r.err = r.parseRow(row); r.err != nil {
		return false
	}
	return true
}

func (r *Reader) parseRow(row []string) error {
	badValue := func(col string, err error) error {
		return &SchemaError{r.fileName, r.line, col, fmt.Sprintf("malformed value: %v", err)}
	}

	shift, err := strconv.Atoi(row[r.keyIdx["sample_shift"]])
	if err != nil {
		return badValue("sample_shift", err)
	}
	blocks, err := strconv.ParseInt(row[r.keyIdx["num_blocks"]], 10, 64)
	if err != nil {
		return badValue("num_blocks", err)
	}
	theta, err := strconv.ParseFloat(row[r.keyIdx["zipf_theta"]], 64)
	if err != nil {
		return badValue("zipf_theta", err)
	}
	seed, err := strconv.ParseInt(row[r.keyIdx["rand_seed"]], 10, 64)
	if err != nil {
		return badValue("rand_seed", err)
	}

	r.result.SampleShift = shift
	r.result.Workload = row[r.keyIdx["workload"]]
	r.result.NumBlocks = blocks
	r.result.ZipfTheta = theta
	r.result.RandSeed = seed

	r.result.Metrics = r.result.Metrics[:0]
	for i, idx := range r.metricIdx {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			return badValue(r.metrics[i], err)
		}
		r.result.Metrics = append(r.result.Metrics, v)
	}
	return nil
}

// Result returns the record read by the last call to Scan.
func (r *Reader) Result() *Record {
	return &r.result
}

// Err returns the error that stopped Scan, if any.
func (r *Reader) Err() error {
	return r.err
}
