// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hitrate models hit-rate curves measured by the ghost-cache
// benchmark and derives the motivation metric from them.
//
// A hit-rate curve samples the fraction of accesses served from
// cache at increasing cache sizes. The motivation metric is the
// normalized negative derivative of the corresponding miss-rate
// curve: it is large where additional cache capacity still pays off
// and approaches zero where returns diminish.
package hitrate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// A Point is one sample of a hit-rate curve.
type Point struct {
	NumBlocks float64 // cache size, in blocks
	HitRate   float64 // in [0,1]; NaN when the input marked it "nan"
}

// A Series is a hit-rate curve, ordered by strictly increasing
// NumBlocks.
type Series []Point

// ReadSeries reads a two-column (num_blocks, hit_rate) CSV with a
// header row. The string "nan" is recognized as a missing hit rate.
// A series whose sizes are not strictly increasing is rejected.
func ReadSeries(r io.Reader, fileName string) (Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %v", fileName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file, header row required", fileName)
	}
	header, rows := rows[0], rows[1:]
	sizeCol, hitCol := -1, -1
	for i, name := range header {
		switch name {
		case "num_blocks":
			sizeCol = i
		case "hit_rate":
			hitCol = i
		}
	}
	if sizeCol < 0 {
		return nil, fmt.Errorf("%s: missing column %q", fileName, "num_blocks")
	}
	if hitCol < 0 {
		return nil, fmt.Errorf("%s: missing column %q", fileName, "hit_rate")
	}

	s := make(Series, 0, len(rows))
	for i, row := range rows {
		size, err := strconv.ParseFloat(row[sizeCol], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: column %q: %v", fileName, i+2, "num_blocks", err)
		}
		// ParseFloat accepts "nan" directly, matching the
		// benchmark's missing-value marker.
		hit, err := strconv.ParseFloat(row[hitCol], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: column %q: %v", fileName, i+2, "hit_rate", err)
		}
		if len(s) > 0 && size <= s[len(s)-1].NumBlocks {
			return nil, fmt.Errorf("%s:%d: num_blocks %v not strictly increasing", fileName, i+2, size)
		}
		s = append(s, Point{size, hit})
	}
	return s, nil
}

// LoadScenario reads the ghost and sampled hit-rate curves of one
// named scenario from <dir>/<name>/hit_rate_{ghost,sampled}.csv.
func LoadScenario(dir, name string) (ghost, sampled Series, err error) {
	ghost, err = readSeriesFile(filepath.Join(dir, name, "hit_rate_ghost.csv"))
	if err != nil {
		return nil, nil, err
	}
	sampled, err = readSeriesFile(filepath.Join(dir, name, "hit_rate_sampled.csv"))
	if err != nil {
		return nil, nil, err
	}
	return ghost, sampled, nil
}

func readSeriesFile(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeries(f, path)
}

// Sizes returns the size coordinate of every sample, scaled from
// blocks to the unit defined by cfg (gigabytes by default).
func (s Series) Sizes(cfg Config) []float64 {
	sizes := make([]float64, len(s))
	for i, p := range s {
		sizes[i] = cfg.blocksToUnit(p.NumBlocks)
	}
	return sizes
}

// MissRates returns the miss rate of every sample, in percent.
func (s Series) MissRates() []float64 {
	rates := make([]float64, len(s))
	for i, p := range s {
		rates[i] = (1 - p.HitRate) * 100
	}
	return rates
}
