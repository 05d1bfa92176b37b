// Copyright 2023 The gcache Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hitrate

import "math"

// Defaults for Config. The benchmark simulates 4 KiB blocks and the
// charts use a gigabyte size axis.
const (
	DefaultWindowLen  = 2
	DefaultBlockBytes = 4096
	DefaultUnitBytes  = 1 << 30
)

// A Config parameterizes the motivation metric. The zero Config uses
// the defaults above.
type Config struct {
	// WindowLen is the number of samples on each side of the
	// center point of the finite-difference window. The window
	// spans 2·WindowLen samples, which trades resolution for
	// robustness against single-sample noise.
	WindowLen int

	// BlockBytes is the size of one cache block.
	BlockBytes int64

	// UnitBytes is the divisor of the output size axis
	// (e.g. 1<<30 for gigabytes).
	UnitBytes int64
}

func (c Config) window() int {
	if c.WindowLen <= 0 {
		return DefaultWindowLen
	}
	return c.WindowLen
}

func (c Config) blocksToUnit(blocks float64) float64 {
	bb, ub := c.BlockBytes, c.UnitBytes
	if bb <= 0 {
		bb = DefaultBlockBytes
	}
	if ub <= 0 {
		ub = DefaultUnitBytes
	}
	return blocks * float64(bb) / float64(ub)
}

// Motivation estimates, at each interior sample of s, the normalized
// rate of decrease of the miss rate as cache size grows:
//
//	M = −m′ / m
//
// where m is the miss rate (1 − hit rate) and m′ is a centered
// finite-difference estimate over the window span. M is a proxy for
// the marginal value of additional cache capacity.
//
// The returned slices are aligned: sizes[i] is the center sample's
// size in cfg's unit and metric[i] the estimate there. Both have
// length max(0, len(s) − 2·WindowLen), so series from different
// scenarios stay index-aligned for overlay plotting. A center point
// with exactly zero miss rate yields NaN at its index; the rest of
// the curve is unaffected. Motivation is deterministic and never
// fails: a series shorter than the window simply yields empty output.
func Motivation(s Series, cfg Config) (sizes, metric []float64) {
	w := cfg.window()
	if len(s) < 2*w+1 {
		return nil, nil
	}
	sizes = make([]float64, 0, len(s)-2*w)
	metric = make([]float64, 0, len(s)-2*w)
	for i := w; i < len(s)-w; i++ {
		left, right, curr := s[i-w], s[i+w], s[i]
		leftMiss := 1 - left.HitRate
		rightMiss := 1 - right.HitRate
		currMiss := 1 - curr.HitRate
		deriv := (rightMiss - leftMiss) / cfg.blocksToUnit(right.NumBlocks-left.NumBlocks)
		m := math.NaN()
		if currMiss != 0 {
			m = -deriv / currMiss
		}
		sizes = append(sizes, cfg.blocksToUnit(curr.NumBlocks))
		metric = append(metric, m)
	}
	return sizes, metric
}
