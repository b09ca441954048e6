// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package travel

import (
	"math"
	"math/rand"
)

// DefaultBands rules:
//
//	[0, 1): 1.0
//	[1, 3): 0.7-0.9
//	[3, 5): 0.5-0.7
//	[5, +Inf): 0.1-0.5
var DefaultBands = []Band{
	{Below: 1, Min: 1.0, Max: 1.0},
	{Below: 3, Min: 0.7, Max: 0.9},
	{Below: 5, Min: 0.5, Max: 0.7},
	{Below: math.Inf(1), Min: 0.1, Max: 0.5},
}

type bandMood struct {
	bands []Band
	rnd   Rand
}

// NewMood returns a Mood over bands, which must be sorted by Below. A
// distance past the last band gets the last band's factor.
func NewMood(bands []Band, rnd Rand) Mood {
	bs := make([]Band, len(bands))
	copy(bs, bands)
	return &bandMood{
		bands: bs,
		rnd:   rnd,
	}
}

func (m *bandMood) Factor(distance float64) float64 {
	if len(m.bands) == 0 {
		return 1.0
	}
	for _, b := range m.bands {
		if distance < b.Below {
			return Uniform(m.rnd, b.Min, b.Max)
		}
	}
	last := m.bands[len(m.bands)-1]
	return Uniform(m.rnd, last.Min, last.Max)
}

// Uniform draws from [a, b). A degenerate range doesn't touch rnd.
func Uniform(rnd Rand, a, b float64) float64 {
	if a == b {
		return a
	}
	return a + (b-a)*rnd.Float64()
}

func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
