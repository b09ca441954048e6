// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package travel turns a travel distance into a willingness factor.
package travel

// Rand is the random source a Mood draws from. *math/rand.Rand satisfies
// it; callers own its concurrency.
type Rand interface {
	Float64() float64
}

// Band applies to distances below Below. The factor is uniform in
// [Min, Max].
type Band struct {
	Below float64
	Min   float64
	Max   float64
}

// Mood maps a distance to a factor in [0, 1].
type Mood interface {
	Factor(distance float64) float64
}
