// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package petmatch scores adopters against adoption centers and ranks
// either side of the pairing by that score.
package petmatch

import (
	"fmt"
	"math"
	"strconv"
)

// Adopter is anyone who can rate an adoption center.
//
// Score must never be negative. Implementations may be non-deterministic
// (see adopter.Sluggish), so callers should score each pair once.
type Adopter interface {
	Name() string
	DesiredSpecies() string
	Score(c *Center) float64
}

type Location struct {
	X float64
	Y float64
}

// Distance returns the euclidean distance between l and o.
func (l Location) Distance(o Location) float64 {
	return math.Hypot(o.X-l.X, o.Y-l.Y)
}

func (l Location) Finite() bool {
	return isFinite(l.X) && isFinite(l.Y)
}

func (l Location) String() string {
	return "(" + formatFloat(l.X) + ", " + formatFloat(l.Y) + ")"
}

// Ranked is one scored entry of a ranking.
type Ranked struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// ValidationError reports a construction argument of the wrong shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// BaseScore is the plain adopter formula: one point per animal of the
// desired species.
func BaseScore(desired string, c *Center) float64 {
	return math.Max(0.0, 1*float64(c.SpeciesCount(desired)))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// formatFloat always keeps a fractional part, 1 -> "1.0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == 'N' || s[i] == 'I' {
			return s
		}
	}
	return s + ".0"
}
