// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adopter

import (
	"math"

	"github.com/someonegg/petmatch"
)

func (a *Plain) Score(c *petmatch.Center) float64 {
	return petmatch.BaseScore(a.desired, c)
}

func (a *Flexible) Score(c *petmatch.Center) float64 {
	others := 0
	for _, s := range a.considered {
		others += c.SpeciesCount(s)
	}
	base := petmatch.BaseScore(a.desired, c)
	return math.Max(0.0, base+considerWeight*float64(others))
}

func (a *Fearful) Score(c *petmatch.Center) float64 {
	feared := c.SpeciesCount(a.feared)
	base := petmatch.BaseScore(a.desired, c)
	return math.Max(0.0, base-fearWeight*float64(feared))
}

func (a *Allergic) Score(c *petmatch.Center) float64 {
	for _, s := range a.allergens {
		if c.Has(s) {
			return 0.0
		}
	}
	return petmatch.BaseScore(a.desired, c)
}

// Score weakens the base score by the least effective medicine among
// the species the center holds. Every held species with a medicine entry
// counts, whether or not it is listed as an allergen.
func (a *MedicatedAllergic) Score(c *petmatch.Center) float64 {
	lowest := 1.0
	for s, e := range a.medicine {
		if c.Has(s) {
			lowest = math.Min(lowest, e)
		}
	}
	base := petmatch.BaseScore(a.desired, c)
	return math.Max(0.0, lowest*base)
}

// Score draws a fresh factor on every call for centers at distance 1 or
// more, so repeated calls may disagree.
func (a *Sluggish) Score(c *petmatch.Center) float64 {
	d := a.location.Distance(c.Location())
	base := petmatch.BaseScore(a.desired, c)
	return a.mood.Factor(d) * base
}
