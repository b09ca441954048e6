// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package petmatch

import "fmt"

// Center is an adoption center: a named location holding animals.
//
// Every stored count is at least 1. Center is not safe for concurrent use.
// Adopt must not run while the same center is being scored.
type Center struct {
	name     string
	location Location
	species  map[string]int
}

// NewCenter copies species, dropping zero counts.
func NewCenter(name string, species map[string]int, location Location) (*Center, error) {
	if name == "" {
		return nil, Invalid("name", "must be a non-empty string")
	}
	if !location.Finite() {
		return nil, Invalid("location", fmt.Sprintf("%v must contain finite numbers", location))
	}

	counts := make(map[string]int, len(species))
	for s, n := range species {
		if s == "" {
			return nil, Invalid("species", "names must be non-empty strings")
		}
		if n < 0 {
			return nil, Invalid("species", fmt.Sprintf("%s count %d is negative", s, n))
		}
		if n > 0 {
			counts[s] = n
		}
	}

	return &Center{
		name:     name,
		location: location,
		species:  counts,
	}, nil
}

func (c *Center) Name() string {
	return c.name
}

func (c *Center) Location() Location {
	return c.location
}

// SpeciesCount returns how many animals of species the center holds, 0 if
// it holds none.
func (c *Center) SpeciesCount(species string) int {
	return c.species[species]
}

// Has reports whether the center holds at least one animal of species.
func (c *Center) Has(species string) bool {
	_, ok := c.species[species]
	return ok
}

// SpeciesCounts returns a copy of the inventory.
func (c *Center) SpeciesCounts() map[string]int {
	counts := make(map[string]int, len(c.species))
	for s, n := range c.species {
		counts[s] = n
	}
	return counts
}

// Adopt hands out one animal of species. Adopting a species the center
// doesn't hold is a no-op.
func (c *Center) Adopt(species string) {
	n, ok := c.species[species]
	if !ok {
		return
	}
	if n <= 1 {
		delete(c.species, species)
		return
	}
	c.species[species] = n - 1
}

func (c *Center) String() string {
	return c.name + ": " + c.location.String() + "; " + fmt.Sprint(c.species)
}
