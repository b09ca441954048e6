// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adopter

import (
	"fmt"
	"math"
	"time"

	"github.com/someonegg/petmatch"
	"github.com/someonegg/petmatch/travel"
)

func newPerson(name, desired string) (person, error) {
	if name == "" {
		return person{}, petmatch.Invalid("name", "must be a non-empty string")
	}
	if desired == "" {
		return person{}, petmatch.Invalid("desired_species", "must be a non-empty string")
	}
	return person{name: name, desired: desired}, nil
}

func copySpecies(field string, species []string) ([]string, error) {
	ss := make([]string, len(species))
	for i, s := range species {
		if s == "" {
			return nil, petmatch.Invalid(field, fmt.Sprintf("item %d must be a non-empty string", i))
		}
		ss[i] = s
	}
	return ss, nil
}

func NewPlain(name, desired string) (*Plain, error) {
	p, err := newPerson(name, desired)
	if err != nil {
		return nil, err
	}
	return &Plain{p}, nil
}

// NewFlexible creates an adopter that would also take any of considered.
func NewFlexible(name, desired string, considered ...string) (*Flexible, error) {
	p, err := newPerson(name, desired)
	if err != nil {
		return nil, err
	}
	cs, err := copySpecies("considered_species", considered)
	if err != nil {
		return nil, err
	}
	return &Flexible{person: p, considered: cs}, nil
}

func NewFearful(name, desired, feared string) (*Fearful, error) {
	p, err := newPerson(name, desired)
	if err != nil {
		return nil, err
	}
	if feared == "" {
		return nil, petmatch.Invalid("feared_species", "must be a non-empty string")
	}
	return &Fearful{person: p, feared: feared}, nil
}

// NewAllergic creates an adopter who won't visit a center holding any of
// allergens.
func NewAllergic(name, desired string, allergens ...string) (*Allergic, error) {
	p, err := newPerson(name, desired)
	if err != nil {
		return nil, err
	}
	as, err := copySpecies("allergic_species", allergens)
	if err != nil {
		return nil, err
	}
	return &Allergic{person: p, allergens: as}, nil
}

// NewMedicatedAllergic creates an allergic adopter whose medicine works
// with the given effectiveness, a fraction in [0, 1], per species.
func NewMedicatedAllergic(name, desired string, allergens []string, medicine map[string]float64) (*MedicatedAllergic, error) {
	p, err := newPerson(name, desired)
	if err != nil {
		return nil, err
	}
	as, err := copySpecies("allergic_species", allergens)
	if err != nil {
		return nil, err
	}
	ms := make(map[string]float64, len(medicine))
	for s, e := range medicine {
		if s == "" {
			return nil, petmatch.Invalid("medicine_effectiveness", "species must be non-empty strings")
		}
		if math.IsNaN(e) || e < 0 || e > 1 {
			return nil, petmatch.Invalid("medicine_effectiveness", fmt.Sprintf("%s effectiveness %v is outside [0, 1]", s, e))
		}
		ms[s] = e
	}
	return &MedicatedAllergic{person: p, allergens: as, medicine: ms}, nil
}

// NewSluggish creates an adopter living at location. rnd drives the
// distance penalty; nil means a time-seeded source.
func NewSluggish(name, desired string, location petmatch.Location, rnd travel.Rand) (*Sluggish, error) {
	p, err := newPerson(name, desired)
	if err != nil {
		return nil, err
	}
	if !location.Finite() {
		return nil, petmatch.Invalid("location", fmt.Sprintf("%v must contain finite numbers", location))
	}
	if rnd == nil {
		rnd = travel.NewRand(time.Now().UnixNano())
	}
	return &Sluggish{
		person:   p,
		location: location,
		mood:     travel.NewMood(travel.DefaultBands, rnd),
	}, nil
}
