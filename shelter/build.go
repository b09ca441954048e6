// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shelter

import (
	"fmt"

	"github.com/someonegg/petmatch"
	"github.com/someonegg/petmatch/adopter"
	"github.com/someonegg/petmatch/travel"
)

// Build constructs every center and adopter of ds, stopping at the first
// invalid one. Sluggish adopters share rnd; nil gives each its own
// time-seeded source.
func (ds *Dataset) Build(rnd travel.Rand) ([]*petmatch.Center, []petmatch.Adopter, error) {
	centers, err := ds.buildCenters()
	if err != nil {
		return nil, nil, err
	}
	adopters, err := ds.buildAdopters(rnd)
	if err != nil {
		return nil, nil, err
	}
	return centers, adopters, nil
}

func (ds *Dataset) buildCenters() ([]*petmatch.Center, error) {
	centers := make([]*petmatch.Center, len(ds.Centers))
	names := make(map[string]bool, len(ds.Centers))

	for i, cs := range ds.Centers {
		if names[cs.Name] {
			return nil, fmt.Errorf("center %d (%s): %w", i, cs.Name,
				petmatch.Invalid("name", "duplicated"))
		}
		names[cs.Name] = true

		c, err := petmatch.NewCenter(cs.Name, cs.Species, cs.Location.Location())
		if err != nil {
			return nil, fmt.Errorf("center %d (%s): %w", i, cs.Name, err)
		}
		centers[i] = c
	}

	return centers, nil
}

func (ds *Dataset) buildAdopters(rnd travel.Rand) ([]petmatch.Adopter, error) {
	adopters := make([]petmatch.Adopter, len(ds.Adopters))

	for i := range ds.Adopters {
		a, err := ds.Adopters[i].build(rnd)
		if err != nil {
			return nil, fmt.Errorf("adopter %d (%s): %w", i, ds.Adopters[i].Name, err)
		}
		adopters[i] = a
	}

	return adopters, nil
}

func (s *AdopterSpec) build(rnd travel.Rand) (petmatch.Adopter, error) {
	var (
		a   petmatch.Adopter
		err error
	)

	switch s.Kind {
	case "", KindAdopter:
		a, err = adopter.NewPlain(s.Name, s.Desires)
	case KindFlexible:
		a, err = adopter.NewFlexible(s.Name, s.Desires, s.Considers...)
	case KindFearful:
		a, err = adopter.NewFearful(s.Name, s.Desires, s.Fears)
	case KindAllergic:
		a, err = adopter.NewAllergic(s.Name, s.Desires, s.AllergicTo...)
	case KindMedicated:
		a, err = adopter.NewMedicatedAllergic(s.Name, s.Desires, s.AllergicTo, s.Medicine)
	case KindSluggish:
		if s.Location == nil {
			return nil, petmatch.Invalid("location", "is required for a sluggish adopter")
		}
		a, err = adopter.NewSluggish(s.Name, s.Desires, s.Location.Location(), rnd)
	default:
		return nil, petmatch.Invalid("kind", fmt.Sprintf("unknown adopter kind %q", s.Kind))
	}

	// a holds a typed nil on failure
	if err != nil {
		return nil, err
	}
	return a, nil
}
