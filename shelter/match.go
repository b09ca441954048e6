// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shelter

import (
	"fmt"
	"time"

	"github.com/someonegg/petmatch"
	"github.com/someonegg/petmatch/travel"
	"go.uber.org/zap"
)

func (m *Matchmaker) init() {
	if m.log != nil {
		return
	}

	if m.Seed == nil {
		m.rnd = travel.NewRand(time.Now().UnixNano())
	} else {
		m.rnd = travel.NewRand(*m.Seed)
	}

	if m.Logger == nil {
		m.log = zap.NewNop()
	} else {
		m.log = m.Logger
	}
}

func (m *Matchmaker) top() int {
	if m.Top == nil {
		return DefaultTop
	}
	if *m.Top < 0 {
		return 0
	}
	return *m.Top
}

// Build constructs ds, giving its sluggish adopters the matchmaker's
// random source.
func (m *Matchmaker) Build(ds *Dataset) ([]*petmatch.Center, []petmatch.Adopter, error) {
	m.init()

	centers, adopters, err := ds.Build(m.rnd)
	if err != nil {
		return nil, nil, err
	}

	m.log.Debug("dataset built",
		zap.Int("centers", len(centers)),
		zap.Int("adopters", len(adopters)))

	return centers, adopters, nil
}

// Match ranks every center for every adopter, then picks the top
// adopters of every center. Both lists keep the input order.
func (m *Matchmaker) Match(centers []*petmatch.Center, adopters []petmatch.Adopter) Report {
	m.init()

	var summ Summary
	summ.CentersCount = len(centers)
	summ.AdoptersCount = len(adopters)
	for _, c := range centers {
		for _, n := range c.SpeciesCounts() {
			summ.AnimalsCount += n
		}
	}

	rankings := make([]AdopterRanking, len(adopters))
	for i, a := range adopters {
		rl := petmatch.ScoreCenters(a, centers)
		for _, r := range rl {
			if r.Score == 0 {
				summ.ZeroPairs++
			}
			if m.Verbose {
				m.log.Debug("scored",
					zap.String("adopter", a.Name()),
					zap.String("center", r.Name),
					zap.Float64("score", r.Score))
			}
		}
		rankings[i] = AdopterRanking{Adopter: a.Name(), Centers: rl}
	}

	top := m.top()

	adverts := make([]CenterAdvert, len(centers))
	for i, c := range centers {
		rl := petmatch.ScoreAdopters(c, adopters)
		if top < len(rl) {
			rl = rl[:top]
		}
		if m.Verbose {
			for _, r := range rl {
				m.log.Debug("advertised",
					zap.String("center", c.Name()),
					zap.String("adopter", r.Name),
					zap.Float64("score", r.Score))
			}
		}
		adverts[i] = CenterAdvert{Center: c.Name(), Adopters: rl}
	}

	m.log.Info("matched",
		zap.Int("centers", summ.CentersCount),
		zap.Int("adopters", summ.AdoptersCount),
		zap.Int("animals", summ.AnimalsCount),
		zap.Int("zero_pairs", summ.ZeroPairs))

	return Report{
		Adopters: rankings,
		Centers:  adverts,
		Summary:  summ,
	}
}

// Adopt hands out one animal of species from the center called name.
func (m *Matchmaker) Adopt(centers []*petmatch.Center, name, species string) error {
	m.init()

	c := FindCenter(centers, name)
	if c == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCenter, name)
	}

	before := c.SpeciesCount(species)
	c.Adopt(species)
	m.log.Info("adopted",
		zap.String("center", name),
		zap.String("species", species),
		zap.Int("before", before),
		zap.Int("after", c.SpeciesCount(species)))

	return nil
}

func FindCenter(centers []*petmatch.Center, name string) *petmatch.Center {
	for _, c := range centers {
		if c.Name() == name {
			return c
		}
	}
	return nil
}
