// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shelter uses petmatch to rank a whole dataset of centers and
// adopters.
package shelter

import (
	"errors"

	"github.com/someonegg/petmatch"
	"github.com/someonegg/petmatch/travel"
	"go.uber.org/zap"
)

// Adopter kinds.
const (
	KindAdopter   = "adopter"
	KindFlexible  = "flexible"
	KindFearful   = "fearful"
	KindAllergic  = "allergic"
	KindMedicated = "medicated"
	KindSluggish  = "sluggish"
)

var ErrUnknownCenter = errors.New("unknown center")

type Dataset struct {
	Centers  []CenterSpec  `json:"centers" yaml:"centers"`
	Adopters []AdopterSpec `json:"adopters" yaml:"adopters"`
}

type CenterSpec struct {
	Name     string         `json:"name" yaml:"name"`
	Species  map[string]int `json:"species" yaml:"species"`
	Location Point          `json:"location" yaml:"location"`
}

// AdopterSpec describes one adopter. Only the fields of its Kind are
// read; an empty Kind means a plain adopter.
type AdopterSpec struct {
	Kind       string             `json:"kind,omitempty" yaml:"kind,omitempty"`
	Name       string             `json:"name" yaml:"name"`
	Desires    string             `json:"desires" yaml:"desires"`
	Considers  SpeciesList        `json:"considers,omitempty" yaml:"considers,omitempty"`
	Fears      string             `json:"fears,omitempty" yaml:"fears,omitempty"`
	AllergicTo SpeciesList        `json:"allergic_to,omitempty" yaml:"allergic_to,omitempty"`
	Medicine   map[string]float64 `json:"medicine,omitempty" yaml:"medicine,omitempty"`
	Location   *Point             `json:"location,omitempty" yaml:"location,omitempty"`
}

// SpeciesList decodes from either a list of strings or a lone string.
type SpeciesList []string

// Point decodes from exactly two numbers, [x, y].
type Point [2]float64

func (p Point) Location() petmatch.Location {
	return petmatch.Location{X: p[0], Y: p[1]}
}

const DefaultTop = 4

type Matchmaker struct {
	// Top is how many adopters each center advertises to. It is read on
	// every Match.
	Top *int `json:"top"`

	// Seed fixes the random source of sluggish adopters. When nil a
	// time-based seed is used. Seed and Logger are read once, on the
	// first Build, Match or Adopt.
	Seed *int64 `json:"seed"`

	// When set, every scored pair is logged at debug level.
	Verbose bool `json:"vv"`

	Logger *zap.Logger `json:"-"`

	rnd travel.Rand
	log *zap.Logger
}

type Report struct {
	Adopters []AdopterRanking `json:"adopters"`
	Centers  []CenterAdvert   `json:"centers"`
	Summary  Summary          `json:"summary"`
}

// AdopterRanking is every center, best first, for one adopter.
type AdopterRanking struct {
	Adopter string            `json:"adopter"`
	Centers []petmatch.Ranked `json:"centers"`
}

// CenterAdvert is the top adopters for one center.
type CenterAdvert struct {
	Center   string            `json:"center"`
	Adopters []petmatch.Ranked `json:"adopters"`
}

type Summary struct {
	CentersCount  int `json:"centers"`
	AdoptersCount int `json:"adopters"`
	AnimalsCount  int `json:"animals"`
	// Pairs nobody would visit.
	ZeroPairs int `json:"zero_pairs"`
}
