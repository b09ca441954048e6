// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adopter implements the adopter variants of petmatch.
//
// Each variant scores a center with its own formula built on
// petmatch.BaseScore:
//
//	Plain:             base
//	Flexible:          base + 0.3 x count(considered...)
//	Fearful:           base - 0.3 x count(feared)
//	Allergic:          0 if any allergen is present, else base
//	MedicatedAllergic: min(1, medicine[s] for s held by the center) x base
//	Sluggish:          travel.DefaultBands factor of the distance x base
//
// All scores are clamped at 0.
package adopter

import (
	"github.com/someonegg/petmatch"
	"github.com/someonegg/petmatch/travel"
)

const (
	considerWeight = 0.3
	fearWeight     = 0.3
)

type person struct {
	name    string
	desired string
}

func (p person) Name() string {
	return p.name
}

func (p person) DesiredSpecies() string {
	return p.desired
}

func (p person) String() string {
	return p.name + ", desires: " + p.desired
}

type Plain struct {
	person
}

type Flexible struct {
	person
	considered []string
}

type Fearful struct {
	person
	feared string
}

type Allergic struct {
	person
	allergens []string
}

type MedicatedAllergic struct {
	person
	allergens []string
	medicine  map[string]float64
}

type Sluggish struct {
	person
	location petmatch.Location
	mood     travel.Mood
}

var (
	_ petmatch.Adopter = (*Plain)(nil)
	_ petmatch.Adopter = (*Flexible)(nil)
	_ petmatch.Adopter = (*Fearful)(nil)
	_ petmatch.Adopter = (*Allergic)(nil)
	_ petmatch.Adopter = (*MedicatedAllergic)(nil)
	_ petmatch.Adopter = (*Sluggish)(nil)
)
