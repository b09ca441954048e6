// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adopter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/someonegg/petmatch"
)

func (a *Flexible) Considered() []string {
	return append([]string(nil), a.considered...)
}

func (a *Flexible) String() string {
	return a.person.String() + ", would consider: " + strings.Join(a.considered, ", ")
}

func (a *Fearful) Feared() string {
	return a.feared
}

func (a *Fearful) String() string {
	return a.person.String() + ", but fears: " + a.feared
}

func (a *Allergic) Allergens() []string {
	return append([]string(nil), a.allergens...)
}

func (a *Allergic) String() string {
	return a.person.String() + ", but is allergic to: " + strings.Join(a.allergens, ", ")
}

func (a *MedicatedAllergic) Allergens() []string {
	return append([]string(nil), a.allergens...)
}

// Medicine returns a copy of the effectiveness table.
func (a *MedicatedAllergic) Medicine() map[string]float64 {
	ms := make(map[string]float64, len(a.medicine))
	for s, e := range a.medicine {
		ms[s] = e
	}
	return ms
}

func (a *MedicatedAllergic) String() string {
	species := make([]string, 0, len(a.medicine))
	for s := range a.medicine {
		species = append(species, s)
	}
	sort.Strings(species)

	meds := make([]string, len(species))
	for i, s := range species {
		pct := strconv.FormatFloat(a.medicine[s]*100, 'f', -1, 64)
		meds[i] = s + " (" + pct + "% effective)"
	}

	return a.person.String() +
		", but is allergic to: " + strings.Join(a.allergens, ", ") +
		", but thankfully takes allergy medication for: " + strings.Join(meds, ", ")
}

func (a *Sluggish) Location() petmatch.Location {
	return a.location
}

func (a *Sluggish) String() string {
	return a.person.String() + ", and is located at " + a.location.String()
}
