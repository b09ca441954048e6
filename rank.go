// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package petmatch

import "sort"

// RankCenters orders all centers by how much adopter wants them, best
// first. Equal scores are ordered by name, descending.
func RankCenters(adopter Adopter, centers []*Center) []string {
	return names(ScoreCenters(adopter, centers))
}

// TopAdopters returns the n adopters most interested in center, best
// first. A negative n yields nothing, an n beyond len(adopters) yields
// everyone.
func TopAdopters(center *Center, adopters []Adopter, n int) []string {
	ranked := ScoreAdopters(center, adopters)
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return names(ranked[:n])
}

// ScoreCenters is RankCenters keeping the scores.
func ScoreCenters(adopter Adopter, centers []*Center) []Ranked {
	rl := make([]Ranked, len(centers))
	for i, c := range centers {
		rl[i] = Ranked{
			Name:  c.Name(),
			Score: adopter.Score(c),
		}
	}
	sortRanked(rl)
	return rl
}

// ScoreAdopters scores every adopter against center, best first.
func ScoreAdopters(center *Center, adopters []Adopter) []Ranked {
	rl := make([]Ranked, len(adopters))
	for i, a := range adopters {
		rl[i] = Ranked{
			Name:  a.Name(),
			Score: a.Score(center),
		}
	}
	sortRanked(rl)
	return rl
}

// sortRanked sorts by (score, name) descending. Scores are fixed before
// sorting, the comparator never calls Score.
func sortRanked(rl []Ranked) {
	sort.SliceStable(rl, func(i, j int) bool {
		return rl[i].Score > rl[j].Score ||
			rl[i].Score == rl[j].Score && rl[i].Name > rl[j].Name
	})
}

func names(rl []Ranked) []string {
	ns := make([]string, len(rl))
	for i, r := range rl {
		ns[i] = r.Name
	}
	return ns
}
