// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shelter

// Sample returns a small demonstration dataset: seven centers and eleven
// adopters covering every kind.
func Sample() *Dataset {
	point := func(x, y float64) *Point {
		return &Point{x, y}
	}

	return &Dataset{
		Centers: []CenterSpec{
			{Name: "Highlands", Species: map[string]int{"Dog": 5, "Cat": 1, "Wallaby": 29, "Dingo": 2, "Sphinx": 100}, Location: Point{1, 1}},
			{Name: "Lowlands", Species: map[string]int{"Dog": 1, "Cat": 3, "Wallaby": 9, "Dingo": 20, "Sphinx": 10}, Location: Point{3, 3}},
			{Name: "Midlands", Species: map[string]int{"Dog": 2, "Cat": 100, "Wallaby": 2, "Dingo": 6, "Sphinx": 8}, Location: Point{100, 100}},
			{Name: "Leftlands", Species: map[string]int{"Dog": 5, "Cat": 6, "Wallaby": 3, "Dingo": 6, "Sphinx": 66}, Location: Point{-50, 0}},
			{Name: "Rightlands", Species: map[string]int{"Dog": 8, "Cat": 5, "Wallaby": 7, "Dingo": 4, "Sphinx": 121}, Location: Point{50, 0}},
			{Name: "Uplands", Species: map[string]int{"Dog": 2, "Cat": 1, "Wallaby": 7, "Dingo": 5, "Sphinx": 12}, Location: Point{0, 50}},
			{Name: "Downlands", Species: map[string]int{"Dog": 1, "Cat": 3, "Wallaby": 4, "Dingo": 5, "Sphinx": 13}, Location: Point{0, -50}},
		},
		Adopters: []AdopterSpec{
			{Kind: KindFlexible, Name: "Fan", Desires: "Dog", Considers: SpeciesList{"Cat"}},
			{Kind: KindFearful, Name: "Dan", Desires: "Dog", Fears: "Wallaby"},
			{Kind: KindAllergic, Name: "Allie", Desires: "Cat", AllergicTo: SpeciesList{"Nunchuks", "Fish", "Wallaby"}},
			{Kind: KindMedicated, Name: "Meddie", Desires: "Dog",
				AllergicTo: SpeciesList{"Pineapple", "Guava", "Shark", "Wallaby", "Cat"},
				Medicine:   map[string]float64{"Wallaby": 0.5, "Cat": 0.4}},
			{Kind: KindSluggish, Name: "LessThanOneSal", Desires: "Sphinx", Location: point(1, 1.9)},
			{Kind: KindSluggish, Name: "Sal", Desires: "Sphinx", Location: point(2, 2)},
			{Kind: KindSluggish, Name: "ThreeSal", Desires: "Sphinx", Location: point(4, 1)},
			{Kind: KindSluggish, Name: "FourSal", Desires: "Sphinx", Location: point(5, 1)},
			{Kind: KindSluggish, Name: "FiveSal", Desires: "Sphinx", Location: point(6, 1)},
			{Kind: KindSluggish, Name: "SixSal", Desires: "Sphinx", Location: point(7, 1)},
			{Kind: KindSluggish, Name: "WayFarSal", Desires: "Sphinx", Location: point(1000, 1000)},
		},
	}
}
