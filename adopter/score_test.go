// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adopter

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/someonegg/petmatch"
	"github.com/someonegg/petmatch/travel"
)

// 辅助函数
func makeCenter(t *testing.T, name string, species map[string]int, x, y float64) *petmatch.Center {
	t.Helper()
	c, err := petmatch.NewCenter(name, species, petmatch.Location{X: x, Y: y})
	if err != nil {
		t.Fatalf("NewCenter(%q) failed: %v", name, err)
	}
	return c
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// seqRand 依次返回给定的值，循环使用
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// 1. 基础评分
func TestPlainScore(t *testing.T) {
	c := makeCenter(t, "Place", map[string]int{"Dog": 5, "Cat": 1}, 0, 0)

	a := must(NewPlain("Two", "Dog"))
	if got := a.Score(c); got != 5.0 {
		t.Errorf("Score = %v, want 5", got)
	}

	b := must(NewPlain("Three", "Horse"))
	if got := b.Score(c); got != 0.0 {
		t.Errorf("Score for absent species = %v, want 0", got)
	}
}

// 2. 变体评分
func TestFlexibleScore(t *testing.T) {
	c := makeCenter(t, "Place", map[string]int{"Dog": 5, "Cat": 10, "Lizard": 0}, 0, 0)

	t.Run("Considered", func(t *testing.T) {
		a := must(NewFlexible("Fan", "Dog", "Cat", "Lizard"))
		if got := a.Score(c); got != 8.0 {
			t.Errorf("Score = %v, want 8", got)
		}
	})

	t.Run("OverlapCountedTwice", func(t *testing.T) {
		a := must(NewFlexible("Fan", "Dog", "Dog"))
		if got := a.Score(c); !almostEqual(got, 6.5) {
			t.Errorf("Score = %v, want 6.5", got)
		}
	})

	t.Run("NothingConsidered", func(t *testing.T) {
		a := must(NewFlexible("Fan", "Dog"))
		if got := a.Score(c); got != 5.0 {
			t.Errorf("Score = %v, want 5", got)
		}
	})
}

func TestFearfulScore(t *testing.T) {
	cases := []struct {
		name    string
		species map[string]int
		want    float64
	}{
		{"OneFeared", map[string]int{"Dog": 5, "Cat": 1}, 4.7},
		{"NoFeared", map[string]int{"Dog": 5}, 5.0},
		{"Clamped", map[string]int{"Dog": 1, "Cat": 100}, 0.0},
		{"NothingAtAll", map[string]int{}, 0.0},
	}
	a := must(NewFearful("Dan", "Dog", "Cat"))
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			c := makeCenter(t, "Place", cs.species, 0, 0)
			if got := a.Score(c); !almostEqual(got, cs.want) {
				t.Errorf("Score = %v, want %v", got, cs.want)
			}
		})
	}
}

func TestAllergicScore(t *testing.T) {
	a := must(NewAllergic("Allie", "Cat", "Nunchuks", "Fish", "Wallaby"))

	cases := []struct {
		name    string
		species map[string]int
		want    float64
	}{
		{"NoAllergen", map[string]int{"Cat": 3, "Dog": 2}, 3.0},
		{"OneAllergen", map[string]int{"Cat": 100, "Wallaby": 1}, 0.0},
		{"ManyAllergens", map[string]int{"Cat": 100, "Wallaby": 50, "Fish": 9}, 0.0},
		{"DepletedAllergen", map[string]int{"Cat": 4, "Wallaby": 0}, 4.0},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			c := makeCenter(t, "Place", cs.species, 0, 0)
			if got := a.Score(c); got != cs.want {
				t.Errorf("Score = %v, want %v", got, cs.want)
			}
		})
	}

	t.Run("AllergenAdoptedAway", func(t *testing.T) {
		c := makeCenter(t, "Place", map[string]int{"Cat": 4, "Fish": 1}, 0, 0)
		if got := a.Score(c); got != 0.0 {
			t.Fatalf("Score = %v, want 0", got)
		}
		c.Adopt("Fish")
		if got := a.Score(c); got != 4.0 {
			t.Errorf("Score after adopting the fish = %v, want 4", got)
		}
	})
}

func TestMedicatedAllergicScore(t *testing.T) {
	a := must(NewMedicatedAllergic("Meddie", "Dog",
		[]string{"Pineapple", "Guava", "Shark", "Wallaby", "Cat"},
		map[string]float64{"Wallaby": 0.5, "Cat": 0.4}))

	cases := []struct {
		name    string
		species map[string]int
		want    float64
	}{
		{"NoMedicated", map[string]int{"Dog": 5, "Dingo": 2}, 5.0},
		{"OneMedicated", map[string]int{"Dog": 5, "Wallaby": 29}, 2.5},
		{"LowestWins", map[string]int{"Dog": 5, "Wallaby": 29, "Cat": 1}, 2.0},
		{"NoDesired", map[string]int{"Cat": 1}, 0.0},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			c := makeCenter(t, "Place", cs.species, 0, 0)
			if got := a.Score(c); !almostEqual(got, cs.want) {
				t.Errorf("Score = %v, want %v", got, cs.want)
			}
		})
	}

	// 药物表中的物种即使不在过敏列表里也会生效
	t.Run("MedicineOutsideAllergens", func(t *testing.T) {
		b := must(NewMedicatedAllergic("One", "Cat",
			[]string{"Dog"}, map[string]float64{"Horse": 0.2}))
		c := makeCenter(t, "Place", map[string]int{"Cat": 10, "Horse": 1}, 0, 0)
		if got := b.Score(c); !almostEqual(got, 2.0) {
			t.Errorf("Score = %v, want 2", got)
		}
	})

	// 过敏物种没有药物时不会清零
	t.Run("AllergenWithoutMedicine", func(t *testing.T) {
		c := makeCenter(t, "Place", map[string]int{"Dog": 3, "Shark": 1}, 0, 0)
		if got := a.Score(c); got != 3.0 {
			t.Errorf("Score = %v, want 3", got)
		}
	})

	t.Run("ZeroEffectiveness", func(t *testing.T) {
		b := must(NewMedicatedAllergic("Zed", "Dog",
			[]string{"Cat"}, map[string]float64{"Cat": 0}))
		c := makeCenter(t, "Place", map[string]int{"Dog": 3, "Cat": 1}, 0, 0)
		if got := b.Score(c); got != 0.0 {
			t.Errorf("Score = %v, want 0", got)
		}
	})
}

func TestSluggishScore(t *testing.T) {
	c := makeCenter(t, "Place", map[string]int{"Sphinx": 100}, 1, 1)

	t.Run("SameLocation", func(t *testing.T) {
		a := must(NewSluggish("Sal", "Sphinx", petmatch.Location{X: 1, Y: 1}, travel.NewRand(1)))
		for i := 0; i < 20; i++ {
			if got := a.Score(c); got != 100.0 {
				t.Fatalf("call %d: Score = %v, want 100", i, got)
			}
		}
	})

	t.Run("JustInside", func(t *testing.T) {
		a := must(NewSluggish("LessThanOneSal", "Sphinx", petmatch.Location{X: 1, Y: 1.9}, travel.NewRand(1)))
		if got := a.Score(c); got != 100.0 {
			t.Errorf("Score = %v, want 100", got)
		}
	})

	bands := []struct {
		name     string
		at       petmatch.Location
		min, max float64
	}{
		{"One", petmatch.Location{X: 2, Y: 1}, 70, 90},
		{"Three", petmatch.Location{X: 4, Y: 1}, 50, 70},
		{"Five", petmatch.Location{X: 6, Y: 1}, 10, 50},
		{"Ten", petmatch.Location{X: 11, Y: 1}, 10, 50},
	}
	for _, b := range bands {
		t.Run(b.name, func(t *testing.T) {
			for _, r := range []float64{0, 0.5, 0.99} {
				a := must(NewSluggish("Sal", "Sphinx", b.at, &seqRand{vals: []float64{r}}))
				got := a.Score(c)
				if got < b.min-1e-9 || got > b.max+1e-9 {
					t.Errorf("r=%v: Score = %v, want in [%v, %v]", r, got, b.min, b.max)
				}
			}
		})
	}

	t.Run("FarVaries", func(t *testing.T) {
		a := must(NewSluggish("WayFarSal", "Sphinx", petmatch.Location{X: 11, Y: 1},
			&seqRand{vals: []float64{0.1, 0.9}}))
		first, second := a.Score(c), a.Score(c)
		if first == second {
			t.Errorf("repeated far scores both %v, want them to differ", first)
		}
		if !almostEqual(first, 14.0) || !almostEqual(second, 46.0) {
			t.Errorf("Scores = %v, %v, want 14, 46", first, second)
		}
	})

	t.Run("SeededFarVaries", func(t *testing.T) {
		a := must(NewSluggish("WayFarSal", "Sphinx", petmatch.Location{X: 1000, Y: 1000}, travel.NewRand(7)))
		seen := make(map[float64]bool)
		for i := 0; i < 20; i++ {
			got := a.Score(c)
			if got < 10 || got > 50 {
				t.Fatalf("call %d: Score = %v, want in [10, 50]", i, got)
			}
			seen[got] = true
		}
		if len(seen) < 2 {
			t.Errorf("20 far scores were all equal")
		}
	})

	t.Run("NilRand", func(t *testing.T) {
		a := must(NewSluggish("Sal", "Sphinx", petmatch.Location{X: 1, Y: 1}, nil))
		if got := a.Score(c); got != 100.0 {
			t.Errorf("Score = %v, want 100", got)
		}
	})
}

// 3. 分数非负
func TestScoreNonNegative(t *testing.T) {
	centers := []*petmatch.Center{
		makeCenter(t, "Empty", map[string]int{}, 0, 0),
		makeCenter(t, "Cats", map[string]int{"Cat": 1000}, 3, 4),
		makeCenter(t, "Mixed", map[string]int{"Dog": 1, "Cat": 7, "Fish": 2}, -20, 9),
	}
	adopters := []petmatch.Adopter{
		must(NewPlain("a", "Dog")),
		must(NewFlexible("b", "Dog", "Cat")),
		must(NewFearful("c", "Dog", "Cat")),
		must(NewAllergic("d", "Dog", "Fish")),
		must(NewMedicatedAllergic("e", "Dog", []string{"Cat"}, map[string]float64{"Cat": 0.1})),
		must(NewSluggish("f", "Dog", petmatch.Location{}, travel.NewRand(3))),
	}
	for _, a := range adopters {
		for _, c := range centers {
			if got := a.Score(c); got < 0 {
				t.Errorf("%s.Score(%s) = %v, want >= 0", a.Name(), c.Name(), got)
			}
		}
	}
}

func TestScoreDoesNotMutateCenter(t *testing.T) {
	species := map[string]int{"Dog": 5, "Cat": 1, "Fish": 2}
	c := makeCenter(t, "Place", species, 0, 0)
	adopters := []petmatch.Adopter{
		must(NewFlexible("b", "Dog", "Cat")),
		must(NewAllergic("d", "Dog", "Fish")),
		must(NewMedicatedAllergic("e", "Dog", []string{"Cat"}, map[string]float64{"Cat": 0.1})),
	}
	for _, a := range adopters {
		a.Score(c)
	}
	if diff := cmp.Diff(species, c.SpeciesCounts()); diff != "" {
		t.Errorf("species changed by scoring (-want +got):\n%s", diff)
	}
}

// 4. 构造校验
func TestConstructorValidation(t *testing.T) {
	cases := []struct {
		name  string
		build func() error
		field string
	}{
		{"EmptyName", func() error { _, err := NewPlain("", "Dog"); return err }, "name"},
		{"EmptyDesired", func() error { _, err := NewPlain("a", ""); return err }, "desired_species"},
		{"EmptyConsidered", func() error { _, err := NewFlexible("a", "Dog", "Cat", ""); return err }, "considered_species"},
		{"EmptyFeared", func() error { _, err := NewFearful("a", "Dog", ""); return err }, "feared_species"},
		{"EmptyAllergen", func() error { _, err := NewAllergic("a", "Dog", ""); return err }, "allergic_species"},
		{"MedicineTooHigh", func() error {
			_, err := NewMedicatedAllergic("a", "Dog", nil, map[string]float64{"Cat": 1.5})
			return err
		}, "medicine_effectiveness"},
		{"MedicineNegative", func() error {
			_, err := NewMedicatedAllergic("a", "Dog", nil, map[string]float64{"Cat": -0.1})
			return err
		}, "medicine_effectiveness"},
		{"MedicineNaN", func() error {
			_, err := NewMedicatedAllergic("a", "Dog", nil, map[string]float64{"Cat": math.NaN()})
			return err
		}, "medicine_effectiveness"},
		{"InfiniteLocation", func() error {
			_, err := NewSluggish("a", "Dog", petmatch.Location{X: math.Inf(1)}, nil)
			return err
		}, "location"},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			err := cs.build()
			var ve *petmatch.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want a ValidationError", err)
			}
			if ve.Field != cs.field {
				t.Errorf("Field = %q, want %q", ve.Field, cs.field)
			}
		})
	}
}

func TestConstructorsCopyArguments(t *testing.T) {
	considered := []string{"Cat"}
	f := must(NewFlexible("Fan", "Dog", considered...))
	considered[0] = "Fish"

	medicine := map[string]float64{"Cat": 0.5}
	m := must(NewMedicatedAllergic("Meddie", "Dog", []string{"Cat"}, medicine))
	medicine["Cat"] = 0.0

	c := makeCenter(t, "Place", map[string]int{"Dog": 2, "Cat": 10}, 0, 0)
	if got := f.Score(c); got != 5.0 {
		t.Errorf("Flexible.Score = %v, want 5", got)
	}
	if got := m.Score(c); got != 1.0 {
		t.Errorf("MedicatedAllergic.Score = %v, want 1", got)
	}

	f.Considered()[0] = "Fish"
	if diff := cmp.Diff([]string{"Cat"}, f.Considered()); diff != "" {
		t.Errorf("Considered mutated through accessor (-want +got):\n%s", diff)
	}
}
