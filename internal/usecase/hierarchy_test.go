package usecase

import (
	"reflect"
	"testing"

	"github.com/labelforge/backend/internal/domain"
)

func TestClampHierarchy(t *testing.T) {
	tests := []struct {
		name  string
		in    domain.NutrientMap
		check func(t *testing.T, v domain.NutrientMap)
	}{
		{
			name: "fat raised to saturated plus trans",
			in: domain.NutrientMap{
				domain.NutrientFatG:      4.0,
				domain.NutrientSatFatG:   3.0,
				domain.NutrientTransFatG: 2.0,
			},
			check: func(t *testing.T, v domain.NutrientMap) {
				if v[domain.NutrientFatG] != 5.0 {
					t.Errorf("fat = %v, want 5.0", v[domain.NutrientFatG])
				}
			},
		},
		{
			name: "carb raised to sugars plus fiber",
			in: domain.NutrientMap{
				domain.NutrientCarbG:   8,
				domain.NutrientSugarsG: 6,
				domain.NutrientFiberG:  4,
			},
			check: func(t *testing.T, v domain.NutrientMap) {
				if v[domain.NutrientCarbG] != 10 {
					t.Errorf("carb = %v, want 10", v[domain.NutrientCarbG])
				}
			},
		},
		{
			name: "carb raised to fiber alone",
			in: domain.NutrientMap{
				domain.NutrientCarbG:  2,
				domain.NutrientFiberG: 5,
			},
			check: func(t *testing.T, v domain.NutrientMap) {
				if v[domain.NutrientCarbG] != 5 {
					t.Errorf("carb = %v, want 5", v[domain.NutrientCarbG])
				}
			},
		},
		{
			name: "added sugars lowered to sugars",
			in: domain.NutrientMap{
				domain.NutrientCarbG:        20,
				domain.NutrientSugarsG:      5,
				domain.NutrientAddedSugarsG: 9,
			},
			check: func(t *testing.T, v domain.NutrientMap) {
				if v[domain.NutrientAddedSugarsG] != 5 {
					t.Errorf("addedSugars = %v, want 5", v[domain.NutrientAddedSugarsG])
				}
			},
		},
		{
			name: "calories raised to half the atwater estimate",
			in: domain.NutrientMap{
				domain.NutrientKcal:     10,
				domain.NutrientProteinG: 10,
				domain.NutrientCarbG:    10,
				domain.NutrientFatG:     10,
			},
			check: func(t *testing.T, v domain.NutrientMap) {
				// 0.5 * (40 + 40 + 90) = 85
				if v[domain.NutrientKcal] != 85 {
					t.Errorf("kcal = %v, want 85", v[domain.NutrientKcal])
				}
			},
		},
		{
			name: "calorie floor uses the already-clamped carb",
			in: domain.NutrientMap{
				domain.NutrientKcal:    0,
				domain.NutrientSugarsG: 10,
				domain.NutrientFiberG:  10,
			},
			check: func(t *testing.T, v domain.NutrientMap) {
				// carb clamped to 20 first, then kcal floor 0.5 * 80 = 40.
				if v[domain.NutrientCarbG] != 20 {
					t.Errorf("carb = %v, want 20", v[domain.NutrientCarbG])
				}
				if v[domain.NutrientKcal] != 40 {
					t.Errorf("kcal = %v, want 40", v[domain.NutrientKcal])
				}
			},
		},
		{
			name: "consistent values untouched",
			in: domain.NutrientMap{
				domain.NutrientKcal:         200,
				domain.NutrientFatG:         10,
				domain.NutrientSatFatG:      3,
				domain.NutrientTransFatG:    0,
				domain.NutrientCarbG:        20,
				domain.NutrientSugarsG:      5,
				domain.NutrientFiberG:       4,
				domain.NutrientAddedSugarsG: 2,
				domain.NutrientProteinG:     8,
			},
			check: func(t *testing.T, v domain.NutrientMap) {
				if v[domain.NutrientKcal] != 200 || v[domain.NutrientFatG] != 10 || v[domain.NutrientCarbG] != 20 {
					t.Errorf("consistent map was altered: %+v", v)
				}
			},
		},
		{
			name: "missing keys read as zero",
			in:   domain.NutrientMap{},
			check: func(t *testing.T, v domain.NutrientMap) {
				for key, val := range v {
					if val != 0 {
						t.Errorf("%s = %v, want 0", key, val)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tt.in.Clone()
			clampHierarchy(values)
			tt.check(t, values)
		})
	}
}

// A second clamp pass over already-clamped values must change nothing, since
// the same routine runs on both exact and rounded values.
func TestClampHierarchyIdempotent(t *testing.T) {
	inputs := []domain.NutrientMap{
		{
			domain.NutrientFatG:      4.0,
			domain.NutrientSatFatG:   3.0,
			domain.NutrientTransFatG: 2.0,
		},
		{
			domain.NutrientKcal:    0,
			domain.NutrientSugarsG: 10,
			domain.NutrientFiberG:  10,
		},
		{
			domain.NutrientKcal:         50,
			domain.NutrientProteinG:     20,
			domain.NutrientCarbG:        5,
			domain.NutrientFatG:         1,
			domain.NutrientSugarsG:      8,
			domain.NutrientAddedSugarsG: 12,
		},
	}

	for _, in := range inputs {
		once := in.Clone()
		clampHierarchy(once)

		twice := once.Clone()
		clampHierarchy(twice)

		if !reflect.DeepEqual(once, twice) {
			t.Errorf("second clamp pass changed values:\nonce:  %+v\ntwice: %+v", once, twice)
		}
	}
}

func TestAtwaterVerdict(t *testing.T) {
	t.Run("close agreement passes", func(t *testing.T) {
		verdict := atwaterVerdict(domain.NutrientMap{
			domain.NutrientKcal:     210,
			domain.NutrientProteinG: 10,
			domain.NutrientCarbG:    20,
			domain.NutrientFatG:     10,
		})
		// macro = 40 + 80 + 90 = 210, exact agreement.
		if !verdict.Pass || verdict.PercentError != 0 {
			t.Errorf("verdict = %+v, want exact pass", verdict)
		}
	})

	t.Run("zero raw with positive macros is total error", func(t *testing.T) {
		verdict := atwaterVerdict(domain.NutrientMap{domain.NutrientProteinG: 10})
		if verdict.Pass || verdict.PercentError != 1 {
			t.Errorf("verdict = %+v, want fail with percentError 1", verdict)
		}
	})

	t.Run("zero raw with zero macros passes", func(t *testing.T) {
		verdict := atwaterVerdict(domain.NutrientMap{})
		if !verdict.Pass || verdict.PercentError != 0 {
			t.Errorf("verdict = %+v, want pass with zero error", verdict)
		}
	})
}
