package usecase

import "github.com/labelforge/backend/internal/domain"

// Atwater kcal-per-gram conversion factors.
const (
	atwaterProtein = 4.0
	atwaterCarb    = 4.0
	atwaterFat     = 9.0
)

// atwaterKcal estimates calories from the macro grams.
func atwaterKcal(proteinG, carbG, fatG float64) float64 {
	return proteinG*atwaterProtein + carbG*atwaterCarb + fatG*atwaterFat
}

// clampHierarchy repairs cross-nutrient part/whole relationships in place.
// It is a one-way correction: it only raises a dominant quantity or lowers a
// subordinate one, never inventing new information. The same routine runs
// twice per computation, once on exact values before rounding and once on
// the ladder-quantized display values, because independent per-field rounding
// can push a part above its whole even when the unrounded values were
// consistent. Missing operands read as 0.
//
//  1. fat >= sat_fat + trans_fat
//  2. carb >= max(sugars, fiber, sugars+fiber)
//  3. added_sugars <= sugars
//  4. kcal >= 50% of the Atwater estimate (guards against grossly
//     understated source calories; a merely different kcal is left alone)
func clampHierarchy(values domain.NutrientMap) {
	satPlusTrans := values[domain.NutrientSatFatG] + values[domain.NutrientTransFatG]
	if values[domain.NutrientFatG] < satPlusTrans {
		values[domain.NutrientFatG] = satPlusTrans
	}

	carbFloor := values[domain.NutrientSugarsG] + values[domain.NutrientFiberG]
	if values[domain.NutrientSugarsG] > carbFloor {
		carbFloor = values[domain.NutrientSugarsG]
	}
	if values[domain.NutrientFiberG] > carbFloor {
		carbFloor = values[domain.NutrientFiberG]
	}
	if values[domain.NutrientCarbG] < carbFloor {
		values[domain.NutrientCarbG] = carbFloor
	}

	if values[domain.NutrientAddedSugarsG] > values[domain.NutrientSugarsG] {
		values[domain.NutrientAddedSugarsG] = values[domain.NutrientSugarsG]
	}

	kcalFloor := 0.5 * atwaterKcal(
		values[domain.NutrientProteinG],
		values[domain.NutrientCarbG],
		values[domain.NutrientFatG],
	)
	if values[domain.NutrientKcal] < kcalFloor {
		values[domain.NutrientKcal] = kcalFloor
	}
}
