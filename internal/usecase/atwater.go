package usecase

import (
	"math"

	"github.com/labelforge/backend/internal/domain"
)

// atwaterTolerance is the FDA Class I nutrient-content compliance tolerance.
const atwaterTolerance = 0.20

// atwaterVerdict compares reported calories with the macro-derived Atwater
// estimate. It always reads unrounded per-serving values so that rounding
// artifacts never cause a false QA failure, and it never mutates the label:
// the verdict is advisory data for downstream review.
func atwaterVerdict(perServing domain.NutrientMap) domain.QAVerdict {
	rawKcal := perServing[domain.NutrientKcal]
	macroKcal := atwaterKcal(
		perServing[domain.NutrientProteinG],
		perServing[domain.NutrientCarbG],
		perServing[domain.NutrientFatG],
	)

	var percentError float64
	if rawKcal == 0 {
		if macroKcal > 0 {
			percentError = 1
		}
	} else {
		percentError = math.Abs(macroKcal-rawKcal) / rawKcal
	}

	return domain.QAVerdict{
		Pass:         percentError <= atwaterTolerance,
		PercentError: percentError,
		MacroKcal:    macroKcal,
		RawCalories:  rawKcal,
	}
}
