// Package fda holds the regulatory constant tables the label engine consumes:
// the 21 CFR 101.9(c) rounding ladders and the daily-value reference table.
// These encode exact threshold boundaries and are kept as plain lookup tables
// so they can be audited and updated independently of the algorithms.
package fda

import (
	"math"

	"github.com/labelforge/backend/internal/domain"
)

// roundHalfUpTo rounds to the nearest multiple of step, halves away from zero.
// 7.5 calories round to 10, not 5.
func roundHalfUpTo(value, step float64) float64 {
	return math.Floor(value/step+0.5) * step
}

// RoundCalories applies the calorie ladder: <5 -> 0, 5-50 -> nearest 5,
// >50 -> nearest 10.
func RoundCalories(value float64) float64 {
	if value < 5 {
		return 0
	}
	if value <= 50 {
		return roundHalfUpTo(value, 5)
	}
	return roundHalfUpTo(value, 10)
}

// RoundFatLike applies the fat/sat-fat/trans-fat ladder: <0.5 g -> 0,
// 0.5-5 g -> nearest 0.5 g, above -> nearest 1 g.
func RoundFatLike(value float64) float64 {
	if value < 0.5 {
		return 0
	}
	if value < 5 {
		return roundHalfUpTo(value, 0.5)
	}
	return roundHalfUpTo(value, 1)
}

// RoundGeneralG applies the gram ladder for carbohydrate, fiber, sugars,
// added sugars and protein: <0.5 g -> 0, otherwise nearest 1 g.
func RoundGeneralG(value float64) float64 {
	if value < 0.5 {
		return 0
	}
	return roundHalfUpTo(value, 1)
}

// RoundSodiumMg applies the sodium ladder: <5 mg -> 0, 5-140 mg -> nearest 5,
// >140 mg -> nearest 10.
func RoundSodiumMg(value float64) float64 {
	if value < 5 {
		return 0
	}
	if value <= 140 {
		return roundHalfUpTo(value, 5)
	}
	return roundHalfUpTo(value, 10)
}

// RoundCholesterolMg applies the cholesterol ladder: <2 mg -> 0, otherwise
// nearest 5 mg.
func RoundCholesterolMg(value float64) float64 {
	if value < 2 {
		return 0
	}
	return roundHalfUpTo(value, 5)
}

// RoundNearestTenMg covers chloride, choline, phosphorus, calcium and
// potassium: <5 mg -> 0, otherwise nearest 10 mg.
func RoundNearestTenMg(value float64) float64 {
	if value < 5 {
		return 0
	}
	return roundHalfUpTo(value, 10)
}

// RoundIronMg applies the iron ladder: <0.5 mg -> 0, 0.5-5 mg -> nearest
// 0.1 mg, above -> nearest 1 mg.
func RoundIronMg(value float64) float64 {
	if value < 0.5 {
		return 0
	}
	if value < 5 {
		return roundHalfUpTo(value, 0.1)
	}
	return roundHalfUpTo(value, 1)
}

// RoundNearestFive covers magnesium, folate, vitamin A and vitamin C:
// <2.5 -> 0, otherwise nearest 5.
func RoundNearestFive(value float64) float64 {
	if value < 2.5 {
		return 0
	}
	return roundHalfUpTo(value, 5)
}

// RoundNearestTenth covers vitamin D, vitamin B12 and copper: always nearest
// 0.1 of the declared unit.
func RoundNearestTenth(value float64) float64 {
	if value < 0 {
		return 0
	}
	return roundHalfUpTo(value, 0.1)
}

// RoundWholeUnit covers vitamin E, vitamin K, the B vitamins (thiamin,
// riboflavin, niacin, B6), biotin, pantothenic acid, iodine, zinc, selenium,
// manganese, chromium and molybdenum: <0.5 -> 0, otherwise nearest 1.
func RoundWholeUnit(value float64) float64 {
	if value < 0.5 {
		return 0
	}
	return roundHalfUpTo(value, 1)
}

// RoundPercentDV applies the percent-daily-value ladder: <2% -> 0,
// 2-10% -> nearest 2, 10-50% -> nearest 5, >50% -> nearest 10.
func RoundPercentDV(value float64) float64 {
	if value < 2 {
		return 0
	}
	if value <= 10 {
		return roundHalfUpTo(value, 2)
	}
	if value <= 50 {
		return roundHalfUpTo(value, 5)
	}
	return roundHalfUpTo(value, 10)
}

// roundersByKey maps every canonical nutrient to its display ladder.
var roundersByKey = map[domain.NutrientKey]func(float64) float64{
	domain.NutrientKcal:          RoundCalories,
	domain.NutrientFatG:          RoundFatLike,
	domain.NutrientSatFatG:       RoundFatLike,
	domain.NutrientTransFatG:     RoundFatLike,
	domain.NutrientCholesterolMg: RoundCholesterolMg,
	domain.NutrientSodiumMg:      RoundSodiumMg,
	domain.NutrientCarbG:         RoundGeneralG,
	domain.NutrientFiberG:        RoundGeneralG,
	domain.NutrientSugarsG:       RoundGeneralG,
	domain.NutrientAddedSugarsG:  RoundGeneralG,
	domain.NutrientProteinG:      RoundGeneralG,
	domain.NutrientVitaminDMcg:   RoundNearestTenth,
	domain.NutrientCalciumMg:     RoundNearestTenMg,
	domain.NutrientIronMg:        RoundIronMg,
	domain.NutrientPotassiumMg:   RoundNearestTenMg,
	domain.NutrientVitaminAMcg:   RoundNearestFive,
	domain.NutrientVitaminCMg:    RoundNearestFive,
	domain.NutrientVitaminEMg:    RoundWholeUnit,
	domain.NutrientVitaminKMcg:   RoundWholeUnit,
	domain.NutrientThiaminMg:     RoundWholeUnit,
	domain.NutrientRiboflavinMg:  RoundWholeUnit,
	domain.NutrientNiacinMg:      RoundWholeUnit,
	domain.NutrientVitaminB6Mg:   RoundWholeUnit,
	domain.NutrientFolateMcg:     RoundNearestFive,
	domain.NutrientVitaminB12Mcg: RoundNearestTenth,
	domain.NutrientBiotinMcg:     RoundWholeUnit,
	domain.NutrientPantothenicMg: RoundWholeUnit,
	domain.NutrientPhosphorusMg:  RoundNearestTenMg,
	domain.NutrientIodineMcg:     RoundWholeUnit,
	domain.NutrientMagnesiumMg:   RoundNearestFive,
	domain.NutrientZincMg:        RoundWholeUnit,
	domain.NutrientSeleniumMcg:   RoundWholeUnit,
	domain.NutrientCopperMg:      RoundNearestTenth,
	domain.NutrientManganeseMg:   RoundWholeUnit,
	domain.NutrientChromiumMcg:   RoundWholeUnit,
	domain.NutrientMolybdenumMcg: RoundWholeUnit,
	domain.NutrientChlorideMg:    RoundNearestTenMg,
	domain.NutrientCholineMg:     RoundNearestTenMg,
	domain.NutrientOmega3G:       RoundGeneralG,
	domain.NutrientOmega6G:       RoundGeneralG,
}

// Round applies the display ladder registered for key. Unknown keys fall back
// to the general gram ladder.
func Round(key domain.NutrientKey, value float64) float64 {
	if fn, ok := roundersByKey[key]; ok {
		return fn(value)
	}
	return RoundGeneralG(value)
}
