package fda

import "github.com/labelforge/backend/internal/domain"

// DailyValue is one row of the reference intake table used for %DV math.
// Amount 0 means no daily value has been established; those nutrients are
// excluded from the percentDV map entirely.
type DailyValue struct {
	Key          domain.NutrientKey
	Amount       float64
	Unit         string
	Mandatory    bool // required on the FDA panel
	DisplayOrder int
}

// dailyValues is the 2016 adult reference table (21 CFR 101.9(c)(8)(iv) and
// (c)(9)), plus the two omega adequate-intake reference values the platform
// reports even though FDA establishes no DV for them.
var dailyValues = []DailyValue{
	{Key: domain.NutrientKcal, Amount: 2000, Unit: "kcal", Mandatory: true, DisplayOrder: 1},
	{Key: domain.NutrientFatG, Amount: 78, Unit: "g", Mandatory: true, DisplayOrder: 2},
	{Key: domain.NutrientSatFatG, Amount: 20, Unit: "g", Mandatory: true, DisplayOrder: 3},
	{Key: domain.NutrientTransFatG, Amount: 0, Unit: "g", Mandatory: true, DisplayOrder: 4},
	{Key: domain.NutrientCholesterolMg, Amount: 300, Unit: "mg", Mandatory: true, DisplayOrder: 5},
	{Key: domain.NutrientSodiumMg, Amount: 2300, Unit: "mg", Mandatory: true, DisplayOrder: 6},
	{Key: domain.NutrientCarbG, Amount: 275, Unit: "g", Mandatory: true, DisplayOrder: 7},
	{Key: domain.NutrientFiberG, Amount: 28, Unit: "g", Mandatory: true, DisplayOrder: 8},
	{Key: domain.NutrientSugarsG, Amount: 0, Unit: "g", Mandatory: true, DisplayOrder: 9},
	{Key: domain.NutrientAddedSugarsG, Amount: 50, Unit: "g", Mandatory: true, DisplayOrder: 10},
	{Key: domain.NutrientProteinG, Amount: 50, Unit: "g", Mandatory: true, DisplayOrder: 11},
	{Key: domain.NutrientVitaminDMcg, Amount: 20, Unit: "mcg", Mandatory: true, DisplayOrder: 12},
	{Key: domain.NutrientCalciumMg, Amount: 1300, Unit: "mg", Mandatory: true, DisplayOrder: 13},
	{Key: domain.NutrientIronMg, Amount: 18, Unit: "mg", Mandatory: true, DisplayOrder: 14},
	{Key: domain.NutrientPotassiumMg, Amount: 4700, Unit: "mg", Mandatory: true, DisplayOrder: 15},
	{Key: domain.NutrientVitaminAMcg, Amount: 900, Unit: "mcg", Mandatory: false, DisplayOrder: 16},
	{Key: domain.NutrientVitaminCMg, Amount: 90, Unit: "mg", Mandatory: false, DisplayOrder: 17},
	{Key: domain.NutrientVitaminEMg, Amount: 15, Unit: "mg", Mandatory: false, DisplayOrder: 18},
	{Key: domain.NutrientVitaminKMcg, Amount: 120, Unit: "mcg", Mandatory: false, DisplayOrder: 19},
	{Key: domain.NutrientThiaminMg, Amount: 1.2, Unit: "mg", Mandatory: false, DisplayOrder: 20},
	{Key: domain.NutrientRiboflavinMg, Amount: 1.3, Unit: "mg", Mandatory: false, DisplayOrder: 21},
	{Key: domain.NutrientNiacinMg, Amount: 16, Unit: "mg", Mandatory: false, DisplayOrder: 22},
	{Key: domain.NutrientVitaminB6Mg, Amount: 1.7, Unit: "mg", Mandatory: false, DisplayOrder: 23},
	{Key: domain.NutrientFolateMcg, Amount: 400, Unit: "mcg", Mandatory: false, DisplayOrder: 24},
	{Key: domain.NutrientVitaminB12Mcg, Amount: 2.4, Unit: "mcg", Mandatory: false, DisplayOrder: 25},
	{Key: domain.NutrientBiotinMcg, Amount: 30, Unit: "mcg", Mandatory: false, DisplayOrder: 26},
	{Key: domain.NutrientPantothenicMg, Amount: 5, Unit: "mg", Mandatory: false, DisplayOrder: 27},
	{Key: domain.NutrientPhosphorusMg, Amount: 1250, Unit: "mg", Mandatory: false, DisplayOrder: 28},
	{Key: domain.NutrientIodineMcg, Amount: 150, Unit: "mcg", Mandatory: false, DisplayOrder: 29},
	{Key: domain.NutrientMagnesiumMg, Amount: 420, Unit: "mg", Mandatory: false, DisplayOrder: 30},
	{Key: domain.NutrientZincMg, Amount: 11, Unit: "mg", Mandatory: false, DisplayOrder: 31},
	{Key: domain.NutrientSeleniumMcg, Amount: 55, Unit: "mcg", Mandatory: false, DisplayOrder: 32},
	{Key: domain.NutrientCopperMg, Amount: 0.9, Unit: "mg", Mandatory: false, DisplayOrder: 33},
	{Key: domain.NutrientManganeseMg, Amount: 2.3, Unit: "mg", Mandatory: false, DisplayOrder: 34},
	{Key: domain.NutrientChromiumMcg, Amount: 35, Unit: "mcg", Mandatory: false, DisplayOrder: 35},
	{Key: domain.NutrientMolybdenumMcg, Amount: 45, Unit: "mcg", Mandatory: false, DisplayOrder: 36},
	{Key: domain.NutrientChlorideMg, Amount: 2300, Unit: "mg", Mandatory: false, DisplayOrder: 37},
	{Key: domain.NutrientCholineMg, Amount: 550, Unit: "mg", Mandatory: false, DisplayOrder: 38},
	{Key: domain.NutrientOmega3G, Amount: 1.6, Unit: "g", Mandatory: false, DisplayOrder: 39},
	{Key: domain.NutrientOmega6G, Amount: 17, Unit: "g", Mandatory: false, DisplayOrder: 40},
}

var dailyValueByKey = func() map[domain.NutrientKey]DailyValue {
	m := make(map[domain.NutrientKey]DailyValue, len(dailyValues))
	for _, dv := range dailyValues {
		m[dv.Key] = dv
	}
	return m
}()

// DailyValues returns the reference table in display order.
func DailyValues() []DailyValue {
	out := make([]DailyValue, len(dailyValues))
	copy(out, dailyValues)
	return out
}

// DailyValueFor looks up the reference row for a nutrient.
func DailyValueFor(key domain.NutrientKey) (DailyValue, bool) {
	dv, ok := dailyValueByKey[key]
	return dv, ok
}

// PercentDV computes a rounded percent daily value for one per-serving
// amount. The second return is false for nutrients with no established DV
// (trans fat, total sugars); those must not appear in the output map.
func PercentDV(key domain.NutrientKey, perServing float64) (float64, bool) {
	dv, ok := dailyValueByKey[key]
	if !ok || dv.Amount == 0 {
		return 0, false
	}
	return RoundPercentDV(perServing / dv.Amount * 100), true
}
