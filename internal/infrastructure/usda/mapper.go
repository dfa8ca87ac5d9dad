package usda

import (
	"fmt"

	"github.com/labelforge/backend/internal/domain"
)

// nutrientIDToKey maps USDA FoodData Central nutrient IDs to the platform's
// canonical 40-key dictionary. Both legacy (SR) and FDC energy IDs map to
// kcal. Omega fatty-acid fractions are aggregated separately below.
var nutrientIDToKey = map[int]domain.NutrientKey{
	208:  domain.NutrientKcal,
	1008: domain.NutrientKcal,
	203:  domain.NutrientProteinG,
	1003: domain.NutrientProteinG,
	205:  domain.NutrientCarbG,
	1005: domain.NutrientCarbG,
	204:  domain.NutrientFatG,
	1004: domain.NutrientFatG,
	291:  domain.NutrientFiberG,
	1079: domain.NutrientFiberG,
	269:  domain.NutrientSugarsG,
	2000: domain.NutrientSugarsG,
	539:  domain.NutrientAddedSugarsG,
	1235: domain.NutrientAddedSugarsG,
	606:  domain.NutrientSatFatG,
	1258: domain.NutrientSatFatG,
	605:  domain.NutrientTransFatG,
	1257: domain.NutrientTransFatG,
	601:  domain.NutrientCholesterolMg,
	1253: domain.NutrientCholesterolMg,
	307:  domain.NutrientSodiumMg,
	1093: domain.NutrientSodiumMg,
	324:  domain.NutrientVitaminDMcg,
	1114: domain.NutrientVitaminDMcg,
	301:  domain.NutrientCalciumMg,
	1087: domain.NutrientCalciumMg,
	303:  domain.NutrientIronMg,
	1089: domain.NutrientIronMg,
	306:  domain.NutrientPotassiumMg,
	1092: domain.NutrientPotassiumMg,
	320:  domain.NutrientVitaminAMcg,
	1106: domain.NutrientVitaminAMcg,
	401:  domain.NutrientVitaminCMg,
	1162: domain.NutrientVitaminCMg,
	323:  domain.NutrientVitaminEMg,
	1109: domain.NutrientVitaminEMg,
	430:  domain.NutrientVitaminKMcg,
	1185: domain.NutrientVitaminKMcg,
	404:  domain.NutrientThiaminMg,
	1165: domain.NutrientThiaminMg,
	405:  domain.NutrientRiboflavinMg,
	1166: domain.NutrientRiboflavinMg,
	406:  domain.NutrientNiacinMg,
	1167: domain.NutrientNiacinMg,
	415:  domain.NutrientVitaminB6Mg,
	1175: domain.NutrientVitaminB6Mg,
	417:  domain.NutrientFolateMcg,
	1177: domain.NutrientFolateMcg,
	418:  domain.NutrientVitaminB12Mcg,
	1178: domain.NutrientVitaminB12Mcg,
	416:  domain.NutrientBiotinMcg,
	1176: domain.NutrientBiotinMcg,
	410:  domain.NutrientPantothenicMg,
	1170: domain.NutrientPantothenicMg,
	305:  domain.NutrientPhosphorusMg,
	1091: domain.NutrientPhosphorusMg,
	353:  domain.NutrientIodineMcg,
	1100: domain.NutrientIodineMcg,
	304:  domain.NutrientMagnesiumMg,
	1090: domain.NutrientMagnesiumMg,
	309:  domain.NutrientZincMg,
	1095: domain.NutrientZincMg,
	317:  domain.NutrientSeleniumMcg,
	1103: domain.NutrientSeleniumMcg,
	312:  domain.NutrientCopperMg,
	1098: domain.NutrientCopperMg,
	315:  domain.NutrientManganeseMg,
	1101: domain.NutrientManganeseMg,
	334:  domain.NutrientChromiumMcg,
	1096: domain.NutrientChromiumMcg,
	341:  domain.NutrientMolybdenumMcg,
	1102: domain.NutrientMolybdenumMcg,
	313:  domain.NutrientChlorideMg,
	1088: domain.NutrientChlorideMg,
	421:  domain.NutrientCholineMg,
	1180: domain.NutrientCholineMg,
}

// omega fatty-acid fraction IDs summed into the two omega reference keys.
var (
	omega3FractionIDs = map[int]bool{
		619: true, 627: true, 629: true, 631: true, 621: true, // ALA, SDA, EPA, DPA, DHA
		1404: true, 1280: true, 1278: true, 1279: true, 1272: true,
	}
	omega6FractionIDs = map[int]bool{
		618: true, 685: true, 672: true, 689: true, 620: true,
		1316: true, 1321: true, 1313: true, 1406: true, 1408: true,
	}
)

// MapToProductProfile converts a USDA food into a per-100g canonical profile.
// Unmapped nutrient rows are dropped; omega fractions are summed.
func MapToProductProfile(food *domain.USDAFood, confidence float64) *domain.ProductProfile {
	return &domain.ProductProfile{
		FdcID:            fmt.Sprintf("%d", food.FdcID),
		ProductName:      food.Description,
		NutrientsPer100g: ExtractNutrients(food.Nutrients),
		Confidence:       confidence,
		Source:           "USDA",
	}
}

// ExtractNutrients maps USDA nutrient rows onto the canonical dictionary.
// USDA values are already per 100 g for search results.
func ExtractNutrients(rows []domain.USDANutrient) domain.NutrientMap {
	nutrients := make(domain.NutrientMap)
	for _, row := range rows {
		if key, ok := nutrientIDToKey[row.NutrientID]; ok {
			nutrients[key] = row.Value
			continue
		}
		if omega3FractionIDs[row.NutrientID] {
			nutrients[domain.NutrientOmega3G] += row.Value
		}
		if omega6FractionIDs[row.NutrientID] {
			nutrients[domain.NutrientOmega6G] += row.Value
		}
	}
	return nutrients
}

// FindNutrientValue finds a specific nutrient value by canonical key.
func FindNutrientValue(rows []domain.USDANutrient, key domain.NutrientKey) float64 {
	for _, row := range rows {
		if mapped, ok := nutrientIDToKey[row.NutrientID]; ok && mapped == key {
			return row.Value
		}
	}
	return 0.0
}
