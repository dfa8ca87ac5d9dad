package domain

// NutrientKey identifies one entry of the platform's canonical 40-key
// nutrient dictionary. The set is closed: it is never extended at runtime.
type NutrientKey string

const (
	NutrientKcal          NutrientKey = "kcal"
	NutrientProteinG      NutrientKey = "protein_g"
	NutrientCarbG         NutrientKey = "carb_g"
	NutrientFatG          NutrientKey = "fat_g"
	NutrientFiberG        NutrientKey = "fiber_g"
	NutrientSugarsG       NutrientKey = "sugars_g"
	NutrientAddedSugarsG  NutrientKey = "added_sugars_g"
	NutrientSatFatG       NutrientKey = "sat_fat_g"
	NutrientTransFatG     NutrientKey = "trans_fat_g"
	NutrientCholesterolMg NutrientKey = "cholesterol_mg"
	NutrientSodiumMg      NutrientKey = "sodium_mg"
	NutrientVitaminDMcg   NutrientKey = "vitamin_d_mcg"
	NutrientCalciumMg     NutrientKey = "calcium_mg"
	NutrientIronMg        NutrientKey = "iron_mg"
	NutrientPotassiumMg   NutrientKey = "potassium_mg"
	NutrientVitaminAMcg   NutrientKey = "vitamin_a_mcg"
	NutrientVitaminCMg    NutrientKey = "vitamin_c_mg"
	NutrientVitaminEMg    NutrientKey = "vitamin_e_mg"
	NutrientVitaminKMcg   NutrientKey = "vitamin_k_mcg"
	NutrientThiaminMg     NutrientKey = "thiamin_mg"
	NutrientRiboflavinMg  NutrientKey = "riboflavin_mg"
	NutrientNiacinMg      NutrientKey = "niacin_mg"
	NutrientVitaminB6Mg   NutrientKey = "vitamin_b6_mg"
	NutrientFolateMcg     NutrientKey = "folate_mcg"
	NutrientVitaminB12Mcg NutrientKey = "vitamin_b12_mcg"
	NutrientBiotinMcg     NutrientKey = "biotin_mcg"
	NutrientPantothenicMg NutrientKey = "pantothenic_acid_mg"
	NutrientPhosphorusMg  NutrientKey = "phosphorus_mg"
	NutrientIodineMcg     NutrientKey = "iodine_mcg"
	NutrientMagnesiumMg   NutrientKey = "magnesium_mg"
	NutrientZincMg        NutrientKey = "zinc_mg"
	NutrientSeleniumMcg   NutrientKey = "selenium_mcg"
	NutrientCopperMg      NutrientKey = "copper_mg"
	NutrientManganeseMg   NutrientKey = "manganese_mg"
	NutrientChromiumMcg   NutrientKey = "chromium_mcg"
	NutrientMolybdenumMcg NutrientKey = "molybdenum_mcg"
	NutrientChlorideMg    NutrientKey = "chloride_mg"
	NutrientCholineMg     NutrientKey = "choline_mg"
	NutrientOmega3G       NutrientKey = "omega3_g"
	NutrientOmega6G       NutrientKey = "omega6_g"
)

// AllNutrientKeys lists the canonical dictionary in its catalog order.
var AllNutrientKeys = []NutrientKey{
	NutrientKcal,
	NutrientProteinG,
	NutrientCarbG,
	NutrientFatG,
	NutrientFiberG,
	NutrientSugarsG,
	NutrientAddedSugarsG,
	NutrientSatFatG,
	NutrientTransFatG,
	NutrientCholesterolMg,
	NutrientSodiumMg,
	NutrientVitaminDMcg,
	NutrientCalciumMg,
	NutrientIronMg,
	NutrientPotassiumMg,
	NutrientVitaminAMcg,
	NutrientVitaminCMg,
	NutrientVitaminEMg,
	NutrientVitaminKMcg,
	NutrientThiaminMg,
	NutrientRiboflavinMg,
	NutrientNiacinMg,
	NutrientVitaminB6Mg,
	NutrientFolateMcg,
	NutrientVitaminB12Mcg,
	NutrientBiotinMcg,
	NutrientPantothenicMg,
	NutrientPhosphorusMg,
	NutrientIodineMcg,
	NutrientMagnesiumMg,
	NutrientZincMg,
	NutrientSeleniumMcg,
	NutrientCopperMg,
	NutrientManganeseMg,
	NutrientChromiumMcg,
	NutrientMolybdenumMcg,
	NutrientChlorideMg,
	NutrientCholineMg,
	NutrientOmega3G,
	NutrientOmega6G,
}

// NutrientMap is a sparse per-key amount map. An absent key and an explicit
// zero are not distinguished; aggregation fills every canonical key with 0.
type NutrientMap map[NutrientKey]float64

// Clone returns an independent copy of the map.
func (m NutrientMap) Clone() NutrientMap {
	out := make(NutrientMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Get returns the value for key, or 0 when the key is absent.
func (m NutrientMap) Get(key NutrientKey) float64 {
	return m[key]
}
