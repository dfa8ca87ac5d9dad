package domain

// PreparedState describes the preparation state a mass or a per-100g nutrient
// profile was measured in.
type PreparedState string

const (
	StateRaw    PreparedState = "RAW"
	StateCooked PreparedState = "COOKED"
	StateDry    PreparedState = "DRY"
	StateCanned PreparedState = "CANNED"
	StateFrozen PreparedState = "FROZEN"
)

// OrDefault returns the state, defaulting empty to RAW.
func (s PreparedState) OrDefault() PreparedState {
	if s == "" {
		return StateRaw
	}
	return s
}

// RecipeLineInput is one formulated ingredient slot of a recipe, expressed as
// grams per serving, independent of which physical lots fulfill it.
type RecipeLineInput struct {
	RecipeLineID    string        `json:"recipeLineId"`
	Name            string        `json:"name"`
	AllergenTags    []string      `json:"allergenTags,omitempty"`
	GramsPerServing float64       `json:"gramsPerServing"`
	Preparation     string        `json:"preparation,omitempty"`
	PreparedState   PreparedState `json:"preparedState,omitempty"` // default RAW
	YieldFactor     float64       `json:"yieldFactor,omitempty"`   // explicit override, 0 = infer
}

// ConsumedLotInput is one actual inventory lot consumed against a recipe line.
type ConsumedLotInput struct {
	RecipeLineID         string        `json:"recipeLineId"`
	LotID                string        `json:"lotId,omitempty"`
	GramsConsumed        float64       `json:"gramsConsumed"`
	NutrientsPer100g     NutrientMap   `json:"nutrientsPer100g"`
	NutrientProfileState PreparedState `json:"nutrientProfileState,omitempty"` // state the per-100g data was measured in, default RAW
}

// EvidenceSummary counts the verification grades of the nutrient rows behind
// a computation. The engine passes it through untouched.
type EvidenceSummary struct {
	Verified   int `json:"verified"`
	Inferred   int `json:"inferred"`
	Exception  int `json:"exception"`
	Unverified int `json:"unverified"`
}

// LabelComputationInput is one complete, fully materialized label request.
type LabelComputationInput struct {
	SkuName         string             `json:"skuName"`
	RecipeName      string             `json:"recipeName"`
	Servings        float64            `json:"servings"` // non-positive coerced to 1
	Lines           []RecipeLineInput  `json:"lines"`
	Lots            []ConsumedLotInput `json:"lots"`
	Provisional     bool               `json:"provisional,omitempty"`
	EvidenceSummary *EvidenceSummary   `json:"evidenceSummary,omitempty"`
}

// RoundedLabel holds the FDA display values for the mandatory panel fields.
type RoundedLabel struct {
	Calories      float64 `json:"calories"`
	FatG          float64 `json:"fatG"`
	SatFatG       float64 `json:"satFatG"`
	TransFatG     float64 `json:"transFatG"`
	CholesterolMg float64 `json:"cholesterolMg"`
	SodiumMg      float64 `json:"sodiumMg"`
	CarbG         float64 `json:"carbG"`
	FiberG        float64 `json:"fiberG"`
	SugarsG       float64 `json:"sugarsG"`
	AddedSugarsG  float64 `json:"addedSugarsG"`
	ProteinG      float64 `json:"proteinG"`
	VitaminDMcg   float64 `json:"vitaminDMcg"`
	CalciumMg     float64 `json:"calciumMg"`
	IronMg        float64 `json:"ironMg"`
	PotassiumMg   float64 `json:"potassiumMg"`
}

// QAVerdict is the Atwater plausibility check over unrounded per-serving
// values. It is a data-quality signal for downstream review, never an error.
type QAVerdict struct {
	Pass         bool    `json:"pass"`
	PercentError float64 `json:"percentError"`
	MacroKcal    float64 `json:"macroKcal"`
	RawCalories  float64 `json:"rawCalories"`
}

// IngredientBreakdownEntry reports one recipe line's per-serving contribution.
type IngredientBreakdownEntry struct {
	RecipeLineID     string  `json:"recipeLineId"`
	Name             string  `json:"name"`
	GramsPerServing  float64 `json:"gramsPerServing"`
	PercentOfServing float64 `json:"percentOfServing"`
	ProteinG         float64 `json:"proteinG"`
	FatG             float64 `json:"fatG"`
	CarbG            float64 `json:"carbG"`
	Kcal             float64 `json:"kcal"`
}

// LabelComputationResult is the assembled nutrition facts panel.
type LabelComputationResult struct {
	SkuName               string                     `json:"skuName"`
	RecipeName            string                     `json:"recipeName"`
	Servings              float64                    `json:"servings"`
	ServingWeightG        float64                    `json:"servingWeightG"`
	PerServing            NutrientMap                `json:"perServing"` // all 40 keys present
	RoundedFda            RoundedLabel               `json:"roundedFda"`
	PercentDV             NutrientMap                `json:"percentDV"` // sparse, only keys with an established DV
	IngredientDeclaration string                     `json:"ingredientDeclaration"`
	IngredientBreakdown   []IngredientBreakdownEntry `json:"ingredientBreakdown"`
	AllergenStatement     string                     `json:"allergenStatement"`
	QA                    QAVerdict                  `json:"qa"`
	Provisional           bool                       `json:"provisional"`
	EvidenceSummary       *EvidenceSummary           `json:"evidenceSummary,omitempty"`
}
