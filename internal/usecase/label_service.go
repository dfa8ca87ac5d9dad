package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/labelforge/backend/internal/domain"
	"github.com/labelforge/backend/internal/fda"
)

// majorAllergens is the fixed 9-major-allergen set. Tags outside this set are
// ignored when building the allergen statement.
var majorAllergens = map[string]bool{
	"milk":      true,
	"egg":       true,
	"fish":      true,
	"shellfish": true,
	"tree_nuts": true,
	"peanuts":   true,
	"wheat":     true,
	"soy":       true,
	"sesame":    true,
}

const noAllergenStatement = "Contains: None of the 9 major allergens"

// ComputeSkuLabel transforms a fully materialized computation input into a
// nutrition facts panel. It is a pure, total function: it owns nothing,
// mutates nothing, never fails, and identical inputs always produce
// bit-identical results. Malformed-but-well-typed numeric input degrades
// silently (identity yield corrections, zero-filled nutrients) so a label is
// always produced even from partial upstream data.
func ComputeSkuLabel(input domain.LabelComputationInput) domain.LabelComputationResult {
	servings := input.Servings
	if servings <= 0 {
		servings = 1
	}

	linesByID := make(map[string]domain.RecipeLineInput, len(input.Lines))
	for _, line := range input.Lines {
		linesByID[line.RecipeLineID] = line
	}

	// Per-lot scaling accumulates exact contributions lot-then-sum, both
	// globally and per recipe line. Rounding individual lots before summing
	// would be scientifically wrong: three 0.4 g contributions must sum to
	// 1.2 g and round to 1, not 3x round(0.4) = 0.
	totals := make(domain.NutrientMap)
	perLine := make(map[string]domain.NutrientMap, len(input.Lines))
	lineWeights := make(map[string]float64, len(input.Lines))
	totalWeight := 0.0

	for _, lot := range input.Lots {
		grams := lot.GramsConsumed
		totalWeight += grams
		lineWeights[lot.RecipeLineID] += grams

		adjusted := grams
		if line, ok := linesByID[lot.RecipeLineID]; ok {
			factor := line.YieldFactor
			if factor <= 0 {
				factor = InferYieldFactor(line.Name, line.Preparation).Factor
			}
			adjusted = ApplyYieldCorrection(grams, line.PreparedState, lot.NutrientProfileState, factor)
		}

		lineTotals := perLine[lot.RecipeLineID]
		if lineTotals == nil {
			lineTotals = make(domain.NutrientMap)
			perLine[lot.RecipeLineID] = lineTotals
		}
		for key, per100 := range lot.NutrientsPer100g {
			contribution := per100 * adjusted / 100
			totals[key] += contribution
			lineTotals[key] += contribution
		}
	}

	// Pre-round hierarchy repair on exact values, then per-serving division.
	// The per-line maps are reconciled with every repair so the ingredient
	// breakdown keeps summing to the panel totals.
	rawTotals := totals.Clone()
	clampHierarchy(totals)
	reconcileLines(perLine, lineWeights, totalWeight, rawTotals, totals)

	perServing := make(domain.NutrientMap, len(domain.AllNutrientKeys))
	for key, total := range totals {
		perServing[key] = total / servings
	}
	for _, key := range domain.AllNutrientKeys {
		if _, ok := perServing[key]; !ok {
			perServing[key] = 0
		}
	}

	rounded := roundLabel(perServing)
	enforceRoundedHierarchy(&rounded)

	percentDV := make(domain.NutrientMap)
	for _, key := range domain.AllNutrientKeys {
		if pct, ok := fda.PercentDV(key, perServing[key]); ok {
			percentDV[key] = pct
		}
	}

	return domain.LabelComputationResult{
		SkuName:               input.SkuName,
		RecipeName:            input.RecipeName,
		Servings:              servings,
		ServingWeightG:        totalWeight / servings,
		PerServing:            perServing,
		RoundedFda:            rounded,
		PercentDV:             percentDV,
		IngredientDeclaration: ingredientDeclaration(input.Lines),
		IngredientBreakdown:   ingredientBreakdown(input.Lines, perLine, lineWeights, totalWeight, servings),
		AllergenStatement:     allergenStatement(input.Lines),
		QA:                    atwaterVerdict(perServing),
		Provisional:           input.Provisional,
		EvidenceSummary:       input.EvidenceSummary,
	}
}

// roundLabel applies the per-class FDA ladders to the panel fields.
func roundLabel(perServing domain.NutrientMap) domain.RoundedLabel {
	return domain.RoundedLabel{
		Calories:      fda.RoundCalories(perServing[domain.NutrientKcal]),
		FatG:          fda.RoundFatLike(perServing[domain.NutrientFatG]),
		SatFatG:       fda.RoundFatLike(perServing[domain.NutrientSatFatG]),
		TransFatG:     fda.RoundFatLike(perServing[domain.NutrientTransFatG]),
		CholesterolMg: fda.RoundCholesterolMg(perServing[domain.NutrientCholesterolMg]),
		SodiumMg:      fda.RoundSodiumMg(perServing[domain.NutrientSodiumMg]),
		CarbG:         fda.RoundGeneralG(perServing[domain.NutrientCarbG]),
		FiberG:        fda.RoundGeneralG(perServing[domain.NutrientFiberG]),
		SugarsG:       fda.RoundGeneralG(perServing[domain.NutrientSugarsG]),
		AddedSugarsG:  fda.RoundGeneralG(perServing[domain.NutrientAddedSugarsG]),
		ProteinG:      fda.RoundGeneralG(perServing[domain.NutrientProteinG]),
		VitaminDMcg:   fda.RoundNearestTenth(perServing[domain.NutrientVitaminDMcg]),
		CalciumMg:     fda.RoundNearestTenMg(perServing[domain.NutrientCalciumMg]),
		IronMg:        fda.RoundIronMg(perServing[domain.NutrientIronMg]),
		PotassiumMg:   fda.RoundNearestTenMg(perServing[domain.NutrientPotassiumMg]),
	}
}

// reconcileLines folds hierarchy repairs back into the per-line maps. When a
// total changed, each line's share is rescaled by the same factor; a repair
// that created an amount no line carried is spread by weight share instead.
func reconcileLines(
	perLine map[string]domain.NutrientMap,
	lineWeights map[string]float64,
	totalWeight float64,
	raw, clamped domain.NutrientMap,
) {
	for key, after := range clamped {
		before := raw[key]
		if after == before {
			continue
		}

		if before != 0 {
			scale := after / before
			for _, lineTotals := range perLine {
				if v, ok := lineTotals[key]; ok {
					lineTotals[key] = v * scale
				}
			}
			continue
		}

		if totalWeight <= 0 {
			continue
		}
		for id, lineTotals := range perLine {
			lineTotals[key] += after * lineWeights[id] / totalWeight
		}
	}
}

// enforceRoundedHierarchy re-runs the hierarchy clamp on the quantized
// display values. Independent per-field rounding can push a part above its
// whole even when the unrounded values were consistent, so the invariants are
// independently re-checked and re-clamped after rounding.
func enforceRoundedHierarchy(rounded *domain.RoundedLabel) {
	values := domain.NutrientMap{
		domain.NutrientKcal:         rounded.Calories,
		domain.NutrientFatG:         rounded.FatG,
		domain.NutrientSatFatG:      rounded.SatFatG,
		domain.NutrientTransFatG:    rounded.TransFatG,
		domain.NutrientCarbG:        rounded.CarbG,
		domain.NutrientFiberG:       rounded.FiberG,
		domain.NutrientSugarsG:      rounded.SugarsG,
		domain.NutrientAddedSugarsG: rounded.AddedSugarsG,
		domain.NutrientProteinG:     rounded.ProteinG,
	}
	clampHierarchy(values)
	rounded.Calories = values[domain.NutrientKcal]
	rounded.FatG = values[domain.NutrientFatG]
	rounded.CarbG = values[domain.NutrientCarbG]
	rounded.AddedSugarsG = values[domain.NutrientAddedSugarsG]
}

// ingredientDeclaration lists line names heaviest-first, mirroring the
// regulatory listing-by-predominance rule. Ties keep recipe order.
func ingredientDeclaration(lines []domain.RecipeLineInput) string {
	ordered := make([]domain.RecipeLineInput, len(lines))
	copy(ordered, lines)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].GramsPerServing > ordered[j].GramsPerServing
	})

	names := make([]string, len(ordered))
	for i, line := range ordered {
		names[i] = line.Name
	}
	return "Ingredients: " + strings.Join(names, ", ")
}

// allergenStatement renders the union of major-allergen tags across all
// recipe lines. Tags outside the fixed 9-allergen set are ignored.
func allergenStatement(lines []domain.RecipeLineInput) string {
	present := make(map[string]bool)
	for _, line := range lines {
		for _, tag := range line.AllergenTags {
			if majorAllergens[tag] {
				present[tag] = true
			}
		}
	}
	if len(present) == 0 {
		return noAllergenStatement
	}

	names := make([]string, 0, len(present))
	for tag := range present {
		names = append(names, strings.ReplaceAll(tag, "_", " "))
	}
	sort.Strings(names)
	return "Contains: " + strings.Join(names, ", ")
}

// ingredientBreakdown reports each recipe line's per-serving contribution:
// weight share plus the four macro highlights. Lines with no consumed lots
// still appear, with zeros.
func ingredientBreakdown(
	lines []domain.RecipeLineInput,
	perLine map[string]domain.NutrientMap,
	lineWeights map[string]float64,
	totalWeight float64,
	servings float64,
) []domain.IngredientBreakdownEntry {
	entries := make([]domain.IngredientBreakdownEntry, 0, len(lines))
	for _, line := range lines {
		nutrients := perLine[line.RecipeLineID]

		percentOfServing := 0.0
		if totalWeight > 0 {
			percentOfServing = lineWeights[line.RecipeLineID] / totalWeight * 100
		}

		entries = append(entries, domain.IngredientBreakdownEntry{
			RecipeLineID:     line.RecipeLineID,
			Name:             line.Name,
			GramsPerServing:  lineWeights[line.RecipeLineID] / servings,
			PercentOfServing: percentOfServing,
			ProteinG:         nutrients[domain.NutrientProteinG] / servings,
			FatG:             nutrients[domain.NutrientFatG] / servings,
			CarbG:            nutrients[domain.NutrientCarbG] / servings,
			Kcal:             nutrients[domain.NutrientKcal] / servings,
		})
	}
	return entries
}

// LabelService exposes the pure engine to the delivery layer and owns the
// freeze-to-snapshot flow.
type LabelService struct {
	snapshots domain.SnapshotRepository
}

// NewLabelService creates a label service backed by a snapshot repository.
func NewLabelService(snapshots domain.SnapshotRepository) *LabelService {
	return &LabelService{snapshots: snapshots}
}

// Compute runs the engine for one input.
func (s *LabelService) Compute(input domain.LabelComputationInput) domain.LabelComputationResult {
	return ComputeSkuLabel(input)
}

// Freeze computes a label and persists it as an immutable versioned snapshot.
func (s *LabelService) Freeze(ctx context.Context, externalRefID string, input domain.LabelComputationInput) (*domain.LabelSnapshot, error) {
	if externalRefID == "" {
		return nil, domain.ErrInvalidRequest
	}
	result := ComputeSkuLabel(input)

	title := input.SkuName
	if title == "" {
		title = input.RecipeName
	}
	return s.snapshots.Freeze(ctx, domain.LabelTypeSku, externalRefID, title, result)
}

// Latest returns the most recent frozen snapshot for a reference.
func (s *LabelService) Latest(ctx context.Context, labelType domain.LabelType, externalRefID string) (*domain.LabelSnapshot, error) {
	return s.snapshots.Latest(ctx, labelType, externalRefID)
}
