package usecase

import (
	"regexp"
	"strings"

	"github.com/labelforge/backend/internal/domain"
)

// yieldRule is one entry of the ordered cooking-yield inference table.
// Factors are cooked_mass / raw_mass (or cooked / dry for grains and legumes,
// where water absorption pushes the ratio above 1). All tabulated factors
// must lie in [0.3, 4.0]; anything outside that band is a data error.
type yieldRule struct {
	key     string
	pattern *regexp.Regexp
	factor  float64
}

// YieldFactorMin and YieldFactorMax bound every tabulated yield factor.
const (
	YieldFactorMin = 0.3
	YieldFactorMax = 4.0
)

// specificYieldRules match exact ingredient phrasings. First match wins, so
// order is load-bearing: specific rules are consulted before the category
// fallbacks below.
var specificYieldRules = []yieldRule{
	{"chicken_breast", regexp.MustCompile(`chicken\s+breast`), 0.75},
	{"chicken_thigh", regexp.MustCompile(`chicken\s+thigh`), 0.70},
	{"ground_beef", regexp.MustCompile(`ground\s+beef`), 0.74},
	{"bacon", regexp.MustCompile(`\bbacon\b`), 0.30},
	{"salmon", regexp.MustCompile(`\bsalmon\b`), 0.82},
	{"shrimp", regexp.MustCompile(`\bshrimp\b`), 0.85},
	{"white_rice", regexp.MustCompile(`white\s+rice`), 2.50},
	{"brown_rice", regexp.MustCompile(`brown\s+rice`), 2.60},
	{"quinoa", regexp.MustCompile(`\bquinoa\b`), 2.70},
	{"oats", regexp.MustCompile(`\boat(s|meal)?\b`), 2.50},
	{"lentils", regexp.MustCompile(`\blentils?\b`), 2.50},
	{"broccoli", regexp.MustCompile(`\bbroccoli\b`), 0.88},
	{"spinach", regexp.MustCompile(`\bspinach\b`), 0.65},
	{"mushroom", regexp.MustCompile(`\bmushrooms?\b`), 0.70},
	{"onion", regexp.MustCompile(`\bonions?\b`), 0.80},
	{"potato", regexp.MustCompile(`\bpotato(es)?\b`), 0.92},
	{"carrot", regexp.MustCompile(`\bcarrots?\b`), 0.90},
}

// categoryYieldRules are the broader fallbacks consulted when no specific
// rule matches.
var categoryYieldRules = []yieldRule{
	{"poultry", regexp.MustCompile(`\b(chicken|turkey|duck|poultry)\b`), 0.75},
	{"red_meat", regexp.MustCompile(`\b(beef|pork|lamb|veal|steak|meat)\b`), 0.75},
	{"fish_shellfish", regexp.MustCompile(`\b(fish|cod|tuna|tilapia|trout|halibut|shellfish|crab|lobster|scallops?|clams?|mussels?)\b`), 0.82},
	{"grains_pasta", regexp.MustCompile(`\b(rice|pasta|spaghetti|macaroni|noodles?|barley|couscous|farro|grains?)\b`), 2.40},
	{"legumes", regexp.MustCompile(`\b(beans?|peas?|chickpeas?|legumes?)\b`), 2.25},
	{"vegetables", regexp.MustCompile(`\b(vegetables?|zucchini|squash|cauliflower|asparagus|kale|cabbage|peppers?|green\s+beans?)\b`), 0.88},
}

// YieldInference reports which rule produced a factor, if any.
type YieldInference struct {
	Factor   float64 `json:"factor"`
	Key      string  `json:"key,omitempty"`
	Inferred bool    `json:"inferred"`
}

// InferYieldFactor matches the ingredient name (and optional preparation
// text) against the ordered rule table: specific rules first, category
// fallbacks second, identity last.
func InferYieldFactor(ingredientName, preparation string) YieldInference {
	text := strings.ToLower(strings.TrimSpace(ingredientName + " " + preparation))

	for _, rule := range specificYieldRules {
		if rule.pattern.MatchString(text) {
			return YieldInference{Factor: rule.factor, Key: rule.key, Inferred: true}
		}
	}
	for _, rule := range categoryYieldRules {
		if rule.pattern.MatchString(text) {
			return YieldInference{Factor: rule.factor, Key: rule.key, Inferred: true}
		}
	}
	return YieldInference{Factor: 1.0, Inferred: false}
}

// ApplyYieldCorrection converts grams measured in the recipe's preparation
// state into the state the lot's per-100g profile was measured in.
//
// Identity cases: equal states, non-positive factors (division guard) and
// exact unity factors. State pairs outside the supported conversions are a
// silent no-op rather than an error: the two states disagree in a way the
// model cannot resolve, and a label must still be produced.
func ApplyYieldCorrection(grams float64, recipeState, profileState domain.PreparedState, yieldFactor float64) float64 {
	recipeState = recipeState.OrDefault()
	profileState = profileState.OrDefault()

	if recipeState == profileState || yieldFactor <= 0 || yieldFactor == 1.0 {
		return grams
	}

	switch {
	case recipeState == domain.StateCooked && profileState == domain.StateRaw:
		return grams / yieldFactor
	case recipeState == domain.StateRaw && profileState == domain.StateCooked:
		return grams * yieldFactor
	case recipeState == domain.StateDry && profileState == domain.StateCooked:
		return grams * yieldFactor
	case recipeState == domain.StateCooked && profileState == domain.StateDry:
		return grams / yieldFactor
	}
	return grams
}

// yieldRuleTable exposes the full ordered table for auditing and tests.
func yieldRuleTable() []yieldRule {
	out := make([]yieldRule, 0, len(specificYieldRules)+len(categoryYieldRules))
	out = append(out, specificYieldRules...)
	out = append(out, categoryYieldRules...)
	return out
}
