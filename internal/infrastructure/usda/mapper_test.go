package usda

import (
	"testing"

	"github.com/labelforge/backend/internal/domain"
)

func TestExtractNutrients(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.USDANutrient
		want domain.NutrientMap
	}{
		{
			name: "maps FDC nutrient ids",
			rows: []domain.USDANutrient{
				{NutrientID: 1008, NutrientName: "Energy", UnitName: "KCAL", Value: 165},
				{NutrientID: 1003, NutrientName: "Protein", UnitName: "G", Value: 31},
				{NutrientID: 1004, NutrientName: "Total lipid (fat)", UnitName: "G", Value: 3.6},
				{NutrientID: 1093, NutrientName: "Sodium, Na", UnitName: "MG", Value: 74},
			},
			want: domain.NutrientMap{
				domain.NutrientKcal:     165,
				domain.NutrientProteinG: 31,
				domain.NutrientFatG:     3.6,
				domain.NutrientSodiumMg: 74,
			},
		},
		{
			name: "maps legacy SR nutrient numbers",
			rows: []domain.USDANutrient{
				{NutrientID: 208, NutrientName: "Energy", UnitName: "KCAL", Value: 130},
				{NutrientID: 205, NutrientName: "Carbohydrate, by difference", UnitName: "G", Value: 28},
				{NutrientID: 291, NutrientName: "Fiber, total dietary", UnitName: "G", Value: 0.4},
			},
			want: domain.NutrientMap{
				domain.NutrientKcal:   130,
				domain.NutrientCarbG:  28,
				domain.NutrientFiberG: 0.4,
			},
		},
		{
			name: "sums omega fatty-acid fractions",
			rows: []domain.USDANutrient{
				{NutrientID: 1404, NutrientName: "18:3 n-3 (ALA)", UnitName: "G", Value: 0.1},
				{NutrientID: 1278, NutrientName: "20:5 n-3 (EPA)", UnitName: "G", Value: 0.4},
				{NutrientID: 1272, NutrientName: "22:6 n-3 (DHA)", UnitName: "G", Value: 0.6},
				{NutrientID: 1316, NutrientName: "18:2 n-6 (LA)", UnitName: "G", Value: 1.2},
			},
			want: domain.NutrientMap{
				domain.NutrientOmega3G: 1.1,
				domain.NutrientOmega6G: 1.2,
			},
		},
		{
			name: "drops unmapped nutrient rows",
			rows: []domain.USDANutrient{
				{NutrientID: 1008, NutrientName: "Energy", UnitName: "KCAL", Value: 50},
				{NutrientID: 9999, NutrientName: "Unknown", UnitName: "G", Value: 42},
			},
			want: domain.NutrientMap{
				domain.NutrientKcal: 50,
			},
		},
		{
			name: "empty rows produce empty map",
			rows: []domain.USDANutrient{},
			want: domain.NutrientMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNutrients(tt.rows)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d keys, want %d: %+v", len(got), len(tt.want), got)
			}
			for key, want := range tt.want {
				if diff := got[key] - want; diff > 1e-9 || diff < -1e-9 {
					t.Errorf("%s = %v, want %v", key, got[key], want)
				}
			}
		})
	}
}

func TestMapToProductProfile(t *testing.T) {
	food := &domain.USDAFood{
		FdcID:       171077,
		Description: "Chicken, broilers or fryers, breast, meat only, raw",
		DataType:    "Foundation",
		Nutrients: []domain.USDANutrient{
			{NutrientID: 1008, NutrientName: "Energy", UnitName: "KCAL", Value: 120},
			{NutrientID: 1003, NutrientName: "Protein", UnitName: "G", Value: 22.5},
		},
	}

	profile := MapToProductProfile(food, 95)

	if profile.FdcID != "171077" {
		t.Errorf("FdcID = %q, want 171077", profile.FdcID)
	}
	if profile.ProductName != food.Description {
		t.Errorf("ProductName = %q, want description", profile.ProductName)
	}
	if profile.Confidence != 95 {
		t.Errorf("Confidence = %v, want 95", profile.Confidence)
	}
	if profile.Source != "USDA" {
		t.Errorf("Source = %q, want USDA", profile.Source)
	}
	if profile.NutrientsPer100g[domain.NutrientKcal] != 120 {
		t.Errorf("kcal = %v, want 120", profile.NutrientsPer100g[domain.NutrientKcal])
	}
}

func TestFindNutrientValue(t *testing.T) {
	rows := []domain.USDANutrient{
		{NutrientID: 1008, NutrientName: "Energy", UnitName: "KCAL", Value: 165},
		{NutrientID: 1003, NutrientName: "Protein", UnitName: "G", Value: 31},
	}

	if got := FindNutrientValue(rows, domain.NutrientProteinG); got != 31 {
		t.Errorf("protein = %v, want 31", got)
	}
	if got := FindNutrientValue(rows, domain.NutrientSodiumMg); got != 0 {
		t.Errorf("missing nutrient = %v, want 0", got)
	}
}

func TestNutrientIDTableCoversCanonicalKeys(t *testing.T) {
	// Every canonical key except the two summed omega aggregates must be
	// reachable from at least one USDA nutrient id.
	covered := make(map[domain.NutrientKey]bool)
	for _, key := range nutrientIDToKey {
		covered[key] = true
	}
	for _, key := range domain.AllNutrientKeys {
		if key == domain.NutrientOmega3G || key == domain.NutrientOmega6G {
			continue
		}
		if !covered[key] {
			t.Errorf("no USDA nutrient id maps to %s", key)
		}
	}
}
