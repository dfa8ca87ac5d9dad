package fda

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/labelforge/backend/internal/domain"
)

func TestRoundCalories(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"zero", 0, 0},
		{"below floor", 4.2, 0},
		{"just below floor", 4.999, 0},
		{"at floor boundary", 5, 5},
		{"half rounds up within 5-step band", 7.5, 10},
		{"top of 5-step band", 50, 50},
		{"just above band uses 10-step", 50.1, 50},
		{"half rounds up within 10-step band", 105, 110},
		{"typical entree", 437, 440},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundCalories(tt.value))
		})
	}
}

func TestRoundFatLike(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"below floor", 0.4, 0},
		{"at floor boundary", 0.5, 0.5},
		{"half-gram steps below 5", 0.6, 0.5},
		{"half rounds up", 1.75, 2},
		{"boundary into whole grams", 5, 5},
		{"whole grams above 5", 7.4, 7},
		{"half rounds up above 5", 7.5, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundFatLike(tt.value))
		})
	}
}

func TestRoundGeneralG(t *testing.T) {
	assert.Equal(t, 0.0, RoundGeneralG(0.49))
	assert.Equal(t, 1.0, RoundGeneralG(0.5))
	assert.Equal(t, 1.0, RoundGeneralG(1.2))
	assert.Equal(t, 2.0, RoundGeneralG(1.5))
	assert.Equal(t, 28.0, RoundGeneralG(28.4))
}

func TestRoundSodiumMg(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"below floor", 4.9, 0},
		{"at floor", 5, 5},
		{"5-step band", 137, 135},
		{"top of 5-step band", 140, 140},
		{"just above band uses 10-step", 141, 140},
		{"10-step band", 473, 470},
		{"half rounds up", 475, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundSodiumMg(tt.value))
		})
	}
}

func TestRoundCholesterolMg(t *testing.T) {
	assert.Equal(t, 0.0, RoundCholesterolMg(1.9))
	assert.Equal(t, 0.0, RoundCholesterolMg(2))
	assert.Equal(t, 5.0, RoundCholesterolMg(3.2))
	assert.Equal(t, 85.0, RoundCholesterolMg(86))
}

func TestRoundIronMg(t *testing.T) {
	assert.Equal(t, 0.0, RoundIronMg(0.4))
	assert.InDelta(t, 1.8, RoundIronMg(1.82), 1e-9)
	assert.InDelta(t, 2.3, RoundIronMg(2.34), 1e-9)
	assert.Equal(t, 8.0, RoundIronMg(8.3))
}

func TestRoundNearestTenMg(t *testing.T) {
	assert.Equal(t, 0.0, RoundNearestTenMg(4.9))
	assert.Equal(t, 10.0, RoundNearestTenMg(5))
	assert.Equal(t, 260.0, RoundNearestTenMg(262))
	assert.Equal(t, 270.0, RoundNearestTenMg(265))
}

func TestRoundNearestTenth(t *testing.T) {
	assert.Equal(t, 0.0, RoundNearestTenth(-0.3))
	assert.Equal(t, 0.0, RoundNearestTenth(0.04))
	assert.InDelta(t, 2.4, RoundNearestTenth(2.44), 1e-9)
	assert.InDelta(t, 2.5, RoundNearestTenth(2.48), 1e-9)
}

func TestRoundPercentDV(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"below floor", 1.9, 0},
		{"2-step band", 2, 2},
		{"2-step band rounds", 6.9, 6},
		{"top of 2-step band", 10, 10},
		{"5-step band", 10.1, 10},
		{"5-step band rounds", 47.4, 45},
		{"top of 5-step band", 50, 50},
		{"10-step band", 50.1, 50},
		{"10-step band rounds", 87, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundPercentDV(tt.value))
		})
	}
}

func TestRoundDispatcher(t *testing.T) {
	assert.Equal(t, 440.0, Round(domain.NutrientKcal, 437))
	assert.Equal(t, 0.5, Round(domain.NutrientFatG, 0.6))
	assert.Equal(t, 140.0, Round(domain.NutrientSodiumMg, 141))
	assert.InDelta(t, 1.8, Round(domain.NutrientIronMg, 1.82), 1e-9)

	// Every canonical key has a registered ladder.
	for _, key := range domain.AllNutrientKeys {
		_, ok := roundersByKey[key]
		assert.Truef(t, ok, "no rounding ladder registered for %s", key)
	}
}
