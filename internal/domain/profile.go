package domain

import "time"

// ProductProfile is a per-100g canonical nutrient profile for one catalog
// product, enriched from an external source.
type ProductProfile struct {
	FdcID            string        `json:"fdcId,omitempty"`
	ProductName      string        `json:"productName"`
	NutrientsPer100g NutrientMap   `json:"nutrientsPer100g"`
	ProfileState     PreparedState `json:"profileState,omitempty"` // state the values were measured in
	Confidence       float64       `json:"confidence"`             // candidate match score 0-100
	Source           string        `json:"source"`                 // "USDA" or "Cache"
	RetrievedAt      time.Time     `json:"retrievedAt,omitempty"`
}

// ProfileSearchRequest asks the enrichment service for a per-100g profile.
type ProfileSearchRequest struct {
	ProductName string `json:"productName" binding:"required"`
	Brand       string `json:"brand,omitempty"`
}

// USDAFood represents a food item from the USDA FoodData Central API.
type USDAFood struct {
	FdcID       int            `json:"fdcId"`
	Description string         `json:"description"`
	DataType    string         `json:"dataType"`
	Nutrients   []USDANutrient `json:"foodNutrients"`
}

// USDANutrient represents a single nutrient row from USDA data.
type USDANutrient struct {
	NutrientID     int     `json:"nutrientId"`
	NutrientName   string  `json:"nutrientName"`
	NutrientNumber string  `json:"nutrientNumber,omitempty"`
	UnitName       string  `json:"unitName"`
	Value          float64 `json:"value"`
}

// USDASearchResponse represents the response from the USDA search API.
type USDASearchResponse struct {
	Foods       []USDAFood `json:"foods"`
	TotalHits   int        `json:"totalHits"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
}
