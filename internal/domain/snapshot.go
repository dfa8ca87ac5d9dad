package domain

import "time"

// LabelType classifies what a frozen snapshot describes.
type LabelType string

const (
	LabelTypeSku        LabelType = "SKU"
	LabelTypeIngredient LabelType = "INGREDIENT"
	LabelTypeProduct    LabelType = "PRODUCT"
	LabelTypeLot        LabelType = "LOT"
)

// LabelSnapshot is an immutable frozen copy of a computed label. Versions are
// monotonically increasing per (labelType, externalRefId).
type LabelSnapshot struct {
	ID            string                 `json:"id"`
	LabelType     LabelType              `json:"labelType"`
	ExternalRefID string                 `json:"externalRefId"`
	Title         string                 `json:"title"`
	Payload       LabelComputationResult `json:"renderPayload"`
	Version       int                    `json:"version"`
	FrozenAt      time.Time              `json:"frozenAt"`
}
