package domain

import (
	"context"
	"time"
)

// ProfileCache defines the interface for caching enriched product profiles.
type ProfileCache interface {
	Get(ctx context.Context, key string) (*ProductProfile, error)
	Set(ctx context.Context, key string, profile *ProductProfile, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// USDAClient defines the interface for the USDA FoodData Central API.
type USDAClient interface {
	SearchFoods(ctx context.Context, query string) (*USDASearchResponse, error)
	GetFoodDetails(ctx context.Context, fdcID string) (*USDAFood, error)
}

// SnapshotRepository freezes computed labels as immutable versioned snapshots.
type SnapshotRepository interface {
	Freeze(ctx context.Context, labelType LabelType, externalRefID, title string, payload LabelComputationResult) (*LabelSnapshot, error)
	Latest(ctx context.Context, labelType LabelType, externalRefID string) (*LabelSnapshot, error)
	Versions(ctx context.Context, labelType LabelType, externalRefID string) ([]*LabelSnapshot, error)
}
