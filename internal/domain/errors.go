package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product cannot be found in the USDA database
	ErrProductNotFound = errors.New("product not found in USDA database")

	// ErrLowConfidence is returned when the best candidate score is below the threshold
	ErrLowConfidence = errors.New("match confidence below threshold")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrUSDAAPIFailure is returned when a USDA API request fails
	ErrUSDAAPIFailure = errors.New("USDA API request failed")

	// ErrSnapshotNotFound is returned when no frozen snapshot exists for a reference
	ErrSnapshotNotFound = errors.New("label snapshot not found")
)
