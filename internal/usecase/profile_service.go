package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/labelforge/backend/internal/domain"
	"github.com/labelforge/backend/internal/infrastructure/usda"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// ProfileServiceConfig holds configuration for the profile service.
type ProfileServiceConfig struct {
	CacheTTL               time.Duration
	MinConfidenceThreshold float64
}

// ProfileService enriches catalog products with per-100g canonical nutrient
// profiles from USDA FoodData Central, with caching. It prepares
// nutrientsPer100g inputs for the label engine; it never feeds the engine
// directly.
type ProfileService struct {
	cache               domain.ProfileCache
	usdaClient          domain.USDAClient
	cacheTTL            time.Duration
	confidenceThreshold float64
}

// NewProfileService creates a profile service with dependencies.
func NewProfileService(cache domain.ProfileCache, usdaClient domain.USDAClient, config ProfileServiceConfig) *ProfileService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour // Default 30 days
	}
	threshold := config.MinConfidenceThreshold
	if threshold <= 0 {
		threshold = 40.0
	}

	return &ProfileService{
		cache:               cache,
		usdaClient:          usdaClient,
		cacheTTL:            cacheTTL,
		confidenceThreshold: threshold,
	}
}

// LookupProfile resolves a per-100g profile for a product.
// Flow: check cache -> search USDA -> score candidates -> map to canonical
// keys -> cache -> return.
func (s *ProfileService) LookupProfile(ctx context.Context, request *domain.ProfileSearchRequest) (*domain.ProductProfile, error) {
	if request == nil || request.ProductName == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.cacheKey(request)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		cached.Source = "Cache"
		return cached, nil
	}

	query := strings.TrimSpace(request.Brand + " " + request.ProductName)
	searchResult, err := s.usdaClient.SearchFoods(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUSDAAPIFailure, err)
	}
	if searchResult == nil || len(searchResult.Foods) == 0 {
		return nil, domain.ErrProductNotFound
	}

	best, score := bestCandidate(request.ProductName, searchResult.Foods)
	profile := usda.MapToProductProfile(best, score)

	if score < s.confidenceThreshold {
		// Low-confidence profiles are returned for review but never cached.
		return profile, domain.ErrLowConfidence
	}

	profile.RetrievedAt = time.Now().UTC()
	if err := s.cache.Set(ctx, cacheKey, profile, s.cacheTTL); err != nil {
		// A cache write failure must not fail the lookup.
		return profile, nil
	}
	return profile, nil
}

// cacheKey builds a normalized cache key: "profile:{name}:{brand}".
func (s *ProfileService) cacheKey(request *domain.ProfileSearchRequest) string {
	return fmt.Sprintf("profile:%s:%s", normalizeKeyPart(request.ProductName), normalizeKeyPart(request.Brand))
}

// normalizeKeyPart lowercases, strips special characters and collapses
// whitespace for cache key components.
func normalizeKeyPart(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// bestCandidate scores every USDA result against the requested product name
// and returns the highest scorer. The score is token coverage of the request
// in the candidate description (0-100), with a small bonus for curated data
// types, so "chicken breast raw" prefers a Foundation row over a branded
// nugget product.
func bestCandidate(productName string, foods []domain.USDAFood) (*domain.USDAFood, float64) {
	requestTokens := scoringTokens(productName)

	best := 0
	bestScore := -1.0
	for i := range foods {
		score := coverageScore(requestTokens, scoringTokens(foods[i].Description))
		switch foods[i].DataType {
		case "Foundation":
			score += 10
		case "Survey (FNDDS)":
			score += 5
		}
		if score > 100 {
			score = 100
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return &foods[best], bestScore
}

// coverageScore returns the percentage of request tokens found in the
// candidate token set.
func coverageScore(request, candidate []string) float64 {
	if len(request) == 0 || len(candidate) == 0 {
		return 0
	}
	set := make(map[string]bool, len(candidate))
	for _, t := range candidate {
		set[t] = true
	}
	matched := 0
	for _, t := range request {
		if set[t] {
			matched++
		}
	}
	return float64(matched) / float64(len(request)) * 90
}

// scoringTokens splits a name into normalized lowercase tokens, dropping
// single characters.
func scoringTokens(s string) []string {
	cleaned := nonAlphanumericRegex.ReplaceAllString(strings.ToLower(s), " ")
	words := strings.Fields(cleaned)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= 1 {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
