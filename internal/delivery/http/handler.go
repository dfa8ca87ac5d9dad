package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/backend/internal/domain"
	"github.com/labelforge/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	labelService   *usecase.LabelService
	profileService *usecase.ProfileService
}

// NewHandler creates a new HTTP handler.
func NewHandler(labelService *usecase.LabelService, profileService *usecase.ProfileService) *Handler {
	return &Handler{
		labelService:   labelService,
		profileService: profileService,
	}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelforge-backend",
		"version": "1.0.0",
	})
}

// ComputeLabel runs the label engine for one request body. The engine is
// total: once the body parses, a label is always returned. Whether a QA
// failure blocks publishing is the caller's decision, not ours.
func (h *Handler) ComputeLabel(c *gin.Context) {
	if h.labelService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "label service not configured"})
		return
	}

	var input domain.LabelComputationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result := h.labelService.Compute(input)
	if !result.QA.Pass {
		log.Printf("[LABEL] QA failure for sku %q: percentError=%.3f", input.SkuName, result.QA.PercentError)
	}
	c.JSON(http.StatusOK, result)
}

// freezeRequest wraps a computation input with the reference the snapshot is
// frozen against.
type freezeRequest struct {
	ExternalRefID string                       `json:"externalRefId" binding:"required"`
	Input         domain.LabelComputationInput `json:"input"`
}

// FreezeLabel computes a label and persists it as an immutable snapshot.
func (h *Handler) FreezeLabel(c *gin.Context) {
	if h.labelService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "label service not configured"})
		return
	}

	var req freezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	snap, err := h.labelService.Freeze(c.Request.Context(), req.ExternalRefID, req.Input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// LatestLabel returns the most recent frozen snapshot for a reference.
func (h *Handler) LatestLabel(c *gin.Context) {
	if h.labelService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "label service not configured"})
		return
	}

	labelType := domain.LabelType(c.Param("labelType"))
	refID := c.Param("refId")

	snap, err := h.labelService.Latest(c.Request.Context(), labelType, refID)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SearchProfile handles profile enrichment lookups.
func (h *Handler) SearchProfile(c *gin.Context) {
	if h.profileService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "profile service not configured"})
		return
	}

	var req domain.ProfileSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	profile, err := h.profileService.LookupProfile(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, profile)
	case errors.Is(err, domain.ErrLowConfidence):
		// Still useful for review; flagged, not hidden.
		c.JSON(http.StatusOK, gin.H{"profile": profile, "warning": err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
