package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/listingcraft/backend/internal/domain"
	"github.com/listingcraft/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	listings  *usecase.ListingService
	catalog   domain.ProductCatalog
	submitter domain.ListingSubmitter
}

// NewHandler creates a new HTTP handler. Catalog and submitter may be nil
// when the marketplace integrations are not configured; their endpoints
// then return 503.
func NewHandler(listings *usecase.ListingService, catalog domain.ProductCatalog, submitter domain.ListingSubmitter) *Handler {
	return &Handler{
		listings:  listings,
		catalog:   catalog,
		submitter: submitter,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "listingcraft-backend",
		"version": "1.0.0",
	})
}

// GenerateListing handles listing generation requests
func (h *Handler) GenerateListing(c *gin.Context) {
	var request domain.ListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "product_name, category, and a non-empty features list are required",
		})
		return
	}

	requestID := uuid.NewString()

	listing, err := h.listings.GenerateListing(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return
		}
		log.Printf("[HTTP] generation failed for request %s: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"request_id": requestID,
			"error":      domain.ErrGenerationFailed.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"listing":    listing,
	})
}

// competitorAnalysisRequest is the inbound payload for competitor analysis
type competitorAnalysisRequest struct {
	URLs []string `json:"urls" binding:"required,min=1"`
}

// AnalyzeCompetitors returns illustrative per-URL competitor insights
func (h *Handler) AnalyzeCompetitors(c *gin.Context) {
	var request competitorAnalysisRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a non-empty urls list is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": usecase.AnalyzeCompetitorURLs(request.URLs),
	})
}

// listingUpdateRequest is the inbound payload for marketplace listing updates
type listingUpdateRequest struct {
	SellerSKU     string               `json:"seller_sku" binding:"required"`
	MarketplaceID string               `json:"marketplace_id" binding:"required"`
	LanguageTag   string               `json:"language_tag"`
	UpdatedData   domain.ListingUpdate `json:"updated_data" binding:"required"`
}

// UpdateListing submits replacement listing content to the marketplace
func (h *Handler) UpdateListing(c *gin.Context) {
	if h.submitter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "listing submission is not configured"})
		return
	}

	var request listingUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seller_sku, marketplace_id, and updated_data are required"})
		return
	}

	submission, err := h.submitter.SubmitUpdate(
		c.Request.Context(),
		request.SellerSKU,
		request.MarketplaceID,
		request.LanguageTag,
		&request.UpdatedData,
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] listing update failed for SKU %q: %v", request.SellerSKU, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to submit listing update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": uuid.NewString(),
		"submission": submission,
	})
}

// GetProduct retrieves live catalog details for an ASIN
func (h *Handler) GetProduct(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "product catalog is not configured"})
		return
	}

	asin := c.Param("asin")
	product, err := h.catalog.GetProduct(c.Request.Context(), asin)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		log.Printf("[HTTP] product lookup failed for ASIN %q: %v", asin, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to retrieve product details"})
		return
	}

	c.JSON(http.StatusOK, product)
}
