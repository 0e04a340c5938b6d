package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/listingcraft/backend/config"
	"github.com/listingcraft/backend/internal/domain"
	"github.com/listingcraft/backend/internal/usecase"
)

// TestMain sets up the test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*", "https://app.listingcraft.io"},
		},
		RateLimit: config.RateLimitConfig{PerIP: 0},
	}
}

// setupTestRouter wires a router with an in-memory listing service and no
// marketplace integrations; their endpoints return 503.
func setupTestRouter() *gin.Engine {
	handler := NewHandler(usecase.NewListingService(nil), nil, nil)
	return SetupRouter(testConfig(), handler)
}

// --- Stub marketplace collaborators ---

type stubCatalog struct {
	product *domain.ProductDetails
	err     error
}

func (s *stubCatalog) GetProduct(_ context.Context, _ string) (*domain.ProductDetails, error) {
	return s.product, s.err
}

type stubSubmitter struct {
	submission *domain.UpdateSubmission
	err        error

	gotSKU         string
	gotMarketplace string
	gotLanguage    string
	gotUpdate      *domain.ListingUpdate
}

func (s *stubSubmitter) SubmitUpdate(_ context.Context, sellerSKU, marketplaceID, languageTag string, update *domain.ListingUpdate) (*domain.UpdateSubmission, error) {
	s.gotSKU = sellerSKU
	s.gotMarketplace = marketplaceID
	s.gotLanguage = languageTag
	s.gotUpdate = update
	return s.submission, s.err
}

func setupTestRouterWith(catalog domain.ProductCatalog, submitter domain.ListingSubmitter) *gin.Engine {
	handler := NewHandler(usecase.NewListingService(nil), catalog, submitter)
	return SetupRouter(testConfig(), handler)
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "listingcraft-backend" {
			t.Errorf("service = %v, want listingcraft-backend", response["service"])
		}
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter()

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			req, _ := http.NewRequest(method, "/health", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

func TestGenerateListingEndpoint(t *testing.T) {
	t.Run("returns a complete listing", func(t *testing.T) {
		router := setupTestRouter()

		payload := `{
			"product_name": "Ultra Quiet Air Purifier",
			"category": "Home & Kitchen",
			"features": [
				"HEPA filtration removes 99.97% of particles",
				"Ultra-quiet 25dB operation",
				"Coverage for large rooms"
			]
		}`
		req, _ := http.NewRequest("POST", "/api/v1/listings/generate", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			RequestID string                  `json:"request_id"`
			Listing   domain.GeneratedListing `json:"listing"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if response.RequestID == "" {
			t.Error("request_id should be set")
		}
		if !strings.Contains(response.Listing.Title, "Ultra Quiet Air Purifier") {
			t.Errorf("title = %q, want to contain the product name", response.Listing.Title)
		}
		if len(response.Listing.Bullets) != 5 {
			t.Errorf("len(bullets) = %d, want 5", len(response.Listing.Bullets))
		}
		if len(response.Listing.Keywords) == 0 {
			t.Error("keywords should not be empty")
		}
		if len(response.Listing.CompetitorURLs) != 5 {
			t.Errorf("len(competitor_urls) = %d, want 5", len(response.Listing.CompetitorURLs))
		}
		score := response.Listing.SEOAnalysis.SEOScore
		if score.MaxScore != 100 || score.Score < 0 || score.Score > 100 {
			t.Errorf("seo_score = %+v, want score within [0, 100]", score)
		}
	})

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("POST", "/api/v1/listings/generate", strings.NewReader("{invalid json}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns 400 when required fields are missing", func(t *testing.T) {
		router := setupTestRouter()

		payloads := []string{
			`{"category": "Electronics", "features": ["Fast"]}`,
			`{"product_name": "Widget", "features": ["Fast"]}`,
			`{"product_name": "Widget", "category": "Electronics", "features": []}`,
		}
		for _, payload := range payloads {
			req, _ := http.NewRequest("POST", "/api/v1/listings/generate", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("payload %s: Status = %d, want %d", payload, w.Code, http.StatusBadRequest)
			}

			var response map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if response["error"] == nil {
				t.Error("expected error field in response")
			}
		}
	})

	t.Run("whitespace-only category is rejected by the service", func(t *testing.T) {
		router := setupTestRouter()

		payload := `{"product_name": "Widget", "category": "   ", "features": ["Fast pairing"]}`
		req, _ := http.NewRequest("POST", "/api/v1/listings/generate", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestAnalyzeCompetitorsEndpoint(t *testing.T) {
	t.Run("returns one insight per url", func(t *testing.T) {
		router := setupTestRouter()

		payload := `{"urls": ["https://www.amazon.com/dp/B000000001", "https://www.amazon.com/dp/B000000002"]}`
		req, _ := http.NewRequest("POST", "/api/v1/listings/analyze-competitors", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Analysis []domain.CompetitorInsight `json:"analysis"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(response.Analysis) != 2 {
			t.Errorf("len(analysis) = %d, want 2", len(response.Analysis))
		}
	})

	t.Run("returns 400 for an empty url list", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("POST", "/api/v1/listings/analyze-competitors", strings.NewReader(`{"urls": []}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestUpdateListingEndpoint(t *testing.T) {
	updatePayload := `{
		"seller_sku": "SKU-123",
		"marketplace_id": "A1ZFF27R1HYPUL",
		"language_tag": "ar_AE",
		"updated_data": {
			"title": "New Title",
			"bullet_points": ["FIRST", "SECOND"],
			"description": "New description"
		}
	}`

	t.Run("returns 503 when submission is not configured", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("POST", "/api/v1/listings/update", strings.NewReader(updatePayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusServiceUnavailable)
		}
	})

	t.Run("forwards the update to the submitter", func(t *testing.T) {
		submitter := &stubSubmitter{
			submission: &domain.UpdateSubmission{Status: "ACCEPTED", SubmissionID: "sub-1"},
		}
		router := setupTestRouterWith(nil, submitter)

		req, _ := http.NewRequest("POST", "/api/v1/listings/update", strings.NewReader(updatePayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
		}
		if submitter.gotSKU != "SKU-123" || submitter.gotMarketplace != "A1ZFF27R1HYPUL" {
			t.Errorf("submitter got %q/%q, want SKU-123/A1ZFF27R1HYPUL", submitter.gotSKU, submitter.gotMarketplace)
		}
		if submitter.gotLanguage != "ar_AE" {
			t.Errorf("language = %q, want ar_AE", submitter.gotLanguage)
		}
		if submitter.gotUpdate == nil || submitter.gotUpdate.Title != "New Title" {
			t.Errorf("update = %+v, want title 'New Title'", submitter.gotUpdate)
		}

		var response struct {
			RequestID  string                   `json:"request_id"`
			Submission *domain.UpdateSubmission `json:"submission"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Submission == nil || response.Submission.Status != "ACCEPTED" {
			t.Errorf("submission = %+v, want status ACCEPTED", response.Submission)
		}
	})

	t.Run("returns 502 when submission fails upstream", func(t *testing.T) {
		submitter := &stubSubmitter{err: domain.ErrSPAPIFailure}
		router := setupTestRouterWith(nil, submitter)

		req, _ := http.NewRequest("POST", "/api/v1/listings/update", strings.NewReader(updatePayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})

	t.Run("returns 400 when required fields are missing", func(t *testing.T) {
		submitter := &stubSubmitter{}
		router := setupTestRouterWith(nil, submitter)

		req, _ := http.NewRequest("POST", "/api/v1/listings/update", strings.NewReader(`{"seller_sku": "SKU-123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestGetProductEndpoint(t *testing.T) {
	t.Run("returns 503 when catalog is not configured", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/products/B0EXAMPLE01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusServiceUnavailable)
		}
	})

	t.Run("returns product details", func(t *testing.T) {
		catalog := &stubCatalog{
			product: &domain.ProductDetails{
				ASIN:  "B0EXAMPLE01",
				Title: "Example Product",
				Brand: "Example Brand",
			},
		}
		router := setupTestRouterWith(catalog, nil)

		req, _ := http.NewRequest("GET", "/api/v1/products/B0EXAMPLE01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var product domain.ProductDetails
		if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if product.ASIN != "B0EXAMPLE01" || product.Title != "Example Product" {
			t.Errorf("product = %+v, want the stubbed details", product)
		}
	})

	t.Run("returns 404 for unknown products", func(t *testing.T) {
		catalog := &stubCatalog{err: domain.ErrProductNotFound}
		router := setupTestRouterWith(catalog, nil)

		req, _ := http.NewRequest("GET", "/api/v1/products/B0MISSING99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("returns 502 for upstream failures", func(t *testing.T) {
		catalog := &stubCatalog{err: domain.ErrPAAPIFailure}
		router := setupTestRouterWith(catalog, nil)

		req, _ := http.NewRequest("GET", "/api/v1/products/B0EXAMPLE01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})
}

// TestCORSIntegration tests CORS headers end-to-end with the full router
func TestCORSIntegration(t *testing.T) {
	t.Run("health endpoint has CORS for allowed frontend", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set("Origin", "https://app.listingcraft.io")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.listingcraft.io" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the app origin", got)
		}
	})

	t.Run("generate endpoint has CORS for localhost", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("POST", "/api/v1/listings/generate", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "http://localhost:3000")
		}
	})
}

// TestRecoveryMiddleware tests panic recovery
func TestRecoveryMiddleware(t *testing.T) {
	router := setupTestRouter()
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	req, _ := http.NewRequest("GET", "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

// TestJSONResponses tests that responses are valid JSON
func TestJSONResponses(t *testing.T) {
	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"POST", "/api/v1/listings/generate"},
		{"POST", "/api/v1/listings/update"},
		{"GET", "/api/v1/products/B0EXAMPLE01"},
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint.method+" "+endpoint.path, func(t *testing.T) {
			router := setupTestRouter()

			req, _ := http.NewRequest(endpoint.method, endpoint.path, nil)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			gotContentType := w.Header().Get("Content-Type")
			wantContentType := "application/json; charset=utf-8"
			if gotContentType != wantContentType {
				t.Errorf("Content-Type = %q, want %q", gotContentType, wantContentType)
			}

			var response map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Errorf("Response should be valid JSON, got error: %v", err)
			}
		})
	}
}
