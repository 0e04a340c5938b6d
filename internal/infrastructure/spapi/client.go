package spapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/listingcraft/backend/internal/domain"
)

// Supported language tags for listing content
const (
	LanguageTagEnglish = "en_US"
	LanguageTagArabic  = "ar_AE"
)

// MarketplaceIDKSA is the Amazon.sa marketplace identifier
const MarketplaceIDKSA = "A1ZFF27R1HYPUL"

// Client submits listing updates through the Selling Partner API. It
// satisfies domain.ListingSubmitter. Credential refresh is handled
// elsewhere; the client only attaches the current access token.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	sellerID    string
	accessToken string
}

// NewClient creates a new SP-API client. An empty access token is allowed:
// submissions then return a structured no-auth status instead of reaching
// the marketplace.
func NewClient(endpoint, sellerID, accessToken string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint:    endpoint,
		sellerID:    sellerID,
		accessToken: accessToken,
	}
}

// patchOperation is one JSON-Patch entry of a ListingsItemPutSubmission
type patchOperation struct {
	Op    string           `json:"op"`
	Path  string           `json:"path"`
	Value []localizedValue `json:"value"`
}

// localizedValue pairs listing text with its language tag
type localizedValue struct {
	Value       string `json:"value"`
	LanguageTag string `json:"language_tag"`
}

// putSubmissionBody is the request payload for the listings items PUT call
type putSubmissionBody struct {
	ProductType string           `json:"productType"`
	Patches     []patchOperation `json:"patches"`
}

// putSubmissionResponse is the marketplace acknowledgement payload
type putSubmissionResponse struct {
	SKU          string `json:"sku"`
	Status       string `json:"status"`
	SubmissionID string `json:"submissionId"`
	Issues       []struct {
		Code     string `json:"code"`
		Message  string `json:"message"`
		Severity string `json:"severity"`
	} `json:"issues"`
}

// SubmitUpdate sends replacement listing content for a seller SKU to the
// given marketplace. Only the fields present in the update become patch
// operations.
func (c *Client) SubmitUpdate(
	ctx context.Context,
	sellerSKU, marketplaceID, languageTag string,
	update *domain.ListingUpdate,
) (*domain.UpdateSubmission, error) {
	if sellerSKU == "" || marketplaceID == "" || update == nil {
		return nil, domain.ErrInvalidRequest
	}
	if languageTag == "" {
		languageTag = LanguageTagEnglish
	}

	if c.accessToken == "" {
		log.Printf("[SPAPI] access token not configured; update for SKU %q not submitted", sellerSKU)
		return &domain.UpdateSubmission{
			Status:  "ERROR_NO_AUTH",
			Message: "SP-API credentials not configured; listing update was not sent to the marketplace",
		}, nil
	}

	patches := buildPatches(update, languageTag)
	if len(patches) == 0 {
		return nil, fmt.Errorf("%w: update contains no content", domain.ErrInvalidRequest)
	}

	body, err := json.Marshal(putSubmissionBody{
		ProductType: "PRODUCT",
		Patches:     patches,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	reqURL := fmt.Sprintf("%s/listings/2021-08-01/items/%s/%s?marketplaceIds=%s",
		c.endpoint, c.sellerID, sellerSKU, marketplaceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-amz-access-token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSPAPIFailure, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		log.Printf("[SPAPI] submission failed for SKU %q - status: %d, body: %s", sellerSKU, resp.StatusCode, respBody)
		return nil, fmt.Errorf("%w: status %d", domain.ErrSPAPIFailure, resp.StatusCode)
	}

	var submission putSubmissionResponse
	if err := json.Unmarshal(respBody, &submission); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	result := &domain.UpdateSubmission{
		Status:       submission.Status,
		SubmissionID: submission.SubmissionID,
	}
	for _, issue := range submission.Issues {
		result.Issues = append(result.Issues, domain.UpdateIssue{
			Code:     issue.Code,
			Message:  issue.Message,
			Severity: issue.Severity,
		})
	}

	log.Printf("[SPAPI] submission %s accepted for SKU %q (status: %s)", result.SubmissionID, sellerSKU, result.Status)
	return result, nil
}

// buildPatches converts a listing update into SP-API JSON-Patch operations.
// Attribute paths follow the generic PRODUCT type definition.
func buildPatches(update *domain.ListingUpdate, languageTag string) []patchOperation {
	var patches []patchOperation

	if update.Title != "" {
		patches = append(patches, patchOperation{
			Op:    "replace",
			Path:  "/attributes/item_name",
			Value: []localizedValue{{Value: update.Title, LanguageTag: languageTag}},
		})
	}

	if len(update.BulletPoints) > 0 {
		values := make([]localizedValue, 0, len(update.BulletPoints))
		for _, bp := range update.BulletPoints {
			values = append(values, localizedValue{Value: bp, LanguageTag: languageTag})
		}
		patches = append(patches, patchOperation{
			Op:    "replace",
			Path:  "/attributes/bullet_point",
			Value: values,
		})
	}

	if update.Description != "" {
		patches = append(patches, patchOperation{
			Op:    "replace",
			Path:  "/attributes/product_description",
			Value: []localizedValue{{Value: update.Description, LanguageTag: languageTag}},
		})
	}

	return patches
}
