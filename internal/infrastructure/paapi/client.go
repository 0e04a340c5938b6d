package paapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/listingcraft/backend/internal/domain"
)

// Client handles communication with the Amazon Product Advertising API
// (PAAPI v5). It satisfies domain.ProductCatalog.
type Client struct {
	httpClient  *http.Client
	accessKey   string
	secretKey   string
	partnerTag  string
	host        string
	marketplace string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new PAAPI client. PAAPI grants roughly one request
// per second to new associates, so the limiter defaults to that with a
// small burst.
func NewClient(accessKey, secretKey, partnerTag, host, marketplace string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		accessKey:   accessKey,
		secretKey:   secretKey,
		partnerTag:  partnerTag,
		host:        host,
		marketplace: marketplace,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// SetDebug toggles verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[PAAPI] "+format, args...)
	}
}

// getItemsRequest is the PAAPI v5 GetItems request body
type getItemsRequest struct {
	ItemIds     []string `json:"ItemIds"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace"`
	Resources   []string `json:"Resources"`
}

// getItemsResponse mirrors the subset of the PAAPI v5 GetItems response the
// service consumes
type getItemsResponse struct {
	ItemsResult struct {
		Items []paapiItem `json:"Items"`
	} `json:"ItemsResult"`
	Errors []struct {
		Code    string `json:"Code"`
		Message string `json:"Message"`
	} `json:"Errors"`
}

type paapiItem struct {
	ASIN     string `json:"ASIN"`
	ItemInfo struct {
		Title struct {
			DisplayValue string `json:"DisplayValue"`
		} `json:"Title"`
		Features struct {
			DisplayValues []string `json:"DisplayValues"`
		} `json:"Features"`
		ByLineInfo struct {
			Brand struct {
				DisplayValue string `json:"DisplayValue"`
			} `json:"Brand"`
		} `json:"ByLineInfo"`
	} `json:"ItemInfo"`
	Images struct {
		Primary struct {
			Medium struct {
				URL string `json:"URL"`
			} `json:"Medium"`
		} `json:"Primary"`
	} `json:"Images"`
}

// getItemsResources lists the response groups requested for every lookup:
// title, feature bullets, brand, and the primary image.
var getItemsResources = []string{
	"ItemInfo.Title",
	"ItemInfo.Features",
	"ItemInfo.ByLineInfo",
	"Images.Primary.Medium",
}

// GetProduct fetches catalog details for a single ASIN. Transient failures
// (5xx, 429) are retried with exponential backoff; an unknown ASIN maps to
// domain.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, asin string) (*domain.ProductDetails, error) {
	if asin == "" {
		return nil, domain.ErrInvalidRequest
	}

	reqBody, err := json.Marshal(getItemsRequest{
		ItemIds:     []string{asin},
		PartnerTag:  c.partnerTag,
		PartnerType: "Associates",
		Marketplace: c.marketplace,
		Resources:   getItemsResources,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/paapi5/getitems", c.host)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL, reqBody)
		if err != nil {
			c.debugLog("request error (attempt %d): %v", attempt, err)
			lastErr = err
			sleepBackoff(ctx, attempt)
			continue
		}

		body, _ := readLimitedBody(resp.Body, 1<<20)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, domain.ErrProductNotFound
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			c.debugLog("API error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, body)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrPAAPIFailure, resp.StatusCode)
			sleepBackoff(ctx, attempt)
			continue
		case resp.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("%w: status %d", domain.ErrPAAPIFailure, resp.StatusCode)
		}

		var itemsResp getItemsResponse
		if err := json.Unmarshal(body, &itemsResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if len(itemsResp.Errors) > 0 {
			c.debugLog("API returned errors for ASIN %s: %v", asin, itemsResp.Errors)
			return nil, fmt.Errorf("%w: %s", domain.ErrPAAPIFailure, itemsResp.Errors[0].Message)
		}
		if len(itemsResp.ItemsResult.Items) == 0 {
			return nil, domain.ErrProductNotFound
		}

		return mapItem(&itemsResp.ItemsResult.Items[0]), nil
	}

	return nil, lastErr
}

// doRequest executes a PAAPI POST with the headers the service accepts
func (c *Client) doRequest(ctx context.Context, reqURL string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("X-Amz-Target", "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.GetItems")
	req.Header.Set("User-Agent", "ListingCraft/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPAAPIFailure, err)
	}
	return resp, nil
}

// mapItem converts a PAAPI item into the domain product shape
func mapItem(item *paapiItem) *domain.ProductDetails {
	return &domain.ProductDetails{
		ASIN:         item.ASIN,
		Title:        item.ItemInfo.Title.DisplayValue,
		BulletPoints: item.ItemInfo.Features.DisplayValues,
		Brand:        item.ItemInfo.ByLineInfo.Brand.DisplayValue,
		ImageURL:     item.Images.Primary.Medium.URL,
	}
}

// exponentialBackoff returns the wait before the next retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<attempt) * time.Millisecond
}

func sleepBackoff(ctx context.Context, attempt int) {
	select {
	case <-ctx.Done():
	case <-time.After(exponentialBackoff(attempt)):
	}
}

// readLimitedBody reads at most limit bytes from a response body
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}
