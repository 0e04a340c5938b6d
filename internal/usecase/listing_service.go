package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/listingcraft/backend/internal/domain"
)

// ListingService composes the generation pipeline: keyword extraction,
// template selection, text assembly, competitor references, and SEO
// analysis, followed by best-effort persistence.
type ListingService struct {
	store domain.ListingStore // nil disables persistence
}

// NewListingService creates a listing service. Pass a nil store to run
// without persistence.
func NewListingService(store domain.ListingStore) *ListingService {
	return &ListingService{store: store}
}

// GenerateListing validates the request, runs the synthesis pipeline, and
// attempts to persist the result. Persistence failure is logged and
// swallowed: generation success is independent of storage success.
func (s *ListingService) GenerateListing(ctx context.Context, request *domain.ListingRequest) (*domain.GeneratedListing, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	keywords := ExtractKeywords(request.Category, request.Features, request.ProductName)
	keywords = MergeTargetKeywords(request.TargetKeywords, keywords)

	template := selectTemplate(request.Category, request.ProductName)
	assembled := assembleListing(template, request.Features, request.Category)
	competitors := GenerateCompetitorRefs(request.ProductName, request.Category)
	analysis := AnalyzeSEO(assembled.Title, assembled.Bullets, assembled.Description, keywords)

	listing := &domain.GeneratedListing{
		Title:          assembled.Title,
		Bullets:        assembled.Bullets,
		Description:    assembled.Description,
		Keywords:       keywords,
		CompetitorURLs: competitors,
		SEOAnalysis:    analysis,
	}

	if s.store != nil {
		if err := s.store.SaveListing(ctx, buildRecord(request, listing)); err != nil {
			log.Printf("[STORE] best-effort save failed for %q: %v", request.ProductName, err)
		}
	}

	return listing, nil
}

// validateRequest rejects requests with empty required fields before any
// generation occurs
func validateRequest(request *domain.ListingRequest) error {
	if request == nil {
		return fmt.Errorf("%w: request body is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(request.ProductName) == "" {
		return fmt.Errorf("%w: product_name is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(request.Category) == "" {
		return fmt.Errorf("%w: category is required", domain.ErrInvalidRequest)
	}
	if len(request.Features) == 0 {
		return fmt.Errorf("%w: at least one feature is required", domain.ErrInvalidRequest)
	}
	return nil
}

// buildRecord flattens a generated listing into the persistence shape: a
// header row plus ordered bullet and competitor rows
func buildRecord(request *domain.ListingRequest, listing *domain.GeneratedListing) *domain.ListingRecord {
	record := &domain.ListingRecord{
		ProductName: request.ProductName,
		Category:    request.Category,
		Title:       listing.Title,
		Description: listing.Description,
		Keywords:    strings.Join(listing.Keywords, ","),
		CreatedAt:   time.Now(),
	}

	for i, bullet := range listing.Bullets {
		record.Bullets = append(record.Bullets, domain.BulletRow{Position: i, Text: bullet})
	}
	for i, ref := range listing.CompetitorURLs {
		record.Competitors = append(record.Competitors, domain.CompetitorRow{
			Position: i,
			URL:      ref.URL,
			Title:    ref.Title,
		})
	}
	return record
}
