package domain

import "context"

// ListingStore defines the interface for persisting generated listings.
// Persistence is best-effort: callers log failures and keep the computed
// listing.
type ListingStore interface {
	SaveListing(ctx context.Context, record *ListingRecord) error
	Close() error
}

// ProductCatalog defines the interface for retrieving live product data
// from the marketplace (Product Advertising API).
type ProductCatalog interface {
	GetProduct(ctx context.Context, asin string) (*ProductDetails, error)
}

// ListingSubmitter defines the interface for submitting listing updates to
// the marketplace (Selling Partner API).
type ListingSubmitter interface {
	SubmitUpdate(ctx context.Context, sellerSKU, marketplaceID, languageTag string, update *ListingUpdate) (*UpdateSubmission, error)
}
