package domain

import "errors"

var (
	// ErrInvalidRequest is returned when a required request field is empty or missing
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrGenerationFailed wraps unexpected failures inside the generation pipeline
	ErrGenerationFailed = errors.New("failed to generate listing")

	// ErrProductNotFound is returned when an ASIN cannot be found in the catalog
	ErrProductNotFound = errors.New("product not found in marketplace catalog")

	// ErrPAAPIFailure is returned when a Product Advertising API request fails
	ErrPAAPIFailure = errors.New("product advertising API request failed")

	// ErrSPAPIFailure is returned when a Selling Partner API submission fails
	ErrSPAPIFailure = errors.New("selling partner API request failed")

	// ErrStoreUnavailable is returned when the listing store cannot be reached
	ErrStoreUnavailable = errors.New("listing store unavailable")
)
