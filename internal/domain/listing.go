package domain

import "time"

// ListingRequest represents a listing generation request
type ListingRequest struct {
	ProductName    string   `json:"product_name" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	Features       []string `json:"features" binding:"required,min=1"`
	TargetKeywords []string `json:"target_keywords,omitempty"`
}

// GeneratedListing is the complete synthesized listing returned to the caller.
// Immutable once constructed.
type GeneratedListing struct {
	Title          string          `json:"title"`
	Bullets        []string        `json:"bullets"`
	Description    string          `json:"description"`
	Keywords       []string        `json:"keywords"`
	CompetitorURLs []CompetitorRef `json:"competitor_urls"`
	SEOAnalysis    SEOAnalysis     `json:"seo_analysis"`
}

// CompetitorRef is an illustrative competitor listing reference
type CompetitorRef struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SEOAnalysis holds the full scoring breakdown for a generated listing
type SEOAnalysis struct {
	TitleAnalysis    TitleAnalysis             `json:"title_analysis"`
	KeywordDensity   map[string]KeywordDensity `json:"keyword_density"`
	KeywordPlacement KeywordPlacement          `json:"keyword_placement"`
	SEOScore         SEOScore                  `json:"seo_score"`
	Recommendations  []string                  `json:"recommendations"`
}

// TitleAnalysis reports the title length check
type TitleAnalysis struct {
	CharacterCount int    `json:"character_count"`
	CharacterLimit int    `json:"character_limit"`
	WithinLimit    bool   `json:"within_limit"`
	Recommendation string `json:"recommendation"`
}

// KeywordDensity holds occurrence stats for a single keyword across the
// combined listing text
type KeywordDensity struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// KeywordPlacement classifies keywords by where they landed in the listing.
// A keyword may appear in both the title and bullets lists; missing is
// exclusive of the other two.
type KeywordPlacement struct {
	KeywordsInTitle   []string `json:"keywords_in_title"`
	KeywordsInBullets []string `json:"keywords_in_bullets"`
	MissingKeywords   []string `json:"missing_keywords"`
}

// SEOScore is the weighted aggregate score
type SEOScore struct {
	Score      int     `json:"score"`
	MaxScore   int     `json:"max_score"`
	Percentage float64 `json:"percentage"`
	Rating     string  `json:"rating"`
}

// ListingRecord is the persistence shape handed to the store. The store
// assigns identity; the generator never reads it back.
type ListingRecord struct {
	ProductName string
	Category    string
	Title       string
	Description string
	Keywords    string // comma-delimited
	Bullets     []BulletRow
	Competitors []CompetitorRow
	CreatedAt   time.Time
}

// BulletRow is one ordered bullet line of a persisted listing
type BulletRow struct {
	Position int
	Text     string
}

// CompetitorRow is one ordered competitor reference of a persisted listing
type CompetitorRow struct {
	Position int
	URL      string
	Title    string
}
