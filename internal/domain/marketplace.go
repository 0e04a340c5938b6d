package domain

// ProductDetails represents live catalog data retrieved for an ASIN
type ProductDetails struct {
	ASIN         string   `json:"asin"`
	Title        string   `json:"title"`
	BulletPoints []string `json:"bullet_points,omitempty"`
	Description  string   `json:"description,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
}

// ListingUpdate carries the replacement content for a marketplace listing
type ListingUpdate struct {
	Title        string   `json:"title,omitempty"`
	BulletPoints []string `json:"bullet_points,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// UpdateSubmission is the marketplace's acknowledgement of a listing update
type UpdateSubmission struct {
	Status       string        `json:"status"`
	SubmissionID string        `json:"submission_id,omitempty"`
	Message      string        `json:"message,omitempty"`
	Issues       []UpdateIssue `json:"issues,omitempty"`
}

// UpdateIssue is a single warning or error attached to a submission
type UpdateIssue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// CompetitorInsight is the per-URL output of the competitor analysis endpoint
type CompetitorInsight struct {
	URL     string `json:"url"`
	Insight string `json:"insight"`
}
