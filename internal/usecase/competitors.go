package usecase

import (
	"fmt"

	"github.com/listingcraft/backend/internal/domain"
)

// competitorURLPool is a fixed set of illustrative marketplace URLs. This is
// placeholder data, not real competitive intelligence; the count and title
// patterns are stable so downstream consumers can rely on them.
var competitorURLPool = [5]string{
	"https://www.amazon.com/dp/B0COMP00001",
	"https://www.amazon.com/dp/B0COMP00002",
	"https://www.amazon.com/dp/B0COMP00003",
	"https://www.amazon.com/dp/B0COMP00004",
	"https://www.amazon.com/dp/B0COMP00005",
}

// competitorTitlePatterns synthesize deterministic titles from the product
// name and category
var competitorTitlePatterns = [5]string{
	"Premium %s with Advanced Features - Top Rated in %s",
	"Professional %s - Best Seller in %s",
	"%s Deluxe Edition - Customer Favorite for %s",
	"Bestselling %s with Extended Warranty - %s Choice",
	"Value %s Bundle - Highly Reviewed %s Pick",
}

// GenerateCompetitorRefs returns the fixed-size illustrative competitor set
// for a product
func GenerateCompetitorRefs(productName, category string) []domain.CompetitorRef {
	refs := make([]domain.CompetitorRef, 0, len(competitorURLPool))
	for i, url := range competitorURLPool {
		refs = append(refs, domain.CompetitorRef{
			URL:   url,
			Title: fmt.Sprintf(competitorTitlePatterns[i], productName, category),
		})
	}
	return refs
}

// AnalyzeCompetitorURLs produces a canned insight per competitor URL. Like
// the reference set above it is illustrative filler standing in for a real
// competitive-analysis pipeline.
func AnalyzeCompetitorURLs(urls []string) []domain.CompetitorInsight {
	insights := make([]domain.CompetitorInsight, 0, len(urls))
	for i, url := range urls {
		insights = append(insights, domain.CompetitorInsight{
			URL: url,
			Insight: fmt.Sprintf(
				"Product %d seems to focus on 'durability' and 'eco-friendliness'. Consider highlighting similar strengths or finding gaps.",
				i+1),
		})
	}
	return insights
}
