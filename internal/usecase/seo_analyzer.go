package usecase

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/listingcraft/backend/internal/domain"
)

// Package-level compiled regex pattern for performance
var wordTokenRegex = regexp.MustCompile(`\w+`)

const (
	titleCharacterLimit = 200
	titleDescriptiveMin = 100
	maxSEOScore         = 100

	// Density band considered healthy, in percent
	minHealthyDensity = 0.5
	maxHealthyDensity = 2.5

	// Recommendation lists name at most this many keywords
	recommendationKeywordCap = 3
)

// Score weights. These must sum to exactly maxSEOScore; scoreWeightsTotal
// exists so tests can assert the invariant rather than clamp around it.
const (
	weightTitleLength    = 20
	weightTitleCoverage  = 25
	weightBulletCoverage = 20
	weightDensityBand    = 15
	weightNotMissing     = 20

	scoreWeightsTotal = weightTitleLength + weightTitleCoverage +
		weightBulletCoverage + weightDensityBand + weightNotMissing
)

// Rating thresholds on the summed score
const (
	ratingExcellentMin = 85
	ratingGoodMin      = 70
	ratingFairMin      = 50
)

// AnalyzeSEO runs the full scoring pipeline over an assembled listing:
// title check, keyword density, keyword placement, weighted score, and
// recommendations, in that fixed order. Pure function; safe for concurrent
// use.
func AnalyzeSEO(title string, bullets []string, description string, keywords []string) domain.SEOAnalysis {
	titleAnalysis := analyzeTitleLength(title)
	density := analyzeKeywordDensity(title, bullets, description, keywords)
	placement := analyzeKeywordPlacement(title, bullets, keywords)
	score := calculateSEOScore(titleAnalysis, density, placement, keywords)
	recommendations := buildRecommendations(titleAnalysis, density, placement)

	return domain.SEOAnalysis{
		TitleAnalysis:    titleAnalysis,
		KeywordDensity:   density,
		KeywordPlacement: placement,
		SEOScore:         score,
		Recommendations:  recommendations,
	}
}

// analyzeTitleLength checks the title against the marketplace character
// limit. First matching recommendation rule wins.
func analyzeTitleLength(title string) domain.TitleAnalysis {
	count := utf8.RuneCountInString(title)
	withinLimit := count <= titleCharacterLimit

	var recommendation string
	switch {
	case !withinLimit:
		recommendation = fmt.Sprintf("Title exceeds the %d character limit by %d characters",
			titleCharacterLimit, count-titleCharacterLimit)
	case count < titleDescriptiveMin:
		recommendation = "Title could be more descriptive - consider adding keywords or key benefits"
	default:
		recommendation = "Title length is optimal"
	}

	return domain.TitleAnalysis{
		CharacterCount: count,
		CharacterLimit: titleCharacterLimit,
		WithinLimit:    withinLimit,
		Recommendation: recommendation,
	}
}

// analyzeKeywordDensity counts substring occurrences of each keyword in the
// combined lower-cased listing text. Matching is substring, not
// token-boundary: a short keyword also counts inside a longer word.
// Keywords with zero occurrences are omitted.
func analyzeKeywordDensity(title string, bullets []string, description string, keywords []string) map[string]domain.KeywordDensity {
	fullText := strings.ToLower(title + " " + strings.Join(bullets, " ") + " " + description)
	totalWords := len(wordTokenRegex.FindAllString(fullText, -1))

	density := make(map[string]domain.KeywordDensity)
	if totalWords == 0 {
		return density
	}

	for _, keyword := range keywords {
		count := strings.Count(fullText, strings.ToLower(keyword))
		if count == 0 {
			continue
		}
		density[keyword] = domain.KeywordDensity{
			Count:      count,
			Percentage: round2(float64(count) / float64(totalWords) * 100),
		}
	}
	return density
}

// analyzeKeywordPlacement classifies each keyword by case-insensitive
// substring presence in the title and in any bullet. A keyword can land in
// both lists; missing means found in neither.
func analyzeKeywordPlacement(title string, bullets []string, keywords []string) domain.KeywordPlacement {
	titleLower := strings.ToLower(title)
	bulletsLower := make([]string, len(bullets))
	for i, b := range bullets {
		bulletsLower[i] = strings.ToLower(b)
	}

	placement := domain.KeywordPlacement{
		KeywordsInTitle:   []string{},
		KeywordsInBullets: []string{},
		MissingKeywords:   []string{},
	}

	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		inTitle := strings.Contains(titleLower, kw)
		inBullets := false
		for _, b := range bulletsLower {
			if strings.Contains(b, kw) {
				inBullets = true
				break
			}
		}

		if inTitle {
			placement.KeywordsInTitle = append(placement.KeywordsInTitle, keyword)
		}
		if inBullets {
			placement.KeywordsInBullets = append(placement.KeywordsInBullets, keyword)
		}
		if !inTitle && !inBullets {
			placement.MissingKeywords = append(placement.MissingKeywords, keyword)
		}
	}
	return placement
}

// calculateSEOScore sums the five weighted terms. Each term is capped by
// its own weight; an empty keyword set contributes nothing beyond the title
// term.
func calculateSEOScore(
	titleAnalysis domain.TitleAnalysis,
	density map[string]domain.KeywordDensity,
	placement domain.KeywordPlacement,
	keywords []string,
) domain.SEOScore {
	score := 0

	if titleAnalysis.WithinLimit {
		score += weightTitleLength
	}

	if total := len(keywords); total > 0 {
		score += roundShare(weightTitleCoverage, len(placement.KeywordsInTitle), total)
		score += roundShare(weightBulletCoverage, len(placement.KeywordsInBullets), total)
		score += roundShare(weightNotMissing, total-len(placement.MissingKeywords), total)
	}

	if len(density) > 0 {
		healthy := 0
		for _, d := range density {
			if d.Percentage >= minHealthyDensity && d.Percentage <= maxHealthyDensity {
				healthy++
			}
		}
		score += roundShare(weightDensityBand, healthy, len(density))
	}

	return domain.SEOScore{
		Score:      score,
		MaxScore:   maxSEOScore,
		Percentage: round2(float64(score) / float64(maxSEOScore) * 100),
		Rating:     scoreRating(score),
	}
}

// scoreRating maps a summed score onto its step rating
func scoreRating(score int) string {
	switch {
	case score >= ratingExcellentMin:
		return "Excellent"
	case score >= ratingGoodMin:
		return "Good"
	case score >= ratingFairMin:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

// buildRecommendations generates the ordered advisory list. Each rule is
// independent; zero to four may apply. Density advisories naming keywords
// are dropped entirely when more than recommendationKeywordCap keywords
// offend, not truncated.
func buildRecommendations(
	titleAnalysis domain.TitleAnalysis,
	density map[string]domain.KeywordDensity,
	placement domain.KeywordPlacement,
) []string {
	recommendations := []string{}

	if !titleAnalysis.WithinLimit {
		recommendations = append(recommendations, fmt.Sprintf(
			"Shorten the title: it exceeds the %d character limit by %d characters and may be truncated in search results",
			titleAnalysis.CharacterLimit, titleAnalysis.CharacterCount-titleAnalysis.CharacterLimit))
	}

	if missing := placement.MissingKeywords; len(missing) > 0 {
		named := missing
		suffix := ""
		if len(missing) > recommendationKeywordCap {
			named = missing[:recommendationKeywordCap]
			suffix = fmt.Sprintf(" and %d more", len(missing)-recommendationKeywordCap)
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Work missing keywords into the listing: %s%s", strings.Join(named, ", "), suffix))
	}

	var low, high []string
	for keyword, d := range density {
		if d.Percentage < minHealthyDensity {
			low = append(low, keyword)
		} else if d.Percentage > maxHealthyDensity {
			high = append(high, keyword)
		}
	}

	if n := len(low); n > 0 && n <= recommendationKeywordCap {
		recommendations = append(recommendations, fmt.Sprintf(
			"Increase usage of under-represented keywords (below %.1f%% density): %s",
			minHealthyDensity, strings.Join(sortedCopy(low), ", ")))
	}
	if n := len(high); n > 0 && n <= recommendationKeywordCap {
		recommendations = append(recommendations, fmt.Sprintf(
			"Reduce usage of over-represented keywords (above %.1f%% density) to avoid keyword stuffing: %s",
			maxHealthyDensity, strings.Join(sortedCopy(high), ", ")))
	}

	return recommendations
}

// sortedCopy orders keyword lists drawn from map iteration so advisory text
// is deterministic
func sortedCopy(keywords []string) []string {
	out := make([]string, len(keywords))
	copy(out, keywords)
	sort.Strings(out)
	return out
}

// roundShare rounds weight*part/total to the nearest integer
func roundShare(weight, part, total int) int {
	return int(math.Round(float64(weight) * float64(part) / float64(total)))
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
