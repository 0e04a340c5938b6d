package usecase

import "strings"

// maxKeywords caps the deduplicated keyword set attached to a listing
const maxKeywords = 15

// featureStopWords are filler tokens excluded from feature-derived keywords
var featureStopWords = map[string]bool{
	"with": true, "that": true, "this": true, "from": true,
	"your": true, "will": true, "have": true, "more": true, "than": true,
}

// ExtractKeywords derives the listing keyword set from three sources: the
// category's curated base terms, tokens parsed from the feature text, and
// product name tokens. The union is deduplicated in first-seen order and
// truncated to maxKeywords. Never fails; an empty feature list yields the
// base keywords alone.
func ExtractKeywords(category string, features []string, productName string) []string {
	keywords := baseKeywordsFor(category)

	for _, feature := range features {
		for _, token := range strings.Fields(strings.ToLower(feature)) {
			if len(token) > 3 && !featureStopWords[token] {
				keywords = append(keywords, token)
			}
		}
	}

	keywords = append(keywords, strings.Fields(strings.ToLower(productName))...)

	return dedupeKeywords(keywords, maxKeywords)
}

// MergeTargetKeywords folds user-supplied target keywords into an extracted
// set. Targets come first so explicit intent survives the cap.
func MergeTargetKeywords(targets, extracted []string) []string {
	if len(targets) == 0 {
		return extracted
	}
	merged := make([]string, 0, len(targets)+len(extracted))
	merged = append(merged, targets...)
	merged = append(merged, extracted...)
	return dedupeKeywords(merged, maxKeywords)
}

// dedupeKeywords removes duplicates (case-sensitive, first occurrence wins)
// and truncates to limit
func dedupeKeywords(keywords []string, limit int) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, limit)
	for _, kw := range keywords {
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
		if len(out) == limit {
			break
		}
	}
	return out
}
