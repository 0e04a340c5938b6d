package usecase

import (
	"fmt"
	"strings"
)

const (
	bulletCount     = 5
	paddingFeature  = "Quality"
	fallbackBenefit = "Maximum Performance"
	bulletBenefit   = "enhanced performance"
	listingYear     = "2025"
)

// assembledListing is the text output of the template assembler
type assembledListing struct {
	Title       string
	Bullets     []string
	Description string
}

// assembleListing fills the selected template pair with the request's
// features. Total over validated input: short feature lists are padded,
// never rejected.
func assembleListing(tpl categoryTemplate, features []string, category string) assembledListing {
	benefit := deriveBenefit(features)

	return assembledListing{
		Title:       buildTitle(tpl.Title, features, category, benefit),
		Bullets:     buildBullets(features, category, benefit),
		Description: tpl.Description,
	}
}

// deriveBenefit takes the last whitespace-delimited token of the first
// feature as the headline benefit
func deriveBenefit(features []string) string {
	if len(features) == 0 {
		return fallbackBenefit
	}
	tokens := strings.Fields(features[0])
	if len(tokens) == 0 {
		return fallbackBenefit
	}
	return tokens[len(tokens)-1]
}

// buildTitle substitutes the five positional placeholders in a fixed order,
// one leftmost literal replacement per placeholder.
func buildTitle(template string, features []string, category, benefit string) string {
	feature1 := paddingFeature
	feature2 := paddingFeature
	if len(features) > 0 {
		feature1 = features[0]
	}
	if len(features) > 1 {
		feature2 = features[1]
	}

	title := strings.Replace(template, "[FEATURE1]", feature1, 1)
	title = strings.Replace(title, "[FEATURE2]", feature2, 1)
	title = strings.Replace(title, "[CATEGORY]", category, 1)
	title = strings.Replace(title, "[BENEFIT]", benefit, 1)
	title = strings.Replace(title, "[YEAR]", listingYear, 1)
	return title
}

// buildBullets produces exactly bulletCount bullets: real features first in
// input order, then synthetic padding continuing the cyclic template index
// from the real-bullet count.
func buildBullets(features []string, category, benefit string) []string {
	if benefit == "" {
		benefit = bulletBenefit
	}

	bullets := make([]string, 0, bulletCount)
	for i, feature := range features {
		if len(bullets) == bulletCount {
			break
		}
		bullets = append(bullets, fillBullet(i, feature, category, benefit))
	}

	for n := len(bullets); n < bulletCount; n++ {
		synthetic := fmt.Sprintf("Quality Feature %d", n+1)
		bullets = append(bullets, fillBullet(n, synthetic, category, benefit))
	}

	return bullets
}

// fillBullet renders one bullet from the cyclic template table
func fillBullet(index int, feature, category, benefit string) string {
	template := bulletTemplates[index%len(bulletTemplates)]
	bullet := strings.Replace(template, "[FEATURE]", strings.ToUpper(feature), 1)
	bullet = strings.Replace(bullet, "[BENEFIT]", benefit, 1)
	bullet = strings.Replace(bullet, "[CATEGORY]", category, 1)
	return bullet
}
