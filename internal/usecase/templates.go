package usecase

import "strings"

// categoryTemplate is a title/description template pair for one category.
// Title templates carry the positional [FEATURE1]/[FEATURE2]/[CATEGORY]/
// [BENEFIT]/[YEAR] placeholders filled by the assembler; {product_name} and
// {category} slots are baked in at selection time and never touched again.
type categoryTemplate struct {
	Title       string
	Description string
}

// categoryTemplates maps the known category set to its template pair.
// Immutable after init; lookups fall back to defaultTemplate.
var categoryTemplates = map[string]categoryTemplate{
	"Electronics": {
		Title: "{product_name} - [FEATURE1] [CATEGORY] with [FEATURE2] | Advanced [BENEFIT] Technology | Latest [YEAR] Model",
		Description: "Upgrade your everyday tech with the {product_name}, a standout addition to any {category} setup. " +
			"Built around modern components and tested for dependable day-to-day performance, it combines smart design " +
			"with genuinely useful features. Whether you are working, gaming, or streaming, the {product_name} keeps up " +
			"without complicated setup or maintenance.\n\nEvery detail has been engineered with the user in mind, from the " +
			"intuitive controls to the durable housing. Bring home the {product_name} and experience {category} done right.",
	},
	"Home & Kitchen": {
		Title: "{product_name} - Premium [FEATURE1] for Your Home | [FEATURE2] | [BENEFIT] Guaranteed | [YEAR] Edition",
		Description: "Make daily living easier with the {product_name}, thoughtfully designed for real homes and real " +
			"routines. As a dependable {category} essential, it blends practical function with a clean look that fits any " +
			"space, from compact apartments to family kitchens.\n\nConstructed from quality materials and simple to clean " +
			"and maintain, the {product_name} earns its place on your counter. Discover why households everywhere are " +
			"making it their go-to {category} choice.",
	},
	"Beauty & Personal Care": {
		Title: "{product_name} - [FEATURE1] [CATEGORY] Essential | [FEATURE2] for [BENEFIT] | New [YEAR] Formula",
		Description: "Treat yourself to the {product_name}, a {category} essential created for daily self-care. Gentle " +
			"enough for regular use yet effective where it counts, it slots easily into any routine, morning or night." +
			"\n\nDermatologist-informed design and carefully chosen ingredients make the {product_name} a confident " +
			"choice for every skin and hair type. Elevate your {category} routine and feel the difference from the very " +
			"first use.",
	},
	"Sports & Outdoors": {
		Title: "{product_name} - Professional [FEATURE1] Gear | [FEATURE2] | Built for [BENEFIT] | [YEAR] Series",
		Description: "Push further with the {product_name}, engineered for athletes and adventurers who expect their " +
			"{category} gear to keep pace. From early-morning training sessions to weekend expeditions, it delivers " +
			"consistent performance in demanding conditions.\n\nRugged construction, thoughtful ergonomics, and " +
			"travel-ready portability make the {product_name} the piece of {category} equipment you will reach for " +
			"again and again.",
	},
}

// defaultTemplate covers any category outside the known set
var defaultTemplate = categoryTemplate{
	Title: "{product_name} - [FEATURE1] [CATEGORY] with [FEATURE2] | [BENEFIT] | [YEAR] Edition",
	Description: "Meet the {product_name}, a quality {category} product designed to deliver real value every day. " +
		"Carefully built, rigorously tested, and backed by responsive customer support, it offers the dependable " +
		"experience shoppers look for.\n\nFrom its practical feature set to its durable construction, the " +
		"{product_name} is an easy choice for anyone shopping the {category} aisle.",
}

// bulletTemplates is the fixed 8-entry cyclic table used for bullet
// construction. [FEATURE] receives the upper-cased feature text.
var bulletTemplates = [8]string{
	"[FEATURE]: Engineered to deliver [BENEFIT] every time you use it, setting a new standard for [CATEGORY] products",
	"PREMIUM QUALITY - [FEATURE] ensures long-lasting reliability and the [BENEFIT] you can count on",
	"[FEATURE]: Thoughtfully designed for everyday use, combining convenience with [BENEFIT]",
	"STANDOUT PERFORMANCE - [FEATURE] puts this ahead of comparable [CATEGORY] options",
	"[FEATURE]: Backed by rigorous testing for consistent [BENEFIT] in real-world conditions",
	"EFFORTLESS EXPERIENCE - [FEATURE] makes setup and daily operation simple for everyone",
	"[FEATURE]: A smart addition to any [CATEGORY] collection, delivering [BENEFIT] at a great value",
	"SATISFACTION GUARANTEED - [FEATURE] comes with dedicated customer support and [BENEFIT]",
}

// baseKeywords holds 8 curated search terms per known category
var baseKeywords = map[string][]string{
	"Electronics": {
		"electronics", "tech", "gadget", "device", "wireless", "smart", "portable", "digital",
	},
	"Home & Kitchen": {
		"home", "kitchen", "appliance", "household", "cooking", "decor", "durable", "modern",
	},
	"Beauty & Personal Care": {
		"beauty", "skincare", "personal", "care", "natural", "gentle", "moisturizing", "radiant",
	},
	"Sports & Outdoors": {
		"sports", "outdoor", "fitness", "training", "lightweight", "waterproof", "performance", "adventure",
	},
}

// defaultKeywords is the generic fallback set for unknown categories
var defaultKeywords = []string{"quality", "premium", "durable", "reliable"}

// selectTemplate resolves a category to its template pair, baking the
// product name and category into the {product_name}/{category} slots.
// Total function: unknown categories resolve to the default pair.
func selectTemplate(category, productName string) categoryTemplate {
	tpl, ok := categoryTemplates[category]
	if !ok {
		tpl = defaultTemplate
	}

	tpl.Title = bakeIdentity(tpl.Title, productName, category)
	tpl.Description = bakeIdentity(tpl.Description, productName, category)
	return tpl
}

// bakeIdentity fills the selection-time slots that the assembler never
// revisits
func bakeIdentity(s, productName, category string) string {
	s = strings.ReplaceAll(s, "{product_name}", productName)
	s = strings.ReplaceAll(s, "{category}", category)
	return s
}

// baseKeywordsFor returns a copy of the curated keyword set for a category,
// or the generic fallback for unknown categories
func baseKeywordsFor(category string) []string {
	base, ok := baseKeywords[category]
	if !ok {
		base = defaultKeywords
	}
	out := make([]string, len(base))
	copy(out, base)
	return out
}
