package scrape

import (
	"html"
	"regexp"
	"strings"
)

// The bilingual labels that introduce a refinery or mint name on detail pages.
const vendorLabelAlt = `(?:Монетен двор|Рафинерия|Производител|Mint|Refinery|Manufacturer)`

// Field labels that terminate a free-text vendor value in tier 2.
const fieldLabelAlt = `(?:тегло|проба|чисто|диаметър|гурт|номинал|валута|опаковка|забележка|цена|година|` +
	`weight|purity|fine|diameter|edge|denomination|currency|packaging|disclaimer|price|year)`

var (
	// Tier 1: label followed by an emphasized/structured sub-element in the
	// raw markup; the vendor name is that sub-element's text.
	vendorMarkupRe = regexp.MustCompile(`(?is)` + vendorLabelAlt +
		`\s*:\s*(?:</[a-z0-9]+>\s*)*(?:<(?:strong|b|em|span)[^>]*>\s*)+([^<]+)`)

	// Tier 2: label followed by free text in the flattened page, truncated at
	// the next recognized field label, line break or end of text.
	vendorTextRe = regexp.MustCompile(`(?i)` + vendorLabelAlt +
		`\s*:\s*(.*?)\s*(?:` + fieldLabelAlt + `|\n|$)`)
)

// legacyBrands is the secondary fallback scan, kept for parity with the
// original heuristic: raw-text literals checked only when the labeled
// extraction tiers find nothing at all.
var legacyBrands = []struct {
	literal   string
	canonical string
}{
	{"Valcambi", "Valcambi"},
	{"Argor-Heraeus", "Argor-Heraeus"},
	{"Argor Heraeus", "Argor-Heraeus"},
	{"Pamp", "Pamp"},
	{"Royal Mint", "Royal Mint"},
}

// refineryCountries maps known refinery/mint names (lowercased) to countries.
var refineryCountries = map[string]string{
	"valcambi":            "Switzerland",
	"pamp":                "Switzerland",
	"argor-heraeus":       "Switzerland",
	"argor heraeus":       "Switzerland",
	"metalor":             "Switzerland",
	"royal mint":          "United Kingdom",
	"the royal mint":      "United Kingdom",
	"perth mint":          "Australia",
	"the perth mint":      "Australia",
	"royal canadian mint": "Canada",
	"us mint":             "United States",
	"united states mint":  "United States",
	"austrian mint":       "Austria",
	"münze österreich":    "Austria",
	"rand refinery":       "South Africa",
	"heraeus":             "Germany",
	"umicore":             "Germany",
	"china mint":          "China",
}

// CountryUnknown is the sentinel for refineries missing from the lookup table.
const CountryUnknown = "Unknown"

// extractRefinery resolves the refinery/mint name with the layered strategy:
// structured markup first, flattened-text labels second, known brand literals
// last. Returns "" when no tier finds a name.
func extractRefinery(rawHTML, pageText string) string {
	if m := vendorMarkupRe.FindStringSubmatch(rawHTML); m != nil {
		if name := collapseWhitespace(html.UnescapeString(m[1])); name != "" {
			return name
		}
	}

	if m := vendorTextRe.FindStringSubmatch(pageText); m != nil {
		if name := collapseWhitespace(m[1]); name != "" {
			return name
		}
	}

	for _, brand := range legacyBrands {
		if strings.Contains(pageText, brand.literal) {
			return brand.canonical
		}
	}

	return ""
}

func countryForRefinery(name string) string {
	if country, ok := refineryCountries[strings.ToLower(strings.TrimSpace(name))]; ok {
		return country
	}
	return CountryUnknown
}
