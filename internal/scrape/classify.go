package scrape

import (
	"strings"

	"igold/scraper/internal/domain"
)

// skipKeywords reject navigation, legal, media and category-index pages that
// the link discovery fallback inevitably picks up. Matched against the
// lowercased product name and the URL.
var skipKeywords = []string{
	"youtube", "whatsapp", "chat on", "facebook live", "igold в медиите",
	"за контакти", "контакти", "помощ", "faq", "общи условия", "terms",
	"за вас", "zavas", "blog", "златен бръмбар", "промо", "отстъпка",
	"google maps", "goo.gl", "m.me", "wa.me", "tel:", "viber://",
	"cdn-cgi", "email-protection", "contactus", "contact us", "istoricheski", "moderni",
	"kyulcheta-s-numizmatichen", "zlatni-kyulcheta", "zlatni-moneti",
	"zlatni-numizmatichni", "moderni-zlatni-moneti", "paladiy", "platina",
	"srebro", "promotzii", "promo",
}

// recognizedProductKeywords accept a page without an extracted weight when the
// name still names a known product type, brand or coin series.
var recognizedProductKeywords = []string{
	"кюлче", "монета", "kyulche", "moneta", "гр.", "toz", "oz",
	"valcambi", "pamp", "argor-heraeus", "royal mint", "perth mint",
	"кругерранд", "британия", "американски орел", "кленов лист",
	"филхармония", "кенгуру", "коала", "панда", "лунар", "lunar",
	"платина", "platina", "сребро", "srebro", "злато", "zlat",
}

// isRealProduct decides whether an extracted record is a genuine sellable
// product. A page with no extracted name is never a product; after the
// denylist, a product needs a weight or a recognized product keyword in its
// name. The platinum category is lenient: any named page there passes.
func isRealProduct(p *domain.Product, productURL string, categoryID domain.CategoryID) bool {
	if p.ProductName == "" {
		return false
	}

	name := strings.ToLower(p.ProductName)
	lowerURL := strings.ToLower(productURL)
	for _, kw := range skipKeywords {
		if strings.Contains(name, kw) || strings.Contains(lowerURL, kw) {
			return false
		}
	}

	if categoryID == domain.CategoryPlatinum {
		return true
	}
	if p.Weight != "" {
		return true
	}
	for _, kw := range recognizedProductKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
