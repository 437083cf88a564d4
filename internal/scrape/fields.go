package scrape

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	weightRe = regexp.MustCompile(`(\d+\.?\d*)\s*гр\.`)
	priceRe  = regexp.MustCompile(`(\d+\.?\d*)\s*лв`)
	purityRe = regexp.MustCompile(`(?i)(\d{3,4}\.?\d*)\s*(?:проба|purity)`)
	numberRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)`)

	// An explicit zero price, not the tail of a larger number like "2000 лв".
	zeroPriceRe = regexp.MustCompile(`(?:^|[^0-9.,])0(?:\.00)?\s*лв`)
)

// extractName prefers the page's main heading over the title element.
func extractName(doc *goquery.Document) string {
	for _, sel := range []string{"h1", "h2", "title"} {
		name := collapseWhitespace(doc.Find(sel).First().Text())
		if name != "" {
			return name
		}
	}
	return ""
}

// slugFromURL strips scheme, host and leading separators, leaving the path
// that serves as the canonical dedup key.
func slugFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimLeft(u.Path, "/")
}

// extractWeight returns the numeric part of the first gram-denominated value.
func extractWeight(pageText string) string {
	if m := weightRe.FindStringSubmatch(pageText); m != nil {
		return m[1]
	}
	return ""
}

// extractPrices prefers the two labeled price elements on the detail page.
// When neither is present it falls back to scanning the flattened text for
// currency-denominated numbers, first buy then sell. An explicit zero-price
// token fills whichever slot is still empty.
func extractPrices(doc *goquery.Document, pageText string) (buy, sell string) {
	buy = numericPrefix(doc.Find(".price-buy").First().Text())
	sell = numericPrefix(doc.Find(".price-sell").First().Text())

	if buy == "" && sell == "" {
		matches := priceRe.FindAllStringSubmatch(pageText, 2)
		if len(matches) >= 1 {
			buy = matches[0][1]
		}
		if len(matches) >= 2 {
			sell = matches[1][1]
		}
	}

	if zeroPriceRe.MatchString(pageText) {
		if buy == "" {
			buy = "0"
		}
		if sell == "" {
			sell = "0"
		}
	}

	return buy, sell
}

func numericPrefix(text string) string {
	m := numberRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(m[1], ",", ".")
}

// extractPurity takes the first labeled purity value; without one it assumes
// the investment-grade standard for pages mentioning gold or silver.
func extractPurity(pageText string) string {
	if m := purityRe.FindStringSubmatch(pageText); m != nil {
		return m[1]
	}
	lower := strings.ToLower(pageText)
	switch {
	case strings.Contains(lower, "злато"), strings.Contains(lower, "gold"):
		return "999.9"
	case strings.Contains(lower, "сребро"), strings.Contains(lower, "silver"):
		return "999.0"
	}
	return ""
}

// fineGold derives the pure metal content from weight and purity.
func fineGold(weight, purity string) string {
	w, errW := strconv.ParseFloat(weight, 64)
	p, errP := strconv.ParseFloat(purity, 64)
	if errW != nil || errP != nil {
		return ""
	}
	return fmt.Sprintf("%.2f", w*p/1000)
}

var otherPropertyMarkers = []string{
	"Холограмна Защита",
	"с обков и кутия",
}

func extractOtherProperties(pageText string) string {
	for _, marker := range otherPropertyMarkers {
		if strings.Contains(pageText, marker) {
			return marker
		}
	}
	return ""
}

// extractDescription preserves the description container's markup verbatim;
// downstream consumers need its internal structure.
func extractDescription(doc *goquery.Document) string {
	sel := doc.Find("div.product-description").First()
	if sel.Length() == 0 {
		sel = doc.Find("div#description").First()
	}
	if sel.Length() == 0 {
		return ""
	}
	html, err := sel.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(html)
}

// imageProductTokens mark a URL as a product photo; imageChromeTokens mark
// site chrome. A candidate must carry at least one of the former and none of
// the latter.
var imageProductTokens = []string{
	"product", "zlat", "srebro", "kyulche", "moneta", "platina", "paladiy",
	"valcambi", "pamp", "argor",
}

var imageChromeTokens = []string{
	"logo", "icon", "banner", "facebook", "youtube", "whatsapp", "viber",
	"social", "nav", "menu", "placeholder", "sprite", "loader",
}

// extractImageURLs keeps the first two qualifying image URLs in encounter order.
func (s *Scraper) extractImageURLs(doc *goquery.Document) []string {
	var urls []string
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		absURL := s.absoluteURL(src)
		if absURL == "" {
			return true
		}
		lower := strings.ToLower(absURL)
		if !containsAny(lower, imageProductTokens) || containsAny(lower, imageChromeTokens) {
			return true
		}
		urls = append(urls, absURL)
		return len(urls) < 2
	})
	return urls
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
