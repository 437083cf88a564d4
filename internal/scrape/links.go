package scrape

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

const viewMoreLabel = "Вижте повече"

// productURLKeywords is the low-precision fallback for container links that
// are not labeled "view more" but whose URL still looks like a product page.
var productURLKeywords = []string{
	"kyulche", "moneta", "platina", "paladiy", "srebro", "zlat",
}

// DiscoverProductLinks scans a listing page for candidate product-detail URLs.
// Duplicates collapse; the result is sorted for deterministic ordering.
func (s *Scraper) DiscoverProductLinks(ctx context.Context, pageURL string) ([]string, error) {
	html, err := s.fetcher.GetPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page %s: %w", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	links := s.productLinksFromDocument(doc)
	log.Infof("Found %d unique product links on %s", len(links), pageURL)
	return links, nil
}

func (s *Scraper) productLinksFromDocument(doc *goquery.Document) []string {
	set := make(map[string]struct{})

	doc.Find("li.kv__member-item").Each(func(_ int, container *goquery.Selection) {
		container.Find("a").Each(func(_ int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			absURL := s.absoluteURL(href)
			if absURL == "" {
				return
			}

			if strings.Contains(link.Text(), viewMoreLabel) {
				set[absURL] = struct{}{}
				return
			}

			lower := strings.ToLower(absURL)
			for _, kw := range productURLKeywords {
				if strings.Contains(lower, kw) {
					set[absURL] = struct{}{}
					return
				}
			}
		})
	})

	links := make([]string, 0, len(set))
	for link := range set {
		links = append(links, link)
	}
	sort.Strings(links)
	return links
}
