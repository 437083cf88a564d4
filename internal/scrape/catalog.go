package scrape

import (
	"context"
	"fmt"
	"strings"

	"igold/scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

const promoLabel = "промо"

// DiscoverCategories finds the top-level metal categories on the homepage.
// Links live inside the menu-product-types-box container; the promotional
// category is always excluded.
func (s *Scraper) DiscoverCategories(ctx context.Context) ([]domain.Category, error) {
	html, err := s.fetcher.GetPage(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch homepage: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse homepage: %w", err)
	}

	return s.categoriesFromDocument(doc), nil
}

func (s *Scraper) categoriesFromDocument(doc *goquery.Document) []domain.Category {
	var categories []domain.Category
	seen := make(map[domain.CategoryID]struct{})

	doc.Find("div.menu-product-types-box a").Each(func(_ int, link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		absURL := s.absoluteURL(href)
		if name == "" || absURL == "" {
			return
		}

		id := s.categoryIDFor(link, absURL)
		if id == "" {
			log.Warnf("Could not determine category id for %s (%s)", name, absURL)
			return
		}
		if id == domain.CategoryPromo || strings.EqualFold(name, promoLabel) {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}

		seen[id] = struct{}{}
		categories = append(categories, domain.Category{ID: id, Name: name, URL: absURL})
		log.Infof("Found category: %s (ID: %s)", name, id)
	})

	log.Infof("Found %d categories from menu-product-types-box", len(categories))
	return categories
}

// categoryIDFor prefers the rootcategoryid attribute on an ancestor element
// and falls back to fixed URL substring rules, gold last as the site default.
func (s *Scraper) categoryIDFor(link *goquery.Selection, absURL string) domain.CategoryID {
	if v, ok := link.Closest("[rootcategoryid]").Attr("rootcategoryid"); ok && v != "" {
		return domain.CategoryID(v)
	}

	lower := strings.ToLower(absURL)
	switch {
	case strings.Contains(absURL, "/srebro"):
		return domain.CategorySilver
	case strings.Contains(absURL, "/platina"):
		return domain.CategoryPlatinum
	case strings.Contains(absURL, "/paladiy"):
		return domain.CategoryPalladium
	case strings.Contains(absURL, "/promotzii"), strings.Contains(lower, "promo"):
		return domain.CategoryPromo
	case strings.Contains(lower, "zlat"), absURL == s.baseURL, absURL == s.baseURL+"/":
		return domain.CategoryGold
	}
	return ""
}

// DiscoverSubcategories fetches a category page and collects its subcategory
// links: the id-keyed container first, then any /subcategory/ link elsewhere
// on the page, deduplicated by URL. IDs are sequential per category.
func (s *Scraper) DiscoverSubcategories(ctx context.Context, category domain.Category) ([]domain.Subcategory, error) {
	html, err := s.fetcher.GetPage(ctx, category.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category page %s: %w", category.URL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse category page: %w", err)
	}

	return s.subcategoriesFromDocument(doc, category.ID), nil
}

func (s *Scraper) subcategoriesFromDocument(doc *goquery.Document, categoryID domain.CategoryID) []domain.Subcategory {
	var subcategories []domain.Subcategory
	seen := make(map[string]struct{})

	add := func(link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		absURL := s.absoluteURL(href)
		if name == "" || absURL == "" {
			return
		}
		if _, dup := seen[absURL]; dup {
			return
		}
		seen[absURL] = struct{}{}
		subcategories = append(subcategories, domain.Subcategory{
			ID:               len(subcategories) + 1,
			Name:             name,
			URL:              absURL,
			ParentCategoryID: categoryID,
		})
		log.Infof("Found subcategory: %s", name)
	}

	doc.Find("div#sub-category-" + categoryID.String() + " a").Each(func(_ int, link *goquery.Selection) {
		add(link)
	})

	doc.Find("a[href*='/subcategory/']").Each(func(_ int, link *goquery.Selection) {
		add(link)
	})

	log.Infof("Found %d subcategories for category %s", len(subcategories), categoryID)
	return subcategories
}
