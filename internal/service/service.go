package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"igold/scraper/internal/domain"
	"igold/scraper/internal/export"
	"igold/scraper/internal/scrape"
	"igold/scraper/internal/session"

	log "github.com/sirupsen/logrus"
)

// Service drives the crawl: categories, then subcategories, then per-listing
// product extraction, strictly sequential with fixed pauses, ending with the
// dedup pass and the workbook export.
type Service struct {
	scraper       *scrape.Scraper
	session       *session.Session
	exporter      *export.Exporter
	categoryPause time.Duration
	productPause  time.Duration
}

func NewService(
	scraper *scrape.Scraper,
	sess *session.Session,
	exporter *export.Exporter,
	categoryPause time.Duration,
	productPause time.Duration,
) *Service {
	return &Service{
		scraper:       scraper,
		session:       sess,
		exporter:      exporter,
		categoryPause: categoryPause,
		productPause:  productPause,
	}
}

// Crawl runs the full pipeline. A non-empty onlyCategory restricts the crawl
// to the category whose name or id matches it (the test-scope mode). Export
// failure is the only crawl-level failure; per-item fetch and extraction
// errors are logged and skipped.
func (s *Service) Crawl(ctx context.Context, onlyCategory string) error {
	categories, err := s.scraper.DiscoverCategories(ctx)
	if err != nil {
		return fmt.Errorf("category discovery failed: %w", err)
	}
	if onlyCategory != "" {
		categories = filterCategories(categories, onlyCategory)
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories found")
	}
	s.session.Categories = categories

	for _, category := range categories {
		subcategories, err := s.scraper.DiscoverSubcategories(ctx, category)
		if err != nil {
			log.Errorf("Failed to discover subcategories for %s: %v", category.Name, err)
		} else {
			s.session.Subcategories = append(s.session.Subcategories, subcategories...)
		}
		time.Sleep(s.categoryPause)
	}

	for _, category := range categories {
		log.Infof("Scraping products for category %s: %s", category.ID, category.Name)

		if category.ID == domain.CategoryGold {
			// Gold is crawled per subcategory; its landing page mixes listings
			// with editorial content.
			for _, sub := range s.session.Subcategories {
				if sub.ParentCategoryID != domain.CategoryGold {
					continue
				}
				log.Infof("Scraping subcategory %d: %s", sub.ID, sub.Name)
				s.crawlListing(ctx, sub.URL, category.ID, sub.ID)
				time.Sleep(s.categoryPause)
			}
		} else {
			s.crawlListing(ctx, category.URL, category.ID, 0)
		}

		time.Sleep(s.categoryPause)
	}

	s.session.Normalize()

	log.Infof("Crawl finished: %d categories, %d subcategories, %d products, %d images, %d vendors",
		len(s.session.Categories), len(s.session.Subcategories),
		len(s.session.Products), len(s.session.Images), len(s.session.Vendors()))

	return s.exporter.Write(
		s.session.Categories,
		s.session.Subcategories,
		s.session.Products,
		s.session.Images,
		s.session.Vendors(),
	)
}

// crawlListing extracts every candidate product linked from one listing page.
func (s *Service) crawlListing(ctx context.Context, listingURL string, categoryID domain.CategoryID, subcategoryID int) {
	links, err := s.scraper.DiscoverProductLinks(ctx, listingURL)
	if err != nil {
		log.Errorf("Failed to discover product links on %s: %v", listingURL, err)
		return
	}
	if len(links) == 0 {
		log.Warnf("No product links found on %s", listingURL)
		return
	}

	for i, link := range links {
		product, images, err := s.scraper.ExtractProduct(ctx, link, categoryID, subcategoryID)
		if err != nil {
			log.Warnf("Error processing product %s: %v", link, err)
		} else if product != nil {
			s.session.AddProduct(*product, images)
			log.Infof("Scraped product %d/%d: %s", i+1, len(links), product.ProductName)
		}

		time.Sleep(s.productPause)
	}
}

func filterCategories(categories []domain.Category, name string) []domain.Category {
	var filtered []domain.Category
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) || c.ID.String() == name {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
