package scrape

import (
	"context"
	"fmt"
	"strings"

	"igold/scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// ExtractProduct fetches a product detail page and turns it into a structured
// record. It returns (nil, nil, nil) when the URL was already processed this
// run or when the page fails classification. Accepted products get the next
// monotonic id, their URL marked processed and up to two image records;
// rejected URLs stay unmarked so a later listing may retry them.
func (s *Scraper) ExtractProduct(ctx context.Context, productURL string, categoryID domain.CategoryID, subcategoryID int) (*domain.Product, []domain.Image, error) {
	if s.session.IsProcessed(productURL) {
		log.Debugf("Skipping already processed URL: %s", productURL)
		return nil, nil, nil
	}

	rawHTML, err := s.fetcher.GetPage(ctx, productURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch product page %s: %w", productURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse product page %s: %w", productURL, err)
	}

	pageText := doc.Text()

	product := domain.Product{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		ProductName:   extractName(doc),
		Slug:          slugFromURL(productURL),
		VAT:           categoryID.VATLabel(),
		ProductURL:    productURL,
	}

	if refinery := extractRefinery(rawHTML, pageText); refinery != "" {
		product.Country = countryForRefinery(refinery)
		product.VendorID = s.session.GetOrCreateVendor(refinery, product.Country)
	}

	product.Weight = extractWeight(pageText)
	product.BuyPrice, product.SellPrice = extractPrices(doc, pageText)
	product.Purity = extractPurity(pageText)
	product.FineGold = fineGold(product.Weight, product.Purity)
	product.OtherProperties = extractOtherProperties(pageText)
	product.Description = extractDescription(doc)

	if !isRealProduct(&product, productURL, categoryID) {
		log.Warnf("Filtered out non-product page: %s (name: %q)", productURL, product.ProductName)
		return nil, nil, nil
	}

	product.ProductID = s.session.NextProductID()
	s.session.MarkProcessed(productURL)

	var images []domain.Image
	for i, imageURL := range s.extractImageURLs(doc) {
		images = append(images, domain.Image{
			ProductID:  product.ProductID,
			ImageURL:   imageURL,
			ImageOrder: i + 1,
		})
	}

	log.Infof("Extracted product %d: %s", product.ProductID, product.ProductName)
	return &product, images, nil
}
