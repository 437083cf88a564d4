package session

import (
	"strings"

	"igold/scraper/internal/domain"
)

// Session owns all crawl-scoped mutable state: the record accumulators, the
// vendor registry and the processed-URL set. One Session corresponds to one
// crawl run; nothing in it survives the process.
type Session struct {
	Categories    []domain.Category
	Subcategories []domain.Subcategory
	Products      []domain.Product
	Images        []domain.Image

	vendors       []domain.Vendor
	vendorsByName map[string]int // lowercased name -> vendor_id

	processed     map[string]struct{}
	nextProductID int
}

func New() *Session {
	return &Session{
		vendorsByName: make(map[string]int),
		processed:     make(map[string]struct{}),
	}
}

// GetOrCreateVendor resolves a refinery/mint name to a vendor_id. Identity is
// case-insensitive name equality; a new vendor gets the next 1-based id.
func (s *Session) GetOrCreateVendor(name, country string) int {
	key := strings.ToLower(strings.TrimSpace(name))
	if id, ok := s.vendorsByName[key]; ok {
		return id
	}

	id := len(s.vendors) + 1
	s.vendors = append(s.vendors, domain.Vendor{
		VendorID: id,
		Name:     strings.TrimSpace(name),
		Country:  country,
	})
	s.vendorsByName[key] = id
	return id
}

// Vendors returns the registry in allocation order.
func (s *Session) Vendors() []domain.Vendor {
	return s.vendors
}

func (s *Session) IsProcessed(url string) bool {
	_, ok := s.processed[url]
	return ok
}

func (s *Session) MarkProcessed(url string) {
	s.processed[url] = struct{}{}
}

// NextProductID allocates the next monotonic product id. IDs are assigned
// pre-dedup and never reused.
func (s *Session) NextProductID() int {
	s.nextProductID++
	return s.nextProductID
}

// AddProduct appends a classified product and its images to the accumulators.
func (s *Session) AddProduct(p domain.Product, images []domain.Image) {
	s.Products = append(s.Products, p)
	s.Images = append(s.Images, images...)
}

// Normalize runs the dedup pass over the accumulated products and images.
func (s *Session) Normalize() {
	s.Products, s.Images = Dedupe(s.Products, s.Images)
}
