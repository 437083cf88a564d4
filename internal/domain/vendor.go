package domain

// Vendor is a refinery or mint brand. Vendors are append-only: once allocated
// an ID they are never mutated or deleted, even if dedup later orphans them.
type Vendor struct {
	VendorID int    `json:"vendor_id"` // monotonic, 1-based
	Name     string `json:"name"`
	Country  string `json:"country"`
}
