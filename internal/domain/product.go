package domain

// Product is one extracted and classified detail page. String fields that the
// extraction heuristics could not resolve are left empty; VendorID zero means
// no refinery name was found on the page.
type Product struct {
	ProductID       int        `json:"product_id"`
	CategoryID      CategoryID `json:"category_id"`
	SubcategoryID   int        `json:"subcategory_id,omitempty"`
	VendorID        int        `json:"vendor_id,omitempty"`
	ProductName     string     `json:"product_name"`
	Description     string     `json:"description,omitempty"` // raw HTML fragment, not flattened
	Country         string     `json:"country,omitempty"`
	Weight          string     `json:"weight,omitempty"` // numeric part only, grams
	Purity          string     `json:"purity,omitempty"`
	FineGold        string     `json:"fine_gold,omitempty"` // weight scaled by purity
	BuyPrice        string     `json:"buy_price,omitempty"`
	SellPrice       string     `json:"sell_price,omitempty"`
	OtherProperties string     `json:"other_properties,omitempty"`
	Slug            string     `json:"slug"` // URL path, the canonical dedup key
	VAT             string     `json:"vat"`
	ProductURL      string     `json:"product_url"`
}

// Image is one product photo reference. At most two are kept per product and
// an image never outlives its owning product.
type Image struct {
	ProductID  int    `json:"product_id"`
	ImageURL   string `json:"image_url"`
	ImageOrder int    `json:"image_order"` // 1 or 2
}
