package domain

// CategoryID identifies one of the site's fixed top-level metal categories.
type CategoryID string

func (c CategoryID) String() string {
	return string(c)
}

const (
	CategoryGold      CategoryID = "1"
	CategorySilver    CategoryID = "2"
	CategoryPlatinum  CategoryID = "3"
	CategoryPalladium CategoryID = "4"
	CategoryPromo     CategoryID = "5"
)

// VAT labels applied per category; a business rule, not read from page content.
const (
	VATNone     = "no VAT"
	VATMargin   = "VAT on margin"
	VATIncluded = "VAT included"
)

// VATLabel returns the VAT treatment for products in this category.
// Investment gold is VAT-exempt, silver is sold under the margin scheme,
// everything else carries standard VAT.
func (c CategoryID) VATLabel() string {
	switch c {
	case CategoryGold:
		return VATNone
	case CategorySilver:
		return VATMargin
	default:
		return VATIncluded
	}
}

type Category struct {
	ID   CategoryID `json:"id"`
	Name string     `json:"name"`
	URL  string     `json:"url"`
}

type Subcategory struct {
	ID               int        `json:"id"` // sequential per parent category, 1-based
	Name             string     `json:"name"`
	URL              string     `json:"url"`
	ParentCategoryID CategoryID `json:"parent_category_id"`
}
