package export

import (
	"path/filepath"
	"testing"

	"igold/scraper/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "igold_data.xlsx")

	categories := []domain.Category{
		{ID: domain.CategoryGold, Name: "Злато", URL: "https://igold.bg/"},
		{ID: domain.CategorySilver, Name: "Сребро", URL: "https://igold.bg/srebro"},
	}
	subcategories := []domain.Subcategory{
		{ID: 1, Name: "Златни кюлчета", URL: "https://igold.bg/zlatni-kyulcheta", ParentCategoryID: domain.CategoryGold},
	}
	products := []domain.Product{
		{
			ProductID: 1, CategoryID: domain.CategoryGold, SubcategoryID: 1,
			VendorID: 1, ProductName: "1 oz Златно Кюлче", Country: "Switzerland",
			Weight: "31.1", Purity: "999.9", FineGold: "31.10",
			BuyPrice: "4200.50", SellPrice: "4300",
			Slug: "zlato-kyulche-1oz", VAT: domain.VATNone,
			ProductURL: "https://igold.bg/zlato-kyulche-1oz",
		},
		{
			ProductID: 2, CategoryID: domain.CategorySilver,
			ProductName: "1 kg Сребърно Кюлче", Slug: "srebro-kyulche-1kg",
			VAT: domain.VATMargin, ProductURL: "https://igold.bg/srebro-kyulche-1kg",
		},
	}
	images := []domain.Image{
		{ProductID: 1, ImageURL: "https://igold.bg/images/products/kyulche-1.jpg", ImageOrder: 1},
		{ProductID: 1, ImageURL: "https://igold.bg/images/products/kyulche-2.jpg", ImageOrder: 2},
	}
	vendors := []domain.Vendor{
		{VendorID: 1, Name: "Valcambi", Country: "Switzerland"},
	}

	exporter := NewExporter(path)
	require.NoError(t, exporter.Write(categories, subcategories, products, images, vendors))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		SheetCategories, SheetSubcategories, SheetProducts, SheetImages, SheetVendors,
	}, f.GetSheetList())

	catRows, err := f.GetRows(SheetCategories)
	require.NoError(t, err)
	require.Len(t, catRows, 3)
	assert.Equal(t, []string{"id", "name", "url"}, catRows[0])
	assert.Equal(t, []string{"1", "Злато", "https://igold.bg/"}, catRows[1])

	prodRows, err := f.GetRows(SheetProducts)
	require.NoError(t, err)
	require.Len(t, prodRows, 3)
	assert.Equal(t, "product_id", prodRows[0][0])
	assert.Equal(t, "vat", prodRows[0][14])
	assert.Equal(t, "1 oz Златно Кюлче", prodRows[1][4])
	assert.Equal(t, domain.VATNone, prodRows[1][14])

	imgRows, err := f.GetRows(SheetImages)
	require.NoError(t, err)
	require.Len(t, imgRows, 3)
	assert.Equal(t, []string{"product_id", "image_url", "image_order"}, imgRows[0])
	assert.Equal(t, []string{"1", "https://igold.bg/images/products/kyulche-1.jpg", "1"}, imgRows[1])

	vendorRows, err := f.GetRows(SheetVendors)
	require.NoError(t, err)
	require.Len(t, vendorRows, 2)
	assert.Equal(t, []string{"1", "Valcambi", "Switzerland"}, vendorRows[1])
}

func TestWriteWorkbookEmptySets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	exporter := NewExporter(path)
	require.NoError(t, exporter.Write(nil, nil, nil, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Header rows are written even for empty record sets.
	rows, err := f.GetRows(SheetVendors)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"vendor_id", "name", "country"}, rows[0])
}
