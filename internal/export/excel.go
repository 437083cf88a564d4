package export

import (
	"fmt"

	"igold/scraper/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the output workbook.
const (
	SheetCategories    = "Categories"
	SheetSubcategories = "Subcategories"
	SheetProducts      = "Products"
	SheetImages        = "Images"
	SheetVendors       = "Vendors"
)

// Exporter writes one workbook with a labeled sheet per record set, header
// row included, one row per record in finalization order.
type Exporter struct {
	path string
}

func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

func (e *Exporter) Write(
	categories []domain.Category,
	subcategories []domain.Subcategory,
	products []domain.Product,
	images []domain.Image,
	vendors []domain.Vendor,
) error {
	log.Infof("Saving data to %s...", e.path)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("Failed to close workbook: %v", err)
		}
	}()

	if err := e.writeCategories(f, categories); err != nil {
		return err
	}
	if err := e.writeSubcategories(f, subcategories); err != nil {
		return err
	}
	if err := e.writeProducts(f, products); err != nil {
		return err
	}
	if err := e.writeImages(f, images); err != nil {
		return err
	}
	if err := e.writeVendors(f, vendors); err != nil {
		return err
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", e.path, err)
	}

	log.Infof("Data successfully saved to %s", e.path)
	return nil
}

func (e *Exporter) writeCategories(f *excelize.File, categories []domain.Category) error {
	rows := [][]interface{}{{"id", "name", "url"}}
	for _, c := range categories {
		rows = append(rows, []interface{}{c.ID.String(), c.Name, c.URL})
	}
	return writeSheet(f, SheetCategories, rows)
}

func (e *Exporter) writeSubcategories(f *excelize.File, subcategories []domain.Subcategory) error {
	rows := [][]interface{}{{"id", "name", "url", "parent_category_id"}}
	for _, s := range subcategories {
		rows = append(rows, []interface{}{s.ID, s.Name, s.URL, s.ParentCategoryID.String()})
	}
	return writeSheet(f, SheetSubcategories, rows)
}

func (e *Exporter) writeProducts(f *excelize.File, products []domain.Product) error {
	rows := [][]interface{}{{
		"product_id", "category_id", "subcategory_id", "vendor_id",
		"product_name", "description", "country", "weight", "purity",
		"fine_gold", "buy_price", "sell_price", "other_properties",
		"slug", "vat", "product_url",
	}}
	for _, p := range products {
		rows = append(rows, []interface{}{
			p.ProductID, p.CategoryID.String(), emptyIfZero(p.SubcategoryID),
			emptyIfZero(p.VendorID), p.ProductName, p.Description, p.Country,
			p.Weight, p.Purity, p.FineGold, p.BuyPrice, p.SellPrice,
			p.OtherProperties, p.Slug, p.VAT, p.ProductURL,
		})
	}
	return writeSheet(f, SheetProducts, rows)
}

func (e *Exporter) writeImages(f *excelize.File, images []domain.Image) error {
	rows := [][]interface{}{{"product_id", "image_url", "image_order"}}
	for _, img := range images {
		rows = append(rows, []interface{}{img.ProductID, img.ImageURL, img.ImageOrder})
	}
	return writeSheet(f, SheetImages, rows)
}

func (e *Exporter) writeVendors(f *excelize.File, vendors []domain.Vendor) error {
	rows := [][]interface{}{{"vendor_id", "name", "country"}}
	for _, v := range vendors {
		rows = append(rows, []interface{}{v.VendorID, v.Name, v.Country})
	}
	return writeSheet(f, SheetVendors, rows)
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if sheet == SheetCategories {
		// excelize creates Sheet1 by default; reuse it for the first sheet.
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to rename default sheet: %w", err)
		}
	} else if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}

	log.Infof("Saved %d %s rows", len(rows)-1, sheet)
	return nil
}

// emptyIfZero renders unset numeric foreign keys as blank cells.
func emptyIfZero(v int) interface{} {
	if v == 0 {
		return ""
	}
	return v
}
