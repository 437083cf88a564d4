package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"igold/scraper/internal/export"
	"igold/scraper/internal/scrape"
	"igold/scraper/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const baseURL = "https://igold.bg"

type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) GetPage(_ context.Context, url string) (string, error) {
	page, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("HTTP error: 404 Not Found")
	}
	return page, nil
}

func (f *fakeFetcher) GetAsset(_ context.Context, url string) ([]byte, error) {
	return nil, fmt.Errorf("unexpected asset fetch: %s", url)
}

// fakeSite is a minimal two-category site: gold crawled via its subcategory,
// silver from its main listing page.
func fakeSite() map[string]string {
	return map[string]string{
		baseURL: `<html><body><div class="menu-product-types-box">
			<a href="/zlatni">Злато</a>
			<a href="/srebro">Сребро</a>
		</div></body></html>`,

		baseURL + "/zlatni": `<html><body>
			<div id="sub-category-1"><a href="/zlatni-invest">Инвестиционно злато</a></div>
		</body></html>`,

		baseURL + "/zlatni-invest": `<html><body>
			<li class="kv__member-item"><a href="/zlato-kyulche-1oz">Вижте повече</a></li>
		</body></html>`,

		baseURL + "/srebro": `<html><body>
			<li class="kv__member-item"><a href="/srebarna-moneta-1oz">Вижте повече</a></li>
		</body></html>`,

		baseURL + "/zlato-kyulche-1oz": `<html><body>
			<h1>1 oz Златно Кюлче</h1>
			<div>Монетен двор: <strong>Valcambi</strong></div>
			<div>Тегло: 31.1 гр.</div>
			<span class="price-buy">4200 лв</span>
			<span class="price-sell">4300 лв</span>
			<img src="/images/products/kyulche-1.jpg">
		</body></html>`,

		baseURL + "/srebarna-moneta-1oz": `<html><body>
			<h1>1 oz Сребърна Монета</h1>
			<div>Тегло: 31.1 гр.</div>
			<span class="price-buy">80 лв</span>
			<span class="price-sell">85 лв</span>
		</body></html>`,
	}
}

func newTestService(t *testing.T, pages map[string]string) (*Service, *session.Session, string) {
	t.Helper()
	sess := session.New()
	scraper := scrape.New(baseURL, &fakeFetcher{pages: pages}, sess)
	path := filepath.Join(t.TempDir(), "igold_data.xlsx")
	svc := NewService(scraper, sess, export.NewExporter(path), 0, 0)
	return svc, sess, path
}

func TestCrawlEndToEnd(t *testing.T) {
	svc, sess, path := newTestService(t, fakeSite())

	require.NoError(t, svc.Crawl(context.Background(), ""))

	require.Len(t, sess.Categories, 2)
	require.Len(t, sess.Subcategories, 1)
	require.Len(t, sess.Products, 2)
	require.Len(t, sess.Images, 1)
	require.Len(t, sess.Vendors(), 1)

	gold := sess.Products[0]
	assert.Equal(t, "1 oz Златно Кюлче", gold.ProductName)
	assert.Equal(t, 1, gold.SubcategoryID, "gold products carry their subcategory")
	assert.Equal(t, "4200", gold.BuyPrice)

	silver := sess.Products[1]
	assert.Equal(t, "1 oz Сребърна Монета", silver.ProductName)
	assert.Equal(t, 0, silver.SubcategoryID)
	assert.Equal(t, 0, silver.VendorID, "no refinery label on the page")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetProducts)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestCrawlSingleCategoryFilter(t *testing.T) {
	svc, sess, _ := newTestService(t, fakeSite())

	require.NoError(t, svc.Crawl(context.Background(), "Сребро"))

	require.Len(t, sess.Categories, 1)
	require.Len(t, sess.Products, 1)
	assert.Equal(t, "1 oz Сребърна Монета", sess.Products[0].ProductName)
}

func TestCrawlUnknownCategoryFails(t *testing.T) {
	svc, _, _ := newTestService(t, fakeSite())

	err := svc.Crawl(context.Background(), "Несъществуваща")
	assert.Error(t, err)
}

func TestCrawlHomepageFailureIsFatal(t *testing.T) {
	svc, _, _ := newTestService(t, map[string]string{})

	err := svc.Crawl(context.Background(), "")
	assert.Error(t, err)
}

func TestCrawlListingFailureIsNotFatal(t *testing.T) {
	pages := fakeSite()
	delete(pages, baseURL+"/srebro")
	svc, sess, _ := newTestService(t, pages)

	require.NoError(t, svc.Crawl(context.Background(), ""))
	require.Len(t, sess.Products, 1, "gold still crawled despite silver failing")
}
