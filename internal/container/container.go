package container

import (
	"context"
	"time"

	"igold/scraper/internal/assets"
	"igold/scraper/internal/client"
	"igold/scraper/internal/config"
	"igold/scraper/internal/export"
	"igold/scraper/internal/scrape"
	"igold/scraper/internal/service"
	"igold/scraper/internal/session"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Fetcher client.Fetcher
	Session *session.Session
	Scraper *scrape.Scraper
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) *Container {
	fetcher := client.NewIGoldClient(cfg.Site)
	sess := session.New()
	scraper := scrape.New(cfg.Site.BaseURL, fetcher, sess)

	return &Container{
		Config:  cfg,
		Fetcher: fetcher,
		Session: sess,
		Scraper: scraper,
	}
}

// RunCrawl executes the full crawl and writes the workbook to outputPath.
// A non-empty onlyCategory restricts the crawl to that category.
func (c *Container) RunCrawl(ctx context.Context, onlyCategory, outputPath string) error {
	svc := service.NewService(
		c.Scraper,
		c.Session,
		export.NewExporter(outputPath),
		time.Duration(c.Config.Site.CategoryPause)*time.Second,
		time.Duration(c.Config.Site.ProductPause)*time.Second,
	)
	return svc.Crawl(ctx, onlyCategory)
}

// RunImages downloads every image referenced by a previously exported workbook.
func (c *Container) RunImages(ctx context.Context, workbookPath string) error {
	downloader := assets.NewDownloader(
		c.Fetcher,
		c.Config.Output.ImageDir,
		time.Duration(c.Config.Output.ImagePause)*time.Millisecond,
	)
	return downloader.DownloadAll(ctx, workbookPath)
}
