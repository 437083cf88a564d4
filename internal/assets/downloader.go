package assets

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"igold/scraper/internal/client"
	"igold/scraper/internal/export"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Downloader reads the Images sheet of a previously exported workbook and
// stores every referenced binary under a local directory.
type Downloader struct {
	fetcher client.Fetcher
	dir     string
	pause   time.Duration
}

func NewDownloader(fetcher client.Fetcher, dir string, pause time.Duration) *Downloader {
	return &Downloader{
		fetcher: fetcher,
		dir:     dir,
		pause:   pause,
	}
}

// DownloadAll downloads every image row of the workbook. Individual failures
// are logged and counted, never fatal; a missing or unreadable workbook is.
func (d *Downloader) DownloadAll(ctx context.Context, workbookPath string) error {
	urls, err := loadImageURLs(workbookPath)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no image URLs found in %s", workbookPath)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create download directory %s: %w", d.dir, err)
	}

	log.Infof("Starting download of %d images to %s", len(urls), d.dir)

	var downloaded, failed int
	for i, imageURL := range urls {
		filename := AssetFilename(imageURL)

		data, err := d.fetcher.GetAsset(ctx, imageURL)
		if err != nil {
			log.Errorf("Failed to download %s: %v", imageURL, err)
			failed++
		} else if err := os.WriteFile(filepath.Join(d.dir, filename), data, 0o644); err != nil {
			log.Errorf("Failed to write %s: %v", filename, err)
			failed++
		} else {
			log.Infof("Downloaded: %s", filename)
			downloaded++
		}

		if d.pause > 0 {
			time.Sleep(d.pause)
		}
		if (i+1)%50 == 0 {
			log.Infof("Progress: %d/%d images processed", i+1, len(urls))
		}
	}

	log.Infof("Download finished: %d total, %d downloaded, %d failed", len(urls), downloaded, failed)
	return nil
}

// loadImageURLs reads the image_url column of the Images sheet, header row
// excluded.
func loadImageURLs(workbookPath string) ([]string, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", workbookPath, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("Failed to close workbook: %v", err)
		}
	}()

	rows, err := f.GetRows(export.SheetImages)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", export.SheetImages, err)
	}

	var urls []string
	for i, row := range rows {
		if i == 0 || len(row) < 2 || row[1] == "" {
			continue
		}
		urls = append(urls, row[1])
	}
	return urls, nil
}

// AssetFilename derives a local filename from the URL's final path segment,
// falling back to a hash-derived synthetic name when the URL has no usable
// segment.
func AssetFilename(rawURL string) string {
	name := ""
	if u, err := url.Parse(rawURL); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "." || name == "/" || !strings.Contains(name, ".") {
		sum := md5.Sum([]byte(rawURL))
		name = fmt.Sprintf("image_%s.jpg", hex.EncodeToString(sum[:])[:8])
	}
	return name
}
