package assets

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"igold/scraper/internal/domain"
	"igold/scraper/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	assets map[string][]byte
}

func (f *fakeFetcher) GetPage(_ context.Context, url string) (string, error) {
	return "", fmt.Errorf("unexpected page fetch: %s", url)
}

func (f *fakeFetcher) GetAsset(_ context.Context, url string) ([]byte, error) {
	data, ok := f.assets[url]
	if !ok {
		return nil, fmt.Errorf("HTTP error: 404 Not Found")
	}
	return data, nil
}

func TestAssetFilename(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			"final path segment",
			"https://igold.bg/images/products/kyulche-1.jpg",
			"kyulche-1.jpg",
		},
		{
			"query string ignored",
			"https://igold.bg/images/moneta.png?v=2",
			"moneta.png",
		},
		{
			"no usable segment",
			"https://igold.bg/",
			"image_" + md5Prefix("https://igold.bg/") + ".jpg",
		},
		{
			"extension-less segment",
			"https://igold.bg/images/raw",
			"image_" + md5Prefix("https://igold.bg/images/raw") + ".jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AssetFilename(tt.url))
		})
	}
}

func md5Prefix(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])[:8]
}

func TestDownloadAll(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "igold_data.xlsx")

	images := []domain.Image{
		{ProductID: 1, ImageURL: "https://igold.bg/images/products/kyulche-1.jpg", ImageOrder: 1},
		{ProductID: 1, ImageURL: "https://igold.bg/images/products/kyulche-2.jpg", ImageOrder: 2},
		{ProductID: 2, ImageURL: "https://igold.bg/images/products/missing.jpg", ImageOrder: 1},
	}
	require.NoError(t, export.NewExporter(workbook).Write(nil, nil, nil, images, nil))

	fetcher := &fakeFetcher{assets: map[string][]byte{
		"https://igold.bg/images/products/kyulche-1.jpg": []byte("jpeg-1"),
		"https://igold.bg/images/products/kyulche-2.jpg": []byte("jpeg-2"),
	}}

	downloadDir := filepath.Join(dir, "downloaded_images")
	downloader := NewDownloader(fetcher, downloadDir, 0)

	// A failed download is logged and counted, not fatal.
	require.NoError(t, downloader.DownloadAll(context.Background(), workbook))

	data, err := os.ReadFile(filepath.Join(downloadDir, "kyulche-1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-1"), data)

	data, err = os.ReadFile(filepath.Join(downloadDir, "kyulche-2.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-2"), data)

	_, err = os.ReadFile(filepath.Join(downloadDir, "missing.jpg"))
	assert.Error(t, err)
}

func TestDownloadAllMissingWorkbook(t *testing.T) {
	downloader := NewDownloader(&fakeFetcher{}, t.TempDir(), 0)
	err := downloader.DownloadAll(context.Background(), "does-not-exist.xlsx")
	assert.Error(t, err)
}
