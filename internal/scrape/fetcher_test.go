package scrape

import (
	"context"
	"fmt"
)

// fakeFetcher serves canned markup and counts fetches per URL.
type fakeFetcher struct {
	pages map[string]string
	calls map[string]int
}

func newFakeFetcher(pages map[string]string) *fakeFetcher {
	return &fakeFetcher{
		pages: pages,
		calls: make(map[string]int),
	}
}

func (f *fakeFetcher) GetPage(_ context.Context, url string) (string, error) {
	f.calls[url]++
	page, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("HTTP error: 404 Not Found")
	}
	return page, nil
}

func (f *fakeFetcher) GetAsset(_ context.Context, url string) ([]byte, error) {
	page, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("HTTP error: 404 Not Found")
	}
	return []byte(page), nil
}
