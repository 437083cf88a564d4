package scrape

import (
	"net/url"
	"strings"

	"igold/scraper/internal/client"
	"igold/scraper/internal/session"
)

// Scraper turns fetched pages into catalog records. All heuristics live here;
// fetching is delegated to the Fetcher and crawl state to the Session.
type Scraper struct {
	baseURL string
	base    *url.URL
	fetcher client.Fetcher
	session *session.Session
}

func New(baseURL string, fetcher client.Fetcher, sess *session.Session) *Scraper {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}
	return &Scraper{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    base,
		fetcher: fetcher,
		session: sess,
	}
}

// absoluteURL resolves a possibly relative href against the site base.
func (s *Scraper) absoluteURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if s.base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return s.base.ResolveReference(ref).String()
}
