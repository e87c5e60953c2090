package scraper

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseCategories extracts category links from the storefront homepage.
// Only navigation links pointing at collection pages count; relative hrefs
// are resolved against baseURL. The result is deduplicated preserving
// document order. A page without the expected navigation yields an empty
// slice, not an error.
func ParseCategories(page io.Reader, baseURL string) ([]CategoryLink, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, fmt.Errorf("failed to parse homepage HTML: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	var links []CategoryLink
	seen := make(map[string]bool)

	doc.Find("ul#nav > li > a").Each(func(i int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || !strings.Contains(href, "/collections/") {
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref).String()

		if seen[resolved] {
			return
		}
		seen[resolved] = true

		links = append(links, CategoryLink{
			Name: strings.TrimSpace(s.Text()),
			URL:  resolved,
		})
	})

	return links, nil
}
