package scraper

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"shopwatch/helpers"

	"github.com/PuerkitoBio/goquery"
)

// ParseProducts extracts product cards from one category page. Cards missing
// a name or a link are skipped and counted rather than failing the page.
// A page without the expected product list yields an empty slice. The
// category label is the last path segment of the category URL.
func ParseProducts(page io.Reader, categoryURL string) ([]Product, int, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse category page HTML: %w", err)
	}

	base, err := url.Parse(categoryURL)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid category URL %q: %w", categoryURL, err)
	}

	category, _ := helpers.LastPathSegment(base.Path)

	var products []Product
	skipped := 0

	doc.Find("ul#product-loop li.product").Each(func(i int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find("h3").First().Text())

		href, exists := s.Find("a[href]").First().Attr("href")
		if name == "" || !exists || strings.TrimSpace(href) == "" {
			skipped++
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			skipped++
			return
		}

		products = append(products, Product{
			Name:     name,
			Price:    helpers.CollapseWhitespace(s.Find("div.price").Text()),
			URL:      base.ResolveReference(ref).String(),
			SoldOut:  s.Find("div.so").Length() > 0,
			Category: category,
		})
	})

	return products, skipped, nil
}
