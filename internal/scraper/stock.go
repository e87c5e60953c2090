package scraper

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoStockMarker means the product page no longer carries the add-to-cart
// button the check relies on, usually because the page template changed.
var ErrNoStockMarker = errors.New("add-to-cart button not found")

// ParseStockPage checks a single product page for availability. The disabled
// attribute on the add-to-cart button is the stock marker: present means out
// of stock. The product name comes from the last page heading that is not a
// site greeting.
func ParseStockPage(page io.Reader, productURL string) (StockStatus, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return StockStatus{}, fmt.Errorf("failed to parse product page HTML: %w", err)
	}

	button := doc.Find("button[x-ref='submitButton']").First()
	if button.Length() == 0 {
		return StockStatus{}, ErrNoStockMarker
	}

	name := ""
	doc.Find("h1").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "Welcome") {
			return
		}
		name = text
	})

	_, disabled := button.Attr("disabled")

	return StockStatus{
		Name:    name,
		URL:     productURL,
		InStock: !disabled,
	}, nil
}
