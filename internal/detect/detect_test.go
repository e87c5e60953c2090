package detect

import (
	"testing"

	"shopwatch/internal/scraper"

	"github.com/stretchr/testify/assert"
)

func TestDetectClassifiesNewAndSeen(t *testing.T) {
	seen := NewSeenSet()
	seen[Identity("https://example.com/products/widget-a")] = SeenProduct{
		Name: "Widget A",
		URL:  "https://example.com/products/widget-a",
	}

	products := []scraper.Product{
		{Name: "Widget A", URL: "https://example.com/products/widget-a"},
		{Name: "Widget B", URL: "https://example.com/products/widget-b"},
	}

	result := Detect(products, seen)

	assert.Len(t, result.New, 1)
	assert.Equal(t, "Widget B", result.New[0].Name)
	assert.Len(t, result.Seen, 2)
	assert.True(t, result.Seen.Contains(Identity("https://example.com/products/widget-a")))
	assert.True(t, result.Seen.Contains(Identity("https://example.com/products/widget-b")))
}

func TestDetectNoDuplicateReporting(t *testing.T) {
	products := []scraper.Product{
		{Name: "Widget A", URL: "https://example.com/products/widget-a"},
	}

	first := Detect(products, NewSeenSet())
	assert.Len(t, first.New, 1)

	// Second run over the same page yields nothing new.
	second := Detect(products, first.Seen)
	assert.Empty(t, second.New)
	assert.Len(t, second.Seen, 1)
}

func TestDetectURLNoiseDoesNotReintroduce(t *testing.T) {
	first := Detect([]scraper.Product{
		{Name: "Widget A", URL: "https://example.com/products/widget-a"},
	}, NewSeenSet())

	// Same product with query noise and a trailing slash.
	second := Detect([]scraper.Product{
		{Name: "Widget A", URL: "https://example.com/products/widget-a/?variant=7"},
	}, first.Seen)

	assert.Empty(t, second.New)
}

func TestDetectMonotonicity(t *testing.T) {
	seen := NewSeenSet()
	seen["deadbeef"] = SeenProduct{Name: "Gone", URL: "https://example.com/products/gone"}

	// Product "Gone" is no longer on the site; the entry must survive.
	result := Detect([]scraper.Product{
		{Name: "Widget B", URL: "https://example.com/products/widget-b"},
	}, seen)

	assert.GreaterOrEqual(t, len(result.Seen), len(seen))
	assert.True(t, result.Seen.Contains("deadbeef"))
}

func TestDetectDoesNotMutateInput(t *testing.T) {
	seen := NewSeenSet()

	Detect([]scraper.Product{
		{Name: "Widget A", URL: "https://example.com/products/widget-a"},
	}, seen)

	assert.Empty(t, seen)
}

func TestDetectRestock(t *testing.T) {
	url := "https://example.com/products/widget-a"
	seen := NewSeenSet()
	seen[Identity(url)] = SeenProduct{Name: "Widget A", URL: url, SoldOut: true}

	result := Detect([]scraper.Product{
		{Name: "Widget A", URL: url, SoldOut: false},
	}, seen)

	assert.Empty(t, result.New)
	assert.Len(t, result.Restocked, 1)
	assert.Equal(t, "Widget A", result.Restocked[0].Name)

	// State refreshed so the same restock is not reported again.
	again := Detect([]scraper.Product{
		{Name: "Widget A", URL: url, SoldOut: false},
	}, result.Seen)
	assert.Empty(t, again.Restocked)
}

func TestDetectEmptyPage(t *testing.T) {
	result := Detect(nil, NewSeenSet())
	assert.Empty(t, result.New)
	assert.Empty(t, result.Restocked)
	assert.Empty(t, result.Seen)
}
