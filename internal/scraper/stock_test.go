package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStockPageInStock(t *testing.T) {
	html := `<html><body>
		<h1>Welcome to the store</h1>
		<h1>Compact Ice Maker</h1>
		<button x-ref="submitButton">Add to Cart</button>
	</body></html>`

	status, err := ParseStockPage(strings.NewReader(html), "https://example.com/products/ice-maker")
	require.NoError(t, err)
	assert.True(t, status.InStock)
	assert.Equal(t, "Compact Ice Maker", status.Name)
	assert.Equal(t, "https://example.com/products/ice-maker", status.URL)
}

func TestParseStockPageOutOfStock(t *testing.T) {
	html := `<html><body>
		<h1>Compact Ice Maker</h1>
		<button x-ref="submitButton" disabled>Out of Stock</button>
	</body></html>`

	status, err := ParseStockPage(strings.NewReader(html), "https://example.com/products/ice-maker")
	require.NoError(t, err)
	assert.False(t, status.InStock)
}

func TestParseStockPageMissingButton(t *testing.T) {
	html := `<html><body><h1>Compact Ice Maker</h1></body></html>`

	_, err := ParseStockPage(strings.NewReader(html), "https://example.com/products/ice-maker")
	assert.ErrorIs(t, err, ErrNoStockMarker)
}
