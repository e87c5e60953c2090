package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategories(t *testing.T) {
	html := `<html><body>
		<ul id="nav">
			<li><a href="/collections/all-products">Products</a></li>
			<li><a href="/collections/crystals">Crystals</a></li>
			<li><a href="/pages/about">About</a></li>
			<li><a href="https://example.com/collections/crystals">Crystals Again</a></li>
			<li><a>No href</a></li>
		</ul>
	</body></html>`

	links, err := ParseCategories(strings.NewReader(html), "https://example.com/")
	assert.NoError(t, err)

	assert.Len(t, links, 2)
	assert.Equal(t, "Products", links[0].Name)
	assert.Equal(t, "https://example.com/collections/all-products", links[0].URL)
	assert.Equal(t, "Crystals", links[1].Name)
	assert.Equal(t, "https://example.com/collections/crystals", links[1].URL)
}

func TestParseCategoriesUnrecognizedNav(t *testing.T) {
	html := `<html><body><nav><a href="/collections/stuff">Stuff</a></nav></body></html>`

	links, err := ParseCategories(strings.NewReader(html), "https://example.com/")
	assert.NoError(t, err)
	assert.Empty(t, links)
}

func TestParseCategoriesPreservesDocumentOrder(t *testing.T) {
	html := `<html><body>
		<ul id="nav">
			<li><a href="/collections/zeta">Zeta</a></li>
			<li><a href="/collections/alpha">Alpha</a></li>
			<li><a href="/collections/midway">Midway</a></li>
		</ul>
	</body></html>`

	links, err := ParseCategories(strings.NewReader(html), "https://example.com/")
	assert.NoError(t, err)

	names := make([]string, 0, len(links))
	for _, l := range links {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Midway"}, names)
}
