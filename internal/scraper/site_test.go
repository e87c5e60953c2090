package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopwatch/services/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteDiscoverAndFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><ul id="nav">
			<li><a href="/collections/widgets">Widgets</a></li>
		</ul></body></html>`)
	})
	mux.HandleFunc("/collections/widgets", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><ul id="product-loop">
			<li class="product"><a href="/products/widget-a"><h3>Widget A</h3></a><div class="price">$10.00</div></li>
		</ul></body></html>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	site := NewSite(server.URL+"/", cache.NewMemoryService(), 0, time.Millisecond)

	links, err := site.DiscoverCategories()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, server.URL+"/collections/widgets", links[0].URL)

	products, skipped, err := site.FetchCategory(links[0])
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget A", products[0].Name)
	assert.Equal(t, server.URL+"/products/widget-a", products[0].URL)
}

func TestSiteRateLimitBlocksRun(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	site := NewSite(server.URL+"/", cache.NewMemoryService(), 2, time.Millisecond)

	_, err := site.DiscoverCategories()
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "rate-limited responses are not retried")

	// The block key stops further requests without hitting the site.
	_, _, err = site.FetchCategory(CategoryLink{URL: server.URL + "/collections/widgets"})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
