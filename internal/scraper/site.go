package scraper

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"shopwatch/helpers"
	"shopwatch/services/cache"
)

// Site fetches and parses pages of one storefront. All page requests go
// through fetchPage, which honours a shared rate-limit block key so one
// 429 stops the remaining requests of the run.
type Site struct {
	BaseURL    string
	CacheSvc   cache.CacheService
	BlockKey   string
	BlockTime  time.Duration
	Retries    int
	RetryDelay time.Duration
}

// NewSite creates a Site for the given storefront base URL.
func NewSite(baseURL string, cacheSvc cache.CacheService, retries int, retryDelay time.Duration) *Site {
	return &Site{
		BaseURL:    baseURL,
		CacheSvc:   cacheSvc,
		BlockKey:   "shopwatch_rate_limited",
		BlockTime:  500 * time.Second,
		Retries:    retries,
		RetryDelay: retryDelay,
	}
}

// fetchPage fetches a URL unless the site is currently blocked, and records
// a block when the site answers with a rate limit.
func (s *Site) fetchPage(url string) (io.Reader, error) {
	if s.CacheSvc != nil && s.BlockKey != "" {
		if _, err := s.CacheSvc.Get(s.BlockKey); err == nil {
			return nil, fmt.Errorf("%s: blocked for %d more seconds at most", s.BlockKey, s.BlockTime/time.Second)
		}
	}

	body, err := helpers.FetchWithRetry(url, s.Retries, s.RetryDelay)
	if err != nil {
		if errors.Is(err, helpers.ErrRateLimited) && s.CacheSvc != nil && s.BlockKey != "" {
			s.CacheSvc.Set(s.BlockKey, []byte(strconv.Itoa(int(s.BlockTime/time.Second))), s.BlockTime)
		}
		return nil, err
	}

	return body, nil
}

// DiscoverCategories fetches the homepage and returns the category links
// found in its navigation.
func (s *Site) DiscoverCategories() ([]CategoryLink, error) {
	body, err := s.fetchPage(s.BaseURL)
	if err != nil {
		return nil, err
	}
	return ParseCategories(body, s.BaseURL)
}

// FetchCategory fetches one category page and returns its products plus the
// number of skipped malformed cards.
func (s *Site) FetchCategory(link CategoryLink) ([]Product, int, error) {
	body, err := s.fetchPage(link.URL)
	if err != nil {
		return nil, 0, err
	}
	return ParseProducts(body, link.URL)
}

// CheckStock fetches one watched product page and reports its availability.
func (s *Site) CheckStock(productURL string) (StockStatus, error) {
	body, err := s.fetchPage(productURL)
	if err != nil {
		return StockStatus{}, err
	}
	return ParseStockPage(body, productURL)
}
