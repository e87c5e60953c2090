package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"shopwatch/internal/detect"
	"shopwatch/internal/scraper"
	"shopwatch/logger"
	pkgerrors "shopwatch/pkg/errors"
	"shopwatch/services/notifier"
	"shopwatch/services/publisher"
)

// Site is the part of the storefront scraper the worker drives.
type Site interface {
	DiscoverCategories() ([]scraper.CategoryLink, error)
	FetchCategory(link scraper.CategoryLink) ([]scraper.Product, int, error)
	CheckStock(productURL string) (scraper.StockStatus, error)
}

// Store is the persistence surface of one run.
type Store interface {
	LoadSeenSet() (detect.SeenSet, error)
	SaveSeenSet(set detect.SeenSet) error
	ExportNew(products []scraper.Product) error
	AppendStockLog(message string) error
}

// Worker performs one full pipeline pass: discover, extract, detect,
// persist, notify.
type Worker struct {
	site      Site
	store     Store
	notifier  notifier.Notifier
	publisher publisher.Publisher
	watchURLs []string
	delay     time.Duration
	log       *logger.Logger
}

// NewWorker creates a new worker
func NewWorker(
	site Site,
	store Store,
	n notifier.Notifier,
	pub publisher.Publisher,
	watchURLs []string,
	delay time.Duration,
) *Worker {
	return &Worker{
		site:      site,
		store:     store,
		notifier:  n,
		publisher: pub,
		watchURLs: watchURLs,
		delay:     delay,
		log:       logger.ForWorker(),
	}
}

type categoryResult struct {
	products []scraper.Product
	skipped  int
	err      error
}

// Run executes one pipeline pass. A nil return means the run completed,
// possibly with soft-degraded output; a non-nil return is fatal and the
// seen-set on disk reflects the state before the failing step.
func (w *Worker) Run(ctx context.Context) error {
	start := time.Now()

	seen, err := w.store.LoadSeenSet()
	if err != nil {
		return pkgerrors.NewStore("worker", "cannot load seen store", err)
	}
	w.log.Info().Int("seen", len(seen)).Msg("Loaded seen store")

	links, err := w.site.DiscoverCategories()
	if err != nil {
		// No categories at all means the site is unreachable for us.
		return fmt.Errorf("homepage discovery failed: %w", err)
	}

	if len(links) == 0 {
		w.log.Warn().Msg("No category links found, nothing to scrape")
		w.runStockWatch(ctx)
		return nil
	}
	w.log.Info().Int("categories", len(links)).Msg("Discovered categories")

	products := w.fetchCategories(ctx, links)

	if len(products) == 0 {
		w.log.Info().Msg("No products extracted, seen store left untouched")
		w.runStockWatch(ctx)
		return nil
	}

	result := detect.Detect(products, seen)
	w.log.Info().
		Int("scraped", len(products)).
		Int("new", len(result.New)).
		Int("restocked", len(result.Restocked)).
		Msg("Change detection complete")

	// Export before saving the seen-set: losing the save (duplicate report
	// next run) is recoverable, losing the export record is not.
	if len(result.New) > 0 {
		if err := w.store.ExportNew(result.New); err != nil {
			return pkgerrors.NewExport("worker", "cannot write export file", err)
		}
		w.publishNew(result.New)
		if err := w.notifier.NotifyNewProducts(result.New); err != nil {
			w.log.WithError(err).Warn().Msg("New-product notification failed")
		}
	}

	if len(result.Restocked) > 0 {
		if err := w.notifier.NotifyRestocked(result.Restocked); err != nil {
			w.log.WithError(err).Warn().Msg("Restock notification failed")
		}
	}

	if err := w.store.SaveSeenSet(result.Seen); err != nil {
		return pkgerrors.NewStore("worker", "cannot save seen store", err)
	}

	w.runStockWatch(ctx)

	w.log.Info().Dur("elapsed", time.Since(start)).Msg("Run complete")
	return nil
}

// fetchCategories fetches all category pages concurrently and merges the
// results in document order. One failing category never costs the others.
func (w *Worker) fetchCategories(ctx context.Context, links []scraper.CategoryLink) []scraper.Product {
	results := make([]categoryResult, len(links))
	var wg sync.WaitGroup

	for i, link := range links {
		wg.Add(1)
		go func(i int, link scraper.CategoryLink) {
			defer wg.Done()

			// Stagger requests so concurrency does not hammer the site.
			select {
			case <-time.After(time.Duration(i) * w.delay):
			case <-ctx.Done():
				results[i] = categoryResult{err: ctx.Err()}
				return
			}

			products, skipped, err := w.site.FetchCategory(link)
			results[i] = categoryResult{products: products, skipped: skipped, err: err}
		}(i, link)
	}
	wg.Wait()

	var products []scraper.Product
	for i, res := range results {
		if res.err != nil {
			w.log.WithError(res.err).
				Warn().
				Str("category", links[i].URL).
				Msg("Skipping category")
			continue
		}
		if res.skipped > 0 {
			w.log.Warn().
				Str("category", links[i].URL).
				Int("skipped", res.skipped).
				Msg("Skipped malformed product cards")
		}
		products = append(products, res.products...)
	}
	return products
}

// publishNew fans new products out to the optional downstream stream.
func (w *Worker) publishNew(products []scraper.Product) {
	if w.publisher == nil {
		return
	}
	for _, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			w.log.WithError(err).Warn().Str("url", p.URL).Msg("Cannot encode product for publishing")
			continue
		}
		if err := w.publisher.Publish("product", data); err != nil {
			w.log.WithError(err).Warn().Str("url", p.URL).Msg("Publish failed")
		}
	}
	if err := w.publisher.TrimStream(); err != nil {
		w.log.WithError(err).Warn().Msg("Stream trim failed")
	}
}

// runStockWatch checks each watched product page. Every failure here is
// soft: a watch is a bonus on top of the main pipeline.
func (w *Worker) runStockWatch(ctx context.Context) {
	for _, url := range w.watchURLs {
		if ctx.Err() != nil {
			return
		}

		status, err := w.site.CheckStock(url)
		if err != nil {
			w.log.WithError(err).Warn().Str("url", url).Msg("Stock check failed")
			continue
		}

		if status.InStock {
			line := fmt.Sprintf("IN STOCK: Item '%s' is available!", status.Name)
			if err := w.store.AppendStockLog(line); err != nil {
				w.log.WithError(err).Warn().Msg("Cannot append to stock log")
			}
			if err := w.notifier.NotifyInStock(status.Name, status.URL); err != nil {
				w.log.WithError(err).Warn().Msg("Stock alert failed")
			}
		} else {
			line := fmt.Sprintf("OUT OF STOCK: Item '%s' is not available.", status.Name)
			if err := w.store.AppendStockLog(line); err != nil {
				w.log.WithError(err).Warn().Msg("Cannot append to stock log")
			}
		}
	}
}
