package notifier

import (
	"shopwatch/internal/scraper"
	"shopwatch/logger"
)

// Notifier sends run summaries to whoever watches the shop
type Notifier interface {
	// NotifyNewProducts sends one summary for the run's new products
	NotifyNewProducts(products []scraper.Product) error

	// NotifyRestocked sends one summary for products back in stock
	NotifyRestocked(products []scraper.Product) error

	// NotifyInStock sends a stock-watch alert for a single product page
	NotifyInStock(name, url string) error
}

// disabledNotifier is used when Pushover credentials are not configured.
// Every send succeeds after a log line, so a missing secret never aborts
// scraping or persistence.
type disabledNotifier struct {
	log *logger.Logger
}

// NewDisabled returns a notifier that only logs.
func NewDisabled() Notifier {
	return &disabledNotifier{log: logger.ForNotifier()}
}

func (n *disabledNotifier) NotifyNewProducts(products []scraper.Product) error {
	n.log.Info().
		Int("count", len(products)).
		Msg("Notification credentials not set, skipping new-product notification")
	return nil
}

func (n *disabledNotifier) NotifyRestocked(products []scraper.Product) error {
	n.log.Info().
		Int("count", len(products)).
		Msg("Notification credentials not set, skipping restock notification")
	return nil
}

func (n *disabledNotifier) NotifyInStock(name, url string) error {
	n.log.Info().
		Str("product", name).
		Msg("Notification credentials not set, skipping stock alert")
	return nil
}
