package notifier

import (
	"fmt"
	"strings"

	"shopwatch/internal/scraper"
	"shopwatch/logger"

	"github.com/gregdel/pushover"
)

// PushoverNotifier implements Notifier using the Pushover push-messaging API
type PushoverNotifier struct {
	app       *pushover.Pushover
	recipient *pushover.Recipient
	log       *logger.Logger
}

// NewPushoverNotifier creates a Pushover-backed notifier
func NewPushoverNotifier(appToken, userToken string) *PushoverNotifier {
	return &PushoverNotifier{
		app:       pushover.New(appToken),
		recipient: pushover.NewRecipient(userToken),
		log:       logger.ForNotifier(),
	}
}

// NotifyNewProducts sends one message summarizing the run's new products
func (n *PushoverNotifier) NotifyNewProducts(products []scraper.Product) error {
	if len(products) == 0 {
		return nil
	}
	title := fmt.Sprintf("Found %d New Product(s)!", len(products))
	return n.send(title, summarize(products))
}

// NotifyRestocked sends one message summarizing products back in stock
func (n *PushoverNotifier) NotifyRestocked(products []scraper.Product) error {
	if len(products) == 0 {
		return nil
	}
	title := fmt.Sprintf("%d Product(s) Back in Stock!", len(products))
	return n.send(title, summarize(products))
}

// NotifyInStock sends a stock alert for one watched product page
func (n *PushoverNotifier) NotifyInStock(name, url string) error {
	title := "Stock Alert: Item is Back in Stock!"
	body := fmt.Sprintf("'%s' is now available for purchase!\n\nURL: %s", name, url)

	message := pushover.NewMessageWithTitle(truncate(body), title)
	message.URL = url
	message.URLTitle = "View Product Page"

	_, err := n.app.SendMessage(message, n.recipient)
	if err != nil {
		return fmt.Errorf("failed to send stock alert: %w", err)
	}

	n.log.Info().Str("product", name).Msg("Stock alert sent")
	return nil
}

func (n *PushoverNotifier) send(title, body string) error {
	message := pushover.NewMessageWithTitle(truncate(body), title)

	_, err := n.app.SendMessage(message, n.recipient)
	if err != nil {
		return fmt.Errorf("failed to send notification %q: %w", title, err)
	}

	n.log.Info().Str("title", title).Msg("Notification sent")
	return nil
}

// summarize renders one "- name (price)" line per product
func summarize(products []scraper.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		if p.Price != "" {
			lines = append(lines, fmt.Sprintf("- %s (%s)", p.Name, p.Price))
		} else {
			lines = append(lines, fmt.Sprintf("- %s", p.Name))
		}
	}
	return strings.Join(lines, "\n")
}

// truncate bounds a message body to the transport's limit
func truncate(body string) string {
	if len(body) <= pushover.MessageMaxLength {
		return body
	}
	return body[:pushover.MessageMaxLength-3] + "..."
}
