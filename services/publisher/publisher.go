package publisher

// Publisher represents a downstream sink for new-product records
type Publisher interface {
	// Publish publishes one record to the stream
	Publish(key string, message []byte) error

	// TrimStream trims the stream to the configured maximum length
	TrimStream() error

	// Close closes the publisher connection
	Close() error
}
