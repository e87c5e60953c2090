package store

import (
	"fmt"
	"os"
	"time"
)

// AppendStockLog appends one timestamped line to the stock-watch log.
func AppendStockLog(path string, message string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open stock log %s: %w", path, err)
	}
	defer f.Close()

	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 UTC")
	if _, err := fmt.Fprintf(f, "[%s] %s\n", timestamp, message); err != nil {
		return fmt.Errorf("failed to append to stock log: %w", err)
	}

	return nil
}
