package store

import (
	"shopwatch/internal/detect"
	"shopwatch/internal/scraper"
)

// FileStore bundles the run's file-backed persistence under the configured
// paths.
type FileStore struct {
	SeenPath     string
	ExportPath   string
	StockLogPath string
}

// NewFileStore creates a FileStore for the given paths.
func NewFileStore(seenPath, exportPath, stockLogPath string) *FileStore {
	return &FileStore{
		SeenPath:     seenPath,
		ExportPath:   exportPath,
		StockLogPath: stockLogPath,
	}
}

// LoadSeenSet loads the persisted seen-set.
func (s *FileStore) LoadSeenSet() (detect.SeenSet, error) {
	return LoadSeenSet(s.SeenPath)
}

// SaveSeenSet persists the seen-set atomically.
func (s *FileStore) SaveSeenSet(set detect.SeenSet) error {
	return SaveSeenSet(s.SeenPath, set)
}

// ExportNew writes the run's new products to the export file.
func (s *FileStore) ExportNew(products []scraper.Product) error {
	return ExportCSV(s.ExportPath, products)
}

// AppendStockLog appends one line to the stock-watch log.
func (s *FileStore) AppendStockLog(message string) error {
	return AppendStockLog(s.StockLogPath, message)
}
