package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"shopwatch/internal/scraper"
)

// ExportCSV writes the new products of one run as a CSV file. The file is
// created fresh; a previous run's export is overwritten. With no products
// the file is left alone and nothing is written.
func ExportCSV(path string, products []scraper.Product) error {
	if len(products) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "price", "url", "sold_out", "category"}); err != nil {
		f.Close()
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, p := range products {
		record := []string{p.Name, p.Price, p.URL, strconv.FormatBool(p.SoldOut), p.Category}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("failed to write export row for %s: %w", p.URL, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush export file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	return nil
}
