package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"shopwatch/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new_products.csv")

	products := []scraper.Product{
		{Name: "Widget A", Price: "$10.00", URL: "https://example.com/products/widget-a", SoldOut: false, Category: "widgets"},
		{Name: "Widget B", Price: "From $5.00 - $7.00", URL: "https://example.com/products/widget-b", SoldOut: true, Category: "widgets"},
	}

	require.NoError(t, ExportCSV(path, products))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.Len(t, records, 3)
	assert.Equal(t, []string{"name", "price", "url", "sold_out", "category"}, records[0])
	assert.Equal(t, []string{"Widget A", "$10.00", "https://example.com/products/widget-a", "false", "widgets"}, records[1])
	assert.Equal(t, []string{"Widget B", "From $5.00 - $7.00", "https://example.com/products/widget-b", "true", "widgets"}, records[2])
}

func TestExportCSVNoProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new_products.csv")

	require.NoError(t, ExportCSV(path, nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no export file should be written for an empty run")
}

func TestAppendStockLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock_log.txt")

	require.NoError(t, AppendStockLog(path, "IN STOCK: 'Widget A' is available"))
	require.NoError(t, AppendStockLog(path, "OUT OF STOCK: 'Widget B' is not available"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "IN STOCK: 'Widget A' is available")
	assert.Contains(t, string(data), "OUT OF STOCK: 'Widget B' is not available")
}
