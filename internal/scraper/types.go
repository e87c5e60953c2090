package scraper

// Product represents one product card scraped from a category page
type Product struct {
	Name     string `json:"name"`
	Price    string `json:"price,omitempty"`
	URL      string `json:"url"`
	SoldOut  bool   `json:"sold_out"`
	Category string `json:"category,omitempty"`
}

// CategoryLink represents one category discovered in the storefront navigation
type CategoryLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// StockStatus represents the result of a stock-watch check on a product page
type StockStatus struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	InStock bool   `json:"in_stock"`
}
