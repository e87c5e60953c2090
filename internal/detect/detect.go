package detect

import (
	"shopwatch/internal/scraper"
)

// SeenProduct is the state remembered for one identity between runs.
type SeenProduct struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	SoldOut bool   `json:"sold_out"`
}

// SeenSet maps identity hashes to the last observed state of each product.
// Entries are never removed; a product that disappears from the site stays
// in the set so it is not re-reported if it comes back.
type SeenSet map[string]SeenProduct

// NewSeenSet returns an empty seen-set.
func NewSeenSet() SeenSet {
	return make(SeenSet)
}

// Contains reports whether the identity has been observed before.
func (s SeenSet) Contains(identity string) bool {
	_, ok := s[identity]
	return ok
}

// Clone returns an independent copy of the set.
func (s SeenSet) Clone() SeenSet {
	out := make(SeenSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// RunResult is the outcome of one detection pass.
type RunResult struct {
	// New holds products whose identity was absent from the seen-set,
	// in extraction order.
	New []scraper.Product

	// Restocked holds previously seen products that were sold out on the
	// last observation and are in stock now.
	Restocked []scraper.Product

	// Seen is the updated set: the old set unioned with every identity
	// observed this run, with per-product state refreshed.
	Seen SeenSet
}

// Detect classifies each product as new or already seen and produces the
// updated seen-set. The input set is not mutated; the caller persists the
// returned one only after the export has been written.
func Detect(products []scraper.Product, seen SeenSet) RunResult {
	result := RunResult{Seen: seen.Clone()}

	for _, p := range products {
		id := Identity(p.URL)
		prev, observed := result.Seen[id]

		if !observed {
			result.New = append(result.New, p)
		} else if prev.SoldOut && !p.SoldOut {
			result.Restocked = append(result.Restocked, p)
		}

		result.Seen[id] = SeenProduct{
			Name:    p.Name,
			URL:     p.URL,
			SoldOut: p.SoldOut,
		}
	}

	return result
}
