package models

// Product is a single catalog item as served by the store API.
// Instances are immutable once received; screens re-fetch on every mount
// instead of sharing a cache.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}
