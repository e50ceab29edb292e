package domain

import "time"

// MeasurementUnit is the canonical unit of a parsed presentation:
// grams, milliliters or unit count.
type MeasurementUnit string

const (
	UnitGrams       MeasurementUnit = "g"
	UnitMilliliters MeasurementUnit = "ml"
	UnitCount       MeasurementUnit = "und"
)

// Measurement is the canonical quantity extracted from a free-text
// product description ("Cafe 500g" -> {500, g}). Derived, never
// persisted.
type Measurement struct {
	Amount float64         `json:"amount"`
	Unit   MeasurementUnit `json:"unit"`
}

// RawProduct is a result row exactly as the external price-scraper
// backend returns it. Price arrives as either a number or a
// currency-prefixed string depending on the store strategy, hence the
// untyped field.
type RawProduct struct {
	Name      string `json:"name"`
	Store     string `json:"store"`
	EAN       string `json:"ean,omitempty"`
	Price     any    `json:"price"`
	URL       string `json:"url,omitempty"`
	Image     string `json:"image,omitempty"`
	Available bool   `json:"available"`
}

// ScrapeResponse is the external backend's reply to one query.
type ScrapeResponse struct {
	Products []RawProduct      `json:"products"`
	Errors   map[string]string `json:"errors,omitempty"`
	Took     float64           `json:"took,omitempty"`
}

// MarketProduct is a scraped result after price/measurement derivation,
// ready for display and export.
type MarketProduct struct {
	Name         string       `json:"name"`
	Store        string       `json:"store"`
	EAN          string       `json:"ean,omitempty"`
	Price        float64      `json:"price"`
	PriceDisplay string       `json:"priceDisplay"`
	Measurement  *Measurement `json:"measurement,omitempty"`
	PricePerUnit float64      `json:"pricePerUnit,omitempty"`
	URL          string       `json:"url,omitempty"`
	Image        string       `json:"image,omitempty"`
	Available    bool         `json:"available"`
	Brand        StoreBrand   `json:"brand"`
	Relevance    float64      `json:"relevance"`
}

// BenchmarkMetadata summarizes one comparison run.
type BenchmarkMetadata struct {
	Query         string     `json:"query"`
	Mode          SearchMode `json:"mode"`
	StoresQueried []string   `json:"storesQueried"`
	StoresFailed  []string   `json:"storesFailed,omitempty"`
	ResultCount   int        `json:"resultCount"`
	Source        string     `json:"source"` // "Scraper" or "Cache"
	CachedAt      time.Time  `json:"cachedAt,omitempty"`
}

// ComparisonResult is the full outcome of a search across stores.
type ComparisonResult struct {
	Products []MarketProduct   `json:"products"`
	Metadata BenchmarkMetadata `json:"metadata"`
}

// SearchRequest is a single product comparison request.
type SearchRequest struct {
	Query      string     `json:"query" binding:"required"`
	Mode       SearchMode `json:"mode,omitempty"`
	StoreIDs   []string   `json:"storeIds,omitempty"`
	LocationID string     `json:"locationId,omitempty"`
}

// ParetoItem is one row of a bulk audit list, typically pasted from a
// spreadsheet (Name | Keywords | EAN | Price).
type ParetoItem struct {
	Name           string  `json:"name"`
	Keywords       string  `json:"keywords,omitempty"`
	EAN            string  `json:"ean,omitempty"`
	ReferencePrice float64 `json:"referencePrice,omitempty"`
}

// ParetoRowResult holds the audit outcome for one reference item.
type ParetoRowResult struct {
	Item     ParetoItem      `json:"item"`
	Products []MarketProduct `json:"products"`
}

// StoreAggregate is the per-store roll-up of an audit or comparison.
type StoreAggregate struct {
	StoreID         string  `json:"storeId"`
	StoreName       string  `json:"storeName"`
	ProductCount    int     `json:"productCount"`
	AveragePrice    float64 `json:"averagePrice"`
	AvgPricePerUnit float64 `json:"avgPricePerUnit"`
}

// ParetoResult is the outcome of a full bulk audit.
type ParetoResult struct {
	Rows       []ParetoRowResult `json:"rows"`
	Aggregates []StoreAggregate  `json:"aggregates"`
	Metadata   BenchmarkMetadata `json:"metadata"`
}
