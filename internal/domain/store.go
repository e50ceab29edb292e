package domain

// StoreStatus describes the operational state of a retail source.
type StoreStatus string

const (
	// StatusOnline means the store answers automated queries normally.
	StatusOnline StoreStatus = "online"
	// StatusManual marks stores whose prices are entered by hand; the
	// health tracker must never override it.
	StatusManual StoreStatus = "manual"
	// StatusMaintenance is the automatic demotion applied after
	// repeated scrape failures.
	StatusMaintenance StoreStatus = "maintenance"
	// StatusComingSoon marks stores announced but not yet scrapeable;
	// like manual it is authoritative.
	StatusComingSoon StoreStatus = "coming_soon"
)

// Authoritative reports whether the status is declared by the registry
// and wins over any tracked health history.
func (s StoreStatus) Authoritative() bool {
	return s == StatusManual || s == StatusComingSoon
}

// Store is a retail data source that can be queried for prices.
// IDs are stable lowercase slugs; the external scraper backend selects
// its strategy by them, so they must never change between sessions.
type Store struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Enabled bool     `json:"enabled"`
	URLs    []string `json:"urls,omitempty"`
}

// StoreBrand carries the presentation data for a store: icon asset
// path, accent color and display name. Status is filled from the
// registry default or the health tracker.
type StoreBrand struct {
	Icon   string      `json:"icon,omitempty"`
	Color  string      `json:"color"`
	Name   string      `json:"name"`
	URL    string      `json:"url,omitempty"`
	Status StoreStatus `json:"status,omitempty"`
}

// HealthRecord is the per-store entry of the persisted health registry.
type HealthRecord struct {
	Status            StoreStatus `json:"status"`
	LastSuccess       string      `json:"lastSuccess,omitempty"`
	LastError         string      `json:"lastError,omitempty"`
	ConsecutiveErrors int         `json:"consecutiveErrors"`
}

// SearchMode selects how the external backend looks products up.
type SearchMode string

const (
	SearchByName SearchMode = "name"
	SearchByEAN  SearchMode = "ean"
)
