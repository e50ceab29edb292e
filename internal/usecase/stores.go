package usecase

import "github.com/nutresa-radar/backend/internal/domain"

// storeRegistry is the canonical list of supported retail sources.
// IDs are stable slugs that the external scraper backend maps to its
// per-store strategies; renaming one breaks every persisted health
// record and saved session that references it.
var storeRegistry = []domain.Store{
	{ID: "exito", Name: "Éxito", Enabled: true, URLs: []string{"exito.com"}},
	{ID: "carulla", Name: "Carulla", Enabled: true, URLs: []string{"carulla.com"}},
	{ID: "jumbo", Name: "Jumbo", Enabled: true, URLs: []string{"tiendasjumbo.co", "jumbocolombia.com"}},
	{ID: "olimpica", Name: "Olímpica", Enabled: true, URLs: []string{"olimpica.com"}},
	{ID: "makro", Name: "Makro", Enabled: true, URLs: []string{"tiendasmakro.com.co"}},
	{ID: "alkosto", Name: "Alkosto", Enabled: true, URLs: []string{"alkosto.com"}},
	{ID: "pricesmart", Name: "PriceSmart", Enabled: true, URLs: []string{"pricesmart.com"}},
	{ID: "d1", Name: "D1", Enabled: true, URLs: []string{"domicilios.tiendasd1.com"}},
	{ID: "ara", Name: "Ara", Enabled: true, URLs: []string{"aratiendas.com"}},
	{ID: "euro", Name: "Euro", Enabled: true, URLs: []string{"eurosupermercados.com"}},
	{ID: "lavaquita", Name: "La Vaquita", Enabled: true, URLs: []string{"lavaquita.co"}},
	{ID: "zapatoca", Name: "Zapatoca", Enabled: true, URLs: []string{"mercadozapatoca.com"}},
}

// nameSearchableStores are the stores whose sites expose a usable
// free-text search. Discounters and manual-entry stores only resolve
// through EAN lookups.
var nameSearchableStores = map[string]bool{
	"exito":      true,
	"carulla":    true,
	"jumbo":      true,
	"olimpica":   true,
	"makro":      true,
	"alkosto":    true,
	"pricesmart": true,
}

// eanOnlyStores can only be queried by barcode.
var eanOnlyStores = map[string]bool{
	"d1":        true,
	"ara":       true,
	"euro":      true,
	"lavaquita": true,
	"zapatoca":  true,
}

// StoreRegistry returns a fresh copy of the canonical store list.
// Callers toggle Enabled on their copy, so shared slices would leak
// selection state between sessions.
func StoreRegistry() []domain.Store {
	stores := make([]domain.Store, len(storeRegistry))
	copy(stores, storeRegistry)
	for i := range stores {
		urls := make([]string, len(storeRegistry[i].URLs))
		copy(urls, storeRegistry[i].URLs)
		stores[i].URLs = urls
	}
	return stores
}

// CanSearchByName reports whether the store supports free-text search.
func CanSearchByName(storeID string) bool {
	return nameSearchableStores[storeID]
}

// IsEANOnly reports whether the store resolves products only by barcode.
func IsEANOnly(storeID string) bool {
	return eanOnlyStores[storeID]
}

// CanSearchByEan reports whether the store supports EAN lookups.
// Every current store does; the scraper backend falls back to a
// product-page crawl for stores without a barcode endpoint.
// TODO(product): confirm whether per-store EAN capability is ever
// false; the EAN-only set suggests the inverse could exist too.
func CanSearchByEan(storeID string) bool {
	return true
}

// StoresByLocation filters stores by coverage for a location. All
// current stores ship nationally, so this is the identity; it exists
// as the extension point for future regional tiers.
func StoresByLocation(stores []domain.Store, locationID string) []domain.Store {
	return stores
}

// StoresForMode returns the stores valid for a search mode, minus any
// hard-excluded ids. Name mode keeps every store; EAN mode keeps the
// EAN-capable ones.
func StoresForMode(stores []domain.Store, mode domain.SearchMode, excluded map[string]bool) []domain.Store {
	result := make([]domain.Store, 0, len(stores))
	for _, store := range stores {
		if excluded[store.ID] {
			continue
		}
		if mode == domain.SearchByEAN && !CanSearchByEan(store.ID) {
			continue
		}
		result = append(result, store)
	}
	return result
}

// ParetoExcludedStores are skipped during bulk audits regardless of
// capability: their prices are keyed in by hand and would stall a
// large EAN batch.
var ParetoExcludedStores = map[string]bool{
	"lavaquita": true,
	"zapatoca":  true,
}
