package usecase

import (
	"strings"

	"github.com/nutresa-radar/backend/internal/domain"
)

// unknownBrandColor is the neutral gray used when a store name cannot
// be attributed.
const unknownBrandColor = "#A8A29E"

// brandRule pairs a normalized keyword with its registry store id and
// brand record. Rules are tested in order and the first containment
// wins, so more specific keywords must precede shorter ones that could
// shadow them ("supermercados la vaquita" before any rule a bare "s"
// could hit). The keyword is not always the id: "vaquita" resolves to
// the "lavaquita" registry entry.
type brandRule struct {
	keyword string
	storeID string
	brand   domain.StoreBrand
}

var brandRules = []brandRule{
	{"exito", "exito", domain.StoreBrand{Icon: "/icons/stores/exito.png", Color: "#FFDD00", Name: "Éxito", URL: "https://www.exito.com", Status: domain.StatusOnline}},
	{"carulla", "carulla", domain.StoreBrand{Icon: "/icons/stores/carulla.png", Color: "#00843D", Name: "Carulla", URL: "https://www.carulla.com", Status: domain.StatusOnline}},
	{"jumbo", "jumbo", domain.StoreBrand{Icon: "/icons/stores/jumbo.png", Color: "#61A60E", Name: "Jumbo", URL: "https://www.tiendasjumbo.co", Status: domain.StatusOnline}},
	{"olimpica", "olimpica", domain.StoreBrand{Icon: "/icons/stores/olimpica.png", Color: "#ED1C24", Name: "Olímpica", URL: "https://www.olimpica.com", Status: domain.StatusOnline}},
	{"makro", "makro", domain.StoreBrand{Icon: "/icons/stores/makro.png", Color: "#0F4C81", Name: "Makro", URL: "https://www.tiendasmakro.com.co", Status: domain.StatusOnline}},
	{"alkosto", "alkosto", domain.StoreBrand{Icon: "/icons/stores/alkosto.png", Color: "#FF6C0E", Name: "Alkosto", URL: "https://www.alkosto.com", Status: domain.StatusOnline}},
	{"pricesmart", "pricesmart", domain.StoreBrand{Icon: "/icons/stores/pricesmart.png", Color: "#0067B1", Name: "PriceSmart", URL: "https://www.pricesmart.com", Status: domain.StatusComingSoon}},
	{"vaquita", "lavaquita", domain.StoreBrand{Icon: "/icons/stores/lavaquita.png", Color: "#6CC24A", Name: "La Vaquita", URL: "https://lavaquita.co", Status: domain.StatusManual}},
	{"zapatoca", "zapatoca", domain.StoreBrand{Icon: "/icons/stores/zapatoca.png", Color: "#7B3F00", Name: "Zapatoca", URL: "https://mercadozapatoca.com", Status: domain.StatusManual}},
	{"d1", "d1", domain.StoreBrand{Icon: "/icons/stores/d1.png", Color: "#D52B1E", Name: "D1", URL: "https://domicilios.tiendasd1.com", Status: domain.StatusOnline}},
	{"ara", "ara", domain.StoreBrand{Icon: "/icons/stores/ara.png", Color: "#EE2737", Name: "Ara", URL: "https://aratiendas.com", Status: domain.StatusOnline}},
	{"euro", "euro", domain.StoreBrand{Icon: "/icons/stores/euro.png", Color: "#0072CE", Name: "Euro", URL: "https://www.eurosupermercados.com", Status: domain.StatusOnline}},
}

// ResolveBrand fuzzy-matches a free-text store name ("SUPER MERCADO
// EXITO S.A.") to its canonical brand record. Matching folds accents
// and case but keeps punctuation: "d1" must not lose its digit and
// dotted names still contain their keyword. Unmatched names come back
// as a generic brand carrying the original text.
func ResolveBrand(storeName string) domain.StoreBrand {
	if strings.TrimSpace(storeName) == "" {
		return domain.StoreBrand{Color: unknownBrandColor, Name: "Unknown"}
	}

	folded := StripAccents(storeName)
	for _, rule := range brandRules {
		if strings.Contains(folded, rule.keyword) {
			return rule.brand
		}
	}

	return domain.StoreBrand{Color: unknownBrandColor, Name: storeName}
}

// StoreIDForName maps a free-text store attribution to its registry
// store id. Health records and aggregates are keyed by id, so display
// names ("La Vaquita") must resolve before any lookup; unmatched names
// fall back to their folded form.
func StoreIDForName(storeName string) string {
	folded := StripAccents(storeName)
	for _, rule := range brandRules {
		if strings.Contains(folded, rule.keyword) {
			return rule.storeID
		}
	}
	return folded
}

// BrandForStore resolves the brand for a registry store id and applies
// the tracked health status on top of the registry default. The
// registry default stays authoritative for manual and coming_soon
// stores.
func BrandForStore(health *HealthService, store domain.Store) domain.StoreBrand {
	brand := ResolveBrand(store.Name)
	if health != nil {
		brand.Status = health.EffectiveStatus(store.ID, brand.Status)
	}
	return brand
}
