package usecase

import (
	"testing"

	"github.com/nutresa-radar/backend/internal/domain"
)

func TestStoreRegistry(t *testing.T) {
	t.Run("returns all twelve stores", func(t *testing.T) {
		stores := StoreRegistry()
		if len(stores) != 12 {
			t.Fatalf("StoreRegistry() returned %d stores, want 12", len(stores))
		}
		if stores[0].ID != "exito" {
			t.Errorf("first store = %s, want exito", stores[0].ID)
		}
		for _, store := range stores {
			if !store.Enabled {
				t.Errorf("store %s not enabled by default", store.ID)
			}
		}
	})

	t.Run("copies are independent", func(t *testing.T) {
		first := StoreRegistry()
		first[0].Enabled = false
		first[0].Name = "mutated"
		first[2].URLs[0] = "mutated.example"

		second := StoreRegistry()
		if !second[0].Enabled {
			t.Error("Enabled mutation leaked into a later copy")
		}
		if second[0].Name != "Éxito" {
			t.Errorf("Name mutation leaked: got %s", second[0].Name)
		}
		if second[2].URLs[0] != "tiendasjumbo.co" {
			t.Errorf("URL mutation leaked: got %s", second[2].URLs[0])
		}
	})
}

func TestStoreCapabilities(t *testing.T) {
	testCases := []struct {
		storeID string
		byName  bool
		eanOnly bool
	}{
		{"exito", true, false},
		{"carulla", true, false},
		{"jumbo", true, false},
		{"olimpica", true, false},
		{"makro", true, false},
		{"alkosto", true, false},
		{"pricesmart", true, false},
		{"d1", false, true},
		{"ara", false, true},
		{"euro", false, true},
		{"lavaquita", false, true},
		{"zapatoca", false, true},
		{"unknown-store", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.storeID, func(t *testing.T) {
			if got := CanSearchByName(tc.storeID); got != tc.byName {
				t.Errorf("CanSearchByName(%s) = %v, want %v", tc.storeID, got, tc.byName)
			}
			if got := IsEANOnly(tc.storeID); got != tc.eanOnly {
				t.Errorf("IsEANOnly(%s) = %v, want %v", tc.storeID, got, tc.eanOnly)
			}
			if !CanSearchByEan(tc.storeID) {
				t.Errorf("CanSearchByEan(%s) = false, want true", tc.storeID)
			}
		})
	}
}

func TestStoresByLocation(t *testing.T) {
	stores := StoreRegistry()

	for _, locationID := range []string{"", "bogota", "medellin", "no-such-place"} {
		got := StoresByLocation(stores, locationID)
		if len(got) != len(stores) {
			t.Errorf("StoresByLocation(%q) returned %d stores, want %d", locationID, len(got), len(stores))
		}
	}
}

func TestStoresForMode(t *testing.T) {
	stores := StoreRegistry()

	t.Run("name mode keeps every store", func(t *testing.T) {
		got := StoresForMode(stores, domain.SearchByName, nil)
		if len(got) != len(stores) {
			t.Errorf("got %d stores, want %d", len(got), len(stores))
		}
	})

	t.Run("ean mode keeps every store", func(t *testing.T) {
		got := StoresForMode(stores, domain.SearchByEAN, nil)
		if len(got) != len(stores) {
			t.Errorf("got %d stores, want %d", len(got), len(stores))
		}
	})

	t.Run("exclusions are removed", func(t *testing.T) {
		got := StoresForMode(stores, domain.SearchByEAN, ParetoExcludedStores)
		if len(got) != len(stores)-2 {
			t.Fatalf("got %d stores, want %d", len(got), len(stores)-2)
		}
		for _, store := range got {
			if ParetoExcludedStores[store.ID] {
				t.Errorf("excluded store %s survived the filter", store.ID)
			}
		}
	})
}
