package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nutresa-radar/backend/internal/domain"
)

// Presentation patterns, evaluated strictly in order: first match wins.
// The weight/volume pattern requires the unit token glued to the
// number ("500g", "1kg"); the only spaced form recognized is the bare
// liter fallback ("1.5 l"), which mirrors how the retail sites print
// beverage sizes.
var (
	// "12 und", "6 paquetes", "2 bolsas"
	unitCountRegex = regexp.MustCompile(`\b(\d+)\s*(und|unidades|uds|paquetes?|pks?|bolsas?)\b`)

	// "500g", "1kg", "400ml", "1lb", "16oz", "3000cc"
	weightVolumeRegex = regexp.MustCompile(`\b(\d+(?:[.,]\d+)?)(gr|gramos|g|kg|kilos?|ml|cc|lt|litros?|l|lb|libras?|oz|onzas?)\b`)

	// "1.5 l" fallback, always liters
	bareLiterRegex = regexp.MustCompile(`\b(\d+(?:[.,]\d+)?)\s+l\b`)
)

// ExtractMeasurement parses a free-text product description and returns
// the canonical quantity, or nil when no recognizable quantity token is
// present. Absence of a match is a valid outcome, not an error.
func ExtractMeasurement(text string) *domain.Measurement {
	if text == "" {
		return nil
	}
	s := strings.ToLower(text)
	s = multipleSpacesRegex.ReplaceAllString(s, " ")

	// Unit counts take priority: "12 und paquete x 30g" is 12 units,
	// not 30 grams.
	if m := unitCountRegex.FindStringSubmatch(s); m != nil {
		count, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return &domain.Measurement{Amount: float64(count), Unit: domain.UnitCount}
	}

	if m := weightVolumeRegex.FindStringSubmatch(s); m != nil {
		amount, err := parseDecimal(m[1])
		if err != nil {
			return nil
		}
		return convertUnit(amount, m[2])
	}

	if m := bareLiterRegex.FindStringSubmatch(s); m != nil {
		amount, err := parseDecimal(m[1])
		if err != nil {
			return nil
		}
		return &domain.Measurement{Amount: amount * 1000, Unit: domain.UnitMilliliters}
	}

	return nil
}

// convertUnit maps a matched unit token to grams or milliliters.
func convertUnit(amount float64, token string) *domain.Measurement {
	switch {
	case token == "kg" || strings.HasPrefix(token, "kilo"):
		return &domain.Measurement{Amount: amount * 1000, Unit: domain.UnitGrams}
	case token == "l" || token == "lt" || strings.HasPrefix(token, "litro"):
		return &domain.Measurement{Amount: amount * 1000, Unit: domain.UnitMilliliters}
	case token == "lb" || strings.HasPrefix(token, "libra"):
		// Retail pound, rounded to 500g. The sites themselves advertise
		// "1 libra = 500g", so the exact 453.6 factor would mismatch
		// their own price-per-gram figures.
		return &domain.Measurement{Amount: amount * 500, Unit: domain.UnitGrams}
	case token == "oz" || strings.HasPrefix(token, "onza"):
		return &domain.Measurement{Amount: math.Round(amount * 28.35), Unit: domain.UnitGrams}
	case token == "cc":
		return &domain.Measurement{Amount: amount, Unit: domain.UnitMilliliters}
	case strings.HasPrefix(token, "m") || strings.HasPrefix(token, "l"):
		return &domain.Measurement{Amount: amount, Unit: domain.UnitMilliliters}
	default:
		return &domain.Measurement{Amount: amount, Unit: domain.UnitGrams}
	}
}

// parseDecimal accepts "," as the decimal separator alongside ".".
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
