package usecase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PriceUnavailable is shown wherever a numeric price is missing.
const PriceUnavailable = "---"

// priceSanitizer strips the currency sign and thousands separators the
// scraper strategies emit ("$1,200.00"). Only "$" and "," are removed:
// upstream strings use "," for thousands and "." for decimals, so a
// value like "1.200" deliberately parses as 1.2. Downstream consumers
// depend on that exact behavior; do not extend this to "." stripping.
var priceSanitizer = strings.NewReplacer("$", "", ",", "")

// copPrinter renders numbers with es-CO grouping: "." thousands
// separator, "," decimals.
var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// ParsePrice converts a price string to its numeric value. Unparseable
// input yields 0, never an error; a missing price is an expected
// outcome for out-of-stock rows.
func ParsePrice(raw string) float64 {
	if raw == "" {
		return 0
	}
	cleaned := strings.TrimSpace(priceSanitizer.Replace(raw))
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) {
		return 0
	}
	return value
}

// ParsePriceValue handles the heterogeneous price field of scraper
// payloads, which is a number, a string or absent depending on the
// store strategy.
func ParsePriceValue(v any) float64 {
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		return value
	case int:
		return float64(value)
	case json.Number:
		return ParsePrice(value.String())
	case string:
		return ParsePrice(value)
	default:
		return 0
	}
}

// FormatPrice renders a numeric price for display in Colombian pesos,
// e.g. 1200 -> "$1.200". NaN (price unknown) yields the "---"
// placeholder.
func FormatPrice(value float64) string {
	if math.IsNaN(value) {
		return PriceUnavailable
	}
	return "$" + copPrinter.Sprint(number.Decimal(value, number.MaxFractionDigits(2)))
}
