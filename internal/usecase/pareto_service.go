package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/nutresa-radar/backend/internal/domain"
)

// nonDigitRegex strips formatting from pasted EAN cells ("770 1234..."),
// leaving the bare barcode.
var nonDigitRegex = regexp.MustCompile(`[^0-9]`)

// ParetoServiceConfig holds configuration for the pareto service
type ParetoServiceConfig struct {
	EnableDebugLogging bool
}

// ParetoService runs bulk audits: a pasted list of reference products
// is queried across every EAN-capable store and rolled up per store.
type ParetoService struct {
	comparison         *ComparisonService
	enableDebugLogging bool
}

// NewParetoService creates a pareto service on top of the comparison
// service.
func NewParetoService(comparison *ComparisonService, config ParetoServiceConfig) *ParetoService {
	return &ParetoService{
		comparison:         comparison,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ParseRows parses pasted spreadsheet text into audit items. Rows are
// tab-delimited when a tab is present, comma-delimited otherwise, in
// the column order Name | Keywords | EAN | Price. A first line with no
// digits anywhere is treated as a header. Malformed lines are skipped,
// never fatal; a pasted block is user input, not a file format.
func (s *ParetoService) ParseRows(text string) []domain.ParetoItem {
	var items []domain.ParetoItem

	for i, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := splitRow(line)
		if i == 0 && looksLikeHeader(fields) {
			continue
		}

		item := domain.ParetoItem{Name: strings.TrimSpace(fields[0])}
		if item.Name == "" {
			continue
		}
		if len(fields) > 1 {
			item.Keywords = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			item.EAN = nonDigitRegex.ReplaceAllString(fields[2], "")
		}
		if len(fields) > 3 {
			item.ReferencePrice = ParsePrice(fields[3])
		}
		items = append(items, item)
	}

	return items
}

// RunAudit queries every item across the EAN-capable stores, excluding
// the manual-entry set, and aggregates the outcome per store. Items
// with an EAN are looked up by barcode; the rest fall back to a
// normalized name search.
func (s *ParetoService) RunAudit(ctx context.Context, items []domain.ParetoItem, locationID string) (*domain.ParetoResult, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	result := &domain.ParetoResult{
		Rows: make([]domain.ParetoRowResult, 0, len(items)),
	}
	queried := make(map[string]bool)
	var eanItems, nameItems int

	for _, item := range items {
		if item.EAN != "" {
			eanItems++
		} else {
			nameItems++
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		request := requestForItem(item, locationID)
		comparison, err := s.comparison.SearchExcluding(ctx, request, ParetoExcludedStores)
		if err != nil {
			if errors.Is(err, domain.ErrNoResults) {
				result.Rows = append(result.Rows, domain.ParetoRowResult{Item: item})
				continue
			}
			if s.enableDebugLogging {
				log.Printf("[PARETO] %q failed: %v", item.Name, err)
			}
			result.Rows = append(result.Rows, domain.ParetoRowResult{Item: item})
			continue
		}

		for _, id := range comparison.Metadata.StoresQueried {
			queried[id] = true
		}
		result.Rows = append(result.Rows, domain.ParetoRowResult{
			Item:     item,
			Products: comparison.Products,
		})
	}

	// Mode is only meaningful when every item was looked up the same
	// way; a mixed batch leaves it unset.
	var mode domain.SearchMode
	switch {
	case nameItems == 0:
		mode = domain.SearchByEAN
	case eanItems == 0:
		mode = domain.SearchByName
	}

	result.Aggregates = aggregateByStore(result.Rows)
	result.Metadata = domain.BenchmarkMetadata{
		Mode:          mode,
		StoresQueried: sortedKeys(queried),
		ResultCount:   len(result.Rows),
		Source:        "Scraper",
	}

	return result, nil
}

// requestForItem prefers the barcode; keywords enrich a name search
// when no EAN is available.
func requestForItem(item domain.ParetoItem, locationID string) *domain.SearchRequest {
	if item.EAN != "" {
		return &domain.SearchRequest{Query: item.EAN, Mode: domain.SearchByEAN, LocationID: locationID}
	}
	query := item.Name
	if item.Keywords != "" {
		query += " " + item.Keywords
	}
	return &domain.SearchRequest{Query: query, Mode: domain.SearchByName, LocationID: locationID}
}

// aggregateByStore rolls results up per store: product count, average
// price and average price per canonical unit, sorted by the latter
// ascending. Stores without any measurable product sort last.
func aggregateByStore(rows []domain.ParetoRowResult) []domain.StoreAggregate {
	type accumulator struct {
		name       string
		count      int
		priceSum   float64
		ppuSum     float64
		ppuSamples int
	}
	accs := make(map[string]*accumulator)

	for _, row := range rows {
		for _, product := range row.Products {
			id := StoreIDForName(product.Store)
			acc, ok := accs[id]
			if !ok {
				acc = &accumulator{name: product.Brand.Name}
				accs[id] = acc
			}
			acc.count++
			acc.priceSum += product.Price
			if product.PricePerUnit > 0 {
				acc.ppuSum += product.PricePerUnit
				acc.ppuSamples++
			}
		}
	}

	aggregates := make([]domain.StoreAggregate, 0, len(accs))
	for id, acc := range accs {
		aggregate := domain.StoreAggregate{
			StoreID:      id,
			StoreName:    acc.name,
			ProductCount: acc.count,
			AveragePrice: acc.priceSum / float64(acc.count),
		}
		if acc.ppuSamples > 0 {
			aggregate.AvgPricePerUnit = acc.ppuSum / float64(acc.ppuSamples)
		}
		aggregates = append(aggregates, aggregate)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		a, b := aggregates[i].AvgPricePerUnit, aggregates[j].AvgPricePerUnit
		if a == 0 {
			return false
		}
		if b == 0 {
			return true
		}
		return a < b
	})
	return aggregates
}

// splitRow prefers tab delimiters (direct spreadsheet paste) and falls
// back to commas.
func splitRow(line string) []string {
	if strings.Contains(line, "\t") {
		return strings.Split(line, "\t")
	}
	return strings.Split(line, ",")
}

// looksLikeHeader reports whether a first row carries column labels
// rather than data: labels have no digits at all.
func looksLikeHeader(fields []string) bool {
	for _, field := range fields {
		if strings.ContainsAny(field, "0123456789") {
			return false
		}
	}
	return true
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
