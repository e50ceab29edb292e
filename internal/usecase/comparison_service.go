package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/nutresa-radar/backend/internal/domain"
)

// ComparisonServiceConfig holds configuration for the comparison service
type ComparisonServiceConfig struct {
	CacheTTL            time.Duration
	EnableFuzzyMatching bool
	EnableDebugLogging  bool
}

// ComparisonService runs a price comparison: resolve the stores to
// query, call the external scraper backend, derive prices and
// measurements, rank by relevance and feed the health tracker with the
// per-store outcome.
type ComparisonService struct {
	cache              domain.CacheRepository
	scraper            domain.ScraperClient
	health             *HealthService
	scorer             *RelevanceScorer
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewComparisonService creates a comparison service with dependencies
func NewComparisonService(
	cache domain.CacheRepository,
	scraper domain.ScraperClient,
	health *HealthService,
	config ComparisonServiceConfig,
) *ComparisonService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Minute
	}

	return &ComparisonService{
		cache:              cache,
		scraper:            scraper,
		health:             health,
		scorer:             NewRelevanceScorer(config.EnableFuzzyMatching),
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Search looks up a product across the selected stores.
// Flow: check cache -> resolve stores -> scrape -> derive -> rank -> cache
func (s *ComparisonService) Search(ctx context.Context, request *domain.SearchRequest) (*domain.ComparisonResult, error) {
	return s.SearchExcluding(ctx, request, nil)
}

// SearchExcluding is Search with a hard exclusion set applied after
// capability filtering; bulk audits use it to skip manual-entry stores.
func (s *ComparisonService) SearchExcluding(ctx context.Context, request *domain.SearchRequest, excluded map[string]bool) (*domain.ComparisonResult, error) {
	if request == nil || strings.TrimSpace(request.Query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	mode := request.Mode
	if mode == "" {
		mode = domain.SearchByName
	}

	stores := s.resolveStores(request, mode, excluded)
	if len(stores) == 0 {
		if len(request.StoreIDs) > 0 {
			return nil, domain.ErrUnknownStore
		}
		return nil, domain.ErrInvalidRequest
	}

	query := buildScrapeQuery(request.Query, mode)
	cacheKey := comparisonCacheKey(query, mode, stores)

	if cached, err := s.fromCache(ctx, cacheKey); err == nil {
		cached.Metadata.Source = "Cache"
		return cached, nil
	}

	result, err := s.scrapeAndDerive(ctx, query, mode, stores, request.LocationID)
	if err != nil {
		return nil, err
	}

	if err := s.toCache(ctx, cacheKey, result); err != nil && s.enableDebugLogging {
		log.Printf("[COMPARE] Failed to cache %q: %v", cacheKey, err)
	}

	return result, nil
}

// resolveStores narrows the registry to the stores this request should
// hit: the caller's selection (or everything), coverage for the
// location, then capability for the search mode.
func (s *ComparisonService) resolveStores(request *domain.SearchRequest, mode domain.SearchMode, excluded map[string]bool) []domain.Store {
	stores := StoreRegistry()

	if len(request.StoreIDs) > 0 {
		selected := make(map[string]bool, len(request.StoreIDs))
		for _, id := range request.StoreIDs {
			selected[strings.ToLower(id)] = true
		}
		kept := stores[:0]
		for _, store := range stores {
			if selected[store.ID] {
				kept = append(kept, store)
			}
		}
		stores = kept
	}

	stores = StoresByLocation(stores, request.LocationID)
	return StoresForMode(stores, mode, excluded)
}

// scrapeAndDerive performs the backend call and turns raw rows into
// display-ready products.
func (s *ComparisonService) scrapeAndDerive(
	ctx context.Context,
	query string,
	mode domain.SearchMode,
	stores []domain.Store,
	locationID string,
) (*domain.ComparisonResult, error) {
	storeIDs := make([]string, len(stores))
	for i, store := range stores {
		storeIDs[i] = store.ID
	}

	response, err := s.scraper.Search(ctx, query, mode, storeIDs, locationID)
	if err != nil {
		// An empty catalog is a valid outcome, not a store failure: keep
		// the sentinel intact and leave the health registry alone.
		if errors.Is(err, domain.ErrNoResults) {
			return nil, err
		}
		// A failed run counts against every store we tried to reach.
		for _, id := range storeIDs {
			s.reportHealth(ctx, id, false)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrScraperFailure, err)
	}

	var failed []string
	for _, id := range storeIDs {
		if _, bad := response.Errors[id]; bad {
			failed = append(failed, id)
			s.reportHealth(ctx, id, false)
		} else {
			s.reportHealth(ctx, id, true)
		}
	}

	products := make([]domain.MarketProduct, 0, len(response.Products))
	for _, raw := range response.Products {
		products = append(products, s.deriveProduct(query, raw))
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Relevance != products[j].Relevance {
			return products[i].Relevance > products[j].Relevance
		}
		return products[i].Price < products[j].Price
	})

	return &domain.ComparisonResult{
		Products: products,
		Metadata: domain.BenchmarkMetadata{
			Query:         query,
			Mode:          mode,
			StoresQueried: storeIDs,
			StoresFailed:  failed,
			ResultCount:   len(products),
			Source:        "Scraper",
		},
	}, nil
}

// deriveProduct converts one raw scraper row into a MarketProduct:
// numeric price, display price, canonical measurement, price per
// canonical unit, brand presentation and relevance to the query.
func (s *ComparisonService) deriveProduct(query string, raw domain.RawProduct) domain.MarketProduct {
	price := ParsePriceValue(raw.Price)

	product := domain.MarketProduct{
		Name:         raw.Name,
		Store:        raw.Store,
		EAN:          raw.EAN,
		Price:        price,
		PriceDisplay: FormatPrice(price),
		Measurement:  ExtractMeasurement(raw.Name),
		URL:          raw.URL,
		Image:        raw.Image,
		Available:    raw.Available,
		Brand:        s.brandFor(raw.Store),
		Relevance:    s.scorer.Score(query, raw.Name),
	}

	if product.Measurement != nil && product.Measurement.Amount > 0 && price > 0 {
		product.PricePerUnit = price / product.Measurement.Amount
	}

	if s.enableDebugLogging {
		log.Printf("[COMPARE] %s | %s | %s | relevance=%.1f",
			raw.Store, raw.Name, product.PriceDisplay, product.Relevance)
	}

	return product
}

// brandFor maps the store attribution of a result row to presentation
// data, with the tracked health status overlaid on registry defaults.
func (s *ComparisonService) brandFor(storeName string) domain.StoreBrand {
	brand := ResolveBrand(storeName)
	if s.health != nil {
		brand.Status = s.health.EffectiveStatus(StoreIDForName(storeName), brand.Status)
	}
	return brand
}

func (s *ComparisonService) reportHealth(ctx context.Context, storeID string, ok bool) {
	if s.health == nil {
		return
	}
	var err error
	if ok {
		err = s.health.ReportSuccess(ctx, storeID)
	} else {
		err = s.health.ReportError(ctx, storeID)
	}
	if err != nil && s.enableDebugLogging {
		log.Printf("[COMPARE] Health report for %s failed: %v", storeID, err)
	}
}

// buildScrapeQuery canonicalizes the query term per mode: free text is
// normalized for the site searches, barcodes are passed through digits
// only.
func buildScrapeQuery(query string, mode domain.SearchMode) string {
	if mode == domain.SearchByEAN {
		return strings.TrimSpace(query)
	}
	return Normalize(query)
}

// comparisonCacheKey builds a stable cache key from the normalized
// query, the mode and the sorted store selection.
func comparisonCacheKey(query string, mode domain.SearchMode, stores []domain.Store) string {
	ids := make([]string, len(stores))
	for i, store := range stores {
		ids[i] = store.ID
	}
	sort.Strings(ids)
	return fmt.Sprintf("comparison:%s:%s:%s", mode, query, strings.Join(ids, ","))
}

// fromCache retrieves a comparison result. Cached values come back as
// generic JSON maps, so they round-trip through json to regain their
// shape.
func (s *ComparisonService) fromCache(ctx context.Context, key string) (*domain.ComparisonResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}

	var result domain.ComparisonResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &result, nil
}

func (s *ComparisonService) toCache(ctx context.Context, key string, result *domain.ComparisonResult) error {
	result.Metadata.CachedAt = time.Now()
	return s.cache.Set(ctx, key, result, s.cacheTTL)
}
