package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/nutresa-radar/backend/internal/domain"
)

// DefaultHealthStorageKey is the single key under which the whole
// health registry is persisted.
const DefaultHealthStorageKey = "radar:store-health"

// defaultErrorThreshold is the consecutive-failure count that demotes
// a store to maintenance.
const defaultErrorThreshold = 3

// HealthServiceConfig holds configuration for the health service
type HealthServiceConfig struct {
	StorageKey     string
	ErrorThreshold int
}

// HealthService tracks per-store scrape reliability and demotes stores
// to maintenance after repeated failures. State lives as one JSON map
// in an injected key-value store; every report is a read-modify-write
// so a page reload always sees the latest counts.
//
// The service is not safe for concurrent writers; callers report
// results sequentially from the request path.
type HealthService struct {
	kv             domain.KeyValueStore
	storageKey     string
	errorThreshold int
}

// NewHealthService creates a health service backed by the given
// key-value store.
func NewHealthService(kv domain.KeyValueStore, config HealthServiceConfig) *HealthService {
	key := config.StorageKey
	if key == "" {
		key = DefaultHealthStorageKey
	}

	threshold := config.ErrorThreshold
	if threshold <= 0 {
		threshold = defaultErrorThreshold
	}

	return &HealthService{
		kv:             kv,
		storageKey:     key,
		errorThreshold: threshold,
	}
}

// ReportSuccess records a successful scrape: the store goes back to
// online and its failure streak resets, whatever state it was in.
func (s *HealthService) ReportSuccess(ctx context.Context, storeID string) error {
	registry := s.load(ctx)

	id := strings.ToLower(storeID)
	record := registry[id]
	record.Status = domain.StatusOnline
	record.LastSuccess = time.Now().UTC().Format(time.RFC3339)
	record.ConsecutiveErrors = 0
	registry[id] = record

	return s.persist(ctx, registry)
}

// ReportError records a failed scrape. Once the streak reaches the
// threshold the store is demoted to maintenance, unless its current
// status is an authoritative override (manual, coming_soon).
func (s *HealthService) ReportError(ctx context.Context, storeID string) error {
	registry := s.load(ctx)

	id := strings.ToLower(storeID)
	record := registry[id]
	record.ConsecutiveErrors++
	record.LastError = time.Now().UTC().Format(time.RFC3339)
	if record.ConsecutiveErrors >= s.errorThreshold && !record.Status.Authoritative() {
		record.Status = domain.StatusMaintenance
	}
	registry[id] = record

	return s.persist(ctx, registry)
}

// EffectiveStatus resolves the status to display for a store. The
// registry-declared default wins when it is authoritative; otherwise
// the tracked status applies, and a store with no history keeps its
// default.
func (s *HealthService) EffectiveStatus(storeID string, defaultStatus domain.StoreStatus) domain.StoreStatus {
	if defaultStatus.Authoritative() {
		return defaultStatus
	}

	registry := s.load(context.Background())
	record, ok := registry[strings.ToLower(storeID)]
	if !ok || record.Status == "" {
		return defaultStatus
	}
	return record.Status
}

// Record returns the tracked record for a store, if any.
func (s *HealthService) Record(ctx context.Context, storeID string) (domain.HealthRecord, bool) {
	registry := s.load(ctx)
	record, ok := registry[strings.ToLower(storeID)]
	return record, ok
}

// load reads the persisted registry. A missing key is a fresh install;
// malformed JSON is logged and treated as empty rather than propagated,
// so one corrupt write can never brick the dashboard.
func (s *HealthService) load(ctx context.Context) map[string]domain.HealthRecord {
	registry := make(map[string]domain.HealthRecord)

	raw, err := s.kv.Get(ctx, s.storageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("[HEALTH] Failed to read registry: %v", err)
		}
		return registry
	}

	if err := json.Unmarshal([]byte(raw), &registry); err != nil {
		log.Printf("[HEALTH] Corrupt registry discarded: %v", err)
		return make(map[string]domain.HealthRecord)
	}
	return registry
}

// persist rewrites the whole registry under the single storage key.
func (s *HealthService) persist(ctx context.Context, registry map[string]domain.HealthRecord) error {
	data, err := json.Marshal(registry)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.storageKey, string(data))
}
