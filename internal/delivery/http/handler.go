package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutresa-radar/backend/internal/domain"
	"github.com/nutresa-radar/backend/internal/infrastructure/export"
	"github.com/nutresa-radar/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	comparison     *usecase.ComparisonService
	pareto         *usecase.ParetoService
	health         *usecase.HealthService
	exportCategory string
}

// NewHandler creates a new HTTP handler
func NewHandler(
	comparison *usecase.ComparisonService,
	pareto *usecase.ParetoService,
	health *usecase.HealthService,
	exportCategory string,
) *Handler {
	return &Handler{
		comparison:     comparison,
		pareto:         pareto,
		health:         health,
		exportCategory: exportCategory,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutresa-radar-backend",
		"version": "1.0.0",
	})
}

// storeView is a registry store enriched with its brand and effective
// status for the dashboard.
type storeView struct {
	domain.Store
	Brand           domain.StoreBrand `json:"brand"`
	CanSearchByName bool              `json:"canSearchByName"`
	CanSearchByEan  bool              `json:"canSearchByEan"`
}

// ListStores returns the store registry with branding and the health
// tracker's effective status applied.
func (h *Handler) ListStores(c *gin.Context) {
	stores := usecase.StoreRegistry()
	stores = usecase.StoresByLocation(stores, c.Query("locationId"))

	views := make([]storeView, len(stores))
	for i, store := range stores {
		views[i] = storeView{
			Store:           store,
			Brand:           usecase.BrandForStore(h.health, store),
			CanSearchByName: usecase.CanSearchByName(store.ID),
			CanSearchByEan:  usecase.CanSearchByEan(store.ID),
		}
	}

	c.JSON(http.StatusOK, gin.H{"stores": views})
}

// SearchComparison runs a single product comparison.
func (h *Handler) SearchComparison(c *gin.Context) {
	var request domain.SearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result, err := h.comparison.Search(c.Request.Context(), &request)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// paretoRequest carries either pasted spreadsheet text or an already
// parsed item list.
type paretoRequest struct {
	Rows       string              `json:"rows,omitempty"`
	Items      []domain.ParetoItem `json:"items,omitempty"`
	LocationID string              `json:"locationId,omitempty"`
	Query      string              `json:"query,omitempty"`
}

// RunPareto runs a bulk audit over a pasted list of product references.
func (h *Handler) RunPareto(c *gin.Context) {
	result, _, ok := h.runPareto(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportPareto runs the audit and streams the xlsx workbook.
func (h *Handler) ExportPareto(c *gin.Context) {
	result, request, ok := h.runPareto(c)
	if !ok {
		return
	}

	workbook, err := export.Workbook(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}

	var buf bytes.Buffer
	if _, err := workbook.WriteTo(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write workbook"})
		return
	}

	filename := export.Filename(h.exportCategory, request.Query, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// runPareto parses the request and executes the audit shared by the
// JSON and export endpoints.
func (h *Handler) runPareto(c *gin.Context) (*domain.ParetoResult, *paretoRequest, bool) {
	var request paretoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, nil, false
	}

	items := request.Items
	if len(items) == 0 {
		items = h.pareto.ParseRows(request.Rows)
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no audit items provided"})
		return nil, nil, false
	}

	result, err := h.pareto.RunAudit(c.Request.Context(), items, request.LocationID)
	if err != nil {
		h.writeServiceError(c, err)
		return nil, nil, false
	}
	return result, &request, true
}

// writeServiceError maps domain sentinels to HTTP statuses.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
	case errors.Is(err, domain.ErrUnknownStore):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown store selection"})
	case errors.Is(err, domain.ErrNoResults):
		c.JSON(http.StatusNotFound, gin.H{"error": "no products found"})
	case errors.Is(err, domain.ErrScraperFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "price-scraper backend unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
