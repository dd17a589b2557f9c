package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"github.com/sunrise-ims/inventory-finder/pkg/common"
	"github.com/sunrise-ims/inventory-finder/pkg/export"
	"github.com/sunrise-ims/inventory-finder/pkg/index"
	"github.com/sunrise-ims/inventory-finder/pkg/params"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventoryfinder_searches_total",
		Help: "The total number of processed inventory searches",
	})
	noExports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventoryfinder_exports_total",
		Help: "The total number of processed inventory exports",
	})
	filterCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventoryfinder_filter_cache_hits_total",
		Help: "Filter option responses served from cache",
	})
	filterCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventoryfinder_filter_cache_misses_total",
		Help: "Filter option responses recomputed from the index",
	})
)

type searchResponse struct {
	Data *index.Page `json:"data"`
}

// SearchInventory answers the paginated list endpoint.
func (ws *WebServer) SearchInventory(w http.ResponseWriter, r *http.Request) {
	noSearches.Inc()

	sr, err := params.Decode(r.URL.Query())
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid search parameters")
		return
	}

	common.RespondJSON(w, http.StatusOK, searchResponse{Data: ws.Index.Search(sr)})
}

// GetInventoryByID serves a single record by pan id, with optional
// polymer/form/folder/lot disambiguators for pans spanning several lots.
func (ws *WebServer) GetInventoryByID(w http.ResponseWriter, r *http.Request) {
	panID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid pan id")
		return
	}

	q := r.URL.Query()
	record, err := ws.Index.GetByPan(panID, q.Get("polymer"), q.Get("form"), q.Get("folder"), q.Get("lot"))
	if err != nil {
		common.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	common.RespondJSON(w, http.StatusOK, record)
}

// GetFilterOptions serves the categorical values and ranges bounding the UI
// controls, cached for a few minutes because the scan touches every record.
func (ws *WebServer) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	if ws.Cache != nil {
		var cached index.FilterOptions
		err := ws.Cache.Get(r.Context(), filterOptionsCacheKey, &cached)
		if err == nil {
			filterCacheHits.Inc()
			common.RespondJSON(w, http.StatusOK, &cached)
			return
		}
		if !errors.Is(err, redis.Nil) {
			log.Printf("filter options cache read failed: %v", err)
		}
	}
	filterCacheMisses.Inc()

	opts := ws.Index.FilterOptions()
	if ws.Cache != nil {
		if err := ws.Cache.Set(r.Context(), filterOptionsCacheKey, opts, filterOptionsCacheTTL); err != nil {
			log.Printf("filter options cache write failed: %v", err)
		}
	}
	common.RespondJSON(w, http.StatusOK, opts)
}

// ExportInventory streams an xlsx workbook over the full matching set. It
// decodes the same criteria surface as SearchInventory, minus pagination, so
// the export covers exactly what the list shows.
func (ws *WebServer) ExportInventory(w http.ResponseWriter, r *http.Request) {
	noExports.Inc()

	criteria, sort, err := params.DecodeCriteria(r.URL.Query())
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid export parameters")
		return
	}

	records := ws.Index.SearchAll(criteria, sort)

	filename := "inventory_export_" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Type", export.ContentType)
	if err := export.Write(w, records); err != nil {
		log.Printf("export failed: %v", err)
	}
}
