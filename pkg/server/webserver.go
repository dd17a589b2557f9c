package server

import (
	"net/http"
	"time"

	"github.com/sunrise-ims/inventory-finder/pkg/common"
	"github.com/sunrise-ims/inventory-finder/pkg/index"
	"github.com/sunrise-ims/inventory-finder/pkg/prefs"
)

const (
	filterOptionsCacheKey = "filter-options"
	filterOptionsCacheTTL = 10 * time.Minute
)

// WebServer serves the inventory API over an in-memory index. Cache and Auth
// are optional; a nil cache recomputes filter options per request and a nil
// auth leaves every endpoint open (useful in tests and local runs).
type WebServer struct {
	Index *index.Index
	Cache *Cache
	Auth  *Auth
	Prefs *prefs.Store
}

// Handler builds the API mux. Mount under /api (paths here are relative).
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// browser clients send preflight requests before the authorized GETs
	mux.HandleFunc("OPTIONS /", common.RespondToOptions)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /inventory", ws.protect(ws.SearchInventory))
	mux.HandleFunc("GET /inventory/filters", ws.protect(ws.GetFilterOptions))
	mux.HandleFunc("GET /inventory/export", ws.protect(ws.ExportInventory))
	mux.HandleFunc("GET /inventory/{id}", ws.protect(ws.GetInventoryByID))

	if ws.Prefs != nil {
		mux.HandleFunc("GET /preferences/{user}", ws.protect(ws.GetPreferences))
		mux.HandleFunc("PUT /preferences/{user}", ws.protect(ws.SetPreferences))
		mux.HandleFunc("DELETE /preferences/{user}", ws.protect(ws.ResetPreferences))
	}

	return mux
}

func (ws *WebServer) protect(fn http.HandlerFunc) http.HandlerFunc {
	if ws.Auth == nil {
		return fn
	}
	return ws.Auth.Middleware(fn)
}
