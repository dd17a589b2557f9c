package server

import (
	"encoding/json"
	"net/http"

	"github.com/sunrise-ims/inventory-finder/pkg/common"
	"github.com/sunrise-ims/inventory-finder/pkg/prefs"
)

func (ws *WebServer) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := ws.Prefs.Get(r.Context(), r.PathValue("user"))
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, "error reading preferences")
		return
	}
	common.RespondJSON(w, http.StatusOK, p)
}

func (ws *WebServer) SetPreferences(w http.ResponseWriter, r *http.Request) {
	var p prefs.Preferences
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid preferences")
		return
	}
	if err := ws.Prefs.Set(r.Context(), r.PathValue("user"), &p); err != nil {
		common.RespondError(w, http.StatusInternalServerError, "error saving preferences")
		return
	}
	common.RespondJSON(w, http.StatusOK, &p)
}

func (ws *WebServer) ResetPreferences(w http.ResponseWriter, r *http.Request) {
	if err := ws.Prefs.Reset(r.Context(), r.PathValue("user")); err != nil {
		common.RespondError(w, http.StatusInternalServerError, "error resetting preferences")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
