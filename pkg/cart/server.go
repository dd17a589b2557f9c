package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sunrise-ims/inventory-finder/pkg/common"
)

type CartServer struct {
	Storage Storage
}

func (s *CartServer) GetCart(w http.ResponseWriter, req *http.Request) {
	cart, err := s.Storage.GetCart(req.PathValue("id"))
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, "error getting cart")
		return
	}
	common.RespondJSON(w, http.StatusOK, cart)
}

func (s *CartServer) AddItem(w http.ResponseWriter, req *http.Request) {
	var item Item
	if err := json.NewDecoder(req.Body).Decode(&item); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid item")
		return
	}
	if item.PanID == "" {
		common.RespondError(w, http.StatusBadRequest, "item needs a pan id")
		return
	}
	cart, err := s.Storage.AddItem(req.PathValue("id"), item)
	if errors.Is(err, ErrCartFull) || errors.Is(err, ErrDuplicate) {
		common.RespondError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, "error adding item")
		return
	}
	common.RespondJSON(w, http.StatusOK, cart)
}

func (s *CartServer) RemoveItem(w http.ResponseWriter, req *http.Request) {
	cart, err := s.Storage.RemoveItem(req.PathValue("id"), req.PathValue("itemId"))
	if errors.Is(err, ErrNotFound) {
		common.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		common.RespondError(w, http.StatusInternalServerError, "error removing item")
		return
	}
	common.RespondJSON(w, http.StatusOK, cart)
}

func (s *CartServer) ClearCart(w http.ResponseWriter, req *http.Request) {
	if err := s.Storage.ClearCart(req.PathValue("id")); err != nil {
		common.RespondError(w, http.StatusInternalServerError, "error clearing cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *CartServer) CartHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{id}", s.GetCart)
	mux.HandleFunc("POST /{id}", s.AddItem)
	mux.HandleFunc("DELETE /{id}", s.ClearCart)
	mux.HandleFunc("DELETE /{id}/items/{itemId}", s.RemoveItem)
	return mux
}
