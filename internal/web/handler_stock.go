package web

import (
	"net/http"

	"github.com/rbelkadi/chantrack/internal/domain"
)

func (s *Server) handleListStock(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.reg.Stock.All())
}

func (s *Server) handleAddStockItem(w http.ResponseWriter, r *http.Request) {
	var item domain.StockItem
	if err := decodeJSON(r, &item); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid stock payload")
		return
	}
	created, err := s.stock.AddItem(item)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SiteID   string  `json:"site_id"`
		Quantity float64 `json:"quantity"`
	}
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid withdrawal payload")
		return
	}
	req, err := s.stock.Withdraw(in.SiteID, r.PathValue("reference"), in.Quantity)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, req)
}

func (s *Server) handleRestock(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Quantity float64 `json:"quantity"`
	}
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid restock payload")
		return
	}
	if err := s.stock.Restock(r.PathValue("reference"), in.Quantity); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSupplierOrder(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SiteID      string  `json:"site_id"`
		Reference   string  `json:"reference"`
		Description string  `json:"description"`
		Quantity    float64 `json:"quantity"`
		Unit        string  `json:"unit"`
	}
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid order payload")
		return
	}
	req, err := s.stock.OrderFromSupplier(in.SiteID, in.Reference, in.Description, in.Quantity, in.Unit)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, req)
}
