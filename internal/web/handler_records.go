package web

// CRUD over the simple record collections: clients, invoices, quotes. These
// dispatch straight into the registry; identifiers are assigned on create and
// immutable afterwards.

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rbelkadi/chantrack/internal/domain"
)

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.reg.Clients.All())
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var c domain.Client
	if err := decodeJSON(r, &c); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid client payload")
		return
	}
	if c.Name == "" {
		s.respondError(w, http.StatusBadRequest, "client name required")
		return
	}
	c.ID = uuid.NewString()
	if err := s.reg.Clients.Append(c); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save client")
		return
	}
	s.respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var c domain.Client
	if err := decodeJSON(r, &c); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid client payload")
		return
	}
	id := r.PathValue("id")
	ok, err := s.reg.Clients.UpdateFirst(
		func(v domain.Client) bool { return v.ID == id },
		func(v *domain.Client) {
			c.ID = id
			*v = c
		},
	)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save client")
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "client not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ok, err := s.reg.Clients.RemoveFirst(func(v domain.Client) bool { return v.ID == id })
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save clients")
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "client not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.reg.Invoices.All())
}

func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var inv domain.Invoice
	if err := decodeJSON(r, &inv); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid invoice payload")
		return
	}
	if inv.Number == "" {
		s.respondError(w, http.StatusBadRequest, "invoice number required")
		return
	}
	if inv.Total < 0 {
		s.respondError(w, http.StatusBadRequest, "invoice total must not be negative")
		return
	}
	inv.ID = uuid.NewString()
	if err := s.reg.Invoices.Append(inv); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save invoice")
		return
	}
	s.respondJSON(w, http.StatusCreated, inv)
}

func (s *Server) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var inv domain.Invoice
	if err := decodeJSON(r, &inv); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid invoice payload")
		return
	}
	if inv.Total < 0 {
		s.respondError(w, http.StatusBadRequest, "invoice total must not be negative")
		return
	}
	id := r.PathValue("id")
	ok, err := s.reg.Invoices.UpdateFirst(
		func(v domain.Invoice) bool { return v.ID == id },
		func(v *domain.Invoice) {
			inv.ID = id
			*v = inv
		},
	)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save invoice")
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "invoice not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ok, err := s.reg.Invoices.RemoveFirst(func(v domain.Invoice) bool { return v.ID == id })
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save invoices")
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "invoice not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.reg.Quotes.All())
}

func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var q domain.Quote
	if err := decodeJSON(r, &q); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid quote payload")
		return
	}
	if q.Number == "" {
		s.respondError(w, http.StatusBadRequest, "quote number required")
		return
	}
	if q.Total < 0 {
		s.respondError(w, http.StatusBadRequest, "quote total must not be negative")
		return
	}
	q.ID = uuid.NewString()
	if err := s.reg.Quotes.Append(q); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save quote")
		return
	}
	s.respondJSON(w, http.StatusCreated, q)
}

func (s *Server) handleUpdateQuote(w http.ResponseWriter, r *http.Request) {
	var q domain.Quote
	if err := decodeJSON(r, &q); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid quote payload")
		return
	}
	if q.Total < 0 {
		s.respondError(w, http.StatusBadRequest, "quote total must not be negative")
		return
	}
	id := r.PathValue("id")
	ok, err := s.reg.Quotes.UpdateFirst(
		func(v domain.Quote) bool { return v.ID == id },
		func(v *domain.Quote) {
			q.ID = id
			*v = q
		},
	)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save quote")
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "quote not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ok, err := s.reg.Quotes.RemoveFirst(func(v domain.Quote) bool { return v.ID == id })
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to save quotes")
		return
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, "quote not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
