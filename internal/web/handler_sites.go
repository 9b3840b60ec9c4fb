package web

import (
	"net/http"

	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/service"
	"github.com/rbelkadi/chantrack/internal/views"
)

func (s *Server) handleListSites(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.reg.Sites.All())
}

func (s *Server) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	var in service.SiteInput
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid site payload")
		return
	}
	site, err := s.sites.Create(in)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, site)
}

func (s *Server) handleGetSite(w http.ResponseWriter, r *http.Request) {
	site, err := s.sites.Get(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, site)
}

func (s *Server) handleDeleteSite(w http.ResponseWriter, r *http.Request) {
	if err := s.sites.Delete(r.PathValue("id")); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAssignTeam(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Team string `json:"team"`
	}
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.sites.AssignTeam(r.PathValue("id"), in.Team); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status domain.SiteStatus `json:"status"`
	}
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.sites.SetStatus(r.PathValue("id"), in.Status); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReschedule(w http.ResponseWriter, r *http.Request) {
	var in struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.sites.Reschedule(r.PathValue("id"), in.StartDate, in.EndDate); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Notes string `json:"notes"`
	}
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := s.sites.UpdateNotes(r.PathValue("id"), in.Notes); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSiteMaterials(w http.ResponseWriter, r *http.Request) {
	site, err := s.sites.Get(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	requests := views.SiteMaterials(s.reg, site.ID)
	if requests == nil {
		requests = []domain.MaterialRequest{}
	}
	s.respondJSON(w, http.StatusOK, requests)
}

func (s *Server) handleOrderText(w http.ResponseWriter, r *http.Request) {
	site, err := s.sites.Get(r.PathValue("id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(views.OrderText(s.reg, site.ID))); err != nil {
		s.logger.Error("failed to write order text", "error", err)
	}
}
