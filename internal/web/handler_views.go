package web

import (
	"net/http"

	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/estimate"
	"github.com/rbelkadi/chantrack/internal/views"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, views.BuildDashboard(s.reg))
}

func (s *Server) handleWorkTypeChart(w http.ResponseWriter, r *http.Request) {
	slices := views.WorkTypeDistribution(s.reg)
	if slices == nil {
		slices = []views.Slice{}
	}
	s.respondJSON(w, http.StatusOK, slices)
}

func (s *Server) handleRevenueChart(w http.ResponseWriter, r *http.Request) {
	bars := views.RevenueBySite(s.reg)
	if bars == nil {
		bars = []views.RevenueBar{}
	}
	s.respondJSON(w, http.StatusOK, bars)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	entries := views.Schedule(s.reg)
	if entries == nil {
		entries = []views.ScheduleEntry{}
	}
	s.respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, append([]string{domain.TeamUnassigned}, domain.Teams...))
}

// handleEstimate runs the estimator without committing anything; the form
// calls it before the user decides to create the site.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		WorkType estimate.WorkType `json:"work_type"`
		Material string            `json:"material"`
		Surface  float64           `json:"surface_m2"`
		Coats    int               `json:"coats"`
	}
	if err := decodeJSON(r, &in); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid estimate payload")
		return
	}
	if in.Coats <= 0 {
		in.Coats = estimate.DefaultCoats
	}
	est, err := estimate.Compute(in.WorkType, in.Material, in.Surface, in.Coats)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, est)
}
