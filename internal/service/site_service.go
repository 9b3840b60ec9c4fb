// Package service implements the mutation flows behind the form surface:
// creating sites from an estimate, team and schedule changes, and depot stock
// movements. Every flow goes through the registry, so each call is durable
// when it returns.
package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/estimate"
	"github.com/rbelkadi/chantrack/internal/store"
)

// ErrNotFound reports an identity lookup that matched nothing. The registry
// itself treats a miss as a no-op; services surface it so the presentation
// layer can decide how softly to fail.
var ErrNotFound = errors.New("record not found")

// SiteInput carries the site-creation form fields. Quantity and cost are
// computed, never supplied.
type SiteInput struct {
	Name        string            `json:"name"`
	Client      string            `json:"client"`
	WorkType    estimate.WorkType `json:"work_type"`
	Material    string            `json:"material"`
	Surface     float64           `json:"surface_m2"`
	Coats       int               `json:"coats"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Status      domain.SiteStatus `json:"status"`
	Team        string            `json:"team"`
	CrewSize    int               `json:"crew_size"`
	QuotedPrice float64           `json:"quoted_price"`
	Lots        []string          `json:"lots"`
	Notes       string            `json:"notes"`
}

type SiteService struct {
	reg    *store.Registry
	logger *slog.Logger
}

func NewSiteService(reg *store.Registry, logger *slog.Logger) *SiteService {
	return &SiteService{reg: reg, logger: logger}
}

// Create computes the material estimate for the input, assigns a synthetic
// identifier, appends the site, and persists the collection.
func (s *SiteService) Create(in SiteInput) (domain.Site, error) {
	if in.Name == "" {
		return domain.Site{}, fmt.Errorf("site name required")
	}
	coats := in.Coats
	if coats <= 0 {
		coats = estimate.DefaultCoats
	}
	est, err := estimate.Compute(in.WorkType, in.Material, in.Surface, coats)
	if err != nil {
		return domain.Site{}, err
	}

	status := in.Status
	if status == "" {
		status = domain.SiteQuote
	}
	if !domain.ValidSiteStatus(status) {
		return domain.Site{}, fmt.Errorf("unknown site status %q", status)
	}
	team := in.Team
	if team == "" {
		team = domain.TeamUnassigned
	}
	if !domain.ValidTeam(team) {
		return domain.Site{}, fmt.Errorf("unknown team %q", team)
	}

	site := domain.Site{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Client:      in.Client,
		Status:      status,
		Team:        team,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		WorkType:    string(in.WorkType),
		Material:    in.Material,
		Surface:     in.Surface,
		Coats:       coats,
		Quantity:    est.Quantity,
		Cost:        est.Cost,
		QuotedPrice: in.QuotedPrice,
		CrewSize:    in.CrewSize,
		Lots:        in.Lots,
		Notes:       in.Notes,
	}
	if err := s.reg.Sites.Append(site); err != nil {
		return domain.Site{}, err
	}
	s.logger.Info("site created", "site_id", site.ID, "name", site.Name, "work_type", site.WorkType)
	return site, nil
}

// AssignTeam sets the crew on a site. The team must come from the static
// roster (or be Unassigned).
func (s *SiteService) AssignTeam(siteID, team string) error {
	if !domain.ValidTeam(team) {
		return fmt.Errorf("unknown team %q", team)
	}
	return s.updateSite(siteID, func(site *domain.Site) {
		site.Team = team
	})
}

// Reschedule replaces a site's start and end dates. Dates are stored as
// given; unparsable text simply drops the site from the schedule view.
func (s *SiteService) Reschedule(siteID, start, end string) error {
	return s.updateSite(siteID, func(site *domain.Site) {
		site.StartDate = start
		site.EndDate = end
	})
}

// SetStatus moves a site to any lifecycle state. There is no guard logic:
// the user may move a site from any status to any other.
func (s *SiteService) SetStatus(siteID string, status domain.SiteStatus) error {
	if !domain.ValidSiteStatus(status) {
		return fmt.Errorf("unknown site status %q", status)
	}
	return s.updateSite(siteID, func(site *domain.Site) {
		site.Status = status
	})
}

// UpdateNotes replaces the free-text technical notes.
func (s *SiteService) UpdateNotes(siteID, notes string) error {
	return s.updateSite(siteID, func(site *domain.Site) {
		site.Notes = notes
	})
}

func (s *SiteService) updateSite(siteID string, mutate func(*domain.Site)) error {
	ok, err := s.reg.Sites.UpdateFirst(byID(siteID), mutate)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}
	return nil
}

// Delete removes a site by identifier.
func (s *SiteService) Delete(siteID string) error {
	ok, err := s.reg.Sites.RemoveFirst(byID(siteID))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}
	s.logger.Info("site deleted", "site_id", siteID)
	return nil
}

// Get returns a site by identifier.
func (s *SiteService) Get(siteID string) (domain.Site, error) {
	site, ok := s.reg.Sites.FindFirst(byID(siteID))
	if !ok {
		return domain.Site{}, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}
	return site, nil
}

func byID(id string) func(domain.Site) bool {
	return func(s domain.Site) bool { return s.ID == id }
}
