package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/store"
)

type StockService struct {
	reg    *store.Registry
	logger *slog.Logger
}

func NewStockService(reg *store.Registry, logger *slog.Logger) *StockService {
	return &StockService{reg: reg, logger: logger}
}

// AddItem registers a new depot stock line.
func (s *StockService) AddItem(item domain.StockItem) (domain.StockItem, error) {
	if item.Reference == "" {
		return domain.StockItem{}, fmt.Errorf("stock reference required")
	}
	item.ID = uuid.NewString()
	if err := s.reg.Stock.Append(item); err != nil {
		return domain.StockItem{}, err
	}
	return item, nil
}

// Withdraw takes material for a site out of depot stock. The taken quantity
// is clamped to what is on hand: stock never goes negative, and the recorded
// material request carries the clamped quantity, not the requested one.
func (s *StockService) Withdraw(siteID, reference string, requested float64) (domain.MaterialRequest, error) {
	if requested <= 0 {
		return domain.MaterialRequest{}, fmt.Errorf("requested quantity must be positive")
	}
	site, ok := s.reg.Sites.FindFirst(byID(siteID))
	if !ok {
		return domain.MaterialRequest{}, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}
	item, ok := s.reg.Stock.FindFirst(byReference(reference))
	if !ok {
		return domain.MaterialRequest{}, fmt.Errorf("stock item %s: %w", reference, ErrNotFound)
	}

	taken := requested
	if taken > item.Quantity {
		taken = item.Quantity
	}
	if _, err := s.reg.Stock.UpdateFirst(byReference(reference), func(it *domain.StockItem) {
		it.Quantity -= taken
	}); err != nil {
		return domain.MaterialRequest{}, err
	}

	req := domain.MaterialRequest{
		ID:          uuid.NewString(),
		SiteID:      site.ID,
		SiteName:    site.Name,
		Reference:   item.Reference,
		Description: item.Label,
		Quantity:    taken,
		Unit:        item.Unit,
		Source:      domain.SourceDepot,
		Status:      domain.RequestTaken,
	}
	if err := s.reg.Requests.Append(req); err != nil {
		return domain.MaterialRequest{}, err
	}
	if taken < requested {
		s.logger.Warn("stock withdrawal clamped",
			"reference", reference, "requested", requested, "taken", taken)
	}
	s.logger.Info("stock withdrawn", "site_id", siteID, "reference", reference, "quantity", taken)
	return req, nil
}

// OrderFromSupplier records a supplier order line for a site. Depot stock is
// untouched.
func (s *StockService) OrderFromSupplier(siteID, reference, description string, quantity float64, unit string) (domain.MaterialRequest, error) {
	if quantity <= 0 {
		return domain.MaterialRequest{}, fmt.Errorf("order quantity must be positive")
	}
	site, ok := s.reg.Sites.FindFirst(byID(siteID))
	if !ok {
		return domain.MaterialRequest{}, fmt.Errorf("site %s: %w", siteID, ErrNotFound)
	}
	req := domain.MaterialRequest{
		ID:          uuid.NewString(),
		SiteID:      site.ID,
		SiteName:    site.Name,
		Reference:   reference,
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		Source:      domain.SourceSupplier,
		Status:      domain.RequestToOrder,
	}
	if err := s.reg.Requests.Append(req); err != nil {
		return domain.MaterialRequest{}, err
	}
	s.logger.Info("supplier order recorded", "site_id", siteID, "description", description, "quantity", quantity)
	return req, nil
}

// Restock adds received quantity onto an existing stock line.
func (s *StockService) Restock(reference string, quantity float64) error {
	if quantity <= 0 {
		return fmt.Errorf("restock quantity must be positive")
	}
	ok, err := s.reg.Stock.UpdateFirst(byReference(reference), func(it *domain.StockItem) {
		it.Quantity += quantity
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("stock item %s: %w", reference, ErrNotFound)
	}
	return nil
}

func byReference(ref string) func(domain.StockItem) bool {
	return func(it domain.StockItem) bool { return it.Reference == ref }
}
