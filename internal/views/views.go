// Package views builds read-only projections over the registry's current
// state. Nothing here caches: every call walks the in-memory collections so
// the result always reflects the latest mutation.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/store"
)

// Dashboard is the front-page metric set.
type Dashboard struct {
	Sites           int     `json:"sites"`
	Clients         int     `json:"clients"`
	Invoices        int     `json:"invoices"`
	Quotes          int     `json:"quotes"`
	StockItems      int     `json:"stock_items"`
	Requests        int     `json:"requests"`
	SitesInProgress int     `json:"sites_in_progress"`
	SitesDone       int     `json:"sites_done"`
	QuotesPending   int     `json:"quotes_pending"`
	QuotesAccepted  int     `json:"quotes_accepted"`
	QuotesRejected  int     `json:"quotes_rejected"`
	Revenue         float64 `json:"revenue"`
	MaterialQty     float64 `json:"material_quantity"`
	EstimatedCost   float64 `json:"estimated_cost"`
	StockValue      float64 `json:"stock_value"`
	LowStock        int     `json:"low_stock"`
}

func BuildDashboard(reg *store.Registry) Dashboard {
	d := Dashboard{
		Sites:      reg.Sites.Len(),
		Clients:    reg.Clients.Len(),
		Invoices:   reg.Invoices.Len(),
		Quotes:     reg.Quotes.Len(),
		StockItems: reg.Stock.Len(),
		Requests:   reg.Requests.Len(),
	}
	for _, s := range reg.Sites.All() {
		switch s.Status {
		case domain.SiteInProgress:
			d.SitesInProgress++
		case domain.SiteDone:
			d.SitesDone++
		}
		d.MaterialQty += s.Quantity
		d.EstimatedCost += s.Cost
	}
	for _, q := range reg.Quotes.All() {
		switch q.Status {
		case domain.QuotePending:
			d.QuotesPending++
		case domain.QuoteAccepted:
			d.QuotesAccepted++
		case domain.QuoteRejected:
			d.QuotesRejected++
		}
	}
	for _, inv := range reg.Invoices.All() {
		d.Revenue += inv.Total
	}
	d.StockValue = StockValuation(reg)
	for _, it := range reg.Stock.All() {
		if it.Quantity <= it.AlertThreshold {
			d.LowStock++
		}
	}
	return d
}

// StockValuation is the purchase value of everything on hand.
func StockValuation(reg *store.Registry) float64 {
	var total float64
	for _, it := range reg.Stock.All() {
		total += it.Quantity * it.PurchasePrice
	}
	return total
}

// Slice is one wedge of the work-type pie chart.
type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WorkTypeDistribution groups sites by work type, in order of first
// appearance.
func WorkTypeDistribution(reg *store.Registry) []Slice {
	index := make(map[string]int)
	var slices []Slice
	for _, s := range reg.Sites.All() {
		label := s.WorkType
		if label == "" {
			label = "Unspecified"
		}
		if i, ok := index[label]; ok {
			slices[i].Count++
			continue
		}
		index[label] = len(slices)
		slices = append(slices, Slice{Label: label, Count: 1})
	}
	return slices
}

// RevenueBar is one bar of the revenue-by-site chart.
type RevenueBar struct {
	Site  string  `json:"site"`
	Total float64 `json:"total"`
}

// RevenueBySite sums invoice totals per site reference, in order of first
// appearance.
func RevenueBySite(reg *store.Registry) []RevenueBar {
	index := make(map[string]int)
	var bars []RevenueBar
	for _, inv := range reg.Invoices.All() {
		if i, ok := index[inv.Site]; ok {
			bars[i].Total += inv.Total
			continue
		}
		index[inv.Site] = len(bars)
		bars = append(bars, RevenueBar{Site: inv.Site, Total: inv.Total})
	}
	return bars
}

// ScheduleEntry is one row of the team timeline.
type ScheduleEntry struct {
	SiteID string    `json:"site_id"`
	Site   string    `json:"site"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Team   string    `json:"team"`
}

// Schedule lists every site whose start and end dates both parse, in stored
// order. Sites with an unparsable date are silently left out: the timeline
// cannot place them, and that is not an error.
func Schedule(reg *store.Registry) []ScheduleEntry {
	var entries []ScheduleEntry
	for _, s := range reg.Sites.All() {
		start, ok := domain.ParseDate(s.StartDate)
		if !ok {
			continue
		}
		end, ok := domain.ParseDate(s.EndDate)
		if !ok {
			continue
		}
		entries = append(entries, ScheduleEntry{
			SiteID: s.ID,
			Site:   s.Name,
			Start:  start,
			End:    end,
			Team:   s.Team,
		})
	}
	return entries
}

// SiteMaterials lists every material request recorded for a site.
func SiteMaterials(reg *store.Registry, siteID string) []domain.MaterialRequest {
	var out []domain.MaterialRequest
	for _, r := range reg.Requests.All() {
		if r.SiteID == siteID {
			out = append(out, r)
		}
	}
	return out
}

// OrderText renders the supplier order for a site as plain text, one line
// per request still to order. An empty string means nothing to order.
func OrderText(reg *store.Registry, siteID string) string {
	var b strings.Builder
	for _, r := range SiteMaterials(reg, siteID) {
		if r.Source != domain.SourceSupplier {
			continue
		}
		fmt.Fprintf(&b, "%s %s %s\n", domain.FormatDecimal(r.Quantity), r.Unit, r.Description)
	}
	return b.String()
}
