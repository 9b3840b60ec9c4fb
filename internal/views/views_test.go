package views

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/store"
	"github.com/rbelkadi/chantrack/internal/tabular"
)

func emptyRegistry(t *testing.T) *store.Registry {
	t.Helper()
	ts, err := tabular.NewStore(t.TempDir(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	reg := store.Open(ts)
	// The seeded stock would muddy valuation assertions.
	require.NoError(t, reg.Stock.Replace(nil))
	return reg
}

func TestStockValuationSanitizedInput(t *testing.T) {
	// Values as they arrive from a hand-edited file: plain, comma decimal,
	// currency symbol, garbage.
	reg := emptyRegistry(t)
	for _, rec := range []tabular.Record{
		{"quantity": "20", "purchase_price": "75.0"},
		{"quantity": "50", "purchase_price": "9,00"},
		{"quantity": "3", "purchase_price": "12,5 €"},
		{"quantity": "n/a", "purchase_price": "100"},
	} {
		require.NoError(t, reg.Stock.Append(domain.StockItemFromRecord(rec)))
	}

	// 20×75 + 50×9 + 3×12.5 + 0×100
	assert.InDelta(t, 1987.5, StockValuation(reg), 1e-9)
}

func TestBuildDashboard(t *testing.T) {
	reg := emptyRegistry(t)
	require.NoError(t, reg.Sites.Append(domain.Site{ID: "s1", Name: "A", Status: domain.SiteDone, WorkType: "Paint", Quantity: 6, Cost: 120}))
	require.NoError(t, reg.Sites.Append(domain.Site{ID: "s2", Name: "B", Status: domain.SiteInProgress, WorkType: "Flooring", Quantity: 30, Cost: 750}))
	require.NoError(t, reg.Sites.Append(domain.Site{ID: "s3", Name: "C", Status: domain.SiteCancelled, WorkType: "Paint"}))
	require.NoError(t, reg.Invoices.Append(domain.Invoice{ID: "i1", Number: "F-1", Site: "A", Total: 1500, Status: domain.InvoicePaid}))
	require.NoError(t, reg.Invoices.Append(domain.Invoice{ID: "i2", Number: "F-2", Site: "B", Total: 500, Status: domain.InvoicePending}))
	require.NoError(t, reg.Quotes.Append(domain.Quote{ID: "q1", Number: "D-1", Status: domain.QuoteAccepted}))
	require.NoError(t, reg.Quotes.Append(domain.Quote{ID: "q2", Number: "D-2", Status: domain.QuoteRejected}))
	require.NoError(t, reg.Quotes.Append(domain.Quote{ID: "q3", Number: "D-3", Status: domain.QuotePending}))
	require.NoError(t, reg.Clients.Append(domain.Client{ID: "c1", Name: "Mme Roche"}))
	require.NoError(t, reg.Stock.Append(domain.StockItem{ID: "k1", Reference: "R1", Quantity: 2, PurchasePrice: 10, AlertThreshold: 5}))

	d := BuildDashboard(reg)
	assert.Equal(t, 3, d.Sites)
	assert.Equal(t, 1, d.Clients)
	assert.Equal(t, 2, d.Invoices)
	assert.Equal(t, 3, d.Quotes)
	assert.Equal(t, 1, d.StockItems)
	assert.Equal(t, 1, d.SitesDone)
	assert.Equal(t, 1, d.SitesInProgress)
	assert.Equal(t, 1, d.QuotesAccepted)
	assert.Equal(t, 1, d.QuotesRejected)
	assert.Equal(t, 1, d.QuotesPending)
	assert.InDelta(t, 2000.0, d.Revenue, 1e-9)
	assert.InDelta(t, 36.0, d.MaterialQty, 1e-9)
	assert.InDelta(t, 870.0, d.EstimatedCost, 1e-9)
	assert.InDelta(t, 20.0, d.StockValue, 1e-9)
	assert.Equal(t, 1, d.LowStock)
}

func TestWorkTypeDistribution(t *testing.T) {
	reg := emptyRegistry(t)
	require.NoError(t, reg.Sites.Append(domain.Site{ID: "s1", WorkType: "Paint"}))
	require.NoError(t, reg.Sites.Append(domain.Site{ID: "s2", WorkType: "Flooring"}))
	require.NoError(t, reg.Sites.Append(domain.Site{ID: "s3", WorkType: "Paint"}))
	require.NoError(t, reg.Sites.Append(domain.Site{ID: "s4"}))

	assert.Equal(t, []Slice{
		{Label: "Paint", Count: 2},
		{Label: "Flooring", Count: 1},
		{Label: "Unspecified", Count: 1},
	}, WorkTypeDistribution(reg))
}

func TestRevenueBySiteGroupsInOrder(t *testing.T) {
	reg := emptyRegistry(t)
	require.NoError(t, reg.Invoices.Append(domain.Invoice{ID: "i1", Site: "Villa Roche", Total: 1000}))
	require.NoError(t, reg.Invoices.Append(domain.Invoice{ID: "i2", Site: "Garage Petit", Total: 400}))
	require.NoError(t, reg.Invoices.Append(domain.Invoice{ID: "i3", Site: "Villa Roche", Total: 500}))

	assert.Equal(t, []RevenueBar{
		{Site: "Villa Roche", Total: 1500},
		{Site: "Garage Petit", Total: 400},
	}, RevenueBySite(reg))
}

func TestScheduleSkipsUnparsableDates(t *testing.T) {
	reg := emptyRegistry(t)
	require.NoError(t, reg.Sites.Append(domain.Site{
		ID: "s1", Name: "Villa Roche", Team: "Équipe MG",
		StartDate: "2025-02-01", EndDate: "2025-02-20",
	}))
	require.NoError(t, reg.Sites.Append(domain.Site{
		ID: "s2", Name: "Garage Petit",
		StartDate: "dès que possible", EndDate: "2025-03-01",
	}))
	require.NoError(t, reg.Sites.Append(domain.Site{
		ID: "s3", Name: "Studio Nord", Team: "Équipe AR",
		StartDate: "15/02/2025", EndDate: "28/02/2025",
	}))
	require.NoError(t, reg.Sites.Append(domain.Site{
		ID: "s4", Name: "Cave Sud",
		StartDate: "2025-04-01", EndDate: "",
	}))

	entries := Schedule(reg)
	require.Len(t, entries, 2)
	// Stored order, not date order.
	assert.Equal(t, "Villa Roche", entries[0].Site)
	assert.Equal(t, "Studio Nord", entries[1].Site)
	assert.Equal(t, "Équipe MG", entries[0].Team)
	assert.True(t, entries[1].Start.Equal(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)))
}

func TestSiteMaterialsAndOrderText(t *testing.T) {
	reg := emptyRegistry(t)
	require.NoError(t, reg.Requests.Append(domain.MaterialRequest{
		ID: "r1", SiteID: "s1", Reference: "PGL-10", Description: "Peinture Glycéro 10L",
		Quantity: 4, Unit: "bidon", Source: domain.SourceDepot, Status: domain.RequestTaken,
	}))
	require.NoError(t, reg.Requests.Append(domain.MaterialRequest{
		ID: "r2", SiteID: "s1", Description: "Parquet chêne massif",
		Quantity: 35, Unit: "m²", Source: domain.SourceSupplier, Status: domain.RequestToOrder,
	}))
	require.NoError(t, reg.Requests.Append(domain.MaterialRequest{
		ID: "r3", SiteID: "s2", Description: "Colle à parquet",
		Quantity: 2, Unit: "pot", Source: domain.SourceSupplier, Status: domain.RequestToOrder,
	}))

	assert.Len(t, SiteMaterials(reg, "s1"), 2)
	assert.Empty(t, SiteMaterials(reg, "s9"))

	// Only supplier rows appear on the order, one line each.
	assert.Equal(t, "35 m² Parquet chêne massif\n", OrderText(reg, "s1"))
	assert.Equal(t, "2 pot Colle à parquet\n", OrderText(reg, "s2"))
	assert.Equal(t, "", OrderText(reg, "s9"))
}
