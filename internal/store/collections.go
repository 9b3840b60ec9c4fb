package store

import (
	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/tabular"
)

// Collection descriptors: one CSV file per collection. Only the stock file is
// seeded when absent; every other collection starts empty.
var (
	Sites = tabular.Collection{
		Key: "sites", Filename: "chantiers_data.csv", Columns: domain.SiteColumns,
	}
	Clients = tabular.Collection{
		Key: "clients", Filename: "clients_data.csv", Columns: domain.ClientColumns,
	}
	Invoices = tabular.Collection{
		Key: "invoices", Filename: "factures_data.csv", Columns: domain.InvoiceColumns,
	}
	Quotes = tabular.Collection{
		Key: "quotes", Filename: "devis_data.csv", Columns: domain.QuoteColumns,
	}
	Stock = tabular.Collection{
		Key: "stock", Filename: "stock_data.csv", Columns: domain.StockColumns,
		Seed: stockSeed(),
	}
	Requests = tabular.Collection{
		Key: "requests", Filename: "demandes_materiaux_data.csv", Columns: domain.RequestColumns,
	}
	Movements = tabular.Collection{
		Key: "movements", Filename: "mouvements_stock_data.csv", Columns: domain.MovementColumns,
	}
)

// stockSeed is the starter depot inventory written when no stock file exists.
func stockSeed() []tabular.Record {
	items := []domain.StockItem{
		{ID: "stk-pgl", Reference: "PGL-10", Label: "Peinture Glycéro 10L", Category: "Peinture", Quantity: 20, Unit: "bidon", PurchasePrice: 75, AlertThreshold: 5},
		{ID: "stk-pac", Reference: "PAC-10", Label: "Peinture Acrylique 10L", Category: "Peinture", Quantity: 30, Unit: "bidon", PurchasePrice: 45, AlertThreshold: 8},
		{ID: "stk-enl", Reference: "ENL-25", Label: "Enduit de lissage 25kg", Category: "Enduit", Quantity: 25, Unit: "sac", PurchasePrice: 18.5, AlertThreshold: 6},
		{ID: "stk-bch", Reference: "BCH-01", Label: "Bâche de protection", Category: "Consommable", Quantity: 40, Unit: "rouleau", PurchasePrice: 9, AlertThreshold: 10},
		{ID: "stk-adh", Reference: "ADH-01", Label: "Adhésif de masquage", Category: "Consommable", Quantity: 60, Unit: "rouleau", PurchasePrice: 2.5, AlertThreshold: 15},
	}
	seed := make([]tabular.Record, len(items))
	for i, it := range items {
		seed[i] = it.Record()
	}
	return seed
}
