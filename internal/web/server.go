// Package web exposes the registry and views over a JSON API. Handlers do no
// business logic themselves: mutations go through the services, reads through
// the views.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rbelkadi/chantrack/internal/service"
	"github.com/rbelkadi/chantrack/internal/store"
)

type Server struct {
	reg    *store.Registry
	sites  *service.SiteService
	stock  *service.StockService
	mux    *http.ServeMux
	logger *slog.Logger
}

func NewServer(reg *store.Registry, sites *service.SiteService, stock *service.StockService, logger *slog.Logger) *Server {
	s := &Server{
		reg:    reg,
		sites:  sites,
		stock:  stock,
		mux:    http.NewServeMux(),
		logger: logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	s.mux.HandleFunc("GET /api/charts/work-types", s.handleWorkTypeChart)
	s.mux.HandleFunc("GET /api/charts/revenue", s.handleRevenueChart)
	s.mux.HandleFunc("GET /api/schedule", s.handleSchedule)
	s.mux.HandleFunc("GET /api/teams", s.handleTeams)
	s.mux.HandleFunc("POST /api/estimate", s.handleEstimate)

	s.mux.HandleFunc("GET /api/sites", s.handleListSites)
	s.mux.HandleFunc("POST /api/sites", s.handleCreateSite)
	s.mux.HandleFunc("GET /api/sites/{id}", s.handleGetSite)
	s.mux.HandleFunc("DELETE /api/sites/{id}", s.handleDeleteSite)
	s.mux.HandleFunc("PUT /api/sites/{id}/team", s.handleAssignTeam)
	s.mux.HandleFunc("PUT /api/sites/{id}/status", s.handleSetStatus)
	s.mux.HandleFunc("PUT /api/sites/{id}/schedule", s.handleReschedule)
	s.mux.HandleFunc("PUT /api/sites/{id}/notes", s.handleUpdateNotes)
	s.mux.HandleFunc("GET /api/sites/{id}/materials", s.handleSiteMaterials)
	s.mux.HandleFunc("GET /api/sites/{id}/order", s.handleOrderText)

	s.mux.HandleFunc("GET /api/clients", s.handleListClients)
	s.mux.HandleFunc("POST /api/clients", s.handleCreateClient)
	s.mux.HandleFunc("PUT /api/clients/{id}", s.handleUpdateClient)
	s.mux.HandleFunc("DELETE /api/clients/{id}", s.handleDeleteClient)

	s.mux.HandleFunc("GET /api/invoices", s.handleListInvoices)
	s.mux.HandleFunc("POST /api/invoices", s.handleCreateInvoice)
	s.mux.HandleFunc("PUT /api/invoices/{id}", s.handleUpdateInvoice)
	s.mux.HandleFunc("DELETE /api/invoices/{id}", s.handleDeleteInvoice)

	s.mux.HandleFunc("GET /api/quotes", s.handleListQuotes)
	s.mux.HandleFunc("POST /api/quotes", s.handleCreateQuote)
	s.mux.HandleFunc("PUT /api/quotes/{id}", s.handleUpdateQuote)
	s.mux.HandleFunc("DELETE /api/quotes/{id}", s.handleDeleteQuote)

	s.mux.HandleFunc("GET /api/stock", s.handleListStock)
	s.mux.HandleFunc("POST /api/stock", s.handleAddStockItem)
	s.mux.HandleFunc("POST /api/stock/{reference}/withdraw", s.handleWithdraw)
	s.mux.HandleFunc("POST /api/stock/{reference}/restock", s.handleRestock)
	s.mux.HandleFunc("POST /api/orders", s.handleSupplierOrder)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s)
}
