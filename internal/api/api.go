// Package api exposes the ledger operations as a JSON HTTP API.
// This is the transport the mobile UI talks to; it owns no business
// rules beyond mapping outcomes to status codes.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mliu/ledgerbook/internal/service"
)

// Server bundles the route handlers around one LedgerService.
type Server struct {
	svc *service.LedgerService
}

// New builds the router with all routes and middleware attached.
func New(svc *service.LedgerService) http.Handler {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(metricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/customers", s.addCustomer)
		r.Get("/customers", s.listCustomers)
		r.Delete("/customers/{id}", s.deleteCustomer)
		r.Get("/customers/{id}/products", s.listProducts)

		r.Post("/products", s.addProduct)
		r.Put("/products/{id}", s.updateProduct)
		r.Delete("/products/{id}", s.deleteProduct)

		r.Post("/bills", s.addBill)
		r.Get("/bills", s.listBills)
		r.Delete("/bills/{id}", s.deleteBill)
		r.Get("/bills/statistics", s.statistics)
		r.Post("/bills/parse-text", s.parseReceiptText)
		r.Post("/bills/export", s.exportBills)
	})

	return r
}
