package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mliu/ledgerbook/internal/models"
)

type addProductRequest struct {
	CustomerID    int64           `json:"customer_id"`
	Specification string          `json:"specification"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}

type updateProductRequest struct {
	Specification string          `json:"specification"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, out := s.svc.AddProduct(r.Context(), req.CustomerID, req.Specification, req.UnitPrice)
	if out.OK {
		writeJSON(w, http.StatusCreated, outcomeResponse{OK: true, Message: out.Message, ID: id})
		return
	}
	writeOutcome(w, out)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	customerID, ok := idParam(w, r)
	if !ok {
		return
	}

	products, err := s.svc.ListProducts(r.Context(), customerID)
	if err != nil {
		writeReadError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req updateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeOutcome(w, s.svc.UpdateProduct(r.Context(), id, req.Specification, req.UnitPrice))
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	writeOutcome(w, s.svc.DeleteProduct(r.Context(), id))
}
