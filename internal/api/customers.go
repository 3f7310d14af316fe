package api

import (
	"net/http"

	"github.com/mliu/ledgerbook/internal/models"
)

type addCustomerRequest struct {
	Name string `json:"name"`
}

func (s *Server) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req addCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, out := s.svc.AddCustomer(r.Context(), req.Name)
	if out.OK {
		writeJSON(w, http.StatusCreated, outcomeResponse{OK: true, Message: out.Message, ID: id})
		return
	}
	writeOutcome(w, out)
}

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.svc.ListCustomers(r.Context())
	if err != nil {
		writeReadError(w, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	writeOutcome(w, s.svc.DeleteCustomer(r.Context(), id))
}
