package api

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mliu/ledgerbook/internal/models"
	"github.com/mliu/ledgerbook/internal/receipt"
	"github.com/mliu/ledgerbook/internal/service"
	"github.com/mliu/ledgerbook/internal/storage"
)

type addBillRequest struct {
	CustomerID    int64           `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	Date          string          `json:"date"`
	Specification string          `json:"specification"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Source        string          `json:"source"`
	PhotoPath     string          `json:"photo_path,omitempty"`
}

type parseTextRequest struct {
	Text string `json:"text"`
}

type exportRequest struct {
	CustomerName string `json:"customer_name,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

func (s *Server) addBill(w http.ResponseWriter, r *http.Request) {
	var req addBillRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	bill := &models.Bill{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Date:          req.Date,
		Specification: req.Specification,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Source:        models.BillSource(req.Source),
		PhotoPath:     req.PhotoPath,
	}

	id, out := s.svc.AddBill(r.Context(), bill)
	if out.OK {
		writeJSON(w, http.StatusCreated, outcomeResponse{OK: true, Message: out.Message, ID: id})
		return
	}
	writeOutcome(w, out)
}

// filterFromQuery reads the optional filter parameters shared by the bill
// listing and statistics routes. Absent parameters impose no constraint.
func filterFromQuery(r *http.Request) storage.BillFilter {
	q := r.URL.Query()
	return storage.BillFilter{
		CustomerName: q.Get("customer_name"),
		StartDate:    q.Get("start_date"),
		EndDate:      q.Get("end_date"),
	}
}

func (s *Server) listBills(w http.ResponseWriter, r *http.Request) {
	bills, err := s.svc.FilterBills(r.Context(), filterFromQuery(r))
	if err != nil {
		writeReadError(w, err)
		return
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	writeJSON(w, http.StatusOK, bills)
}

func (s *Server) deleteBill(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	writeOutcome(w, s.svc.DeleteBill(r.Context(), id))
}

func (s *Server) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.GetStatistics(r.Context(), filterFromQuery(r))
	if err != nil {
		writeReadError(w, err)
		return
	}
	if stats.Bills == nil {
		stats.Bills = []models.Bill{}
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) parseReceiptText(w http.ResponseWriter, r *http.Request) {
	var req parseTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, receipt.Parse(req.Text))
}

func (s *Server) exportBills(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	filter := storage.BillFilter{
		CustomerName: req.CustomerName,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}

	path, err := s.svc.ExportBills(r.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrNoBills) {
			writeJSON(w, http.StatusBadRequest, outcomeResponse{OK: false, Message: "no bills to export"})
			return
		}
		writeReadError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcomeResponse{OK: true, Message: "bills exported", Path: path})
}
