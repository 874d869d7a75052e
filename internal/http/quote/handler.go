// Package quote exposes the pricing engine over HTTP so the office front
// ends can recompute an invoice without a local install.
package quote

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kearneyfs/prearrange/internal/financing"
	"github.com/kearneyfs/prearrange/internal/invoice"
)

type Handler struct {
	engine *invoice.Engine
}

func NewHandler(engine *invoice.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.compute)
}

type discountRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type computeRequest struct {
	// Fields carries the raw invoice fields; every derived total in the
	// response is recomputed from scratch.
	Fields    map[string]string `json:"fields"`
	Discounts []discountRequest `json:"discounts,omitempty"`
	Package   string            `json:"package,omitempty"`

	// Age enables the financing quote.
	Age *int `json:"age,omitempty"`
}

type paymentResponse struct {
	TermYears int    `json:"term_years"`
	Monthly   string `json:"monthly,omitempty"`
	Available bool   `json:"available"`
}

type financingResponse struct {
	Principal string            `json:"principal"`
	Payments  []paymentResponse `json:"payments"`
}

type computeResponse struct {
	Fields     map[string]string  `json:"fields"`
	GrandTotal string             `json:"grand_total"`
	Financing  *financingResponse `json:"financing,omitempty"`
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fields := invoice.FieldSet(req.Fields)
	if fields == nil {
		fields = invoice.NewFieldSet()
	}

	// Echo posted amounts back in display form, not as typed.
	fields.NormalizeAmounts()

	ledger := invoice.NewLedger()
	for _, d := range req.Discounts {
		ledger.Add(d.Description, d.Amount)
	}

	if req.Package != "" {
		if err := h.engine.ApplyPackage(req.Package, fields, ledger); err != nil {
			if errors.Is(err, invoice.ErrUnknownPackage) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}
	}

	summary := h.engine.Recalculate(fields, ledger)

	resp := computeResponse{
		Fields:     fields,
		GrandTotal: summary.GrandTotal.StringFixed(2),
	}

	if req.Age != nil {
		quote, err := financing.MonthlyPayments(
			fields.Amount(invoice.FieldTotal3),
			fields.Amount(invoice.FieldSinglePay),
			*req.Age,
		)
		if err != nil {
			if errors.Is(err, financing.ErrAgeOutOfRange) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		fin := financingResponse{
			Principal: quote.Principal.StringFixed(2),
			Payments:  make([]paymentResponse, 0, len(quote.Payments)),
		}

		for _, p := range quote.Payments {
			pr := paymentResponse{TermYears: int(p.Term), Available: p.Available}
			if p.Available {
				pr.Monthly = p.Monthly.StringFixed(2)
			}

			fin.Payments = append(fin.Payments, pr)
		}

		resp.Financing = &fin
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
