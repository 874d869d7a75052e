// Package reference serves the read-only lookups: catalogues, package
// presets and establishments.
package reference

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/establishment"
)

type Handler struct {
	catalogs *catalog.Set
}

func NewHandler(catalogs *catalog.Set) *Handler {
	return &Handler{catalogs: catalogs}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/catalogs/{kind}", h.searchCatalog)
	r.Get("/packages", h.listPackages)
	r.Get("/establishments", h.listEstablishments)
}

type itemResponse struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

func (h *Handler) searchCatalog(w http.ResponseWriter, r *http.Request) {
	kind, err := catalog.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	items := h.catalogs.Search(kind, r.URL.Query().Get("q"))

	resp := make([]itemResponse, len(items))
	for i, item := range items {
		resp[i] = itemResponse{Label: item.Label, Price: item.Price.StringFixed(2)}
	}

	writeJSON(w, resp)
}

type packageResponse struct {
	Name    string            `json:"name"`
	Amounts map[string]string `json:"amounts"`
	Labels  map[string]string `json:"labels"`
}

func (h *Handler) listPackages(w http.ResponseWriter, _ *http.Request) {
	resp := make([]packageResponse, len(catalog.Packages))

	for i, p := range catalog.Packages {
		amounts := make(map[string]string, len(p.Amounts))
		for code, amount := range p.Amounts {
			amounts[code] = amount.StringFixed(2)
		}

		resp[i] = packageResponse{Name: p.Name, Amounts: amounts, Labels: p.Labels}
	}

	writeJSON(w, resp)
}

type establishmentResponse struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

func (h *Handler) listEstablishments(w http.ResponseWriter, _ *http.Request) {
	resp := make([]establishmentResponse, len(establishment.Establishments))

	for i, e := range establishment.Establishments {
		resp[i] = establishmentResponse{
			Key:        e.Key,
			Name:       e.Name,
			Email:      e.Email,
			Phone:      e.Phone,
			Address:    e.Address,
			City:       e.City,
			Province:   e.Province,
			PostalCode: e.PostalCode,
		}
	}

	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
