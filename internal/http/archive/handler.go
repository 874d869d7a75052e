// Package archive serves the stored arrangements when the database is
// configured.
package archive

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kearneyfs/prearrange/internal/arrangement"
)

type Handler struct {
	svc *arrangement.Service
}

func NewHandler(svc *arrangement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type recordResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicantName string    `json:"applicant_name"`
	TypeOfService string    `json:"type_of_service"`
	GrandTotal    string    `json:"grand_total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]recordResponse, len(records))
	for i, rec := range records {
		resp[i] = recordResponse{
			ID:            rec.ID,
			ApplicantName: rec.ApplicantName,
			TypeOfService: rec.TypeOfService,
			GrandTotal:    rec.GrandTotal,
			CreatedAt:     rec.CreatedAt,
			UpdatedAt:     rec.UpdatedAt,
		}
	}

	writeJSON(w, resp)
}

type arrangementResponse struct {
	ID               uuid.UUID         `json:"id"`
	EstablishmentKey string            `json:"establishment_key,omitempty"`
	ApplicantName    string            `json:"applicant_name"`
	Fields           map[string]string `json:"fields"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, arrangement.ErrNotFound) {
			http.Error(w, "arrangement not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, arrangementResponse{
		ID:               a.ID,
		EstablishmentKey: a.Establishment.Key,
		ApplicantName:    a.Applicant.FullName(),
		Fields:           a.Fields,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
