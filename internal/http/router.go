package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kearneyfs/prearrange/internal/http/archive"
	"github.com/kearneyfs/prearrange/internal/http/quote"
	"github.com/kearneyfs/prearrange/internal/http/reference"
)

// New builds the API router. archiveV1 may be nil when no database is
// configured; the archive routes are simply not mounted.
func New(
	quoteV1 *quote.Handler,
	referenceV1 *reference.Handler,
	archiveV1 *archive.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/quotes", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			quoteV1.Routes(r)
		})

		r.Group(referenceV1.Routes)

		if archiveV1 != nil {
			r.Route("/arrangements", archiveV1.Routes)
		}
	})

	return router
}
