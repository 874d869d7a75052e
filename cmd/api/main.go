package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/kearneyfs/prearrange/internal/arrangement"
	arrStore "github.com/kearneyfs/prearrange/internal/arrangement/store"
	"github.com/kearneyfs/prearrange/internal/catalog"
	"github.com/kearneyfs/prearrange/internal/config"
	"github.com/kearneyfs/prearrange/internal/database"
	"github.com/kearneyfs/prearrange/internal/document"
	prearrangeHTTP "github.com/kearneyfs/prearrange/internal/http"
	archiveHandler "github.com/kearneyfs/prearrange/internal/http/archive"
	quoteHandler "github.com/kearneyfs/prearrange/internal/http/quote"
	referenceHandler "github.com/kearneyfs/prearrange/internal/http/reference"
	"github.com/kearneyfs/prearrange/internal/invoice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	engine := invoice.NewEngine()
	catalogs := catalog.NewSet()

	var (
		quoteH     = quoteHandler.NewHandler(engine)
		referenceH = referenceHandler.NewHandler(catalogs)
		archiveH   *archiveHandler.Handler
	)

	if cfg.DB.Enabled {
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		svc := arrangement.NewService(
			engine,
			document.NewRenderer(cfg.Dirs.Output),
			cfg.Dirs.Logs,
			arrStore.New(db),
		)
		archiveH = archiveHandler.NewHandler(svc)
	}

	router := prearrangeHTTP.New(quoteH, referenceH, archiveH, cfg.Server.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
