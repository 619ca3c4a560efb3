package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/cors"

	"github.com/youruser/deckcode/internal/api"
	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/config"
)

func main() {
	if len(os.Args) == 2 && os.Args[1] == "help" {
		fmt.Printf("\nenvironment variables that configure %s\n\n", os.Args[0])
		config.Usage(os.Stdout)
		os.Exit(0)
	}
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := cfg.Logger()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: cfg.HTTPTimeout}

	// Load cards at startup (best-effort)
	var catalog *cards.Catalog
	if cfg.Preload {
		catalog, err = cards.LoadCatalog(ctx, cards.NewClient(cfg.CatalogURL, cfg.CacheDir, client), cfg.CardSets...)
		if err != nil {
			log.Warn("card catalog not loaded, catalog endpoints disabled", "err", err)
		} else {
			log.Info("card catalog loaded", "sets", cfg.CardSets, "cards", catalog.Len())
		}
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(catalog, client, log))

	srv := &http.Server{Addr: cfg.Addr(), Handler: cors.Default().Handler(r)}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Warn("server shutdown", "err", err)
		}
	}()

	log.Info("starting server", "addr", "http://"+srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
