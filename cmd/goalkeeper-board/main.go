package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/config"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/loader"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/render"
	"github.com/XavierBriggs/fortuna/services/goalkeeper-board/internal/source"
)

func main() {
	fmt.Println("=== Fortuna Goalkeeper Board ===")

	// Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Connect to the record source
	src, err := source.New(cfg.Source)
	if err != nil {
		fmt.Printf("❌ Failed to create %s source: %v\n", cfg.Source.Kind, err)
		os.Exit(1)
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}
	fmt.Printf("✓ Using %s source for %s\n", cfg.Source.Kind, cfg.Leaderboard.Path)

	renderer, err := render.New(render.Options{
		DetailPath: cfg.Leaderboard.DetailPath,
		Title:      cfg.Leaderboard.Title,
	})
	if err != nil {
		fmt.Printf("❌ Failed to load templates: %v\n", err)
		os.Exit(1)
	}

	l := loader.New(src, cfg.Scoring.Scorer(), renderer, cfg.Leaderboard.Path)
	handler := handlers.NewHandler(l, renderer, src)

	r := handlers.NewRouter(handler, handlers.RouterOptions{
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	// Start server
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ Goalkeeper Board listening on %s\n", cfg.Server.Addr)
		fmt.Printf("  Points: win=%.1f draw=%.1f save=%.1f goal=%.1f infraction=%.1f\n",
			cfg.Scoring.Win, cfg.Scoring.Draw, cfg.Scoring.Save, cfg.Scoring.Goal, cfg.Scoring.Infraction)
		fmt.Println("  Endpoints:")
		fmt.Println("    GET  /health")
		fmt.Println("    GET  /goleiros")
		fmt.Println("    GET  /goleiros/tabela")
		fmt.Println("    GET  /goleiros/cards")
		fmt.Println("    GET  /api/v1/goleiros")

		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		fmt.Printf("❌ Server error: %v\n", err)
		os.Exit(1)

	case sig := <-shutdown:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("⚠️  Graceful shutdown failed: %v\n", err)
			if err := srv.Close(); err != nil {
				fmt.Printf("❌ Could not stop server: %v\n", err)
			}
		}
	}

	fmt.Println("✓ Shutdown complete")
}
