// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/doltonsedward/toraja-hillstop/internal/booking"
	"github.com/doltonsedward/toraja-hillstop/internal/catalog"
	"github.com/doltonsedward/toraja-hillstop/internal/config"
	"github.com/doltonsedward/toraja-hillstop/internal/handler"
	"github.com/doltonsedward/toraja-hillstop/internal/service"
	"github.com/doltonsedward/toraja-hillstop/internal/site"
	"github.com/doltonsedward/toraja-hillstop/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// ── 1. Audit store ───────────────────────────────────────────────────
	// The store is an optional convenience trail: missing configuration
	// degrades to a disabled store instead of failing startup.
	auditStore := buildStore(ctx, cfg)
	if auditStore.Enabled() {
		log.Printf("✓ Audit store enabled (%s)", cfg.StoreBackend)
	} else {
		log.Println("audit store not configured – booking tracking disabled")
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	cat := catalog.New()
	pricer := buildPricer(cfg, cat)
	bookingSvc := service.NewBookingService(auditStore, pricer, cat, cfg.WhatsAppNumber)
	bookingHandler := handler.NewBookingHandler(bookingSvc)

	pages, err := site.New(cat, cfg.WhatsAppNumber, cfg.RatePerGuest)
	if err != nil {
		log.Fatalf("site templates: %v", err)
	}

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.Logger)          // structured access log
	r.Use(handler.CORS)            // permissive CORS

	// Health
	r.Get("/health", handler.HealthCheck)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/bookings", bookingHandler.SubmitBooking)
		r.Get("/rooms", bookingHandler.ListRooms)
		r.Post("/daterange", bookingHandler.DateRangeClick)
	})

	// Pages
	r.Get("/", pages.Landing)
	r.Get("/booking", pages.BookingPage)

	// Static assets (room photos etc.) served from ./web at /static.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("./web/static"))))

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("✓ Server listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}

// buildStore selects the audit store backend. Any misconfiguration
// degrades to the disabled store rather than aborting startup.
func buildStore(ctx context.Context, cfg config.Config) store.AuditStore {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		pool, err := store.NewPool(ctx, cfg.Database)
		if err != nil {
			log.Printf("postgres store unavailable, persistence disabled: %v", err)
			return store.Disabled{}
		}
		return store.NewPostgres(pool)
	case config.StoreSupabase:
		if !cfg.StoreConfigured() {
			return store.Disabled{}
		}
		return store.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey)
	default:
		return store.Disabled{}
	}
}

// buildPricer selects the deployment's pricing model. The two models
// are mutually exclusive business rules.
func buildPricer(cfg config.Config, cat *catalog.Catalog) booking.Pricer {
	if cfg.PricingModel == config.PricingPerRoom {
		return booking.PerRoomPricer{Catalog: cat}
	}
	return booking.PerGuestPricer{Rate: cfg.RatePerGuest}
}
