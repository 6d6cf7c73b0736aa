package main // Entry point package

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/concert-ticket-booking/internal/catalog"
	"github.com/iliyamo/concert-ticket-booking/internal/config"
	"github.com/iliyamo/concert-ticket-booking/internal/engine"
	"github.com/iliyamo/concert-ticket-booking/internal/handler"
	"github.com/iliyamo/concert-ticket-booking/internal/ledger"
	"github.com/iliyamo/concert-ticket-booking/internal/location"
	appmw "github.com/iliyamo/concert-ticket-booking/internal/middleware"
	"github.com/iliyamo/concert-ticket-booking/internal/queue"
	"github.com/iliyamo/concert-ticket-booking/internal/router"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	cfg := config.Load()

	// Catalog store: seeded from the bundled copy on first run, then
	// always the writable copy.
	store, err := catalog.Open(filepath.Join(cfg.DataDir, "concerts.json"), cfg.SeedCatalogPath)
	if err != nil {
		log.Fatalf("open catalog: %v", err)
	}

	// Redis is optional; without it the ledger falls back to the file
	// backend and caching/rate limiting are disabled.
	rdb := config.NewRedisClient()

	var kv ledger.KV
	if cfg.LedgerBackend == "redis" && rdb != nil {
		kv = ledger.NewRedisKV(rdb)
	} else {
		if cfg.LedgerBackend == "redis" {
			log.Printf("ledger: redis unavailable, using file backend")
		}
		kv = ledger.NewFileKV(filepath.Join(cfg.DataDir, "kv.json"))
	}
	led := ledger.New(kv, cfg.LedgerNamespace)

	eng := engine.New(store, led)
	locations := location.Load(cfg.LocationsPath)

	e := echo.New()
	e.Use(appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterBrowse(e,
		handler.NewCatalogHandler(store),
		handler.NewLocationHandler(locations),
		appmw.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	router.RegisterBooking(e, handler.NewBookingHandler(store, eng, led, true))

	// Background consumer mirrors confirmed bookings into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
