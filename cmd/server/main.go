package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tcapp/mobile-ticket-api/internal/config"
	"github.com/tcapp/mobile-ticket-api/internal/database"
	"github.com/tcapp/mobile-ticket-api/internal/handler"
	"github.com/tcapp/mobile-ticket-api/internal/purchase"
	"github.com/tcapp/mobile-ticket-api/internal/queue"
	"github.com/tcapp/mobile-ticket-api/internal/repository"
	"github.com/tcapp/mobile-ticket-api/internal/router"
)

func main() {
	// Load .env when present; in deployed environments variables come
	// from the platform and the file is absent.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	ticketRepo := repository.NewTicketRepo(db)
	source := repository.NewSource(db)
	distributionRepo := repository.NewDistributionRepo(db)

	purchaseClient := purchase.NewClient(
		cfg.PurchaseBaseURL, cfg.PurchaseAPIKey,
		time.Duration(cfg.PurchaseTimeout)*time.Second,
	)

	ticketHandler := handler.NewTicketHandler(ticketRepo, source)
	statusHandler := handler.NewStatusHandler(ticketRepo)
	distributionHandler := handler.NewDistributionHandler(distributionRepo)
	purchaseHandler := handler.NewPurchaseHandler(purchaseClient)

	// Background consumer logging ticket status changes; runs its own
	// reconnect loop for the lifetime of the process.
	go func() {
		if err := queue.StartStatusConsumer(); err != nil {
			log.Printf("status consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterTicket(e, ticketHandler, statusHandler, distributionHandler, purchaseHandler, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
