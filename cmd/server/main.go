package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aqarcrm/aqarcrm/config"
	"github.com/aqarcrm/aqarcrm/internal/api"
	"github.com/aqarcrm/aqarcrm/internal/api/handlers"
	"github.com/aqarcrm/aqarcrm/internal/core/agent"
	"github.com/aqarcrm/aqarcrm/internal/core/campaign"
	"github.com/aqarcrm/aqarcrm/internal/core/client"
	"github.com/aqarcrm/aqarcrm/internal/core/listing"
	"github.com/aqarcrm/aqarcrm/internal/core/maintenance"
	"github.com/aqarcrm/aqarcrm/internal/core/matching"
	"github.com/aqarcrm/aqarcrm/internal/core/rental"
	"github.com/aqarcrm/aqarcrm/internal/core/stats"
	"github.com/aqarcrm/aqarcrm/internal/core/validation"
	"github.com/aqarcrm/aqarcrm/internal/core/visit"
	"github.com/aqarcrm/aqarcrm/internal/logging"
	"github.com/aqarcrm/aqarcrm/internal/remote"
	"github.com/aqarcrm/aqarcrm/internal/seed"
	"github.com/aqarcrm/aqarcrm/internal/storage"
	"github.com/aqarcrm/aqarcrm/internal/storage/postgres"
	"github.com/aqarcrm/aqarcrm/internal/storage/sqlite"
	"github.com/aqarcrm/aqarcrm/internal/whatsapp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Init(cfg.AppName)

	// Open the backing store: postgres when DATABASE_URL is set, sqlite
	// otherwise, in-memory as a last resort.
	store := openStore(cfg)
	defer store.Close()

	// Initialize repositories
	propertyRepo := listing.NewRepository(store)
	clientRepo := client.NewRepository(store)
	agentRepo := agent.NewRepository(store)
	rentalRepo := rental.NewRepository(store)
	maintenanceRepo := maintenance.NewRepository(store)
	visitRepo := visit.NewRepository(store)
	campaignRepo := campaign.NewRepository(store)

	if cfg.Storage.Seed {
		seed.Load(seed.Repositories{
			Properties: propertyRepo,
			Clients:    clientRepo,
			Rentals:    rentalRepo,
		})
	}

	// Initialize services
	sender := whatsapp.FromConfig(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.WhatsAppFrom)

	listingService := listing.NewService(propertyRepo)
	clientService := client.NewService(clientRepo)
	matchingService := matching.NewService(clientRepo, propertyRepo)
	rentalService := rental.NewService(rentalRepo)
	maintenanceService := maintenance.NewService(maintenanceRepo)
	visitService := visit.NewService(visitRepo, clientRepo, propertyRepo, sender)
	campaignService := campaign.NewService(campaignRepo, clientService, sender)
	agentService := agent.NewService(agentRepo)
	statsService := stats.NewService(propertyRepo, clientRepo, rentalService, maintenanceRepo, visitRepo)

	var syncService *remote.Service
	if cfg.Remote.URL != "" && cfg.Remote.Secret != "" {
		syncService = remote.NewService(
			remote.NewClient(cfg.Remote.URL, cfg.Remote.Secret, cfg.Remote.Issuer),
			validation.NewValidator(),
			propertyRepo,
			clientRepo,
			rentalRepo,
			maintenanceRepo,
			visitRepo,
		)
	}

	// Setup router
	router := api.NewRouter(
		handlers.NewPropertyHandler(listingService),
		handlers.NewClientHandler(clientService, matchingService),
		handlers.NewRentalHandler(rentalService),
		handlers.NewMaintenanceHandler(maintenanceService),
		handlers.NewVisitHandler(visitService),
		handlers.NewCampaignHandler(campaignService),
		handlers.NewAgentHandler(agentService),
		handlers.NewDashboardHandler(statsService),
		handlers.NewSyncHandler(syncService),
	)
	engine := router.Setup(cfg.Server.Mode)

	// Background jobs
	scheduler := cron.New()
	mustSchedule(scheduler, cfg.Cron.AlertSchedule, "rental alerts", func() {
		created := rentalService.GenerateAlerts(time.Now())
		if len(created) > 0 {
			logging.Logger.Infof("rental: generated %d alert(s)", len(created))
		}
	})
	mustSchedule(scheduler, cfg.Cron.ReminderSchedule, "visit reminders", func() {
		visitService.SendReminders(time.Now())
	})
	if syncService != nil && cfg.Remote.Schedule != "" {
		mustSchedule(scheduler, cfg.Remote.Schedule, "remote sync", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			syncService.SyncAll(ctx)
		})
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logging.Logger.Info("Shutting down server...")
		scheduler.Stop()
		store.Close()
		os.Exit(0)
	}()

	// Start server
	logging.Logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		logging.Logger.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(cfg *config.Config) storage.Store {
	if cfg.Storage.DatabaseURL != "" {
		store, err := postgres.Open(cfg.Storage.DatabaseURL)
		if err != nil {
			logging.Logger.Fatalf("Failed to connect to postgres: %v", err)
		}
		logging.Logger.Info("Connected to postgres")
		return store
	}

	store, err := sqlite.Open(cfg.Storage.SQLitePath)
	if err != nil {
		logging.Logger.WithError(err).Error("Failed to open sqlite store, falling back to in-memory")
		return storage.NewMemoryStore()
	}
	logging.Logger.Infof("Opened sqlite store at %s", cfg.Storage.SQLitePath)
	return store
}

func mustSchedule(scheduler *cron.Cron, spec, name string, job func()) {
	if _, err := scheduler.AddFunc(spec, job); err != nil {
		logging.Logger.Fatalf("Failed to schedule %s (%q): %v", name, spec, err)
	}
}
