package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aqarcrm/aqarcrm/config"
	"github.com/aqarcrm/aqarcrm/internal/core/agent"
	"github.com/aqarcrm/aqarcrm/internal/logging"
	"github.com/aqarcrm/aqarcrm/internal/storage"
	"github.com/aqarcrm/aqarcrm/internal/storage/postgres"
	"github.com/aqarcrm/aqarcrm/internal/storage/sqlite"
)

func main() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
	}

	cfg := config.Load()
	logging.Init(cfg.AppName)

	store := openStore(cfg)
	defer store.Close()

	agentRepo := agent.NewRepository(store)
	agentService := agent.NewService(agentRepo)

	// Already present: just make sure the record is an admin.
	if existing, ok := agentRepo.GetByEmail(adminEmail); ok {
		if existing.Role == agent.RoleAdmin {
			fmt.Printf("Admin '%s' already exists\n", adminEmail)
			return
		}
		if _, err := agentService.Update(existing.ID, &agent.UpdateAgentRequest{Role: agent.RoleAdmin}); err != nil {
			log.Fatalf("Failed to promote existing agent to admin: %v", err)
		}
		fmt.Printf("Promoted existing agent '%s' to admin\n", adminEmail)
		return
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	if _, err := agentService.Create(&agent.CreateAgentRequest{
		Name:     name,
		Email:    adminEmail,
		Password: adminPassword,
		Role:     agent.RoleAdmin,
	}); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Successfully created admin: %s\n", adminEmail)
}

func openStore(cfg *config.Config) storage.Store {
	if cfg.Storage.DatabaseURL != "" {
		store, err := postgres.Open(cfg.Storage.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		return store
	}
	store, err := sqlite.Open(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open sqlite store: %v", err)
	}
	return store
}
