package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"duty-assignment-backend/internal/api/routes"
	"duty-assignment-backend/internal/config"
	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/database"
	"duty-assignment-backend/internal/logger"
	"duty-assignment-backend/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "duty-assignment-backend/docs" // This is needed for swag
)

//	@title			Duty Assignment Backend API
//	@version		1.0
//	@description	Backend service that automatically distributes responsibility for CRM records among the employees on duty, driven by assignment rules and a duty roster.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, cfg.Environment)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize the CRM client
	if cfg.CrmWebhookURL == "" {
		logrus.Fatal("CRM_WEBHOOK_URL is not configured")
	}
	mapping, err := crm.LoadMapping(cfg.CrmMappingFile)
	if err != nil {
		logrus.Fatal("Failed to load CRM mapping:", err)
	}
	crmClient, err := crm.NewClient(cfg.CrmWebhookURL, mapping, time.Duration(cfg.CrmRequestTimeoutSec)*time.Second)
	if err != nil {
		logrus.Fatal("Failed to initialize CRM client:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router and services
	router, services := routes.SetupRoutes(db, cfg, crmClient)

	// Warm the staff cache so rule validation works before the first manual sync
	syncCtx, cancelSync := context.WithTimeout(context.Background(), 30*time.Second)
	if count, err := services.Users.Sync(syncCtx); err != nil {
		logrus.WithError(err).Warn("Initial CRM user sync failed")
	} else {
		logrus.WithField("count", count).Info("Initial CRM user sync completed")
	}
	cancelSync()

	// Start the scheduler
	var sched *scheduler.Scheduler
	if cfg.SchedulerEnabled {
		sched = scheduler.New(services.Assignment, cfg.SchedulerIntervalMinutes)
		sched.Start()
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down")

	if sched != nil {
		sched.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}
