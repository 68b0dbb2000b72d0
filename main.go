// File: tablebot/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablebot/config"
	"tablebot/database"
	reservationRepo "tablebot/database/repository/reservation"
	"tablebot/handlers"
	"tablebot/middleware"
	"tablebot/routes"
	"tablebot/services/conversation"
	"tablebot/services/menu"
	"tablebot/services/nlp"
	"tablebot/services/personality"
	"tablebot/services/reminder"
	"tablebot/services/reservation"
	"tablebot/services/session"
	"tablebot/services/slotlock"
	"tablebot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitMemoryCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	resRepo := reservationRepo.NewMongoReservationRepo(config.AppConfig.DatabaseName)

	// Core collaborators.
	catalog := menu.NewCatalog()
	voice := personality.NewVoice(config.AppConfig, rand.New(rand.NewSource(time.Now().UnixNano())))
	nlpEngine := nlp.NewEngine()
	locker := slotlock.NewLocker(config.SlotLockDuration())

	memoryStore := session.NewRedisMemoryStore(utils.GetMemoryCacheClient())
	sessions := session.NewStore(config.SessionTimeout(), config.AppConfig.DefaultLanguage, locker, memoryStore)

	var reminders reservation.ReminderScheduler
	if config.AppConfig.ReminderWorkerEnabled {
		scheduler := reminder.NewScheduler(time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
		defer scheduler.Close()
		reminders = scheduler
		reminder.InitReminderWorker()
	}

	reservationService := &reservation.DefaultReservationService{
		Repo:            resRepo,
		Catalog:         catalog,
		Locker:          locker,
		Reminders:       reminders,
		RestaurantName:  config.AppConfig.RestaurantName,
		RestaurantPhone: config.AppConfig.RestaurantPhone,
	}

	conversationEngine := conversation.NewEngine(
		sessions, locker, nlpEngine, catalog, voice, reservationService,
		conversation.Config{
			MinPeople: config.AppConfig.MinPartySize,
			MaxPeople: config.AppConfig.MaxPartySize,
		},
	)

	// Background sweepers for expired slot holds and idle sessions.
	sweepCtx, stopSweepers := context.WithCancel(context.Background())
	defer stopSweepers()
	locker.StartSweeper(sweepCtx, time.Duration(config.AppConfig.SlotLockSweepSeconds)*time.Second)
	sessions.StartSweeper(sweepCtx, time.Duration(config.AppConfig.SessionSweepSeconds)*time.Second)

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		Conversation: conversationEngine,
		Sessions:     sessions,
		Locker:       locker,
		Catalog:      catalog,
		Reservations: reservationService,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopSweepers()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
