// File: bookcall/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"bookcall/config"
	"bookcall/cron"
	"bookcall/database"
	bookingRepo "bookcall/database/repository/booking"
	leadsRepo "bookcall/database/repository/leads"
	"bookcall/handlers"
	"bookcall/middleware"
	"bookcall/routes"
	"bookcall/services/availability"
	"bookcall/services/leads"
	"bookcall/services/notification"
	"bookcall/services/scheduler"
	"bookcall/services/tasks"
	"bookcall/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	leadStore := leadsRepo.NewMongoLeadsRepo()

	// notification: SendGrid when configured, stub otherwise.
	var notifier notification.NotificationService
	if email := notification.NewEmailNotificationService(notification.EmailConfig{
		APIKey:       config.AppConfig.SendGridAPIKey,
		BookingInbox: config.AppConfig.BookingInbox,
		FromEmail:    config.AppConfig.FromEmail,
		FromName:     config.AppConfig.FromName,
	}, logger); email != nil {
		notifier = email
	} else {
		logger.Warn("SENDGRID_API_KEY not set, using stub notifier")
		notifier = &notification.StubNotificationService{Logger: logger}
	}

	// availability: weekly template in Mongo minus booked labels.
	slotSource := availability.NewMongoSource(database.Collection("weekly_templates"), bookings)

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	reminders := &tasks.AsynqReminderScheduler{Client: asynqClient}
	cron.InitReminderWorker(notifier)

	// services.
	schedulerService := &scheduler.DefaultSchedulerService{
		Cache:          utils.GetSessionCacheClient(),
		Availability:   slotSource,
		Notifier:       notifier,
		Bookings:       bookings,
		Reminders:      reminders,
		Clock:          scheduler.SystemClock{},
		Logger:         logger,
		MaxMonthsAhead: config.AppConfig.SchedulerMaxMonthsAhead,
	}
	leadsService := &leads.DefaultLeadsService{
		Repo:     leadStore,
		Notifier: notifier,
		Logger:   logger,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Scheduler: handlers.NewSchedulerHandler(schedulerService, scheduler.SystemClock{}, logger),
		Leads:     handlers.NewLeadsHandler(leadsService, logger),
		Admin:     handlers.NewAdminHandler(bookings, leadStore, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	if !config.IsProduction() {
		if token, err := utils.GenerateAdminToken("dev", 24*time.Hour); err == nil {
			logger.Sugar().Infof("dev admin token: %s", token)
		}
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
