package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rent2reuse/config"
	"rent2reuse/cron"
	"rent2reuse/database"
	adminRepoPkg "rent2reuse/database/repository/admin"
	billingRepoPkg "rent2reuse/database/repository/billing"
	settingsRepoPkg "rent2reuse/database/repository/settings"
	"rent2reuse/handlers"
	"rent2reuse/middleware"
	"rent2reuse/routes"
	"rent2reuse/services/auth"
	"rent2reuse/services/billing"
	"rent2reuse/services/mailer"
	settingsSvc "rent2reuse/services/settings"
	"rent2reuse/services/storage"
	"rent2reuse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	storageService, err := storage.NewFromConfig()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	adminRepo := adminRepoPkg.NewFirestoreAdminRepo()
	settingsRepo := settingsRepoPkg.NewFirestoreSettingsRepo()
	billingRepo := billingRepoPkg.NewFirestoreBillingRepo()

	// services.
	watcher := auth.NewSessionWatcher()

	// The idle monitor expires sessions through the session service; the
	// service is assigned below, before any request can arm a timer.
	var sessionService *auth.DefaultSessionService
	idleWindow := time.Duration(config.AppConfig.IdleTimeoutMinutes) * time.Minute
	idleMonitor := auth.NewIdleMonitor(idleWindow, func(uid string) {
		logger.Info("Idle session expired", zap.String("uid", uid))
		if err := sessionService.SignOut(context.Background(), uid); err != nil {
			logger.Error("Idle sign-out failed", zap.String("uid", uid), zap.Error(err))
		}
	})

	sessionService = &auth.DefaultSessionService{
		Repo:     adminRepo,
		Verifier: &auth.FirebaseVerifier{Client: utils.AuthClient},
		Cache:    utils.GetAuthCacheClient(),
		Watcher:  watcher,
		Idle:     idleMonitor,
		TokenTTL: time.Duration(config.AppConfig.SessionTokenHours) * time.Hour,
	}

	settingsStore := settingsSvc.NewStore(settingsRepo)
	billingService := &billing.DefaultBillingService{Repo: billingRepo}
	mail := mailer.NewAPIMailer()

	authHandler := handlers.NewAuthHandler(sessionService, adminRepo, watcher)
	adminHandler := handlers.NewAdminHandler(adminRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsStore)
	billingHandler := handlers.NewBillingHandler(billingService)
	supportHandler := handlers.NewSupportHandler(mail, mailer.CredentialsFromConfig())
	storageHandler := handlers.NewStorageHandler(storageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo: adminRepo,
		Sessions:  sessionService,

		// Auth endpoints.
		SignInHandler:       authHandler.SignInHandler,
		SignOutHandler:      authHandler.SignOutHandler,
		SessionHandler:      authHandler.SessionHandler,
		SessionStateHandler: authHandler.SessionStateHandler,
		LogoutBeaconHandler: authHandler.LogoutBeaconHandler,

		// Admin management endpoints.
		ListAdminsHandler:        adminHandler.ListAdminsHandler,
		UpdateAdminStatusHandler: adminHandler.UpdateAdminStatusHandler,
		NavigationHandler:        handlers.NavigationHandler,

		// Settings endpoints.
		GetSettingsHandler:           settingsHandler.GetSettingsHandler,
		UpdateSettingsSectionHandler: settingsHandler.UpdateSettingsSectionHandler,

		// Billing endpoints.
		CreateTransactionHandler: billingHandler.CreateTransactionHandler,
		ReviewTransactionHandler: billingHandler.ReviewTransactionHandler,
		GetTransactionHandler:    billingHandler.GetTransactionHandler,
		ListTransactionsHandler:  billingHandler.ListTransactionsHandler,
		PaymentIntentHandler:     billingHandler.PaymentIntentHandler,

		// Support endpoints.
		SendSupportEmailHandler: supportHandler.SendSupportEmailHandler,

		// Storage endpoints.
		UploadPhotoHandler:    storageHandler.UploadPhotoHandler,
		GetDownloadURLHandler: storageHandler.GetDownloadURLHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Subscription-expiry reminders.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	cron.InitReminderWorker(mail)
	cron.StartReminderScheduler(workerCtx, billingRepo, func(ctx context.Context, userID string) (string, error) {
		doc, err := database.FirestoreClient.Collection("users").Doc(userID).Get(ctx)
		if err != nil {
			return "", err
		}
		email, _ := doc.Data()["email"].(string)
		return email, nil
	})

	// Warm the settings cache; the dashboard falls back to defaults on failure.
	if err := settingsStore.Load(context.Background()); err != nil {
		logger.Warn("Initial settings load failed, serving defaults", zap.Error(err))
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

	stopWorker()
	idleMonitor.Close()
	watcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
