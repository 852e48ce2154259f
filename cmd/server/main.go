package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"wastesync-backend-go/internal/api"
	"wastesync-backend-go/internal/clients/directions"
	"wastesync-backend-go/internal/clients/identity"
	"wastesync-backend-go/internal/config"
	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/middleware"
	"wastesync-backend-go/internal/scheduler"
)

func main() {
	// A missing .env file is fine; variables may come from the environment.
	_ = godotenv.Load()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("configuration loaded")

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK initialized", zap.String("projectID", appConfig.FirebaseProjectID))

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil || firebaseAuthClient == nil {
		zapLogger.Fatal("Firebase clients are nil after initialization")
	}

	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	authRepo := db.NewFirebaseAuthRepository(firebaseAuthClient)
	routeRepo := db.NewFirestoreRouteRepository(firestoreClient)
	progressRepo := db.NewFirestoreRouteProgressRepository(firestoreClient)
	reportRepo := db.NewFirestoreReportRepository(firestoreClient)
	extraRepo := db.NewFirestoreExtraServiceRepository(firestoreClient)
	holidayRepo := db.NewFirestoreHolidayRepository(firestoreClient)
	feedbackRepo := db.NewFirestoreFeedbackRepository(firestoreClient)
	zapLogger.Info("repositories initialized")

	identityClient := identity.NewClient(identity.DefaultBaseURL, appConfig.FirebaseWebAPIKey)
	routeClient := directions.NewOpenRouteClient(appConfig.OpenRouteBaseURL, appConfig.OpenRouteAPIKey)
	etaClient := directions.NewGoogleETAClient(appConfig.DirectionsBaseURL, appConfig.DirectionsAPIKey)

	authService := core.NewAuthService(authRepo, userRepo, identityClient)
	reportService := core.NewReportService(reportRepo)
	extraService := core.NewExtraServiceService(extraRepo)
	routeService := core.NewRouteService(routeRepo, progressRepo, routeClient, etaClient)
	holidayService := core.NewHolidayService(holidayRepo)
	feedbackService := core.NewFeedbackService(feedbackRepo)
	zapLogger.Info("core services initialized")

	holidayScheduler := scheduler.NewScheduler(holidayService, zapLogger)
	if err := holidayScheduler.Start(appConfig.HolidayRefreshCron); err != nil {
		zapLogger.Fatal("failed to start holiday refresh scheduler", zap.Error(err))
	}
	defer holidayScheduler.Stop()
	zapLogger.Info("holiday refresh scheduler started", zap.String("spec", appConfig.HolidayRefreshCron))

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped: CLIENT_URL is not configured")
	}

	api.SetupRoutes(
		router,
		zapLogger,
		authService,
		reportService,
		extraService,
		routeService,
		holidayService,
		feedbackService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server exiting")
}
