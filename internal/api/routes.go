package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) are applied to the
// router before this function is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authService core.AuthService,
	reportService core.ReportService,
	extraService core.ExtraServiceService,
	routeService core.RouteService,
	holidayService core.HolidayService,
	feedbackService core.FeedbackService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized; routes cannot be secured.")
		panic("Firebase Auth client is nil during route setup")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(authService)
	reportHandler := NewReportHandler(reportService)
	extraHandler := NewExtraServiceHandler(extraService)
	routeHandler := NewRouteHandler(routeService)
	holidayHandler := NewHolidayHandler(holidayService)
	feedbackHandler := NewFeedbackHandler(feedbackService)

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/signin", authHandler.SignIn)
			authGroup.POST("/verification/send", authHandler.SendVerificationEmail)
			authGroup.GET("/verification", authMW.VerifyToken(), authHandler.EmailVerified)
		}

		userGroup := apiV1.Group("/users", authMW.VerifyToken())
		{
			userGroup.GET("/me", userHandler.GetProfile)
			userGroup.PATCH("/me", userHandler.UpdateProfile)
			userGroup.GET("/me/stream", userHandler.StreamProfile)
			userGroup.PUT("/me/onboarding", userHandler.SetOnboarding)
		}

		reportGroup := apiV1.Group("/reports", authMW.VerifyToken())
		{
			reportGroup.POST("", reportHandler.CreateReport)
			reportGroup.GET("/stream", reportHandler.StreamOwnReports)
			reportGroup.PATCH("/:reportId", reportHandler.UpdateReport)
			reportGroup.DELETE("/:reportId", reportHandler.DeleteReport)
		}

		extraGroup := apiV1.Group("/extra-services", authMW.VerifyToken())
		{
			extraGroup.POST("", extraHandler.Request)
			extraGroup.GET("", extraHandler.List)
			extraGroup.DELETE("/:requestId", extraHandler.Delete)
		}

		routeGroup := apiV1.Group("/routes", authMW.VerifyToken())
		{
			routeGroup.GET("", routeHandler.GetRoutes)
			routeGroup.GET("/stream", routeHandler.StreamRoutes)
		}
		apiV1.GET("/route-progress/stream", authMW.VerifyToken(), routeHandler.StreamProgress)

		mapGroup := apiV1.Group("/map", authMW.VerifyToken())
		{
			mapGroup.POST("/overlay", routeHandler.BuildOverlay)
			mapGroup.GET("/eta", routeHandler.ETA)
		}

		apiV1.GET("/holidays", authMW.VerifyToken(), holidayHandler.List)
		apiV1.POST("/feedback", authMW.VerifyToken(), feedbackHandler.Submit)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	logger.Info("API routes configured successfully.")
}
