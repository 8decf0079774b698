// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/motorista-real/backend/internal/integration/entrypoint/controller"
	"github.com/motorista-real/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	vehicleController     *controller.VehicleController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	versionController     *controller.VersionController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	vehicleController *controller.VehicleController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	versionController *controller.VersionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		vehicleController:     vehicleController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		versionController:     versionController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/provider", r.loginRateLimiter.Middleware(), r.authController.LoginWithProvider)
			}
			if r.authMiddleware != nil {
				auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.Get)
				users.PATCH("/me", r.userController.Update)
			}
		}

		// Vehicle routes (require authentication)
		if r.vehicleController != nil && r.authMiddleware != nil {
			vehicles := v1.Group("/vehicles")
			vehicles.Use(r.authMiddleware.Authenticate())
			{
				vehicles.GET("", r.vehicleController.List)
				vehicles.POST("", r.vehicleController.Register)
				vehicles.PATCH("/:id", r.vehicleController.Update)
				vehicles.POST("/:id/activate", r.vehicleController.Activate)
				vehicles.POST("/:id/amortize", r.vehicleController.Amortize)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
			}
		}

		// Version routes (require authentication)
		if r.versionController != nil && r.authMiddleware != nil {
			version := v1.Group("/version")
			version.Use(r.authMiddleware.Authenticate())
			{
				version.GET("", r.versionController.Check)
				version.POST("/dismiss", r.versionController.Dismiss)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
