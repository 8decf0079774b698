// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/motorista-real/backend/config"
	"github.com/motorista-real/backend/internal/application/adapter"
	"github.com/motorista-real/backend/internal/application/usecase/auth"
	"github.com/motorista-real/backend/internal/application/usecase/dashboard"
	"github.com/motorista-real/backend/internal/application/usecase/transaction"
	"github.com/motorista-real/backend/internal/application/usecase/user"
	"github.com/motorista-real/backend/internal/application/usecase/vehicle"
	"github.com/motorista-real/backend/internal/application/usecase/version"
	"github.com/motorista-real/backend/internal/domain/entity"
	"github.com/motorista-real/backend/internal/infra/server/router"
	"github.com/motorista-real/backend/internal/integration/adapters"
	"github.com/motorista-real/backend/internal/integration/entrypoint/controller"
	"github.com/motorista-real/backend/internal/integration/entrypoint/middleware"
	"github.com/motorista-real/backend/internal/integration/persistence"
)

// releasedVersion describes the app release the backend currently serves.
var releasedVersion = entity.AppVersionInfo{
	CurrentVersion: "2.4.0",
	LatestVersion:  "2.4.0",
	ReleaseNotes: []string{
		"Meta dinâmica agora considera os dias restantes do mês",
		"Novo detalhamento de abastecimento por tipo de combustível",
		"Correções de desempenho no painel diário",
	},
	IsMandatory: false,
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  adapter.BlobStore
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired
// on top of the given blob store.
func NewInjector(cfg *config.Config, store adapter.BlobStore, storeHealthChecker func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(store)
	vehicleRepo := persistence.NewVehicleRepository(store)
	transactionRepo := persistence.NewTransactionRepository(store)
	versionRepo := persistence.NewVersionRepository(store)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, tokenService)
	providerLoginUseCase := auth.NewLoginWithProviderUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase()

	// Create user use cases
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo)

	// Create vehicle use cases
	registerVehicleUseCase := vehicle.NewRegisterVehicleUseCase(vehicleRepo, transactionRepo)
	listVehiclesUseCase := vehicle.NewListVehiclesUseCase(vehicleRepo)
	updateVehicleUseCase := vehicle.NewUpdateVehicleUseCase(vehicleRepo)
	switchActiveVehicleUseCase := vehicle.NewSwitchActiveVehicleUseCase(vehicleRepo)
	amortizeInstallmentsUseCase := vehicle.NewAmortizeInstallmentsUseCase(vehicleRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, vehicleRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create dashboard use case
	getDailySummaryUseCase := dashboard.NewGetDailySummaryUseCase(userRepo, vehicleRepo, transactionRepo)

	// Create version use cases
	checkUpdateUseCase := version.NewCheckUpdateUseCase(versionRepo, releasedVersion)
	dismissNotesUseCase := version.NewDismissNotesUseCase(versionRepo)

	// Create controllers
	healthController := controller.NewHealthController(storeHealthChecker)
	authController := controller.NewAuthController(loginUseCase, providerLoginUseCase, logoutUseCase)
	userController := controller.NewUserController(getUserUseCase, updateUserUseCase)
	vehicleController := controller.NewVehicleController(
		registerVehicleUseCase,
		listVehiclesUseCase,
		updateVehicleUseCase,
		switchActiveVehicleUseCase,
		amortizeInstallmentsUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		listTransactionsUseCase,
	)
	dashboardController := controller.NewDashboardController(getDailySummaryUseCase)
	versionController := controller.NewVersionController(checkUpdateUseCase, dismissNotesUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		vehicleController,
		transactionController,
		dashboardController,
		versionController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		Store:  store,
		Router: r,
	}
}
