package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"translation-office/internal/repositories"
	"translation-office/internal/services"
	"translation-office/pkg/config"
	"translation-office/pkg/filestorage"
	"translation-office/pkg/middleware"
	"translation-office/pkg/service"
)

// InitRouter builds the dependency graph and mounts every route group.
// Public intake lives under /api, the back office under /api/admin behind
// the auth middleware.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	fileStorage filestorage.FileStorageInterface,
	notification services.NotificationServiceInterface,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	requestRepo := repositories.NewRequestRepository(dbConn)
	historyRepo := repositories.NewStatusHistoryRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)

	requestService := services.NewRequestService(txManager, requestRepo, historyRepo, fileStorage, notification, logger)
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, cfg.Auth, logger)
	dashboardService := services.NewDashboardService(dashboardRepo)
	reportService := services.NewReportService(requestRepo, historyRepo)

	runRequestRouter(api, requestService, fileStorage, logger)
	runAuthRouter(api, authService, authMW, logger)

	adminGroup := api.Group("/admin", authMW.Auth, authMW.RequireAdmin)
	runAdminRequestRouter(adminGroup, requestService, logger)
	runDashboardRouter(adminGroup, dashboardService, logger)
	runReportRouter(adminGroup, reportService, logger)
}
