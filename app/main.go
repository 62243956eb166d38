package main

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"translation-office/internal/routes"
	"translation-office/internal/services"
	"translation-office/pkg/config"
	"translation-office/pkg/customvalidator"
	"translation-office/pkg/database/postgresql"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/filestorage"
	applogger "translation-office/pkg/logger"
	"translation-office/pkg/service"
	"translation-office/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	var fileStorage filestorage.FileStorageInterface
	var err error
	switch cfg.Storage.Driver {
	case "s3":
		fileStorage, err = filestorage.NewS3FileStorage(cfg.Storage)
	default:
		fileStorage, err = filestorage.NewLocalFileStorage(cfg.Storage.LocalPath)
		if err == nil {
			absPath, pathErr := filepath.Abs(cfg.Storage.LocalPath)
			if pathErr != nil {
				logger.Fatal("failed to resolve uploads path", zap.Error(pathErr))
			}
			e.Static("/uploads", absPath)
		}
	}
	if err != nil {
		logger.Fatal("failed to initialize file storage", zap.Error(err))
	}

	var notification services.NotificationServiceInterface
	if cfg.SMTP.Host != "" {
		notification = services.NewSMTPNotificationService(cfg.SMTP, logger)
	} else {
		logger.Warn("SMTP is not configured, emails will only be logged")
		notification = services.NewMockNotificationService(logger)
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, fileStorage, notification, logger, cfg)

	logger.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
