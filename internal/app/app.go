package app

import (
	"fmt"

	"booklyn_backend/database"
	"booklyn_backend/internal/config"
	"booklyn_backend/internal/handlers"
	"booklyn_backend/internal/logger"
	"booklyn_backend/internal/middleware"
	"booklyn_backend/internal/routes"
	"booklyn_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run поднимает приложение целиком: конфиг, БД, миграции, HTTP-сервер
func Run() error {
	cfg := config.Load()
	logger.Init(cfg.Server.Env)

	db, err := OpenDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	router := SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// OpenDB открывает соединение с Postgres.
// TranslateError нужен, чтобы нарушения уникальных индексов
// приходили как gorm.ErrDuplicatedKey
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
}

// SetupRouter собирает gin-роутер со всеми middleware и маршрутами
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	serviceContainer := services.NewServiceContainer(db, cfg)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	routes.SetupRoutes(router, appHandlers, serviceContainer.Tokens)
	return router
}
