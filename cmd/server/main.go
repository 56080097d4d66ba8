package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"pushuplog/docs"

	"pushuplog/internal/config"
	"pushuplog/internal/db"
	"pushuplog/internal/handler"
	"pushuplog/internal/logger"
	"pushuplog/internal/model"
	"pushuplog/internal/repository"
	"pushuplog/internal/router"
	"pushuplog/internal/service"
)

const apiVersion = "1.0.0"

// @title Pushuplog API
// @version 1.0.0
// @description REST API with full CRUD operations, relationship management and entity methods over users and their pushup records.
// @host localhost:8000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("logger init: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("database init: %v", err)
	}

	// Create-if-absent schema for both entities.
	if err := gormDB.AutoMigrate(&model.User{}, &model.Record{}); err != nil {
		logger.Log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	recordRepo := repository.NewRecordRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)

	userService := service.NewUserService(userRepo, recordRepo, txManager)
	recordService := service.NewRecordService(userRepo, recordRepo, txManager)

	systemHandler := handler.NewSystemHandler(userService, recordService, apiVersion)
	recordHandler := handler.NewRecordHandler(recordService)
	userHandler := handler.NewUserHandler(userService)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, systemHandler, recordHandler, userHandler)

	addr := ":" + cfg.ServerPort
	logger.Log.Infof("starting server on %s", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatalf("server start: %v", err)
	}
}
