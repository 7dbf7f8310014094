package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/g-vinokurov/interstellarium/handlers"
	"github.com/g-vinokurov/interstellarium/internal/config"
	"github.com/g-vinokurov/interstellarium/services"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := services.AutoMigrate(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	passwordSvc := services.NewPasswordService().Build()
	jwtSvc := services.NewJWTService(cfg.JWTSecret).
		WithAccessTTL(cfg.JWTAccessTTL).
		Build()

	authSvc := services.NewAuthService(db).
		WithPasswordService(passwordSvc).
		WithJWTService(jwtSvc).
		Build()

	userSvc := services.NewUserService(db).
		WithPasswordService(passwordSvc).
		Build()

	mux := handlers.NewRouter().
		WithAuthService(authSvc).
		WithUserServices(userSvc, services.NewUserDepartmentLedger(db)).
		WithDepartmentServices(services.NewDepartmentService(db).Build(), services.NewDepartmentChiefLedger(db)).
		WithGroupServices(services.NewGroupService(db).Build(), services.NewGroupUserLinks(db)).
		WithContractServices(services.NewContractService(db).Build(), services.NewContractChiefLedger(db), services.NewContractProjectLinks(db)).
		WithProjectServices(services.NewProjectService(db).Build(), services.NewProjectChiefLedger(db)).
		WithEquipmentServices(services.NewEquipmentService(db).Build(), services.NewEquipmentDepartmentLedger(db), services.NewEquipmentGroupLedger(db)).
		WithWorkService(services.NewWorkService(db).Build()).
		WithMiddlewares(handlers.RequestLogger(logger), cors.AllowAll().Handler).
		Build()

	server := &http.Server{
		Addr:         cfg.Host + ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited gracefully")
}
