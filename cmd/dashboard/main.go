package main

import (
	"VCS_Image_Dashboard/internal/dashboard/api/handler"
	"VCS_Image_Dashboard/internal/dashboard/api/routes"
	"VCS_Image_Dashboard/internal/dashboard/client"
	"VCS_Image_Dashboard/internal/dashboard/config"
	"VCS_Image_Dashboard/internal/dashboard/metrics"
	"VCS_Image_Dashboard/internal/dashboard/service"
	"VCS_Image_Dashboard/internal/dashboard/view"
	"VCS_Image_Dashboard/pkg/logger"
	"VCS_Image_Dashboard/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env", "./.env.version")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "dashboard"))
	defer zapLogger.Sync()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go fileSyncer.ReloadOn(context.Background(), hup, func(e error) {
		if e != nil {
			zapLogger.Error("failed to reload log file", zap.Error(e), zap.String("file", fileSyncer.Path()))
			return
		}
		zapLogger.Info("successfully reloaded log file after SIGHUP")
	})
	for _, warning := range appConfig.Warnings {
		zapLogger.Warn(warning)
	}

	version := appConfig.Version.Metadata()
	zapLogger.Info("build metadata loaded",
		zap.String("git_hash", version.GitHash),
		zap.String("version", version.Version),
	)

	// set up dependencies
	metrics.InitMetrics()
	inventoryClient := client.NewInventoryClient(appConfig.Inventory.BaseURL, appConfig.Inventory.Timeout, zapLogger)
	dashboardService := service.NewDashboardService(inventoryClient, zapLogger, version)
	dashboardHandler := handler.NewDashboardHandler(handler.NewLogger(zapLogger), dashboardService)
	m := middleware.NewRequestMiddleware(metrics.HTTPRequests)

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.SetHTMLTemplate(view.Templates())

	routes.SetUpDashboardRoutes(r, dashboardHandler, m, metrics.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting dashboard on %s, inventory api %s", srv.Addr, appConfig.Inventory.BaseURL))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
