package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"saes/study-app/api"
	"saes/study-app/core"
	"saes/study-app/gemini"
	"saes/study-app/lib"
	"saes/study-app/services/study_service"
)

func main() {
	cfg := lib.LoadConfig()
	logger := lib.NewLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer logger.Sync()

	binding.Validator = lib.NewValidator()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := study_service.NewService(study_service.Options{
		Router:     core.NewRouter(cfg.Models),
		Resolver:   core.NewEnvCredentialResolver(cfg.Gemini.CredentialKeys...),
		Connector:  gemini.NewConnector(gemini.Options{BaseURL: cfg.Gemini.BaseURL}),
		Logger:     logger,
		SessionTTL: cfg.App.SessionTTL,
		Timeout:    cfg.App.RequestTimeout,
	})

	r, err := api.NewRouter(svc, api.RouterConfig{AllowedOrigins: cfg.App.CorsAllowedOrigins}, logger)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{Addr: ":" + cfg.App.Port, Handler: r}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("study app listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
