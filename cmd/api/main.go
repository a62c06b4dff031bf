package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/prefeitura-rio/app-busca-rescore/docs"
	"github.com/prefeitura-rio/app-busca-rescore/internal/api/routes"
	"github.com/prefeitura-rio/app-busca-rescore/internal/config"
	"github.com/prefeitura-rio/app-busca-rescore/internal/logger"
	"github.com/prefeitura-rio/app-busca-rescore/internal/observability"
)

// @title           Rescore API
// @version         1.0
// @description     API de normalização de scores de resultados de busca (min_max e z_score)
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      services.staging.app.dados.rio/app-busca-rescore

func main() {
	cfg := config.LoadConfig()

	// Providers antes do logger: a ponte otelslog usa o LoggerProvider global
	bootLog := logger.New(cfg.LogLevel, false)
	shutdownOTel, err := observability.Init(context.Background(), cfg, bootLog)
	if err != nil {
		bootLog.Error("Erro ao inicializar OpenTelemetry", "error", err)
	}

	log := logger.New(cfg.LogLevel, err == nil && cfg.TracingEnabled)

	r := routes.SetupRouter(cfg, log)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Servidor iniciado", "port", cfg.ServerPort, "normalizer", cfg.Rescore.Defaults.Normalizer)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Erro ao iniciar servidor", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Encerrando servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Erro ao encerrar servidor", "error", err)
	}
	if shutdownOTel != nil {
		if err := shutdownOTel(ctx); err != nil {
			log.Error("Erro ao encerrar OpenTelemetry", "error", err)
		}
	}
}
