package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-pnl-api/internal/api/handler"
	"github.com/vfg2006/seller-pnl-api/internal/api/handler/router"
	"github.com/vfg2006/seller-pnl-api/internal/config"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/analyzing"
	"github.com/vfg2006/seller-pnl-api/internal/usecases/authenticating"
	"github.com/vfg2006/seller-pnl-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne os serviços expostos pela API
type Dependencies struct {
	Analyzer           analyzing.Analyzer
	Authenticator      authenticating.Authenticator
	LedgerCacheRefresh handler.ManualSyncer
	Database           handler.Pinger
	AllowedOrigins     []string
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.AllowedOrigins == nil {
		deps.AllowedOrigins = config.App.AllowedOrigins
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(deps),
			ReadHeaderTimeout: 2 * time.Second,
			// relatórios grandes levam alguns segundos para serem montados
			WriteTimeout: 2 * time.Minute,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares globais
func NewHandler(deps Dependencies) http.Handler {
	cronServices := handler.CronJobServices{
		LedgerCacheRefreshService: deps.LedgerCacheRefresh,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Database)...),
		router.WithRoutes(handler.Authentication(deps.Authenticator)...),
		router.WithRoutes(handler.Analytics(deps.Analyzer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	return alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(deps.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
