package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/sales-analyzer/pkg/handlers/analysis"
	"github.com/de-tools/sales-analyzer/pkg/services/analysis"

	salesmiddleware "github.com/de-tools/sales-analyzer/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Analyzer analysis.Analyzer
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) http.Handler {
	analysisHandler := handlers.NewHandler(config.Dependencies.Analyzer)
	logger := config.Dependencies.Logger

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(salesmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", analysisHandler.Health)
		r.Post("/analyses", analysisHandler.CreateAnalysis)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	logger := config.Dependencies.Logger

	return &WebAPI{
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           ConfigureRouter(config),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves until the listener fails or SIGINT/SIGTERM is received.
func (w *WebAPI) Start() error {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()
	defer cancel()

	return w.Run(ctx)
}

// Run serves until ctx is cancelled, then drains outstanding requests.
func (w *WebAPI) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(shutdownCtx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
