// Command server starts the resume checker HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/silver-dev/resume-checker/internal/adapter/ai/openrouter"
	"github.com/silver-dev/resume-checker/internal/adapter/extractor/pdfx"
	httpserver "github.com/silver-dev/resume-checker/internal/adapter/httpserver"
	"github.com/silver-dev/resume-checker/internal/adapter/mail/resendmail"
	"github.com/silver-dev/resume-checker/internal/adapter/observability"
	"github.com/silver-dev/resume-checker/internal/app"
	"github.com/silver-dev/resume-checker/internal/cache"
	"github.com/silver-dev/resume-checker/internal/config"
	"github.com/silver-dev/resume-checker/internal/examples"
	"github.com/silver-dev/resume-checker/internal/prompt"
	"github.com/silver-dev/resume-checker/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Few-shot examples; a missing base set is fatal, a bad decryption key
	// only degrades to the base set.
	store, err := examples.Load(cfg.AssetsDir, cfg.ExamplesKey)
	if err != nil {
		slog.Error("example store load failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("example store loaded", slog.Int("examples", store.Len()))

	// Adapters
	extractor := pdfx.New()
	engine := openrouter.New(cfg)
	mailer := resendmail.New(cfg)

	// Usecases
	gradeSvc := usecase.NewGradeService(extractor, engine, prompt.NewBuilder(), store, cache.New(cfg.CacheTTL, nil))
	feedbackSvc := usecase.NewFeedbackService(mailer)

	srv := httpserver.NewServer(cfg, gradeSvc, feedbackSvc, app.BuildReadinessCheck(cfg, store))
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
