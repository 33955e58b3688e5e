package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/internal/httpapi"
	"github.com/cloud-ru/amortization-go/internal/logging"
	"github.com/cloud-ru/amortization-go/internal/service"
	"github.com/cloud-ru/amortization-go/internal/tracing"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("amortization-server: %v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	calculator := service.NewCalculator(cfg, tracer, logger)
	handler := httpapi.NewAmortizationHandler(cfg, calculator, logger)
	server := httpapi.NewServer(cfg.Addr(), httpapi.NewRouter(handler))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return shutdownAll(shutdownCtx,
			shutdownStep{name: "server", fn: server.Shutdown},
			shutdownStep{name: "tracing", fn: shutdownTracing},
		)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}

type shutdownStep struct {
	name string
	fn   func(ctx context.Context) error
}

// shutdownAll выполняет все шаги остановки, даже если предыдущий упал
func shutdownAll(ctx context.Context, steps ...shutdownStep) error {
	var errs []error
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", step.name, err))
		}
	}
	return errors.Join(errs...)
}
