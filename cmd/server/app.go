package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"cardeval/internal/evaluation"
	"cardeval/internal/evaluation/adapters"
	"cardeval/internal/evaluation/handler"
	evalmetrics "cardeval/internal/evaluation/metrics"
	"cardeval/internal/platform/audit"
	"cardeval/internal/platform/config"
	"cardeval/internal/platform/httpserver"
	"cardeval/internal/platform/logger"
	platformmetrics "cardeval/internal/platform/metrics"
	"cardeval/internal/platform/middleware"
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "cardeval",
		Usage:     "Credit card application evaluator",
		Version:   "0.1.0",
		Writer:    out,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			serveCommand(),
			evaluateCommand(out),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP evaluation server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "listen address, overrides CARDEVAL_ADDR",
				Aliases: []string{"a"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if addr := c.String("addr"); addr != "" {
				cfg.Addr = addr
			}
			return serve(c.Context, cfg)
		},
	}
}

func evaluateCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "evaluate",
		Usage: "Evaluate a single application and print the decision as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "income", Usage: "gross annual income", Value: "0"},
			&cli.IntFlag{Name: "age", Usage: "applicant age"},
			&cli.StringFlag{Name: "flyer", Usage: "frequent flyer number"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			income, err := decimal.NewFromString(c.String("income"))
			if err != nil {
				return fmt.Errorf("parse income: %w", err)
			}

			log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			evaluator, err := buildEvaluator(cfg, log)
			if err != nil {
				return err
			}

			req := handler.EvaluateRequest{
				GrossAnnualIncome:   decimal.NewNullDecimal(income),
				Age:                 c.Int("age"),
				FrequentFlyerNumber: c.String("flyer"),
			}
			if err := req.Validate(); err != nil {
				return err
			}

			result, err := evaluator.EvaluateDetailed(c.Context, req.Application())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(handler.FromResult(result))
		},
	}
}

// buildEvaluator wires the in-process collaborators from configuration.
func buildEvaluator(cfg config.Server, log *slog.Logger, opts ...evaluation.Option) (*evaluation.Evaluator, error) {
	validator, err := adapters.NewLocalFlyerValidator(cfg.Validator.LicenseKey, cfg.Validator.NumberPattern)
	if err != nil {
		return nil, err
	}

	opts = append([]evaluation.Option{
		evaluation.WithFraudLookup(adapters.NewBlocklistFraudLookup(cfg.Fraud.Blocklist)),
		evaluation.WithLogger(log),
	}, opts...)
	return evaluation.New(validator, opts...)
}

func newRouter(evaluator *evaluation.Evaluator, metricsHandler http.Handler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.AccessLog(log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", metricsHandler)
	handler.New(evaluator, log).Register(r)
	return r
}

func serve(ctx context.Context, cfg config.Server) error {
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	reg := platformmetrics.NewRegistry()
	publisher := audit.NewPublisher(audit.NewLogStore(log))
	evaluator, err := buildEvaluator(cfg, log,
		evaluation.WithMetrics(evalmetrics.New(reg)),
		evaluation.WithAuditPublisher(publisher),
	)
	if err != nil {
		return err
	}

	srv := httpserver.New(cfg.Addr, newRouter(evaluator, platformmetrics.Handler(reg), log))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting cardeval", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down cardeval")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
