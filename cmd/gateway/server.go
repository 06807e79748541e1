package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/DanielPopoola/trident-gateway/internal/api"
	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/config"
	"github.com/DanielPopoola/trident-gateway/internal/infrastructure/metrics"
	"github.com/DanielPopoola/trident-gateway/internal/infrastructure/telemetry"
	"github.com/DanielPopoola/trident-gateway/internal/infrastructure/trident"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest/middleware"
)

// newHandler wires the gateway, service, handlers and middleware chain.
func newHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, telemetry.ShutdownFunc, error) {
	tracerProvider, shutdownTracing, err := telemetry.Setup(cfg.Tracing, cfg.Primary.Env, os.Stdout)
	if err != nil {
		return nil, nil, err
	}

	collector := metrics.NewCollector()

	transport := trident.NewRetryTransport(trident.NewHTTPTransport(cfg.Trident.Timeout), cfg.Retry)
	gateway := trident.NewGateway(transport,
		trident.Config{
			Login:      cfg.Trident.Login,
			Password:   cfg.Trident.Password,
			Production: cfg.Trident.Production,
			TestURL:    cfg.Trident.TestURL,
			LiveURL:    cfg.Trident.LiveURL,
		},
		trident.WithLogger(logger),
		trident.WithObserver(collector),
		trident.WithTracerProvider(tracerProvider),
	)

	paymentService := services.NewPaymentService(gateway, logger)
	h := handlers.NewHandlers(paymentService, logger)

	doc, err := api.LoadSpec()
	if err != nil {
		return nil, nil, err
	}
	validate, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("error building request validator: %w", err)
	}

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", collector.Handler())

	handler := middleware.Recovery(logger)(mux)
	handler = validate(handler)
	handler = middleware.Logging(logger, collector)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)

	return handler, shutdownTracing, nil
}
