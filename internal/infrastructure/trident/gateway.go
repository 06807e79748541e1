// Package trident is the adapter for the Merchant e-Solutions Trident API.
//
// Each operation runs the same three stages: a per-action pipeline of field
// builders, a commit that adds credentials and the transaction type and posts
// the form to the selected endpoint, and normalization of the answer into a
// domain.GatewayResponse.
package trident

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/DanielPopoola/trident-gateway/internal/domain"
)

const tracerName = "github.com/DanielPopoola/trident-gateway/internal/infrastructure/trident"

// Config is the construction-time configuration of a Gateway.
type Config struct {
	Login      string
	Password   string
	Production bool
	// Optional endpoint overrides. Empty means the published Trident URL.
	TestURL string
	LiveURL string
}

func (c Config) testURL() string {
	if c.TestURL != "" {
		return c.TestURL
	}
	return TestURL
}

func (c Config) liveURL() string {
	if c.LiveURL != "" {
		return c.LiveURL
	}
	return LiveURL
}

// Observer receives one callback per commit that reached the transport.
type Observer interface {
	ObserveCommit(action domain.GatewayAction, outcome string, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveCommit(domain.GatewayAction, string, time.Duration) {}

type Option func(*Gateway)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(g *Gateway) {
		if observer != nil {
			g.observer = observer
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Gateway) {
		if tp != nil {
			g.tracer = tp.Tracer(tracerName)
		}
	}
}

// Gateway holds only immutable configuration and is safe for concurrent use.
type Gateway struct {
	transport Transport
	cfg       Config
	logger    *slog.Logger
	observer  Observer
	tracer    trace.Tracer
}

func NewGateway(transport Transport, cfg Config, opts ...Option) *Gateway {
	g := &Gateway{
		transport: transport,
		cfg:       cfg,
		logger:    slog.Default(),
		observer:  noopObserver{},
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Purchase(ctx context.Context, amount domain.Money, source domain.PaymentSource, opts domain.Options) (*domain.GatewayResponse, error) {
	return g.commit(ctx, domain.ActionPurchase, domain.OperationRequest{
		Amount:  &amount,
		Source:  source,
		Options: opts,
	})
}

func (g *Gateway) Authorize(ctx context.Context, amount domain.Money, source domain.PaymentSource, opts domain.Options) (*domain.GatewayResponse, error) {
	return g.commit(ctx, domain.ActionAuthorize, domain.OperationRequest{
		Amount:  &amount,
		Source:  source,
		Options: opts,
	})
}

func (g *Gateway) Capture(ctx context.Context, transactionID string, amount domain.Money, opts domain.Options) (*domain.GatewayResponse, error) {
	return g.commit(ctx, domain.ActionCapture, domain.OperationRequest{
		Amount:    &amount,
		Reference: transactionID,
		Options:   opts,
	})
}

// Void never sends an amount.
func (g *Gateway) Void(ctx context.Context, transactionID string, opts domain.Options) (*domain.GatewayResponse, error) {
	return g.commit(ctx, domain.ActionVoid, domain.OperationRequest{
		Reference: transactionID,
		Options:   opts,
	})
}

func (g *Gateway) Refund(ctx context.Context, amount domain.Money, transactionID string, opts domain.Options) (*domain.GatewayResponse, error) {
	return g.commit(ctx, domain.ActionRefund, domain.OperationRequest{
		Amount:    &amount,
		Reference: transactionID,
		Options:   opts,
	})
}

func (g *Gateway) Store(ctx context.Context, source domain.PaymentSource, opts domain.Options) (*domain.GatewayResponse, error) {
	return g.commit(ctx, domain.ActionStore, domain.OperationRequest{
		Source:  source,
		Options: opts,
	})
}

func (g *Gateway) Unstore(ctx context.Context, cardID string, opts domain.Options) (*domain.GatewayResponse, error) {
	return g.commit(ctx, domain.ActionUnstore, domain.OperationRequest{
		Reference: cardID,
		Options:   opts,
	})
}
