package application

import (
	"context"

	"github.com/DanielPopoola/trident-gateway/internal/domain"
)

// PaymentGateway is the port for the external card gateway.
type PaymentGateway interface {
	Purchase(ctx context.Context, amount domain.Money, source domain.PaymentSource, opts domain.Options) (*domain.GatewayResponse, error)
	Authorize(ctx context.Context, amount domain.Money, source domain.PaymentSource, opts domain.Options) (*domain.GatewayResponse, error)
	Capture(ctx context.Context, transactionID string, amount domain.Money, opts domain.Options) (*domain.GatewayResponse, error)
	Void(ctx context.Context, transactionID string, opts domain.Options) (*domain.GatewayResponse, error)
	Refund(ctx context.Context, amount domain.Money, transactionID string, opts domain.Options) (*domain.GatewayResponse, error)
	Store(ctx context.Context, source domain.PaymentSource, opts domain.Options) (*domain.GatewayResponse, error)
	Unstore(ctx context.Context, cardID string, opts domain.Options) (*domain.GatewayResponse, error)
}
