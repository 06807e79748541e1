package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/trident-gateway/internal/application"
	"github.com/DanielPopoola/trident-gateway/internal/domain"
)

type PaymentService struct {
	gateway application.PaymentGateway
	logger  *slog.Logger
}

func NewPaymentService(gateway application.PaymentGateway, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// Purchase authorizes and captures in one call
func (s *PaymentService) Purchase(ctx context.Context, cmd PurchaseCommand) (*domain.GatewayResponse, error) {
	money, err := toMoney(cmd.Amount, cmd.Currency)
	if err != nil {
		return nil, err
	}
	source, err := toSource(cmd.Source)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.Purchase(ctx, money, source, cmd.Options)
	return s.finish(ctx, domain.ActionPurchase, cmd.Options, resp, err)
}

// Authorize reserves funds without capturing them
func (s *PaymentService) Authorize(ctx context.Context, cmd AuthorizeCommand) (*domain.GatewayResponse, error) {
	money, err := toMoney(cmd.Amount, cmd.Currency)
	if err != nil {
		return nil, err
	}
	source, err := toSource(cmd.Source)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.Authorize(ctx, money, source, cmd.Options)
	return s.finish(ctx, domain.ActionAuthorize, cmd.Options, resp, err)
}

// Capture settles a previous authorization
func (s *PaymentService) Capture(ctx context.Context, cmd CaptureCommand) (*domain.GatewayResponse, error) {
	if cmd.TransactionID == "" {
		return nil, application.NewInvalidInputError(domain.NewMissingRequiredFieldError("transaction_id"))
	}
	money, err := toMoney(cmd.Amount, cmd.Currency)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.Capture(ctx, cmd.TransactionID, money, cmd.Options)
	return s.finish(ctx, domain.ActionCapture, cmd.Options, resp, err)
}

func (s *PaymentService) Void(ctx context.Context, cmd VoidCommand) (*domain.GatewayResponse, error) {
	if cmd.TransactionID == "" {
		return nil, application.NewInvalidInputError(domain.NewMissingRequiredFieldError("transaction_id"))
	}

	resp, err := s.gateway.Void(ctx, cmd.TransactionID, cmd.Options)
	return s.finish(ctx, domain.ActionVoid, cmd.Options, resp, err)
}

func (s *PaymentService) Refund(ctx context.Context, cmd RefundCommand) (*domain.GatewayResponse, error) {
	if cmd.TransactionID == "" {
		return nil, application.NewInvalidInputError(domain.NewMissingRequiredFieldError("transaction_id"))
	}
	money, err := toMoney(cmd.Amount, cmd.Currency)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.Refund(ctx, money, cmd.TransactionID, cmd.Options)
	return s.finish(ctx, domain.ActionRefund, cmd.Options, resp, err)
}

// Store tokenizes a card at the gateway
func (s *PaymentService) Store(ctx context.Context, cmd StoreCommand) (*domain.GatewayResponse, error) {
	source, err := toSource(cmd.Source)
	if err != nil {
		return nil, err
	}

	resp, err := s.gateway.Store(ctx, source, cmd.Options)
	return s.finish(ctx, domain.ActionStore, cmd.Options, resp, err)
}

// Unstore removes a stored card
func (s *PaymentService) Unstore(ctx context.Context, cmd UnstoreCommand) (*domain.GatewayResponse, error) {
	if cmd.CardID == "" {
		return nil, application.NewInvalidInputError(domain.NewMissingRequiredFieldError("card_id"))
	}

	resp, err := s.gateway.Unstore(ctx, cmd.CardID, cmd.Options)
	return s.finish(ctx, domain.ActionUnstore, cmd.Options, resp, err)
}

func (s *PaymentService) finish(ctx context.Context, action domain.GatewayAction, opts domain.Options, resp *domain.GatewayResponse, err error) (*domain.GatewayResponse, error) {
	if err != nil {
		s.logger.ErrorContext(ctx, "gateway operation failed",
			"action", action.String(),
			"customer", customerOf(opts),
			"error", err,
		)
		return nil, err
	}

	if !resp.Success() {
		s.logger.WarnContext(ctx, "gateway declined operation",
			"action", action.String(),
			"customer", customerOf(opts),
			"error_code", *resp.ErrorCode,
			"message", resp.Message,
		)
		return resp, nil
	}

	s.logger.InfoContext(ctx, "gateway operation approved",
		"action", action.String(),
		"customer", customerOf(opts),
	)
	return resp, nil
}
