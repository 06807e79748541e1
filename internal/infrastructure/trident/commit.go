package trident

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/DanielPopoola/trident-gateway/internal/domain"
)

const (
	TestURL = "https://cert.merchante-solutions.com/mes-api/tridentApi"
	LiveURL = "https://api.merchante-solutions.com/mes-api/tridentApi"

	contentType = "application/x-www-form-urlencoded"
	acceptTypes = "text/html, image/gif, image/jpeg, *; q=.2, */*; q=.2"
)

// Commit outcomes reported to the Observer
const (
	OutcomeApproved         = "approved"
	OutcomeDeclined         = "declined"
	OutcomeTransportFailure = "transport_failure"
)

func requestHeaders() http.Header {
	h := make(http.Header, 2)
	h.Set("Content-Type", contentType)
	h.Set("Accept", acceptTypes)
	return h
}

// finalize adds the amount, credentials and transaction type. Every insert is
// insert-if-absent, so a key the builder already set keeps the builder's value.
func (g *Gateway) finalize(fields FieldMap, action domain.GatewayAction, req domain.OperationRequest) FieldMap {
	if action.CarriesAmount() && req.Amount != nil && !req.Amount.IsZero() {
		fields = fields.With(fieldAmount, req.Amount.String())
	}

	login, password := g.cfg.Login, g.cfg.Password
	if creds := req.Options.Credentials; creds != nil {
		login, password = creds.Login, creds.Password
	}

	return fields.
		With(fieldProfileID, login).
		With(fieldProfileKey, password).
		With(fieldTransactionType, action.TransactionType())
}

func (g *Gateway) endpoint() string {
	if g.cfg.Production {
		return g.cfg.liveURL()
	}
	return g.cfg.testURL()
}

// commit builds, sends and normalizes one gateway call.
func (g *Gateway) commit(ctx context.Context, action domain.GatewayAction, req domain.OperationRequest) (*domain.GatewayResponse, error) {
	fields, err := BuildFields(action, req)
	if err != nil {
		return nil, err
	}
	fields = g.finalize(fields, action, req)

	ctx, span := g.tracer.Start(ctx, "trident."+action.String(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("trident.transaction_type", action.TransactionType()),
			attribute.Bool("trident.production", g.cfg.Production),
		),
	)
	defer span.End()

	start := time.Now()
	raw, err := g.transport.Post(ctx, g.endpoint(), fields.Encode(), requestHeaders())
	elapsed := time.Since(start)
	if err == nil && raw == nil {
		err = errEmptyResponse
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, domain.RequestFailedMessage)
		g.observer.ObserveCommit(action, OutcomeTransportFailure, elapsed)
		g.logger.ErrorContext(ctx, "trident request failed",
			"action", action.String(),
			"duration", elapsed,
			"error", err,
		)
		return nil, &domain.TransportFailure{Err: err}
	}

	resp := normalize(raw.Body, !g.cfg.Production)

	outcome := OutcomeApproved
	if !resp.Success() {
		outcome = OutcomeDeclined
		span.SetAttributes(attribute.String("trident.error_code", *resp.ErrorCode))
	}
	g.observer.ObserveCommit(action, outcome, elapsed)

	g.logger.InfoContext(ctx, "trident request completed",
		"action", action.String(),
		"outcome", outcome,
		"duration", elapsed,
	)

	return resp, nil
}
