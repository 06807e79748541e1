package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/trident-gateway/internal/application"
	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/domain"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest"
	"github.com/go-playground/validator"
)

// PaymentService is implemented by services.PaymentService.
type PaymentService interface {
	Purchase(ctx context.Context, cmd services.PurchaseCommand) (*domain.GatewayResponse, error)
	Authorize(ctx context.Context, cmd services.AuthorizeCommand) (*domain.GatewayResponse, error)
	Capture(ctx context.Context, cmd services.CaptureCommand) (*domain.GatewayResponse, error)
	Void(ctx context.Context, cmd services.VoidCommand) (*domain.GatewayResponse, error)
	Refund(ctx context.Context, cmd services.RefundCommand) (*domain.GatewayResponse, error)
	Store(ctx context.Context, cmd services.StoreCommand) (*domain.GatewayResponse, error)
	Unstore(ctx context.Context, cmd services.UnstoreCommand) (*domain.GatewayResponse, error)
}

type Handlers struct {
	service  PaymentService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandlers(service PaymentService, logger *slog.Logger) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/purchases", h.HandlePurchase)
	mux.HandleFunc("POST /v1/authorizations", h.HandleAuthorize)
	mux.HandleFunc("POST /v1/captures", h.HandleCapture)
	mux.HandleFunc("POST /v1/voids", h.HandleVoid)
	mux.HandleFunc("POST /v1/refunds", h.HandleRefund)
	mux.HandleFunc("POST /v1/cards", h.HandleStore)
	mux.HandleFunc("DELETE /v1/cards/{card_id}", h.HandleUnstore)
	mux.HandleFunc("GET /healthz", h.HandleHealth)
}

// decode reads a JSON body into dst and runs its struct validation.
func (h *Handlers) decode(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return application.NewValidationError(err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return application.NewValidationError(err)
	}

	if err := h.validate.Struct(dst); err != nil {
		return application.NewValidationError(err)
	}
	return nil
}

func (h *Handlers) respond(w http.ResponseWriter, resp *domain.GatewayResponse, err error) {
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, rest.ToGatewayResult(resp))
}

// HandleHealth reports liveness
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
