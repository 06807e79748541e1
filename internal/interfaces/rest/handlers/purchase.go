package handlers

import (
	"net/http"

	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest"
)

// HandlePurchase authorizes and captures a payment in one call
// @Summary      Purchase
// @Description  Authorize and capture in one call. Declines are returned with success=false inside data.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      rest.PaymentRequest  true  "Amount, payment source and options"
// @Success      200      {object}  rest.APIResponse     "Normalized gateway result"
// @Failure      400      {object}  rest.APIResponse     "Invalid request or missing option"
// @Failure      502      {object}  rest.APIResponse     "Gateway unreachable"
// @Router       /v1/purchases [post]
func (h *Handlers) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req rest.PaymentRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	resp, err := h.service.Purchase(r.Context(), services.PurchaseCommand{
		Amount:   req.Amount,
		Currency: req.Currency,
		Source:   rest.ToSource(req.Token, req.Card),
		Options:  rest.ToOptions(req.Options),
	})
	h.respond(w, resp, err)
}
