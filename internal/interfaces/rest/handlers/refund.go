package handlers

import (
	"net/http"

	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest"
)

// HandleRefund returns funds for a settled transaction
// @Summary      Refund
// @Description  Return funds for a settled transaction.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      rest.RefundRequest  true  "Transaction id, amount and options"
// @Success      200      {object}  rest.APIResponse    "Normalized gateway result"
// @Failure      400      {object}  rest.APIResponse    "Invalid request or missing option"
// @Failure      502      {object}  rest.APIResponse    "Gateway unreachable"
// @Router       /v1/refunds [post]
func (h *Handlers) HandleRefund(w http.ResponseWriter, r *http.Request) {
	var req rest.RefundRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	resp, err := h.service.Refund(r.Context(), services.RefundCommand{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Options:       rest.ToOptions(req.Options),
	})
	h.respond(w, resp, err)
}
