package handlers

import (
	"net/http"

	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest"
)

// HandleCapture settles a previous authorization
// @Summary      Capture
// @Description  Settle a previous authorization for the given amount.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      rest.CaptureRequest  true  "Transaction id, amount and options"
// @Success      200      {object}  rest.APIResponse     "Normalized gateway result"
// @Failure      400      {object}  rest.APIResponse     "Invalid request or missing option"
// @Failure      502      {object}  rest.APIResponse     "Gateway unreachable"
// @Router       /v1/captures [post]
func (h *Handlers) HandleCapture(w http.ResponseWriter, r *http.Request) {
	var req rest.CaptureRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	resp, err := h.service.Capture(r.Context(), services.CaptureCommand{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Options:       rest.ToOptions(req.Options),
	})
	h.respond(w, resp, err)
}
