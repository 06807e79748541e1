package handlers

import (
	"net/http"

	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest"
)

// HandleVoid cancels an unsettled transaction
// @Summary      Void
// @Description  Cancel an unsettled transaction. No amount is sent.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      rest.VoidRequest  true  "Transaction id and options"
// @Success      200      {object}  rest.APIResponse  "Normalized gateway result"
// @Failure      400      {object}  rest.APIResponse  "Invalid request or missing option"
// @Failure      502      {object}  rest.APIResponse  "Gateway unreachable"
// @Router       /v1/voids [post]
func (h *Handlers) HandleVoid(w http.ResponseWriter, r *http.Request) {
	var req rest.VoidRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	resp, err := h.service.Void(r.Context(), services.VoidCommand{
		TransactionID: req.TransactionID,
		Options:       rest.ToOptions(req.Options),
	})
	h.respond(w, resp, err)
}
