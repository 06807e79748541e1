package handlers

import (
	"net/http"

	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/domain"
	"github.com/DanielPopoola/trident-gateway/internal/interfaces/rest"
)

// HandleStore stores a card at the gateway
// @Summary      Store card
// @Description  Store a card. The returned authorization is the card id.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        request  body      rest.StoreCardRequest  true  "Card and options"
// @Success      200      {object}  rest.APIResponse       "Normalized gateway result"
// @Failure      400      {object}  rest.APIResponse       "Invalid request or missing option"
// @Failure      502      {object}  rest.APIResponse       "Gateway unreachable"
// @Router       /v1/cards [post]
func (h *Handlers) HandleStore(w http.ResponseWriter, r *http.Request) {
	var req rest.StoreCardRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	resp, err := h.service.Store(r.Context(), services.StoreCommand{
		Source:  rest.ToSource("", req.Card),
		Options: rest.ToOptions(req.Options),
	})
	h.respond(w, resp, err)
}

// HandleUnstore removes a stored card
// @Summary      Unstore card
// @Description  Remove a stored card.
// @Tags         cards
// @Produce      json
// @Param        card_id   path      string            true   "Stored card id"
// @Param        customer  query     string            false  "Client reference"
// @Success      200       {object}  rest.APIResponse  "Normalized gateway result"
// @Failure      400       {object}  rest.APIResponse  "Invalid request or missing option"
// @Failure      502       {object}  rest.APIResponse  "Gateway unreachable"
// @Router       /v1/cards/{card_id} [delete]
func (h *Handlers) HandleUnstore(w http.ResponseWriter, r *http.Request) {
	var opts domain.Options
	if r.URL.Query().Has("customer") {
		opts.Customer = domain.StrPtr(r.URL.Query().Get("customer"))
	}

	resp, err := h.service.Unstore(r.Context(), services.UnstoreCommand{
		CardID:  r.PathValue("card_id"),
		Options: opts,
	})
	h.respond(w, resp, err)
}
