package testhelpers

import (
	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/domain"
	"github.com/google/uuid"
)

func DefaultOptions() domain.Options {
	return domain.Options{
		Customer: domain.StrPtr("cust-" + uuid.New().String()),
		OrderID:  domain.StrPtr("order-" + uuid.New().String()),
	}
}

func DefaultCard() *services.CardInput {
	return &services.CardInput{
		Number:      "4111111111111111",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
	}
}

func DefaultPurchaseCommand() services.PurchaseCommand {
	return services.PurchaseCommand{
		Amount:   "50.00",
		Currency: "USD",
		Source:   services.SourceInput{Card: DefaultCard()},
		Options:  DefaultOptions(),
	}
}

func DefaultAuthorizeCommand() services.AuthorizeCommand {
	return services.AuthorizeCommand(DefaultPurchaseCommand())
}

func ApprovedResponse(transactionID string) *domain.GatewayResponse {
	return &domain.GatewayResponse{
		ErrorCode:     domain.StrPtr(domain.ApprovedCode),
		Authorization: domain.StrPtr(transactionID),
		Test:          true,
		Message:       "This transaction has been approved",
	}
}

func DeclinedResponse(code, text string) *domain.GatewayResponse {
	return &domain.GatewayResponse{
		ErrorCode: domain.StrPtr(code),
		Test:      true,
		Message:   text,
	}
}
