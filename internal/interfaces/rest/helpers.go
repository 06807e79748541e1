package rest

import (
	"github.com/DanielPopoola/trident-gateway/internal/application/services"
	"github.com/DanielPopoola/trident-gateway/internal/domain"
)

func ToGatewayResult(resp *domain.GatewayResponse) GatewayResult {
	return GatewayResult{
		Success:       resp.Success(),
		Authorization: resp.Authorization,
		ErrorCode:     resp.ErrorCode,
		CVVResult:     resp.CVVResult,
		AVSResult:     AVSResult{Code: resp.AVSResult.Code},
		Test:          resp.Test,
		Message:       resp.Message,
	}
}

func ToOptions(req OptionsRequest) domain.Options {
	opts := domain.Options{
		Customer:         req.Customer,
		OrderID:          req.OrderID,
		MotoECommerceInd: req.MotoECommerceInd,
		ExpirationDate:   req.ExpirationDate,
		BillingAddress:   toAddress(req.BillingAddress),
		Address:          toAddress(req.Address),
	}

	if tds := req.ThreeDSecure; tds != nil {
		opts.ThreeDSecure = domain.ThreeDSecure{
			XID:                     tds.XID,
			CAVV:                    tds.CAVV,
			UCAFCollectionIndicator: tds.UCAFCollectionIndicator,
			UCAFAuthData:            tds.UCAFAuthData,
		}
	}

	return opts
}

func ToSource(token string, card *CardRequest) services.SourceInput {
	src := services.SourceInput{Token: token}
	if card != nil {
		src.Card = &services.CardInput{
			Number:      card.Number,
			ExpiryMonth: card.ExpiryMonth,
			ExpiryYear:  card.ExpiryYear,
			CVV:         card.CVV,
		}
	}
	return src
}

func toAddress(a *AddressRequest) *domain.AddressInfo {
	if a == nil {
		return nil
	}
	return &domain.AddressInfo{
		Address1:   a.Address1,
		City:       a.City,
		Region:     a.Region,
		Country:    a.Country,
		PostalCode: a.Zip,
	}
}
