package services

import (
	"github.com/DanielPopoola/trident-gateway/internal/application"
	"github.com/DanielPopoola/trident-gateway/internal/domain"
)

func toMoney(amount, currency string) (domain.Money, error) {
	money, err := domain.NewMoney(amount, currency)
	if err != nil {
		return domain.Money{}, application.NewInvalidInputError(err)
	}
	return money, nil
}

func toSource(in SourceInput) (domain.PaymentSource, error) {
	switch {
	case in.Token != "":
		token, err := domain.NewToken(in.Token)
		if err != nil {
			return nil, application.NewInvalidInputError(err)
		}
		return token, nil
	case in.Card != nil:
		card, err := domain.NewCard(domain.CardInfo{
			Number:           in.Card.Number,
			Month:            in.Card.ExpiryMonth,
			Year:             in.Card.ExpiryYear,
			VerificationCode: in.Card.CVV,
		})
		if err != nil {
			return nil, application.NewInvalidInputError(err)
		}
		return card, nil
	default:
		return nil, application.NewInvalidInputError(domain.NewMissingRequiredFieldError("payment source"))
	}
}

func customerOf(opts domain.Options) string {
	if opts.Customer == nil {
		return ""
	}
	return *opts.Customer
}
