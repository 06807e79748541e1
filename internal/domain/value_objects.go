package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount as the caller wrote it, plus an optional currency code.
type Money struct {
	raw      string
	value    decimal.Decimal
	Currency string
}

// NewMoney validates amount as a non-negative decimal. The text is kept verbatim
// for the wire; nothing is rounded or converted to minor units.
func NewMoney(amount string, currency string) (Money, error) {
	if amount == "" {
		return Money{}, NewMissingRequiredFieldError("amount")
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, NewInvalidAmountError(amount, err)
	}
	if value.IsNegative() {
		return Money{}, NewInvalidAmountError(amount, errors.New("amount cannot be negative"))
	}
	if currency != "" && len(currency) != 3 {
		return Money{}, NewInvalidAmountError(amount, errors.New("currency must be a 3 letter code"))
	}
	return Money{raw: amount, value: value, Currency: currency}, nil
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(amount string, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string {
	return m.raw
}

func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) IsZero() bool {
	return m.raw == ""
}

// CardInfo holds raw card details. Month and year are kept as supplied.
type CardInfo struct {
	Number           string
	Month            string
	Year             string
	VerificationCode string
}

// AddressInfo is a postal address as given by the caller.
type AddressInfo struct {
	Address1   string
	City       string
	Region     string
	Country    string
	PostalCode string
}

// Credentials are the Trident profile id and key.
type Credentials struct {
	Login    string
	Password string
}
