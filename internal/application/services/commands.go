package services

import "github.com/DanielPopoola/trident-gateway/internal/domain"

type CardInput struct {
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
}

// SourceInput selects the payment source. Token wins when both are set.
type SourceInput struct {
	Token string
	Card  *CardInput
}

type PurchaseCommand struct {
	Amount   string
	Currency string
	Source   SourceInput
	Options  domain.Options
}

type AuthorizeCommand struct {
	Amount   string
	Currency string
	Source   SourceInput
	Options  domain.Options
}

type CaptureCommand struct {
	TransactionID string
	Amount        string
	Currency      string
	Options       domain.Options
}

type VoidCommand struct {
	TransactionID string
	Options       domain.Options
}

type RefundCommand struct {
	TransactionID string
	Amount        string
	Currency      string
	Options       domain.Options
}

type StoreCommand struct {
	Source  SourceInput
	Options domain.Options
}

type UnstoreCommand struct {
	CardID  string
	Options domain.Options
}
