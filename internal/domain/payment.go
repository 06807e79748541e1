// Package domain holds the call-scoped values exchanged with the payment gateway.
package domain

// PaymentSource is either a stored card token or full card details.
// The set of implementations is closed: Token and Card.
type PaymentSource interface {
	paymentSource()
}

// Token references a card previously stored at the gateway.
type Token struct {
	ID string
}

// Card carries full card details.
type Card struct {
	Info CardInfo
}

func (Token) paymentSource() {}
func (Card) paymentSource()  {}

func NewToken(id string) (Token, error) {
	if id == "" {
		return Token{}, NewInvalidPaymentSourceError("token id is empty")
	}
	return Token{ID: id}, nil
}

func NewCard(info CardInfo) (Card, error) {
	switch {
	case info.Number == "":
		return Card{}, NewInvalidPaymentSourceError("card number is empty")
	case info.Month == "" || info.Year == "":
		return Card{}, NewInvalidPaymentSourceError("card expiry is incomplete")
	}
	return Card{Info: info}, nil
}

// ThreeDSecure carries optional 3-D Secure authentication values.
type ThreeDSecure struct {
	XID                     *string
	CAVV                    *string
	UCAFCollectionIndicator *string
	UCAFAuthData            *string
}

// Options are the optional named parameters of a gateway operation.
// Customer is required by every operation; nil means absent, "" is a valid value.
type Options struct {
	Customer         *string
	OrderID          *string
	MotoECommerceInd *string
	ExpirationDate   *string
	BillingAddress   *AddressInfo
	Address          *AddressInfo
	ThreeDSecure     ThreeDSecure
	Credentials      *Credentials
}

// OperationRequest is everything one gateway call is built from.
type OperationRequest struct {
	Amount *Money
	Source PaymentSource
	// Reference is the transaction id for capture, void and refund, and the card id for unstore.
	Reference string
	Options   Options
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
