package trident

import "github.com/DanielPopoola/trident-gateway/internal/domain"

// step adds the fields it owns to the map. Steps never fail and never overwrite.
type step func(FieldMap, domain.OperationRequest) FieldMap

var pipelines = map[domain.GatewayAction][]step{
	domain.ActionPurchase:  {addCustomer, addInvoice, addPaymentSource, addAddress, addThreeDSecure},
	domain.ActionAuthorize: {addCustomer, addInvoice, addPaymentSource, addAddress, addThreeDSecure},
	domain.ActionCapture:   {addTransactionID, addCustomer, addInvoice, addThreeDSecure},
	domain.ActionVoid:      {addTransactionID, addCustomer},
	domain.ActionRefund:    {addTransactionID, addCustomer},
	domain.ActionStore:     {addCustomer, addPaymentSource},
	domain.ActionUnstore:   {addCardID, addCustomer},
}

// BuildFields assembles the fields for action from req.
func BuildFields(action domain.GatewayAction, req domain.OperationRequest) (FieldMap, error) {
	if err := checkRequired(action, req); err != nil {
		return FieldMap{}, err
	}

	fields := NewFieldMap()
	for _, apply := range pipelines[action] {
		fields = apply(fields, req)
	}
	return fields, nil
}

func checkRequired(action domain.GatewayAction, req domain.OperationRequest) error {
	if req.Options.Customer == nil {
		return &domain.MissingOptionError{Option: "customer"}
	}

	switch action {
	case domain.ActionCapture, domain.ActionVoid, domain.ActionRefund:
		if req.Reference == "" {
			return domain.NewMissingRequiredFieldError("transaction_id")
		}
	case domain.ActionUnstore:
		if req.Reference == "" {
			return domain.NewMissingRequiredFieldError("card_id")
		}
	case domain.ActionPurchase, domain.ActionAuthorize, domain.ActionStore:
		if req.Source == nil {
			return domain.NewMissingRequiredFieldError("payment source")
		}
		return checkSource(req.Source)
	}
	return nil
}

// checkSource applies the constructor rules to sources built as literals.
func checkSource(source domain.PaymentSource) error {
	var err error
	switch src := source.(type) {
	case domain.Token:
		_, err = domain.NewToken(src.ID)
	case domain.Card:
		_, err = domain.NewCard(src.Info)
	}
	return err
}

func addCustomer(fields FieldMap, req domain.OperationRequest) FieldMap {
	return fields.
		WithOptional(fieldClientReference, req.Options.Customer).
		WithOptional(fieldMotoECommerceInd, req.Options.MotoECommerceInd)
}

func addInvoice(fields FieldMap, req domain.OperationRequest) FieldMap {
	return fields.WithOptional(fieldInvoiceNumber, req.Options.OrderID)
}

func addPaymentSource(fields FieldMap, req domain.OperationRequest) FieldMap {
	switch src := req.Source.(type) {
	case domain.Token:
		return fields.
			With(fieldCardID, src.ID).
			WithOptional(fieldCardExpDate, req.Options.ExpirationDate)
	case domain.Card:
		fields = fields.
			With(fieldCardNumber, src.Info.Number).
			With(fieldCardExpDate, expiry(src.Info))
		if src.Info.VerificationCode == "" {
			return fields
		}
		return fields.With(fieldCVV2, src.Info.VerificationCode)
	default:
		return fields
	}
}

// expiry concatenates month and year exactly as supplied.
func expiry(card domain.CardInfo) string {
	return card.Month + card.Year
}

func addAddress(fields FieldMap, req domain.OperationRequest) FieldMap {
	address := req.Options.BillingAddress
	if address == nil {
		address = req.Options.Address
	}
	if address == nil {
		return fields
	}

	return fields.
		With(fieldStreetAddress, address.Address1).
		With(fieldZip, address.PostalCode)
}

func addThreeDSecure(fields FieldMap, req domain.OperationRequest) FieldMap {
	tds := req.Options.ThreeDSecure
	return fields.
		WithOptional(fieldXID, tds.XID).
		WithOptional(fieldCAVV, tds.CAVV).
		WithOptional(fieldUCAFCollection, tds.UCAFCollectionIndicator).
		WithOptional(fieldUCAFAuthData, tds.UCAFAuthData)
}

func addTransactionID(fields FieldMap, req domain.OperationRequest) FieldMap {
	return fields.With(fieldTransactionID, req.Reference)
}

func addCardID(fields FieldMap, req domain.OperationRequest) FieldMap {
	return fields.With(fieldCardID, req.Reference)
}
