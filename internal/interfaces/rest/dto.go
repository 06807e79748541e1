package rest

type CardRequest struct {
	Number      string `json:"number" validate:"required,numeric,min=12,max=19" example:"4111111111111111"`
	ExpiryMonth string `json:"expiry_month" validate:"required,numeric,max=2" example:"12"`
	ExpiryYear  string `json:"expiry_year" validate:"required,numeric,max=4" example:"2030"`
	CVV         string `json:"cvv,omitempty" validate:"omitempty,numeric,min=3,max=4" example:"123"`
}

type AddressRequest struct {
	Address1 string `json:"address1,omitempty" example:"1 Main St"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
	Zip      string `json:"zip,omitempty" example:"12345"`
}

type ThreeDSecureRequest struct {
	XID                     *string `json:"xid,omitempty"`
	CAVV                    *string `json:"cavv,omitempty"`
	UCAFCollectionIndicator *string `json:"ucaf_collection_ind,omitempty"`
	UCAFAuthData            *string `json:"ucaf_auth_data,omitempty"`
}

// OptionsRequest mirrors domain.Options. Customer is checked by the gateway, not here.
type OptionsRequest struct {
	Customer         *string              `json:"customer,omitempty" example:"cust-1"`
	OrderID          *string              `json:"order_id,omitempty" example:"order-1"`
	MotoECommerceInd *string              `json:"moto_ecommerce_ind,omitempty"`
	ExpirationDate   *string              `json:"expiration_date,omitempty" example:"1230"`
	BillingAddress   *AddressRequest      `json:"billing_address,omitempty"`
	Address          *AddressRequest      `json:"address,omitempty"`
	ThreeDSecure     *ThreeDSecureRequest `json:"three_d_secure,omitempty"`
}

// PaymentRequest is the body of purchase and authorize. Either token or card is required.
type PaymentRequest struct {
	Amount   string         `json:"amount" validate:"required" example:"10.00"`
	Currency string         `json:"currency,omitempty" validate:"omitempty,len=3" example:"USD"`
	Token    string         `json:"token,omitempty"`
	Card     *CardRequest   `json:"card,omitempty"`
	Options  OptionsRequest `json:"options"`
}

type CaptureRequest struct {
	TransactionID string         `json:"transaction_id" validate:"required" example:"T1"`
	Amount        string         `json:"amount" validate:"required" example:"10.00"`
	Currency      string         `json:"currency,omitempty" validate:"omitempty,len=3" example:"USD"`
	Options       OptionsRequest `json:"options"`
}

type VoidRequest struct {
	TransactionID string         `json:"transaction_id" validate:"required" example:"T1"`
	Options       OptionsRequest `json:"options"`
}

type RefundRequest struct {
	TransactionID string         `json:"transaction_id" validate:"required" example:"T1"`
	Amount        string         `json:"amount" validate:"required" example:"10.00"`
	Currency      string         `json:"currency,omitempty" validate:"omitempty,len=3" example:"USD"`
	Options       OptionsRequest `json:"options"`
}

type StoreCardRequest struct {
	Card    *CardRequest   `json:"card" validate:"required"`
	Options OptionsRequest `json:"options"`
}

type AVSResult struct {
	Code *string `json:"code"`
}

// GatewayResult is the JSON form of domain.GatewayResponse.
type GatewayResult struct {
	Success       bool      `json:"success"`
	Authorization *string   `json:"authorization"`
	ErrorCode     *string   `json:"error_code"`
	CVVResult     *string   `json:"cvv_result"`
	AVSResult     AVSResult `json:"avs_result"`
	Test          bool      `json:"test"`
	Message       string    `json:"message"`
}
