package domain

// GatewayAction is one of the operations the gateway understands.
type GatewayAction int

const (
	ActionPurchase GatewayAction = iota
	ActionAuthorize
	ActionCapture
	ActionVoid
	ActionRefund
	ActionStore
	ActionUnstore
)

var actionNames = map[GatewayAction]string{
	ActionPurchase:  "purchase",
	ActionAuthorize: "authorize",
	ActionCapture:   "capture",
	ActionVoid:      "void",
	ActionRefund:    "refund",
	ActionStore:     "store",
	ActionUnstore:   "unstore",
}

// Trident transaction type codes
var transactionTypes = map[GatewayAction]string{
	ActionPurchase:  "D",
	ActionAuthorize: "P",
	ActionCapture:   "S",
	ActionVoid:      "V",
	ActionRefund:    "U",
	ActionStore:     "T",
	ActionUnstore:   "X",
}

func (a GatewayAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// TransactionType returns the gateway code for the action.
func (a GatewayAction) TransactionType() string {
	return transactionTypes[a]
}

// CarriesAmount reports whether an amount is ever sent for the action.
func (a GatewayAction) CarriesAmount() bool {
	return a != ActionVoid
}

// Actions lists every action in declaration order.
func Actions() []GatewayAction {
	return []GatewayAction{
		ActionPurchase,
		ActionAuthorize,
		ActionCapture,
		ActionVoid,
		ActionRefund,
		ActionStore,
		ActionUnstore,
	}
}
