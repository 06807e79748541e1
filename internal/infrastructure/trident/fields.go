package trident

import (
	"net/url"
	"sort"
	"strings"
)

// Trident request field names
const (
	fieldClientReference  = "client_reference_number"
	fieldMotoECommerceInd = "moto_ecommerce_ind"
	fieldInvoiceNumber    = "invoice_number"
	fieldCardID           = "card_id"
	fieldCardExpDate      = "card_exp_date"
	fieldCardNumber       = "card_number"
	fieldCVV2             = "cvv2"
	fieldStreetAddress    = "cardholder_street_address"
	fieldZip              = "cardholder_zip"
	fieldXID              = "xid"
	fieldCAVV             = "cavv"
	fieldUCAFCollection   = "ucaf_collection_ind"
	fieldUCAFAuthData     = "ucaf_auth_data"
	fieldTransactionID    = "transaction_id"
	fieldProfileID        = "profile_id"
	fieldProfileKey       = "profile_key"
	fieldTransactionType  = "transaction_type"
	// Spelled as the gateway contract spells it.
	fieldAmount = "trasaction_amout"
)

// FieldMap is an immutable set of request fields. A key, once set, keeps its first value.
type FieldMap struct {
	fields map[string]string
}

func NewFieldMap() FieldMap {
	return FieldMap{}
}

// With returns a map that also holds key=value, unless key is already present.
func (m FieldMap) With(key, value string) FieldMap {
	if _, exists := m.fields[key]; exists {
		return m
	}

	next := make(map[string]string, len(m.fields)+1)
	for k, v := range m.fields {
		next[k] = v
	}
	next[key] = value

	return FieldMap{fields: next}
}

// WithOptional is With for values that may be absent. Absent values add nothing.
func (m FieldMap) WithOptional(key string, value *string) FieldMap {
	if value == nil {
		return m
	}
	return m.With(key, *value)
}

func (m FieldMap) Get(key string) (string, bool) {
	v, ok := m.fields[key]
	return v, ok
}

func (m FieldMap) Has(key string) bool {
	_, ok := m.fields[key]
	return ok
}

func (m FieldMap) Len() int {
	return len(m.fields)
}

// Keys returns the field names in sorted order.
func (m FieldMap) Keys() []string {
	keys := make([]string, 0, len(m.fields))
	for k := range m.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode serializes the fields as key=value pairs joined with "&", keys sorted, values query-escaped.
func (m FieldMap) Encode() string {
	var b strings.Builder
	for i, k := range m.Keys() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(m.fields[k]))
	}
	return b.String()
}
