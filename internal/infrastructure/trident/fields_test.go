package trident_test

import (
	"testing"

	"github.com/DanielPopoola/trident-gateway/internal/domain"
	"github.com/DanielPopoola/trident-gateway/internal/infrastructure/trident"
	"github.com/stretchr/testify/assert"
)

func TestFieldMap_FirstWriteWins(t *testing.T) {
	fields := trident.NewFieldMap().
		With("card_id", "first").
		With("card_id", "second")

	v, ok := fields.Get("card_id")
	assert.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, fields.Len())
}

func TestFieldMap_IsImmutable(t *testing.T) {
	base := trident.NewFieldMap().With("a", "1")
	next := base.With("b", "2")

	assert.False(t, base.Has("b"))
	assert.True(t, next.Has("a"))
	assert.True(t, next.Has("b"))
}

func TestFieldMap_WithOptional(t *testing.T) {
	fields := trident.NewFieldMap().
		WithOptional("xid", nil).
		WithOptional("cavv", domain.StrPtr(""))

	assert.False(t, fields.Has("xid"))
	assert.True(t, fields.Has("cavv"))
}

func TestFieldMap_Encode(t *testing.T) {
	fields := trident.NewFieldMap().
		With("transaction_type", "D").
		With("cardholder_street_address", "1 Main St").
		With("client_reference_number", "a&b=c")

	assert.Equal(t,
		"cardholder_street_address=1+Main+St&client_reference_number=a%26b%3Dc&transaction_type=D",
		fields.Encode(),
	)
	assert.Equal(t, "", trident.NewFieldMap().Encode())
}
