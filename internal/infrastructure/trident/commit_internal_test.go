package trident

import (
	"testing"

	"github.com/DanielPopoola/trident-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFinalize_InsertIfAbsent(t *testing.T) {
	g := NewGateway(nil, Config{Login: "cfg-login", Password: "cfg-pass"})
	amount := domain.MustMoney("500", "")
	req := domain.OperationRequest{Amount: &amount}

	t.Run("adds amount credentials and type", func(t *testing.T) {
		fields := g.finalize(NewFieldMap(), domain.ActionPurchase, req)

		assert.Equal(t,
			"profile_id=cfg-login&profile_key=cfg-pass&transaction_type=D&trasaction_amout=500",
			fields.Encode(),
		)
	})

	t.Run("existing keys keep their value", func(t *testing.T) {
		pre := NewFieldMap().
			With(fieldAmount, "1").
			With(fieldProfileID, "builder-login").
			With(fieldTransactionType, "Z")

		fields := g.finalize(pre, domain.ActionPurchase, req)

		amountValue, _ := fields.Get(fieldAmount)
		login, _ := fields.Get(fieldProfileID)
		txType, _ := fields.Get(fieldTransactionType)
		assert.Equal(t, "1", amountValue)
		assert.Equal(t, "builder-login", login)
		assert.Equal(t, "Z", txType)
	})

	t.Run("void drops the amount", func(t *testing.T) {
		fields := g.finalize(NewFieldMap(), domain.ActionVoid, req)

		assert.False(t, fields.Has(fieldAmount))
		assert.Equal(t, 3, fields.Len())
	})

	t.Run("no amount supplied", func(t *testing.T) {
		fields := g.finalize(NewFieldMap(), domain.ActionCapture, domain.OperationRequest{})

		assert.False(t, fields.Has(fieldAmount))
	})

	t.Run("zero money is not an amount", func(t *testing.T) {
		var empty domain.Money
		fields := g.finalize(NewFieldMap(), domain.ActionRefund, domain.OperationRequest{Amount: &empty})

		assert.False(t, fields.Has(fieldAmount))
	})
}

func TestNormalize(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		resp := normalize(map[string]string{
			"error_code":     "000",
			"transaction_id": "T1",
			"cvv2_result":    "M",
			"avs_result":     "Y",
		}, true)

		assert.True(t, resp.Success())
		assert.Equal(t, "T1", *resp.Authorization)
		assert.Equal(t, "M", *resp.CVVResult)
		assert.Equal(t, "Y", *resp.AVSResult.Code)
		assert.Equal(t, approvedMessage, resp.Message)
		assert.True(t, resp.Test)
	})

	t.Run("absent fields stay nil", func(t *testing.T) {
		resp := normalize(map[string]string{}, false)

		assert.Nil(t, resp.ErrorCode)
		assert.Nil(t, resp.Authorization)
		assert.Nil(t, resp.CVVResult)
		assert.Nil(t, resp.AVSResult.Code)
		assert.False(t, resp.Test)
		assert.True(t, resp.Success())
	})

	t.Run("declined without text", func(t *testing.T) {
		resp := normalize(map[string]string{"error_code": "014"}, true)

		assert.False(t, resp.Success())
		assert.Empty(t, resp.Message)
	})
}
