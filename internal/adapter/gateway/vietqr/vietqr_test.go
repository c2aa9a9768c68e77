package vietqr_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/hatien/petmart/internal/adapter/config"
	"github.com/hatien/petmart/internal/adapter/gateway/vietqr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	g := vietqr.New(&config.Bank{
		BankCode:      "970436",
		AccountNumber: "0123456789",
		AccountName:   "PETMART JSC",
	})

	amount, err := decimal.New(500000, 0)
	require.NoError(t, err)

	qr := g.Generate("ORD1710400000000123", amount)
	assert.Equal(t, "ORD1710400000000123", qr.OrderNumber)
	assert.Equal(t, "ORD1710400000000123", qr.Memo)
	assert.Equal(t, "970436", qr.BankCode)
	assert.Equal(t, "0123456789", qr.AccountNumber)
	assert.Equal(t,
		"https://img.vietqr.io/image/970436-0123456789-compact2.png?accountName=PETMART+JSC&addInfo=ORD1710400000000123&amount=500000",
		qr.ImageURL)

	// regenerating for the same order yields the identical descriptor
	assert.Equal(t, qr, g.Generate("ORD1710400000000123", amount))
}
