package vietqr

import (
	"fmt"
	"net/url"

	"github.com/govalues/decimal"
	"github.com/hatien/petmart/internal/adapter/config"
	"github.com/hatien/petmart/internal/core/domain"
)

const imageHost = "https://img.vietqr.io/image"

// Generator renders a scannable bank-transfer descriptor from the fixed
// routing constants plus order number and amount. Stateless: the same order
// always yields the same descriptor.
type Generator struct {
	conf *config.Bank
}

func New(conf *config.Bank) *Generator {
	return &Generator{conf: conf}
}

func (g *Generator) Generate(orderNumber string, amount decimal.Decimal) *domain.QRPayment {
	query := url.Values{}
	query.Set("amount", amount.Trim(0).String())
	query.Set("addInfo", orderNumber)
	query.Set("accountName", g.conf.AccountName)

	image := fmt.Sprintf("%s/%s-%s-compact2.png?%s",
		imageHost, g.conf.BankCode, g.conf.AccountNumber, query.Encode())

	return &domain.QRPayment{
		OrderNumber:   orderNumber,
		Amount:        amount,
		BankCode:      g.conf.BankCode,
		AccountNumber: g.conf.AccountNumber,
		AccountName:   g.conf.AccountName,
		Memo:          orderNumber,
		ImageURL:      image,
	}
}
