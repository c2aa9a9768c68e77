package domain

import "github.com/govalues/decimal"

// QRPayment is a regenerable bank-transfer descriptor for the manual path.
// Same order and amount always produce the same descriptor.
type QRPayment struct {
	OrderNumber   string          `json:"orderNumber"`
	Amount        decimal.Decimal `json:"amount"`
	BankCode      string          `json:"bankCode"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Memo          string          `json:"memo"`
	ImageURL      string          `json:"imageUrl"`
}
