package port

import (
	"github.com/govalues/decimal"
	"github.com/hatien/petmart/internal/core/domain"
)

// IPNResult is the normalized outcome of webhook processing. Each adapter
// maps it back to the acknowledgement shape its gateway expects.
type IPNResult string

const (
	IPNSuccess          IPNResult = "success"
	IPNAlreadyProcessed IPNResult = "already-processed"
	IPNOrderNotFound    IPNResult = "order-not-found"
	IPNInvalidSignature IPNResult = "invalid-signature"
	IPNInvalidAmount    IPNResult = "invalid-amount"
	IPNError            IPNResult = "error"
)

// GatewayReturn is the advisory browser-redirect result. Authoritative
// confirmation comes only through VerifyIPN.
type GatewayReturn struct {
	OrderNumber string `json:"orderNumber"`
	Code        string `json:"code"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
}

// GatewayNotification is a verified server-to-server payment notification.
type GatewayNotification struct {
	OrderNumber   string
	Amount        decimal.Decimal
	TransactionID string
	Success       bool
	Code          string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type GatewayAdapter interface {
	Provider() string
	BuildPaymentURL(order *domain.Order, clientIP string) (string, error)
	VerifyReturn(params map[string]string) (*GatewayReturn, error)
	VerifyIPN(params map[string]string) (*GatewayNotification, error)
	Ack(result IPNResult) map[string]any
}

// QRGenerator derives the manual bank-transfer descriptor. Pure: same order
// number and amount always yield the same descriptor.
type QRGenerator interface {
	Generate(orderNumber string, amount decimal.Decimal) *domain.QRPayment
}
