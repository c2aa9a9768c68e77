package vnpay

import (
	"fmt"
	"net/url"
	"time"

	"github.com/govalues/decimal"
	"github.com/hatien/petmart/internal/adapter/config"
	"github.com/hatien/petmart/internal/adapter/gateway/sign"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"go.uber.org/zap"
)

const ProviderName = "vnpay"

const timeLayout = "20060102150405"
const payExpiry = 15 * time.Minute

const (
	fieldSecureHash     = "vnp_SecureHash"
	fieldSecureHashType = "vnp_SecureHashType"
)

// gateway timestamps are expressed in Vietnam local time
var gatewayZone = time.FixedZone("GMT+7", 7*60*60)

var hundred = decimal.MustNew(100, 0)

// Adapter implements the VNPay redirect protocol: parameters sorted by key,
// serialized as an unescaped query string, HMAC-SHA512 hex signature.
type Adapter struct {
	conf   *config.VNPay
	logger *zap.Logger
	now    func() time.Time
}

func New(conf *config.VNPay, logger *zap.Logger) (*Adapter, error) {
	return &Adapter{
		conf:   conf,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (a *Adapter) Provider() string {
	return ProviderName
}

func (a *Adapter) BuildPaymentURL(order *domain.Order, clientIP string) (string, error) {
	amount, err := minorUnits(order.Total)
	if err != nil {
		return "", fmt.Errorf("vnpay amount for order %s: %w", order.Number, err)
	}

	create := a.now().In(gatewayZone)
	expire := create.Add(payExpiry)

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    a.conf.TmnCode,
		"vnp_Locale":     "vn",
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     order.Number,
		"vnp_OrderInfo":  "Thanh toan don hang " + order.Number,
		"vnp_OrderType":  "other",
		"vnp_Amount":     amount,
		"vnp_ReturnUrl":  a.conf.ReturnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": create.Format(timeLayout),
		"vnp_ExpireDate": expire.Format(timeLayout),
	}

	// signature covers the sorted, unescaped parameter set
	data := sign.SortedQuery(params)
	hash := sign.HMACSHA512Hex(a.conf.HashSecret, data)

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	query.Set(fieldSecureHash, hash)

	return a.conf.PayURL + "?" + query.Encode(), nil
}

func (a *Adapter) VerifyReturn(params map[string]string) (*port.GatewayReturn, error) {
	if err := a.verify(params); err != nil {
		return nil, err
	}

	code := params["vnp_ResponseCode"]
	return &port.GatewayReturn{
		OrderNumber: params["vnp_TxnRef"],
		Code:        code,
		Success:     code == "00",
		Message:     messageFor(code),
	}, nil
}

func (a *Adapter) VerifyIPN(params map[string]string) (*port.GatewayNotification, error) {
	if err := a.verify(params); err != nil {
		return nil, err
	}

	amount, err := majorUnits(params["vnp_Amount"])
	if err != nil {
		return nil, domain.ErrBadRequest
	}

	code := params["vnp_ResponseCode"]
	return &port.GatewayNotification{
		OrderNumber:   params["vnp_TxnRef"],
		Amount:        amount,
		TransactionID: params["vnp_TransactionNo"],
		Success:       code == "00",
		Code:          code,
	}, nil
}

func (a *Adapter) Ack(result port.IPNResult) map[string]any {
	code, message := "99", "Unknown error"
	switch result {
	case port.IPNSuccess:
		code, message = "00", "Confirm Success"
	case port.IPNAlreadyProcessed:
		code, message = "02", "Order already confirmed"
	case port.IPNOrderNotFound:
		code, message = "01", "Order not found"
	case port.IPNInvalidAmount:
		code, message = "04", "Invalid amount"
	case port.IPNInvalidSignature:
		code, message = "97", "Invalid signature"
	}
	return map[string]any{"RspCode": code, "Message": message}
}

// verify recomputes the hash over every field except the hash fields.
func (a *Adapter) verify(params map[string]string) error {
	received := params[fieldSecureHash]
	if received == "" {
		return domain.ErrInvalidSignature
	}

	data := sign.SortedQuery(params, fieldSecureHash, fieldSecureHashType)
	expected := sign.HMACSHA512Hex(a.conf.HashSecret, data)
	if !sign.Equal(received, expected) {
		a.logger.Warn("signature mismatch", zap.String("txnRef", params["vnp_TxnRef"]))
		return domain.ErrInvalidSignature
	}
	return nil
}

// minorUnits renders the amount scaled x100, per the gateway convention.
func minorUnits(total decimal.Decimal) (string, error) {
	scaled, err := total.Mul(hundred)
	if err != nil {
		return "", err
	}
	return scaled.Trim(0).String(), nil
}

func majorUnits(raw string) (decimal.Decimal, error) {
	scaled, err := decimal.Parse(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return scaled.Quo(hundred)
}

func messageFor(code string) string {
	switch code {
	case "00":
		return "payment successful"
	case "24":
		return "transaction cancelled by customer"
	default:
		return "payment failed"
	}
}
