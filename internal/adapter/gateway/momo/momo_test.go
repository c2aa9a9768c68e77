package momo

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/hatien/petmart/internal/adapter/config"
	"github.com/hatien/petmart/internal/adapter/gateway/sign"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := New(&config.MoMo{
		PartnerCode: "MOMOPETMART",
		AccessKey:   "accesskey",
		SecretKey:   "secretkey",
		PayURL:      "https://test-payment.momo.vn/gw_payment/payment/qr",
		ReturnURL:   "https://petmart.example/api/payment/momo/return",
		NotifyURL:   "https://petmart.example/api/payment/momo/ipn",
	}, zap.NewNop())
	require.NoError(t, err)
	a.now = func() time.Time {
		return time.UnixMilli(1710400000000)
	}
	return a
}

func TestBuildPaymentURL(t *testing.T) {
	a := newTestAdapter(t)
	amount, _ := decimal.New(500000, 0)
	order := &domain.Order{Number: "ORD42", Total: amount}

	raw, err := a.BuildPaymentURL(order, "203.0.113.7")
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, "MOMOPETMART", query.Get("partnerCode"))
	assert.Equal(t, "500000", query.Get("amount"))
	assert.Equal(t, "ORD42", query.Get("orderId"))
	assert.Equal(t, "ORD42_1710400000000", query.Get("requestId"))
	assert.Equal(t, "captureWallet", query.Get("requestType"))

	// signature covers the fixed pipe template, in declared field order
	raw = strings.Join([]string{
		"MOMOPETMART", "accesskey", "ORD42_1710400000000", "500000", "ORD42",
		"petmart order ORD42",
		"https://petmart.example/api/payment/momo/return",
		"https://petmart.example/api/payment/momo/ipn",
		"",
	}, "|")
	assert.True(t, sign.Equal(query.Get("signature"), sign.HMACSHA256Hex("secretkey", raw)))
}

func signedNotification(a *Adapter, params map[string]string) map[string]string {
	raw := strings.Join([]string{
		params["partnerCode"],
		a.conf.AccessKey,
		params["requestId"],
		params["amount"],
		params["orderId"],
		params["orderInfo"],
		params["transId"],
		params["resultCode"],
		params["message"],
		params["extraData"],
	}, "|")
	params["signature"] = sign.HMACSHA256Hex(a.conf.SecretKey, raw)
	return params
}

func TestVerifyIPN(t *testing.T) {
	a := newTestAdapter(t)

	params := signedNotification(a, map[string]string{
		"partnerCode": "MOMOPETMART",
		"requestId":   "ORD42_1710400000000",
		"amount":      "500000",
		"orderId":     "ORD42",
		"orderInfo":   "petmart order ORD42",
		"transId":     "2147483647",
		"resultCode":  "0",
		"message":     "Success",
		"extraData":   "",
	})

	note, err := a.VerifyIPN(params)
	require.NoError(t, err)
	assert.True(t, note.Success)
	assert.Equal(t, "ORD42", note.OrderNumber)
	assert.Equal(t, "2147483647", note.TransactionID)

	want, _ := decimal.New(500000, 0)
	assert.Zero(t, note.Amount.Cmp(want))
}

func TestVerifyIPN_Failure(t *testing.T) {
	a := newTestAdapter(t)

	params := signedNotification(a, map[string]string{
		"partnerCode": "MOMOPETMART",
		"requestId":   "ORD42_1710400000000",
		"amount":      "500000",
		"orderId":     "ORD42",
		"orderInfo":   "petmart order ORD42",
		"transId":     "0",
		"resultCode":  "49",
		"message":     "transaction cancelled",
		"extraData":   "",
	})

	note, err := a.VerifyIPN(params)
	require.NoError(t, err)
	assert.False(t, note.Success)
	assert.Equal(t, "49", note.Code)
}

func TestVerifyIPN_Tampered(t *testing.T) {
	a := newTestAdapter(t)

	params := signedNotification(a, map[string]string{
		"partnerCode": "MOMOPETMART",
		"requestId":   "ORD42_1710400000000",
		"amount":      "500000",
		"orderId":     "ORD42",
		"resultCode":  "0",
		"extraData":   "",
	})
	params["amount"] = "1"

	_, err := a.VerifyIPN(params)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifyReturn(t *testing.T) {
	a := newTestAdapter(t)

	params := signedNotification(a, map[string]string{
		"partnerCode": "MOMOPETMART",
		"requestId":   "ORD42_1710400000000",
		"amount":      "500000",
		"orderId":     "ORD42",
		"resultCode":  "0",
		"message":     "Success",
		"extraData":   "",
	})

	ret, err := a.VerifyReturn(params)
	require.NoError(t, err)
	assert.True(t, ret.Success)
	assert.Equal(t, "Success", ret.Message)
}

func TestAck(t *testing.T) {
	a := newTestAdapter(t)

	tests := []struct {
		result port.IPNResult
		code   int
	}{
		{port.IPNSuccess, 0},
		{port.IPNAlreadyProcessed, 0},
		{port.IPNOrderNotFound, 1},
		{port.IPNInvalidAmount, 4},
		{port.IPNInvalidSignature, 3},
		{port.IPNError, 99},
	}
	for _, tc := range tests {
		ack := a.Ack(tc.result)
		assert.Equal(t, tc.code, ack["resultCode"], "result %v", tc.result)
		assert.Equal(t, "MOMOPETMART", ack["partnerCode"])
	}
}
