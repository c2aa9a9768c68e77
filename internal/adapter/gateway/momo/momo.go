package momo

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"github.com/hatien/petmart/internal/adapter/config"
	"github.com/hatien/petmart/internal/adapter/gateway/sign"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"go.uber.org/zap"
)

const ProviderName = "momo"

const requestType = "captureWallet"

// Adapter implements the MoMo wallet protocol. Unlike VNPay, the signature
// covers a fixed pipe-delimited field template; field order is part of the
// contract and never sorted.
type Adapter struct {
	conf   *config.MoMo
	logger *zap.Logger
	now    func() time.Time
}

func New(conf *config.MoMo, logger *zap.Logger) (*Adapter, error) {
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
	requestID := order.Number + "_" + strconv.FormatInt(a.now().UnixMilli(), 10)
	amount := order.Total.Trim(0).String()
	orderInfo := "petmart order " + order.Number

	// request template: partnerCode|accessKey|requestId|amount|orderId|
	// orderInfo|returnUrl|notifyUrl|extraData
	raw := strings.Join([]string{
		a.conf.PartnerCode,
		a.conf.AccessKey,
		requestID,
		amount,
		order.Number,
		orderInfo,
		a.conf.ReturnURL,
		a.conf.NotifyURL,
		"",
	}, "|")
	signature := sign.HMACSHA256Hex(a.conf.SecretKey, raw)

	query := url.Values{}
	query.Set("partnerCode", a.conf.PartnerCode)
	query.Set("accessKey", a.conf.AccessKey)
	query.Set("requestId", requestID)
	query.Set("amount", amount)
	query.Set("orderId", order.Number)
	query.Set("orderInfo", orderInfo)
	query.Set("returnUrl", a.conf.ReturnURL)
	query.Set("notifyUrl", a.conf.NotifyURL)
	query.Set("extraData", "")
	query.Set("requestType", requestType)
	query.Set("signature", signature)

	return a.conf.PayURL + "?" + query.Encode(), nil
}

func (a *Adapter) VerifyReturn(params map[string]string) (*port.GatewayReturn, error) {
	if err := a.verify(params); err != nil {
		return nil, err
	}

	code := params["resultCode"]
	return &port.GatewayReturn{
		OrderNumber: params["orderId"],
		Code:        code,
		Success:     code == "0",
		Message:     params["message"],
	}, nil
}

func (a *Adapter) VerifyIPN(params map[string]string) (*port.GatewayNotification, error) {
	if err := a.verify(params); err != nil {
		return nil, err
	}

	amount, err := decimal.Parse(params["amount"])
	if err != nil {
		return nil, domain.ErrBadRequest
	}

	code := params["resultCode"]
	return &port.GatewayNotification{
		OrderNumber:   params["orderId"],
		Amount:        amount,
		TransactionID: params["transId"],
		Success:       code == "0",
		Code:          code,
	}, nil
}

func (a *Adapter) Ack(result port.IPNResult) map[string]any {
	code, message := 99, "unknown error"
	switch result {
	case port.IPNSuccess:
		code, message = 0, "confirm success"
	case port.IPNAlreadyProcessed:
		code, message = 0, "order already confirmed"
	case port.IPNOrderNotFound:
		code, message = 1, "order not found"
	case port.IPNInvalidAmount:
		code, message = 4, "invalid amount"
	case port.IPNInvalidSignature:
		code, message = 3, "invalid signature"
	}
	return map[string]any{
		"partnerCode": a.conf.PartnerCode,
		"resultCode":  code,
		"message":     message,
	}
}

// verify rebuilds the notification template. accessKey is not echoed by the
// gateway and comes from merchant config.
func (a *Adapter) verify(params map[string]string) error {
	received := params["signature"]
	if received == "" {
		return domain.ErrInvalidSignature
	}

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
	expected := sign.HMACSHA256Hex(a.conf.SecretKey, raw)
	if !sign.Equal(received, expected) {
		a.logger.Warn("signature mismatch", zap.String("orderId", params["orderId"]))
		return domain.ErrInvalidSignature
	}
	return nil
}
