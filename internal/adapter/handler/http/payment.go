package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hatien/petmart/internal/adapter/gateway/momo"
	"github.com/hatien/petmart/internal/adapter/gateway/vnpay"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ph *PaymentHandler) QRPayment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	qr, err := ph.service.GenerateQRPayment(ctx, id, getAuthPayload(ctx).UserID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, qr)
}

func (ph *PaymentHandler) ConfirmTransfer(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := ph.service.ConfirmTransferByUser(ctx, id, getAuthPayload(ctx).UserID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, orderResponse(order))
}

type paymentURLRequest struct {
	Provider string `json:"provider" binding:"required"`
}

func (ph *PaymentHandler) PaymentURL(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := paymentURLRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	url, err := ph.service.BuildGatewayPaymentURL(ctx, id,
		getAuthPayload(ctx).UserID, req.Provider, ctx.ClientIP())
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{"paymentUrl": url})
}

type adminConfirmRequest struct {
	Note    string `json:"note"`
	BankRef string `json:"bankRef"`
}

func (ph *PaymentHandler) AdminConfirmPayment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := adminConfirmRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := ph.service.ConfirmPaymentByAdmin(ctx, id, getAuthPayload(ctx).UserID, req.Note, req.BankRef)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, orderResponse(order))
}

func (ph *PaymentHandler) AwaitingPayment(ctx *gin.Context) {
	page, limit, err := pagination(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	result, err := ph.service.ListAwaitingPayment(ctx, page, limit)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, pageResponse(result))
}

// VNPayReturn handles the browser redirect; the result is advisory only.
func (ph *PaymentHandler) VNPayReturn(ctx *gin.Context) {
	result, err := ph.service.HandleGatewayReturn(ctx, vnpay.ProviderName, queryParams(ctx))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, result)
}

// VNPayIPN always answers in the gateway's {RspCode, Message} shape.
func (ph *PaymentHandler) VNPayIPN(ctx *gin.Context) {
	ack, err := ph.service.HandleGatewayIPN(ctx, vnpay.ProviderName, queryParams(ctx))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ack)
}

func (ph *PaymentHandler) MoMoReturn(ctx *gin.Context) {
	params, err := jsonParams(ctx)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	result, err := ph.service.HandleGatewayReturn(ctx, momo.ProviderName, params)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, result)
}

func (ph *PaymentHandler) MoMoIPN(ctx *gin.Context) {
	params, err := jsonParams(ctx)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	ack, err := ph.service.HandleGatewayIPN(ctx, momo.ProviderName, params)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ack)
}

func queryParams(ctx *gin.Context) map[string]string {
	params := make(map[string]string)
	for k, v := range ctx.Request.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// jsonParams flattens a JSON body into strings; numbers keep their wire
// form so signatures computed over them still match.
func jsonParams(ctx *gin.Context) (map[string]string, error) {
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.UseNumber()

	raw := make(map[string]any)
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}

	params := make(map[string]string, len(raw))
	for k, v := range raw {
		switch value := v.(type) {
		case string:
			params[k] = value
		case json.Number:
			params[k] = value.String()
		case nil:
			params[k] = ""
		default:
			params[k] = fmt.Sprintf("%v", value)
		}
	}
	return params, nil
}
