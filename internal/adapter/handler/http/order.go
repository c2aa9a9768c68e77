package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
	cart    port.CartService
}

func NewOrderHandler(service port.Service, cart port.CartService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
		cart:    cart,
	}, nil
}

type checkoutRequest struct {
	ShippingAddress domain.Address `json:"shippingAddress" binding:"required"`
	PaymentMethod   string         `json:"paymentMethod" binding:"required"`
}

func (oh *OrderHandler) Checkout(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := checkoutRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	snapshot, err := oh.cart.Get(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.CreateOrder(ctx, port.CreateOrderRequest{
		UserID:          userID,
		Cart:            *snapshot,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, orderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	page, limit, err := pagination(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	result, err := oh.service.ListOrdersByUser(ctx, userID, page, limit)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, pageResponse(result))
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.GetOrder(ctx, id, getActor(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderResponse(order))
}

type cancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := cancelRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.CancelOrder(ctx, id, getActor(ctx), req.Reason)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderResponse(order))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (oh *OrderHandler) UpdateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := updateStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, id,
		domain.OrderStatus(req.Status), req.Note, getActor(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, orderResponse(order))
}

type orderResp struct {
	ID              uuid.UUID             `json:"id"`
	Number          string                `json:"orderNumber"`
	Items           []domain.OrderItem    `json:"items"`
	ShippingAddress domain.Address        `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	PaymentStatus   string                `json:"paymentStatus"`
	Status          string                `json:"status"`
	StatusHistory   []domain.StatusEntry  `json:"statusHistory"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	ShippingFee     decimal.Decimal       `json:"shippingFee"`
	Discount        decimal.Decimal       `json:"discount"`
	Total           decimal.Decimal       `json:"total"`
	PaymentDetails  domain.PaymentDetails `json:"paymentDetails"`
	CancelReason    string                `json:"cancelReason,omitempty"`
	CancelledAt     *time.Time            `json:"cancelledAt,omitempty"`
	DeliveredAt     *time.Time            `json:"deliveredAt,omitempty"`
	CompletedAt     *time.Time            `json:"completedAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

func orderResponse(o *domain.Order) orderResp {
	return orderResp{
		ID:              o.ID,
		Number:          o.Number,
		Items:           o.Items,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		Status:          string(o.Status),
		StatusHistory:   o.StatusHistory,
		Subtotal:        o.Subtotal,
		ShippingFee:     o.ShippingFee,
		Discount:        o.Discount,
		Total:           o.Total,
		PaymentDetails:  o.PaymentDetails,
		CancelReason:    o.CancelReason,
		CancelledAt:     o.CancelledAt,
		DeliveredAt:     o.DeliveredAt,
		CompletedAt:     o.CompletedAt,
		CreatedAt:       o.CreatedAt,
	}
}

type pageResp struct {
	Data       []orderResp `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

func pageResponse(p *domain.Page[*domain.Order]) pageResp {
	data := make([]orderResp, 0, len(p.Data))
	for _, o := range p.Data {
		data = append(data, orderResponse(o))
	}
	return pageResp{
		Data:       data,
		Total:      p.Total,
		Page:       p.Page,
		TotalPages: p.TotalPages,
	}
}
