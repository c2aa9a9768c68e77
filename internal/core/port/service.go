package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/hatien/petmart/internal/core/domain"
)

// CreateOrderRequest carries the checkout input. Cart is a snapshot already
// validated by the cart service; prices are frozen from here on.
type CreateOrderRequest struct {
	UserID          uint64
	Cart            domain.CartSnapshot
	ShippingAddress domain.Address
	PaymentMethod   domain.PaymentMethod
}

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID, actor domain.Actor) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64, page, limit int) (*domain.Page[*domain.Order], error)
	CancelOrder(ctx context.Context, id uuid.UUID, actor domain.Actor, reason string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, note string, actor domain.Actor) (*domain.Order, error)

	GenerateQRPayment(ctx context.Context, id uuid.UUID, userID uint64) (*domain.QRPayment, error)
	ConfirmTransferByUser(ctx context.Context, id uuid.UUID, userID uint64) (*domain.Order, error)
	ConfirmPaymentByAdmin(ctx context.Context, id uuid.UUID, adminID uint64, note, bankRef string) (*domain.Order, error)
	ListAwaitingPayment(ctx context.Context, page, limit int) (*domain.Page[*domain.Order], error)

	BuildGatewayPaymentURL(ctx context.Context, id uuid.UUID, userID uint64, provider string, clientIP string) (string, error)
	HandleGatewayReturn(ctx context.Context, provider string, params map[string]string) (*GatewayReturn, error)
	HandleGatewayIPN(ctx context.Context, provider string, params map[string]string) (map[string]any, error)
}
