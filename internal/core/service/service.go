package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"github.com/hatien/petmart/internal/core/utils"
	"go.uber.org/zap"
)

// Service reconciles orders, payments and stock across the three payment
// channels. It is the only component that mutates order state, and it always
// does so through the repository's transactional closure.
type Service struct {
	repo     port.Repository
	cart     port.CartService
	qr       port.QRGenerator
	gateways map[string]port.GatewayAdapter
	logger   *zap.Logger
}

func NewService(repo port.Repository, cart port.CartService, qr port.QRGenerator,
	adapters []port.GatewayAdapter, logger *zap.Logger) (*Service, error) {
	gateways := make(map[string]port.GatewayAdapter, len(adapters))
	for _, a := range adapters {
		gateways[a.Provider()] = a
	}

	return &Service{
		repo:     repo,
		cart:     cart,
		qr:       qr,
		gateways: gateways,
		logger:   logger,
	}, nil
}

func (s *Service) CreateOrder(ctx context.Context, req port.CreateOrderRequest) (*domain.Order, error) {
	if len(req.Cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !domain.ValidPaymentMethod(req.PaymentMethod) {
		return nil, domain.ErrBadRequest
	}

	subtotal, err := itemsSubtotal(req.Cart.Items)
	if err != nil {
		s.logger.Error("subtotal", zap.Error(err))
		return nil, domain.ErrInternal
	}
	fee := ShippingFee(req.ShippingAddress.City)

	total, err := subtotal.Add(fee)
	if err != nil {
		s.logger.Error("order total", zap.Error(err))
		return nil, domain.ErrInternal
	}
	total, err = total.Sub(req.Cart.Discount)
	if err != nil {
		s.logger.Error("order total", zap.Error(err))
		return nil, domain.ErrInternal
	}

	now := time.Now()
	actor := domain.Actor{ID: req.UserID, Role: domain.RoleUser}

	order := &domain.Order{
		ID:              uuid.New(),
		Number:          utils.NewOrderNumber(),
		UserID:          req.UserID,
		Items:           req.Cart.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		Status:          domain.OrderStatusPending,
		StatusHistory: []domain.StatusEntry{{
			Status:    domain.OrderStatusPending,
			Timestamp: now,
			Note:      "order created",
			Actor:     actor.String(),
		}},
		Subtotal:    subtotal,
		ShippingFee: fee,
		Discount:    req.Cart.Discount,
		Total:       total,
		CreatedAt:   now,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	if err := s.reserveStock(ctx, created, actor); err != nil {
		return nil, err
	}

	// cart survives until payment confirmation for non-COD orders, so an
	// abandoned order can be resumed without re-adding items
	if req.PaymentMethod == domain.PaymentMethodCOD {
		if err := s.cart.Clear(ctx, req.UserID); err != nil {
			s.logger.Error("cart clear after COD checkout",
				zap.String("order", created.Number), zap.Error(err))
		}
	}

	return created, nil
}

// reserveStock decrements every item exactly once. On failure the already
// reserved items are released and the fresh order is cancelled.
func (s *Service) reserveStock(ctx context.Context, order *domain.Order, actor domain.Actor) error {
	for i, item := range order.Items {
		err := s.repo.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err == nil {
			continue
		}

		for _, done := range order.Items[:i] {
			if rerr := s.repo.RestoreStock(ctx, done.ProductID, done.Quantity); rerr != nil {
				s.logger.Error("stock restore after failed reservation",
					zap.Uint64("product", done.ProductID), zap.Error(rerr))
			}
		}

		_, cerr := s.repo.UpdateOrderTx(ctx, order.ID, func(o *domain.Order) error {
			now := time.Now()
			if terr := o.ApplyTransition(domain.OrderStatusCancelled, "insufficient stock", actor.String(), now); terr != nil {
				return terr
			}
			o.CancelReason = "insufficient stock"
			o.CancelledAt = &now
			return nil
		})
		if cerr != nil {
			s.logger.Error("cancel after failed reservation",
				zap.String("order", order.Number), zap.Error(cerr))
		}

		return err
	}
	return nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID, actor domain.Actor) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessOrder(order) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID uint64, page, limit int) (*domain.Page[*domain.Order], error) {
	if page < 1 || limit < 1 {
		return nil, domain.ErrBadRequest
	}

	list, total, err := s.repo.ListOrdersByUser(ctx, userID, page, limit)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, err
	}
	return domain.NewPage(list, total, page, limit), nil
}

func itemsSubtotal(items []domain.OrderItem) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		qty, err := decimal.New(int64(item.Quantity), 0)
		if err != nil {
			return decimal.Decimal{}, err
		}
		line, err := item.UnitPrice.Mul(qty)
		if err != nil {
			return decimal.Decimal{}, err
		}
		subtotal, err = subtotal.Add(line)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	return subtotal, nil
}

func (s *Service) gateway(provider string) (port.GatewayAdapter, error) {
	gw, ok := s.gateways[provider]
	if !ok {
		return nil, domain.ErrUnknownProvider
	}
	return gw, nil
}

// clearCartAfterPayment is best-effort: payment truth has already been
// recorded and must not be rolled back over cart hygiene.
func (s *Service) clearCartAfterPayment(ctx context.Context, order *domain.Order) {
	if err := s.cart.Clear(ctx, order.UserID); err != nil {
		s.logger.Error("cart clear after payment confirmation",
			zap.String("order", order.Number), zap.Error(err))
	}
}
