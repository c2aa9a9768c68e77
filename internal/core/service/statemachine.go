package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hatien/petmart/internal/core/domain"
	"go.uber.org/zap"
)

// CancelOrder records the cancellation first, then releases stock as a
// best-effort compensation. A concurrent second cancel fails the transition
// inside the locked closure, so stock is never restored twice.
func (s *Service) CancelOrder(ctx context.Context, id uuid.UUID, actor domain.Actor, reason string) (*domain.Order, error) {
	updated, err := s.repo.UpdateOrderTx(ctx, id, func(o *domain.Order) error {
		if !actor.CanAccessOrder(o) {
			return domain.ErrForbidden
		}
		if !domain.CanCancel(o.Status) {
			return domain.ErrInvalidTransition
		}

		now := time.Now()
		if err := o.ApplyTransition(domain.OrderStatusCancelled, reason, actor.String(), now); err != nil {
			return err
		}
		o.CancelReason = reason
		o.CancelledAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, item := range updated.Items {
		if rerr := s.repo.RestoreStock(ctx, item.ProductID, item.Quantity); rerr != nil {
			s.logger.Error("stock restore on cancellation",
				zap.String("order", updated.Number),
				zap.Uint64("product", item.ProductID),
				zap.Error(rerr))
		}
	}

	return updated, nil
}

// UpdateOrderStatus drives admin fulfilment transitions. Cancellation goes
// through CancelOrder so its compensation always runs.
func (s *Service) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, note string, actor domain.Actor) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) || status == domain.OrderStatusCancelled {
		return nil, domain.ErrBadRequest
	}

	updated, err := s.repo.UpdateOrderTx(ctx, id, func(o *domain.Order) error {
		return o.ApplyTransition(status, note, actor.String(), time.Now())
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
