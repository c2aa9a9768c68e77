package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"go.uber.org/zap"
)

func (s *Service) GenerateQRPayment(ctx context.Context, id uuid.UUID, userID uint64) (*domain.QRPayment, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if order.PaymentMethod != domain.PaymentMethodBankTransfer {
		return nil, domain.ErrWrongPaymentMethod
	}

	return s.qr.Generate(order.Number, order.Total), nil
}

// ConfirmTransferByUser flags the order as awaiting human verification.
// It never marks the payment as PAID.
func (s *Service) ConfirmTransferByUser(ctx context.Context, id uuid.UUID, userID uint64) (*domain.Order, error) {
	updated, err := s.repo.UpdateOrderTx(ctx, id, func(o *domain.Order) error {
		if o.UserID != userID {
			return domain.ErrForbidden
		}
		if o.PaymentMethod != domain.PaymentMethodBankTransfer {
			return domain.ErrWrongPaymentMethod
		}
		// terminal orders freeze the payment axis
		if o.Status == domain.OrderStatusCancelled || o.Status == domain.OrderStatusRefunded {
			return domain.ErrInvalidTransition
		}
		if o.PaymentStatus != domain.PaymentStatusPending {
			return domain.ErrAlreadyProcessed
		}

		actor := domain.Actor{ID: userID, Role: domain.RoleUser}
		o.PaymentStatus = domain.PaymentStatusAwaitingVerification
		o.AppendNote("bank transfer reported by customer", actor.String(), time.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ConfirmPaymentByAdmin verifies a reported bank transfer. Only orders the
// customer has flagged can be confirmed, so an untouched order cannot be
// marked paid prematurely. bankRef is the statement reference the admin
// matched the transfer against; the order number stands in when omitted.
func (s *Service) ConfirmPaymentByAdmin(ctx context.Context, id uuid.UUID, adminID uint64, note, bankRef string) (*domain.Order, error) {
	updated, err := s.repo.UpdateOrderTx(ctx, id, func(o *domain.Order) error {
		if o.PaymentMethod != domain.PaymentMethodBankTransfer {
			return domain.ErrWrongPaymentMethod
		}
		if o.PaymentStatus != domain.PaymentStatusAwaitingVerification {
			return domain.ErrNotAwaitingVerification
		}

		now := time.Now()
		actor := domain.Actor{ID: adminID, Role: domain.RoleAdmin}

		if note == "" {
			note = "bank transfer verified"
		}
		if bankRef == "" {
			bankRef = o.Number
		}
		if err := o.ApplyTransition(domain.OrderStatusConfirmed, note, actor.String(), now); err != nil {
			return err
		}
		o.PaymentStatus = domain.PaymentStatusPaid
		o.PaymentDetails.BankRef = bankRef
		o.PaymentDetails.PaidAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.clearCartAfterPayment(ctx, updated)

	return updated, nil
}

func (s *Service) ListAwaitingPayment(ctx context.Context, page, limit int) (*domain.Page[*domain.Order], error) {
	if page < 1 || limit < 1 {
		return nil, domain.ErrBadRequest
	}

	list, total, err := s.repo.ListOrdersAwaitingVerification(ctx, page, limit)
	if err != nil {
		s.logger.Error("List orders awaiting verification", zap.Error(err))
		return nil, err
	}
	return domain.NewPage(list, total, page, limit), nil
}

func (s *Service) BuildGatewayPaymentURL(ctx context.Context, id uuid.UUID, userID uint64, provider string, clientIP string) (string, error) {
	gw, err := s.gateway(provider)
	if err != nil {
		return "", err
	}

	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return "", err
	}
	if order.UserID != userID {
		return "", domain.ErrForbidden
	}
	if order.PaymentMethod != domain.PaymentMethodEWallet {
		return "", domain.ErrWrongPaymentMethod
	}
	if order.PaymentStatus == domain.PaymentStatusPaid {
		return "", domain.ErrAlreadyProcessed
	}

	return gw.BuildPaymentURL(order, clientIP)
}

// HandleGatewayReturn handles the browser redirect. Advisory only: nothing
// is mutated, the IPN is the authoritative confirmation.
func (s *Service) HandleGatewayReturn(ctx context.Context, provider string, params map[string]string) (*port.GatewayReturn, error) {
	gw, err := s.gateway(provider)
	if err != nil {
		return nil, err
	}

	result, err := gw.VerifyReturn(params)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.ReadOrderByNumber(ctx, result.OrderNumber); err != nil {
		return nil, err
	}

	return result, nil
}

// HandleGatewayIPN processes the authoritative server-to-server
// notification. It always answers in the gateway's expected shape so the
// gateway stops retrying; only an unknown provider surfaces as an error.
func (s *Service) HandleGatewayIPN(ctx context.Context, provider string, params map[string]string) (map[string]any, error) {
	gw, err := s.gateway(provider)
	if err != nil {
		return nil, err
	}

	notification, err := gw.VerifyIPN(params)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			return gw.Ack(port.IPNInvalidSignature), nil
		}
		return gw.Ack(port.IPNError), nil
	}

	order, err := s.repo.ReadOrderByNumber(ctx, notification.OrderNumber)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return gw.Ack(port.IPNOrderNotFound), nil
		}
		s.logger.Error("read order for IPN", zap.Error(err))
		return gw.Ack(port.IPNError), nil
	}

	if notification.Amount.Cmp(order.Total) != 0 {
		s.logger.Warn("IPN amount mismatch",
			zap.String("order", order.Number),
			zap.String("notified", notification.Amount.String()))
		return gw.Ack(port.IPNInvalidAmount), nil
	}

	if !notification.Success {
		// failed or user-cancelled payment: record the outcome, keep the
		// order waiting for another attempt
		_, uerr := s.repo.UpdateOrderTx(ctx, order.ID, func(o *domain.Order) error {
			if o.PaymentStatus == domain.PaymentStatusPaid {
				return domain.ErrAlreadyProcessed
			}
			o.AppendNote("gateway payment failed, code "+notification.Code,
				"gateway:"+provider, time.Now())
			return nil
		})
		if uerr != nil && !errors.Is(uerr, domain.ErrAlreadyProcessed) {
			s.logger.Error("record failed payment", zap.Error(uerr))
		}
		return gw.Ack(port.IPNSuccess), nil
	}

	updated, err := s.repo.UpdateOrderTx(ctx, order.ID, func(o *domain.Order) error {
		if o.PaymentStatus == domain.PaymentStatusPaid {
			return domain.ErrAlreadyProcessed
		}

		now := time.Now()
		if err := o.ApplyTransition(domain.OrderStatusConfirmed,
			"payment confirmed via "+provider, "gateway:"+provider, now); err != nil {
			return err
		}
		o.PaymentStatus = domain.PaymentStatusPaid
		o.PaymentDetails.Provider = provider
		o.PaymentDetails.TransactionID = notification.TransactionID
		o.PaymentDetails.PaidAt = &now
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			// duplicated delivery after a slow first success
			return gw.Ack(port.IPNAlreadyProcessed), nil
		}
		s.logger.Error("apply PAID transition", zap.Error(err))
		return gw.Ack(port.IPNError), nil
	}

	s.clearCartAfterPayment(ctx, updated)

	return gw.Ack(port.IPNSuccess), nil
}
