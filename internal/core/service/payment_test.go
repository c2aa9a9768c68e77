package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bankTransferOrder(t *testing.T, status domain.PaymentStatus) *domain.Order {
	t.Helper()
	return &domain.Order{
		ID:            uuid.New(),
		Number:        "ORD1710400000000123",
		UserID:        42,
		PaymentMethod: domain.PaymentMethodBankTransfer,
		PaymentStatus: status,
		Status:        domain.OrderStatusPending,
		Total:         dec(t, 500000),
	}
}

func TestGenerateQRPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("owner gets a descriptor", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusPending)
		qr := &domain.QRPayment{OrderNumber: order.Number, Amount: order.Total}

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
		m.qr.EXPECT().Generate(order.Number, order.Total).Return(qr)

		got, err := svc.GenerateQRPayment(ctx, order.ID, 42)
		require.NoError(t, err)
		assert.Equal(t, qr, got)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusPending)

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := svc.GenerateQRPayment(ctx, order.ID, 7)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("COD order has no QR", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusPending)
		order.PaymentMethod = domain.PaymentMethodCOD

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := svc.GenerateQRPayment(ctx, order.ID, 42)
		assert.ErrorIs(t, err, domain.ErrWrongPaymentMethod)
	})
}

func TestConfirmTransferByUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		order      func(t *testing.T) *domain.Order
		userID     uint64
		wantErr    error
		wantStatus domain.PaymentStatus
	}{
		{
			name:       "pending payment moves to awaiting verification",
			order:      func(t *testing.T) *domain.Order { return bankTransferOrder(t, domain.PaymentStatusPending) },
			userID:     42,
			wantStatus: domain.PaymentStatusAwaitingVerification,
		},
		{
			name:    "stranger cannot report",
			order:   func(t *testing.T) *domain.Order { return bankTransferOrder(t, domain.PaymentStatusPending) },
			userID:  7,
			wantErr: domain.ErrForbidden,
		},
		{
			name: "wrong payment method",
			order: func(t *testing.T) *domain.Order {
				o := bankTransferOrder(t, domain.PaymentStatusPending)
				o.PaymentMethod = domain.PaymentMethodEWallet
				return o
			},
			userID:  42,
			wantErr: domain.ErrWrongPaymentMethod,
		},
		{
			name: "duplicate report",
			order: func(t *testing.T) *domain.Order {
				return bankTransferOrder(t, domain.PaymentStatusAwaitingVerification)
			},
			userID:  42,
			wantErr: domain.ErrAlreadyProcessed,
		},
		{
			name:    "already paid",
			order:   func(t *testing.T) *domain.Order { return bankTransferOrder(t, domain.PaymentStatusPaid) },
			userID:  42,
			wantErr: domain.ErrAlreadyProcessed,
		},
		{
			name: "cancelled order freezes payment state",
			order: func(t *testing.T) *domain.Order {
				o := bankTransferOrder(t, domain.PaymentStatusPending)
				o.Status = domain.OrderStatusCancelled
				return o
			},
			userID:  42,
			wantErr: domain.ErrInvalidTransition,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t)
			order := tc.order(t)
			expectTx(m, order)

			updated, err := svc.ConfirmTransferByUser(ctx, order.ID, tc.userID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, updated.PaymentStatus)
			// reporting never confirms the order itself
			assert.Equal(t, domain.OrderStatusPending, updated.Status)
			require.Len(t, updated.StatusHistory, 1)
			assert.Equal(t, "bank transfer reported by customer", updated.StatusHistory[0].Note)
		})
	}
}

func TestConfirmPaymentByAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("verified transfer marks the order paid and clears the cart", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusAwaitingVerification)

		expectTx(m, order)
		m.cart.EXPECT().Clear(gomock.Any(), uint64(42)).Return(nil)

		updated, err := svc.ConfirmPaymentByAdmin(ctx, order.ID, 1, "", "")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, updated.PaymentStatus)
		assert.Equal(t, domain.OrderStatusConfirmed, updated.Status)
		assert.Equal(t, updated.Number, updated.PaymentDetails.BankRef)
		assert.NotNil(t, updated.PaymentDetails.PaidAt)
		require.Len(t, updated.StatusHistory, 1)
		assert.Equal(t, "bank transfer verified", updated.StatusHistory[0].Note)
		assert.Equal(t, "admin:1", updated.StatusHistory[0].Actor)
	})

	t.Run("cannot confirm before the customer reports", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusPending)

		expectTx(m, order)

		_, err := svc.ConfirmPaymentByAdmin(ctx, order.ID, 1, "", "")
		assert.ErrorIs(t, err, domain.ErrNotAwaitingVerification)
		assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	})

	t.Run("wrong payment method", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusAwaitingVerification)
		order.PaymentMethod = domain.PaymentMethodCOD

		expectTx(m, order)

		_, err := svc.ConfirmPaymentByAdmin(ctx, order.ID, 1, "", "")
		assert.ErrorIs(t, err, domain.ErrWrongPaymentMethod)
	})

	t.Run("custom note is recorded", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusAwaitingVerification)

		expectTx(m, order)
		m.cart.EXPECT().Clear(gomock.Any(), uint64(42)).Return(nil)

		updated, err := svc.ConfirmPaymentByAdmin(ctx, order.ID, 1, "matched statement line 7", "")
		require.NoError(t, err)
		assert.Equal(t, "matched statement line 7", updated.StatusHistory[0].Note)
	})

	t.Run("statement reference lands in the payment details", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusAwaitingVerification)

		expectTx(m, order)
		m.cart.EXPECT().Clear(gomock.Any(), uint64(42)).Return(nil)

		updated, err := svc.ConfirmPaymentByAdmin(ctx, order.ID, 1, "", "FT24075012345")
		require.NoError(t, err)
		assert.Equal(t, "FT24075012345", updated.PaymentDetails.BankRef)
	})
}

func TestListAwaitingPayment(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	orders := []*domain.Order{bankTransferOrder(t, domain.PaymentStatusAwaitingVerification)}
	m.repo.EXPECT().ListOrdersAwaitingVerification(gomock.Any(), 1, 10).
		Return(orders, int64(1), nil)

	page, err := svc.ListAwaitingPayment(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.TotalPages)

	_, err = svc.ListAwaitingPayment(ctx, 1, 0)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func eWalletOrder(t *testing.T, status domain.PaymentStatus) *domain.Order {
	t.Helper()
	order := bankTransferOrder(t, status)
	order.PaymentMethod = domain.PaymentMethodEWallet
	return order
}

func TestBuildGatewayPaymentURL(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to the adapter", func(t *testing.T) {
		svc, m := newTestService(t)
		order := eWalletOrder(t, domain.PaymentStatusPending)

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
		m.gw.EXPECT().BuildPaymentURL(order, "203.0.113.7").
			Return("https://sandbox.vnpayment.vn/pay?x=1", nil)

		url, err := svc.BuildGatewayPaymentURL(ctx, order.ID, 42, testProvider, "203.0.113.7")
		require.NoError(t, err)
		assert.Equal(t, "https://sandbox.vnpayment.vn/pay?x=1", url)
	})

	t.Run("unknown provider", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.BuildGatewayPaymentURL(ctx, uuid.New(), 42, "zalopay", "203.0.113.7")
		assert.ErrorIs(t, err, domain.ErrUnknownProvider)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc, m := newTestService(t)
		order := eWalletOrder(t, domain.PaymentStatusPending)

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := svc.BuildGatewayPaymentURL(ctx, order.ID, 7, testProvider, "203.0.113.7")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("bank transfer order has no gateway URL", func(t *testing.T) {
		svc, m := newTestService(t)
		order := bankTransferOrder(t, domain.PaymentStatusPending)

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := svc.BuildGatewayPaymentURL(ctx, order.ID, 42, testProvider, "203.0.113.7")
		assert.ErrorIs(t, err, domain.ErrWrongPaymentMethod)
	})

	t.Run("paid order cannot be paid again", func(t *testing.T) {
		svc, m := newTestService(t)
		order := eWalletOrder(t, domain.PaymentStatusPaid)

		m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)

		_, err := svc.BuildGatewayPaymentURL(ctx, order.ID, 42, testProvider, "203.0.113.7")
		assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	})
}

func TestHandleGatewayReturn(t *testing.T) {
	ctx := context.Background()
	params := map[string]string{"vnp_TxnRef": "ORD1"}

	t.Run("verified return is advisory only", func(t *testing.T) {
		svc, m := newTestService(t)
		result := &port.GatewayReturn{OrderNumber: "ORD1", Code: "00", Success: true}

		m.gw.EXPECT().VerifyReturn(params).Return(result, nil)
		m.repo.EXPECT().ReadOrderByNumber(gomock.Any(), "ORD1").
			Return(&domain.Order{Number: "ORD1"}, nil)

		got, err := svc.HandleGatewayReturn(ctx, testProvider, params)
		require.NoError(t, err)
		assert.Equal(t, result, got)
	})

	t.Run("bad signature surfaces", func(t *testing.T) {
		svc, m := newTestService(t)
		m.gw.EXPECT().VerifyReturn(params).Return(nil, domain.ErrInvalidSignature)

		_, err := svc.HandleGatewayReturn(ctx, testProvider, params)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("unknown order surfaces", func(t *testing.T) {
		svc, m := newTestService(t)
		m.gw.EXPECT().VerifyReturn(params).
			Return(&port.GatewayReturn{OrderNumber: "ORD1"}, nil)
		m.repo.EXPECT().ReadOrderByNumber(gomock.Any(), "ORD1").
			Return(nil, domain.ErrDataNotFound)

		_, err := svc.HandleGatewayReturn(ctx, testProvider, params)
		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestHandleGatewayIPN(t *testing.T) {
	ctx := context.Background()
	params := map[string]string{"vnp_TxnRef": "ORD1710400000000123"}

	successNote := func(t *testing.T) *port.GatewayNotification {
		return &port.GatewayNotification{
			OrderNumber:   "ORD1710400000000123",
			Amount:        dec(t, 500000),
			TransactionID: "14087991",
			Success:       true,
			Code:          "00",
		}
	}

	t.Run("valid notification confirms the order and clears the cart", func(t *testing.T) {
		svc, m := newTestService(t)
		order := eWalletOrder(t, domain.PaymentStatusPending)

		m.gw.EXPECT().VerifyIPN(params).Return(successNote(t), nil)
		m.repo.EXPECT().ReadOrderByNumber(gomock.Any(), order.Number).Return(order, nil)
		expectTx(m, order)
		m.cart.EXPECT().Clear(gomock.Any(), uint64(42)).Return(nil)
		m.gw.EXPECT().Ack(port.IPNSuccess).Return(map[string]any{"RspCode": "00"})

		ack, err := svc.HandleGatewayIPN(ctx, testProvider, params)
		require.NoError(t, err)
		assert.Equal(t, "00", ack["RspCode"])

		assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
		assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
		assert.Equal(t, testProvider, order.PaymentDetails.Provider)
		assert.Equal(t, "14087991", order.PaymentDetails.TransactionID)
		assert.NotNil(t, order.PaymentDetails.PaidAt)
	})

	t.Run("duplicate delivery acks without touching the cart", func(t *testing.T) {
		svc, m := newTestService(t)
		order := eWalletOrder(t, domain.PaymentStatusPaid)
		order.Status = domain.OrderStatusConfirmed

		m.gw.EXPECT().VerifyIPN(params).Return(successNote(t), nil)
		m.repo.EXPECT().ReadOrderByNumber(gomock.Any(), order.Number).Return(order, nil)
		expectTx(m, order)
		m.gw.EXPECT().Ack(port.IPNAlreadyProcessed).Return(map[string]any{"RspCode": "02"})

		ack, err := svc.HandleGatewayIPN(ctx, testProvider, params)
		require.NoError(t, err)
		assert.Equal(t, "02", ack["RspCode"])
	})

	t.Run("invalid signature acks the signature code", func(t *testing.T) {
		svc, m := newTestService(t)

		m.gw.EXPECT().VerifyIPN(params).Return(nil, domain.ErrInvalidSignature)
		m.gw.EXPECT().Ack(port.IPNInvalidSignature).Return(map[string]any{"RspCode": "97"})

		ack, err := svc.HandleGatewayIPN(ctx, testProvider, params)
		require.NoError(t, err)
		assert.Equal(t, "97", ack["RspCode"])
	})

	t.Run("unknown order acks not found", func(t *testing.T) {
		svc, m := newTestService(t)

		m.gw.EXPECT().VerifyIPN(params).Return(successNote(t), nil)
		m.repo.EXPECT().ReadOrderByNumber(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrDataNotFound)
		m.gw.EXPECT().Ack(port.IPNOrderNotFound).Return(map[string]any{"RspCode": "01"})

		ack, err := svc.HandleGatewayIPN(ctx, testProvider, params)
		require.NoError(t, err)
		assert.Equal(t, "01", ack["RspCode"])
	})

	t.Run("amount mismatch acks invalid amount", func(t *testing.T) {
		svc, m := newTestService(t)
		order := eWalletOrder(t, domain.PaymentStatusPending)

		note := successNote(t)
		note.Amount = dec(t, 1000)

		m.gw.EXPECT().VerifyIPN(params).Return(note, nil)
		m.repo.EXPECT().ReadOrderByNumber(gomock.Any(), order.Number).Return(order, nil)
		m.gw.EXPECT().Ack(port.IPNInvalidAmount).Return(map[string]any{"RspCode": "04"})

		ack, err := svc.HandleGatewayIPN(ctx, testProvider, params)
		require.NoError(t, err)
		assert.Equal(t, "04", ack["RspCode"])
		assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	})

	t.Run("failed payment is recorded and order keeps waiting", func(t *testing.T) {
		svc, m := newTestService(t)
		order := eWalletOrder(t, domain.PaymentStatusPending)

		note := successNote(t)
		note.Success = false
		note.Code = "24"

		m.gw.EXPECT().VerifyIPN(params).Return(note, nil)
		m.repo.EXPECT().ReadOrderByNumber(gomock.Any(), order.Number).Return(order, nil)
		expectTx(m, order)
		m.gw.EXPECT().Ack(port.IPNSuccess).Return(map[string]any{"RspCode": "00"})

		ack, err := svc.HandleGatewayIPN(ctx, testProvider, params)
		require.NoError(t, err)
		assert.Equal(t, "00", ack["RspCode"])

		assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		require.Len(t, order.StatusHistory, 1)
		assert.Equal(t, "gateway payment failed, code 24", order.StatusHistory[0].Note)
	})

	t.Run("unknown provider is an error, not an ack", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.HandleGatewayIPN(ctx, "zalopay", params)
		assert.ErrorIs(t, err, domain.ErrUnknownProvider)
	})
}
