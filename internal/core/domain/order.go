package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipping   OrderStatus = "SHIPPING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodEWallet      PaymentMethod = "E_WALLET"
)

type PaymentStatus string

const (
	PaymentStatusPending              PaymentStatus = "PENDING"
	PaymentStatusAwaitingVerification PaymentStatus = "AWAITING_VERIFICATION"
	PaymentStatusPaid                 PaymentStatus = "PAID"
)

// allowedTransitions is the single source of truth for legal status changes.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipping, OrderStatusCancelled},
	OrderStatusShipping:   {OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusRefunded},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

func CanTransition(from, to OrderStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanCancel reports whether an order in the given status may still be cancelled.
func CanCancel(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing:
		return true
	}
	return false
}

func ValidOrderStatus(s OrderStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodBankTransfer, PaymentMethodEWallet:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID uint64          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  uint32          `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Image     string          `json:"image,omitempty"`
}

type Address struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	Ward     string `json:"ward,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city"`
}

// StatusEntry is one record of the append-only audit trail.
type StatusEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note,omitempty"`
	Actor     string      `json:"actor,omitempty"`
}

// PaymentDetails holds channel-specific metadata, filled in only on payment events.
type PaymentDetails struct {
	Provider      string     `json:"provider,omitempty"`
	BankRef       string     `json:"bankRef,omitempty"`
	CardTail      string     `json:"cardTail,omitempty"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

type Order struct {
	ID              uuid.UUID
	Number          string
	UserID          uint64
	Items           []OrderItem
	ShippingAddress Address
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	Status          OrderStatus
	StatusHistory   []StatusEntry
	Subtotal        decimal.Decimal
	ShippingFee     decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	PaymentDetails  PaymentDetails
	CancelReason    string
	CancelledAt     *time.Time
	DeliveredAt     *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

// ApplyTransition moves the order to a new status, appending a history entry.
// Entering DELIVERED stamps DeliveredAt and CompletedAt.
func (o *Order) ApplyTransition(to OrderStatus, note string, actor string, now time.Time) error {
	if !CanTransition(o.Status, to) {
		return ErrInvalidTransition
	}

	o.Status = to
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:    to,
		Timestamp: now,
		Note:      note,
		Actor:     actor,
	})

	if to == OrderStatusDelivered {
		t := now
		o.DeliveredAt = &t
		o.CompletedAt = &t
	}

	return nil
}

// AppendNote records a payment-level event in the history without changing status.
func (o *Order) AppendNote(note string, actor string, now time.Time) {
	o.StatusHistory = append(o.StatusHistory, StatusEntry{
		Status:    o.Status,
		Timestamp: now,
		Note:      note,
		Actor:     actor,
	})
}
