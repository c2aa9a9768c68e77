package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/hatien/petmart/internal/core/domain"
)

// UpdateOrderFn mutates an order inside the repository transaction. The row
// is locked for the duration of the callback, so concurrent mutations of the
// same order serialize here.
type UpdateOrderFn func(*domain.Order) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ReadOrderByNumber(ctx context.Context, number string) (*domain.Order, error)
	UpdateOrderTx(ctx context.Context, id uuid.UUID, fn UpdateOrderFn) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64, page, limit int) ([]*domain.Order, int64, error)
	ListOrdersAwaitingVerification(ctx context.Context, page, limit int) ([]*domain.Order, int64, error)

	// Stock ledger
	DecrementStock(ctx context.Context, productID uint64, quantity uint32) error
	RestoreStock(ctx context.Context, productID uint64, quantity uint32) error
	ReadStock(ctx context.Context, productID uint64) (*domain.StockEntry, error)
}
