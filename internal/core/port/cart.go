package port

import (
	"context"

	"github.com/hatien/petmart/internal/core/domain"
)

//go:generate mockgen -source=cart.go -destination=mock/cart.go -package=mock
type CartService interface {
	Get(ctx context.Context, userID uint64) (*domain.CartSnapshot, error)
	Clear(ctx context.Context, userID uint64) error
}
