package repository

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/hatien/petmart/internal/adapter/storage"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

var orderColumns = []string{
	"id", "number", "user_id", "items", "shipping_address",
	"payment_method", "payment_status", "status", "status_history",
	"subtotal", "shipping_fee", "discount", "total", "payment_details",
	"cancel_reason", "cancelled_at", "delivered_at", "completed_at", "created_at",
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("marshal shipping address: %w", err)
	}
	history, err := json.Marshal(order.StatusHistory)
	if err != nil {
		return nil, fmt.Errorf("marshal status history: %w", err)
	}
	details, err := json.Marshal(order.PaymentDetails)
	if err != nil {
		return nil, fmt.Errorf("marshal payment details: %w", err)
	}

	statement := r.db.QueryBuilder.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.Number, order.UserID, items, address,
			order.PaymentMethod, order.PaymentStatus, order.Status, history,
			order.Subtotal, order.ShippingFee, order.Discount, order.Total, details,
			order.CancelReason, order.CancelledAt, order.DeliveredAt, order.CompletedAt,
			order.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.readOrderWhere(ctx, r.db, sq.Eq{"id": id}, false)
}

func (r *Repository) ReadOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return r.readOrderWhere(ctx, r.db, sq.Eq{"number": number}, false)
}

// UpdateOrderTx locks the order row, applies fn and writes the mutable
// fields back, all in one transaction. Concurrent mutations of the same
// order serialize on the row lock.
func (r *Repository) UpdateOrderTx(ctx context.Context, id uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		o, err := r.readOrderWhere(ctx, tx, sq.Eq{"id": id}, true)
		if err != nil {
			return err
		}

		if err := fn(o); err != nil {
			return err
		}

		history, err := json.Marshal(o.StatusHistory)
		if err != nil {
			return fmt.Errorf("marshal status history: %w", err)
		}
		details, err := json.Marshal(o.PaymentDetails)
		if err != nil {
			return fmt.Errorf("marshal payment details: %w", err)
		}

		statement := r.db.QueryBuilder.Update("orders").
			Set("payment_status", o.PaymentStatus).
			Set("status", o.Status).
			Set("status_history", history).
			Set("payment_details", details).
			Set("cancel_reason", o.CancelReason).
			Set("cancelled_at", o.CancelledAt).
			Set("delivered_at", o.DeliveredAt).
			Set("completed_at", o.CompletedAt).
			Where(sq.Eq{"id": id})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64, page, limit int) ([]*domain.Order, int64, error) {
	return r.listOrders(ctx, sq.Eq{"user_id": userID}, page, limit)
}

func (r *Repository) ListOrdersAwaitingVerification(ctx context.Context, page, limit int) ([]*domain.Order, int64, error) {
	return r.listOrders(ctx, sq.Eq{
		"payment_method": domain.PaymentMethodBankTransfer,
		"payment_status": domain.PaymentStatusAwaitingVerification,
	}, page, limit)
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *Repository) readOrderWhere(ctx context.Context, q queryRower, where sq.Eq, forUpdate bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where)
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanOrder(q.QueryRow(ctx, sql, args...))
}

func (r *Repository) listOrders(ctx context.Context, where sq.Eq, page, limit int) ([]*domain.Order, int64, error) {
	countSt := r.db.QueryBuilder.Select("count(*)").From("orders").Where(where)
	sql, args, err := countSt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	sql, args, err = statement.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var items, address, history, details []byte

	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.UserID,
		&items,
		&address,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.Status,
		&history,
		&order.Subtotal,
		&order.ShippingFee,
		&order.Discount,
		&order.Total,
		&details,
		&order.CancelReason,
		&order.CancelledAt,
		&order.DeliveredAt,
		&order.CompletedAt,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("unmarshal shipping address: %w", err)
	}
	if err := json.Unmarshal(history, &order.StatusHistory); err != nil {
		return nil, fmt.Errorf("unmarshal status history: %w", err)
	}
	if err := json.Unmarshal(details, &order.PaymentDetails); err != nil {
		return nil, fmt.Errorf("unmarshal payment details: %w", err)
	}

	return &order, nil
}
