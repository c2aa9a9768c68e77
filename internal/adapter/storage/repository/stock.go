package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DecrementStock reserves quantity units and bumps the sold counter in a
// single conditional UPDATE. The guard keeps stock from going below zero
// under concurrent placements.
func (r *Repository) DecrementStock(ctx context.Context, productID uint64, quantity uint32) error {
	statement := r.db.QueryBuilder.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Set("sold_count", sq.Expr("sold_count + ?", quantity)).
		Where(sq.Eq{"id": productID}).
		Where(sq.Expr("stock >= ?", quantity))

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.ReadStock(ctx, productID); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// RestoreStock is the cancellation compensation for DecrementStock.
func (r *Repository) RestoreStock(ctx context.Context, productID uint64, quantity uint32) error {
	statement := r.db.QueryBuilder.Update("products").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Set("sold_count", sq.Expr("greatest(sold_count - ?, 0)", quantity)).
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ReadStock(ctx context.Context, productID uint64) (*domain.StockEntry, error) {
	statement := r.db.QueryBuilder.
		Select("id", "stock", "sold_count").
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	entry := domain.StockEntry{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&entry.ProductID,
		&entry.Stock,
		&entry.SoldCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &entry, nil
}
