package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/domain/item"
)

const itemsTable = "items"

var itemCols = []string{"id", "name", "category", "created_at"}

// builder returns a squirrel builder with PostgreSQL placeholder format.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ItemRepo is the PostgreSQL implementation of item.Repository.
type ItemRepo struct {
	txm *TxManager
}

// NewItemRepo creates a new item repository.
func NewItemRepo(txm *TxManager) *ItemRepo {
	return &ItemRepo{txm: txm}
}

var _ item.Repository = (*ItemRepo)(nil)

// List retrieves all items ordered by category, then name.
func (r *ItemRepo) List(ctx context.Context) ([]item.Item, error) {
	sql, args, err := builder().
		Select(itemCols...).
		From(itemsTable).
		OrderBy("category", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []item.Item
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// FindByNameCategory retrieves an item by its identity pair.
func (r *ItemRepo) FindByNameCategory(ctx context.Context, name, category string) (*item.Item, error) {
	sql, args, err := builder().
		Select(itemCols...).
		From(itemsTable).
		Where(squirrel.Eq{"name": name, "category": category}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var it item.Item
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &it, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("item", name+"|"+category)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Create inserts a new item.
func (r *ItemRepo) Create(ctx context.Context, it *item.Item) error {
	sql, args, err := builder().
		Insert(itemsTable).
		SetMap(map[string]any{
			"id":         it.ID,
			"name":       it.Name,
			"category":   it.Category,
			"created_at": it.CreatedAt,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}
