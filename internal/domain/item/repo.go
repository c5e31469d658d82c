package item

import (
	"context"
)

// Repository defines the interface for Item persistence.
type Repository interface {
	// List retrieves all items ordered by category, then name.
	List(ctx context.Context) ([]Item, error)

	// FindByNameCategory retrieves an item by its identity pair.
	// Returns apperror.NewNotFound when absent.
	FindByNameCategory(ctx context.Context, name, category string) (*Item, error)

	// Create inserts a new item.
	Create(ctx context.Context, it *Item) error
}
