package item

import (
	"context"
	"fmt"

	"bakhaar/internal/core/apperror"
	"bakhaar/pkg/logger"
)

// Service provides business operations for the item catalog.
type Service struct {
	repo Repository
}

// NewService creates a new item service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the full item catalog.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// Create registers a new item after checking identity uniqueness.
func (s *Service) Create(ctx context.Context, it *Item) error {
	if err := it.Validate(ctx); err != nil {
		return err
	}

	existing, err := s.repo.FindByNameCategory(ctx, it.Name, it.Category)
	if err != nil && !apperror.IsNotFound(err) {
		return fmt.Errorf("check item existence: %w", err)
	}
	if existing != nil {
		return apperror.NewDuplicate("item", "name/category", it.Name+"|"+it.Category)
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	logger.Info(ctx, "item created", "name", it.Name, "category", it.Category)
	return nil
}

// EnsureExists creates the item if its identity pair is not yet known.
// Used by transaction admission when an inbound movement introduces a new
// item. Movements without a category file the item under "General", the
// same fallback stock reconstruction applies.
func (s *Service) EnsureExists(ctx context.Context, name, category string) (*Item, error) {
	if category == "" {
		category = "General"
	}

	existing, err := s.repo.FindByNameCategory(ctx, name, category)
	if err == nil {
		return existing, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("lookup item: %w", err)
	}

	it := New(name, category)
	if err := it.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	logger.Info(ctx, "item auto-created on admission", "name", name, "category", category)
	return it, nil
}
