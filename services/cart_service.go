package services

import (
	"context"
	"errors"

	"solestyle/models"
	"solestyle/repositories"
)

type CartStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	GetOrCreate(ctx context.Context, userID string) (*models.Cart, error)
	IncrementItem(ctx context.Context, userID, productID string) (bool, error)
	PushItem(ctx context.Context, userID, productID string) error
	PullItem(ctx context.Context, userID, productID string) error
}

type CartService struct {
	carts CartStore
}

func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

// GetCart returns the user's cart, lazily creating an empty one.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	return s.carts.GetOrCreate(ctx, userID)
}

// AddItem bumps the quantity of an existing line item, or appends a
// new one with quantity 1. Both paths are single atomic document
// updates, so concurrent adds never lose an increment. The productID
// is accepted without validating it against the catalog.
func (s *CartService) AddItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	bumped, err := s.carts.IncrementItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if !bumped {
		err := s.carts.PushItem(ctx, userID, productID)
		if errors.Is(err, repositories.ErrItemExists) {
			// Lost the race against a concurrent add of the same
			// product; the line item exists now, so increment it.
			_, err = s.carts.IncrementItem(ctx, userID, productID)
		}
		if err != nil {
			return nil, err
		}
	}

	return s.carts.Get(ctx, userID)
}

// RemoveItem drops the matching line item, preserving the order of the
// rest. Removing an absent item is a no-op; a user without a cart gets
// ErrCartNotFound.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	if err := s.carts.PullItem(ctx, userID, productID); err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	return s.carts.Get(ctx, userID)
}
