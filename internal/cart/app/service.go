package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

type Service struct {
	repo CartRepo
}

func NewService(repo CartRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetCart fails with api.ErrNotFound when the customer has no cart yet.
func (s *Service) GetCart(ctx context.Context, customerID string) (domain.Cart, error) {
	if err := requireID("cart.get", "customer id", customerID); err != nil {
		return domain.Cart{}, err
	}
	cart, err := s.repo.Get(ctx, customerID)
	if err != nil {
		return domain.Cart{}, err
	}
	return cart.Sorted(), nil
}

func (s *Service) GetOrCreate(ctx context.Context, customerID string) (domain.Cart, error) {
	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			created, err := s.repo.Create(ctx, customerID)
			if err != nil {
				return domain.Cart{}, err
			}
			return created.Sorted(), nil
		}
	}
	return cart, err
}

func (s *Service) AddItem(ctx context.Context, customerID, itemID string, quantity int) (domain.Cart, error) {
	if err := validateLine("cart.add_item", customerID, itemID, quantity); err != nil {
		return domain.Cart{}, err
	}
	cart, err := s.repo.AddItem(ctx, customerID, itemID, quantity)
	if err != nil {
		return domain.Cart{}, err
	}
	return cart.Sorted(), nil
}

func (s *Service) RemoveItem(ctx context.Context, customerID, itemID string, quantity int) (domain.Cart, error) {
	if err := validateLine("cart.remove_item", customerID, itemID, quantity); err != nil {
		return domain.Cart{}, err
	}
	cart, err := s.repo.RemoveItem(ctx, customerID, itemID, quantity)
	if err != nil {
		return domain.Cart{}, err
	}
	return cart.Sorted(), nil
}

func (s *Service) DeleteItem(ctx context.Context, customerID, itemID string) (domain.Cart, error) {
	if err := requireID("cart.delete_item", "customer id", customerID); err != nil {
		return domain.Cart{}, err
	}
	if err := requireID("cart.delete_item", "item id", itemID); err != nil {
		return domain.Cart{}, err
	}
	cart, err := s.repo.DeleteItem(ctx, customerID, itemID)
	if err != nil {
		return domain.Cart{}, err
	}
	return cart.Sorted(), nil
}

// Checkout clears the cart server-side. Only call it once payment is confirmed.
func (s *Service) Checkout(ctx context.Context, customerID string) error {
	if err := requireID("cart.checkout", "customer id", customerID); err != nil {
		return err
	}
	return s.repo.Checkout(ctx, customerID)
}

// DeleteCart removes a cart entirely. Admin only on the backend.
func (s *Service) DeleteCart(ctx context.Context, cartID string) error {
	if err := requireID("cart.delete", "cart id", cartID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, cartID)
}

func validateLine(op, customerID, itemID string, quantity int) error {
	if err := requireID(op, "customer id", customerID); err != nil {
		return err
	}
	if err := requireID(op, "item id", itemID); err != nil {
		return err
	}
	if quantity <= 0 {
		return api.Invalid(op, "quantity must be a positive integer")
	}
	return nil
}

func requireID(op, name, v string) error {
	if strings.TrimSpace(v) == "" {
		return api.Invalid(op, name+" is required")
	}
	return nil
}
