package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/shopspring/decimal"
)

type cartDTO struct {
	ID       string `json:"id"`
	Customer *struct {
		ID string `json:"id"`
	} `json:"customer"`
	CartItems []cartItemDTO `json:"cartItems"`
}

type cartItemDTO struct {
	Item struct {
		ID    string          `json:"id"`
		Name  string          `json:"name"`
		Price decimal.Decimal `json:"price"`
	} `json:"item"`
	Quantity int `json:"quantity"`
	// TotalPrice is what the backend computed. It is not trusted; totals
	// are derived from price and quantity.
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type lineBody struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (d cartDTO) toDomain(op, customerID string) (domain.Cart, error) {
	cart := domain.Cart{ID: d.ID, CustomerID: customerID}
	if d.Customer != nil && d.Customer.ID != "" {
		cart.CustomerID = d.Customer.ID
	}
	for _, ci := range d.CartItems {
		if ci.Item.ID == "" {
			return domain.Cart{}, malformed(op, "cart line without item id")
		}
		if ci.Quantity < 0 {
			return domain.Cart{}, malformed(op, fmt.Sprintf("negative quantity for item %s", ci.Item.ID))
		}
		if ci.Item.Price.IsNegative() {
			return domain.Cart{}, malformed(op, fmt.Sprintf("negative price for item %s", ci.Item.ID))
		}
		cart.Items = append(cart.Items, domain.CartItem{
			Item: domain.ItemRef{
				ID:    ci.Item.ID,
				Name:  ci.Item.Name,
				Price: ci.Item.Price,
			},
			Quantity: ci.Quantity,
		})
	}
	return cart.Sorted(), nil
}

func malformed(op, msg string) error {
	return &api.Error{Kind: api.KindServer, Op: op, Message: "malformed response: " + msg}
}

// CartAPI implements app.CartRepo over the backend's /carts routes.
type CartAPI struct {
	c *api.Client
}

func NewCartAPI(c *api.Client) *CartAPI {
	return &CartAPI{c: c}
}

func (a *CartAPI) cart(ctx context.Context, op, customerID string, req api.Request) (domain.Cart, error) {
	var dto cartDTO
	if err := a.c.Do(ctx, op, req, &dto); err != nil {
		return domain.Cart{}, err
	}
	return dto.toDomain(op, customerID)
}

func customer(id string) map[string]string {
	return map[string]string{"id": id}
}

func (a *CartAPI) Get(ctx context.Context, customerID string) (domain.Cart, error) {
	return a.cart(ctx, "cart.get", customerID, api.Request{
		Method:     http.MethodGet,
		Path:       "/carts/customer/{id}",
		PathParams: customer(customerID),
	})
}

func (a *CartAPI) Create(ctx context.Context, customerID string) (domain.Cart, error) {
	return a.cart(ctx, "cart.create", customerID, api.Request{
		Method:     http.MethodPost,
		Path:       "/carts/customer/{id}",
		PathParams: customer(customerID),
	})
}

func (a *CartAPI) AddItem(ctx context.Context, customerID, itemID string, quantity int) (domain.Cart, error) {
	return a.cart(ctx, "cart.add_item", customerID, api.Request{
		Method:     http.MethodPost,
		Path:       "/carts/customer/{id}/add-item",
		PathParams: customer(customerID),
		Body:       lineBody{ItemID: itemID, Quantity: quantity},
	})
}

func (a *CartAPI) RemoveItem(ctx context.Context, customerID, itemID string, quantity int) (domain.Cart, error) {
	return a.cart(ctx, "cart.remove_item", customerID, api.Request{
		Method:     http.MethodPost,
		Path:       "/carts/customer/{id}/remove-item",
		PathParams: customer(customerID),
		Body:       lineBody{ItemID: itemID, Quantity: quantity},
	})
}

func (a *CartAPI) DeleteItem(ctx context.Context, customerID, itemID string) (domain.Cart, error) {
	return a.cart(ctx, "cart.delete_item", customerID, api.Request{
		Method:     http.MethodDelete,
		Path:       "/carts/customer/{id}/items/{itemId}",
		PathParams: map[string]string{"id": customerID, "itemId": itemID},
	})
}

func (a *CartAPI) Checkout(ctx context.Context, customerID string) error {
	return a.c.Post(ctx, "cart.checkout", "/carts/customer/{id}/checkout", customer(customerID), nil, nil)
}

func (a *CartAPI) Delete(ctx context.Context, cartID string) error {
	return a.c.Delete(ctx, "cart.delete", "/carts/{id}", map[string]string{"id": cartID}, nil)
}
