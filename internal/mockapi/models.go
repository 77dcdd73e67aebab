package mockapi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire shapes served by the mock backend. Field names follow the
// storefront REST contract.

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Item struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	ImageURL           string          `json:"imageUrl,omitempty"`
	Available          bool            `json:"available"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Categories         []Category      `json:"categories"`
	VendorID           string          `json:"vendorId"`
	AverageRating      float64         `json:"averageRating"`
	TotalRatings       int             `json:"totalRatings"`
}

type Vendor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	VendorType    string  `json:"vendorType"`
	Status        string  `json:"status"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`

	password string
}

type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	TFAEnabled bool   `json:"tfaEnabled"`

	password      string
	tfaSecret     string
	pendingSecret string
}

type CartLine struct {
	Item struct {
		ID    string          `json:"id"`
		Name  string          `json:"name"`
		Price decimal.Decimal `json:"price"`
	} `json:"item"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type CartRef struct {
	ID string `json:"id"`
}

type Cart struct {
	ID        string     `json:"id"`
	Customer  CartRef    `json:"customer"`
	CartItems []CartLine `json:"cartItems"`
}

type OrderLine struct {
	ItemID    string          `json:"itemId"`
	Name      string          `json:"name,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Status          string          `json:"status"`
	Items           []OrderLine     `json:"items"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	Total           decimal.Decimal `json:"total"`
	OrderDate       time.Time       `json:"orderDate"`
}

type Payment struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"orderId"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
}
