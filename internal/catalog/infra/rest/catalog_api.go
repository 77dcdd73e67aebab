package rest

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type itemDTO struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	ImageURL           string          `json:"imageUrl"`
	Available          *bool           `json:"available"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Categories         []categoryDTO   `json:"categories"`
	VendorID           string          `json:"vendorId"`
	Vendor             *struct {
		ID string `json:"id"`
	} `json:"vendor"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

type categoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type vendorDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	VendorType    string  `json:"vendorType"`
	Status        string  `json:"status"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

type itemInputDTO struct {
	VendorID           string     `json:"vendorId"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Price              api.Amount `json:"price"`
	ImageURL           string     `json:"imageUrl,omitempty"`
	Available          bool       `json:"available"`
	DiscountPercentage api.Amount `json:"discountPercentage"`
	Categories         []string   `json:"categories,omitempty"`
}

func (d itemDTO) toDomain(op string) (domain.Item, error) {
	if d.ID == "" {
		return domain.Item{}, malformed(op, "item without id")
	}
	if d.Price.IsNegative() {
		return domain.Item{}, malformed(op, fmt.Sprintf("item %s has negative price", d.ID))
	}

	vendorID := d.VendorID
	if vendorID == "" && d.Vendor != nil {
		vendorID = d.Vendor.ID
	}
	available := true
	if d.Available != nil {
		available = *d.Available
	}

	cats := make([]domain.Category, 0, len(d.Categories))
	for _, c := range d.Categories {
		cats = append(cats, domain.Category{ID: c.ID, Name: c.Name})
	}

	return domain.Item{
		ID:                 d.ID,
		Name:               d.Name,
		Description:        d.Description,
		Price:              d.Price,
		ImageURL:           d.ImageURL,
		Available:          available,
		DiscountPercentage: d.DiscountPercentage,
		Categories:         cats,
		VendorID:           vendorID,
		AverageRating:      d.AverageRating,
		TotalRatings:       d.TotalRatings,
	}, nil
}

func (d vendorDTO) toDomain(op string) (domain.Vendor, error) {
	if d.ID == "" {
		return domain.Vendor{}, malformed(op, "vendor without id")
	}
	status, ok := domain.ParseVendorStatus(d.Status)
	if !ok {
		status = domain.VendorClosed
	}
	return domain.Vendor{
		ID:            d.ID,
		Name:          d.Name,
		Location:      d.Location,
		Phone:         d.Phone,
		Email:         d.Email,
		Description:   d.Description,
		ImageURL:      d.ImageURL,
		VendorType:    d.VendorType,
		Status:        status,
		AverageRating: d.AverageRating,
		TotalRatings:  d.TotalRatings,
	}, nil
}

func malformed(op, msg string) error {
	return &api.Error{Kind: api.KindServer, Op: op, Message: "malformed response: " + msg}
}

type ItemAPI struct {
	c *api.Client
}

func NewItemAPI(c *api.Client) *ItemAPI {
	return &ItemAPI{c: c}
}

func (a *ItemAPI) list(ctx context.Context, op, path string, params map[string]string) ([]domain.Item, error) {
	var rows []itemDTO
	if err := a.c.Get(ctx, op, path, params, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		it, err := row.toDomain(op)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func (a *ItemAPI) one(ctx context.Context, op string, req api.Request) (domain.Item, error) {
	var row itemDTO
	if err := a.c.Do(ctx, op, req, &row); err != nil {
		return domain.Item{}, err
	}
	return row.toDomain(op)
}

func (a *ItemAPI) List(ctx context.Context) ([]domain.Item, error) {
	return a.list(ctx, "items.list", "/items", nil)
}

func (a *ItemAPI) Get(ctx context.Context, id string) (domain.Item, error) {
	return a.one(ctx, "items.get", api.Request{
		Method:     "GET",
		Path:       "/items/{id}",
		PathParams: map[string]string{"id": id},
	})
}

func (a *ItemAPI) ByVendor(ctx context.Context, vendorID string) ([]domain.Item, error) {
	return a.list(ctx, "items.by_vendor", "/items/vendor/{id}", map[string]string{"id": vendorID})
}

func (a *ItemAPI) ByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	return a.list(ctx, "items.by_category", "/items/category/{name}", map[string]string{"name": category})
}

func (a *ItemAPI) Search(ctx context.Context, keyword string) ([]domain.Item, error) {
	return a.list(ctx, "items.search", "/items/search/{keyword}", map[string]string{"keyword": keyword})
}

func (a *ItemAPI) CheaperThan(ctx context.Context, price domain.Money) ([]domain.Item, error) {
	return a.list(ctx, "items.cheaper_than", "/items/cheaper-than/{price}", map[string]string{"price": price.String()})
}

func (a *ItemAPI) Create(ctx context.Context, in domain.ItemInput) (domain.Item, error) {
	return a.one(ctx, "items.create", api.Request{Method: "POST", Path: "/items", Body: toInputDTO(in)})
}

func (a *ItemAPI) Update(ctx context.Context, id string, in domain.ItemInput) (domain.Item, error) {
	return a.one(ctx, "items.update", api.Request{
		Method:     "PUT",
		Path:       "/items/{id}",
		PathParams: map[string]string{"id": id},
		Body:       toInputDTO(in),
	})
}

func (a *ItemAPI) Delete(ctx context.Context, id string) error {
	return a.c.Delete(ctx, "items.delete", "/items/{id}", map[string]string{"id": id}, nil)
}

func toInputDTO(in domain.ItemInput) itemInputDTO {
	return itemInputDTO{
		VendorID:           in.VendorID,
		Name:               in.Name,
		Description:        in.Description,
		Price:              api.AmountOf(in.Price),
		ImageURL:           in.ImageURL,
		Available:          in.Available,
		DiscountPercentage: api.AmountOf(in.DiscountPercentage),
		Categories:         in.Categories,
	}
}

type VendorAPI struct {
	c *api.Client
}

func NewVendorAPI(c *api.Client) *VendorAPI {
	return &VendorAPI{c: c}
}

func (a *VendorAPI) list(ctx context.Context, op string, req api.Request) ([]domain.Vendor, error) {
	var rows []vendorDTO
	if err := a.c.Do(ctx, op, req, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Vendor, 0, len(rows))
	for _, row := range rows {
		v, err := row.toDomain(op)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (a *VendorAPI) List(ctx context.Context) ([]domain.Vendor, error) {
	return a.list(ctx, "vendors.list", api.Request{Method: "GET", Path: "/vendors"})
}

func (a *VendorAPI) Get(ctx context.Context, id string) (domain.Vendor, error) {
	var row vendorDTO
	if err := a.c.Get(ctx, "vendors.get", "/vendors/{id}", map[string]string{"id": id}, &row); err != nil {
		return domain.Vendor{}, err
	}
	return row.toDomain("vendors.get")
}

func (a *VendorAPI) Search(ctx context.Context, keyword string) ([]domain.Vendor, error) {
	return a.list(ctx, "vendors.search", api.Request{
		Method: "GET",
		Path:   "/vendors/search",
		Query:  map[string]string{"keyword": keyword},
	})
}

func (a *VendorAPI) ByStatus(ctx context.Context, status domain.VendorStatus) ([]domain.Vendor, error) {
	return a.list(ctx, "vendors.by_status", api.Request{
		Method:     "GET",
		Path:       "/vendors/status/{status}",
		PathParams: map[string]string{"status": string(status)},
	})
}

func (a *VendorAPI) Rate(ctx context.Context, id string, rating int) error {
	return a.c.Do(ctx, "vendors.rate", api.Request{
		Method:     "POST",
		Path:       "/vendors/{id}/rating",
		PathParams: map[string]string{"id": id},
		Query:      map[string]string{"rating": strconv.Itoa(rating)},
	}, nil)
}

type CategoryAPI struct {
	c *api.Client
}

func NewCategoryAPI(c *api.Client) *CategoryAPI {
	return &CategoryAPI{c: c}
}

func (a *CategoryAPI) List(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryDTO
	if err := a.c.Get(ctx, "categories.list", "/categories", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Category{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
