package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	authdomain "github.com/dwikikusuma/storefront/internal/auth/domain"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type itemFlags struct {
	name        *string
	description *string
	price       *string
	discount    *string
	image       *string
	categories  *string
	unavailable *bool
}

func bindItemFlags(fs *flag.FlagSet) itemFlags {
	return itemFlags{
		name:        fs.String("name", "", "item name"),
		description: fs.String("description", "", "item description"),
		price:       fs.String("price", "", "unit price"),
		discount:    fs.String("discount", "0", "discount percentage"),
		image:       fs.String("image", "", "image url"),
		categories:  fs.String("categories", "", "comma separated category names"),
		unavailable: fs.Bool("unavailable", false, "hide the item from customers"),
	}
}

func (f itemFlags) input(vendorID string) (catalogdomain.ItemInput, error) {
	price, err := decimal.NewFromString(*f.price)
	if err != nil {
		return catalogdomain.ItemInput{}, catalogapp.ErrInvalidInput
	}
	discount, err := decimal.NewFromString(*f.discount)
	if err != nil {
		return catalogdomain.ItemInput{}, catalogapp.ErrInvalidInput
	}
	var cats []string
	for _, c := range strings.Split(*f.categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	return catalogdomain.ItemInput{
		VendorID:           vendorID,
		Name:               *f.name,
		Description:        *f.description,
		Price:              price,
		ImageURL:           *f.image,
		Available:          !*f.unavailable,
		DiscountPercentage: discount,
		Categories:         cats,
	}, nil
}

// cmdMenu lets a logged-in vendor manage its own items.
func cmdMenu(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	s, err := a.auth.RequireRole(authdomain.RoleVendor)
	if err != nil {
		return err
	}
	vendorID := s.User.ID

	switch args[0] {
	case "show":
		if len(args) > 1 {
			return errUsage
		}
		items, err := a.catalog.ItemsByVendor(ctx, vendorID)
		if err != nil {
			return err
		}
		a.printItems(items)
	case "add":
		fs := a.flags("menu add")
		f := bindItemFlags(fs)
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		in, err := f.input(vendorID)
		if err != nil {
			return err
		}
		item, err := a.catalog.CreateItem(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added %s as %s.\n", item.Name, item.ID)
	case "update":
		if len(args) < 2 {
			return errUsage
		}
		fs := a.flags("menu update")
		f := bindItemFlags(fs)
		if err := parse(fs, args[2:]); err != nil {
			return err
		}
		in, err := f.input(vendorID)
		if err != nil {
			return err
		}
		item, err := a.catalog.UpdateItem(ctx, args[1], in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated %s.\n", item.Name)
	case "delete":
		if len(args) != 2 {
			return errUsage
		}
		if err := a.catalog.DeleteItem(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Removed %s.\n", args[1])
	default:
		return errUsage
	}
	return nil
}
