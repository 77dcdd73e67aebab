package main

import (
	"context"
	"fmt"
	"strconv"

	authdomain "github.com/dwikikusuma/storefront/internal/auth/domain"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/shopspring/decimal"
)

func cmdItems(ctx context.Context, a *app, args []string) error {
	fs := a.flags("items")
	vendor := fs.String("vendor", "", "only this vendor's items")
	category := fs.String("category", "", "only this category")
	search := fs.String("search", "", "name or description contains")
	under := fs.String("under", "", "price below")
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		items []catalogdomain.Item
		err   error
	)
	switch {
	case *vendor != "":
		items, err = a.catalog.ItemsByVendor(ctx, *vendor)
	case *category != "":
		items, err = a.catalog.ItemsByCategory(ctx, *category)
	case *search != "":
		items, err = a.catalog.SearchItems(ctx, *search)
	case *under != "":
		price, perr := decimal.NewFromString(*under)
		if perr != nil {
			return errUsage
		}
		items, err = a.catalog.ItemsCheaperThan(ctx, price)
	default:
		items, err = a.catalog.ListItems(ctx)
	}
	if err != nil {
		return err
	}
	a.printItems(items)
	return nil
}

func cmdVendors(ctx context.Context, a *app, args []string) error {
	fs := a.flags("vendors")
	search := fs.String("search", "", "name or location contains")
	status := fs.String("status", "", "OPEN, BUSY or CLOSED")
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		vendors []catalogdomain.Vendor
		err     error
	)
	if *status != "" {
		vendors, err = a.catalog.VendorsByStatus(ctx, *status)
	} else {
		vendors, err = a.catalog.SearchVendors(ctx, *search)
	}
	if err != nil {
		return err
	}
	a.printVendors(vendors)
	return nil
}

func cmdVendor(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	detail, err := a.catalog.VendorDetail(ctx, args[0])
	if err != nil {
		return err
	}
	v := detail.Vendor
	fmt.Fprintf(a.out, "%s (%s), %s\n", v.Name, v.Status, v.Location)
	fmt.Fprintf(a.out, "Rating %.1f from %d reviews\n\n", v.AverageRating, v.TotalRatings)
	a.printItems(detail.Items)
	return nil
}

func cmdRate(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return errUsage
	}
	if _, err := a.auth.CustomerID(); err != nil {
		return err
	}
	if err := a.catalog.RateVendor(ctx, args[0], rating); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Thanks for rating!")
	return nil
}

func cmdCategories(ctx context.Context, a *app, args []string) error {
	if len(args) > 0 {
		return errUsage
	}
	cats, err := a.catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		fmt.Fprintln(a.out, c.Name)
	}
	return nil
}

func quantityArgs(a *app, name string, args []string) (string, int, error) {
	if len(args) == 0 {
		return "", 0, errUsage
	}
	fs := a.flags(name)
	qty := fs.Int("qty", 1, "quantity")
	if err := parse(fs, args[1:]); err != nil {
		return "", 0, err
	}
	return args[0], *qty, nil
}

func cmdCart(ctx context.Context, a *app, args []string) error {
	customerID, err := a.auth.CustomerID()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"show"}
	}

	view := cartapp.NewView(a.cart, customerID, a.log)
	if err := view.Load(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "show":
		if len(args) > 1 {
			return errUsage
		}
	case "add":
		itemID, qty, err := quantityArgs(a, "cart add", args[1:])
		if err != nil {
			return err
		}
		item, err := a.catalog.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		ref := cartdomain.ItemRef{ID: item.ID, Name: item.Name, Price: item.Price}
		if err := view.Add(ctx, ref, qty); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s added to your cart.\n", item.Name)
	case "remove":
		itemID, qty, err := quantityArgs(a, "cart remove", args[1:])
		if err != nil {
			return err
		}
		if err := view.Remove(ctx, itemID, qty); err != nil {
			return err
		}
	case "set":
		if len(args) != 3 {
			return errUsage
		}
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			return errUsage
		}
		if err := view.SetQuantity(ctx, args[1], qty); err != nil {
			return err
		}
	case "delete":
		if len(args) != 2 {
			return errUsage
		}
		if err := view.Delete(ctx, args[1]); err != nil {
			return err
		}
	default:
		return errUsage
	}

	a.printCart(view.Snapshot())
	return nil
}

func cmdQuote(ctx context.Context, a *app, args []string) error {
	if len(args) > 0 {
		return errUsage
	}
	customerID, err := a.auth.CustomerID()
	if err != nil {
		return err
	}
	q, err := a.checkout.Quote(ctx, customerID)
	if err != nil {
		return err
	}
	a.printQuote(q)
	return nil
}

func cmdCheckout(ctx context.Context, a *app, args []string) error {
	fs := a.flags("checkout")
	address := fs.String("address", "", "delivery address")
	method := fs.String("method", "cash", "cash, mobile_money or card")
	if err := parse(fs, args); err != nil {
		return err
	}
	customerID, err := a.auth.CustomerID()
	if err != nil {
		return err
	}

	res, err := a.checkout.Checkout(ctx, checkoutapp.Request{
		CustomerID:      customerID,
		DeliveryAddress: *address,
		PaymentMethod:   *method,
	})
	if err != nil {
		if res.OrderID != "" {
			fmt.Fprintf(a.err, "Order %s was not paid.\n", res.OrderID)
		}
		return err
	}

	fmt.Fprintf(a.out, "Order %s placed and paid. Total %s.\n", res.OrderID, a.money(res.Total))
	if !res.CartCleared {
		fmt.Fprintln(a.out, "Your cart could not be emptied; remove the items before your next order.")
	}
	return nil
}

func cmdOrders(ctx context.Context, a *app, args []string) error {
	if len(args) > 0 {
		return errUsage
	}
	customerID, err := a.auth.CustomerID()
	if err != nil {
		return err
	}
	orders, err := a.orders.CustomerOrders(ctx, customerID)
	if err != nil {
		return err
	}
	a.printOrders(orders)
	return nil
}

func cmdOrder(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	if _, err := a.auth.CustomerID(); err != nil {
		return err
	}

	switch args[0] {
	case "show":
		o, err := a.orders.GetOrder(ctx, args[1])
		if err != nil {
			return err
		}
		a.printOrder(o)
	case "cancel":
		o, err := a.orders.CancelOrder(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Order %s is now %s.\n", o.ID, o.Status)
	default:
		return errUsage
	}
	return nil
}

func cmdPayment(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	if _, err := a.auth.RequireRole(authdomain.RoleCustomer, authdomain.RoleAdmin); err != nil {
		return err
	}

	var err error
	id := args[1]
	switch args[0] {
	case "show":
		p, gerr := a.payments.GetPayment(ctx, id)
		if gerr != nil {
			return gerr
		}
		a.printPayment(p)
		return nil
	case "refund":
		_, err = a.payments.RefundPayment(ctx, id)
	case "cancel":
		_, err = a.payments.CancelPayment(ctx, id)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}
	p, err := a.payments.GetPayment(ctx, id)
	if err != nil {
		return err
	}
	a.printPayment(p)
	return nil
}

func cmdAdmin(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "dashboard":
		return adminDashboard(ctx, a, args[1:])
	case "delete-cart":
		if len(args) != 2 {
			return errUsage
		}
		if _, err := a.auth.RequireRole(authdomain.RoleAdmin); err != nil {
			return err
		}
		if err := a.cart.DeleteCart(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Cart %s deleted.\n", args[1])
		return nil
	}
	return errUsage
}

func adminDashboard(ctx context.Context, a *app, args []string) error {
	fs := a.flags("admin dashboard")
	limit := fs.Int("limit", 10, "recent orders to show")
	period := fs.String("period", "month", "revenue period")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.auth.RequireRole(authdomain.RoleAdmin); err != nil {
		return err
	}

	d, err := a.admin.Dashboard(ctx, *limit, *period)
	if err != nil {
		return err
	}
	a.printDashboard(d)
	return nil
}
