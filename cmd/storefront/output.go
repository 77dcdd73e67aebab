package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	admindomain "github.com/dwikikusuma/storefront/internal/admin/domain"
	authdomain "github.com/dwikikusuma/storefront/internal/auth/domain"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	checkoutdomain "github.com/dwikikusuma/storefront/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/shopspring/decimal"
)

func (a *app) money(d decimal.Decimal) string {
	return d.Round(2).String() + " " + a.cfg.Currency
}

func (a *app) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *app) printSession(s authdomain.Session) {
	switch {
	case s.User != nil && s.TwoFactorPending:
		fmt.Fprintf(a.out, "Waiting for a verification code for %s.\n", s.User.Email)
	case s.User != nil:
		fmt.Fprintf(a.out, "Logged in as %s <%s> (%s)\n", s.User.Name, s.User.Email, s.User.Role)
	case s.Admin == nil:
		fmt.Fprintln(a.out, "Not logged in.")
	}
	if s.Admin != nil {
		fmt.Fprintf(a.out, "Admin: %s\n", s.Admin.Username)
	}
}

func (a *app) printItems(items []catalogdomain.Item) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items found.")
		return
	}
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tVENDOR\t")
	for _, it := range items {
		price := a.money(it.EffectivePrice())
		if !it.DiscountPercentage.IsZero() {
			price += fmt.Sprintf(" (-%s%%)", it.DiscountPercentage.String())
		}
		if !it.Available {
			price += " unavailable"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", it.ID, it.Name, price, it.VendorID)
	}
	_ = w.Flush()
}

func (a *app) printVendors(vendors []catalogdomain.Vendor) {
	if len(vendors) == 0 {
		fmt.Fprintln(a.out, "No vendors found.")
		return
	}
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tLOCATION\tRATING\t")
	for _, v := range vendors {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\t\n", v.ID, v.Name, v.Status, v.Location, v.AverageRating)
	}
	_ = w.Flush()
}

func (a *app) printCart(c cartdomain.Cart) {
	if c.IsEmpty() {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return
	}
	w := a.table()
	fmt.Fprintln(w, "ITEM\tNAME\tQTY\tUNIT\tTOTAL\t")
	for _, it := range c.Items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t\n", it.Item.ID, it.Item.Name, it.Quantity, a.money(it.Item.Price), a.money(it.LineTotal()))
	}
	_ = w.Flush()

	fee := decimal.NewFromInt(a.cfg.DeliveryFee)
	fmt.Fprintf(a.out, "Subtotal:     %s\n", a.money(c.Subtotal()))
	fmt.Fprintf(a.out, "Delivery fee: %s\n", a.money(fee))
	fmt.Fprintf(a.out, "Total:        %s\n", a.money(c.Subtotal().Add(fee)))
}

func (a *app) printQuote(q checkoutdomain.Quote) {
	w := a.table()
	fmt.Fprintln(w, "ITEM\tNAME\tQTY\tUNIT\tTOTAL\t")
	for _, l := range q.Lines {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t\n", l.ItemID, l.Name, l.Quantity, a.money(l.UnitPrice), a.money(l.LineTotal))
	}
	_ = w.Flush()
	fmt.Fprintf(a.out, "Subtotal:     %s\n", a.money(q.Subtotal))
	fmt.Fprintf(a.out, "Delivery fee: %s\n", a.money(q.DeliveryFee))
	fmt.Fprintf(a.out, "Total:        %s\n", a.money(q.Total))
}

func (a *app) printOrders(orders []orderdomain.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet.")
		return
	}
	w := a.table()
	fmt.Fprintln(w, "ID\tDATE\tSTATUS\tTOTAL\t")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", o.ID, o.CreatedAt.Format(time.DateTime), o.Status, a.money(o.Total))
	}
	_ = w.Flush()
}

func (a *app) printOrder(o orderdomain.Order) {
	fmt.Fprintf(a.out, "Order %s (%s)\n", o.ID, o.Status)
	fmt.Fprintf(a.out, "Deliver to: %s\n", o.DeliveryAddress)
	w := a.table()
	for _, it := range o.Items {
		fmt.Fprintf(w, "  %s\t%d x %s\t%s\t\n", it.Name, it.Quantity, a.money(it.UnitPrice), a.money(it.LineTotal))
	}
	_ = w.Flush()
	fmt.Fprintf(a.out, "Delivery fee: %s\n", a.money(o.DeliveryFee))
	fmt.Fprintf(a.out, "Total:        %s\n", a.money(o.Total))
}

func (a *app) printPayment(p paymentdomain.Payment) {
	fmt.Fprintf(a.out, "Payment %s for order %s: %s %s via %s\n", p.ID, p.OrderID, p.Status, a.money(p.Amount), p.Method)
}

func (a *app) printDashboard(d admindomain.Dashboard) {
	s := d.Stats
	fmt.Fprintf(a.out, "Revenue %s from %d orders, %d active customers, %d open vendors\n",
		a.money(s.TotalRevenue), s.TotalOrders, s.ActiveCustomers, s.ActiveVendors)

	if len(s.TopSellingItems) > 0 {
		fmt.Fprintln(a.out, "\nTop sellers")
		for i, it := range s.TopSellingItems {
			fmt.Fprintf(a.out, "  %d. %s (%d sold)\n", i+1, it.Name, it.UnitsSold)
		}
	}

	fmt.Fprintf(a.out, "\nRevenue this %s: %s\n", d.Revenue.Period, a.money(d.Revenue.Total))
	for _, p := range d.Revenue.Points {
		fmt.Fprintf(a.out, "  %s  %s\n", p.Label, a.money(p.Amount))
	}

	fmt.Fprintln(a.out, "\nRecent orders")
	w := a.table()
	for _, o := range d.RecentOrders {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t\n", o.ID, o.CustomerName, o.Status, a.money(o.Total))
	}
	_ = w.Flush()

	fmt.Fprintln(a.out, "\nVendors")
	w = a.table()
	for _, v := range d.Vendors {
		fmt.Fprintf(w, "  %s\t%s\t%d orders\t%.1f\t\n", v.Name, a.money(v.TotalSales), v.TotalOrders, v.Rating)
	}
	_ = w.Flush()
}
