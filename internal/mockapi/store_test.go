package mockapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.Seed()
	return s
}

func status(t *testing.T, err error) int {
	t.Helper()
	var e *Error
	require.ErrorAs(t, err, &e)
	return e.Status
}

func TestStore_Cart(t *testing.T) {
	t.Run("no cart yet -> 404", func(t *testing.T) {
		s := seeded(t)
		_, err := s.Cart(CustomerAline)
		assert.Equal(t, http.StatusNotFound, status(t, err))
	})

	t.Run("add twice -> quantities merge and totals follow", func(t *testing.T) {
		s := seeded(t)
		_, err := s.AddToCart(CustomerAline, "item-isombe", 1)
		require.NoError(t, err)
		c, err := s.AddToCart(CustomerAline, "item-isombe", 2)
		require.NoError(t, err)

		require.Len(t, c.CartItems, 1)
		assert.Equal(t, 3, c.CartItems[0].Quantity)
		assert.True(t, decimal.NewFromInt(7500).Equal(c.CartItems[0].TotalPrice))
	})

	t.Run("unavailable item -> 400", func(t *testing.T) {
		s := seeded(t)
		_, err := s.AddToCart(CustomerAline, "item-ugali", 1)
		assert.Equal(t, http.StatusBadRequest, status(t, err))
	})

	t.Run("remove past zero -> line dropped", func(t *testing.T) {
		s := seeded(t)
		_, err := s.AddToCart(CustomerAline, "item-fanta", 2)
		require.NoError(t, err)
		c, err := s.RemoveFromCart(CustomerAline, "item-fanta", 5)
		require.NoError(t, err)
		assert.Empty(t, c.CartItems)
	})

	t.Run("checkout -> cart kept but emptied", func(t *testing.T) {
		s := seeded(t)
		_, err := s.AddToCart(CustomerAline, "item-fanta", 2)
		require.NoError(t, err)
		require.NoError(t, s.CheckoutCart(CustomerAline))

		c, err := s.Cart(CustomerAline)
		require.NoError(t, err)
		assert.Empty(t, c.CartItems)
	})
}

func placeAline(t *testing.T, s *Store) Order {
	t.Helper()
	o, err := s.CreateOrder(PlaceOrder{
		CustomerID:      CustomerAline,
		DeliveryAddress: "KG 7 Ave",
		DeliveryFee:     decimal.NewFromInt(2000),
		Items:           []OrderLine{{ItemID: "item-isombe", UnitPrice: decimal.NewFromInt(2500), Quantity: 2}},
	})
	require.NoError(t, err)
	return o
}

func TestStore_Orders(t *testing.T) {
	t.Run("create -> pending with fee in total", func(t *testing.T) {
		s := seeded(t)
		o := placeAline(t, s)
		assert.Equal(t, "PENDING", o.Status)
		assert.Equal(t, "Isombe", o.Items[0].Name)
		assert.True(t, decimal.NewFromInt(7000).Equal(o.Total))
	})

	t.Run("blank address -> 400", func(t *testing.T) {
		s := seeded(t)
		_, err := s.CreateOrder(PlaceOrder{CustomerID: CustomerAline, DeliveryAddress: "  "})
		assert.Equal(t, http.StatusBadRequest, status(t, err))
	})

	t.Run("cancel paid order -> 409", func(t *testing.T) {
		s := seeded(t)
		o := placeAline(t, s)
		_, err := s.SetOrderStatus(o.ID, "PAID")
		require.NoError(t, err)
		_, err = s.CancelOrder(o.ID, "")
		assert.Equal(t, http.StatusConflict, status(t, err))
	})

	t.Run("cancel pending order -> cancelled by customer", func(t *testing.T) {
		s := seeded(t)
		o := placeAline(t, s)
		got, err := s.CancelOrder(o.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED_BY_CUSTOMER", got.Status)
	})

	t.Run("unknown status -> 400", func(t *testing.T) {
		s := seeded(t)
		o := placeAline(t, s)
		_, err := s.SetOrderStatus(o.ID, "LOST")
		assert.Equal(t, http.StatusBadRequest, status(t, err))
	})
}

func TestStore_Payments(t *testing.T) {
	t.Run("process -> configured outcome", func(t *testing.T) {
		s := seeded(t)
		o := placeAline(t, s)
		s.SetPaymentOutcome("FAILED")

		p, err := s.CreatePayment(o.ID, "momo")
		require.NoError(t, err)
		assert.Equal(t, "MOBILE_MONEY", p.PaymentMethod)
		assert.True(t, o.Total.Equal(p.Amount))

		p, err = s.ProcessPayment(p.ID)
		require.NoError(t, err)
		assert.Equal(t, "FAILED", p.Status)
	})

	t.Run("process twice -> 409", func(t *testing.T) {
		s := seeded(t)
		o := placeAline(t, s)
		p, err := s.CreatePayment(o.ID, "CARD")
		require.NoError(t, err)
		_, err = s.ProcessPayment(p.ID)
		require.NoError(t, err)
		_, err = s.ProcessPayment(p.ID)
		assert.Equal(t, http.StatusConflict, status(t, err))
	})

	t.Run("refund completed -> order refunded", func(t *testing.T) {
		s := seeded(t)
		o := placeAline(t, s)
		p, err := s.CreatePayment(o.ID, "CASH")
		require.NoError(t, err)
		_, err = s.ProcessPayment(p.ID)
		require.NoError(t, err)

		p, err = s.RefundPayment(p.ID)
		require.NoError(t, err)
		assert.Equal(t, "REFUNDED", p.Status)
		got, err := s.Order(o.ID)
		require.NoError(t, err)
		assert.Equal(t, "REFUNDED", got.Status)
	})

	t.Run("bad method -> 400", func(t *testing.T) {
		s := seeded(t)
		o := placeAline(t, s)
		_, err := s.CreatePayment(o.ID, "barter")
		assert.Equal(t, http.StatusBadRequest, status(t, err))
	})
}

func TestStore_Accounts(t *testing.T) {
	t.Run("duplicate signup -> 409", func(t *testing.T) {
		s := seeded(t)
		_, err := s.Signup(Signup{Name: "Aline", Email: "ALINE@example.rw", Password: "secret1"})
		assert.Equal(t, http.StatusConflict, status(t, err))
	})

	t.Run("wrong password -> 401", func(t *testing.T) {
		s := seeded(t)
		_, err := s.LoginCustomer("aline@example.rw", "nope")
		assert.Equal(t, http.StatusUnauthorized, status(t, err))
	})

	t.Run("reset token -> single use", func(t *testing.T) {
		s := seeded(t)
		s.ForgotPassword("aline@example.rw")
		tok := s.ResetToken("aline@example.rw")
		require.NotEmpty(t, tok)

		require.NoError(t, s.ResetPassword(tok, "newsecret"))
		_, err := s.LoginCustomer("aline@example.rw", "newsecret")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, status(t, s.ResetPassword(tok, "again1")))
	})

	t.Run("2fa setup then verify -> enabled", func(t *testing.T) {
		s := seeded(t)
		setup, err := s.SetupTwoFactor(CustomerAline)
		require.NoError(t, err)
		assert.Contains(t, setup.QRCodeImage, "data:image/png;base64,")
		assert.Contains(t, setup.OTPAuthURL, setup.Secret)

		assert.Equal(t, http.StatusBadRequest, status(t, s.EnableTwoFactor(CustomerAline, "000000", setup.Secret)))
		require.NoError(t, s.EnableTwoFactor(CustomerAline, TwoFactorCode, setup.Secret))

		ok, err := s.ValidateTwoFactor(CustomerAline, TwoFactorCode)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("admin login -> username", func(t *testing.T) {
		s := seeded(t)
		name, err := s.LoginAdmin(AdminUser, AdminPass)
		require.NoError(t, err)
		assert.Equal(t, AdminUser, name)
	})
}

func TestStore_Dashboard(t *testing.T) {
	s := seeded(t)
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }

	paid := placeAline(t, s)
	_, err := s.SetOrderStatus(paid.ID, "PAID")
	require.NoError(t, err)
	placeAline(t, s) // stays pending

	t.Run("stats -> only settled orders count as revenue", func(t *testing.T) {
		st := s.Stats()
		assert.Equal(t, 2, st.TotalOrders)
		assert.Equal(t, 1, st.ActiveCustomers)
		assert.Equal(t, 1, st.ActiveVendors)
		assert.True(t, decimal.NewFromInt(7000).Equal(st.TotalRevenue))
		require.Len(t, st.TopSellingItems, 1)
		assert.Equal(t, TopSellingItem{Name: "Isombe", UnitsSold: 2}, st.TopSellingItems[0])
	})

	t.Run("revenue week -> one point for the day", func(t *testing.T) {
		rev, err := s.Revenue("week")
		require.NoError(t, err)
		require.Len(t, rev.Points, 1)
		assert.Equal(t, "2026-03-10", rev.Points[0].Label)
	})

	t.Run("revenue bogus period -> 400", func(t *testing.T) {
		_, err := s.Revenue("decade")
		assert.Equal(t, http.StatusBadRequest, status(t, err))
	})

	t.Run("vendor performance -> seller first", func(t *testing.T) {
		perf := s.VendorPerformance()
		require.Len(t, perf, 3)
		assert.Equal(t, "v-kigali-eats", perf[0].ID)
		assert.Equal(t, 1, perf[0].TotalOrders)
		assert.True(t, decimal.NewFromInt(5000).Equal(perf[0].TotalSales))
	})

	t.Run("recent orders -> limit applied", func(t *testing.T) {
		assert.Len(t, s.RecentOrders(1), 1)
		assert.Equal(t, "Aline Uwase", s.RecentOrders(1)[0].CustomerName)
	})
}
