package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestService(b *backend, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return NewService(b, b, b, b, Options{
		DeliveryFee:   decimal.NewFromInt(2000),
		MaxConcurrent: 2,
		Logger:        log,
	})
}

func validRequest() Request {
	return Request{CustomerID: "cust-1", DeliveryAddress: "KN 4 Ave, Kigali", PaymentMethod: "mobile"}
}

func TestCheckoutSuccess(t *testing.T) {
	b := newBackend()
	res, err := newTestService(b, nil).Checkout(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StateOrderPaid, res.State)
	assert.Equal(t, []domain.State{
		domain.StateIdle, domain.StateOrderCreated, domain.StatePaymentCreated,
		domain.StatePaymentProcessed, domain.StateOrderPaid,
	}, res.Path)
	assert.Equal(t, "order-1", res.OrderID)
	assert.Equal(t, "pay-1", res.PaymentID)
	assert.Equal(t, "8500", res.Total.String())
	assert.True(t, res.CartCleared)
	assert.True(t, b.cartCleared)
	assert.Equal(t, "PAID", b.orderStatus["order-1"])

	assert.Equal(t, []string{
		"cart.get",
		"order.create",
		"payment.create:MOBILE_MONEY",
		"payment.process",
		"order.paid",
		"cart.clear",
	}, b.Calls())
}

func TestCheckoutBlankAddressMakesNoCalls(t *testing.T) {
	for _, addr := range []string{"", "   ", "\t\n"} {
		t.Run("address "+`"`+addr+`"`+" -> validation", func(t *testing.T) {
			b := newBackend()
			req := validRequest()
			req.DeliveryAddress = addr

			_, err := newTestService(b, nil).Checkout(context.Background(), req)
			assert.ErrorIs(t, err, api.ErrValidation)
			assert.Equal(t, "delivery address is required", api.Message(err, "fallback"))
			assert.Empty(t, b.Calls())
		})
	}
}

func TestCheckoutRejectsUnknownMethod(t *testing.T) {
	b := newBackend()
	req := validRequest()
	req.PaymentMethod = "cheque"
	_, err := newTestService(b, nil).Checkout(context.Background(), req)
	assert.ErrorIs(t, err, api.ErrValidation)
	assert.Empty(t, b.Calls())
}

func TestCheckoutProcessFailureCompensates(t *testing.T) {
	b := newBackend()
	backendErr := &api.Error{Kind: api.KindServer, Status: 500, Op: "payment.process", Payload: []byte(`{"message":"processor offline"}`)}
	b.processErr = backendErr

	res, err := newTestService(b, nil).Checkout(context.Background(), validRequest())
	require.Error(t, err)
	assert.Same(t, backendErr, err, "original error surfaced unchanged")

	assert.Equal(t, domain.StatePaymentFailed, res.State)
	assert.Equal(t, "PAYMENT_FAILED", b.orderStatus["order-1"])
	assert.False(t, b.cartCleared)
	assert.Equal(t, []string{
		"cart.get",
		"order.create",
		"payment.create:MOBILE_MONEY",
		"payment.process",
		"order.payment_failed",
	}, b.Calls())
}

func TestCheckoutDeclinedPayment(t *testing.T) {
	b := newBackend()
	b.paymentState = "FAILED"

	res, err := newTestService(b, nil).Checkout(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Equal(t, domain.StatePaymentFailed, res.State)
	assert.Contains(t, res.Path, domain.StatePaymentProcessed)
	assert.Equal(t, "PAYMENT_FAILED", b.orderStatus["order-1"])
	assert.False(t, b.cartCleared)
}

func TestCheckoutCompensationFailureOnlyLogged(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Service: "test", Level: "debug", Output: &buf})

	b := newBackend()
	b.payErr = errBoom
	b.compErr = &api.Error{Kind: api.KindServer, Status: 503}

	_, err := newTestService(b, log).Checkout(context.Background(), validRequest())
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, buf.String(), "compensation failed")
	assert.Equal(t, "PENDING", b.orderStatus["order-1"])
}

func TestCheckoutOrderFailureNeedsNoCompensation(t *testing.T) {
	b := newBackend()
	b.createErr = &api.Error{Kind: api.KindValidation, Status: 400}

	res, err := newTestService(b, nil).Checkout(context.Background(), validRequest())
	assert.ErrorIs(t, err, api.ErrValidation)
	assert.Equal(t, domain.StatePaymentFailed, res.State)
	assert.Empty(t, res.OrderID)
	assert.Equal(t, []string{"cart.get", "order.create"}, b.Calls())
}

func TestCheckoutEmptyCart(t *testing.T) {
	b := newBackend()
	b.lines = nil
	_, err := newTestService(b, nil).Checkout(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, []string{"cart.get"}, b.Calls())
}

func TestCheckoutMarkPaidFailure(t *testing.T) {
	b := newBackend()
	b.markPaidErr = errBoom

	res, err := newTestService(b, nil).Checkout(context.Background(), validRequest())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, domain.StatePaymentFailed, res.State)
	assert.Equal(t, "PAYMENT_FAILED", b.orderStatus["order-1"])
	assert.False(t, b.cartCleared)
}

func TestCheckoutCartClearFailureKeepsPaidOrder(t *testing.T) {
	b := newBackend()
	b.clearErr = errBoom

	res, err := newTestService(b, nil).Checkout(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StateOrderPaid, res.State)
	assert.False(t, res.CartCleared)
	assert.Equal(t, "PAID", b.orderStatus["order-1"])
	assert.NotContains(t, b.Calls(), "order.payment_failed")
}

func TestCheckoutCompensatesAfterCancel(t *testing.T) {
	b := newBackend()
	ctx, cancel := context.WithCancel(context.Background())
	b.onProcess = cancel

	_, err := newTestService(b, nil).Checkout(ctx, validRequest())
	assert.ErrorIs(t, err, context.Canceled)
	require.True(t, b.compCtxSeen)
	assert.NoError(t, b.compCtxErr)
	assert.Equal(t, "PAYMENT_FAILED", b.orderStatus["order-1"])
}

func TestCheckoutInProgress(t *testing.T) {
	b := newBackend()
	b.cartGate = make(chan struct{})
	svc := newTestService(b, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Checkout(context.Background(), validRequest())
		done <- err
	}()

	require.Eventually(t, func() bool {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		_, ok := svc.active["cust-1"]
		return ok
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Checkout(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	close(b.cartGate)
	require.NoError(t, <-done)

	_, err = svc.Checkout(context.Background(), validRequest())
	assert.NoError(t, err, "guard released after the attempt")
}

func TestCheckoutSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))

	b := newBackend()
	b.processErr = errBoom
	_, _ = newTestService(b, nil).Checkout(context.Background(), validRequest())

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "checkout.attempt", spans[0].Name())

	var transitions int
	for _, ev := range spans[0].Events() {
		if ev.Name == "checkout.transition" {
			transitions++
		}
	}
	// ORDER_CREATED, PAYMENT_CREATED, PAYMENT_FAILED
	assert.Equal(t, 3, transitions)
	assert.Equal(t, "Error", spans[0].Status().Code.String())
}

func TestQuote(t *testing.T) {
	t.Run("priced from catalog -> totals with fee", func(t *testing.T) {
		b := newBackend()
		b.products["item-a"] = Product{ID: "item-a", Name: "Isombe", Price: decimal.NewFromInt(2000), Available: true}

		q, err := newTestService(b, nil).Quote(context.Background(), "cust-1")
		require.NoError(t, err)
		require.Len(t, q.Lines, 2)
		assert.Equal(t, "item-a", q.Lines[0].ItemID)
		assert.Equal(t, "4000", q.Lines[0].LineTotal.String())
		assert.Equal(t, "5500", q.Subtotal.String())
		assert.Equal(t, "7500", q.Total.String())
	})

	t.Run("unavailable item -> error", func(t *testing.T) {
		b := newBackend()
		p := b.products["item-b"]
		p.Available = false
		b.products["item-b"] = p

		_, err := newTestService(b, nil).Quote(context.Background(), "cust-1")
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("empty cart -> ErrEmptyCart", func(t *testing.T) {
		b := newBackend()
		b.lines = nil
		_, err := newTestService(b, nil).Quote(context.Background(), "cust-1")
		assert.ErrorIs(t, err, ErrEmptyCart)
	})
}
