package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentAPI(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.RequestURI())
		switch r.URL.Path {
		case "/payments/order/o-1":
			_, _ = io.WriteString(w, `{"id":"p-1","orderId":"o-1","paymentMethod":"CARD","status":"PENDING","amount":7000}`)
		case "/payments/p-1/process":
			_, _ = io.WriteString(w, `{"id":"p-1","orderId":"o-1","paymentMethod":"CARD","status":"FAILED","amount":7000}`)
		case "/payments/p-2/cancel":
			_, _ = io.WriteString(w, `{"id":"p-2","orderId":"o-2","paymentMethod":"CASH","status":"CANCELLED","amount":900}`)
		case "/payments/p-3/cancel":
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"message":"Payment p-3 cannot be cancelled"}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(srv.Close)
	a := NewPaymentAPI(api.New(api.Options{BaseURL: srv.URL, Logger: logger.Discard()}))
	ctx := context.Background()

	p, err := a.Create(ctx, "o-1", domain.MethodCard)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, p.Status)
	assert.Equal(t, "7000", p.Amount.String())

	p, err = a.Process(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, p.Status)

	_, err = a.Refund(ctx, "p-1")
	assert.ErrorIs(t, err, api.ErrValidation)

	p, err = a.Cancel(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, p.Status)

	_, err = a.Cancel(ctx, "p-3")
	assert.ErrorIs(t, err, api.ErrConflict)
	assert.Equal(t, "Payment p-3 cannot be cancelled", api.Message(err, "fallback"))

	assert.Equal(t, []string{
		"POST /payments/order/o-1?paymentMethod=CARD",
		"POST /payments/p-1/process",
		"POST /payments/p-1/refund",
		"POST /payments/p-2/cancel",
		"POST /payments/p-3/cancel",
	}, seen)
}

func TestPaymentAPIBackendShapes(t *testing.T) {
	cases := []struct {
		body   string
		method domain.Method
		dated  bool
	}{
		{`{"id":"p-1","paymentMethod":"Mobile Money","status":"COMPLETED","amount":7000.0,"paymentDate":"2026-01-02"}`, domain.MethodMobileMoney, true},
		{`{"id":"p-1","paymentMethod":"Credit Card","status":"COMPLETED","amount":7000.0,"paymentDate":"2026-01-02T10:00:00.5"}`, domain.MethodCard, true},
		{`{"id":"p-1","paymentMethod":"Bank Transfer","status":"COMPLETED","amount":7000.0,"paymentDate":"tomorrow"}`, domain.Method("Bank Transfer"), false},
	}
	for _, tc := range cases {
		t.Run(string(tc.method)+" -> decoded", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tc.body)
			}))
			t.Cleanup(srv.Close)
			a := NewPaymentAPI(api.New(api.Options{BaseURL: srv.URL, Logger: logger.Discard()}))

			p, err := a.Get(context.Background(), "p-1")
			require.NoError(t, err)
			assert.Equal(t, tc.method, p.Method)
			assert.Equal(t, domain.StatusCompleted, p.Status)
			assert.Equal(t, tc.dated, !p.CreatedAt.IsZero())
		})
	}
}
