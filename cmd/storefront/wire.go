package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	adminapp "github.com/dwikikusuma/storefront/internal/admin/app"
	adminrest "github.com/dwikikusuma/storefront/internal/admin/infra/rest"

	"github.com/dwikikusuma/storefront/internal/api"

	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	authrest "github.com/dwikikusuma/storefront/internal/auth/infra/rest"
	authstore "github.com/dwikikusuma/storefront/internal/auth/infra/store"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartrest "github.com/dwikikusuma/storefront/internal/cart/infra/rest"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogrest "github.com/dwikikusuma/storefront/internal/catalog/infra/rest"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderrest "github.com/dwikikusuma/storefront/internal/order/infra/rest"

	paymentapp "github.com/dwikikusuma/storefront/internal/payment/app"
	paymentrest "github.com/dwikikusuma/storefront/internal/payment/infra/rest"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/shopspring/decimal"
)

type app struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer
	err io.Writer

	auth     *authapp.Manager
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	orders   *orderapp.Service
	payments *paymentapp.Service
	checkout *checkoutapp.Service
	admin    *adminapp.Service
}

func newApp(cfg config.Config, client *api.Client, sessions authapp.Store, log *slog.Logger, out, errOut io.Writer) *app {
	// Catalog
	catalogSvc := catalogapp.NewService(
		catalogrest.NewItemAPI(client),
		catalogrest.NewVendorAPI(client),
		catalogrest.NewCategoryAPI(client),
	)

	// Cart, orders, payments
	cartSvc := cartapp.NewService(cartrest.NewCartAPI(client))
	orderSvc := orderapp.NewService(orderrest.NewOrderAPI(client))
	paymentSvc := paymentapp.NewService(paymentrest.NewPaymentAPI(client))

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceGateway(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		checkoutadapter.NewOrderServiceInitiator(orderSvc),
		checkoutadapter.NewPaymentServiceInitiator(paymentSvc),
		checkoutapp.Options{
			DeliveryFee:   decimal.NewFromInt(cfg.DeliveryFee),
			MaxConcurrent: cfg.CatalogConcurrency,
			Logger:        log,
		},
	)

	return &app{
		cfg:      cfg,
		log:      log,
		out:      out,
		err:      errOut,
		auth:     authapp.NewManager(authrest.NewAccountAPI(client), sessions, log),
		catalog:  catalogSvc,
		cart:     cartSvc,
		orders:   orderSvc,
		payments: paymentSvc,
		checkout: checkoutSvc,
		admin:    adminapp.NewService(adminrest.NewAdminAPI(client)),
	}
}

// openSessions picks the session store named by SESSION_STORE. The
// returned close func is never nil.
func openSessions(ctx context.Context, cfg config.Config) (authapp.Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.SessionStore {
	case "", "file":
		return authstore.NewFileStore(cfg.SessionFile), noop, nil
	case "memory":
		return authstore.NewMemoryStore(), noop, nil
	case "redis":
		client, err := authstore.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return authstore.NewRedisStore(client, cfg.SessionKey), func(context.Context) error { return client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
