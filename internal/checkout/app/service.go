package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("a checkout is already in progress for this customer")
	ErrPaymentDeclined    = errors.New("payment was not completed")
	ErrItemUnavailable    = errors.New("item is not available")
)

const tracerName = "github.com/dwikikusuma/storefront/internal/checkout"

type Options struct {
	DeliveryFee   decimal.Decimal
	MaxConcurrent int
	Logger        *slog.Logger
}

type Service struct {
	Cart     CartGateway
	Catalog  CatalogReader
	Orders   OrderInitiator
	Payments PaymentInitiator

	deliveryFee   decimal.Decimal
	maxConcurrent int
	log           *slog.Logger
	tracer        trace.Tracer

	mu     sync.Mutex
	active map[string]struct{}
}

func NewService(cart CartGateway, catalog CatalogReader, orders OrderInitiator, payments PaymentInitiator, opts Options) *Service {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 10
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		Orders:        orders,
		Payments:      payments,
		deliveryFee:   opts.DeliveryFee,
		maxConcurrent: opts.MaxConcurrent,
		log:           opts.Logger,
		tracer:        otel.Tracer(tracerName),
		active:        make(map[string]struct{}),
	}
}

type Request struct {
	CustomerID      string
	DeliveryAddress string
	PaymentMethod   string
}

type Result struct {
	AttemptID   string
	State       domain.State
	Path        []domain.State
	OrderID     string
	PaymentID   string
	Total       decimal.Decimal
	CartCleared bool
}

// Checkout turns the customer's server cart into a paid order:
// order, payment, payment processing, order status PAID, cart clear.
//
// Each backend call is made at most once. When a step fails after the
// order exists, the order is marked PAYMENT_FAILED on a best-effort basis
// and the step's own error is returned. The cart is only cleared after
// the order is PAID.
func (s *Service) Checkout(ctx context.Context, req Request) (Result, error) {
	const op = "checkout"

	customerID := strings.TrimSpace(req.CustomerID)
	address := strings.TrimSpace(req.DeliveryAddress)
	if customerID == "" {
		return Result{}, api.Invalid(op, "customer id is required")
	}
	if address == "" {
		return Result{}, api.Invalid(op, "delivery address is required")
	}
	method, ok := paymentdomain.ParseMethod(req.PaymentMethod)
	if !ok {
		return Result{}, api.Invalid(op, fmt.Sprintf("unsupported payment method %q", req.PaymentMethod))
	}

	if !s.begin(customerID) {
		return Result{}, ErrCheckoutInProgress
	}
	defer s.end(customerID)

	a := domain.NewAttempt(uuid.NewString(), customerID)
	ctx, span := s.tracer.Start(ctx, "checkout.attempt", trace.WithAttributes(
		attribute.String("checkout.attempt_id", a.ID),
		attribute.String("customer.id", customerID),
		attribute.String("payment.method", string(method)),
	))
	defer span.End()

	log := s.log.With(
		slog.String("attempt_id", a.ID),
		slog.String("customer_id", customerID),
	)

	lines, err := s.Cart.GetCart(ctx, customerID)
	if err != nil {
		return s.fail(ctx, span, log, a, fmt.Errorf("read cart: %w", err))
	}
	if len(lines) == 0 {
		return s.fail(ctx, span, log, a, ErrEmptyCart)
	}

	order, err := s.Orders.CreateOrder(ctx, OrderRequest{
		CustomerID:      customerID,
		DeliveryAddress: address,
		DeliveryFee:     s.deliveryFee,
		Lines:           lines,
	})
	if err != nil {
		return s.fail(ctx, span, log, a, err)
	}
	a.OrderID = order.ID
	s.advance(span, a, domain.StateOrderCreated)
	span.SetAttributes(attribute.String("order.id", order.ID))

	payment, err := s.Payments.CreatePayment(ctx, order.ID, string(method))
	if err != nil {
		return s.fail(ctx, span, log, a, err)
	}
	a.PaymentID = payment.ID
	s.advance(span, a, domain.StatePaymentCreated)

	processed, err := s.Payments.ProcessPayment(ctx, payment.ID)
	if err != nil {
		return s.fail(ctx, span, log, a, err)
	}
	s.advance(span, a, domain.StatePaymentProcessed)
	if !processed.Completed {
		return s.fail(ctx, span, log, a, fmt.Errorf("%w: status %s", ErrPaymentDeclined, processed.Status))
	}

	if err := s.Orders.MarkPaid(ctx, order.ID); err != nil {
		return s.fail(ctx, span, log, a, err)
	}
	s.advance(span, a, domain.StateOrderPaid)

	res := s.result(a, order.Total)
	if err := s.Cart.ClearCart(ctx, customerID); err != nil {
		// The order is paid; nothing to compensate. The next cart read shows
		// the stale lines and the customer can remove them.
		log.Error("cart clear failed after payment",
			slog.String("order_id", order.ID),
			slog.Any("err", err),
		)
		span.AddEvent("cart.clear_failed")
		return res, nil
	}
	res.CartCleared = true

	log.Info("checkout completed",
		slog.String("order_id", order.ID),
		slog.String("payment_id", payment.ID),
		slog.String("total", order.Total.String()),
	)
	return res, nil
}

func (s *Service) advance(span trace.Span, a *domain.Attempt, to domain.State) {
	from := a.State
	if err := a.Advance(to); err != nil {
		// Steps run in a fixed order; reaching this is a programming error.
		panic(err)
	}
	span.AddEvent("checkout.transition", trace.WithAttributes(
		attribute.String("from", string(from)),
		attribute.String("to", string(to)),
	))
}

func (s *Service) fail(ctx context.Context, span trace.Span, log *slog.Logger, a *domain.Attempt, cause error) (Result, error) {
	s.advance(span, a, domain.StatePaymentFailed)
	span.RecordError(cause)
	span.SetStatus(codes.Error, cause.Error())

	if a.OrderID != "" {
		// The caller may already have given up on ctx; the order still needs marking.
		cctx := context.WithoutCancel(ctx)
		if err := s.Orders.MarkPaymentFailed(cctx, a.OrderID); err != nil {
			log.Error("compensation failed",
				slog.String("order_id", a.OrderID),
				slog.Any("err", err),
				slog.Any("cause", cause),
			)
		}
	}

	log.Warn("checkout failed",
		slog.String("order_id", a.OrderID),
		slog.String("payment_id", a.PaymentID),
		slog.Any("err", cause),
	)
	return s.result(a, decimal.Zero), cause
}

func (s *Service) result(a *domain.Attempt, total decimal.Decimal) Result {
	return Result{
		AttemptID: a.ID,
		State:     a.State,
		Path:      a.Path(),
		OrderID:   a.OrderID,
		PaymentID: a.PaymentID,
		Total:     total,
	}
}

func (s *Service) begin(customerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.active[customerID]; busy {
		return false
	}
	s.active[customerID] = struct{}{}
	return true
}

func (s *Service) end(customerID string) {
	s.mu.Lock()
	delete(s.active, customerID)
	s.mu.Unlock()
}

// Quote prices the customer's cart against the current catalog. Items
// are looked up concurrently.
func (s *Service) Quote(ctx context.Context, customerID string) (domain.Quote, error) {
	if strings.TrimSpace(customerID) == "" {
		return domain.Quote{}, api.Invalid("checkout.quote", "customer id is required")
	}

	items, err := s.Cart.GetCart(ctx, customerID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetItem(ctx, it.ItemID)
			if err != nil {
				return fmt.Errorf("failed to get item %s: %w", it.ItemID, err)
			}
			if !product.Available {
				return fmt.Errorf("%w: %s", ErrItemUnavailable, product.Name)
			}

			lines[idx] = domain.QuoteLine{
				ItemID:    product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}

	return domain.Quote{
		Lines:       lines,
		Subtotal:    subtotal,
		DeliveryFee: s.deliveryFee,
		Total:       subtotal.Add(s.deliveryFee),
	}, nil
}
